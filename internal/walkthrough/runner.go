// File: internal/walkthrough/runner.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Runner applies a Script to an int64 Array, an int64 Ring and a Bitset.

package walkthrough

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	"github.com/momentics/hioload-seq/api"
	"github.com/momentics/hioload-seq/array"
	"github.com/momentics/hioload-seq/bitset"
	"github.com/momentics/hioload-seq/pool"
)

// Target names the container a step operated on.
type Target string

const (
	TargetArray  Target = "array"
	TargetRing   Target = "ring"
	TargetBitset Target = "bitset"
)

// Entry records the outcome of one step.
type Entry struct {
	Step   int
	Op     string
	Target Target
	OK     bool
	Result string
	State  string
	// Err explains a failed step; it is an *api.Error, nil when OK.
	Err error
}

func (e Entry) String() string {
	status := "ok"
	if !e.OK {
		status = api.CodeOf(e.Err).String()
	}
	if e.Result != "" {
		return fmt.Sprintf("%02d %-14s %-17s %s -> %s", e.Step, e.Op, status, e.Result, e.State)
	}
	return fmt.Sprintf("%02d %-14s %-17s %s", e.Step, e.Op, status, e.State)
}

// Transcript is the ordered record of a run.
type Transcript struct {
	Name    string
	Entries []Entry
}

// Runner owns the buffers behind the script's containers.
type Runner struct {
	arr  *array.Array[int64, api.Ordered[int64]]
	ring *array.Ring[int64, api.Ordered[int64]]
	bits *bitset.Bitset
}

// NewRunner sizes the containers for s.
func NewRunner(s *Script) (*Runner, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{
		arr:  array.NewOrdered(make([]int64, s.Capacity)),
		ring: array.NewOrderedRing(make([]int64, s.Capacity)),
	}
	limit := s.ScratchLimit
	if limit == 0 {
		limit = s.Capacity
	}
	switch s.Scratch {
	case ScratchHeap:
		r.arr.SetScratch(pool.Heap[int64]{Limit: limit})
	case ScratchRecycler:
		r.arr.SetScratch(pool.NewRecycler[int64](0, limit))
	default:
		r.arr.SetScratch(pool.NewArena(make([]int64, limit)))
	}
	bits, err := bitset.New(make([]byte, bitset.Bytes(s.Bits)), s.Bits)
	if err != nil {
		return nil, errors.Wrap(err, "walkthrough: bitset")
	}
	r.bits = bits
	return r, nil
}

// Run executes every step of s on fresh containers.
func Run(s *Script) (*Transcript, error) {
	r, err := NewRunner(s)
	if err != nil {
		return nil, err
	}
	t := &Transcript{Name: s.Name, Entries: make([]Entry, 0, len(s.Steps))}
	for i, st := range s.Steps {
		e, err := r.Apply(st)
		if err != nil {
			return t, errors.Wrapf(err, "step %d (%s)", i+1, st.Op)
		}
		e.Step = i + 1
		t.Entries = append(t.Entries, e)
	}
	return t, nil
}

// Apply runs a single step.
func (r *Runner) Apply(st Step) (Entry, error) {
	h, ok := handlers[st.Op]
	if !ok {
		return Entry{}, errors.Wrapf(api.ErrNotSupported, "unknown op %q", st.Op)
	}
	e := Entry{Op: st.Op, Target: h.target}
	result, fail, err := h.fn(r, st)
	if err != nil {
		return e, err
	}
	e.Result = result
	e.OK = fail == nil
	if fail != nil {
		e.Err = fail
	}
	switch h.target {
	case TargetRing:
		e.State = r.ring.String()
	case TargetBitset:
		e.State = r.bits.String()
	default:
		e.State = r.arr.String()
	}
	return e, nil
}

// Array exposes the direct-index container.
func (r *Runner) Array() *array.Array[int64, api.Ordered[int64]] { return r.arr }

// Ring exposes the ring container.
func (r *Runner) Ring() *array.Ring[int64, api.Ordered[int64]] { return r.ring }

// Bitset exposes the bit vector.
func (r *Runner) Bitset() *bitset.Bitset { return r.bits }

type handler struct {
	target Target
	fn     func(r *Runner, st Step) (result string, fail *api.Error, err error)
}

var handlers = map[string]handler{
	"push":           {TargetArray, (*Runner).push},
	"pop":            {TargetArray, (*Runner).pop},
	"insert":         {TargetArray, (*Runner).insert},
	"delete":         {TargetArray, (*Runner).delete},
	"find":           {TargetArray, (*Runner).find},
	"push_unique":    {TargetArray, (*Runner).pushUnique},
	"insert_unique":  {TargetArray, (*Runner).insertUnique},
	"binary_insert":  {TargetArray, (*Runner).binaryInsert},
	"binary_search":  {TargetArray, (*Runner).binarySearch},
	"sort":           {TargetArray, (*Runner).sort},
	"insertion_sort": {TargetArray, (*Runner).insertionSort},
	"quick_sort":     {TargetArray, (*Runner).quickSort},
	"merge_sort":     {TargetArray, (*Runner).mergeSort},
	"rotate_left":    {TargetArray, (*Runner).rotateLeft},
	"rotate_right":   {TargetArray, (*Runner).rotateRight},
	"filter_even":    {TargetArray, (*Runner).filterEven},
	"double":         {TargetArray, (*Runner).double},
	"enqueue":        {TargetRing, (*Runner).enqueue},
	"dequeue":        {TargetRing, (*Runner).dequeue},
	"set_bit":        {TargetBitset, (*Runner).setBit},
	"clear_bit":      {TargetBitset, (*Runner).clearBit},
	"toggle_bit":     {TargetBitset, (*Runner).toggleBit},
	"read_bit":       {TargetBitset, (*Runner).readBit},
	"set_all":        {TargetBitset, (*Runner).setAll},
	"clear_all":      {TargetBitset, (*Runner).clearAll},
}

// values returns Values, or Value alone when Values is empty.
func (st Step) values() []int64 {
	if len(st.Values) > 0 {
		return st.Values
	}
	return []int64{st.Value}
}

// bounds resolves Lo/Hi against the current size; missing bounds cover
// the whole valid range.
func (st Step) bounds(size int) (int, int) {
	lo, hi := 0, size-1
	if st.Lo != nil {
		lo = *st.Lo
	}
	if st.Hi != nil {
		hi = *st.Hi
	}
	return lo, hi
}

func index(i int) string {
	if i == api.NotFound {
		return "not found"
	}
	return "index " + strconv.Itoa(i)
}

func (r *Runner) push(st Step) (string, *api.Error, error) {
	vs := st.values()
	n := 0
	for _, v := range vs {
		if r.arr.Push(v) {
			n++
		}
	}
	result := fmt.Sprintf("pushed %d/%d", n, len(vs))
	if n < len(vs) {
		return result, r.full("push"), nil
	}
	return result, nil, nil
}

func (r *Runner) pop(Step) (string, *api.Error, error) {
	v, ok := r.arr.Pop()
	if !ok {
		return "", api.Wrap(api.ErrEmpty, "pop from empty array"), nil
	}
	return fmt.Sprintf("popped %d", v), nil, nil
}

func (r *Runner) insert(st Step) (string, *api.Error, error) {
	if r.arr.Insert(st.Value, st.Index) {
		return "", nil, nil
	}
	return "", r.rejected("insert", st.Index), nil
}

func (r *Runner) delete(st Step) (string, *api.Error, error) {
	if r.arr.Delete(st.Index) {
		return "", nil, nil
	}
	return "", r.outOfRange("delete", st.Index, r.arr.Len()), nil
}

func (r *Runner) find(st Step) (string, *api.Error, error) {
	i := r.arr.Find(st.Value)
	return index(i), r.missing("find", i, st.Value), nil
}

func (r *Runner) pushUnique(st Step) (string, *api.Error, error) {
	if r.arr.PushUnique(st.Value) {
		return "", nil, nil
	}
	if err := r.duplicate("push_unique", st.Value); err != nil {
		return "", err, nil
	}
	return "", r.full("push_unique"), nil
}

func (r *Runner) insertUnique(st Step) (string, *api.Error, error) {
	if r.arr.InsertUnique(st.Value, st.Index) {
		return "", nil, nil
	}
	if err := r.duplicate("insert_unique", st.Value); err != nil {
		return "", err, nil
	}
	return "", r.rejected("insert_unique", st.Index), nil
}

func (r *Runner) binaryInsert(st Step) (string, *api.Error, error) {
	if r.arr.BinaryInsert(st.Value) {
		return "", nil, nil
	}
	return "", r.full("binary_insert"), nil
}

func (r *Runner) binarySearch(st Step) (string, *api.Error, error) {
	i := r.arr.BinarySearch(st.Value)
	return index(i), r.missing("binary_search", i, st.Value), nil
}

func (r *Runner) sort(Step) (string, *api.Error, error) {
	r.arr.Sort()
	return "", nil, nil
}

func (r *Runner) insertionSort(st Step) (string, *api.Error, error) {
	r.arr.InsertionSort(st.bounds(r.arr.Len()))
	return "", nil, nil
}

func (r *Runner) quickSort(st Step) (string, *api.Error, error) {
	r.arr.QuickSort(st.bounds(r.arr.Len()))
	return "", nil, nil
}

// mergeSort reports scratch refusal and bad bounds as a failed step, not a
// script error.
func (r *Runner) mergeSort(st Step) (string, *api.Error, error) {
	lo, hi := st.bounds(r.arr.Len())
	err := r.arr.MergeSort(lo, hi)
	switch api.CodeOf(err) {
	case api.ErrCodeOK:
		return "", nil, nil
	case api.ErrCodeScratchExhausted, api.ErrCodeOutOfRange:
		fail := api.Wrap(err, "merge sort").WithContext("lo", lo).WithContext("hi", hi)
		return err.Error(), fail, nil
	default:
		return "", nil, err
	}
}

func (r *Runner) rotateLeft(st Step) (string, *api.Error, error) {
	r.arr.RotateLeft(st.N)
	return "", nil, nil
}

func (r *Runner) rotateRight(st Step) (string, *api.Error, error) {
	r.arr.RotateRight(st.N)
	return "", nil, nil
}

func (r *Runner) filterEven(Step) (string, *api.Error, error) {
	before := r.arr.Len()
	kept := r.arr.Filter(func(v *int64) bool { return *v%2 == 0 })
	return fmt.Sprintf("kept %d/%d", kept, before), nil, nil
}

func (r *Runner) double(Step) (string, *api.Error, error) {
	r.arr.Map(func(v *int64) { *v *= 2 })
	return "", nil, nil
}

func (r *Runner) enqueue(st Step) (string, *api.Error, error) {
	vs := st.values()
	n := 0
	for _, v := range vs {
		if r.ring.Enqueue(v) {
			n++
		}
	}
	result := fmt.Sprintf("enqueued %d/%d", n, len(vs))
	if n < len(vs) {
		return result, api.Wrap(api.ErrFull, "enqueue on full ring").WithContext("capacity", r.ring.Cap()), nil
	}
	return result, nil, nil
}

func (r *Runner) dequeue(Step) (string, *api.Error, error) {
	v, ok := r.ring.Dequeue()
	if !ok {
		return "", api.Wrap(api.ErrEmpty, "dequeue from empty ring"), nil
	}
	return fmt.Sprintf("dequeued %d", v), nil, nil
}

func (r *Runner) setBit(st Step) (string, *api.Error, error) {
	r.bits.Set(st.Index)
	return "", r.bitRange("set_bit", st.Index), nil
}

func (r *Runner) clearBit(st Step) (string, *api.Error, error) {
	r.bits.Clear(st.Index)
	return "", r.bitRange("clear_bit", st.Index), nil
}

func (r *Runner) toggleBit(st Step) (string, *api.Error, error) {
	r.bits.Toggle(st.Index)
	return "", r.bitRange("toggle_bit", st.Index), nil
}

func (r *Runner) readBit(st Step) (string, *api.Error, error) {
	if fail := r.bitRange("read_bit", st.Index); fail != nil {
		return "", fail, nil
	}
	v := 0
	if r.bits.Read(st.Index) {
		v = 1
	}
	return fmt.Sprintf("bit %d = %d", st.Index, v), nil, nil
}

func (r *Runner) setAll(Step) (string, *api.Error, error) {
	r.bits.SetAll()
	return "", nil, nil
}

func (r *Runner) clearAll(Step) (string, *api.Error, error) {
	r.bits.ClearAll()
	return "", nil, nil
}

func (r *Runner) full(op string) *api.Error {
	return api.Wrap(api.ErrFull, op+" on full array").WithContext("capacity", r.arr.Cap())
}

func (r *Runner) outOfRange(op string, i, limit int) *api.Error {
	return api.Wrap(api.ErrOutOfRange, op+" index out of range").
		WithContext("index", i).
		WithContext("limit", limit)
}

// rejected explains a failed positional insert.
func (r *Runner) rejected(op string, i int) *api.Error {
	if r.arr.IsFull() {
		return r.full(op)
	}
	return r.outOfRange(op, i, r.arr.Len())
}

func (r *Runner) duplicate(op string, v int64) *api.Error {
	i := r.arr.Find(v)
	if i == api.NotFound {
		return nil
	}
	return api.Wrap(api.ErrAlreadyExists, op+" of a present value").
		WithContext("value", v).
		WithContext("index", i)
}

func (r *Runner) missing(op string, i int, v int64) *api.Error {
	if i != api.NotFound {
		return nil
	}
	return api.Wrap(api.ErrNotFound, op+" missed").WithContext("value", v)
}

func (r *Runner) bitRange(op string, i int) *api.Error {
	if i >= 0 && i < r.bits.Len() {
		return nil
	}
	return r.outOfRange(op, i, r.bits.Len())
}
