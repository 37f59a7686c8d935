// File: array/array.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Array: bounded, non-owning sequence container.

package array

import (
	"golang.org/x/exp/constraints"

	"github.com/momentics/hioload-seq/api"
)

// Array is a bounded sequence over a caller-owned buffer.
// Capacity is len(buf) and never changes until the next Init.
type Array[T any, O api.Ops[T]] struct {
	buf     []T
	size    int
	ops     O
	scratch api.Scratch[T]

	// Staging slots. Arguments passed to O always point into the
	// container, never at a caller's frame.
	tmp   T
	pivot T
}

// New binds a container to buf. The caller keeps ownership of buf.
func New[T any, O api.Ops[T]](buf []T) *Array[T, O] {
	a := &Array[T, O]{}
	a.Init(buf)
	return a
}

// NewOrdered binds a container over a primitive element type.
func NewOrdered[T constraints.Ordered](buf []T) *Array[T, api.Ordered[T]] {
	return New[T, api.Ordered[T]](buf)
}

// Init (re)binds the container to buf and empties it.
func (a *Array[T, O]) Init(buf []T) {
	a.buf = buf
	a.size = 0
}

// SetScratch selects the provider MergeSort leases its scratch region from.
// A nil provider restores the default heap provider.
func (a *Array[T, O]) SetScratch(s api.Scratch[T]) { a.scratch = s }

func (a *Array[T, O]) Len() int      { return a.size }
func (a *Array[T, O]) Cap() int      { return len(a.buf) }
func (a *Array[T, O]) IsEmpty() bool { return a.size == 0 }
func (a *Array[T, O]) IsFull() bool  { return a.size >= len(a.buf) }

// Clear drops all elements without touching the buffer contents.
func (a *Array[T, O]) Clear() { a.size = 0 }

// View returns the valid prefix of the buffer. It aliases the storage and
// is invalidated by any mutating call.
func (a *Array[T, O]) View() []T { return a.buf[:a.size] }

// At returns a copy of element i.
func (a *Array[T, O]) At(i int) (v T, ok bool) {
	if i < 0 || i >= a.size {
		return v, false
	}
	return a.copyOut(i), true
}

// Ref returns a pointer to element i, or nil when i is out of range.
func (a *Array[T, O]) Ref(i int) *T {
	if i < 0 || i >= a.size {
		return nil
	}
	return &a.buf[i]
}

// Set overwrites element i.
func (a *Array[T, O]) Set(i int, x T) bool {
	if i < 0 || i >= a.size {
		return false
	}
	a.copyIn(i, x)
	return true
}

// Push appends x; returns false if full.
func (a *Array[T, O]) Push(x T) bool {
	if a.size >= len(a.buf) {
		return false
	}
	a.copyIn(a.size, x)
	a.size++
	return true
}

// Pop removes and returns the last element; ok==false if empty.
func (a *Array[T, O]) Pop() (v T, ok bool) {
	if a.size <= 0 {
		return v, false
	}
	a.size--
	return a.copyOut(a.size), true
}

// Insert writes x at i after shifting [i, size) one slot right.
// Valid positions are 0..Len().
func (a *Array[T, O]) Insert(x T, i int) bool {
	if a.size >= len(a.buf) || i < 0 || i > a.size {
		return false
	}
	for j := a.size - 1; j >= i; j-- {
		a.ops.Copy(&a.buf[j+1], &a.buf[j])
	}
	a.copyIn(i, x)
	a.size++
	return true
}

// Delete removes element i, closing the gap.
func (a *Array[T, O]) Delete(i int) bool {
	if a.size <= 0 || i < 0 || i >= a.size {
		return false
	}
	for j := i; j < a.size-1; j++ {
		a.ops.Copy(&a.buf[j], &a.buf[j+1])
	}
	a.size--
	return true
}

// Map applies f to every element in place, in index order.
func (a *Array[T, O]) Map(f func(*T)) {
	for i := 0; i < a.size; i++ {
		f(&a.buf[i])
	}
}

// Filter keeps, in order, the elements for which keep returns true and
// returns how many remain.
func (a *Array[T, O]) Filter(keep func(*T) bool) int {
	n := 0
	for i := 0; i < a.size; i++ {
		if !keep(&a.buf[i]) {
			continue
		}
		if n != i {
			a.ops.Copy(&a.buf[n], &a.buf[i])
		}
		n++
	}
	a.size = n
	return n
}

// Ring converts the container into ring mode over the same buffer, with
// the current elements queued in index order. The Array is emptied so the
// two views never share live elements.
func (a *Array[T, O]) Ring() *Ring[T, O] {
	r := &Ring[T, O]{buf: a.buf, size: a.size, ops: a.ops}
	a.size = 0
	return r
}

// copyIn deep-copies x into slot i.
func (a *Array[T, O]) copyIn(i int, x T) {
	a.tmp = x
	a.ops.Copy(&a.buf[i], &a.tmp)
	a.tmp = zero[T]()
}

// copyOut returns a deep copy of slot i.
func (a *Array[T, O]) copyOut(i int) T {
	a.ops.Copy(&a.tmp, &a.buf[i])
	v := a.tmp
	a.tmp = zero[T]()
	return v
}

// compareTo compares x against slot i.
func (a *Array[T, O]) compareTo(x T, i int) int {
	a.tmp = x
	c := a.ops.Compare(&a.tmp, &a.buf[i])
	a.tmp = zero[T]()
	return c
}

func (a *Array[T, O]) swap(i, j int) {
	a.ops.Copy(&a.tmp, &a.buf[i])
	a.ops.Copy(&a.buf[i], &a.buf[j])
	a.ops.Copy(&a.buf[j], &a.tmp)
	a.tmp = zero[T]()
}

func (a *Array[T, O]) less(i, j int) bool {
	return a.ops.Compare(&a.buf[i], &a.buf[j]) < 0
}

func zero[T any]() (z T) { return z }
