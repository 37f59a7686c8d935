// File: array/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ring: circular FIFO over caller-owned storage. Kept as a type of its own
// so positional Array operations never see a rotated head offset.

package array

import (
	"golang.org/x/exp/constraints"

	"github.com/momentics/hioload-seq/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[int] = (*Ring[int, api.Ordered[int]])(nil)

// Ring is a bounded circular queue. Logical element i lives at
// buf[(head+i) % Cap()].
type Ring[T any, O api.Ops[T]] struct {
	buf  []T
	head int
	size int
	ops  O
	tmp  T
}

// NewRing binds a ring to buf. The caller keeps ownership of buf.
func NewRing[T any, O api.Ops[T]](buf []T) *Ring[T, O] {
	r := &Ring[T, O]{}
	r.Init(buf)
	return r
}

// NewOrderedRing binds a ring over a primitive element type.
func NewOrderedRing[T constraints.Ordered](buf []T) *Ring[T, api.Ordered[T]] {
	return NewRing[T, api.Ordered[T]](buf)
}

// Init (re)binds the ring to buf and empties it.
func (r *Ring[T, O]) Init(buf []T) {
	r.buf = buf
	r.head = 0
	r.size = 0
}

func (r *Ring[T, O]) Len() int      { return r.size }
func (r *Ring[T, O]) Cap() int      { return len(r.buf) }
func (r *Ring[T, O]) IsEmpty() bool { return r.size == 0 }
func (r *Ring[T, O]) IsFull() bool  { return r.size >= len(r.buf) }

// Clear drops all queued elements.
func (r *Ring[T, O]) Clear() {
	r.head = 0
	r.size = 0
}

func (r *Ring[T, O]) slot(i int) int {
	return (r.head + i) % len(r.buf)
}

// Enqueue adds x at the tail; returns false if full.
func (r *Ring[T, O]) Enqueue(x T) bool {
	if r.size >= len(r.buf) {
		return false
	}
	r.tmp = x
	r.ops.Copy(&r.buf[r.slot(r.size)], &r.tmp)
	r.tmp = zero[T]()
	r.size++
	return true
}

// Dequeue removes and returns the head element; ok==false if empty.
func (r *Ring[T, O]) Dequeue() (v T, ok bool) {
	if r.size <= 0 {
		return v, false
	}
	v = r.copyOut(r.head)
	r.head = (r.head + 1) % len(r.buf)
	r.size--
	return v, true
}

// Peek returns the head element without removing it.
func (r *Ring[T, O]) Peek() (v T, ok bool) {
	if r.size <= 0 {
		return v, false
	}
	return r.copyOut(r.head), true
}

// At returns logical element i, counted from the head.
func (r *Ring[T, O]) At(i int) (v T, ok bool) {
	if i < 0 || i >= r.size {
		return v, false
	}
	return r.copyOut(r.slot(i)), true
}

// Array converts the ring back to direct-index mode over the same buffer.
// The buffer is rotated in place so the head lands on index 0, keeping
// queue order as index order. The ring is emptied.
func (r *Ring[T, O]) Array() *Array[T, O] {
	a := &Array[T, O]{buf: r.buf, ops: r.ops}
	if r.head != 0 && len(r.buf) > 0 {
		// Rotate the whole buffer, not just the live prefix: the live
		// window may wrap past the physical end.
		a.size = len(r.buf)
		a.RotateLeft(r.head)
	}
	a.size = r.size
	r.Clear()
	return a
}

func (r *Ring[T, O]) copyOut(i int) T {
	r.ops.Copy(&r.tmp, &r.buf[i])
	v := r.tmp
	r.tmp = zero[T]()
	return v
}
