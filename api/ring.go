// File: api/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bounded FIFO over storage the caller owns.

package api

// Ring is a single-owner circular queue of fixed capacity. Nothing is
// allocated after construction, so a full ring refuses work instead of
// growing. Implementations are not safe for concurrent use.
type Ring[T any] interface {
	// Enqueue appends item at the tail; false when full.
	Enqueue(item T) bool
	// Dequeue removes the head; ok is false when empty.
	Dequeue() (item T, ok bool)
	// Peek returns the head without removing it.
	Peek() (item T, ok bool)
	Len() int
	Cap() int
	IsEmpty() bool
	IsFull() bool
	// Clear drops every queued item without touching storage.
	Clear()
}
