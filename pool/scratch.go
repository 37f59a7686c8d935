// File: pool/scratch.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"github.com/pkg/errors"

	"github.com/momentics/hioload-seq/api"
)

var (
	_ api.Scratch[int] = Heap[int]{}
	_ api.Scratch[int] = (*Arena[int])(nil)
)

// Heap allocates a fresh slice for every lease. Limit > 0 caps the lease
// size in elements; larger requests are refused.
type Heap[T any] struct {
	Limit int
}

func (h Heap[T]) Acquire(n int) ([]T, error) {
	if n < 0 {
		return nil, errors.Wrapf(api.ErrInvalidArgument, "scratch: negative lease %d", n)
	}
	if h.Limit > 0 && n > h.Limit {
		return nil, errors.Wrapf(api.ErrScratchExhausted, "heap scratch: lease of %d exceeds limit %d", n, h.Limit)
	}
	return make([]T, n), nil
}

// Release is a no-op; the GC reclaims the slice.
func (Heap[T]) Release([]T) {}

// Arena leases slices of one caller-owned buffer, one lease at a time.
// It never allocates.
type Arena[T any] struct {
	buf    []T
	leased bool
	n      int
}

// NewArena wraps buf. The caller keeps ownership of buf.
func NewArena[T any](buf []T) *Arena[T] {
	return &Arena[T]{buf: buf}
}

// Cap returns the largest lease the arena can satisfy.
func (a *Arena[T]) Cap() int { return len(a.buf) }

// Leased reports whether a lease is outstanding.
func (a *Arena[T]) Leased() bool { return a.leased }

func (a *Arena[T]) Acquire(n int) ([]T, error) {
	switch {
	case n < 0:
		return nil, errors.Wrapf(api.ErrInvalidArgument, "scratch: negative lease %d", n)
	case a.leased:
		return nil, errors.Wrap(api.ErrScratchExhausted, "arena scratch: already leased")
	case n > len(a.buf):
		return nil, errors.Wrapf(api.ErrScratchExhausted, "arena scratch: lease of %d exceeds capacity %d", n, len(a.buf))
	}
	a.leased = true
	a.n = n
	return a.buf[:n:n], nil
}

// Release ends the outstanding lease. Slices the arena did not hand out
// are ignored and left untouched.
func (a *Arena[T]) Release(buf []T) {
	if !a.owns(buf) {
		return
	}
	var zero T
	for i := range buf {
		buf[i] = zero
	}
	a.leased = false
	a.n = 0
}

func (a *Arena[T]) owns(buf []T) bool {
	if !a.leased || len(buf) != a.n {
		return false
	}
	return a.n == 0 || &buf[0] == &a.buf[0]
}
