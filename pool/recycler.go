// File: pool/recycler.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Recycler: scratch provider that keeps released slices for reuse.

package pool

import (
	"sync"

	"github.com/eapache/queue"
	"github.com/pkg/errors"

	"github.com/momentics/hioload-seq/api"
)

var _ api.Scratch[int] = (*Recycler[int])(nil)

const defaultMaxIdle = 8

// RecyclerStats is a snapshot of Recycler accounting.
type RecyclerStats struct {
	Leased    int64 // leases handed out
	Reused    int64 // leases served from the idle list
	Allocated int64 // leases that needed a fresh slice
	Refused   int64 // leases rejected by Budget
	Idle      int   // slices currently parked
	InUse     int   // elements currently leased
}

// Recycler parks released slices on a FIFO idle list and serves later
// leases from it. Safe for concurrent use, so one Recycler can back many
// containers.
type Recycler[T any] struct {
	// MaxIdle bounds the idle list; 0 means 8.
	MaxIdle int
	// Budget bounds the elements leased at once; 0 means unbounded.
	Budget int

	mu    sync.Mutex
	idle  *queue.Queue
	inUse int
	stats RecyclerStats
}

// NewRecycler creates a recycler with the given limits.
func NewRecycler[T any](maxIdle, budget int) *Recycler[T] {
	return &Recycler[T]{MaxIdle: maxIdle, Budget: budget}
}

func (r *Recycler[T]) Acquire(n int) ([]T, error) {
	if n < 0 {
		return nil, errors.Wrapf(api.ErrInvalidArgument, "scratch: negative lease %d", n)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Budget > 0 && r.inUse+n > r.Budget {
		r.stats.Refused++
		return nil, errors.Wrapf(api.ErrScratchExhausted, "recycler: lease of %d with %d in use exceeds budget %d", n, r.inUse, r.Budget)
	}
	r.inUse += n
	r.stats.Leased++
	if buf, ok := r.take(n); ok {
		r.stats.Reused++
		return buf, nil
	}
	r.stats.Allocated++
	return make([]T, n), nil
}

// take scans the idle list once, in FIFO order, for a slice with room for
// n elements. Slices that are too small are re-queued.
func (r *Recycler[T]) take(n int) ([]T, bool) {
	if r.idle == nil {
		return nil, false
	}
	for i, count := 0, r.idle.Length(); i < count; i++ {
		buf := r.idle.Remove().([]T)
		if cap(buf) >= n {
			return buf[:n], true
		}
		r.idle.Add(buf)
	}
	return nil, false
}

func (r *Recycler[T]) Release(buf []T) {
	var zero T
	for i := range buf {
		buf[i] = zero
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inUse -= len(buf)
	if r.inUse < 0 {
		r.inUse = 0
	}
	if r.idle == nil {
		r.idle = queue.New()
	}
	maxIdle := r.MaxIdle
	if maxIdle <= 0 {
		maxIdle = defaultMaxIdle
	}
	if r.idle.Length() >= maxIdle {
		// Drop the oldest slice to make room.
		r.idle.Remove()
	}
	r.idle.Add(buf[:0])
}

// Stats returns a snapshot of the recycler's counters.
func (r *Recycler[T]) Stats() RecyclerStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.stats
	s.InUse = r.inUse
	if r.idle != nil {
		s.Idle = r.idle.Length()
	}
	return s
}
