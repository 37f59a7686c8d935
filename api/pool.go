// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Scratch-space contract for operations that need a temporary region.

package api

// Scratch leases temporary element storage for the duration of one call.
type Scratch[T any] interface {
	// Acquire returns a slice of exactly n elements or an error wrapping
	// ErrScratchExhausted when the provider cannot satisfy the request.
	Acquire(n int) ([]T, error)

	// Release hands a slice obtained from Acquire back to the provider.
	Release(buf []T)
}
