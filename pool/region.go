// File: pool/region.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed byte regions for static container storage.

package pool

import (
	"github.com/pkg/errors"

	"github.com/momentics/hioload-seq/api"
)

// Region is a fixed-length byte region. On Linux it is an anonymous
// private mapping outside the Go heap; elsewhere, or when mapping fails,
// it is an ordinary slice.
type Region struct {
	data   []byte
	mapped bool
	closed bool
}

// MapBytes reserves a region of exactly n bytes.
func MapBytes(n int) (*Region, error) {
	if n <= 0 {
		return nil, errors.Wrapf(api.ErrInvalidArgument, "region: size %d", n)
	}
	if data, err := mapAnon(n); err == nil {
		return &Region{data: data, mapped: true}, nil
	}
	return &Region{data: make([]byte, n)}, nil
}

// Bytes returns the region's storage. It must not be used after Close.
func (r *Region) Bytes() []byte { return r.data }

// Len returns the region size in bytes.
func (r *Region) Len() int { return len(r.data) }

// Mapped reports whether the region lives outside the Go heap.
func (r *Region) Mapped() bool { return r.mapped }

// Close releases the region. Closing twice is a no-op.
func (r *Region) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	data := r.data
	r.data = nil
	if r.mapped {
		return errors.Wrap(unmapAnon(data), "region: unmap")
	}
	return nil
}
