// File: array/search.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linear and binary search, set-style unique insertion.

package array

import "github.com/momentics/hioload-seq/api"

// Find returns the index of the first element equal to x under O.Compare,
// or api.NotFound.
func (a *Array[T, O]) Find(x T) int {
	for i := 0; i < a.size; i++ {
		if a.compareTo(x, i) == 0 {
			return i
		}
	}
	return api.NotFound
}

// PushUnique appends x unless an equal element is already present.
func (a *Array[T, O]) PushUnique(x T) bool {
	if a.Find(x) >= 0 {
		return false
	}
	return a.Push(x)
}

// InsertUnique inserts x at i unless an equal element is already present.
func (a *Array[T, O]) InsertUnique(x T, i int) bool {
	if a.Find(x) >= 0 {
		return false
	}
	return a.Insert(x, i)
}

// lowerBound returns the first index whose element is >= x, assuming the
// valid range is sorted ascending.
func (a *Array[T, O]) lowerBound(x T) int {
	lo, hi := 0, a.size-1
	idx := a.size
	for lo <= hi {
		mid := lo + (hi-lo)/2
		if a.compareTo(x, mid) > 0 {
			lo = mid + 1
		} else {
			idx = mid
			hi = mid - 1
		}
	}
	return idx
}

// BinaryInsert inserts x at its sorted position. The valid range must
// already be sorted ascending. Equal elements are inserted before their
// existing peers.
func (a *Array[T, O]) BinaryInsert(x T) bool {
	if a.size >= len(a.buf) {
		return false
	}
	return a.Insert(x, a.lowerBound(x))
}

// BinarySearch looks x up in a container sorted ascending. It returns an
// index holding an element equal to x, or api.NotFound.
func (a *Array[T, O]) BinarySearch(x T) int {
	if a.size <= 0 {
		return api.NotFound
	}
	if a.compareTo(x, a.size-1) > 0 || a.compareTo(x, 0) < 0 {
		return api.NotFound
	}
	lo, hi := 0, a.size-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch c := a.compareTo(x, mid); {
		case c == 0:
			return mid
		case c > 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return api.NotFound
}

// IsSorted reports whether the valid range is in ascending order.
func (a *Array[T, O]) IsSorted() bool {
	for i := 1; i < a.size; i++ {
		if a.less(i, i-1) {
			return false
		}
	}
	return true
}
