// File: array/sort.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// In-place sorts. Sort covers the whole valid range; the others take an
// inclusive [lo, hi] window and do nothing unless 0 <= lo < hi < Len().

package array

import (
	"github.com/pkg/errors"

	"github.com/momentics/hioload-seq/api"
	"github.com/momentics/hioload-seq/pool"
)

// Sort bubble-sorts the valid range: adjacent swaps until no inversions
// remain. Stable, O(n²).
func (a *Array[T, O]) Sort() {
	for n := a.size; n > 1; n-- {
		swapped := false
		for j := 0; j < n-1; j++ {
			if a.less(j+1, j) {
				a.swap(j, j+1)
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

func (a *Array[T, O]) validRange(lo, hi int) bool {
	return lo >= 0 && hi < a.size && lo < hi
}

// InsertionSort sorts [lo, hi]. Stable; linear on sorted input.
func (a *Array[T, O]) InsertionSort(lo, hi int) {
	if !a.validRange(lo, hi) {
		return
	}
	a.insertionSort(lo, hi)
}

func (a *Array[T, O]) insertionSort(lo, hi int) {
	for i := lo + 1; i <= hi; i++ {
		a.ops.Copy(&a.pivot, &a.buf[i])
		j := i - 1
		for j >= lo && a.ops.Compare(&a.buf[j], &a.pivot) > 0 {
			a.ops.Copy(&a.buf[j+1], &a.buf[j])
			j--
		}
		a.ops.Copy(&a.buf[j+1], &a.pivot)
	}
	a.pivot = zero[T]()
}

// QuickSort sorts [lo, hi] using median-of-three pivots and Hoare
// partitioning. It recurses into the smaller side only, so stack depth is
// O(log n). Not stable.
func (a *Array[T, O]) QuickSort(lo, hi int) {
	if !a.validRange(lo, hi) {
		return
	}
	a.quickSort(lo, hi, 0)
	a.pivot = zero[T]()
}

// quickSortFrame, when set, observes the recursion depth of every
// quickSort frame.
var quickSortFrame func(depth int)

func (a *Array[T, O]) quickSort(lo, hi, depth int) {
	if quickSortFrame != nil {
		quickSortFrame(depth)
	}
	for lo < hi {
		p := a.partition(lo, hi)
		if p-lo < hi-p {
			a.quickSort(lo, p, depth+1)
			lo = p + 1
		} else {
			a.quickSort(p+1, hi, depth+1)
			hi = p
		}
	}
}

// partition orders buf[lo], buf[mid], buf[hi], then splits [lo, hi] around
// the median. The returned p satisfies lo <= p < hi, with every element of
// [lo, p] <= pivot <= every element of [p+1, hi].
func (a *Array[T, O]) partition(lo, hi int) int {
	mid := lo + (hi-lo)/2
	if a.less(mid, lo) {
		a.swap(mid, lo)
	}
	if a.less(hi, lo) {
		a.swap(hi, lo)
	}
	if a.less(hi, mid) {
		a.swap(hi, mid)
	}
	a.ops.Copy(&a.pivot, &a.buf[mid])

	i, j := lo-1, hi+1
	for {
		for {
			i++
			if a.ops.Compare(&a.buf[i], &a.pivot) >= 0 {
				break
			}
		}
		for {
			j--
			if a.ops.Compare(&a.buf[j], &a.pivot) <= 0 {
				break
			}
		}
		if i >= j {
			return j
		}
		a.swap(i, j)
	}
}

// MergeSort sorts [lo, hi] with a stable top-down merge sort, leasing
// hi-lo+1 elements of scratch from the provider set by SetScratch (the
// heap by default). If the lease fails the range is left untouched and
// the error wraps api.ErrScratchExhausted.
func (a *Array[T, O]) MergeSort(lo, hi int) error {
	s := a.scratch
	if s == nil {
		s = pool.Heap[T]{}
	}
	return a.MergeSortWith(lo, hi, s)
}

// MergeSortWith is MergeSort with an explicit scratch provider.
func (a *Array[T, O]) MergeSortWith(lo, hi int, s api.Scratch[T]) error {
	if lo < 0 || hi >= a.size {
		return errors.Wrapf(api.ErrOutOfRange, "merge sort [%d, %d] of %d elements", lo, hi, a.size)
	}
	if lo >= hi {
		return nil
	}
	n := hi - lo + 1
	scratch, err := s.Acquire(n)
	if err != nil {
		return errors.Wrapf(err, "merge sort [%d, %d]", lo, hi)
	}
	defer s.Release(scratch)
	if len(scratch) < n {
		return errors.Wrapf(api.ErrScratchExhausted, "merge sort: provider returned %d of %d elements", len(scratch), n)
	}
	a.mergeSort(scratch, lo, hi)
	return nil
}

func (a *Array[T, O]) mergeSort(scratch []T, lo, hi int) {
	if lo >= hi {
		return
	}
	mid := lo + (hi-lo)/2
	a.mergeSort(scratch, lo, mid)
	a.mergeSort(scratch, mid+1, hi)
	if !a.less(mid+1, mid) {
		return
	}
	a.merge(scratch, lo, mid, hi)
}

// merge joins the sorted runs [lo, mid] and [mid+1, hi]. Only the left
// run is staged in scratch; the write cursor never overtakes the right one.
func (a *Array[T, O]) merge(scratch []T, lo, mid, hi int) {
	left := scratch[:mid-lo+1]
	for k := range left {
		a.ops.Copy(&left[k], &a.buf[lo+k])
	}
	i, j, k := 0, mid+1, lo
	for i < len(left) && j <= hi {
		if a.ops.Compare(&a.buf[j], &left[i]) < 0 {
			a.ops.Copy(&a.buf[k], &a.buf[j])
			j++
		} else {
			a.ops.Copy(&a.buf[k], &left[i])
			i++
		}
		k++
	}
	for i < len(left) {
		a.ops.Copy(&a.buf[k], &left[i])
		i++
		k++
	}
}
