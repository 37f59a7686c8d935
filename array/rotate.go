// File: array/rotate.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package array

// RotateLeft moves every element n positions toward index 0, wrapping
// around. n is taken modulo Len(); negative n is ignored.
func (a *Array[T, O]) RotateLeft(n int) {
	if n < 0 || a.size == 0 {
		return
	}
	k := n % a.size
	if k == 0 {
		return
	}
	a.reverse(0, k-1)
	a.reverse(k, a.size-1)
	a.reverse(0, a.size-1)
}

// RotateRight moves every element n positions toward the end, wrapping
// around. n is taken modulo Len(); negative n is ignored.
func (a *Array[T, O]) RotateRight(n int) {
	if n < 0 || a.size == 0 {
		return
	}
	k := n % a.size
	if k == 0 {
		return
	}
	a.reverse(0, a.size-1)
	a.reverse(0, k-1)
	a.reverse(k, a.size-1)
}

// reverse flips the inclusive range [lo, hi].
func (a *Array[T, O]) reverse(lo, hi int) {
	for lo < hi {
		a.swap(lo, hi)
		lo++
		hi--
	}
}
