// File: api/ops.go
// Author: momentics <momentics@gmail.com>
//
// Element contract used to instantiate containers per element type.

package api

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Ops binds the copy and comparison primitives of an element type.
// Containers take the implementation as a type parameter, so the
// operations are fixed when the container type is instantiated.
type Ops[T any] interface {
	// Copy deep-copies *src into *dst.
	Copy(dst, src *T)
	// Compare returns <0, 0 or >0. It must be a strict weak ordering;
	// 0 is treated as equality by searches and uniqueness checks.
	Compare(a, b *T) int
}

// Ordered is the default Ops for primitive numbers and strings.
// Floating-point NaN sorts before every other value and equals only
// another NaN, which keeps the ordering strict weak.
type Ordered[T constraints.Ordered] struct{}

func (Ordered[T]) Copy(dst, src *T) { *dst = *src }

func (Ordered[T]) Compare(a, b *T) int { return cmp.Compare(*a, *b) }

// Reverse flips the order of another Ops implementation.
type Reverse[T any, O Ops[T]] struct {
	Base O
}

func (r Reverse[T, O]) Copy(dst, src *T) { r.Base.Copy(dst, src) }

func (r Reverse[T, O]) Compare(a, b *T) int { return r.Base.Compare(b, a) }
