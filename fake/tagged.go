// Package fake
// Author: momentics <momentics@gmail.com>

package fake

import "github.com/momentics/hioload-seq/api"

var (
	_ api.Ops[Tagged] = TaggedOps{}
	_ api.Ops[Labels] = LabelsOps{}
)

// Tagged carries a sort key plus the position it was created at, so tests
// can check that stable sorts keep equal keys in their original order.
type Tagged struct {
	Key int
	Seq int
}

// TaggedOps compares by Key only.
type TaggedOps struct{}

func (TaggedOps) Copy(dst, src *Tagged) { *dst = *src }

func (TaggedOps) Compare(a, b *Tagged) int {
	switch {
	case a.Key > b.Key:
		return 1
	case a.Key < b.Key:
		return -1
	default:
		return 0
	}
}

// Labels carries a heap-backed field so tests can check that containers
// deep-copy through Ops instead of sharing storage with callers.
type Labels struct {
	Values []string
}

// LabelsOps deep-copies Values and orders by the first label.
type LabelsOps struct{}

func (LabelsOps) Copy(dst, src *Labels) {
	if src.Values == nil {
		dst.Values = nil
		return
	}
	dst.Values = append(make([]string, 0, len(src.Values)), src.Values...)
}

func (LabelsOps) Compare(a, b *Labels) int {
	var x, y string
	if len(a.Values) > 0 {
		x = a.Values[0]
	}
	if len(b.Values) > 0 {
		y = b.Values[0]
	}
	switch {
	case x > y:
		return 1
	case x < y:
		return -1
	default:
		return 0
	}
}
