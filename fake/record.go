// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake element types for exercising containers in tests and examples.

package fake

import (
	"bytes"
	"fmt"

	"github.com/momentics/hioload-seq/api"
)

// NameLen is the fixed capacity of Record.Name.
const NameLen = 64

// Record is a small value type with an embedded fixed-size string.
type Record struct {
	Name [NameLen]byte
	ID   int
}

// NewRecord builds a Record, truncating name to NameLen-1 bytes so it
// always stays NUL-terminated.
func NewRecord(name string, id int) Record {
	var r Record
	copy(r.Name[:NameLen-1], name)
	r.ID = id
	return r
}

// NameString returns the name up to its terminator.
func (r Record) NameString() string {
	return string(terminated(r.Name[:]))
}

func (r Record) String() string {
	return fmt.Sprintf("{name: %s, id: %d}", r.NameString(), r.ID)
}

var (
	_ api.Ops[Record] = ByName{}
	_ api.Ops[Record] = ByID{}
)

// ByName orders records by name.
type ByName struct{}

// Copy duplicates the whole record, name bytes included.
func (ByName) Copy(dst, src *Record) { *dst = *src }

func (ByName) Compare(a, b *Record) int {
	return bytes.Compare(terminated(a.Name[:]), terminated(b.Name[:]))
}

// ByID orders records by ID.
type ByID struct{}

func (ByID) Copy(dst, src *Record) { *dst = *src }

func (ByID) Compare(a, b *Record) int {
	switch {
	case a.ID > b.ID:
		return 1
	case a.ID < b.ID:
		return -1
	default:
		return 0
	}
}

func terminated(b []byte) []byte {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return b[:i]
	}
	return b
}
