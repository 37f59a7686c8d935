// Package bitset
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-size bit vector over a caller-owned byte buffer.
// Bit n lives in byte n/8 at position n%8, least significant bit first.

package bitset

import (
	"math/bits"
	"strings"

	"github.com/pkg/errors"

	"github.com/momentics/hioload-seq/api"
)

// Bytes returns the minimum buffer length holding numBits bits.
func Bytes(numBits int) int {
	return (numBits + 7) / 8
}

// Bitset addresses Len() bits of a borrowed byte buffer.
type Bitset struct {
	bits []byte
	size int
}

// New binds a zeroed bit vector of numBits bits to buf.
func New(buf []byte, numBits int) (*Bitset, error) {
	b := &Bitset{}
	if err := b.Init(buf, numBits); err != nil {
		return nil, err
	}
	return b, nil
}

// Init (re)binds the vector to buf and zero-fills the bytes it uses.
func (b *Bitset) Init(buf []byte, numBits int) error {
	if numBits < 0 {
		return errors.Wrapf(api.ErrInvalidArgument, "bitset: negative size %d", numBits)
	}
	if need := Bytes(numBits); len(buf) < need {
		return errors.Wrapf(api.ErrInvalidArgument, "bitset: %d bits need %d bytes, buffer has %d", numBits, need, len(buf))
	}
	b.bits = buf[:Bytes(numBits)]
	b.size = numBits
	b.ClearAll()
	return nil
}

// Len returns the number of addressable bits.
func (b *Bitset) Len() int { return b.size }

// ClearAll sets every bit to 0.
func (b *Bitset) ClearAll() {
	for i := range b.bits {
		b.bits[i] = 0
	}
}

// SetAll sets every addressable bit to 1. Padding bits in the last byte
// stay 0.
func (b *Bitset) SetAll() {
	for i := range b.bits {
		b.bits[i] = 0xFF
	}
	if rem := b.size % 8; rem != 0 {
		b.bits[len(b.bits)-1] = byte(1)<<rem - 1
	}
}

// Read reports bit n; out-of-range reads return false.
func (b *Bitset) Read(n int) bool {
	if n < 0 || n >= b.size {
		return false
	}
	return b.bits[n/8]>>(n%8)&1 == 1
}

// Set sets bit n to 1. Out-of-range n is ignored.
func (b *Bitset) Set(n int) {
	if n < 0 || n >= b.size {
		return
	}
	b.bits[n/8] |= 1 << (n % 8)
}

// Clear sets bit n to 0. Out-of-range n is ignored.
func (b *Bitset) Clear(n int) {
	if n < 0 || n >= b.size {
		return
	}
	b.bits[n/8] &^= 1 << (n % 8)
}

// Toggle flips bit n. Out-of-range n is ignored.
func (b *Bitset) Toggle(n int) {
	if n < 0 || n >= b.size {
		return
	}
	b.bits[n/8] ^= 1 << (n % 8)
}

// Count returns the number of set bits.
func (b *Bitset) Count() int {
	total := 0
	for _, v := range b.bits {
		total += bits.OnesCount8(v)
	}
	return total
}

// String renders the bits most significant first, with a space after
// every bit whose index is a multiple of 4.
func (b *Bitset) String() string {
	var sb strings.Builder
	for i := b.size - 1; i >= 0; i-- {
		if b.Read(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
		if i%4 == 0 && i != 0 {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
