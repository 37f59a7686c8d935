// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package bitset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-seq/api"
	"github.com/momentics/hioload-seq/pool"
)

func newBits(t *testing.T, n int) *Bitset {
	t.Helper()
	b, err := New(make([]byte, Bytes(n)), n)
	require.NoError(t, err)
	return b
}

func TestBytes(t *testing.T) {
	for n, want := range map[int]int{0: 0, 1: 1, 7: 1, 8: 1, 9: 2, 10: 2, 16: 2, 17: 3} {
		assert.Equal(t, want, Bytes(n), "bits=%d", n)
	}
}

func TestBitset_Scenario(t *testing.T) {
	b := newBits(t, 10)
	assert.Equal(t, "00 0000 0000", b.String())

	b.Set(1)
	assert.Equal(t, "00 0000 0010", b.String())
	for k := 0; k < 10; k++ {
		assert.Equal(t, k == 1, b.Read(k), "bit %d", k)
	}

	b.Set(10)
	assert.Equal(t, 1, b.Count())
	assert.False(t, b.Read(10))

	b.SetAll()
	for k := 0; k < 10; k++ {
		assert.True(t, b.Read(k), "bit %d", k)
	}
	assert.Equal(t, 10, b.Count())
	assert.Equal(t, "11 1111 1111", b.String())

	b.ClearAll()
	assert.Equal(t, 0, b.Count())
}

func TestBitset_RoundTrip(t *testing.T) {
	b := newBits(t, 19)
	for n := 0; n < 19; n++ {
		b.Set(n)
		assert.True(t, b.Read(n))
		b.Clear(n)
		assert.False(t, b.Read(n))

		before := b.Read(n)
		b.Toggle(n)
		assert.NotEqual(t, before, b.Read(n))
		b.Toggle(n)
		assert.Equal(t, before, b.Read(n))
	}
}

func TestBitset_OutOfRangeIsInert(t *testing.T) {
	buf := make([]byte, 2)
	b, err := New(buf, 10)
	require.NoError(t, err)

	for _, n := range []int{-1, 10, 11, 15, 100} {
		b.Set(n)
		b.Toggle(n)
		assert.False(t, b.Read(n))
	}
	assert.Equal(t, []byte{0, 0}, buf)

	b.SetAll()
	assert.Equal(t, []byte{0xFF, 0x03}, buf, "padding bits stay clear")
	b.Clear(12)
	assert.Equal(t, 10, b.Count())
}

func TestBitset_LSBFirstLayout(t *testing.T) {
	buf := make([]byte, 2)
	b, err := New(buf, 16)
	require.NoError(t, err)
	b.Set(0)
	b.Set(9)
	b.Set(15)
	assert.Equal(t, []byte{0x01, 0x82}, buf)
}

func TestBitset_InitValidatesAndZeroes(t *testing.T) {
	_, err := New(make([]byte, 1), 9)
	assert.ErrorIs(t, err, api.ErrInvalidArgument)
	_, err = New(nil, -1)
	assert.ErrorIs(t, err, api.ErrInvalidArgument)

	buf := []byte{0xAA, 0xBB, 0xCC}
	b, err := New(buf, 12)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0xCC}, buf, "bytes past Bytes(12) are not touched")
	assert.Equal(t, 12, b.Len())

	var empty Bitset
	require.NoError(t, empty.Init(nil, 0))
	empty.SetAll()
	assert.Equal(t, 0, empty.Count())
	assert.Equal(t, "", empty.String())
}

func TestBitset_OnMappedRegion(t *testing.T) {
	region, err := pool.MapBytes(Bytes(100))
	require.NoError(t, err)
	defer region.Close()

	b, err := New(region.Bytes(), 100)
	require.NoError(t, err)
	b.Set(99)
	b.Set(0)
	assert.Equal(t, 2, b.Count())
	assert.True(t, b.Read(99))
}

func TestBitset_OperationsDoNotAllocate(t *testing.T) {
	b := newBits(t, 64)
	allocs := testing.AllocsPerRun(100, func() {
		b.Set(3)
		b.Toggle(4)
		b.Clear(3)
		b.Read(4)
		b.SetAll()
		b.ClearAll()
		b.Count()
	})
	assert.Zero(t, allocs)
}
