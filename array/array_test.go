// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-seq/api"
	"github.com/momentics/hioload-seq/fake"
)

func filled(capacity int, vs ...int) *Array[int, api.Ordered[int]] {
	a := NewOrdered(make([]int, capacity))
	for _, v := range vs {
		a.Push(v)
	}
	return a
}

func TestArray_CapacityScenario(t *testing.T) {
	var buf [5]int
	a := NewOrdered(buf[:])
	for x := 1; x <= 5; x++ {
		require.True(t, a.Push(x))
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, a.View())

	assert.False(t, a.Push(6))
	assert.Equal(t, 5, a.Len())
	assert.True(t, a.IsFull())

	require.True(t, a.Delete(2))
	assert.Equal(t, []int{1, 2, 4, 5}, a.View())

	require.True(t, a.Insert(9, 1))
	assert.Equal(t, []int{1, 9, 2, 4, 5}, a.View())
	assert.Equal(t, "[1, 9, 2, 4, 5]", a.String())
}

func TestArray_ZeroValue(t *testing.T) {
	var a Array[int, api.Ordered[int]]
	assert.Equal(t, 0, a.Cap())
	assert.False(t, a.Push(1))
	_, ok := a.Pop()
	assert.False(t, ok)
	assert.Equal(t, api.NotFound, a.Find(1))
	assert.Equal(t, "[]", a.String())

	a.Init(make([]int, 2))
	assert.True(t, a.Push(1))
	assert.Equal(t, 2, a.Cap())
}

func TestArray_PushPopDuality(t *testing.T) {
	a := filled(4, 7, 8)
	before := append([]int(nil), a.View()...)

	require.True(t, a.Push(42))
	v, ok := a.Pop()
	require.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Equal(t, before, a.View())

	a.Clear()
	_, ok = a.Pop()
	assert.False(t, ok)
	assert.True(t, a.IsEmpty())
}

func TestArray_InsertDeleteDuality(t *testing.T) {
	for i := 0; i <= 4; i++ {
		a := filled(6, 10, 20, 30, 40)
		before := append([]int(nil), a.View()...)
		require.True(t, a.Insert(99, i), "insert at %d", i)
		v, _ := a.At(i)
		assert.Equal(t, 99, v)
		require.True(t, a.Delete(i), "delete at %d", i)
		assert.Equal(t, before, a.View())
	}
}

func TestArray_InsertDeleteBounds(t *testing.T) {
	a := filled(3, 1, 2)
	assert.False(t, a.Insert(5, -1))
	assert.False(t, a.Insert(5, 3))
	assert.True(t, a.Insert(5, 2))
	assert.False(t, a.Insert(6, 0), "full")
	assert.Equal(t, []int{1, 2, 5}, a.View())

	assert.False(t, a.Delete(-1))
	assert.False(t, a.Delete(3))
	assert.Equal(t, 3, a.Len())

	empty := filled(3)
	assert.False(t, empty.Delete(0))
}

func TestArray_Accessors(t *testing.T) {
	a := filled(4, 1, 2, 3)
	_, ok := a.At(3)
	assert.False(t, ok)
	assert.Nil(t, a.Ref(-1))
	assert.Nil(t, a.Ref(3))

	*a.Ref(0) = 11
	assert.True(t, a.Set(1, 22))
	assert.False(t, a.Set(3, 0))
	assert.Equal(t, []int{11, 22, 3}, a.View())
}

func TestArray_FindAndUnique(t *testing.T) {
	a := filled(5, 4, 2, 4)
	assert.Equal(t, 0, a.Find(4))
	assert.Equal(t, 1, a.Find(2))
	assert.Equal(t, api.NotFound, a.Find(9))

	assert.False(t, a.PushUnique(2))
	assert.True(t, a.PushUnique(9))
	assert.False(t, a.InsertUnique(9, 0))
	assert.True(t, a.InsertUnique(1, 0))
	assert.Equal(t, []int{1, 4, 2, 4, 9}, a.View())

	assert.False(t, a.PushUnique(100), "full")
}

func TestArray_BinaryInsertKeepsOrder(t *testing.T) {
	a := filled(16)
	for _, v := range []int{5, 1, 9, 3, 3, 7, 0, 12, 5} {
		require.True(t, a.BinaryInsert(v))
		require.True(t, a.IsSorted(), "after inserting %d: %v", v, a.View())
	}
	assert.Equal(t, []int{0, 1, 3, 3, 5, 5, 7, 9, 12}, a.View())

	full := filled(2, 1, 2)
	assert.False(t, full.BinaryInsert(0))
	assert.Equal(t, []int{1, 2}, full.View())
}

func TestArray_BinaryInsertBeforeEqualPeers(t *testing.T) {
	a := New[fake.Tagged, fake.TaggedOps](make([]fake.Tagged, 4))
	a.Push(fake.Tagged{Key: 1, Seq: 0})
	a.Push(fake.Tagged{Key: 2, Seq: 1})
	a.Push(fake.Tagged{Key: 2, Seq: 2})
	require.True(t, a.BinaryInsert(fake.Tagged{Key: 2, Seq: 9}))
	assert.Equal(t, 9, a.View()[1].Seq)
}

func TestArray_BinarySearch(t *testing.T) {
	a := filled(8, 1, 3, 5, 7, 9, 11)
	for i, v := range a.View() {
		assert.Equal(t, i, a.BinarySearch(v))
	}
	for _, miss := range []int{0, 2, 10, 12, -5} {
		assert.Equal(t, api.NotFound, a.BinarySearch(miss), "value %d", miss)
	}
	assert.Equal(t, api.NotFound, filled(2).BinarySearch(1))
}

func TestArray_Rotate(t *testing.T) {
	a := filled(6, 1, 2, 3, 4, 5)
	a.RotateLeft(2)
	assert.Equal(t, []int{3, 4, 5, 1, 2}, a.View())
	a.RotateRight(2)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, a.View())

	a.RotateRight(7)
	assert.Equal(t, []int{4, 5, 1, 2, 3}, a.View())
	a.RotateLeft(12)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, a.View())

	a.RotateLeft(-1)
	a.RotateRight(-3)
	a.RotateLeft(5)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, a.View())

	empty := filled(3)
	empty.RotateLeft(1)
	assert.Equal(t, 0, empty.Len())
}

func TestArray_RotateRoundTrip(t *testing.T) {
	for size := 1; size <= 7; size++ {
		for n := 0; n <= 2*size+1; n++ {
			a := filled(size)
			for i := 0; i < size; i++ {
				a.Push(i * 10)
			}
			want := append([]int(nil), a.View()...)
			a.RotateLeft(n)
			a.RotateRight(n)
			require.Equal(t, want, a.View(), "size=%d n=%d left-right", size, n)
			a.RotateRight(n)
			a.RotateLeft(n)
			require.Equal(t, want, a.View(), "size=%d n=%d right-left", size, n)
		}
	}
}

func TestArray_MapFilter(t *testing.T) {
	a := filled(8, 1, 2, 3, 4, 5, 6, 7)
	a.Map(func(v *int) { *v *= 10 })
	assert.Equal(t, []int{10, 20, 30, 40, 50, 60, 70}, a.View())

	kept := a.Filter(func(v *int) bool { return *v%20 != 0 })
	assert.Equal(t, 4, kept)
	assert.Equal(t, []int{10, 30, 50, 70}, a.View())

	assert.Equal(t, 0, a.Filter(func(*int) bool { return false }))
	assert.True(t, a.IsEmpty())
}

func TestArray_FilterStability(t *testing.T) {
	a := New[fake.Tagged, fake.TaggedOps](make([]fake.Tagged, 10))
	for i := 0; i < 10; i++ {
		a.Push(fake.Tagged{Key: i % 3, Seq: i})
	}
	kept := a.Filter(func(v *fake.Tagged) bool { return v.Key == 1 })
	require.Equal(t, 3, kept)
	assert.Equal(t, []fake.Tagged{{Key: 1, Seq: 1}, {Key: 1, Seq: 4}, {Key: 1, Seq: 7}}, a.View())
}

func TestArray_DeepCopiesThroughOps(t *testing.T) {
	a := New[fake.Labels, fake.LabelsOps](make([]fake.Labels, 2))
	in := fake.Labels{Values: []string{"a", "b"}}
	require.True(t, a.Push(in))
	in.Values[0] = "mutated"

	out, ok := a.At(0)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, out.Values)

	out.Values[1] = "mutated"
	again, _ := a.Pop()
	assert.Equal(t, []string{"a", "b"}, again.Values)
}

func TestArray_Records(t *testing.T) {
	a := New[fake.Record, fake.ByName](make([]fake.Record, 5))
	for _, r := range []fake.Record{
		fake.NewRecord("Alice", 3),
		fake.NewRecord("Bob", 1),
		fake.NewRecord("Charlie", 2),
	} {
		require.True(t, a.Push(r))
	}
	require.True(t, a.Insert(fake.NewRecord("Dave", 4), 1))
	require.True(t, a.Delete(2))
	a.Sort()

	names := func() []string {
		var out []string
		for _, r := range a.View() {
			out = append(out, r.NameString())
		}
		return out
	}
	assert.Equal(t, []string{"Alice", "Charlie", "Dave"}, names())

	eve := fake.NewRecord("Eve", 5)
	require.True(t, a.BinaryInsert(eve))
	assert.Equal(t, 3, a.BinarySearch(eve))
	assert.Equal(t, api.NotFound, a.BinarySearch(fake.NewRecord("Bob", 1)))
}

func TestArray_CapacityInvariant(t *testing.T) {
	a := filled(4)
	ops := []func(i int){
		func(i int) { a.Push(i) },
		func(int) { a.Pop() },
		func(i int) { a.Insert(i, i%5) },
		func(i int) { a.Delete(i % 4) },
		func(i int) { a.BinaryInsert(i) },
		func(i int) { a.PushUnique(i % 3) },
		func(int) { a.Sort() },
		func(i int) { a.RotateLeft(i) },
		func(int) { a.Filter(func(v *int) bool { return *v%2 == 0 }) },
	}
	for i := 0; i < 500; i++ {
		ops[(i*7+i/3)%len(ops)](i)
		require.GreaterOrEqual(t, a.Len(), 0)
		require.LessOrEqual(t, a.Len(), a.Cap())
	}
}
