// Package array
// Author: momentics <momentics@gmail.com>
//
// Bounded sequence containers over caller-owned storage.
//
// Array wraps a fixed buffer and provides stack, sorted-set and general
// array operations: push/pop, positional insert/delete, linear and binary
// search, bubble/insertion/quick/merge sorts over inclusive sub-ranges,
// rotation, map and filter. Ring wraps a buffer as a circular FIFO.
//
// Neither type allocates, grows, or frees its buffer. The only transient
// resource is the scratch region leased by MergeSort from an api.Scratch
// provider. Containers are not safe for concurrent use.
//
// Element copy and comparison come from the api.Ops type parameter, so
// every instantiation is specialized for its element type:
//
//	var buf [16]int
//	a := array.NewOrdered(buf[:])
//	a.Push(3)
//	a.BinaryInsert(1)
package array
