// Package pool
// Author: momentics <momentics@gmail.com>
//
// Memory providers for hioload-seq containers.
// Scratch providers (Heap, Arena, Recycler) lease the temporary region
// merge sort needs; MapBytes hands out fixed byte regions outside the Go
// heap for static container and bitset storage.
// See scratch.go, recycler.go and region.go for implementation details.
package pool
