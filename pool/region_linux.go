// File: pool/region_linux.go
//go:build linux
// +build linux

//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "golang.org/x/sys/unix"

// mapAnon maps n bytes of zeroed anonymous memory.
func mapAnon(n int) ([]byte, error) {
	return unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

func unmapAnon(data []byte) error {
	return unix.Munmap(data)
}
