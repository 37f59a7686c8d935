// File: pool/region_other.go
//go:build !linux
// +build !linux

//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "github.com/momentics/hioload-seq/api"

func mapAnon(int) ([]byte, error) { return nil, api.ErrNotSupported }

func unmapAnon([]byte) error { return nil }
