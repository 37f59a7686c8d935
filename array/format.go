// File: array/format.go
// Author: momentics <momentics@gmail.com>

package array

import (
	"fmt"
	"strings"
)

// String renders the valid elements as "[a, b, c]".
func (a *Array[T, O]) String() string {
	return render(a.size, func(i int) T { return a.buf[i] })
}

// String renders the queued elements head first.
func (r *Ring[T, O]) String() string {
	return render(r.size, func(i int) T { return r.buf[r.slot(i)] })
}

func render[T any](n int, at func(int) T) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, at(i))
	}
	sb.WriteByte(']')
	return sb.String()
}
