// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package bytealg

import (
	"bytes"
	"strings"
)

// IndexAll appends the index of every exact occurrence of c in b to dst and
// returns the extended slice.
func IndexAll(dst []int, b []byte, c byte) []int {
	off := 0
	for {
		n := bytes.IndexByte(b[off:], c)
		if n == -1 {
			return dst
		}
		off += n
		dst = append(dst, off)
		off++
	}
}

// IndexAllString appends the index of every exact occurrence of c in s to
// dst and returns the extended slice.
func IndexAllString(dst []int, s string, c byte) []int {
	off := 0
	for {
		n := strings.IndexByte(s[off:], c)
		if n == -1 {
			return dst
		}
		off += n
		dst = append(dst, off)
		off++
	}
}
