// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package bytealg

import (
	"bytes"
	"strings"
)

// Count returns the number of ASCII case-insensitive occurrences of c in b.
func Count(b []byte, c byte) int {
	if !isAlpha(c) {
		return bytes.Count(b, []byte{c})
	}
	n := 0
	c |= ' '
	for _, cc := range b {
		if cc|' ' == c {
			n++
		}
	}
	return n
}

// CountString returns the number of ASCII case-insensitive occurrences of c
// in s.
func CountString(s string, c byte) int {
	if !isAlpha(c) {
		return strings.Count(s, string(c))
	}
	n := 0
	c |= ' '
	for i := 0; i < len(s); i++ {
		if s[i]|' ' == c {
			n++
		}
	}
	return n
}

