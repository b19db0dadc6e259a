// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package bytealg contains the byte scanning primitives used by the ASCII
// fast paths of textcase and bytcase.
package bytealg

import "unicode/utf8"

func isAlpha(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
}

// IndexByteNonASCII returns the index of the first non-ASCII byte in b or -1.
func IndexByteNonASCII(b []byte) int {
	for i := 0; i < len(b); i++ {
		if b[i]&utf8.RuneSelf != 0 {
			return i
		}
	}
	return -1
}

// IndexNonASCII returns the index of the first non-ASCII byte in s or -1.
func IndexNonASCII(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i]&utf8.RuneSelf != 0 {
			return i
		}
	}
	return -1
}
