// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package textcase

import (
	"strings"

	"github.com/charlievieth/textcase/internal/bytealg"
)

func isLower(c byte) bool { return 'a' <= c && c <= 'z' }
func isUpper(c byte) bool { return 'A' <= c && c <= 'Z' }
func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func toUpper(c byte) byte {
	if isLower(c) {
		c -= 'a' - 'A'
	}
	return c
}

func toLower(c byte) byte {
	if isUpper(c) {
		c += 'a' - 'A'
	}
	return c
}

func isASCII(s string) bool { return bytealg.IndexNonASCII(s) == -1 }

// equalFoldASCII reports whether the equal length ASCII strings s and t are
// equal under ASCII case folding.
func equalFoldASCII(s, t string) bool {
	for i := 0; i < len(s); i++ {
		if toLower(s[i]) != toLower(t[i]) {
			return false
		}
	}
	return true
}

func alternateCasesASCII(s string) string {
	b := make([]byte, len(s))
	b[0] = s[0]
	upper := isLower(s[0])
	for i := 1; i < len(s); i++ {
		if upper {
			b[i] = toUpper(s[i])
		} else {
			b[i] = toLower(s[i])
		}
		upper = !upper
	}
	return string(b)
}

func isAlternateCasesASCII(s string) bool {
	upper := !isLower(s[0])
	for i := 1; i < len(s); i++ {
		if upper {
			if isUpper(s[i]) {
				return false
			}
		} else if isLower(s[i]) {
			return false
		}
		upper = !upper
	}
	return true
}

func countTotalASCII(s, needle string, ignoreCase bool) int {
	n := len(needle)
	if n == 1 {
		if ignoreCase {
			return bytealg.CountString(s, needle[0])
		}
		return strings.Count(s, needle)
	}
	count := 0
	for i := 0; i < len(s) && i+n <= len(s); i++ {
		w := s[i : i+n]
		if w == needle || (ignoreCase && equalFoldASCII(w, needle)) {
			count++
		}
	}
	return count
}

func reverseASCII(s string) string {
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		b[len(s)-i-1] = s[i]
	}
	return string(b)
}
