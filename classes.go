// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package textcase

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsSpaces reports whether s is non-empty and contains only ' ' characters.
func IsSpaces(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' {
			return false
		}
	}
	return true
}

// IsRepeatedChar reports whether s is non-empty and every rune of s is the
// same rune. Runes are compared by their encoding, so invalid UTF-8 only
// repeats if the same bytes repeat.
func IsRepeatedChar(s string) bool {
	if len(s) == 0 {
		return false
	}
	_, n := utf8.DecodeRuneInString(s)
	c := s[:n]
	for i := n; i < len(s); i += n {
		if !strings.HasPrefix(s[i:], c) {
			return false
		}
	}
	return true
}

// HasVowels reports whether s contains one of the ASCII vowels "aeiou" in
// either case.
func HasVowels(s string) bool {
	for i := 0; i < len(s); i++ {
		switch toLower(s[i]) {
		case 'a', 'e', 'i', 'o', 'u':
			return true
		}
	}
	return false
}

// IsNumeric reports whether s contains only the ASCII digits '0' through '9'.
// It returns true for the empty string.
func IsNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// HasNumbers reports whether s contains a Unicode decimal digit.
func HasNumbers(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= utf8.RuneSelf {
			return strings.IndexFunc(s[i:], unicode.IsDigit) != -1
		}
		if isDigit(c) {
			return true
		}
	}
	return false
}

// IsAlphaNumeric reports whether s contains only ASCII letters and digits.
// It returns true for the empty string.
func IsAlphaNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; !isDigit(c) && !isLower(c) && !isUpper(c) {
			return false
		}
	}
	return true
}

// IsLetters reports whether s contains only ASCII letters. It returns true
// for the empty string.
func IsLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; !isLower(c) && !isUpper(c) {
			return false
		}
	}
	return true
}

// IndexOf returns the rune index of the first instance of substr in s, or -1
// if substr is not present in s. Comparison is exact.
//
//	IndexOf("chicken", "ken") == 4
//	IndexOf("für", "r") == 2
func IndexOf(s, substr string) int {
	i := strings.Index(s, substr)
	if i <= 0 || isASCII(s[:i]) {
		return i
	}
	return utf8.RuneCountInString(s[:i])
}
