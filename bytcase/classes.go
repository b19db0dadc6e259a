// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package bytcase

import (
	"bytes"
	"unicode"
	"unicode/utf8"
)

// IsSpaces reports whether s is non-empty and contains only ' ' characters.
func IsSpaces(s []byte) bool {
	if len(s) == 0 {
		return false
	}
	for _, c := range s {
		if c != ' ' {
			return false
		}
	}
	return true
}

// IsRepeatedChar reports whether s is non-empty and every rune of s is the
// same rune.
func IsRepeatedChar(s []byte) bool {
	if len(s) == 0 {
		return false
	}
	_, n := utf8.DecodeRune(s)
	c := s[:n]
	for i := n; i < len(s); i += n {
		if !bytes.HasPrefix(s[i:], c) {
			return false
		}
	}
	return true
}

// HasVowels reports whether s contains one of the ASCII vowels "aeiou" in
// either case.
func HasVowels(s []byte) bool {
	for _, c := range s {
		switch toLower(c) {
		case 'a', 'e', 'i', 'o', 'u':
			return true
		}
	}
	return false
}

// IsNumeric reports whether s contains only the ASCII digits '0' through '9'.
func IsNumeric(s []byte) bool {
	for _, c := range s {
		if !isDigit(c) {
			return false
		}
	}
	return true
}

// HasNumbers reports whether s contains a Unicode decimal digit.
func HasNumbers(s []byte) bool {
	for i, c := range s {
		if c >= utf8.RuneSelf {
			return bytes.IndexFunc(s[i:], unicode.IsDigit) != -1
		}
		if isDigit(c) {
			return true
		}
	}
	return false
}

// IsAlphaNumeric reports whether s contains only ASCII letters and digits.
func IsAlphaNumeric(s []byte) bool {
	for _, c := range s {
		if !isDigit(c) && !isLower(c) && !isUpper(c) {
			return false
		}
	}
	return true
}

// IsLetters reports whether s contains only ASCII letters.
func IsLetters(s []byte) bool {
	for _, c := range s {
		if !isLower(c) && !isUpper(c) {
			return false
		}
	}
	return true
}

// IndexOf returns the rune index of the first instance of substr in s, or -1
// if substr is not present in s.
func IndexOf(s, substr []byte) int {
	i := bytes.Index(s, substr)
	if i <= 0 || isASCII(s[:i]) {
		return i
	}
	return utf8.RuneCount(s[:i])
}
