// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package bytcase implements the case and index operations of the textcase
// package for UTF-8 encoded byte slices.
//
// Functions that return a []byte always return a newly allocated slice, the
// argument is never modified.
package bytcase

import (
	"bytes"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/charlievieth/textcase/internal/bytealg"
)

// NoChar is returned by CharRight and CharMid when the requested position is
// not within the slice.
const NoChar rune = 0

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

func isASCII(s []byte) bool { return bytealg.IndexByteNonASCII(s) == -1 }

func clone(s []byte) []byte {
	if s == nil {
		return nil
	}
	return append([]byte{}, s...)
}

// AlternateCases returns a copy of s where the case of each rune after the
// first alternates between upper and lower case. The first rune is copied
// unchanged and the second rune takes the opposite case of the first.
func AlternateCases(s []byte) []byte {
	if len(s) == 0 {
		return clone(s)
	}
	r0, n := utf8.DecodeRune(s)
	if n == len(s) {
		return clone(s)
	}
	if isASCII(s) {
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
		return b
	}
	upper := unicode.ToUpper(r0) != r0
	b := make([]byte, n, len(s)+utf8.UTFMax)
	copy(b, s[:n])
	for s = s[n:]; len(s) > 0; {
		r, size := utf8.DecodeRune(s)
		if upper {
			r = unicode.ToUpper(r)
		} else {
			r = unicode.ToLower(r)
		}
		b = utf8.AppendRune(b, r)
		upper = !upper
		s = s[size:]
	}
	return b
}

// IsAlternateCases reports whether the case of each rune in s alternates
// starting from the case of the first rune. Slices with fewer than two runes
// are never alternating.
func IsAlternateCases(s []byte) bool {
	r0, n := utf8.DecodeRune(s)
	if n == len(s) {
		return false
	}
	upper := unicode.ToUpper(r0) == r0
	for s = s[n:]; len(s) > 0; {
		var r rune
		if c := s[0]; c < utf8.RuneSelf {
			r, n = rune(c), 1
		} else {
			r, n = utf8.DecodeRune(s)
		}
		if upper {
			if unicode.ToLower(r) != r {
				return false
			}
		} else if unicode.ToUpper(r) != r {
			return false
		}
		upper = !upper
		s = s[n:]
	}
	return true
}

// Capitalize returns a copy of s with its first rune mapped to upper case.
func Capitalize(s []byte) []byte {
	if len(s) == 0 {
		return clone(s)
	}
	r, n := utf8.DecodeRune(s)
	u := unicode.ToUpper(r)
	if u == r {
		return clone(s)
	}
	b := make([]byte, 0, len(s)+utf8.UTFMax)
	b = utf8.AppendRune(b, u)
	return append(b, s[n:]...)
}

// IsCapitalized reports whether the first rune of s is upper case. It
// returns false for an empty slice.
func IsCapitalized(s []byte) bool {
	if len(s) == 0 {
		return false
	}
	if c := s[0]; c < utf8.RuneSelf {
		return !isLower(c)
	}
	r, _ := utf8.DecodeRune(s)
	return unicode.ToUpper(r) == r
}

// IsLower reports whether every rune in s equals its lower case mapping.
func IsLower(s []byte) bool {
	for len(s) > 0 {
		if c := s[0]; c < utf8.RuneSelf {
			if isUpper(c) {
				return false
			}
			s = s[1:]
			continue
		}
		r, n := utf8.DecodeRune(s)
		if unicode.ToLower(r) != r {
			return false
		}
		s = s[n:]
	}
	return true
}

// IsUpper reports whether every rune in s equals its upper case mapping.
func IsUpper(s []byte) bool {
	for len(s) > 0 {
		if c := s[0]; c < utf8.RuneSelf {
			if isLower(c) {
				return false
			}
			s = s[1:]
			continue
		}
		r, n := utf8.DecodeRune(s)
		if unicode.ToUpper(r) != r {
			return false
		}
		s = s[n:]
	}
	return true
}

// appendCapitalized appends w to b with its first rune upper cased.
func appendCapitalized(b, w []byte) []byte {
	if len(w) == 0 {
		return b
	}
	r, n := utf8.DecodeRune(w)
	if u := unicode.ToUpper(r); u != r {
		return append(utf8.AppendRune(b, u), w[n:]...)
	}
	return append(b, w...)
}

// GetTitle returns a copy of s with the first rune of each ' ' separated
// word mapped to upper case. Runs of spaces are preserved.
func GetTitle(s []byte) []byte {
	if s == nil {
		return nil
	}
	b := make([]byte, 0, len(s))
	for {
		i := bytes.IndexByte(s, ' ')
		if i == -1 {
			return appendCapitalized(b, s)
		}
		b = append(appendCapitalized(b, s[:i]), ' ')
		s = s[i+1:]
	}
}

// IsTitle reports whether the first rune of each ' ' separated word in s is
// upper case. Empty words are ignored.
func IsTitle(s []byte) bool {
	for {
		i := bytes.IndexByte(s, ' ')
		if i == -1 {
			return len(s) == 0 || IsCapitalized(s)
		}
		if i > 0 && !IsCapitalized(s[:i]) {
			return false
		}
		s = s[i+1:]
	}
}

// TitleCase returns a copy of s title cased using the rules of language tag.
func TitleCase(s []byte, tag language.Tag) []byte {
	return cases.Title(tag).Bytes(s)
}

// GetInitials returns the initials of the ' ' separated words in s. Each
// non-empty word is replaced by its first rune, upper cased if capitalize is
// true, followed by a '.'. The initials are joined by a ' ' if includeSpace
// is true. Empty words contribute an empty initial.
func GetInitials(s []byte, capitalize, includeSpace bool) []byte {
	var b []byte
	for first := true; ; first = false {
		i := bytes.IndexByte(s, ' ')
		w := s
		if i != -1 {
			w = s[:i]
		}
		if includeSpace && !first {
			b = append(b, ' ')
		}
		if len(w) != 0 {
			r, n := utf8.DecodeRune(w)
			if u := unicode.ToUpper(r); capitalize && u != r {
				b = utf8.AppendRune(b, u)
			} else {
				b = append(b, w[:n]...)
			}
			b = append(b, '.')
		}
		if i == -1 {
			if b == nil {
				b = []byte{}
			}
			return b
		}
		s = s[i+1:]
	}
}

// CharRight returns the rune at index counting from the end of s, the last
// rune is at index 0. NoChar is returned if index is out of range.
func CharRight(s []byte, index int) rune {
	if index < 0 || index >= len(s) {
		return NoChar
	}
	if i := len(s) - index - 1; bytealg.IndexByteNonASCII(s[i:]) == -1 {
		return rune(s[i])
	}
	for len(s) > 0 {
		r, n := utf8.DecodeLastRune(s)
		if index == 0 {
			return r
		}
		index--
		s = s[:len(s)-n]
	}
	return NoChar
}

// CharMid returns the rune at index startingIndex+countIndex of s. NoChar is
// returned if the combined index is negative or not less than the number of
// runes in s.
func CharMid(s []byte, startingIndex, countIndex int) rune {
	i := startingIndex + countIndex
	if i < 0 || i >= len(s) {
		return NoChar
	}
	if bytealg.IndexByteNonASCII(s[:i+1]) == -1 {
		return rune(s[i])
	}
	for len(s) > 0 {
		r, n := utf8.DecodeRune(s)
		if i == 0 {
			return r
		}
		i--
		s = s[n:]
	}
	return NoChar
}

// SubstringEnd returns a copy of the runes of s in the range [start, end).
// The order of start and end does not matter and end is clamped to the
// number of runes in s. An empty slice is returned if start is beyond the end
// of s. SubstringEnd panics if the lesser of start and end is negative.
func SubstringEnd(s []byte, start, end int) []byte {
	if start > end {
		start, end = end, start
	}
	if start < 0 {
		panic("bytcase: negative SubstringEnd start")
	}
	lo, hi := -1, len(s)
	n := 0
	for i := 0; i < len(s); n++ {
		if n == start {
			lo = i
		}
		if n == end {
			hi = i
			break
		}
		if s[i] < utf8.RuneSelf {
			i++
		} else {
			_, size := utf8.DecodeRune(s[i:])
			i += size
		}
	}
	if lo == -1 {
		return []byte{}
	}
	return clone(s[lo:hi])
}

// IndexOfAll returns the index of every rune in s that is equal to char,
// which must be a single rune. If there are no matches, or char is not a
// single rune, the slice []int{-1} is returned.
func IndexOfAll(s []byte, char string) []int {
	r, size := utf8.DecodeRuneInString(char)
	if size == 0 || size != len(char) {
		return []int{-1}
	}
	var a []int
	if size == 1 && isASCII(s) {
		a = bytealg.IndexAll(nil, s, char[0])
	} else {
		for i, n := 0, 0; i < len(s); n++ {
			sr, w := utf8.DecodeRune(s[i:])
			if sr == r && w == size && string(s[i:i+w]) == char {
				a = append(a, n)
			}
			i += w
		}
	}
	if len(a) == 0 {
		return []int{-1}
	}
	return a
}

// CountTotal returns the number of positions in s at which needle occurs.
// Overlapping occurrences are each counted and if ignoreCase is true runes
// are compared using simple Unicode case folding. An empty needle matches at
// every rune of s.
func CountTotal(s, needle []byte, ignoreCase bool) int {
	if isASCII(s) && isASCII(needle) {
		m := len(needle)
		if m == 1 {
			if ignoreCase {
				return bytealg.Count(s, needle[0])
			}
			return bytes.Count(s, needle)
		}
		count := 0
		for i := 0; i < len(s) && i+m <= len(s); i++ {
			w := s[i : i+m]
			if bytes.Equal(w, needle) || (ignoreCase && bytes.EqualFold(w, needle)) {
				count++
			}
		}
		return count
	}
	m := utf8.RuneCount(needle)
	offsets := make([]int, 0, len(s)+1)
	for i := 0; i < len(s); {
		offsets = append(offsets, i)
		_, size := utf8.DecodeRune(s[i:])
		i += size
	}
	n := len(offsets)
	offsets = append(offsets, len(s))
	count := 0
	for i := 0; i < n && i+m <= n; i++ {
		w := s[offsets[i]:offsets[i+m]]
		if bytes.Equal(w, needle) || (ignoreCase && bytes.EqualFold(w, needle)) {
			count++
		}
	}
	return count
}

// Reverse returns a copy of s with its runes in reverse order. Invalid UTF-8
// sequences are replaced by utf8.RuneError.
func Reverse(s []byte) []byte {
	if s == nil {
		return nil
	}
	b := make([]byte, 0, len(s))
	for len(s) > 0 {
		r, n := utf8.DecodeLastRune(s)
		if n == 1 && r < utf8.RuneSelf {
			b = append(b, byte(r))
		} else {
			b = utf8.AppendRune(b, r)
		}
		s = s[:len(s)-n]
	}
	return b
}
