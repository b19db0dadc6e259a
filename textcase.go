// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package textcase

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/charlievieth/textcase/internal/bytealg"
)

// NoChar is returned by CharRight and CharMid when the requested position is
// not within the string.
const NoChar rune = 0

// AlternateCases returns a copy of s where the case of each rune after the
// first alternates between upper and lower case. The first rune is copied
// unchanged and the second rune takes the opposite case of the first:
//
//	AlternateCases("longstring") == "lOnGsTrInG"
//	AlternateCases("Hi") == "Hi"
//
// Runes without case mappings are copied unchanged but still advance the
// alternation.
func AlternateCases(s string) string {
	if len(s) == 0 {
		return ""
	}
	if isASCII(s) {
		if len(s) == 1 {
			return s
		}
		return alternateCasesASCII(s)
	}
	r0, n := utf8.DecodeRuneInString(s)
	if n == len(s) {
		return s
	}
	upper := unicode.ToUpper(r0) != r0
	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:n])
	for _, r := range s[n:] {
		if upper {
			r = unicode.ToUpper(r)
		} else {
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
		upper = !upper
	}
	return b.String()
}

// IsAlternateCases reports whether the case of each rune in s alternates
// starting from the case of the first rune. Strings with fewer than two runes
// are never alternating.
//
// A rune matches "lower" if it equals its lower case form and "upper" if it
// equals its upper case form, so runes without case (digits, punctuation)
// match either.
func IsAlternateCases(s string) bool {
	if isASCII(s) {
		if len(s) <= 1 {
			return false
		}
		return isAlternateCasesASCII(s)
	}
	r0, n := utf8.DecodeRuneInString(s)
	if n == len(s) {
		return false
	}
	upper := unicode.ToUpper(r0) == r0
	for _, r := range s[n:] {
		if upper {
			if unicode.ToLower(r) != r {
				return false
			}
		} else if unicode.ToUpper(r) != r {
			return false
		}
		upper = !upper
	}
	return true
}

// Capitalize returns s with its first rune mapped to upper case.
func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	if c := s[0]; c < utf8.RuneSelf {
		if !isLower(c) {
			return s
		}
		return string(toUpper(c)) + s[1:]
	}
	r, n := utf8.DecodeRuneInString(s)
	if u := unicode.ToUpper(r); u != r {
		return string(u) + s[n:]
	}
	return s
}

// IsCapitalized reports whether the first rune of s is upper case (equal to
// its upper case mapping). It returns false for the empty string.
func IsCapitalized(s string) bool {
	if len(s) == 0 {
		return false
	}
	if c := s[0]; c < utf8.RuneSelf {
		return !isLower(c)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.ToUpper(r) == r
}

// IsLower reports whether every rune in s equals its lower case mapping.
func IsLower(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= utf8.RuneSelf {
			for _, r := range s[i:] {
				if unicode.ToLower(r) != r {
					return false
				}
			}
			return true
		} else if isUpper(c) {
			return false
		}
	}
	return true
}

// IsUpper reports whether every rune in s equals its upper case mapping.
func IsUpper(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= utf8.RuneSelf {
			for _, r := range s[i:] {
				if unicode.ToUpper(r) != r {
					return false
				}
			}
			return true
		} else if isLower(c) {
			return false
		}
	}
	return true
}

// GetTitle returns s with the first rune of each word mapped to upper case.
// Words are separated by a single ' ' and runs of spaces are preserved:
//
//	GetTitle("the big story") == "The Big Story"
//	GetTitle("a  b") == "A  B"
//
// Unlike TitleCase the remainder of each word is not modified.
func GetTitle(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for {
		i := strings.IndexByte(s, ' ')
		if i == -1 {
			b.WriteString(Capitalize(s))
			return b.String()
		}
		b.WriteString(Capitalize(s[:i]))
		b.WriteByte(' ')
		s = s[i+1:]
	}
}

// IsTitle reports whether the first rune of each ' ' separated word in s is
// upper case. Empty words are ignored so IsTitle("") is true.
func IsTitle(s string) bool {
	for {
		i := strings.IndexByte(s, ' ')
		if i == -1 {
			return len(s) == 0 || IsCapitalized(s)
		}
		if i > 0 && !IsCapitalized(s[:i]) {
			return false
		}
		s = s[i+1:]
	}
}

// TitleCase returns s title cased using the rules of language tag. Unlike
// GetTitle the remaining letters of each word are lower cased.
func TitleCase(s string, tag language.Tag) string {
	return cases.Title(tag).String(s)
}

// GetInitials returns the initials of the ' ' separated words in s. Each
// non-empty word is replaced by its first rune, upper cased if capitalize is
// true, followed by a '.'. The initials are joined by a ' ' if includeSpace
// is true:
//
//	GetInitials("John Smith", true, true) == "J. S."
//	GetInitials("John Smith", false, false) == "J.S."
//
// Empty words, produced by leading, trailing or repeated spaces, contribute
// an empty initial, which shows up as an extra space when includeSpace is
// true.
func GetInitials(s string, capitalize, includeSpace bool) string {
	var b strings.Builder
	for first := true; ; first = false {
		i := strings.IndexByte(s, ' ')
		w := s
		if i != -1 {
			w = s[:i]
		}
		if includeSpace && !first {
			b.WriteByte(' ')
		}
		if len(w) != 0 {
			r, n := utf8.DecodeRuneInString(w)
			if capitalize {
				if u := unicode.ToUpper(r); u != r {
					b.WriteRune(u)
				} else {
					b.WriteString(w[:n])
				}
			} else {
				b.WriteString(w[:n])
			}
			b.WriteByte('.')
		}
		if i == -1 {
			return b.String()
		}
		s = s[i+1:]
	}
}

// CharRight returns the rune at index counting from the end of s, the last
// rune is at index 0. NoChar is returned if index is out of range.
func CharRight(s string, index int) rune {
	if index < 0 || index >= len(s) {
		return NoChar
	}
	if i := len(s) - index - 1; bytealg.IndexNonASCII(s[i:]) == -1 {
		return rune(s[i])
	}
	for i := len(s); i > 0; {
		r, n := utf8.DecodeLastRuneInString(s[:i])
		if index == 0 {
			return r
		}
		index--
		i -= n
	}
	return NoChar
}

// CharMid returns the rune at index startingIndex+countIndex of s. NoChar is
// returned if the combined index is negative or not less than the number of
// runes in s.
func CharMid(s string, startingIndex, countIndex int) rune {
	i := startingIndex + countIndex
	if i < 0 || i >= len(s) {
		return NoChar
	}
	if bytealg.IndexNonASCII(s[:i+1]) == -1 {
		return rune(s[i])
	}
	for _, r := range s {
		if i == 0 {
			return r
		}
		i--
	}
	return NoChar
}

// SubstringEnd returns the runes of s in the range [start, end). The order
// of start and end does not matter and end is clamped to the number of runes
// in s:
//
//	SubstringEnd("hello", 1, 3) == "el"
//	SubstringEnd("hello", 3, 1) == "el"
//	SubstringEnd("hello", 1, 100) == "ello"
//
// The empty string is returned if start is beyond the end of s.
// SubstringEnd panics if the lesser of start and end is negative.
func SubstringEnd(s string, start, end int) string {
	if start > end {
		start, end = end, start
	}
	if start < 0 {
		panic("textcase: negative SubstringEnd start")
	}
	if isASCII(s) {
		if end > len(s) {
			end = len(s)
		}
		if start >= end {
			return ""
		}
		return s[start:end]
	}
	lo, hi := -1, len(s)
	n := 0
	for i := range s {
		if n == start {
			lo = i
		}
		if n == end {
			hi = i
			break
		}
		n++
	}
	if lo == -1 {
		return ""
	}
	return s[lo:hi]
}

// IndexOfAll returns the index of every rune in s that is equal to char,
// which must be a single rune. If there are no matches, or char is not a
// single rune, the slice []int{-1} is returned:
//
//	IndexOfAll("Hello", "l") == []int{2, 3}
//	IndexOfAll("Bob", "1") == []int{-1}
//
// Comparison is exact: IndexOfAll("Hello", "h") == []int{-1}.
func IndexOfAll(s, char string) []int {
	r, size := utf8.DecodeRuneInString(char)
	if size == 0 || size != len(char) {
		return []int{-1}
	}
	var a []int
	if size == 1 && isASCII(s) {
		a = bytealg.IndexAllString(nil, s, char[0])
	} else {
		n := 0
		for i, sr := range s {
			if sr == r && strings.HasPrefix(s[i:], char) {
				a = append(a, n)
			}
			n++
		}
	}
	if len(a) == 0 {
		return []int{-1}
	}
	return a
}

// CountTotal returns the number of positions in s at which needle occurs.
// Overlapping occurrences are each counted and if ignoreCase is true runes
// are compared using simple Unicode case folding:
//
//	CountTotal("hello", "l", false) == 2
//	CountTotal("lll", "ll", false) == 2
//	CountTotal("HeLLo", "l", true) == 2
//
// An empty needle matches at every rune of s.
func CountTotal(s, needle string, ignoreCase bool) int {
	if isASCII(s) && isASCII(needle) {
		return countTotalASCII(s, needle, ignoreCase)
	}
	m := utf8.RuneCountInString(needle)
	offsets := make([]int, 0, len(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	n := len(offsets)
	offsets = append(offsets, len(s))
	count := 0
	for i := 0; i < n && i+m <= n; i++ {
		w := s[offsets[i]:offsets[i+m]]
		if w == needle || (ignoreCase && strings.EqualFold(w, needle)) {
			count++
		}
	}
	return count
}

// Reverse returns s with its runes in reverse order. Invalid UTF-8 sequences
// are replaced by utf8.RuneError.
func Reverse(s string) string {
	if isASCII(s) {
		return reverseASCII(s)
	}
	b := make([]byte, 0, len(s))
	for i := len(s); i > 0; {
		r, n := utf8.DecodeLastRuneInString(s[:i])
		b = utf8.AppendRune(b, r)
		i -= n
	}
	return string(b)
}
