package test

import (
	"testing"
	"unicode/utf8"

	"golang.org/x/exp/slices"
)

// Make sure the reference implementations agree with the shared test cases.

func TestAlternateCasesReference(t *testing.T) {
	AlternateCases(t, func(s string) string {
		return AlternateCasesReference([]rune(s))
	})
}

func TestCountTotalReference(t *testing.T) {
	CountTotal(t, func(s, needle string, ignoreCase bool) int {
		return CountTotalReference([]rune(s), []rune(needle), ignoreCase)
	})
}

func TestIndexOfAllReference(t *testing.T) {
	for _, tt := range indexOfAllTests {
		rs := []rune(tt.char)
		if len(rs) != 1 || !utf8.ValidString(tt.s) || !utf8.ValidString(tt.char) {
			continue
		}
		got := IndexOfAllReference([]rune(tt.s), rs[0])
		if !slices.Equal(got, tt.out) {
			t.Errorf("IndexOfAllReference(%q, %q) = %v; want: %v", tt.s, rs[0], got, tt.out)
		}
	}
}

func TestIndexOfReference(t *testing.T) {
	IndexOf(t, func(s, substr string) int {
		return IndexOfReference([]rune(s), []rune(substr))
	})
}
