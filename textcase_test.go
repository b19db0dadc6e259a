package textcase

import (
	"testing"
	"unicode/utf8"

	"golang.org/x/text/language"

	"github.com/charlievieth/textcase/internal/test"
)

func TestAlternateCases(t *testing.T) {
	test.AlternateCases(t, AlternateCases)
}

func TestIsAlternateCases(t *testing.T) {
	test.IsAlternateCases(t, IsAlternateCases)
}

// The output of AlternateCases is always alternating.
func TestAlternateCasesRoundTrip(t *testing.T) {
	for _, s := range []string{"Hi", "hi", "HI", "longstring", "LONGSTRING", "αβγδ", "ΑΒΓΔ", "straße"} {
		if got := AlternateCases(s); !IsAlternateCases(got) {
			t.Errorf("IsAlternateCases(AlternateCases(%q)) = false; AlternateCases: %q", s, got)
		}
	}
}

func TestCapitalize(t *testing.T) {
	test.Capitalize(t, Capitalize)
}

func TestIsCapitalized(t *testing.T) {
	test.IsCapitalized(t, IsCapitalized)
}

func TestIsLower(t *testing.T) {
	test.IsLower(t, IsLower)
}

func TestIsUpper(t *testing.T) {
	test.IsUpper(t, IsUpper)
}

func TestIsSpaces(t *testing.T)       { test.IsSpaces(t, IsSpaces) }
func TestIsRepeatedChar(t *testing.T) { test.IsRepeatedChar(t, IsRepeatedChar) }
func TestHasVowels(t *testing.T)      { test.HasVowels(t, HasVowels) }
func TestIsNumeric(t *testing.T)      { test.IsNumeric(t, IsNumeric) }
func TestHasNumbers(t *testing.T)     { test.HasNumbers(t, HasNumbers) }
func TestIsAlphaNumeric(t *testing.T) { test.IsAlphaNumeric(t, IsAlphaNumeric) }
func TestIsLetters(t *testing.T)      { test.IsLetters(t, IsLetters) }
func TestIndexOf(t *testing.T)        { test.IndexOf(t, IndexOf) }

func TestGetTitle(t *testing.T) {
	test.GetTitle(t, GetTitle)
}

func TestIsTitle(t *testing.T) {
	test.IsTitle(t, IsTitle)
}

func TestGetTitleIsTitle(t *testing.T) {
	for _, s := range []string{"", "the big story", "a  b", " x", "élan vital"} {
		if title := GetTitle(s); !IsTitle(title) {
			t.Errorf("IsTitle(GetTitle(%q)) = false; GetTitle: %q", s, title)
		}
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in  string
		tag language.Tag
		out string
	}{
		{"", language.English, ""},
		{"the big story", language.English, "The Big Story"},
		{"the bIG story", language.English, "The Big Story"},
		{"ijsland", language.Dutch, "IJsland"},
		{"ijsland", language.English, "Ijsland"},
	}
	for _, tt := range tests {
		if got := TitleCase(tt.in, tt.tag); got != tt.out {
			t.Errorf("TitleCase(%q, %s) = %q; want: %q", tt.in, tt.tag, got, tt.out)
		}
	}
}

func TestGetInitials(t *testing.T) {
	test.GetInitials(t, GetInitials)
}

func TestIndexOfAll(t *testing.T) {
	test.IndexOfAll(t, IndexOfAll)
}

func TestCharRight(t *testing.T) {
	test.CharRight(t, CharRight)
}

func TestCharMid(t *testing.T) {
	test.CharMid(t, CharMid)
}

func TestSubstringEnd(t *testing.T) {
	test.SubstringEnd(t, SubstringEnd)
}

func TestCountTotal(t *testing.T) {
	test.CountTotal(t, CountTotal)
}

func TestReverse(t *testing.T) {
	test.Reverse(t, Reverse)
}

func TestNoChar(t *testing.T) {
	if NoChar != 0 {
		t.Fatalf("NoChar = %q; want: %q", NoChar, rune(0))
	}
	if r := CharRight("", 0); r != NoChar {
		t.Errorf("CharRight(%q, 0) = %q; want: NoChar", "", r)
	}
	if r := CharMid("", 0, 0); r != NoChar {
		t.Errorf("CharMid(%q, 0, 0) = %q; want: NoChar", "", r)
	}
}

// Test that every rune of a string can be addressed from either end.
func TestCharRightCharMid(t *testing.T) {
	for _, s := range []string{"string", "αβγ", "aβc", "☻x☻"} {
		n := utf8.RuneCountInString(s)
		for i := 0; i < n; i++ {
			if r, l := CharRight(s, n-i-1), CharMid(s, i, 0); r != l {
				t.Errorf("%q: CharRight(%d) = %q; CharMid(%d, 0) = %q", s, n-i-1, r, i, l)
			}
		}
	}
}

func TestAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("short test")
	}
	const s = "the big story"
	tests := []struct {
		name string
		fn   func()
	}{
		{"IsAlternateCases", func() { IsAlternateCases(s) }},
		{"IsTitle", func() { IsTitle(s) }},
		{"CharRight", func() { CharRight(s, 3) }},
		{"CharMid", func() { CharMid(s, 3, 1) }},
		{"SubstringEnd", func() { SubstringEnd(s, 4, 7) }},
		{"CountTotal", func() { CountTotal(s, "ig", true) }},
	}
	for _, tt := range tests {
		if n := testing.AllocsPerRun(100, tt.fn); n != 0 {
			t.Errorf("%s: allocs = %.2f; want: 0", tt.name, n)
		}
	}
}
