// Package test contains the test cases and test runners shared by the
// textcase and bytcase packages.
package test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type StringFunc func(s string) string

func ByteStringFunc(fn func(s []byte) []byte) StringFunc {
	return func(s string) string {
		return string(fn([]byte(s)))
	}
}

type PredicateFunc func(s string) bool

func BytePredicateFunc(fn func(s []byte) bool) PredicateFunc {
	return func(s string) bool {
		return fn([]byte(s))
	}
}

type InitialsFunc func(s string, capitalize, includeSpace bool) string

func ByteInitialsFunc(fn func(s []byte, capitalize, includeSpace bool) []byte) InitialsFunc {
	return func(s string, capitalize, includeSpace bool) string {
		return string(fn([]byte(s), capitalize, includeSpace))
	}
}

type IndexAllFunc func(s, char string) []int

func ByteIndexAllFunc(fn func(s []byte, char string) []int) IndexAllFunc {
	return func(s, char string) []int {
		return fn([]byte(s), char)
	}
}

type CharRightFunc func(s string, index int) rune

func ByteCharRightFunc(fn func(s []byte, index int) rune) CharRightFunc {
	return func(s string, index int) rune {
		return fn([]byte(s), index)
	}
}

type CharMidFunc func(s string, startingIndex, countIndex int) rune

func ByteCharMidFunc(fn func(s []byte, startingIndex, countIndex int) rune) CharMidFunc {
	return func(s string, startingIndex, countIndex int) rune {
		return fn([]byte(s), startingIndex, countIndex)
	}
}

type SubstringFunc func(s string, start, end int) string

func ByteSubstringFunc(fn func(s []byte, start, end int) []byte) SubstringFunc {
	return func(s string, start, end int) string {
		return string(fn([]byte(s), start, end))
	}
}

type CountFunc func(s, needle string, ignoreCase bool) int

func ByteCountFunc(fn func(s, needle []byte, ignoreCase bool) int) CountFunc {
	return func(s, needle string, ignoreCase bool) int {
		return fn([]byte(s), []byte(needle), ignoreCase)
	}
}

type IndexFunc func(s, substr string) int

func ByteIndexFunc(fn func(s, substr []byte) int) IndexFunc {
	return func(s, substr string) int {
		return fn([]byte(s), []byte(substr))
	}
}

type stringTest struct {
	in, out string
}

func runStringTests(t *testing.T, name string, fn StringFunc, tests []stringTest) {
	t.Helper()
	for _, tt := range tests {
		if got := fn(tt.in); got != tt.out {
			t.Errorf("%s(%q) = %q; want: %q", name, tt.in, got, tt.out)
		}
	}
}

type predicateTest struct {
	in  string
	out bool
}

func runPredicateTests(t *testing.T, name string, fn PredicateFunc, tests []predicateTest) {
	t.Helper()
	for _, tt := range tests {
		if got := fn(tt.in); got != tt.out {
			t.Errorf("%s(%q) = %t; want: %t", name, tt.in, got, tt.out)
		}
	}
}

var alternateCasesTests = []stringTest{
	{"", ""},
	{"a", "a"},
	{"A", "A"},
	{"é", "é"},
	{"Hi", "Hi"},
	{"hi", "hI"},
	{"HI", "Hi"},
	{"longstring", "lOnGsTrInG"},
	{"LONGSTRING", "LoNgStRiNg"},
	{"lOnGsTrInG", "lOnGsTrInG"},
	{"a1b2c3", "a1b2c3"},
	{"a b c", "a b c"},
	{"1abc", "1aBc"},
	{"αβγδ", "αΒγΔ"},
	{"ΑΒΓΔ", "ΑβΓδ"},
	{"aβγδ", "aΒγΔ"},
	{"straße", "sTrAßE"},
	{"\u212akk", "\u212akK"},
	{"a\xffb", "a\ufffdb"},
}

func AlternateCases(t *testing.T, fn StringFunc) {
	runStringTests(t, "AlternateCases", fn, alternateCasesTests)
}

var isAlternateCasesTests = []predicateTest{
	{"", false},
	{"a", false},
	{"A", false},
	{"é", false},
	{"Hi", true},
	{"hI", true},
	{"HI", false},
	{"hi", false},
	{"lOnGsTrInG", true},
	{"LoNgStRiNg", true},
	{"lOnGsTrInGG", false},
	{"longstring", false},
	{"a1b2", true},
	{"1aBc", true},
	{"1abc", false},
	{"αΒγΔ", true},
	{"ΑβΓδ", true},
	{"αβγδ", false},
	{"aΒγΔ", true},
}

func IsAlternateCases(t *testing.T, fn PredicateFunc) {
	runPredicateTests(t, "IsAlternateCases", fn, isAlternateCasesTests)
}

var capitalizeTests = []stringTest{
	{"", ""},
	{"a", "A"},
	{"A", "A"},
	{"word", "Word"},
	{"this is a sentence", "This is a sentence"},
	{"1st", "1st"},
	{"éclair", "Éclair"},
	{"ßa", "ßa"},
	{"ǆemal", "Ǆemal"},
	{"\xffab", "\xffab"},
}

func Capitalize(t *testing.T, fn StringFunc) {
	runStringTests(t, "Capitalize", fn, capitalizeTests)
}

var isCapitalizedTests = []predicateTest{
	{"", false},
	{"a", false},
	{"A", true},
	{"Word", true},
	{"word", false},
	{"This is a sentence", true},
	{"1st", true},
	{"Éclair", true},
	{"éclair", false},
}

func IsCapitalized(t *testing.T, fn PredicateFunc) {
	runPredicateTests(t, "IsCapitalized", fn, isCapitalizedTests)
}

var isLowerTests = []predicateTest{
	{"", true},
	{"word", true},
	{"Word", false},
	{"WORD", false},
	{"123", true},
	{"αβγ", true},
	{"αβΓ", false},
	{"abcΓ", false},
	{"abc\u212a", false},
}

func IsLower(t *testing.T, fn PredicateFunc) {
	runPredicateTests(t, "IsLower", fn, isLowerTests)
}

var isUpperTests = []predicateTest{
	{"", true},
	{"word", false},
	{"Word", false},
	{"WORD", true},
	{"123", true},
	{"ΑΒΓ", true},
	{"ΑΒγ", false},
	{"ABCγ", false},
	{"ABC\u212a", true},
}

func IsUpper(t *testing.T, fn PredicateFunc) {
	runPredicateTests(t, "IsUpper", fn, isUpperTests)
}

var getTitleTests = []stringTest{
	{"", ""},
	{" ", " "},
	{"the big story", "The Big Story"},
	{"The Big Story", "The Big Story"},
	{"the bIG story", "The BIG Story"},
	{"  leading", "  Leading"},
	{"trailing  ", "Trailing  "},
	{"a  b", "A  B"},
	{"a\tb", "A\tb"},
	{"élan vital", "Élan Vital"},
	{"1st place", "1st Place"},
}

func GetTitle(t *testing.T, fn StringFunc) {
	runStringTests(t, "GetTitle", fn, getTitleTests)
}

var isTitleTests = []predicateTest{
	{"", true},
	{" ", true},
	{"   ", true},
	{"The Big Story", true},
	{"The big story", false},
	{"the Big Story", false},
	{"The Big story", false},
	{"The  Big", true},
	{"The  big", false},
	{"1st Place", true},
	{"Élan Vital", true},
	{"Élan vital", false},
}

func IsTitle(t *testing.T, fn PredicateFunc) {
	runPredicateTests(t, "IsTitle", fn, isTitleTests)
}

var getInitialsTests = []struct {
	in           string
	capitalize   bool
	includeSpace bool
	out          string
}{
	{"", false, false, ""},
	{"", true, true, ""},
	{"John Smith", true, true, "J. S."},
	{"John Smith", true, false, "J.S."},
	{"John Smith", false, true, "J. S."},
	{"John Smith", false, false, "J.S."},
	{"john smith", true, true, "J. S."},
	{"john smith", false, true, "j. s."},
	{"john ronald reuel tolkien", true, false, "J.R.R.T."},
	{"élodie", true, false, "É."},
	{"a  b", false, true, "a.  b."},
	{"a  b", false, false, "a.b."},
	{" a", false, true, " a."},
	{"a ", false, true, "a. "},
}

func GetInitials(t *testing.T, fn InitialsFunc) {
	for _, tt := range getInitialsTests {
		got := fn(tt.in, tt.capitalize, tt.includeSpace)
		if got != tt.out {
			t.Errorf("GetInitials(%q, %t, %t) = %q; want: %q",
				tt.in, tt.capitalize, tt.includeSpace, got, tt.out)
		}
	}
}

var indexOfAllTests = []struct {
	s, char string
	out     []int
}{
	{"", "a", []int{-1}},
	{"a", "", []int{-1}},
	{"Hello", "l", []int{2, 3}},
	{"Hello", "o", []int{4}},
	{"Hello", "H", []int{0}},
	{"Hello", "h", []int{-1}},
	{"Bob", "1", []int{-1}},
	{"Hello", "ll", []int{-1}},
	{"aaa", "a", []int{0, 1, 2}},
	{"αβα", "α", []int{0, 2}},
	{"αlβl", "l", []int{1, 3}},
	{"☻a☻", "☻", []int{0, 2}},
	{"k\u212ak", "k", []int{0, 2}},
	{"k\u212ak", "\u212a", []int{1}},
	{"a\xffb\xff", "\xff", []int{1, 3}},
	{"a�b\xff", "�", []int{1}},
}

func IndexOfAll(t *testing.T, fn IndexAllFunc) {
	for _, tt := range indexOfAllTests {
		got := fn(tt.s, tt.char)
		if diff := cmp.Diff(tt.out, got); diff != "" {
			t.Errorf("IndexOfAll(%q, %q) mismatch (-want +got):\n%s", tt.s, tt.char, diff)
		}
	}
}

var charRightTests = []struct {
	s     string
	index int
	out   rune
}{
	{"", 0, 0},
	{"string", 0, 'g'},
	{"string", 1, 'n'},
	{"string", 5, 's'},
	{"string", 6, 0},
	{"string", -1, 0},
	{"string", 100, 0},
	{"αβγ", 0, 'γ'},
	{"αβγ", 2, 'α'},
	{"αβγ", 3, 0},
	{"αβγ", 5, 0},
	{"αbc", 0, 'c'},
	{"αbc", 2, 'α'},
	{"abγ", 0, 'γ'},
	{"abγ", 2, 'a'},
}

func CharRight(t *testing.T, fn CharRightFunc) {
	for _, tt := range charRightTests {
		if got := fn(tt.s, tt.index); got != tt.out {
			t.Errorf("CharRight(%q, %d) = %q; want: %q", tt.s, tt.index, got, tt.out)
		}
	}
}

var charMidTests = []struct {
	s            string
	start, count int
	out          rune
}{
	{"", 0, 0, 0},
	{"string", 3, 1, 'n'},
	{"string", 0, 0, 's'},
	{"string", 5, 0, 'g'},
	{"string", 5, 1, 0},
	{"string", 3, -1, 'r'},
	{"string", -1, 0, 0},
	{"string", 1, -2, 0},
	{"αβγ", 1, 1, 'γ'},
	{"αβγ", 2, 1, 0},
	{"αβγ", 4, 0, 0},
	{"abγ", 2, 0, 'γ'},
	{"αbc", 2, 0, 'c'},
}

func CharMid(t *testing.T, fn CharMidFunc) {
	for _, tt := range charMidTests {
		if got := fn(tt.s, tt.start, tt.count); got != tt.out {
			t.Errorf("CharMid(%q, %d, %d) = %q; want: %q", tt.s, tt.start, tt.count, got, tt.out)
		}
	}
}

var substringEndTests = []struct {
	s          string
	start, end int
	out        string
}{
	{"", 0, 0, ""},
	{"", 0, 10, ""},
	{"hello", 1, 3, "el"},
	{"hello", 3, 1, "el"},
	{"hello", 1, 100, "ello"},
	{"hello", 100, 1, "ello"},
	{"hello", 0, 5, "hello"},
	{"hello", 2, 2, ""},
	{"hello", 5, 5, ""},
	{"hello", 5, 10, ""},
	{"hello", 7, 10, ""},
	{"héllo", 1, 3, "él"},
	{"héllo", 3, 1, "él"},
	{"héllo", 1, 100, "éllo"},
	{"héllo", 5, 7, ""},
	{"αβγ", 0, 3, "αβγ"},
	{"αβγ", 2, 3, "γ"},
}

func SubstringEnd(t *testing.T, fn SubstringFunc) {
	for _, tt := range substringEndTests {
		if got := fn(tt.s, tt.start, tt.end); got != tt.out {
			t.Errorf("SubstringEnd(%q, %d, %d) = %q; want: %q", tt.s, tt.start, tt.end, got, tt.out)
		}
	}
	for _, args := range [][2]int{{-1, 2}, {2, -1}, {-3, -1}} {
		func() {
			defer func() {
				if e := recover(); e == nil {
					t.Errorf("SubstringEnd(%q, %d, %d): expected panic", "hello", args[0], args[1])
				}
			}()
			fn("hello", args[0], args[1])
		}()
	}
}

var countTotalTests = []struct {
	s, needle  string
	ignoreCase bool
	out        int
}{
	{"", "", false, 0},
	{"", "a", false, 0},
	{"abc", "", false, 3},
	{"αβγ", "", false, 3},
	{"hello", "l", false, 2},
	{"hello", "el", false, 1},
	{"hello", "L", false, 0},
	{"hello", "L", true, 2},
	{"HeLLo", "l", true, 2},
	{"HELLO", "el", true, 1},
	{"lll", "ll", false, 2},
	{"llll", "ll", false, 3},
	{"aaaa", "aaaa", false, 1},
	{"aaa", "aaaa", false, 0},
	{"a.a.a", ".", false, 2},
	{"αβαβα", "αβα", false, 2},
	{"ΑΒαβ", "αβ", true, 2},
	{"ΑΒαβ", "αβ", false, 1},
	{"kK\u212a", "k", false, 1},
	{"kK\u212a", "k", true, 3},
	{"kK\u212a", "\u212a", true, 3},
	{"xkKx", "KK", true, 1},
	{strings.Repeat("ab", 64), "aba", false, 63},
}

func CountTotal(t *testing.T, fn CountFunc) {
	for _, tt := range countTotalTests {
		if got := fn(tt.s, tt.needle, tt.ignoreCase); got != tt.out {
			t.Errorf("CountTotal(%q, %q, %t) = %d; want: %d",
				tt.s, tt.needle, tt.ignoreCase, got, tt.out)
		}
	}
}

var reverseTests = []stringTest{
	{"", ""},
	{"a", "a"},
	{"Hello", "olleH"},
	{"αβγ", "γβα"},
	{"aβc", "cβa"},
	{"a\xff", "�a"},
}

func Reverse(t *testing.T, fn StringFunc) {
	runStringTests(t, "Reverse", fn, reverseTests)
	for _, tt := range reverseTests[:5] {
		if got := fn(fn(tt.in)); got != tt.in {
			t.Errorf("Reverse(Reverse(%q)) = %q; want: %q", tt.in, got, tt.in)
		}
	}
}

var isSpacesTests = []predicateTest{
	{"", false},
	{" ", true},
	{"    ", true},
	{" a ", false},
	{"\t", false},
	{"\u00a0", false},
}

func IsSpaces(t *testing.T, fn PredicateFunc) {
	runPredicateTests(t, "IsSpaces", fn, isSpacesTests)
}

var isRepeatedCharTests = []predicateTest{
	{"", false},
	{"a", true},
	{"aaaa", true},
	{"  ", true},
	{"aaab", false},
	{"baaa", false},
	{"ab", false},
	{"ééé", true},
	{"éée", false},
	{"éé\xc3", false},
	{"\u212a\u212a", true},
	{"\u212aK", false},
	{"\xff\xff", true},
}

func IsRepeatedChar(t *testing.T, fn PredicateFunc) {
	runPredicateTests(t, "IsRepeatedChar", fn, isRepeatedCharTests)
}

var hasVowelsTests = []predicateTest{
	{"", false},
	{"rhythm", false},
	{"crwth", false},
	{"hello", true},
	{"HELLO", true},
	{"U", true},
	{"xyZ", false},
	{"Ü", false},
}

func HasVowels(t *testing.T, fn PredicateFunc) {
	runPredicateTests(t, "HasVowels", fn, hasVowelsTests)
}

var isNumericTests = []predicateTest{
	{"", true},
	{"12453", true},
	{"234d3", false},
	{"-1", false},
	{"1.5", false},
	{"12 ", false},
	{"١٢", false}, // ARABIC-INDIC DIGIT
}

func IsNumeric(t *testing.T, fn PredicateFunc) {
	runPredicateTests(t, "IsNumeric", fn, isNumericTests)
}

var hasNumbersTests = []predicateTest{
	{"", false},
	{"hello", false},
	{"h3llo", true},
	{"héllo", false},
	{"héllo9", true},
	{"١٢", true},
	{"Ⅻ", false}, // letter number, not a decimal digit
}

func HasNumbers(t *testing.T, fn PredicateFunc) {
	runPredicateTests(t, "HasNumbers", fn, hasNumbersTests)
}

var isAlphaNumericTests = []predicateTest{
	{"", true},
	{"Test1254", true},
	{"ABC123", true},
	{"$chool!", false},
	{"abc def", false},
	{"héllo", false},
}

func IsAlphaNumeric(t *testing.T, fn PredicateFunc) {
	runPredicateTests(t, "IsAlphaNumeric", fn, isAlphaNumericTests)
}

var isLettersTests = []predicateTest{
	{"", true},
	{"Hi", true},
	{"Hi123", false},
	{"Hi there", false},
	{"héllo", false},
}

func IsLetters(t *testing.T, fn PredicateFunc) {
	runPredicateTests(t, "IsLetters", fn, isLettersTests)
}

var indexOfTests = []struct {
	s, substr string
	out       int
}{
	{"", "", 0},
	{"abc", "", 0},
	{"", "a", -1},
	{"chicken", "ken", 4},
	{"chicken", "dmr", -1},
	{"aaa", "aa", 0},
	{"Hello", "h", -1},
	{"für", "r", 2},
	{"日本語", "語", 2},
	{"x\xffy", "y", 2},
}

func IndexOf(t *testing.T, fn IndexFunc) {
	for _, tt := range indexOfTests {
		if got := fn(tt.s, tt.substr); got != tt.out {
			t.Errorf("IndexOf(%q, %q) = %d; want: %d", tt.s, tt.substr, got, tt.out)
		}
	}
}

// Quote returns s quoted with non-ASCII runes escaped, it is used in failure
// messages where the original text may not be printable.
func Quote(s string) string {
	return strconv.QuoteToASCII(s)
}
