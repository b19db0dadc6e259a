package test

import (
	crand "crypto/rand"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode"

	"golang.org/x/exp/slices"
	"golang.org/x/text/unicode/rangetable"
)

var exhaustiveFuzz = flag.Bool("exhaustive", false, "Run exhaustive fuzz tests (slow).")

// Runes the random tests draw from: letters of every case plus digits and
// punctuation, which have no case mappings.
var textTable = rangetable.Merge(
	unicode.Upper,
	unicode.Lower,
	unicode.Title,
	unicode.Digit,
	unicode.Punct,
)

// textRunes are the runes of textTable and caseRunes the subset whose upper
// and lower case mappings are stable (mapping twice is the same as mapping
// once).
var textRunes, caseRunes = generateRuneTables(textTable)

func generateRuneTables(rt *unicode.RangeTable) (all, stable []rune) {
	all = make([]rune, 0, 4096)
	stable = make([]rune, 0, 4096)
	rangetable.Visit(rt, func(r rune) {
		all = append(all, r)
		u := unicode.ToUpper(r)
		l := unicode.ToLower(r)
		if unicode.ToUpper(u) == u && unicode.ToLower(l) == l {
			stable = append(stable, r)
		}
	})
	slices.Sort(all)
	slices.Sort(stable)
	return all, stable
}

// CaseRunes returns the runes used to generate letter-only test input.
func CaseRunes() []rune {
	return caseRunes
}

func cryptoRandInt(t testing.TB) int64 {
	var b [8]byte
	if _, err := io.ReadFull(crand.Reader, b[:]); err != nil {
		if t != nil {
			t.Fatal(err)
		}
		panic(err)
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

func intn(rr *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	return rr.Intn(n)
}

func randRune(rr *rand.Rand) rune {
	switch n := rr.Intn(100); {
	case n <= 5:
		return '\u212a' // Kelvin K
	case n <= 10:
		return ' '
	case n <= 50:
		return textRunes[rr.Intn(len(textRunes))]
	default:
		return rr.Int31n(128)
	}
}

// appendRandRunes sets rs to n random runes.
func appendRandRunes(rs []rune, rr *rand.Rand, n int) []rune {
	if cap(rs) < n {
		rs = make([]rune, n)
	} else {
		rs = rs[:n]
	}
	for i := 0; i < len(rs); i++ {
		rs[i] = randRune(rr)
	}
	return rs
}

// randCaseRune will randomly change the case of rune r
func randCaseRune(rr *rand.Rand, r rune) rune {
	if rr.Int31n(32) < 24 {
		r = unicode.SimpleFold(r)
	}
	return r
}

func fuzzNumCPU() int {
	numCPU := runtime.NumCPU()
	if numCPU < 1 {
		numCPU = 1
	}
	return numCPU
}

func randomTestSeeds(t *testing.T) []int64 {
	seeds := []int64{
		1,
		time.Now().UnixNano(),
		cryptoRandInt(t),
	}
	if !testing.Short() {
		numCPU := fuzzNumCPU()
		for i := len(seeds); i < numCPU; i++ {
			seeds = append(seeds, cryptoRandInt(t))
		}
	}
	return seeds
}

func runRandomTest(t *testing.T, fn func(t *fuzzTest)) {
	if *exhaustiveFuzz && testing.Short() {
		t.Fatal(`Cannot combine "-short" and "-exhaustive" flags`)
	}
	// Count is the total number of test iterations to run.
	count := 2_500
	if testing.Short() {
		count /= 2
	}
	seeds := randomTestSeeds(t)
	if *exhaustiveFuzz {
		count = 1_000_000 / len(seeds)
		t.Logf("N: %d", count)
	}
	for _, seed := range seeds {
		seed := seed
		t.Run(fmt.Sprintf("%d", seed), func(t *testing.T) {
			t.Parallel()
			start := time.Now()
			if testing.Verbose() {
				t.Cleanup(func() { t.Logf("duration: %s", time.Since(start)) })
			}
			tt := newFuzzTest(t, seed)
			for i := 0; i < count; i++ {
				fn(tt)
			}
		})
		if t.Failed() && testing.Short() {
			return
		}
	}
}

type fuzzTest struct {
	testing.TB
	rr *rand.Rand
	// Scratch space for constructing test arguments
	text   []rune
	needle []rune
}

func newFuzzTest(t *testing.T, seed int64) *fuzzTest {
	return &fuzzTest{
		TB:     &testWrapper{T: t},
		rr:     rand.New(rand.NewSource(seed)),
		text:   make([]rune, 0, 32),
		needle: make([]rune, 0, 8),
	}
}

// Text returns a random string of up to 32 runes.
func (t *fuzzTest) Text() []rune {
	t.text = appendRandRunes(t.text, t.rr, intn(t.rr, 33))
	return t.text
}

// CaseText returns a random string of 2 to 32 runes with stable case
// mappings.
func (t *fuzzTest) CaseText() []rune {
	n := 2 + intn(t.rr, 31)
	t.text = t.text[:0]
	for i := 0; i < n; i++ {
		t.text = append(t.text, caseRunes[t.rr.Intn(len(caseRunes))])
	}
	return t.text
}

// Needle returns a needle of up to 4 runes. Most of the time the needle is
// taken from text with its case randomly changed.
func (t *fuzzTest) Needle(text []rune) []rune {
	n := intn(t.rr, 5)
	if len(text) == 0 || t.rr.Intn(4) == 0 {
		t.needle = appendRandRunes(t.needle, t.rr, n)
		return t.needle
	}
	if n > len(text) {
		n = len(text)
	}
	i := intn(t.rr, len(text)-n+1)
	t.needle = append(t.needle[:0], text[i:i+n]...)
	for j, r := range t.needle {
		t.needle[j] = randCaseRune(t.rr, r)
	}
	return t.needle
}

// AlternateCasesReference is a simple []rune implementation of
// AlternateCases.
func AlternateCasesReference(rs []rune) string {
	if len(rs) <= 1 {
		return string(rs)
	}
	out := make([]rune, len(rs))
	out[0] = rs[0]
	upper := unicode.ToUpper(rs[0]) != rs[0]
	for i := 1; i < len(rs); i++ {
		if upper {
			out[i] = unicode.ToUpper(rs[i])
		} else {
			out[i] = unicode.ToLower(rs[i])
		}
		upper = !upper
	}
	return string(out)
}

// CountTotalReference is a simple []rune implementation of CountTotal.
func CountTotalReference(s, needle []rune, ignoreCase bool) int {
	count := 0
	for i := 0; i < len(s); i++ {
		if i+len(needle) > len(s) {
			break
		}
		w := string(s[i : i+len(needle)])
		if w == string(needle) || (ignoreCase && strings.EqualFold(w, string(needle))) {
			count++
		}
	}
	return count
}

// IndexOfAllReference is a simple []rune implementation of IndexOfAll.
func IndexOfAllReference(s []rune, r rune) []int {
	var a []int
	for i, sr := range s {
		if sr == r {
			a = append(a, i)
		}
	}
	if len(a) == 0 {
		return []int{-1}
	}
	return a
}

// IndexOfReference is a simple []rune implementation of IndexOf.
func IndexOfReference(s, substr []rune) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if slices.Equal(s[i:i+len(substr)], substr) {
			return i
		}
	}
	return -1
}

func AlternateCasesFuzz(t *testing.T, alt StringFunc, is PredicateFunc) {
	runRandomTest(t, func(t *fuzzTest) {
		rs := t.Text()
		s := string(rs)
		want := AlternateCasesReference(rs)
		got := alt(s)
		if got != want {
			t.Errorf("AlternateCases(%s) = %s; want: %s", Quote(s), Quote(got), Quote(want))
		}

		rs = t.CaseText()
		s = string(rs)
		if got := alt(s); !is(got) {
			t.Errorf("IsAlternateCases(AlternateCases(%s)) = false; AlternateCases: %s",
				Quote(s), Quote(got))
		}
	})
}

func CountTotalFuzz(t *testing.T, fn CountFunc) {
	runRandomTest(t, func(t *fuzzTest) {
		s := t.Text()
		needle := t.Needle(s)
		for _, ignoreCase := range []bool{false, true} {
			want := CountTotalReference(s, needle, ignoreCase)
			got := fn(string(s), string(needle), ignoreCase)
			if got != want {
				t.Errorf("CountTotal(%s, %s, %t) = %d; want: %d",
					Quote(string(s)), Quote(string(needle)), ignoreCase, got, want)
			}
		}
	})
}

func IndexFuzz(t *testing.T, right CharRightFunc, mid CharMidFunc, sub SubstringFunc, all IndexAllFunc) {
	runRandomTest(t, func(t *fuzzTest) {
		rs := t.Text()
		s := string(rs)
		n := len(rs)

		i := intn(t.rr, n+4) - 2
		var want rune
		if j := n - i - 1; 0 <= j && j < n {
			want = rs[j]
		}
		if got := right(s, i); got != want {
			t.Errorf("CharRight(%s, %d) = %q; want: %q", Quote(s), i, got, want)
		}

		start, count := intn(t.rr, n+2), intn(t.rr, 4)-2
		want = 0
		if j := start + count; 0 <= j && j < n {
			want = rs[j]
		}
		if got := mid(s, start, count); got != want {
			t.Errorf("CharMid(%s, %d, %d) = %q; want: %q", Quote(s), start, count, got, want)
		}

		lo, hi := intn(t.rr, n+2), intn(t.rr, n+4)
		a, b := lo, hi
		if a > b {
			a, b = b, a
		}
		if b > n {
			b = n
		}
		wantSub := ""
		if a < b {
			wantSub = string(rs[a:b])
		}
		if got := sub(s, lo, hi); got != wantSub {
			t.Errorf("SubstringEnd(%s, %d, %d) = %s; want: %s", Quote(s), lo, hi, Quote(got), Quote(wantSub))
		}

		var r rune = 'a'
		if n > 0 {
			r = rs[t.rr.Intn(n)]
		}
		wantAll := IndexOfAllReference(rs, r)
		if got := all(s, string(r)); !slices.Equal(got, wantAll) {
			t.Errorf("IndexOfAll(%s, %q) = %v; want: %v", Quote(s), r, got, wantAll)
		}
	})
}

func IndexOfFuzz(t *testing.T, fn IndexFunc) {
	runRandomTest(t, func(t *fuzzTest) {
		s := t.Text()
		substr := t.Needle(s)
		want := IndexOfReference(s, substr)
		if got := fn(string(s), string(substr)); got != want {
			t.Errorf("IndexOf(%s, %s) = %d; want: %d",
				Quote(string(s)), Quote(string(substr)), got, want)
		}
	})
}

var _ testing.TB = (*testWrapper)(nil)

// A testWrapper wraps a testing.T and will immediately fail the test
// if more that N errors occur.
type testWrapper struct {
	*testing.T
	fails int32
}

func (c *testWrapper) check() {
	c.T.Helper()
	if n := atomic.AddInt32(&c.fails, 1); n >= 10 {
		// We run tests in parallel so only call Fatal on the
		// test that crossed the threshold.
		if n == 10 {
			c.T.Fatal("Too many errors:", n)
		} else {
			c.T.FailNow() // Abort subsequent tests
		}
		panic(fmt.Sprintf("aborting test: too many errors: %d", n)) // unreachable
	}
}

func (c *testWrapper) Error(args ...any) {
	c.T.Helper()
	c.T.Error(args...)
	c.check()
}

func (c *testWrapper) Errorf(format string, args ...any) {
	c.T.Helper()
	c.T.Errorf(format, args...)
	c.check()
}

func (c *testWrapper) Fail() {
	c.T.Helper()
	c.T.Fail()
	c.check()
}

func (c *testWrapper) FailNow() {
	c.T.Helper()
	c.T.FailNow()
	c.check()
}

func (c *testWrapper) Fatal(args ...any) {
	c.T.Helper()
	c.T.Fatal(args...)
	c.check()
}

func (c *testWrapper) Fatalf(format string, args ...any) {
	c.T.Helper()
	c.T.Fatalf(format, args...)
	c.check()
}
