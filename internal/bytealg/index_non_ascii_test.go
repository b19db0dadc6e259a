package bytealg

import (
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"
)

var nonASCIITests = []string{
	"",
	"a",
	"abc",
	"abcβ",
	"β",
	"abK",
	"lOnGsTrInG",
	"0123456789İİ",
	"\U0007279d��",
	"abc\xff",
	strings.Repeat("a", 64) + "☻",
}

func testIndexNonASCII(t *testing.T, name string, fn func(s string) int) {
	const maxFailures = 80

	index := func(s string) int {
		for i := 0; i < len(s); i++ {
			if s[i] >= utf8.RuneSelf {
				return i
			}
		}
		return -1
	}

	t.Run("Tests", func(t *testing.T) {
		for _, s := range nonASCIITests {
			want := index(s)
			if got := fn(s); got != want {
				t.Errorf("%s(%q) = %d; want: %d", name, s, got, want)
			}
		}
	})

	t.Run("LongString", func(t *testing.T) {
		fails := 0

		long := strings.Repeat("a", 4096) + "βaβa"
		idx := index(long)
		for i := 0; i < len(long); i++ {
			s := long[i:]
			want := idx - i
			if want < 0 {
				want = index(s)
			}
			got := fn(s)
			if got != want {
				fails++
				if fails <= maxFailures {
					t.Errorf("%s(long[%d:]) = %d; want: %d", name, i, got, want)
				}
			}
		}

		if fails > 0 {
			t.Errorf("Failed: %d/%d", fails, len(long))
		}
	})
}

func TestIndexNonASCII(t *testing.T) {
	testIndexNonASCII(t, "IndexNonASCII", IndexNonASCII)
}

func TestIndexByteNonASCII(t *testing.T) {
	testIndexNonASCII(t, "IndexByteNonASCII", func(s string) int {
		return IndexByteNonASCII([]byte(s))
	})
}

var indexSizes = []int{10, 32, 4 << 10, 4 << 20, 64 << 20}

var bmbuf []byte

func valName(x int) string {
	if s := x >> 20; s<<20 == x {
		return strconv.Itoa(s) + "M"
	}
	if s := x >> 10; s<<10 == x {
		return strconv.Itoa(s) + "K"
	}
	return strconv.Itoa(x)
}

func benchBytes(b *testing.B, sizes []int, f func(b *testing.B, n int)) {
	for _, n := range sizes {
		b.Run(valName(n), func(b *testing.B) {
			if len(bmbuf) < n {
				bmbuf = make([]byte, n)
			}
			b.SetBytes(int64(n))
			f(b, n)
		})
	}
}

func BenchmarkIndexByteNonASCII(b *testing.B) {
	benchBytes(b, indexSizes, func(b *testing.B, n int) {
		buf := bmbuf[0:n]
		for i := 0; i < b.N; i++ {
			_ = IndexByteNonASCII(buf)
		}
	})
}
