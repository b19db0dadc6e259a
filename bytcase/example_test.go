package bytcase_test

import (
	"fmt"

	"github.com/charlievieth/textcase/bytcase"
)

func ExampleAlternateCases() {
	fmt.Printf("%s\n", bytcase.AlternateCases([]byte("longstring")))
	// Output:
	// lOnGsTrInG
}

func ExampleIsAlternateCases() {
	fmt.Println(bytcase.IsAlternateCases([]byte("lOnGsTrInG")))
	fmt.Println(bytcase.IsAlternateCases([]byte("longstring")))
	// Output:
	// true
	// false
}

func ExampleGetTitle() {
	fmt.Printf("%s\n", bytcase.GetTitle([]byte("the big story")))
	// Output:
	// The Big Story
}

func ExampleGetInitials() {
	fmt.Printf("%s\n", bytcase.GetInitials([]byte("John Smith"), true, true))
	fmt.Printf("%s\n", bytcase.GetInitials([]byte("John Smith"), false, false))
	// Output:
	// J. S.
	// J.S.
}

func ExampleIndexOfAll() {
	fmt.Println(bytcase.IndexOfAll([]byte("Hello"), "l"))
	fmt.Println(bytcase.IndexOfAll([]byte("Bob"), "1"))
	// Output:
	// [2 3]
	// [-1]
}

func ExampleSubstringEnd() {
	fmt.Printf("%s\n", bytcase.SubstringEnd([]byte("hello"), 3, 1))
	// Output:
	// el
}

func ExampleCountTotal() {
	fmt.Println(bytcase.CountTotal([]byte("lll"), []byte("ll"), false))
	// Output:
	// 2
}
