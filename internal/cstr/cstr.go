//go:build cgo
// +build cgo

// Package cstr exposes the C library's ASCII case mapping and comparison
// routines. They are independent references for the byte level case
// handling of textcase: tests combine them to check each step of the ASCII
// code paths, rather than comparing against a C rewrite of the same
// algorithm.
package cstr

/*
#include <stdlib.h>
#include <ctype.h>
#include <string.h>
#include <strings.h>
*/
import "C"
import "unsafe"

// Toupper maps the ASCII letters of s to upper case with toupper(3).
func Toupper(s string) string {
	b := []byte(s)
	for i, c := range b {
		b[i] = byte(C.toupper(C.int(c)))
	}
	return string(b)
}

// Tolower maps the ASCII letters of s to lower case with tolower(3).
func Tolower(s string) string {
	b := []byte(s)
	for i, c := range b {
		b[i] = byte(C.tolower(C.int(c)))
	}
	return string(b)
}

func compare(s, t string, fold bool) int {
	n := len(s)
	if len(t) < n {
		n = len(t)
	}
	cs := C.CString(s)
	ct := C.CString(t)
	defer C.free(unsafe.Pointer(cs))
	defer C.free(unsafe.Pointer(ct))
	if fold {
		return int(C.strncasecmp(cs, ct, C.size_t(n)))
	}
	return int(C.strncmp(cs, ct, C.size_t(n)))
}

// HasPrefix reports whether s begins with prefix using strncmp(3). Neither
// string may contain NUL bytes.
func HasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && compare(s, prefix, false) == 0
}

// HasPrefixFold is like HasPrefix but compares with strncasecmp(3).
func HasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && compare(s, prefix, true) == 0
}
