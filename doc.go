// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package textcase implements character level case and index operations on
// strings: alternating case, title case and initials, rune lookup from either
// end of a string, range based substrings and overlapping occurrence counts.
//
// All indices are rune indices, not byte offsets. Runes are compared by code
// point except where a function accepts an ignoreCase argument, in which case
// simple Unicode case folding is used (see [strings.EqualFold]).
//
// Functions that look up a single rune return [NoChar] instead of panicking
// when the index is out of range and [IndexOfAll] reports a missing rune as
// []int{-1}. The only function that panics is [SubstringEnd], and only when
// given a negative index.
//
// The [github.com/charlievieth/textcase/bytcase] package provides the same
// API for byte slices.
package textcase

// BUG(cvieth): Case mappings are per rune. Special casing rules that change
// the number of runes (such as 'ß' upper casing to "SS") are not applied.
