// Package benchtest is used for benchmarking textcase against simple []rune
// implementations of the same operations.
//
// The []rune implementations (from internal/test) decode the whole string up
// front, which is what a naive port of an index based API would do. They are
// a useful measure of what the byte level fast paths in textcase save.
package benchtest
