package ley

import "strings"

// Fence characters.
const (
	nameOpen     = '!'
	nameClose    = ':'
	commentClose = ';'
	nestedOpen   = '{'
	nestedClose  = '}'
	textOpen     = '['
	textClose    = ']'
)

// MeasureRun returns the number of consecutive ch bytes at the start of s.
func MeasureRun(s string, ch byte) int {
	n := 0
	for n < len(s) && s[n] == ch {
		n++
	}
	return n
}

// FindClosingRun returns the index of the earliest position in s at which n
// consecutive ch bytes occur. The match is leftmost, not maximal: inside a
// longer run only the first n bytes belong to the fence and the rest stay in
// the stream. It returns false if no such run exists.
func FindClosingRun(s string, ch byte, n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	idx := strings.Index(s, strings.Repeat(string(ch), n))
	if idx < 0 {
		return 0, false
	}
	return idx, true
}
