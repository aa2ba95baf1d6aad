// Package ley scans ley markup, a nested notation built from counted fences.
//
// A block is written as
//
//	!name: structure [text]
//	!name: structure { !child: s [x] }
//
// Each fence is a run of one repeated character whose width is chosen per
// occurrence, so "!!a:b:: s [x]" names a block "a:b" and the text content
// "[[ x ] y ]]" holds " x ] y ". A name closed with ';' instead of ':' marks a
// comment block, which is scanned and then dropped.
//
// Closing runs are matched leftmost: a text block opened with "[[" ends at
// the first "]]", and any further ']' bytes of a longer run are left for
// whatever follows.
package ley
