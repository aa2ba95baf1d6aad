package ley

import (
	"strings"
	"unicode"
)

// Cursor is a forward-only view over the unconsumed suffix of a source string.
type Cursor struct {
	src  string
	rest string
}

// NewCursor returns a cursor positioned at the start of src.
func NewCursor(src string) *Cursor {
	return &Cursor{src: src, rest: src}
}

// Source returns the full input the cursor was created with.
func (c *Cursor) Source() string {
	return c.src
}

// Rest returns the unconsumed input.
func (c *Cursor) Rest() string {
	return c.rest
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int {
	return len(c.src) - len(c.rest)
}

// Len returns the number of unconsumed bytes.
func (c *Cursor) Len() int {
	return len(c.rest)
}

// Empty reports whether the input is exhausted.
func (c *Cursor) Empty() bool {
	return len(c.rest) == 0
}

// Peek returns the next byte without consuming it.
func (c *Cursor) Peek() (byte, bool) {
	if len(c.rest) == 0 {
		return 0, false
	}
	return c.rest[0], true
}

// Advance consumes n bytes. It panics if n exceeds the remaining input,
// since every caller measures before advancing.
func (c *Cursor) Advance(n int) {
	c.rest = c.rest[n:]
}

// Take consumes n bytes and returns them with their span.
func (c *Cursor) Take(n int) (string, Span) {
	start := c.Offset()
	text := c.rest[:n]
	c.rest = c.rest[n:]
	return text, Span{Start: start, End: start + n}
}

// TrimSpace consumes leading Unicode whitespace.
func (c *Cursor) TrimSpace() {
	c.rest = strings.TrimLeftFunc(c.rest, unicode.IsSpace)
}
