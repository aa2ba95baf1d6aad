package ley

import (
	"errors"
	"fmt"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrUnexpectedEOF indicates the input ended while a fence, name,
	// structure terminator or closing run was still required.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrInvalidFence indicates a fence run was empty where a non-empty run
	// was required, or a closing brace run did not match the opening run.
	ErrInvalidFence = errors.New("invalid fence")

	// ErrNestingTooDeep indicates nested content exceeded MaxNesting levels.
	ErrNestingTooDeep = errors.New("nesting too deep")
)

// SyntaxError describes where and why a parse failed.
type SyntaxError struct {
	// Kind is ErrUnexpectedEOF, ErrInvalidFence or ErrNestingTooDeep.
	Kind error

	// Offset is the byte offset in the source at which the failure was detected.
	Offset int

	// Line and Column are 1-based; zero when the line index was not available.
	Line   int
	Column int

	// Context names what the scanner was looking for.
	Context string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	loc := fmt.Sprintf("offset %d", e.Offset)
	if e.Line > 0 {
		loc = fmt.Sprintf("%d:%d", e.Line, e.Column)
	}
	if e.Context == "" {
		return fmt.Sprintf("%s: %v", loc, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %s", loc, e.Kind, e.Context)
}

// Unwrap returns the sentinel kind.
func (e *SyntaxError) Unwrap() error {
	return e.Kind
}

func unexpectedEOF(c *Cursor, format string, args ...any) *SyntaxError {
	return &SyntaxError{Kind: ErrUnexpectedEOF, Offset: c.Offset(), Context: fmt.Sprintf(format, args...)}
}

func nestingTooDeep(c *Cursor) *SyntaxError {
	return &SyntaxError{Kind: ErrNestingTooDeep, Offset: c.Offset(), Context: fmt.Sprintf("nesting exceeds %d levels", MaxNesting)}
}

func invalidFence(c *Cursor, format string, args ...any) *SyntaxError {
	return &SyntaxError{Kind: ErrInvalidFence, Offset: c.Offset(), Context: fmt.Sprintf(format, args...)}
}
