// Package structure interprets the content of ley blocks.
//
// The parser in pkg/ley only records each block's structure name. A Registry
// maps those names to Handlers, and a Dispatcher walks a parsed document,
// hands every block to its handler and collects the Results.
package structure

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/leyline/pkg/ley"
)

// Sentinel errors for dispatch failures.
var (
	// ErrUnknownStructure is returned when no handler is registered for a
	// block's structure name.
	ErrUnknownStructure = errors.New("unknown structure")

	// ErrStructureDisabled is returned when the handler exists but is
	// disabled by configuration.
	ErrStructureDisabled = errors.New("structure disabled")

	// ErrContentMismatch is returned when a handler does not accept the
	// block's content kind, such as nested blocks given to "exact".
	ErrContentMismatch = errors.New("content kind not accepted")
)

// Handler interprets blocks of one structure.
type Handler interface {
	// Name returns the canonical structure name (e.g., "paragraph").
	Name() string

	// Description returns a one-line description of the structure.
	Description() string

	// Accepts reports whether the handler can interpret content of kind.
	Accepts(kind ley.ContentKind) bool

	// Interpret builds a Result for block. Handlers of nested content use d
	// to interpret the children.
	Interpret(ctx context.Context, d *Dispatcher, block *ley.Block) (*Result, error)
}

// Result is the interpretation of one block.
type Result struct {
	// Block is the interpreted block.
	Block *ley.Block `json:"-" yaml:"-"`

	// Name is the block name.
	Name string `json:"name" yaml:"name"`

	// Structure is the canonical structure name, or the name as written when
	// it could not be resolved.
	Structure string `json:"structure" yaml:"structure"`

	// Output is the rendered text of the block.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// Language is the detected language of code blocks.
	Language string `json:"language,omitempty" yaml:"language,omitempty"`

	// Data holds structured values such as decoded YAML or grammar tokens.
	Data any `json:"data,omitempty" yaml:"data,omitempty"`

	// Children are the results of nested blocks.
	Children []*Result `json:"children,omitempty" yaml:"children,omitempty"`

	// Skipped is set when the block was not interpreted; Reason says why.
	Skipped bool   `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Reason  string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// newResult starts a Result for block interpreted by handler h.
func newResult(h Handler, block *ley.Block) *Result {
	return &Result{
		Block:     block,
		Name:      block.Name,
		Structure: h.Name(),
	}
}

// BlockError ties a dispatch or handler error to the block that caused it.
type BlockError struct {
	Block     *ley.Block
	Structure string
	Err       error
}

// Error implements the error interface.
func (e *BlockError) Error() string {
	return fmt.Sprintf("block %q at offset %d (%s): %v", e.Block.Name, e.Block.Span.Start, e.Structure, e.Err)
}

// Unwrap returns the underlying error.
func (e *BlockError) Unwrap() error {
	return e.Err
}
