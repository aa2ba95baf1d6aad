package structure

import (
	"context"

	"github.com/yaklabco/leyline/pkg/ley"
)

// SectionHandler groups nested blocks and interprets each child.
type SectionHandler struct{}

// NewSectionHandler creates the "section" structure handler.
func NewSectionHandler() *SectionHandler {
	return &SectionHandler{}
}

// Name implements Handler.
func (h *SectionHandler) Name() string { return "section" }

// Description implements Handler.
func (h *SectionHandler) Description() string { return "A group of nested blocks" }

// Accepts implements Handler.
func (h *SectionHandler) Accepts(kind ley.ContentKind) bool { return kind == ley.ContentNested }

// Interpret implements Handler.
func (h *SectionHandler) Interpret(ctx context.Context, d *Dispatcher, block *ley.Block) (*Result, error) {
	children, err := d.DispatchAll(ctx, block.Children())
	if err != nil {
		return nil, err
	}

	result := newResult(h, block)
	result.Children = children
	return result, nil
}
