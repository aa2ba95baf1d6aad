package structure

import (
	"context"
	"strings"

	"github.com/yaklabco/leyline/pkg/ley"
)

// ExactHandler passes text content through unchanged.
//
// Options:
//   - trim (bool): strip leading and trailing whitespace. Default false.
type ExactHandler struct{}

// NewExactHandler creates the "exact" structure handler.
func NewExactHandler() *ExactHandler {
	return &ExactHandler{}
}

// Name implements Handler.
func (h *ExactHandler) Name() string { return "exact" }

// Description implements Handler.
func (h *ExactHandler) Description() string { return "Verbatim text, reproduced exactly" }

// Accepts implements Handler.
func (h *ExactHandler) Accepts(kind ley.ContentKind) bool { return kind == ley.ContentText }

// Interpret implements Handler.
func (h *ExactHandler) Interpret(_ context.Context, d *Dispatcher, block *ley.Block) (*Result, error) {
	result := newResult(h, block)
	result.Output = block.Content.Text
	if boolOption(d.options(h.Name()), "trim", false) {
		result.Output = strings.TrimSpace(result.Output)
	}
	return result, nil
}
