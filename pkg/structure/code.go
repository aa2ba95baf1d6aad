package structure

import (
	"context"

	"github.com/yaklabco/leyline/internal/logging"
	"github.com/yaklabco/leyline/pkg/langdetect"
	"github.com/yaklabco/leyline/pkg/ley"
)

// CodeHandler tags source code with its language.
//
// Options:
//   - detect (bool): guess the language from the block. Default true.
//   - language (string): language used when detection is off or finds nothing.
type CodeHandler struct{}

// NewCodeHandler creates the "code" structure handler.
func NewCodeHandler() *CodeHandler {
	return &CodeHandler{}
}

// Name implements Handler.
func (h *CodeHandler) Name() string { return "code" }

// Description implements Handler.
func (h *CodeHandler) Description() string {
	return "Source code, language detected from the block name or content"
}

// Accepts implements Handler.
func (h *CodeHandler) Accepts(kind ley.ContentKind) bool { return kind == ley.ContentText }

// Interpret implements Handler.
func (h *CodeHandler) Interpret(ctx context.Context, d *Dispatcher, block *ley.Block) (*Result, error) {
	opts := d.options(h.Name())
	language := stringOption(opts, "language", "text")

	if boolOption(opts, "detect", true) {
		detection := langdetect.Detect(block.Name, []byte(block.Content.Text))
		if detection.Method != langdetect.MethodNone {
			language = detection.Language
		}
		logging.FromContext(ctx).Debug("detected language",
			logging.FieldBlock, block.Name,
			logging.FieldLanguage, detection.Language,
			"method", detection.Method,
		)
	}

	result := newResult(h, block)
	result.Output = block.Content.Text
	result.Language = language
	return result, nil
}
