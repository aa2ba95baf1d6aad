package structure

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/yaklabco/leyline/pkg/config"
	"github.com/yaklabco/leyline/pkg/ley"
)

// MarkdownHandler renders text content as HTML.
//
// The flavor comes from the "flavor" option, falling back to the
// configuration's Flavor.
type MarkdownHandler struct {
	commonmark goldmark.Markdown
	gfm        goldmark.Markdown
}

// NewMarkdownHandler creates the "markdown" structure handler.
func NewMarkdownHandler() *MarkdownHandler {
	return &MarkdownHandler{
		commonmark: goldmark.New(),
		gfm:        goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Name implements Handler.
func (h *MarkdownHandler) Name() string { return "markdown" }

// Description implements Handler.
func (h *MarkdownHandler) Description() string { return "Markdown rendered to HTML (commonmark or gfm)" }

// Accepts implements Handler.
func (h *MarkdownHandler) Accepts(kind ley.ContentKind) bool { return kind == ley.ContentText }

// Interpret implements Handler.
func (h *MarkdownHandler) Interpret(_ context.Context, d *Dispatcher, block *ley.Block) (*Result, error) {
	flavor := config.Flavor(stringOption(d.options(h.Name()), "flavor", string(d.Config().Flavor)))

	var buf bytes.Buffer
	if err := h.engine(flavor).Convert([]byte(block.Content.Text), &buf); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}

	result := newResult(h, block)
	result.Output = buf.String()
	return result, nil
}

//nolint:ireturn // goldmark.Markdown is an external interface type
func (h *MarkdownHandler) engine(flavor config.Flavor) goldmark.Markdown {
	if flavor == config.FlavorGFM {
		return h.gfm
	}
	return h.commonmark
}
