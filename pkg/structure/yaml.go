package structure

import (
	"bytes"
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/leyline/pkg/ley"
)

// YAMLHandler decodes text content as YAML.
type YAMLHandler struct{}

// NewYAMLHandler creates the "yaml" structure handler.
func NewYAMLHandler() *YAMLHandler {
	return &YAMLHandler{}
}

// Name implements Handler.
func (h *YAMLHandler) Name() string { return "yaml" }

// Description implements Handler.
func (h *YAMLHandler) Description() string { return "Structured data decoded from YAML" }

// Accepts implements Handler.
func (h *YAMLHandler) Accepts(kind ley.ContentKind) bool { return kind == ley.ContentText }

// Interpret implements Handler. Output is the data re-encoded in canonical form.
func (h *YAMLHandler) Interpret(_ context.Context, _ *Dispatcher, block *ley.Block) (*Result, error) {
	var data any
	if err := yaml.Unmarshal([]byte(block.Content.Text), &data); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	result := newResult(h, block)
	result.Data = data
	if data == nil {
		return result, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}
	result.Output = buf.String()

	return result, nil
}
