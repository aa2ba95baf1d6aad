package structure

import (
	"context"
	"fmt"

	"github.com/yaklabco/leyline/internal/logging"
	"github.com/yaklabco/leyline/pkg/config"
	"github.com/yaklabco/leyline/pkg/ley"
)

// Dispatcher hands blocks to the handlers registered for their structures.
type Dispatcher struct {
	registry *Registry
	cfg      *config.Config
}

// NewDispatcher creates a Dispatcher. A nil registry uses DefaultRegistry and
// a nil config uses config.NewConfig().
func NewDispatcher(registry *Registry, cfg *config.Config) *Dispatcher {
	if registry == nil {
		registry = DefaultRegistry
	}
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Dispatcher{registry: registry, cfg: cfg}
}

// Config returns the configuration used for dispatch.
func (d *Dispatcher) Config() *config.Config {
	return d.cfg
}

// Registry returns the registry used for dispatch.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Interpret dispatches every top-level block of doc.
func (d *Dispatcher) Interpret(ctx context.Context, doc *ley.Document) ([]*Result, error) {
	if doc == nil {
		return nil, nil
	}
	return d.DispatchAll(ctx, doc.Blocks)
}

// DispatchAll dispatches blocks in order and stops at the first error.
func (d *Dispatcher) DispatchAll(ctx context.Context, blocks []*ley.Block) ([]*Result, error) {
	results := make([]*Result, 0, len(blocks))
	for _, block := range blocks {
		result, err := d.Dispatch(ctx, block)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// Dispatch interprets a single block.
//
// Blocks whose structure is unknown, disabled, or given content the handler
// does not accept are returned as skipped Results; in strict mode they are
// errors instead. Handler errors are always returned wrapped in *BlockError.
func (d *Dispatcher) Dispatch(ctx context.Context, block *ley.Block) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("dispatch cancelled: %w", err)
	}

	logger := logging.FromContext(ctx)

	name, handler, ok := d.registry.Resolve(block.Structure)
	if !ok {
		return d.skip(ctx, block, block.Structure, ErrUnknownStructure)
	}
	if !d.cfg.StructureEnabled(name) {
		return d.skip(ctx, block, name, ErrStructureDisabled)
	}
	if !handler.Accepts(block.Content.Kind) {
		return d.skip(ctx, block, name, fmt.Errorf("%w: %s content", ErrContentMismatch, block.Content.Kind))
	}

	logger.Debug("interpreting block",
		logging.FieldBlock, block.Name,
		logging.FieldStructure, name,
	)

	result, err := handler.Interpret(ctx, d, block)
	if err != nil {
		return nil, &BlockError{Block: block, Structure: name, Err: err}
	}
	return result, nil
}

func (d *Dispatcher) skip(ctx context.Context, block *ley.Block, structure string, reason error) (*Result, error) {
	if d.cfg.Strict {
		return nil, &BlockError{Block: block, Structure: structure, Err: reason}
	}

	logging.FromContext(ctx).Debug("skipping block",
		logging.FieldBlock, block.Name,
		logging.FieldStructure, structure,
		logging.FieldReason, reason.Error(),
	)

	return &Result{
		Block:     block,
		Name:      block.Name,
		Structure: structure,
		Skipped:   true,
		Reason:    reason.Error(),
	}, nil
}

// options returns the configured options for a structure.
func (d *Dispatcher) options(name string) map[string]any {
	return d.cfg.StructureOptions(name)
}

// boolOption reads a boolean option, returning def when absent or mistyped.
func boolOption(opts map[string]any, key string, def bool) bool {
	if v, ok := opts[key].(bool); ok {
		return v
	}
	return def
}

// stringOption reads a string option, returning def when absent or mistyped.
func stringOption(opts map[string]any, key, def string) string {
	if v, ok := opts[key].(string); ok && v != "" {
		return v
	}
	return def
}
