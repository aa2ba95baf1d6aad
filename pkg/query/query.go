// Package query filters ley blocks with boolean expressions such as
//
//	structure == "code" && depth > 0
//	name startsWith "intro" || kind == "nested"
//
// Expressions are compiled once with expr-lang/expr and evaluated against
// an Env built from each block.
package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/yaklabco/leyline/pkg/ley"
)

// ErrEmptyExpression is returned when compiling a blank expression.
var ErrEmptyExpression = errors.New("empty filter expression")

// Env is the set of variables visible to a filter expression.
type Env struct {
	Name      string `expr:"name"`
	Structure string `expr:"structure"`
	Kind      string `expr:"kind"`
	Text      string `expr:"text"`
	Depth     int    `expr:"depth"`
	Fence     int    `expr:"fence"`
	Children  int    `expr:"children"`
	Length    int    `expr:"length"`
	Offset    int    `expr:"offset"`
}

// NewEnv builds the Env for a block at the given depth (0 for top level).
func NewEnv(b *ley.Block, depth int) Env {
	return Env{
		Name:      b.Name,
		Structure: b.Structure,
		Kind:      b.Content.Kind.String(),
		Text:      b.Content.Text,
		Depth:     depth,
		Fence:     b.Fence,
		Children:  len(b.Children()),
		Length:    b.Span.Len(),
		Offset:    b.Span.Start,
	}
}

// Filter is a compiled block filter.
type Filter struct {
	source  string
	program *vm.Program
}

// Compile parses and type-checks a filter expression.
// The expression must evaluate to a boolean.
func Compile(source string) (*Filter, error) {
	if strings.TrimSpace(source) == "" {
		return nil, ErrEmptyExpression
	}

	program, err := expr.Compile(source, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile filter %q: %w", source, err)
	}

	return &Filter{source: source, program: program}, nil
}

// String returns the expression source.
func (f *Filter) String() string {
	return f.source
}

// Match reports whether the block at depth satisfies the filter.
func (f *Filter) Match(b *ley.Block, depth int) (bool, error) {
	out, err := expr.Run(f.program, NewEnv(b, depth))
	if err != nil {
		return false, fmt.Errorf("evaluate filter %q: %w", f.source, err)
	}
	matched, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("evaluate filter %q: got %T, want bool", f.source, out)
	}
	return matched, nil
}

// Match is a block selected by a filter, with its depth.
type Match struct {
	Block *ley.Block
	Depth int
}

// Select returns the blocks, nested ones included, that satisfy f in pre-order.
func Select(blocks []*ley.Block, f *Filter) ([]Match, error) {
	matches := []Match{}
	err := ley.Walk(blocks, func(b *ley.Block, depth int) error {
		ok, err := f.Match(b, depth)
		if err != nil {
			return err
		}
		if ok {
			matches = append(matches, Match{Block: b, Depth: depth})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}
