package reporter

import (
	"errors"

	"github.com/yaklabco/leyline/pkg/ley"
	"github.com/yaklabco/leyline/pkg/runner"
	"github.com/yaklabco/leyline/pkg/structure"
)

// outputVersion is the schema version of machine-readable output.
const outputVersion = "1.0.0"

// Output is the top-level structure shared by the JSON and YAML reporters.
type Output struct {
	Version string       `json:"version" yaml:"version"`
	Files   []FileOutput `json:"files" yaml:"files"`
	Summary runner.Stats `json:"summary" yaml:"summary"`
}

// FileOutput represents a single file's results.
type FileOutput struct {
	Path    string              `json:"path" yaml:"path"`
	Blocks  []BlockOutput       `json:"blocks,omitempty" yaml:"blocks,omitempty"`
	Matches []MatchOutput       `json:"matches,omitempty" yaml:"matches,omitempty"`
	Results []*structure.Result `json:"results,omitempty" yaml:"results,omitempty"`
	Error   *ErrorOutput        `json:"error,omitempty" yaml:"error,omitempty"`
}

// BlockOutput is the serialized form of a ley.Block.
type BlockOutput struct {
	Name      string        `json:"name" yaml:"name"`
	Structure string        `json:"structure" yaml:"structure"`
	Kind      string        `json:"kind" yaml:"kind"`
	Fence     int           `json:"fence" yaml:"fence"`
	Line      int           `json:"line" yaml:"line"`
	Column    int           `json:"column" yaml:"column"`
	Span      SpanOutput    `json:"span" yaml:"span"`
	Text      string        `json:"text,omitempty" yaml:"text,omitempty"`
	Blocks    []BlockOutput `json:"blocks,omitempty" yaml:"blocks,omitempty"`
}

// MatchOutput is a block selected by a filter, with its nesting depth.
type MatchOutput struct {
	Depth int         `json:"depth" yaml:"depth"`
	Block BlockOutput `json:"block" yaml:"block"`
}

// SpanOutput is a half-open byte range.
type SpanOutput struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// ErrorOutput describes why a file failed.
type ErrorOutput struct {
	Message string `json:"message" yaml:"message"`
	Kind    string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Offset  int    `json:"offset,omitempty" yaml:"offset,omitempty"`
	Line    int    `json:"line,omitempty" yaml:"line,omitempty"`
	Column  int    `json:"column,omitempty" yaml:"column,omitempty"`
}

// buildOutput converts a run result into the serializable model.
func buildOutput(opts Options, result *runner.Result) *Output {
	output := &Output{
		Version: outputVersion,
		Files:   make([]FileOutput, 0),
	}

	if result == nil {
		return output
	}

	output.Summary = result.Stats
	output.Files = make([]FileOutput, 0, len(result.Files))

	for i := range result.Files {
		output.Files = append(output.Files, buildFileOutput(opts, result, &result.Files[i]))
	}

	return output
}

func buildFileOutput(opts Options, result *runner.Result, outcome *runner.FileOutcome) FileOutput {
	fileOut := FileOutput{Path: opts.displayPath(outcome.Path)}

	if outcome.Error != nil {
		fileOut.Error = buildErrorOutput(outcome.Error)
		return fileOut
	}

	switch {
	case result.Interpreted:
		fileOut.Results = outcome.Results
	case result.Filtered:
		fileOut.Matches = make([]MatchOutput, 0, len(outcome.Matches))
		for _, match := range outcome.Matches {
			fileOut.Matches = append(fileOut.Matches, MatchOutput{
				Depth: match.Depth,
				Block: buildBlockOutput(outcome.File, match.Block),
			})
		}
	default:
		fileOut.Blocks = buildBlockOutputs(outcome.File, outcome.Blocks())
	}

	return fileOut
}

func buildBlockOutputs(file *ley.File, blocks []*ley.Block) []BlockOutput {
	if len(blocks) == 0 {
		return nil
	}
	out := make([]BlockOutput, 0, len(blocks))
	for _, block := range blocks {
		out = append(out, buildBlockOutput(file, block))
	}
	return out
}

func buildBlockOutput(file *ley.File, block *ley.Block) BlockOutput {
	out := BlockOutput{
		Name:      block.Name,
		Structure: block.Structure,
		Kind:      block.Content.Kind.String(),
		Fence:     block.Fence,
		Span:      SpanOutput{Start: block.Span.Start, End: block.Span.End},
	}

	if file != nil {
		out.Line, out.Column = file.Position(block.Span)
	}

	if block.IsNested() {
		out.Blocks = buildBlockOutputs(file, block.Children())
	} else {
		out.Text = block.Content.Text
	}

	return out
}

func buildErrorOutput(err error) *ErrorOutput {
	out := &ErrorOutput{Message: err.Error()}

	var syntaxErr *ley.SyntaxError
	if errors.As(err, &syntaxErr) {
		out.Kind = syntaxErr.Kind.Error()
		out.Offset = syntaxErr.Offset
		out.Line = syntaxErr.Line
		out.Column = syntaxErr.Column
	}

	return out
}
