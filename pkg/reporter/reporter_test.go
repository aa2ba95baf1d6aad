package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/leyline/pkg/query"
	"github.com/yaklabco/leyline/pkg/reporter"
	"github.com/yaklabco/leyline/pkg/runner"
	"github.com/yaklabco/leyline/pkg/structure"
)

const sampleSource = "!intro: exact [hello]\n!outer: section {\n  !inner: exact [x]\n}\n"

func parseResult(t *testing.T, opts runner.Options, content string) *runner.Result {
	t.Helper()
	return runner.New(opts).RunContent(context.Background(), "sample.ley", []byte(content))
}

func report(t *testing.T, opts reporter.Options, result *runner.Result) (string, int) {
	t.Helper()

	var buf bytes.Buffer
	opts.Writer = &buf
	opts.Color = "never"
	if opts.Width == 0 {
		opts.Width = 80
	}

	rep, err := reporter.New(opts)
	require.NoError(t, err)

	failed, err := rep.Report(context.Background(), result)
	require.NoError(t, err)

	return buf.String(), failed
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{name: "empty defaults to text", input: "", want: reporter.FormatText},
		{name: "text", input: "text", want: reporter.FormatText},
		{name: "json", input: "json", want: reporter.FormatJSON},
		{name: "yaml", input: "yaml", want: reporter.FormatYAML},
		{name: "summary", input: "summary", want: reporter.FormatSummary},
		{name: "unknown format", input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, reporter.FormatText.IsValid())
	assert.True(t, reporter.FormatYAML.IsValid())
	assert.False(t, reporter.Format("unknown").IsValid())
	assert.False(t, reporter.Format("").IsValid())
}

func TestNew_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := reporter.New(reporter.Options{Writer: &bytes.Buffer{}, Format: "xml"})
	require.Error(t, err)
}

func TestTextReporter_Tree(t *testing.T) {
	t.Parallel()

	result := parseResult(t, runner.Options{}, sampleSource)
	out, failed := report(t, reporter.Options{ShowSummary: true}, result)

	assert.Equal(t, 0, failed)
	assert.Contains(t, out, "sample.ley (2 blocks)")
	assert.Contains(t, out, "intro (exact) text \"hello\"")
	assert.Contains(t, out, "outer (section) nested:1")
	assert.Contains(t, out, "inner (exact) text \"x\"")
	assert.Contains(t, out, "3 blocks in 1 file, max depth 2")
}

func TestTextReporter_SyntaxError(t *testing.T) {
	t.Parallel()

	result := parseResult(t, runner.Options{}, "!a: exact [[x]")
	out, failed := report(t, reporter.Options{ShowSummary: true}, result)

	assert.Equal(t, 1, failed)
	assert.Contains(t, out, "sample.ley:1:")
	assert.Contains(t, out, "unexpected end of input")
	assert.Contains(t, out, "    !a: exact [[x]\n")
	assert.Contains(t, out, "1 file failed")
}

func TestTextReporter_ErrorsOnly(t *testing.T) {
	t.Parallel()

	result := parseResult(t, runner.Options{}, sampleSource)
	out, failed := report(t, reporter.Options{ErrorsOnly: true}, result)

	assert.Equal(t, 0, failed)
	assert.Empty(t, out)
}

func TestTextReporter_Interpreted(t *testing.T) {
	t.Parallel()

	opts := runner.Options{Dispatcher: structure.NewDispatcher(nil, nil)}
	result := parseResult(t, opts, sampleSource)
	out, _ := report(t, reporter.Options{}, result)

	assert.Contains(t, out, "── intro (exact)\n   hello\n")
	assert.Contains(t, out, "── outer (section)\n   ── inner (exact)\n      x\n")
}

func TestTextReporter_Filtered(t *testing.T) {
	t.Parallel()

	filter, err := query.Compile(`depth > 0`)
	require.NoError(t, err)

	result := parseResult(t, runner.Options{Filter: filter}, sampleSource)
	out, _ := report(t, reporter.Options{}, result)

	assert.Contains(t, out, "sample.ley (1 block)")
	assert.Contains(t, out, "·1 inner (exact)")
	assert.NotContains(t, out, "intro")
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	result := parseResult(t, runner.Options{}, sampleSource)
	out, failed := report(t, reporter.Options{Format: reporter.FormatJSON}, result)
	assert.Equal(t, 0, failed)

	var output reporter.Output
	require.NoError(t, json.Unmarshal([]byte(out), &output))

	assert.Equal(t, "1.0.0", output.Version)
	require.Len(t, output.Files, 1)

	file := output.Files[0]
	assert.Equal(t, "sample.ley", file.Path)
	assert.Nil(t, file.Error)
	require.Len(t, file.Blocks, 2)

	intro := file.Blocks[0]
	assert.Equal(t, "intro", intro.Name)
	assert.Equal(t, "exact", intro.Structure)
	assert.Equal(t, "text", intro.Kind)
	assert.Equal(t, "hello", intro.Text)
	assert.Equal(t, 1, intro.Line)
	assert.Equal(t, 1, intro.Column)
	assert.Equal(t, reporter.SpanOutput{Start: 0, End: 21}, intro.Span)

	outer := file.Blocks[1]
	assert.Equal(t, "nested", outer.Kind)
	assert.Equal(t, 2, outer.Line)
	require.Len(t, outer.Blocks, 1)
	assert.Equal(t, "inner", outer.Blocks[0].Name)
	assert.Equal(t, 3, outer.Blocks[0].Line)
	assert.Equal(t, 3, outer.Blocks[0].Column)

	assert.Equal(t, 3, output.Summary.BlocksTotal)
	assert.Equal(t, 2, output.Summary.MaxDepth)
}

func TestJSONReporter_Error(t *testing.T) {
	t.Parallel()

	result := parseResult(t, runner.Options{}, "!a: exact {{ }")
	out, failed := report(t, reporter.Options{Format: reporter.FormatJSON, Compact: true}, result)
	assert.Equal(t, 1, failed)

	var output reporter.Output
	require.NoError(t, json.Unmarshal([]byte(out), &output))
	require.Len(t, output.Files, 1)
	require.NotNil(t, output.Files[0].Error)
	assert.Equal(t, 1, output.Files[0].Error.Line)
	assert.NotEmpty(t, output.Files[0].Error.Kind)
	assert.Equal(t, 1, output.Summary.FilesErrored)
}

func TestJSONReporter_NilResult(t *testing.T) {
	t.Parallel()

	out, failed := report(t, reporter.Options{Format: reporter.FormatJSON}, nil)
	assert.Equal(t, 0, failed)

	var output reporter.Output
	require.NoError(t, json.Unmarshal([]byte(out), &output))
	assert.Empty(t, output.Files)
}

func TestYAMLReporter(t *testing.T) {
	t.Parallel()

	opts := runner.Options{Dispatcher: structure.NewDispatcher(nil, nil)}
	result := parseResult(t, opts, "!doc: exact [body]\n")
	out, failed := report(t, reporter.Options{Format: reporter.FormatYAML}, result)
	assert.Equal(t, 0, failed)

	var output map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &output))
	assert.Equal(t, "1.0.0", output["version"])

	files, ok := output["files"].([]any)
	require.True(t, ok)
	require.Len(t, files, 1)

	file, ok := files[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "sample.ley", file["path"])
	assert.NotContains(t, file, "blocks")
	assert.Contains(t, file, "results")

	summary, ok := output["summary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 1, summary["files_parsed"])
}

func TestSummaryReporter(t *testing.T) {
	t.Parallel()

	result := parseResult(t, runner.Options{}, sampleSource)
	out, failed := report(t, reporter.Options{Format: reporter.FormatSummary}, result)

	assert.Equal(t, 0, failed)
	assert.Contains(t, out, "FILE")
	assert.Contains(t, out, "STATUS")
	assert.Contains(t, out, "sample.ley")
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "All files parsed")
}

func TestSummaryReporter_Failed(t *testing.T) {
	t.Parallel()

	result := parseResult(t, runner.Options{}, "!a: exact")
	out, failed := report(t, reporter.Options{Format: reporter.FormatSummary}, result)

	assert.Equal(t, 1, failed)
	assert.Contains(t, out, "failed")
	assert.Contains(t, out, "Parse failed")
}
