package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/leyline/internal/ui/pretty"
	"github.com/yaklabco/leyline/pkg/runner"
)

// TextReporter formats results as styled terminal trees.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	width  int
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	width := opts.Width
	if width <= 0 {
		width = pretty.TerminalWidth(opts.Writer)
	}
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		width:  width,
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	treeOpts := pretty.TreeOptions{Width: r.width, ShowSpans: r.opts.ShowSpans}
	failed := 0

	for i := range result.Files {
		file := &result.Files[i]
		path := r.opts.displayPath(file.Path)

		if file.Error != nil {
			failed++
			fmt.Fprint(r.bw, r.styles.FormatFileError(path, file.Content(), file.Error))
			continue
		}

		if r.opts.ErrorsOnly {
			continue
		}

		switch {
		case result.Interpreted:
			fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, len(file.Results)))
			fmt.Fprint(r.bw, r.styles.FormatResults(file.Results))
		case result.Filtered:
			fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, len(file.Matches)))
			fmt.Fprint(r.bw, r.styles.FormatMatches(file.Matches, treeOpts))
		default:
			blocks := file.Blocks()
			fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, len(blocks)))
			fmt.Fprint(r.bw, r.styles.FormatTree(blocks, treeOpts))
		}

		// Blank line between files
		fmt.Fprintln(r.bw)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return failed, nil
}
