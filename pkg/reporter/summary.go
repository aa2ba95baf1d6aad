package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strconv"

	"github.com/yaklabco/leyline/internal/ui/pretty"
	"github.com/yaklabco/leyline/pkg/ley"
	"github.com/yaklabco/leyline/pkg/runner"
)

// File status labels for the summary table.
const (
	statusOK     = "ok"
	statusFailed = "failed"
)

// SummaryReporter formats results as a per-file table followed by totals.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
	width  int
	bw     *bufio.Writer
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	width := opts.Width
	if width <= 0 {
		width = pretty.TerminalWidth(opts.Writer)
	}
	return &SummaryReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		width:  width,
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	if len(result.Files) > 0 {
		formatter := pretty.NewTableFormatter(r.styles, r.width)
		fmt.Fprint(r.bw, formatter.Format(r.buildTable(result)))
	}

	fmt.Fprint(r.bw, r.styles.FormatSummary(result.Stats))

	return result.Stats.FilesErrored, nil
}

func (r *SummaryReporter) buildTable(result *runner.Result) pretty.Table {
	table := pretty.Table{
		Headers: []string{"FILE", "BLOCKS", "DEPTH", "STATUS"},
		Rows:    make([][]string, 0, len(result.Files)),
		Flex:    0,
	}

	for i := range result.Files {
		file := &result.Files[i]
		blocks := file.Blocks()

		status := statusOK
		if file.Error != nil {
			status = statusFailed
		}

		table.Rows = append(table.Rows, []string{
			r.opts.displayPath(file.Path),
			strconv.Itoa(ley.Count(blocks)),
			strconv.Itoa(ley.MaxDepth(blocks)),
			status,
		})
	}

	return table
}
