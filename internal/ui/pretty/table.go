package pretty

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table formatting constants.
const (
	tablePadding   = 2
	minFlexWidth   = 12
	heavySeparator = "="
)

// cellWidth measures terminal cells. Ambiguous-width runes such as the
// ellipsis count as one cell regardless of locale.
//
//nolint:gochecknoglobals // Read-only width condition.
var cellWidth = func() *runewidth.Condition {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	return cond
}()

// Table is a plain-text table with one flexible column that shrinks to fit
// the terminal.
type Table struct {
	Headers []string
	Rows    [][]string

	// Flex is the index of the column truncated when the table is too wide.
	Flex int
}

// TableFormatter formats tables with the configured styles and width.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

// Format renders the table: header, heavy separator, rows, heavy separator.
func (t *TableFormatter) Format(table Table) string {
	if len(table.Headers) == 0 {
		return ""
	}

	widths := t.columnWidths(table)
	total := (len(widths) - 1) * tablePadding
	for _, w := range widths {
		total += w
	}
	separator := t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, total))

	var builder strings.Builder
	builder.WriteString(t.styles.TableHeader.Render(formatCells(table.Headers, widths)))
	builder.WriteString("\n")
	builder.WriteString(separator)
	builder.WriteString("\n")

	for _, row := range table.Rows {
		builder.WriteString(formatCells(row, widths))
		builder.WriteString("\n")
	}

	builder.WriteString(separator)
	builder.WriteString("\n")

	return builder.String()
}

// columnWidths sizes each column to its widest cell, then shrinks the flex
// column to fit the terminal width.
func (t *TableFormatter) columnWidths(table Table) []int {
	widths := make([]int, len(table.Headers))
	for i, h := range table.Headers {
		widths[i] = cellWidth.StringWidth(h)
	}
	for _, row := range table.Rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], cellWidth.StringWidth(row[i]))
		}
	}

	total := (len(widths) - 1) * tablePadding
	for _, w := range widths {
		total += w
	}

	if flex := table.Flex; total > t.termWidth && flex >= 0 && flex < len(widths) {
		widths[flex] = max(minFlexWidth, widths[flex]-(total-t.termWidth))
	}

	return widths
}

// formatCells pads and truncates cells to widths. The last column is not padded.
func formatCells(cells []string, widths []int) string {
	var builder strings.Builder
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = truncateString(cells[i], w)
		}
		builder.WriteString(cell)
		if i < len(widths)-1 {
			builder.WriteString(strings.Repeat(" ", w-cellWidth.StringWidth(cell)+tablePadding))
		}
	}
	return strings.TrimRight(builder.String(), " ")
}

// truncateString shortens s to maxLen runes, ending with an ellipsis.
func truncateString(s string, maxLen int) string {
	if cellWidth.StringWidth(s) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return ellipsis
	}
	runes := []rune(s)
	return string(runes[:maxLen-1]) + ellipsis
}
