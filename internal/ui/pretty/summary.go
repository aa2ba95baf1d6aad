package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/leyline/pkg/runner"
)

const summaryDividerWidth = 40

// plural returns word with an "s" unless n is 1.
func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	if strings.HasSuffix(word, "ch") {
		return fmt.Sprintf("%d %ses", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "14 blocks in 3 files, max depth 2, 1 file failed".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesDiscovered == 0 {
		return s.Dim.Render("No ley files found") + "\n"
	}

	parts := []string{
		fmt.Sprintf("%s in %s", plural(stats.BlocksTotal, "block"), plural(stats.FilesParsed, "file")),
		"max depth " + strconv.Itoa(stats.MaxDepth),
	}

	if stats.BlocksMatched > 0 {
		parts = append(parts, plural(stats.BlocksMatched, "match"))
	}
	if stats.BlocksSkipped > 0 {
		parts = append(parts, s.Warning.Render(plural(stats.BlocksSkipped, "block")+" skipped"))
	}

	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(plural(stats.FilesErrored, "file")+" failed"))
	} else {
		parts[0] = s.Success.Render(parts[0])
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	row := func(label string, value string) {
		builder.WriteString(fmt.Sprintf("  %-18s %s\n", label+":", value))
	}

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	row("Files discovered", s.SummaryValue.Render(strconv.Itoa(stats.FilesDiscovered)))
	row("Files parsed", s.SummaryValue.Render(strconv.Itoa(stats.FilesParsed)))
	if stats.FilesErrored > 0 {
		row("Files failed", s.Failure.Render(strconv.Itoa(stats.FilesErrored)))
	}

	builder.WriteString("\n")

	row("Blocks", s.SummaryValue.Render(strconv.Itoa(stats.BlocksTotal)))
	row("Max depth", s.SummaryValue.Render(strconv.Itoa(stats.MaxDepth)))
	if stats.BlocksMatched > 0 {
		row("Blocks matched", s.SummaryValue.Render(strconv.Itoa(stats.BlocksMatched)))
	}
	if stats.BlocksSkipped > 0 {
		row("Blocks skipped", s.Warning.Render(strconv.Itoa(stats.BlocksSkipped)))
	}

	builder.WriteString("\n")

	if stats.FilesErrored > 0 {
		builder.WriteString(s.Failure.Render("Parse failed"))
	} else {
		builder.WriteString(s.Success.Render("All files parsed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
