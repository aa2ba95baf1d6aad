package pretty

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/leyline/pkg/ley"
	"github.com/yaklabco/leyline/pkg/query"
	"github.com/yaklabco/leyline/pkg/structure"
)

const (
	branchMid  = "├─ "
	branchLast = "└─ "
	indentMid  = "│  "
	indentLast = "   "
	ellipsis   = "…"

	// minPreviewWidth keeps a few characters of preview on narrow terminals.
	minPreviewWidth = 10
)

// TreeOptions controls block tree rendering.
type TreeOptions struct {
	// Width is the available line width used to truncate text previews.
	Width int

	// ShowSpans appends byte spans to each block.
	ShowSpans bool
}

// FormatTree renders blocks as an indented tree with one line per block.
func (s *Styles) FormatTree(blocks []*ley.Block, opts TreeOptions) string {
	var builder strings.Builder
	s.writeTree(&builder, blocks, "", opts)
	return builder.String()
}

func (s *Styles) writeTree(builder *strings.Builder, blocks []*ley.Block, prefix string, opts TreeOptions) {
	for i, block := range blocks {
		branch, indent := branchMid, indentMid
		if i == len(blocks)-1 {
			branch, indent = branchLast, indentLast
		}

		head := prefix + branch
		builder.WriteString(s.Branch.Render(head))
		builder.WriteString(s.formatBlockLine(block, utf8.RuneCountInString(head), opts))
		builder.WriteString("\n")

		s.writeTree(builder, block.Children(), prefix+indent, opts)
	}
}

// FormatMatches renders filtered blocks as a flat list with their depth.
func (s *Styles) FormatMatches(matches []query.Match, opts TreeOptions) string {
	var builder strings.Builder
	for _, m := range matches {
		head := fmt.Sprintf("%s%d ", strings.Repeat("·", m.Depth), m.Depth)
		builder.WriteString(s.Branch.Render(head))
		builder.WriteString(s.formatBlockLine(m.Block, utf8.RuneCountInString(head), opts))
		builder.WriteString("\n")
	}
	return builder.String()
}

// formatBlockLine renders "name (structure) kind [start:end] preview".
// used is the width already taken on the line.
func (s *Styles) formatBlockLine(block *ley.Block, used int, opts TreeOptions) string {
	name := block.Name
	if name == "" {
		name = "(unnamed)"
	}

	parts := []string{
		s.BlockName.Render(name),
		s.Structure.Render("(" + block.Structure + ")"),
	}
	plainLen := utf8.RuneCountInString(name) + utf8.RuneCountInString(block.Structure) + 3

	kind := block.Content.Kind.String()
	if block.IsNested() {
		kind = fmt.Sprintf("%s:%d", kind, len(block.Children()))
	}
	parts = append(parts, s.Kind.Render(kind))
	plainLen += len(kind) + 1

	if opts.ShowSpans {
		span := fmt.Sprintf("[%d:%d]", block.Span.Start, block.Span.End)
		parts = append(parts, s.Span.Render(span))
		plainLen += len(span) + 1
	}

	if !block.IsNested() {
		width := opts.Width
		if width <= 0 {
			width = defaultTermWidth
		}
		room := max(width-used-plainLen-3, minPreviewWidth)
		if preview := Preview(block.Content.Text, room); preview != "" {
			parts = append(parts, s.Preview.Render(fmt.Sprintf("%q", preview)))
		}
	}

	return strings.Join(parts, " ")
}

// Preview collapses whitespace in text and truncates it to width runes.
func Preview(text string, width int) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	if width <= 0 || utf8.RuneCountInString(collapsed) <= width {
		return collapsed
	}
	runes := []rune(collapsed)
	return string(runes[:max(width-1, 0)]) + ellipsis
}

// FormatResults renders interpreted blocks: a header line per block followed
// by its output, with section children indented beneath.
func (s *Styles) FormatResults(results []*structure.Result) string {
	var builder strings.Builder
	s.writeResults(&builder, results, "")
	return builder.String()
}

func (s *Styles) writeResults(builder *strings.Builder, results []*structure.Result, indent string) {
	for _, res := range results {
		header := s.BlockName.Render(res.Name) + " " + s.Structure.Render("("+res.Structure+")")
		if res.Language != "" {
			header += " " + s.Kind.Render(res.Language)
		}
		builder.WriteString(indent + s.Branch.Render("── ") + header + "\n")

		switch {
		case res.Skipped:
			builder.WriteString(indent + "   " + s.Warning.Render("skipped: "+res.Reason) + "\n")
		case len(res.Children) > 0:
			s.writeResults(builder, res.Children, indent+"   ")
		case res.Output != "":
			for _, line := range strings.Split(strings.TrimRight(res.Output, "\n"), "\n") {
				builder.WriteString(indent + "   " + s.Output.Render(line) + "\n")
			}
		}
	}
}
