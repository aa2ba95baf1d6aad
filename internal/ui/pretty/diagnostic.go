package pretty

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/leyline/pkg/ley"
	"github.com/yaklabco/leyline/pkg/structure"
)

// contextIndent aligns source context under an error line.
const contextIndent = "    "

// FormatFileError formats a read, syntax or interpretation error for a file.
// source is the file content, used to show the offending line; it may be empty.
func (s *Styles) FormatFileError(path, source string, err error) string {
	var syntaxErr *ley.SyntaxError
	if errors.As(err, &syntaxErr) && syntaxErr.Line > 0 {
		return s.formatPositioned(path, syntaxErr.Line, syntaxErr.Column,
			fmt.Sprintf("%v: %s", syntaxErr.Kind, syntaxErr.Context), source)
	}

	var blockErr *structure.BlockError
	if errors.As(err, &blockErr) && source != "" {
		lines := ley.BuildLines(source)
		file := &ley.File{Path: path, Content: source, Lines: lines}
		line, col := file.Position(blockErr.Block.Span)
		if line > 0 {
			return s.formatPositioned(path, line, col, err.Error(), source)
		}
	}

	return fmt.Sprintf("  %s  %s  %s\n",
		s.FilePath.Render(path),
		s.Error.Render("error"),
		s.Message.Render(err.Error()),
	)
}

func (s *Styles) formatPositioned(path string, line, column int, message, source string) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("  %s%s  %s  %s\n",
		s.FilePath.Render(path),
		s.Location.Render(fmt.Sprintf(":%d:%d", line, column)),
		s.Error.Render("error"),
		s.Message.Render(message),
	))

	if source != "" {
		file := &ley.File{Content: source, Lines: ley.BuildLines(source)}
		builder.WriteString(s.FormatSourceContext(file.LineContent(line), column))
	}

	return builder.String()
}

// FormatSourceContext formats the source line with a caret marker under column.
// Tabs before the column are kept so the caret lines up in a terminal.
func (s *Styles) FormatSourceContext(line string, column int) string {
	if line == "" {
		return ""
	}

	var builder strings.Builder
	builder.WriteString(contextIndent + s.SourceLine.Render(line) + "\n")

	if column > 0 {
		var pad strings.Builder
		for i, r := range line {
			if i >= column-1 {
				break
			}
			if r == '\t' {
				pad.WriteRune('\t')
			} else {
				pad.WriteRune(' ')
			}
		}
		builder.WriteString(contextIndent + pad.String() + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header with a block count.
func (s *Styles) FormatFileHeader(path string, blocks int) string {
	header := s.FilePath.Render(path)
	noun := "blocks"
	if blocks == 1 {
		noun = "block"
	}
	return header + s.Dim.Render(fmt.Sprintf(" (%d %s)", blocks, noun))
}
