package ley

import (
	"context"
	"errors"
	"fmt"
)

// File is a parsed ley source together with its path and line index.
type File struct {
	// Path is the file path (may be empty or "-" for stdin).
	Path string

	// Content is the full source text.
	Content string

	// Lines contains metadata for each line.
	Lines []LineInfo

	// Document is the parse result.
	Document *Document
}

// ParseFile parses content read from path. Syntax errors are returned as
// *SyntaxError with Line and Column set; the File is nil on any error.
func ParseFile(ctx context.Context, path string, content []byte) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	file := &File{
		Path:    path,
		Content: string(content),
	}
	file.Lines = BuildLines(file.Content)

	doc, err := scanDocument(NewCursor(file.Content))
	if err != nil {
		var syntaxErr *SyntaxError
		if errors.As(err, &syntaxErr) {
			syntaxErr.Line, syntaxErr.Column = file.LineAt(syntaxErr.Offset)
		}
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	file.Document = doc
	return file, nil
}

// LineCount returns the number of lines in the file.
func (f *File) LineCount() int {
	return len(f.Lines)
}

// LineAt converts a byte offset to 1-based line and column numbers.
// Returns (0, 0) if the offset is out of range.
func (f *File) LineAt(offset int) (int, int) {
	return lineAt(f.Lines, len(f.Content), offset)
}

// LineContent returns a 1-based line without its newline, or "" if out of range.
func (f *File) LineContent(line int) string {
	if line < 1 || line > len(f.Lines) {
		return ""
	}
	info := f.Lines[line-1]
	return f.Content[info.StartOffset:info.NewlineStart]
}

// Position returns the 1-based start line and column of a span.
func (f *File) Position(span Span) (int, int) {
	return f.LineAt(span.Start)
}
