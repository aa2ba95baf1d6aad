package ley

import (
	"sort"
	"strings"
)

// LineInfo holds metadata for a single line of source.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of input).
	EndOffset int
}

// BuildLines constructs line metadata from content.
// It handles both LF (\n) and CRLF (\r\n) line endings.
func BuildLines(content string) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx := 0; idx < len(content); idx++ {
		if content[idx] != '\n' {
			continue
		}
		newlineStart := idx
		if idx > 0 && content[idx-1] == '\r' {
			newlineStart = idx - 1
		}
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: newlineStart,
			EndOffset:    idx + 1,
		})
		lineStart = idx + 1
	}

	lines = append(lines, LineInfo{
		StartOffset:  lineStart,
		NewlineStart: len(content),
		EndOffset:    len(content),
	})

	return lines
}

// lineAt converts a byte offset to 1-based line and column numbers.
// Column counts bytes, not runes. Returns (0, 0) if the offset is out of range.
func lineAt(lines []LineInfo, size, offset int) (int, int) {
	if offset < 0 || len(lines) == 0 {
		return 0, 0
	}

	if offset >= size {
		last := lines[len(lines)-1]
		return len(lines), offset - last.StartOffset + 1
	}

	idx := sort.Search(len(lines), func(i int) bool {
		return lines[i].EndOffset > offset
	})
	if idx >= len(lines) {
		idx = len(lines) - 1
	}

	info := lines[idx]
	if offset < info.StartOffset {
		return 0, 0
	}
	return idx + 1, offset - info.StartOffset + 1
}

// Position converts a byte offset in src to 1-based line and column numbers
// without building a line index. Column counts bytes. Returns (0, 0) if the
// offset is out of range.
func Position(src string, offset int) (int, int) {
	if offset < 0 || offset > len(src) {
		return 0, 0
	}
	prefix := src[:offset]
	line := strings.Count(prefix, "\n") + 1
	return line, offset - (strings.LastIndexByte(prefix, '\n') + 1) + 1
}
