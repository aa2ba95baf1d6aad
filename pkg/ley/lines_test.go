package ley_test

import (
	"testing"

	"github.com/yaklabco/leyline/pkg/ley"
)

func TestBuildLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected []ley.LineInfo
	}{
		{
			name:     "empty content",
			content:  "",
			expected: []ley.LineInfo{},
		},
		{
			name:    "single line no newline",
			content: "!a:s[x]",
			expected: []ley.LineInfo{
				{StartOffset: 0, NewlineStart: 7, EndOffset: 7},
			},
		},
		{
			name:    "single line with LF",
			content: "hello\n",
			expected: []ley.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 6},
				{StartOffset: 6, NewlineStart: 6, EndOffset: 6},
			},
		},
		{
			name:    "multiple lines CRLF",
			content: "line1\r\nline2\r\n",
			expected: []ley.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 7},
				{StartOffset: 7, NewlineStart: 12, EndOffset: 14},
				{StartOffset: 14, NewlineStart: 14, EndOffset: 14},
			},
		},
		{
			name:    "only newline",
			content: "\n",
			expected: []ley.LineInfo{
				{StartOffset: 0, NewlineStart: 0, EndOffset: 1},
				{StartOffset: 1, NewlineStart: 1, EndOffset: 1},
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			lines := ley.BuildLines(testCase.content)

			if len(lines) != len(testCase.expected) {
				t.Fatalf("expected %d lines, got %d", len(testCase.expected), len(lines))
			}

			for i, exp := range testCase.expected {
				if lines[i] != exp {
					t.Errorf("line %d: expected %+v, got %+v", i, exp, lines[i])
				}
			}
		})
	}
}

func TestPosition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		content    string
		offset     int
		wantLine   int
		wantColumn int
	}{
		{"start", "abc", 0, 1, 1},
		{"first line", "abc\ndef", 2, 1, 3},
		{"newline byte", "abc\ndef", 3, 1, 4},
		{"second line", "abc\ndef", 5, 2, 2},
		{"crlf", "ab\r\ncd", 5, 2, 2},
		{"end of input", "abc\n", 4, 2, 1},
		{"negative", "abc", -1, 0, 0},
		{"past end", "abc", 4, 0, 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			line, column := ley.Position(testCase.content, testCase.offset)
			if line != testCase.wantLine || column != testCase.wantColumn {
				t.Errorf("Position(%q, %d) = %d:%d, want %d:%d",
					testCase.content, testCase.offset, line, column, testCase.wantLine, testCase.wantColumn)
			}
		})
	}
}

func TestPosition_AgreesWithLineIndex(t *testing.T) {
	t.Parallel()

	content := "!a: exact [x]\r\n\n  !b: section {\n !c: exact [y] }\n"
	file := &ley.File{Content: content, Lines: ley.BuildLines(content)}

	for offset := 0; offset <= len(content); offset++ {
		wantLine, wantColumn := file.LineAt(offset)
		line, column := ley.Position(content, offset)
		if line != wantLine || column != wantColumn {
			t.Errorf("offset %d: Position = %d:%d, LineAt = %d:%d", offset, line, column, wantLine, wantColumn)
		}
	}
}
