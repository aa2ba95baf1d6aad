package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/leyline/pkg/langdetect"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		blockName  string
		content    string
		wantLang   string
		wantMethod langdetect.Method
	}{
		{
			name:       "filename hint wins",
			blockName:  "main.go",
			content:    "def foo():\n    pass",
			wantLang:   "go",
			wantMethod: langdetect.MethodFilename,
		},
		{
			name:       "shebang bash",
			blockName:  "setup",
			content:    "#!/bin/bash\necho hello",
			wantLang:   "bash",
			wantMethod: langdetect.MethodShebang,
		},
		{
			name:       "shebang python",
			content:    "#!/usr/bin/env python3\nprint('hello')",
			wantLang:   "python",
			wantMethod: langdetect.MethodShebang,
		},
		{
			name:       "go package clause",
			blockName:  "example",
			content:    "package main\n\nfunc main() {}\n",
			wantLang:   "go",
			wantMethod: langdetect.MethodPattern,
		},
		{
			name:       "python def",
			content:    "def foo():\n    pass\n",
			wantLang:   "python",
			wantMethod: langdetect.MethodPattern,
		},
		{
			name:       "json object",
			content:    `{"key": "value"}`,
			wantLang:   "json",
			wantMethod: langdetect.MethodPattern,
		},
		{
			name:       "sql statement",
			content:    "select * from blocks",
			wantLang:   "sql",
			wantMethod: langdetect.MethodPattern,
		},
		{
			name:       "rust main",
			content:    "fn main() {\n    println!(\"hi\");\n}",
			wantLang:   "rust",
			wantMethod: langdetect.MethodPattern,
		},
		{
			name:       "empty content",
			content:    "  \n",
			wantLang:   "text",
			wantMethod: langdetect.MethodNone,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := langdetect.Detect(testCase.blockName, []byte(testCase.content))
			assert.Equal(t, testCase.wantLang, got.Language)
			assert.Equal(t, testCase.wantMethod, got.Method)
		})
	}
}
