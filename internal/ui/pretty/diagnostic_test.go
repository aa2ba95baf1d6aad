package pretty_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/leyline/internal/ui/pretty"
	"github.com/yaklabco/leyline/pkg/config"
	"github.com/yaklabco/leyline/pkg/ley"
	"github.com/yaklabco/leyline/pkg/structure"
)

func TestFormatFileError_Syntax(t *testing.T) {
	t.Parallel()

	source := "!a: exact [x]\n!b: exact [oops\n"
	_, err := ley.ParseFile(context.Background(), "doc.ley", []byte(source))
	require.Error(t, err)

	var syntaxErr *ley.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)

	got := pretty.NewStyles(false).FormatFileError("doc.ley", source, err)

	assert.Contains(t, got, "doc.ley:2:")
	assert.Contains(t, got, "error")
	assert.Contains(t, got, "unexpected end of input")
	assert.Contains(t, got, "    !b: exact [oops\n")
	assert.Contains(t, got, "^")
}

func TestFormatFileError_Block(t *testing.T) {
	t.Parallel()

	source := "!ok: exact [x]\n\n  !bad: mystery [y]\n"
	doc, err := ley.Parse(source)
	require.NoError(t, err)

	cfg := config.NewConfig()
	cfg.Strict = true
	_, err = structure.NewDispatcher(nil, cfg).Interpret(context.Background(), doc)
	require.Error(t, err)

	got := pretty.NewStyles(false).FormatFileError("doc.ley", source, err)
	assert.Contains(t, got, "doc.ley:3:3")
	assert.Contains(t, got, "unknown structure")
	assert.Contains(t, got, "      ^\n")
}

func TestFormatFileError_Plain(t *testing.T) {
	t.Parallel()

	got := pretty.NewStyles(false).FormatFileError("doc.ley", "", errors.New("file not found"))
	assert.Equal(t, "  doc.ley  error  file not found\n", got)
}

func TestFormatSourceContext(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	tests := []struct {
		name   string
		line   string
		column int
		want   string
	}{
		{"first column", "abc", 1, "    abc\n    ^\n"},
		{"later column", "abc", 3, "    abc\n      ^\n"},
		{"tabs preserved", "\tx", 2, "    \tx\n    \t^\n"},
		{"multibyte before caret", "éx", 3, "    éx\n     ^\n"},
		{"no column", "abc", 0, "    abc\n"},
		{"empty line", "", 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, styles.FormatSourceContext(tt.line, tt.column))
		})
	}
}

func TestFormatFileHeader(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	assert.Equal(t, "a.ley (1 block)", styles.FormatFileHeader("a.ley", 1))
	assert.Equal(t, "a.ley (3 blocks)", styles.FormatFileHeader("a.ley", 3))
}
