package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/leyline/internal/ui/pretty"
)

func TestTableFormatter_Format(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 80)
	got := formatter.Format(pretty.Table{
		Headers: []string{"NAME", "ALIASES", "DESCRIPTION"},
		Rows: [][]string{
			{"code", "", "Source code"},
			{"exact", "raw, text", "Verbatim text"},
		},
		Flex: 2,
	})

	want := "NAME   ALIASES    DESCRIPTION\n" +
		"===============================\n" +
		"code              Source code\n" +
		"exact  raw, text  Verbatim text\n" +
		"===============================\n"
	assert.Equal(t, want, got)
}

func TestTableFormatter_ShrinksFlexColumn(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 20)
	got := formatter.Format(pretty.Table{
		Headers: []string{"A", "B"},
		Rows:    [][]string{{"a", "a description that is far too long"}},
		Flex:    1,
	})

	// Width 20 leaves 17 runes for column B after "a" and padding.
	assert.Contains(t, got, "a  a description th…\n")
}

func TestTableFormatter_Empty(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 0)
	assert.Empty(t, formatter.Format(pretty.Table{}))
}
