package ley_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/leyline/pkg/ley"
)

func TestMeasureRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		s    string
		ch   byte
		want int
	}{
		{"empty", "", '!', 0},
		{"different first byte", "a!!", '!', 0},
		{"single", "!a", '!', 1},
		{"run then content", "!!!name", '!', 3},
		{"whole input", "{{{{", '{', 4},
		{"stops at other fence", "[[]]", '[', 2},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.want, ley.MeasureRun(testCase.s, testCase.ch))
		})
	}
}

func TestFindClosingRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		s      string
		n      int
		want   int
		wantOK bool
	}{
		{"exact run", "abc]]", 2, 3, true},
		{"skips shorter run", "a]b]]", 2, 3, true},
		{"leftmost inside longer run", "ab]]]c", 2, 2, true},
		{"at start", "]]", 1, 0, true},
		{"missing", "a]b", 2, 0, false},
		{"empty input", "", 1, 0, false},
		{"zero width", "]]", 0, 0, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ley.FindClosingRun(testCase.s, ']', testCase.n)
			assert.Equal(t, testCase.wantOK, ok)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestCursor(t *testing.T) {
	t.Parallel()

	cursor := ley.NewCursor("  ab")
	assert.Equal(t, 0, cursor.Offset())

	cursor.TrimSpace()
	assert.Equal(t, 2, cursor.Offset())
	assert.Equal(t, "ab", cursor.Rest())

	ch, ok := cursor.Peek()
	assert.True(t, ok)
	assert.Equal(t, byte('a'), ch)

	text, span := cursor.Take(2)
	assert.Equal(t, "ab", text)
	assert.Equal(t, ley.Span{Start: 2, End: 4}, span)
	assert.True(t, cursor.Empty())
	assert.Equal(t, len(cursor.Source())-cursor.Len(), cursor.Offset())

	_, ok = cursor.Peek()
	assert.False(t, ok)
}
