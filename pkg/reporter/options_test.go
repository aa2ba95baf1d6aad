package reporter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions_displayPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		workingDir string
		path       string
		want       string
	}{
		{name: "no working dir", path: "/repo/a.ley", want: "/repo/a.ley"},
		{name: "inside working dir", workingDir: "/repo", path: "/repo/docs/a.ley", want: "docs/a.ley"},
		{name: "outside working dir", workingDir: "/repo", path: "/other/a.ley", want: "/other/a.ley"},
		{name: "relative path", workingDir: "/repo", path: "a.ley", want: "a.ley"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := Options{WorkingDir: tt.workingDir}
			assert.Equal(t, tt.want, opts.displayPath(tt.path))
		})
	}
}
