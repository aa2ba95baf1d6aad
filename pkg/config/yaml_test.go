package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/leyline/pkg/config"
)

func TestConfigClone(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var c *config.Config
		clone := c.Clone()
		assert.Nil(t, clone)
	})

	t.Run("empty config", func(t *testing.T) {
		c := &config.Config{}
		clone := c.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, c, clone)
	})

	t.Run("deep copies Structures map", func(t *testing.T) {
		enabled := true
		original := &config.Config{
			Structures: map[string]config.StructureConfig{
				"code": {
					Enabled: &enabled,
					Options: map[string]any{"detect": false},
				},
			},
		}

		clone := original.Clone()
		require.NotNil(t, clone)
		require.Contains(t, clone.Structures, "code")
		assert.True(t, *clone.Structures["code"].Enabled)
		assert.NotSame(t, original.Structures["code"].Enabled, clone.Structures["code"].Enabled)

		disabled := false
		clone.Structures["code"] = config.StructureConfig{Enabled: &disabled}
		assert.True(t, *original.Structures["code"].Enabled)
	})

	t.Run("deep copies slices", func(t *testing.T) {
		original := &config.Config{
			Extensions: []string{".ley"},
			Ignore:     []string{"vendor/**"},
		}

		clone := original.Clone()
		clone.Extensions[0] = ".changed"
		clone.Ignore[0] = "changed"

		assert.Equal(t, ".ley", original.Extensions[0])
		assert.Equal(t, "vendor/**", original.Ignore[0])
	})

	t.Run("preserves CLI fields", func(t *testing.T) {
		original := &config.Config{
			Flavor: config.FlavorGFM,
			Strict: true,
			Format: config.FormatJSON,
			Jobs:   4,
		}

		clone := original.Clone()
		assert.Equal(t, original.Flavor, clone.Flavor)
		assert.Equal(t, original.Strict, clone.Strict)
		assert.Equal(t, original.Format, clone.Format)
		assert.Equal(t, original.Jobs, clone.Jobs)
	})
}

func TestConfigToYAML(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var cfg *config.Config
		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("CLI-only fields are not serialized", func(t *testing.T) {
		cfg := &config.Config{
			Flavor: config.FlavorGFM,
			Format: config.FormatJSON,
			Jobs:   8,
		}

		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Contains(t, string(data), "flavor: gfm")
		assert.NotContains(t, string(data), "jobs")
		assert.NotContains(t, string(data), "format")
	})
}

func TestFromYAML(t *testing.T) {
	t.Run("parses valid YAML", func(t *testing.T) {
		data := []byte(`
extensions: [.ley, .leyline]
flavor: gfm
strict: true
structures:
  markdown:
    enabled: false
`)
		cfg, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, []string{".ley", ".leyline"}, cfg.Extensions)
		assert.Equal(t, config.FlavorGFM, cfg.Flavor)
		assert.True(t, cfg.Strict)
		assert.False(t, cfg.StructureEnabled("markdown"))
		assert.True(t, cfg.StructureEnabled("code"))
	})

	t.Run("initializes empty Structures map", func(t *testing.T) {
		cfg, err := config.FromYAML([]byte(`flavor: commonmark`))
		require.NoError(t, err)
		assert.NotNil(t, cfg.Structures)
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		_, err := config.FromYAML([]byte("extensions: [unclosed"))
		require.Error(t, err)
	})
}

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	minimal := config.GenerateTemplate(config.TemplateOptions{})
	assert.Contains(t, string(minimal), "flavor: commonmark")
	assert.NotContains(t, string(minimal), "structures:")

	full := config.GenerateTemplate(config.TemplateOptions{
		Structures: []config.StructureInfo{
			{Name: "code", Description: "Source code", Aliases: []string{"src"}},
		},
	})

	cfg, err := config.FromYAML(full)
	require.NoError(t, err)
	assert.True(t, cfg.StructureEnabled("code"))
	assert.Contains(t, string(full), "(aliases: src)")
}
