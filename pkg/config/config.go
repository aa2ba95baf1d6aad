// Package config defines core configuration types for leyline.
// These types are plain data with YAML tags and no dependency on the loader.
package config

// StructureConfig holds per-structure configuration.
type StructureConfig struct {
	// Enabled disables a structure handler when set to false.
	Enabled *bool `yaml:"enabled"`

	// Options are handler-specific settings.
	Options map[string]any `yaml:"options"`
}

// OutputFormat specifies how parse and render results are printed.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatYAML    OutputFormat = "yaml"
	FormatSummary OutputFormat = "summary"
)

// Flavor specifies the Markdown flavor used by the markdown structure.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// Config is the root configuration structure.
type Config struct {
	// Extensions are the file extensions (with leading dot) treated as ley sources.
	Extensions []string `yaml:"extensions"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `yaml:"ignore"`

	// Flavor selects the Markdown flavor for markdown blocks.
	Flavor Flavor `yaml:"flavor"`

	// Strict makes blocks with unknown or disabled structures an error when rendering.
	Strict bool `yaml:"strict"`

	// Structures contains per-structure configuration keyed by structure name.
	Structures map[string]StructureConfig `yaml:"structures"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-"`
}

// DefaultExtensions returns the file extensions recognized when none are configured.
func DefaultExtensions() []string {
	return []string{".ley"}
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Extensions: DefaultExtensions(),
		Flavor:     FlavorCommonMark,
		Structures: make(map[string]StructureConfig),
		Format:     FormatText,
		Jobs:       0, // 0 means use runtime.NumCPU()
	}
}

// StructureEnabled reports whether the named structure may be used.
// Structures are enabled unless configured otherwise.
func (c *Config) StructureEnabled(name string) bool {
	if c == nil {
		return true
	}
	sc, ok := c.Structures[name]
	if !ok || sc.Enabled == nil {
		return true
	}
	return *sc.Enabled
}

// StructureOptions returns the options configured for a structure, or nil.
func (c *Config) StructureOptions(name string) map[string]any {
	if c == nil {
		return nil
	}
	return c.Structures[name].Options
}
