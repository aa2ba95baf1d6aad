package config

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the configuration to YAML format.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(YAMLIndent())

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	// Ensure Structures map is initialized
	if cfg.Structures == nil {
		cfg.Structures = make(map[string]StructureConfig)
	}

	return cfg, nil
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := &Config{
		Extensions: slices.Clone(c.Extensions),
		Ignore:     slices.Clone(c.Ignore),
		Flavor:     c.Flavor,
		Strict:     c.Strict,
		Format:     c.Format,
		Jobs:       c.Jobs,
	}

	if c.Structures != nil {
		clone.Structures = make(map[string]StructureConfig, len(c.Structures))
		for name, sc := range c.Structures {
			clone.Structures[name] = sc.clone()
		}
	}

	return clone
}

// clone creates a deep copy of a StructureConfig.
func (sc StructureConfig) clone() StructureConfig {
	clone := StructureConfig{}

	if sc.Enabled != nil {
		enabled := *sc.Enabled
		clone.Enabled = &enabled
	}

	if sc.Options != nil {
		clone.Options = make(map[string]any, len(sc.Options))
		maps.Copy(clone.Options, sc.Options) // Note: nested maps/slices in Options are not deep copied
	}

	return clone
}

// YAMLIndent returns the default YAML indentation.
func YAMLIndent() int {
	return 2
}
