// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, hierarchical merging,
// environment variable support and validation.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/leyline/internal/logging"
	"github.com/yaklabco/leyline/pkg/config"
	"github.com/yaklabco/leyline/pkg/fsutil"
	"github.com/yaklabco/leyline/pkg/structure"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// Registry resolves structure aliases in the structures section.
	// Defaults to structure.DefaultRegistry.
	Registry *structure.Registry

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (LEY_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.ley.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/ley/config.yaml)
//  6. System config (/etc/ley/config.yaml)
//  7. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	logger := logging.FromContext(ctx)

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	registry := opts.Registry
	if registry == nil {
		registry = structure.DefaultRegistry
	}

	cfg := config.NewConfig()

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}

	// Load and merge in order (lowest to highest precedence)
	sources := []struct {
		kind   string
		path   string
		ignore bool
	}{
		{kind: "system", path: paths.System, ignore: opts.IgnoreSystemConfig},
		{kind: "user", path: paths.User, ignore: opts.IgnoreUserConfig},
		{kind: "project", path: paths.Project, ignore: opts.IgnoreProjectConfig},
		{kind: "explicit", path: paths.Explicit},
	}

	for _, src := range sources {
		if src.ignore || src.path == "" {
			continue
		}

		fileCfg, err := loadConfigFile(ctx, src.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", src.kind, err)
		}

		cfg = merge(cfg, fileCfg)
		result.LoadedFrom = append(result.LoadedFrom, src.path)
		logger.Debug("loaded config", logging.FieldConfig, src.path)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	// Users may configure structures by alias, e.g. "md" for markdown.
	normalizeStructureKeys(cfg, registry, result)

	validation := ValidateWith(cfg, registry)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}

	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Message)
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile loads a configuration from a YAML file.
func loadConfigFile(ctx context.Context, path string) (*config.Config, error) {
	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg, err := config.FromYAML(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// normalizeStructureKeys converts structure aliases to canonical names in the config.
// If a structure is configured under both its name and an alias, warns and keeps
// the entry under the canonical name.
func normalizeStructureKeys(cfg *config.Config, registry *structure.Registry, result *LoadResult) {
	if len(cfg.Structures) == 0 {
		return
	}

	normalized := make(map[string]config.StructureConfig, len(cfg.Structures))
	seen := make(map[string]string) // canonical name -> original key

	for key, sc := range cfg.Structures {
		canonical, _, found := registry.Resolve(key)
		if !found {
			// Unknown structure - keep it as-is, validation will warn about it later
			normalized[key] = sc
			continue
		}

		if originalKey, exists := seen[canonical]; exists {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("duplicate structure configuration: %q and %q both refer to %s",
					originalKey, key, canonical))
			if key != canonical {
				continue
			}
		}

		seen[canonical] = key
		normalized[canonical] = sc
	}

	cfg.Structures = normalized
}
