package configloader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/leyline/pkg/config"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func isolatedOptions(dir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	result, err := Load(context.Background(), isolatedOptions(t.TempDir()))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config == nil {
		t.Fatal("Load() returned nil config")
	}

	if result.Config.Flavor != config.FlavorCommonMark {
		t.Errorf("expected flavor %q, got %q", config.FlavorCommonMark, result.Config.Flavor)
	}
	if len(result.Config.Extensions) != 1 || result.Config.Extensions[0] != ".ley" {
		t.Errorf("expected default extensions [.ley], got %v", result.Config.Extensions)
	}
	if len(result.LoadedFrom) != 0 {
		t.Errorf("expected no loaded files, got %v", result.LoadedFrom)
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// jobs is a CLI-only option (yaml:"-"), so it is not loaded from file
	configPath := writeConfig(t, tmpDir, ".ley.yml", `
flavor: gfm
strict: true
structures:
  code:
    enabled: false
`)

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Flavor != config.FlavorGFM {
		t.Errorf("expected flavor gfm, got %q", result.Config.Flavor)
	}
	if !result.Config.Strict {
		t.Error("expected strict to be true")
	}
	if result.Config.StructureEnabled("code") {
		t.Error("expected code structure to be disabled")
	}
	if result.Paths.Project != configPath {
		t.Errorf("expected project path %q, got %q", configPath, result.Paths.Project)
	}
	if len(result.LoadedFrom) != 1 || result.LoadedFrom[0] != configPath {
		t.Errorf("expected LoadedFrom [%s], got %v", configPath, result.LoadedFrom)
	}
}

func TestLoad_ProjectConfigUpwardSearch(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	nested := filepath.Join(root, "docs", "guides")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	configPath := writeConfig(t, root, ".ley.yaml", "flavor: gfm\n")

	found, err := FindProjectConfig(context.Background(), nested)
	if err != nil {
		t.Fatalf("FindProjectConfig() error = %v", err)
	}
	if found != configPath {
		t.Errorf("expected %q, got %q", configPath, found)
	}
}

func TestFindProjectConfig_StopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeConfig(t, root, ".ley.yml", "flavor: gfm\n")

	repo := filepath.Join(root, "repo")
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	found, err := FindProjectConfig(context.Background(), repo)
	if err != nil {
		t.Fatalf("FindProjectConfig() error = %v", err)
	}
	if found != "" {
		t.Errorf("expected search to stop at VCS root, found %q", found)
	}
}

func TestLoad_ExplicitConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, ".ley.yml", "flavor: commonmark\nignore: [\"drafts/**\"]\n")
	explicit := writeConfig(t, tmpDir, "custom.yaml", "flavor: gfm\n")

	opts := isolatedOptions(tmpDir)
	opts.ExplicitPath = explicit

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Flavor != config.FlavorGFM {
		t.Errorf("explicit config should override project config, got flavor %q", result.Config.Flavor)
	}
	if len(result.Config.Ignore) != 1 || result.Config.Ignore[0] != "drafts/**" {
		t.Errorf("expected project ignore patterns to survive, got %v", result.Config.Ignore)
	}
	if len(result.LoadedFrom) != 2 || result.LoadedFrom[1] != explicit {
		t.Errorf("expected explicit config loaded last, got %v", result.LoadedFrom)
	}
}

func TestLoad_ExplicitConfigMissing(t *testing.T) {
	t.Parallel()

	opts := isolatedOptions(t.TempDir())
	opts.ExplicitPath = filepath.Join(opts.WorkingDir, "missing.yml")

	_, err := Load(context.Background(), opts)
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
	if !strings.Contains(err.Error(), "load explicit config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_CLIOverrides(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, ".ley.yml", "flavor: gfm\n")

	opts := isolatedOptions(tmpDir)
	opts.CLIConfig = &config.Config{
		Flavor: config.FlavorCommonMark,
		Jobs:   4,
		Format: config.FormatJSON,
	}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Flavor != config.FlavorCommonMark {
		t.Errorf("CLI flavor should win, got %q", result.Config.Flavor)
	}
	if result.Config.Jobs != 4 {
		t.Errorf("expected jobs 4, got %d", result.Config.Jobs)
	}
	if result.Config.Format != config.FormatJSON {
		t.Errorf("expected format json, got %q", result.Config.Format)
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, ".ley.yml", "flavor: invalid-flavor\n")

	_, err := Load(context.Background(), isolatedOptions(tmpDir))
	if err == nil {
		t.Fatal("expected validation error for invalid flavor")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, ".ley.yml", "structures: [unclosed\n")

	_, err := Load(context.Background(), isolatedOptions(tmpDir))
	if err == nil {
		t.Fatal("expected parse error for malformed YAML")
	}
	if !strings.Contains(err.Error(), "load project config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, isolatedOptions(t.TempDir()))
	if err == nil {
		t.Fatal("expected context cancellation error")
	}
}

func TestLoad_NormalizesStructureAliases(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, ".ley.yml", `
structures:
  md:
    options:
      flavor: gfm
  raw:
    enabled: false
`)

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if _, ok := result.Config.Structures["md"]; ok {
		t.Error("expected alias md to be replaced by markdown")
	}
	if got := result.Config.StructureOptions("markdown")["flavor"]; got != "gfm" {
		t.Errorf("expected markdown flavor option gfm, got %v", got)
	}
	if result.Config.StructureEnabled("exact") {
		t.Error("expected exact to be disabled through its raw alias")
	}
}

func TestLoad_WarnsDuplicateStructures(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, ".ley.yml", `
structures:
  paragraph:
    enabled: false
  p:
    enabled: true
`)

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	foundWarning := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "duplicate") && strings.Contains(w, "paragraph") {
			foundWarning = true
			break
		}
	}
	if !foundWarning {
		t.Errorf("expected warning about duplicate structure, got warnings: %v", result.Warnings)
	}

	// The entry under the canonical name wins.
	if result.Config.StructureEnabled("paragraph") {
		t.Error("expected paragraph to stay disabled")
	}
}

func TestLoad_WarnsUnknownStructure(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, ".ley.yml", "structures:\n  diagram:\n    enabled: true\n")

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], `unknown structure "diagram"`) {
		t.Errorf("expected unknown structure warning, got %v", result.Warnings)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("LEY_FLAVOR", "gfm")
	t.Setenv("LEY_STRICT", "true")

	tmpDir := t.TempDir()
	opts := isolatedOptions(tmpDir)
	opts.IgnoreEnv = false

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Flavor != config.FlavorGFM {
		t.Errorf("expected env flavor gfm, got %q", result.Config.Flavor)
	}
	if !result.Config.Strict {
		t.Error("expected env strict to be true")
	}
}
