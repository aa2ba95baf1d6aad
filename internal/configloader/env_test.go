package configloader

import (
	"reflect"
	"testing"

	"github.com/yaklabco/leyline/pkg/config"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LEY_FORMAT", "yaml")
	t.Setenv("LEY_JOBS", "3")
	t.Setenv("LEY_IGNORE", "vendor/**, drafts/*.ley ,")
	t.Setenv("LEY_EXTENSIONS", ".ley,.leyline")

	cfg := config.NewConfig()
	if err := LoadFromEnv(cfg); err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.Format != config.FormatYAML {
		t.Errorf("expected format yaml, got %q", cfg.Format)
	}
	if cfg.Jobs != 3 {
		t.Errorf("expected jobs 3, got %d", cfg.Jobs)
	}
	if want := []string{"vendor/**", "drafts/*.ley"}; !reflect.DeepEqual(cfg.Ignore, want) {
		t.Errorf("expected ignore %v, got %v", want, cfg.Ignore)
	}
	if want := []string{".ley", ".leyline"}; !reflect.DeepEqual(cfg.Extensions, want) {
		t.Errorf("expected extensions %v, got %v", want, cfg.Extensions)
	}
}

func TestLoadFromEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bool", key: "LEY_STRICT", value: "maybe"},
		{name: "int", key: "LEY_JOBS", value: "many"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			if err := LoadFromEnv(config.NewConfig()); err == nil {
				t.Errorf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestLoadFromEnv_NilConfig(t *testing.T) {
	t.Parallel()

	if err := LoadFromEnv(nil); err != nil {
		t.Errorf("LoadFromEnv(nil) error = %v", err)
	}
}

func TestGetEnvVarName(t *testing.T) {
	t.Parallel()

	if got := GetEnvVarName("flavor"); got != "LEY_FLAVOR" {
		t.Errorf("GetEnvVarName(flavor) = %q", got)
	}
	if got := GetEnvVarName("nope"); got != "" {
		t.Errorf("GetEnvVarName(nope) = %q, want empty", got)
	}
}

func TestEnvVarNames(t *testing.T) {
	t.Parallel()

	names := EnvVarNames()
	descriptions := ListEnvVars()

	if len(names) != len(descriptions) {
		t.Fatalf("expected %d names, got %d", len(descriptions), len(names))
	}
	for i, name := range names {
		if descriptions[name] == "" {
			t.Errorf("missing description for %s", name)
		}
		if i > 0 && names[i-1] > name {
			t.Errorf("names not sorted: %v", names)
		}
	}
}
