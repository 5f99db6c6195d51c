package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/WhitingJarod/multiverse-random/internal/errors"
)

// TestParseConfig tests flag parsing into AppConfig.
func TestParseConfig(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    AppConfig
		wantErr bool
	}{
		{
			name: "positional items",
			args: []string{"foo", "bar", "baz"},
			want: AppConfig{Items: []string{"foo", "bar", "baz"}, Theme: "dark"},
		},
		{
			name: "dice mode",
			args: []string{"-dice", "-quiet"},
			want: AppConfig{Dice: true, Quiet: true, Theme: "dark"},
		},
		{
			name: "items file",
			args: []string{"-file", "items.yaml"},
			want: AppConfig{ItemsFile: "items.yaml", Theme: "dark"},
		},
		{
			name: "short aliases",
			args: []string{"-q", "-v", "foo"},
			want: AppConfig{Items: []string{"foo"}, Quiet: true, Verbose: true, Theme: "dark"},
		},
		{
			name:    "no items at all",
			args:    []string{},
			wantErr: true,
		},
		{
			name:    "dice combined with items",
			args:    []string{"-dice", "foo"},
			wantErr: true,
		},
		{
			name:    "unknown theme",
			args:    []string{"-theme", "solarized", "foo"},
			wantErr: true,
		},
		{
			name:    "unknown flag",
			args:    []string{"-frobnicate"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig("multiverse", tt.args, io.Discard)
			if tt.wantErr {
				if err == nil {
					t.Fatal("ParseConfig should fail")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseConfig: %v", err)
			}
			if len(cfg.Items) != len(tt.want.Items) {
				t.Fatalf("Items = %v, want %v", cfg.Items, tt.want.Items)
			}
			for i := range cfg.Items {
				if cfg.Items[i] != tt.want.Items[i] {
					t.Errorf("Items[%d] = %q, want %q", i, cfg.Items[i], tt.want.Items[i])
				}
			}
			if cfg.Dice != tt.want.Dice || cfg.Quiet != tt.want.Quiet ||
				cfg.Verbose != tt.want.Verbose || cfg.ItemsFile != tt.want.ItemsFile ||
				cfg.Theme != tt.want.Theme {
				t.Errorf("cfg = %+v, want %+v", cfg, tt.want)
			}
		})
	}
}

// TestEnvOverrides tests the CLI flags > env > defaults priority.
func TestEnvOverrides(t *testing.T) {
	t.Run("env fills unset flag", func(t *testing.T) {
		t.Setenv(EnvPrefix+"QUIET", "1")
		cfg, err := ParseConfig("multiverse", []string{"foo"}, io.Discard)
		if err != nil {
			t.Fatalf("ParseConfig: %v", err)
		}
		if !cfg.Quiet {
			t.Error("MULTIVERSE_QUIET=1 should enable quiet mode")
		}
	})

	t.Run("explicit flag wins over env", func(t *testing.T) {
		t.Setenv(EnvPrefix+"THEME", "light")
		cfg, err := ParseConfig("multiverse", []string{"-theme", "none", "foo"}, io.Discard)
		if err != nil {
			t.Fatalf("ParseConfig: %v", err)
		}
		if cfg.Theme != "none" {
			t.Errorf("Theme = %q, want explicit flag value %q", cfg.Theme, "none")
		}
	})

	t.Run("unrecognized bool value keeps default", func(t *testing.T) {
		t.Setenv(EnvPrefix+"VERBOSE", "maybe")
		cfg, err := ParseConfig("multiverse", []string{"foo"}, io.Discard)
		if err != nil {
			t.Fatalf("ParseConfig: %v", err)
		}
		if cfg.Verbose {
			t.Error("unparseable MULTIVERSE_VERBOSE should keep the default")
		}
	})
}

// TestLoadItemsFile tests both accepted YAML layouts and failure modes.
func TestLoadItemsFile(t *testing.T) {
	writeFile := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "items.yaml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	t.Run("bare list", func(t *testing.T) {
		path := writeFile(t, "- foo\n- bar\n- baz\n")
		items, err := LoadItemsFile(path)
		if err != nil {
			t.Fatalf("LoadItemsFile: %v", err)
		}
		if len(items) != 3 || items[0] != "foo" || items[2] != "baz" {
			t.Errorf("items = %v, want [foo bar baz]", items)
		}
	})

	t.Run("items key", func(t *testing.T) {
		path := writeFile(t, "items:\n  - heads\n  - tails\n")
		items, err := LoadItemsFile(path)
		if err != nil {
			t.Fatalf("LoadItemsFile: %v", err)
		}
		if len(items) != 2 || items[0] != "heads" || items[1] != "tails" {
			t.Errorf("items = %v, want [heads tails]", items)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFile(t, "")
		_, err := LoadItemsFile(path)
		var cfgErr apperrors.ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("error = %v, want ConfigError", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadItemsFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
			t.Error("LoadItemsFile should fail for a missing file")
		}
	})
}
