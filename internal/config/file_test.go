package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if cfg, err = Load(""); err != nil || cfg != Default() {
		t.Fatalf("empty path should give defaults, got %+v %v", cfg, err)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
theme = "dracula"
refresh = "frame"
autostart = true

[log]
level = "debug"
file = "/tmp/tminus.log"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Theme != "dracula" || cfg.Refresh != RefreshFrame || !cfg.AutoStart {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Log.Level != "debug" || cfg.Log.File != "/tmp/tminus.log" {
		t.Fatalf("unexpected log config: %+v", cfg.Log)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `theme = ""`+"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Theme != DefaultTheme || cfg.Refresh != RefreshInterval || cfg.Log.Level != DefaultLevel {
		t.Fatalf("expected defaults to survive, got %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	for name, body := range map[string]string{
		"syntax":  "theme = \n",
		"refresh": `refresh = "hourly"` + "\n",
	} {
		path := writeConfig(t, body)
		cfg, err := Load(path)
		var loadErr *LoadError
		if !errors.As(err, &loadErr) {
			t.Fatalf("%s: expected LoadError, got %v", name, err)
		}
		if loadErr.Path != path {
			t.Fatalf("%s: unexpected path %q", name, loadErr.Path)
		}
		if cfg != Default() {
			t.Fatalf("%s: expected defaults on error, got %+v", name, cfg)
		}
	}
}
