package util

import (
	"path/filepath"
	"testing"
)

func TestConfigDirUsesXDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)
	if got, want := ConfigDir("tminus"), filepath.Join(base, "tminus"); got != want {
		t.Fatalf("ConfigDir = %q, want %q", got, want)
	}
}

func TestStateDirFallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("HOME", home)
	want := filepath.Join(home, ".local", "state", "tminus")
	if got := StateDir("tminus"); got != want {
		t.Fatalf("StateDir = %q, want %q", got, want)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "$HOME/cfg")
	if got, want := ConfigDir("tminus"), filepath.Join(home, "cfg", "tminus"); got != want {
		t.Fatalf("ConfigDir = %q, want %q", got, want)
	}
	if got := expandHome("/plain/path"); got != "/plain/path" {
		t.Fatalf("expandHome changed a plain path: %q", got)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Fatalf("Clamp returned unexpected values")
	}
}
