package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// File is the optional on-disk configuration. Flags override every field.
type File struct {
	Theme     string `toml:"theme"`
	Refresh   string `toml:"refresh"`
	AutoStart bool   `toml:"autostart"`
	Log       Log    `toml:"log"`
}

type Log struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// LoadError reports a config file that exists but could not be used.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("load config %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func Default() File {
	return File{
		Theme:   DefaultTheme,
		Refresh: RefreshInterval,
		Log:     Log{Level: DefaultLevel},
	}
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (File, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, &LoadError{Path: path, Err: err}
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Default(), &LoadError{Path: path, Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return Default(), &LoadError{Path: path, Err: err}
	}
	return cfg, nil
}

// Validate rejects values no component understands. Blank values are reset
// to their defaults.
func (f *File) Validate() error {
	if f.Refresh == "" {
		f.Refresh = RefreshInterval
	}
	if f.Refresh != RefreshInterval && f.Refresh != RefreshFrame {
		return fmt.Errorf("unknown refresh %q", f.Refresh)
	}
	if f.Theme == "" {
		f.Theme = DefaultTheme
	}
	if f.Log.Level == "" {
		f.Log.Level = DefaultLevel
	}
	return nil
}
