package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config is the root of a TOML configuration file: the ambiguity
// window override and the Lua scripts to load at startup, e.g.:
//
//	ambiguity_window_ms = 750
//
//	[[scripts]]
//	path = "bindings/editor.lua"
//
//	[[scripts]]
//	path = "bindings/vim.lua"
type Config struct {
	AmbiguityWindowMS int      `toml:"ambiguity_window_ms"`
	Scripts           []Script `toml:"scripts"`
}

// Script names one Lua binding file to load.
type Script struct {
	Path string `toml:"path"`
}

// AmbiguityWindow returns the configured ambiguity window, or zero if
// unset, letting the caller fall back to the engine's own default.
func (c Config) AmbiguityWindow() time.Duration {
	if c.AmbiguityWindowMS <= 0 {
		return 0
	}
	return time.Duration(c.AmbiguityWindowMS) * time.Millisecond
}

// ScriptPaths returns each script's path resolved relative to dir (the
// directory the config file itself lives in), so a config file can
// reference scripts by a path relative to itself regardless of the
// process's current working directory.
func (c Config) ScriptPaths(dir string) []string {
	paths := make([]string, 0, len(c.Scripts))
	for _, s := range c.Scripts {
		p := s.Path
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}
		paths = append(paths, p)
	}
	return paths
}

// Load reads and parses a TOML configuration file at path. A missing
// file is not an error — it returns the zero Config, so a host can
// treat "no config file" the same as "empty config file".
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, &ParseError{Path: path, Err: err}
	}
	return cfg, nil
}
