package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return p
}

func TestLoadParsesScriptsAndWindow(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "config.toml", `
ambiguity_window_ms = 750

[[scripts]]
path = "bindings/a.lua"

[[scripts]]
path = "bindings/b.lua"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got, want := cfg.AmbiguityWindow(), 750*time.Millisecond; got != want {
		t.Errorf("AmbiguityWindow = %v, want %v", got, want)
	}

	paths := cfg.ScriptPaths(dir)
	want := []string{filepath.Join(dir, "bindings/a.lua"), filepath.Join(dir, "bindings/b.lua")}
	if len(paths) != len(want) {
		t.Fatalf("ScriptPaths = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("ScriptPaths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load of missing file: %v", err)
	}
	if cfg.AmbiguityWindowMS != 0 || len(cfg.Scripts) != 0 {
		t.Errorf("Load of missing file = %+v, want zero value", cfg)
	}
}

func TestLoadMalformedTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "config.toml", "this = [is not valid toml")

	if _, err := Load(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestZeroAmbiguityWindowWhenUnset(t *testing.T) {
	var cfg Config
	if got := cfg.AmbiguityWindow(); got != 0 {
		t.Errorf("AmbiguityWindow of zero Config = %v, want 0", got)
	}
}
