package config

import (
	"os"
	"path/filepath"
	"testing"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keyscope"
	"github.com/dshills/keyscope/domtree"
	"github.com/dshills/keyscope/stroke"
)

type nilNode struct{}

func (nilNode) Parent() keyscope.Node { return nil }

type runeEvent struct {
	r rune
}

func (e runeEvent) Target() keyscope.Node        { return nilNode{} }
func (e runeEvent) CurrentTarget() keyscope.Node { return nilNode{} }
func (e runeEvent) PreventDefault()              {}
func (e runeEvent) StopPropagation()             {}
func (e runeEvent) Clone() keyscope.KeyEvent      { return e }
func (e runeEvent) Rune() (rune, bool)            { return e.r, true }
func (e runeEvent) KeyName() string               { return "" }
func (e runeEvent) Mods() keyscope.Modifiers      { return 0 }

func writeScriptAndConfig(t *testing.T, dir string) string {
	t.Helper()
	scriptPath := filepath.Join(dir, "bindings.lua")
	if err := os.WriteFile(scriptPath, []byte(`
		fired = false
		keyscope.bind({"z"}, "", function()
			fired = true
			return true
		end)
	`), 0o644); err != nil {
		t.Fatalf("WriteFile script: %v", err)
	}

	configPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(configPath, []byte(`
[[scripts]]
path = "bindings.lua"
`), 0o644); err != nil {
		t.Fatalf("WriteFile config: %v", err)
	}
	return configPath
}

func readFired(t *testing.T, r *Reloader) bool {
	t.Helper()
	var fired bool
	err := r.State().Execute(func(l *lua.LState) error {
		fired = l.GetGlobal("fired") == lua.LTrue
		return nil
	})
	if err != nil {
		t.Fatalf("State.Execute: %v", err)
	}
	return fired
}

func TestReloaderLoadsScriptBindings(t *testing.T) {
	dir := t.TempDir()
	configPath := writeScriptAndConfig(t, dir)

	engine := keyscope.New(
		keyscope.WithCanonicalizer(stroke.Canonicalizer{}),
		keyscope.WithSelectorEngine(domtree.Engine{}),
	)

	r := NewReloader(configPath, engine, nil)
	defer r.Close()

	if err := r.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	engine.Process(runeEvent{r: 'z'})

	if !readFired(t, r) {
		t.Error("expected script-registered handler to fire")
	}
}

func TestReloaderReloadRevokesPriorBindings(t *testing.T) {
	dir := t.TempDir()
	configPath := writeScriptAndConfig(t, dir)

	engine := keyscope.New(
		keyscope.WithCanonicalizer(stroke.Canonicalizer{}),
		keyscope.WithSelectorEngine(domtree.Engine{}),
	)

	r := NewReloader(configPath, engine, nil)
	defer r.Close()

	if err := r.Load(); err != nil {
		t.Fatalf("first Load: %v", err)
	}
	if err := r.Load(); err != nil {
		t.Fatalf("second Load: %v", err)
	}

	engine.Process(runeEvent{r: 'z'})

	if !readFired(t, r) {
		t.Error("expected the freshly reloaded script's handler to fire")
	}
}
