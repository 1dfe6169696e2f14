package pluginlua

import (
	"testing"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keyscope"
	"github.com/dshills/keyscope/domtree"
	"github.com/dshills/keyscope/stroke"
)

type fakeNode struct{}

func (fakeNode) Parent() keyscope.Node { return nil }

type fakeEvent struct {
	r       rune
	hasRune bool
	name    string
	mods    keyscope.Modifiers
	target  fakeNode
}

func (e *fakeEvent) Target() keyscope.Node        { return e.target }
func (e *fakeEvent) CurrentTarget() keyscope.Node { return e.target }
func (e *fakeEvent) PreventDefault()              {}
func (e *fakeEvent) StopPropagation()             {}
func (e *fakeEvent) Clone() keyscope.KeyEvent      { c := *e; return &c }
func (e *fakeEvent) Rune() (rune, bool)            { return e.r, e.hasRune }
func (e *fakeEvent) KeyName() string               { return e.name }
func (e *fakeEvent) Mods() keyscope.Modifiers      { return e.mods }

func runeEvent(r rune) *fakeEvent { return &fakeEvent{r: r, hasRune: true} }

func TestBridgeBindFiresLuaHandler(t *testing.T) {
	engine := keyscope.New(
		keyscope.WithCanonicalizer(stroke.Canonicalizer{}),
		keyscope.WithSelectorEngine(domtree.Engine{}),
	)

	state := NewState()
	defer state.Close()

	bridge := NewBridge(engine, state, nil)
	bridge.Install(state.L)

	if err := state.LoadString(`
		fired = false
		keyscope.bind({"x"}, "", function()
			fired = true
			return true
		end)
	`); err != nil {
		t.Fatalf("LoadString: %v", err)
	}

	engine.Process(runeEvent('x'))

	var fired bool
	err := state.Execute(func(l *lua.LState) error {
		fired = l.GetGlobal("fired") == lua.LTrue
		return nil
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !fired {
		t.Error("expected Lua handler to set fired = true")
	}
}

func TestBridgeUnbindStopsDispatch(t *testing.T) {
	engine := keyscope.New(
		keyscope.WithCanonicalizer(stroke.Canonicalizer{}),
		keyscope.WithSelectorEngine(domtree.Engine{}),
	)

	state := NewState()
	defer state.Close()

	bridge := NewBridge(engine, state, nil)
	bridge.Install(state.L)

	if err := state.LoadString(`
		count = 0
		id = keyscope.bind({"y"}, "", function()
			count = count + 1
			return true
		end)
	`); err != nil {
		t.Fatalf("LoadString: %v", err)
	}

	engine.Process(runeEvent('y'))

	var id int
	if err := state.Execute(func(l *lua.LState) error {
		id = int(l.GetGlobal("id").(lua.LNumber))
		return nil
	}); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	var unbound bool
	if err := state.Execute(func(l *lua.LState) error {
		mod := l.GetGlobal("keyscope").(*lua.LTable)
		unbind := l.GetField(mod, "unbind")
		l.Push(unbind)
		l.Push(lua.LNumber(id))
		if err := l.PCall(1, 1, nil); err != nil {
			return err
		}
		unbound = l.Get(-1) == lua.LTrue
		l.Pop(1)
		return nil
	}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !unbound {
		t.Error("expected unbind to report true")
	}

	engine.Process(runeEvent('y'))

	var count int
	if err := state.Execute(func(l *lua.LState) error {
		count = int(l.GetGlobal("count").(lua.LNumber))
		return nil
	}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d after unbind, want 1 (no second dispatch)", count)
	}
}
