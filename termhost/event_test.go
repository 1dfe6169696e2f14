package termhost

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keyscope"
	"github.com/dshills/keyscope/domtree"
)

func TestEventRuneAndMods(t *testing.T) {
	tev := tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModCtrl|tcell.ModShift)
	n := domtree.New("pane").WithID("list")
	e := NewEvent(tev, n)

	r, ok := e.Rune()
	if !ok || r != 'p' {
		t.Fatalf("Rune() = %q, %v; want 'p', true", r, ok)
	}
	if e.KeyName() != "" {
		t.Errorf("KeyName() = %q; want empty for a rune key", e.KeyName())
	}
	mods := e.Mods()
	if !mods.Has(keyscope.ModCtrl) || !mods.Has(keyscope.ModShift) {
		t.Errorf("Mods() = %v; want Ctrl and Shift set", mods)
	}
	if mods.Has(keyscope.ModAlt) {
		t.Errorf("Mods() = %v; want Alt unset", mods)
	}
}

func TestEventNonRuneKeyName(t *testing.T) {
	tev := tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)
	n := domtree.New("pane")
	e := NewEvent(tev, n)

	if _, ok := e.Rune(); ok {
		t.Error("Rune() ok = true for a non-rune key")
	}
	if got := e.KeyName(); got != "Escape" {
		t.Errorf("KeyName() = %q; want \"Escape\"", got)
	}
}

func TestEventUnmappedKeyNameIsEmpty(t *testing.T) {
	tev := tcell.NewEventKey(tcell.KeyF13, 0, tcell.ModNone)
	e := NewEvent(tev, domtree.New("pane"))

	if got := e.KeyName(); got != "" {
		t.Errorf("KeyName() = %q; want empty for an unmapped key", got)
	}
}

func TestEventPreventDefaultAndStopPropagationConsume(t *testing.T) {
	tev := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
	e := NewEvent(tev, domtree.New("pane"))

	if e.Consumed() {
		t.Fatal("Consumed() = true before any suppression call")
	}
	e.PreventDefault()
	if !e.Consumed() {
		t.Error("Consumed() = false after PreventDefault")
	}

	e2 := NewEvent(tev, domtree.New("pane"))
	e2.StopPropagation()
	if !e2.Consumed() {
		t.Error("Consumed() = false after StopPropagation")
	}
}

func TestEventCloneResetsConsumedState(t *testing.T) {
	tev := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
	e := NewEvent(tev, domtree.New("pane"))
	e.PreventDefault()

	clone := e.Clone()
	ce, ok := clone.(*Event)
	if !ok {
		t.Fatalf("Clone() returned %T; want *Event", clone)
	}
	if ce.Consumed() {
		t.Error("Clone() carried over consumed state; want a fresh, undelivered copy")
	}
	if r, ok := ce.Rune(); !ok || r != 'x' {
		t.Errorf("Clone() Rune() = %q, %v; want 'x', true", r, ok)
	}
}

func TestEventCurrentTargetWalksToRoot(t *testing.T) {
	root := domtree.New("body").WithID("root")
	child := root.AppendChild("pane").WithID("list")

	tev := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
	e := NewEvent(tev, child)

	if got := e.CurrentTarget(); got != keyscope.Node(root) {
		t.Errorf("CurrentTarget() = %v; want root node %v", got, root)
	}
	if got := e.Target(); got != keyscope.Node(child) {
		t.Errorf("Target() = %v; want leaf node %v", got, child)
	}
}
