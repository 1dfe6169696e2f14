package termhost

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keyscope"
	"github.com/dshills/keyscope/domtree"
)

// Event adapts a tcell.EventKey into keyscope.KeyEvent. prevented and
// stopped track PreventDefault/StopPropagation so the host's own
// fallthrough handling (arrow-key cursor movement, printable-character
// insertion, and so on) can check whether keyscope already consumed
// the key.
type Event struct {
	tev       *tcell.EventKey
	target    *domtree.Node
	prevented bool
	stopped   bool
}

// NewEvent wraps a tcell key event, scoped to target.
func NewEvent(tev *tcell.EventKey, target *domtree.Node) *Event {
	return &Event{tev: tev, target: target}
}

func (e *Event) Target() keyscope.Node { return e.target }

func (e *Event) CurrentTarget() keyscope.Node {
	// The root of the focused pane's ancestor chain is wherever the
	// walk should stop; this host always dispatches from the document
	// root, so CurrentTarget is the root node itself.
	n := e.target
	for n != nil {
		if parent, ok := n.Parent().(*domtree.Node); ok && parent != nil {
			n = parent
			continue
		}
		break
	}
	return n
}

func (e *Event) PreventDefault()  { e.prevented = true }
func (e *Event) StopPropagation() { e.stopped = true }

func (e *Event) Clone() keyscope.KeyEvent {
	c := *e
	c.prevented = false
	c.stopped = false
	return &c
}

func (e *Event) Rune() (rune, bool) {
	if e.tev.Key() == tcell.KeyRune {
		return e.tev.Rune(), true
	}
	return 0, false
}

func (e *Event) KeyName() string {
	if e.tev.Key() == tcell.KeyRune {
		return ""
	}
	return tcellKeyName(e.tev.Key())
}

func (e *Event) Mods() keyscope.Modifiers {
	m := e.tev.Modifiers()
	var out keyscope.Modifiers
	if m&tcell.ModShift != 0 {
		out |= keyscope.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= keyscope.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= keyscope.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		out |= keyscope.ModMeta
	}
	return out
}

// Consumed reports whether keyscope's dispatch claimed this key press,
// so the host's own fallthrough input handling can skip it.
func (e *Event) Consumed() bool { return e.prevented || e.stopped }

// tcellKeyName maps a non-rune tcell.Key to the name stroke.KeyFromName
// recognizes. Keys with no keymap-relevant counterpart map to "".
func tcellKeyName(k tcell.Key) string {
	switch k {
	case tcell.KeyEscape:
		return "Escape"
	case tcell.KeyEnter:
		return "Enter"
	case tcell.KeyTab:
		return "Tab"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "Backspace"
	case tcell.KeyDelete:
		return "Delete"
	case tcell.KeyInsert:
		return "Insert"
	case tcell.KeyHome:
		return "Home"
	case tcell.KeyEnd:
		return "End"
	case tcell.KeyPgUp:
		return "PageUp"
	case tcell.KeyPgDn:
		return "PageDown"
	case tcell.KeyUp:
		return "Up"
	case tcell.KeyDown:
		return "Down"
	case tcell.KeyLeft:
		return "Left"
	case tcell.KeyRight:
		return "Right"
	case tcell.KeyF1:
		return "F1"
	case tcell.KeyF2:
		return "F2"
	case tcell.KeyF3:
		return "F3"
	case tcell.KeyF4:
		return "F4"
	case tcell.KeyF5:
		return "F5"
	case tcell.KeyF6:
		return "F6"
	case tcell.KeyF7:
		return "F7"
	case tcell.KeyF8:
		return "F8"
	case tcell.KeyF9:
		return "F9"
	case tcell.KeyF10:
		return "F10"
	case tcell.KeyF11:
		return "F11"
	case tcell.KeyF12:
		return "F12"
	default:
		return ""
	}
}
