package stroke

import (
	"strings"
)

// Event is this package's internal parsed representation of one key
// press, used as the canonical intermediate form between a host
// KeyEvent, a user-authored shortcut string, and the resulting
// keyscope.Stroke token.
type Event struct {
	Key       Key
	Rune      rune
	Modifiers Modifier
}

func newRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

func newSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// isRune reports whether this is a character key press.
func (e Event) isRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// isModified reports whether any modifier beyond an implicit
// character-changing Shift is held.
func (e Event) isModified() bool {
	if e.isRune() {
		return e.Modifiers.has(ModCtrl) || e.Modifiers.has(ModAlt) || e.Modifiers.has(ModMeta)
	}
	return e.Modifiers != ModNone
}

// VimString is the canonical token production the Canonicalizer uses
// for both host-derived and parsed-from-string events, e.g. "a", "A",
// "<C-s>", "<CR>", "<Esc>".
func (e Event) VimString() string {
	if e.isRune() && !e.isModified() {
		if e.Rune == ' ' {
			return "<Space>"
		}
		return string(e.Rune)
	}

	var parts []string
	if e.Modifiers.has(ModCtrl) {
		parts = append(parts, "C")
	}
	if e.Modifiers.has(ModAlt) {
		parts = append(parts, "A")
	}
	if e.Modifiers.has(ModMeta) {
		parts = append(parts, "D")
	}
	if e.Modifiers.has(ModShift) && !e.isRune() {
		parts = append(parts, "S")
	}

	var keyName string
	switch e.Key {
	case KeyRune:
		keyName = strings.ToLower(string(e.Rune))
	case KeyEscape:
		keyName = "Esc"
	case KeyEnter:
		keyName = "CR"
	case KeyTab:
		keyName = "Tab"
	case KeyBackspace:
		keyName = "BS"
	case KeyDelete:
		keyName = "Del"
	case KeySpace:
		keyName = "Space"
	case KeyUp:
		keyName = "Up"
	case KeyDown:
		keyName = "Down"
	case KeyLeft:
		keyName = "Left"
	case KeyRight:
		keyName = "Right"
	case KeyHome:
		keyName = "Home"
	case KeyEnd:
		keyName = "End"
	case KeyPageUp:
		keyName = "PageUp"
	case KeyPageDown:
		keyName = "PageDown"
	default:
		keyName = e.Key.String()
	}

	parts = append(parts, keyName)
	return "<" + strings.Join(parts, "-") + ">"
}
