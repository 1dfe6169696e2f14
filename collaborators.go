package keyscope

import "time"

// Layout is the canonicalizer's keyboard layout parameter. Its shape is
// owned entirely by the Canonicalizer implementation in use; the engine
// only ever passes it through.
type Layout any

// Node is a document node in the host's tree-shaped document model. The
// engine walks Parent() chains during dispatch; it never inspects a node's
// other properties directly.
type Node interface {
	Parent() Node
}

// Modifiers is a bitmask of modifier keys held during a key press. The
// engine never inspects it; it exists purely so a Canonicalizer can read
// modifier state off a KeyEvent without this package depending on any
// particular key-event implementation.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has reports whether m contains mod.
func (m Modifiers) Has(mod Modifiers) bool { return m&mod != 0 }

// KeyEvent is a raw key-press event as delivered by the host. The engine
// reads Target/CurrentTarget to drive the scoped walk, Rune/KeyName/Mods
// to hand off to the Canonicalizer, and uses
// PreventDefault/StopPropagation/Clone to implement suppression and
// replay; it never interprets the underlying key itself — that is the
// Canonicalizer's job.
type KeyEvent interface {
	Target() Node
	CurrentTarget() Node
	PreventDefault()
	StopPropagation()

	// Clone returns a faithful copy of the event, preserving type,
	// bubbling, cancelability, and all key/modifier fields, with target
	// association intact. Used by the replay mechanism (§4.5) because
	// some hosts zero out discriminating fields on events once consumed.
	Clone() KeyEvent

	// Rune returns the pressed character and true for a printable-
	// character key press.
	Rune() (rune, bool)

	// KeyName returns a canonical name for a non-character key (e.g.
	// "Enter", "Escape", "F1"). Empty for a character key press.
	KeyName() string

	// Mods returns the modifier keys held during this key press.
	Mods() Modifiers
}

// Canonicalizer translates a raw key event into a normalized Stroke token,
// and parses a user-authored shortcut string into the same token form. An
// empty Stroke returned from Canonicalize means the event is not a
// shortcut candidate at all.
type Canonicalizer interface {
	Canonicalize(event KeyEvent, layout Layout) Stroke
	Normalize(strokeString string, layout Layout) (Stroke, error)
}

// SelectorEngine tests whether a document node matches a selector string,
// computes a selector's specificity, and validates selector syntax.
type SelectorEngine interface {
	IsValid(selector string) bool
	Specificity(selector string) int
	Matches(node Node, selector string) bool
}

// DiagnosticSink is a write-only channel for human-readable warnings
// (invalid bindings at registration) and errors (handler panics during
// dispatch).
type DiagnosticSink interface {
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Timer is a handle to a scheduled callback, returned by Clock.AfterFunc.
// Stop is idempotent; it returns false if the timer already fired or was
// already stopped.
type Timer interface {
	Stop() bool
}

// Clock schedules the ambiguity timer (§4.4) through the host's
// delayed-callback facility. The default implementation wraps
// time.AfterFunc directly.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}
