package stroke

import (
	"unicode"

	"github.com/dshills/keyscope"
)

// USEnglish is the default layout: a plain QWERTY, unmodified mapping.
// It carries no state today; it exists so Engine(layout) has a concrete,
// documented default to hold, and so a future layout table has somewhere
// to live without changing the Canonicalizer interface.
var USEnglish = Layout{name: "us"}

// Layout is this package's keyscope.Layout implementation.
type Layout struct{ name string }

func (l Layout) String() string { return l.name }

// Canonicalizer is the default keyscope.Canonicalizer: it reads a host
// KeyEvent's Rune/KeyName/Mods and produces the same Vim-style token
// space that Normalize produces from a user-authored shortcut string.
type Canonicalizer struct{}

var _ keyscope.Canonicalizer = Canonicalizer{}

// Canonicalize implements keyscope.Canonicalizer. It returns an empty
// Stroke for an event that carries neither a recognized character nor a
// recognized key name — such an event is not a shortcut candidate.
func (Canonicalizer) Canonicalize(event keyscope.KeyEvent, layout keyscope.Layout) keyscope.Stroke {
	mods := fromHostMods(event.Mods())

	if r, ok := event.Rune(); ok {
		if unicode.IsUpper(r) {
			mods = mods.with(ModShift)
		}
		return keyscope.Stroke(newRuneEvent(r, mods).VimString())
	}

	name := event.KeyName()
	if name == "" {
		return ""
	}
	key := KeyFromName(name)
	if key == KeyNone {
		return ""
	}
	return keyscope.Stroke(newSpecialEvent(key, mods).VimString())
}

// Normalize implements keyscope.Canonicalizer, parsing a user-authored
// shortcut string into the same token space Canonicalize produces.
func (Canonicalizer) Normalize(strokeString string, layout keyscope.Layout) (keyscope.Stroke, error) {
	ev, err := Parse(strokeString)
	if err != nil {
		return "", err
	}
	return keyscope.Stroke(ev.VimString()), nil
}
