package stroke

import (
	"strings"

	"github.com/dshills/keyscope"
)

// Modifier is this package's internal modifier bitmask, used while
// parsing shortcut strings. It is converted to/from keyscope.Modifiers
// at the Canonicalizer boundary.
type Modifier uint8

const (
	ModNone Modifier = 0
	ModCtrl Modifier = 1 << iota
	ModAlt
	ModShift
	ModMeta
)

func (m Modifier) has(mod Modifier) bool { return m&mod != 0 }
func (m Modifier) with(mod Modifier) Modifier { return m | mod }

var modifierNameMap = map[string]Modifier{
	"ctrl": ModCtrl, "control": ModCtrl, "c": ModCtrl,
	"alt": ModAlt, "a": ModAlt, "option": ModAlt, "opt": ModAlt,
	"shift": ModShift, "s": ModShift,
	"meta": ModMeta, "m": ModMeta, "cmd": ModMeta, "command": ModMeta,
	"win": ModMeta, "super": ModMeta, "d": ModMeta,
}

func modifierFromName(name string) Modifier {
	return modifierNameMap[name]
}

// fromHostMods converts the host's keyscope.Modifiers bitmask into this
// package's internal Modifier representation.
func fromHostMods(m keyscope.Modifiers) Modifier {
	var out Modifier
	if m.Has(keyscope.ModCtrl) {
		out = out.with(ModCtrl)
	}
	if m.Has(keyscope.ModAlt) {
		out = out.with(ModAlt)
	}
	if m.Has(keyscope.ModShift) {
		out = out.with(ModShift)
	}
	if m.Has(keyscope.ModMeta) {
		out = out.with(ModMeta)
	}
	return out
}

// String renders like "Ctrl+Alt".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}
	var parts []string
	if m.has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.has(ModShift) {
		parts = append(parts, "Shift")
	}
	if m.has(ModMeta) {
		parts = append(parts, "Meta")
	}
	return strings.Join(parts, "+")
}
