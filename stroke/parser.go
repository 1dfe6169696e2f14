package stroke

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	ErrEmptySpec   = errors.New("stroke: empty key specification")
	ErrInvalidSpec = errors.New("stroke: invalid key specification")
)

// Parse parses a shortcut-string spec into an Event. Supported forms:
// single characters ("a", "A"), special key names ("Enter", "Escape"),
// modifier+key ("Ctrl+S", "Alt+F4"), and Vim-style ("<C-s>", "<CR>").
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") && len(spec) > 1 {
		return parseVimStyle(spec[1 : len(spec)-1])
	}
	if strings.Contains(spec, "+") {
		return parseModifierStyle(spec)
	}
	return parseSingle(spec)
}

func parseVimStyle(inner string) (Event, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Event{}, ErrInvalidSpec
	}

	parts := strings.Split(inner, "-")
	var mods Modifier
	keyPart := parts[len(parts)-1]
	for _, p := range parts[:len(parts)-1] {
		p = strings.ToLower(strings.TrimSpace(p))
		switch p {
		case "c":
			mods = mods.with(ModCtrl)
		case "a":
			mods = mods.with(ModAlt)
		case "s":
			mods = mods.with(ModShift)
		case "m", "d":
			mods = mods.with(ModMeta)
		default:
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
	}
	return parseKeyWithModifiers(keyPart, mods)
}

func parseModifierStyle(spec string) (Event, error) {
	parts := strings.Split(spec, "+")
	if len(parts) < 2 {
		return Event{}, ErrInvalidSpec
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		p = strings.ToLower(strings.TrimSpace(p))
		mod := modifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.with(mod)
	}
	return parseKeyWithModifiers(strings.TrimSpace(parts[len(parts)-1]), mods)
}

func parseSingle(spec string) (Event, error) {
	if key := KeyFromName(spec); key != KeyNone {
		return newSpecialEvent(key, ModNone), nil
	}

	runes := []rune(spec)
	if len(runes) == 1 {
		r := runes[0]
		var mods Modifier
		if unicode.IsUpper(r) {
			mods = mods.with(ModShift)
		}
		return newRuneEvent(r, mods), nil
	}
	return Event{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
}

func parseKeyWithModifiers(keyPart string, mods Modifier) (Event, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Event{}, ErrInvalidSpec
	}

	lowerKey := strings.ToLower(keyPart)
	switch lowerKey {
	case "cr", "return", "enter":
		return newSpecialEvent(KeyEnter, mods), nil
	case "esc", "escape":
		return newSpecialEvent(KeyEscape, mods), nil
	case "tab":
		return newSpecialEvent(KeyTab, mods), nil
	case "bs", "backspace":
		return newSpecialEvent(KeyBackspace, mods), nil
	case "del", "delete":
		return newSpecialEvent(KeyDelete, mods), nil
	case "ins", "insert":
		return newSpecialEvent(KeyInsert, mods), nil
	case "space":
		return newRuneEvent(' ', mods), nil
	case "lt":
		return newRuneEvent('<', mods), nil
	case "gt":
		return newRuneEvent('>', mods), nil
	}

	if key := KeyFromName(lowerKey); key != KeyNone {
		return newSpecialEvent(key, mods), nil
	}

	runes := []rune(keyPart)
	if len(runes) == 1 {
		r := runes[0]
		if mods.has(ModCtrl) {
			r = unicode.ToLower(r)
		}
		return newRuneEvent(r, mods), nil
	}
	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}
