// Package stroke provides the default keystroke canonicalizer: it
// translates host key events into keyscope's normalized Stroke tokens,
// and parses user-authored shortcut strings into that same token space.
//
// Layout-dependent remapping (alternate keyboard layouts, platform
// modifier aliasing) is intentionally not modeled here — it is
// unspecified behavior left to whatever Layout value a caller supplies,
// and the default Canonicalizer treats every Layout as US-English.
package stroke
