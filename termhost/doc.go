// Package termhost is a tcell-backed demo host for a keyscope.Engine:
// it owns the terminal screen, a small domtree document of focusable
// panes, converts tcell key events into keyscope.KeyEvent, and renders
// a status line plus a help overlay built from the currently
// registered bindings.
package termhost
