// Package keyscope implements a keyboard shortcut dispatcher for
// document-oriented user interfaces.
//
// The engine consumes raw key-press events delivered by a host and invokes
// user-registered handlers whose declared key sequences match. It supports
// multi-chord sequences, selector-scoped bindings over a tree-shaped
// document, and ambiguity resolution via a timer so that a prefix which is
// also a complete shortcut still yields to a more specific completion.
//
// keyscope is deliberately agnostic of the host's key-canonicalization
// rules, selector language, and document model: those are supplied through
// the Canonicalizer, SelectorEngine, and Node interfaces. See the stroke
// and domtree packages for default implementations.
package keyscope
