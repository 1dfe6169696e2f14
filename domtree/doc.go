// Package domtree provides a small tree-shaped document model and a
// CSS-lite selector engine over it: the default keyscope.Node and
// keyscope.SelectorEngine implementations.
//
// The selector grammar supports tag names, "#id", ".class", and the
// descendant combinator (space-separated compound selectors) —
// deliberately small, since nothing in the reference corpus specifies a
// richer document selector language for a terminal-oriented UI.
package domtree
