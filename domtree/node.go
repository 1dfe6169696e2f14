package domtree

import "github.com/dshills/keyscope"

// Node is a tree-shaped document node: a tag name, an optional id, a set
// of classes, and a parent pointer. It satisfies keyscope.Node.
type Node struct {
	Tag     string
	ID      string
	Classes []string

	parent   *Node
	children []*Node
}

// New constructs a root node with no parent.
func New(tag string) *Node {
	return &Node{Tag: tag}
}

// AppendChild creates a child node under n and returns it.
func (n *Node) AppendChild(tag string) *Node {
	child := &Node{Tag: tag, parent: n}
	n.children = append(n.children, child)
	return child
}

// WithID sets the node's id and returns it, for construction chaining.
func (n *Node) WithID(id string) *Node {
	n.ID = id
	return n
}

// WithClass adds a class and returns the node, for construction chaining.
func (n *Node) WithClass(class string) *Node {
	n.Classes = append(n.Classes, class)
	return n
}

// Parent implements keyscope.Node.
func (n *Node) Parent() keyscope.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// Children returns the node's children in insertion order.
func (n *Node) Children() []*Node {
	return n.children
}

func (n *Node) hasClass(class string) bool {
	for _, c := range n.Classes {
		if c == class {
			return true
		}
	}
	return false
}
