// Package syntax parses Typst source text into a syntax tree.
//
// The tree obeys one structural contract that consumers rely on:
// the byte lengths of a node's children always sum to the length
// of the node itself, so a depth-first walk over the leaves visits
// every byte of the source exactly once, in order.
// Zero-length leaves are legal and mark error recovery points.
package syntax

// Node is a node of the syntax tree.
// A node is either a leaf carrying source text,
// or an inner node carrying children.
type Node struct {
	kind     Kind
	text     string
	children []*Node
	length   int
}

// NewLeaf builds a leaf node holding the given source text.
func NewLeaf(kind Kind, text string) *Node {
	return &Node{kind: kind, text: text, length: len(text)}
}

// NewInner builds an inner node from its children.
// Its length is the sum of the children's lengths.
func NewInner(kind Kind, children ...*Node) *Node {
	n := &Node{kind: kind, children: children}
	for _, c := range children {
		n.length += c.length
	}
	return n
}

// Kind reports the kind of this node.
func (n *Node) Kind() Kind { return n.kind }

// Text returns the source text of a leaf node.
// It is empty for inner nodes and for zero-width leaves.
func (n *Node) Text() string { return n.text }

// Children returns the children of an inner node, nil for leaves.
func (n *Node) Children() []*Node { return n.children }

// Leaf reports whether this node is a leaf.
func (n *Node) Leaf() bool { return n.children == nil }

// Len is the byte length of the source covered by this node.
func (n *Node) Len() int { return n.length }
