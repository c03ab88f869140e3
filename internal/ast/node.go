package ast

// Node is one node of a parsed query syntax tree.
//
// Trees are built by the external parser, either decoded from its JSON dump
// (see LoadTree) or assembled with New. The parent link is a back-reference
// only; the tree is owned by whoever built it.
type Node struct {
	Rule     string  `json:"kind"`
	Text     string  `json:"text"`
	Children []*Node `json:"children,omitempty"`

	Kind   Kind  `json:"-"`
	parent *Node
}

// New returns a node of the given kind whose children are linked back to it.
func New(kind Kind, text string, children ...*Node) *Node {
	n := &Node{Rule: kind.String(), Kind: kind, Text: text, Children: children}
	for _, c := range children {
		c.parent = n
	}
	return n
}

// NewRule returns a node for a grammar rule the validator does not tag,
// keeping the rule name for diagnostics.
func NewRule(rule string, text string, children ...*Node) *Node {
	n := New(ParseKind(rule), text, children...)
	n.Rule = rule
	return n
}

// Parent returns the enclosing node, or nil at the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Child returns the i-th child, or nil if there is none.
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// GetText returns the node's source text; it is empty for a nil node.
func (n *Node) GetText() string {
	if n == nil {
		return ""
	}
	return n.Text
}
