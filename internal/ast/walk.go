package ast

import "fmt"

// HandlerFunc is called when the walker enters a node. A non-nil error stops
// the walk and is returned from Walk unchanged.
type HandlerFunc func(n *Node) error

// Limits bounds a walk or a tree load. Zero values disable the
// corresponding limit.
type Limits struct {
	MaxDepth int // Deepest node allowed; the root is at depth 1.
	MaxNodes int // Total nodes visited before giving up.
}

// LimitError reports a tree that exceeds a Limits bound.
type LimitError struct {
	Limit string // "depth" or "nodes"
	Max   int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("syntax tree exceeds %s limit of %d", e.Limit, e.Max)
}

// Walker performs a pre-order, depth-first traversal in document order,
// dispatching each entered node to the handlers registered for its kind.
type Walker struct {
	handlers map[Kind][]HandlerFunc
	limits   Limits
}

// NewWalker creates a Walker with no handlers.
func NewWalker(limits Limits) *Walker {
	return &Walker{handlers: make(map[Kind][]HandlerFunc), limits: limits}
}

// Handle registers fn for nodes of the given kind. Handlers for the same kind
// run in registration order.
func (w *Walker) Handle(kind Kind, fn HandlerFunc) {
	w.handlers[kind] = append(w.handlers[kind], fn)
}

// Walk visits root and all of its descendants.
func (w *Walker) Walk(root *Node) error {
	if root == nil {
		return nil
	}
	visited := 0
	return w.enter(root, 1, &visited)
}

func (w *Walker) enter(n *Node, depth int, visited *int) error {
	if w.limits.MaxDepth > 0 && depth > w.limits.MaxDepth {
		return &LimitError{Limit: "depth", Max: w.limits.MaxDepth}
	}
	*visited++
	if w.limits.MaxNodes > 0 && *visited > w.limits.MaxNodes {
		return &LimitError{Limit: "nodes", Max: w.limits.MaxNodes}
	}

	for _, fn := range w.handlers[n.Kind] {
		if err := fn(n); err != nil {
			return err
		}
	}
	for _, c := range n.Children {
		if err := w.enter(c, depth+1, visited); err != nil {
			return err
		}
	}
	return nil
}
