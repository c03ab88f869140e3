// Package ast defines the syntax tree of a parsed pipeline query as produced
// by the external grammar-based parser, and a pre-order walker over it.
package ast

// Tree is the top-level representation of a syntax tree dump.
type Tree struct {
	Version string `json:"version"`
	Query   string `json:"query,omitempty"` // raw query text, informational
	Parser  string `json:"parser,omitempty"`
	Root    *Node  `json:"root"`
}
