package ast

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ReadFile reads a tree dump, decompressing it according to its extension.
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tree file: %w", err)
	}
	defer f.Close()

	r, err := NewReader(f, CompressionFor(path))
	if err != nil {
		return nil, fmt.Errorf("failed to decode tree file: %w", err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read tree file: %w", err)
	}
	return data, nil
}

// LoadTree reads and parses a syntax tree dump.
func LoadTree(path string, limits Limits) (*Tree, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTree(data, limits)
}

// ParseTree decodes a JSON tree dump and links every node to its parent.
func ParseTree(data []byte, limits Limits) (*Tree, error) {
	var tree Tree
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("failed to parse tree JSON: %w", err)
	}
	if tree.Root == nil {
		return nil, errors.New("tree has no root node")
	}
	if err := Link(tree.Root, limits); err != nil {
		return nil, err
	}
	return &tree, nil
}

// Link tags every node under root with its Kind and sets its parent link.
// It is needed for trees decoded from JSON; trees built with New are
// already linked.
func Link(root *Node, limits Limits) error {
	root.parent = nil
	count := 0
	var link func(n *Node, depth int) error
	link = func(n *Node, depth int) error {
		if limits.MaxDepth > 0 && depth > limits.MaxDepth {
			return &LimitError{Limit: "depth", Max: limits.MaxDepth}
		}
		count++
		if limits.MaxNodes > 0 && count > limits.MaxNodes {
			return &LimitError{Limit: "nodes", Max: limits.MaxNodes}
		}
		n.Kind = ParseKind(n.Rule)
		for i, c := range n.Children {
			if c == nil {
				return fmt.Errorf("%s node has null child at index %d", n.Rule, i)
			}
			c.parent = n
			if err := link(c, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	return link(root, 1)
}
