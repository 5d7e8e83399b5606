package schema

import (
	"slices"
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind tags the shape of a schema node.
type Kind int

const (
	KindScalar Kind = iota
	KindObject
	KindArray
	KindAnyOf
)

// Property is a named sub-schema of an object node, in declaration order.
type Property struct {
	Name   string
	Schema *Node
}

// Node is a parsed JSON Schema node.
type Node struct {
	Kind Kind

	// Types lists the values of the "type" keyword.
	Types []string

	Title       string
	Description string
	Pattern     string
	Format      string

	// Properties is set for object nodes.
	Properties []Property
	// Items is the element schema of an array node. It may be nil for an
	// array typed node without an items keyword.
	Items *Node

	// AnyOf holds the alternatives of an anyOf or oneOf node.
	AnyOf []*Node
}

// Property returns the sub-schema declared for name, or nil.
func (n *Node) Property(name string) *Node {
	if n == nil {
		return nil
	}

	for _, p := range n.Properties {
		if p.Name == name {
			return p.Schema
		}
	}

	return nil
}

// PropertyNames returns the declared property names in order.
func (n *Node) PropertyNames() []string {
	if n == nil {
		return nil
	}

	names := make([]string, len(n.Properties))
	for i, p := range n.Properties {
		names[i] = p.Name
	}

	return names
}

// HasType reports whether t is one of the node's declared types.
func (n *Node) HasType(t string) bool {
	return n != nil && slices.Contains(n.Types, t)
}
