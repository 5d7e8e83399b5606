// Package schema loads JSON Schema documents into a small tree of typed nodes.
//
// Only the vocabulary needed to scaffold mapping templates is modelled:
// type, properties, items, anyOf/oneOf, title,
// description, pattern and format. Each node is tagged with a Kind so that
// consumers can dispatch on the shape of a schema instead of probing keys:
//
//   - KindObject: the node declares properties
//   - KindArray:  the node declares items (or is typed as array)
//   - KindAnyOf:  the node offers alternatives via anyOf or oneOf
//   - KindScalar: anything else, including nodes with no recognized shape
//
// Local references ("#/$defs/Name", "#/definitions/Name") are resolved while
// the tree is built, and an allOf with a single entry is unwrapped. A
// reference cycle ends in a scalar node.
package schema
