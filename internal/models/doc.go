// Package models declares the extracted model types that mapping files target.
//
// The types only carry the information needed to derive mapping schemas:
// the JSON field name, whether a field holds a list, whether it is required
// (struct tag `mex:"required"`) and the JSON Schema of its values. Value types
// describe themselves through the SchemaProvider interface; plain strings map
// to {"type": "string"}.
package models
