// Package ordered provides an insertion-ordered map for JSON and YAML documents.
//
// JSON Schemas and mapping templates are diffed and reviewed by humans, so the
// order in which properties are declared must survive decoding, transformation
// and encoding. Map keeps that order and knows how to encode itself as JSON and
// YAML. DecodeJSON and FromYAML build Map trees from raw documents.
package ordered
