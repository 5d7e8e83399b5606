package mapping

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Entry holds the fields configured for one target field, in file order.
type Entry[F any] struct {
	Name   string
	Fields []F
}

// Document is a parsed mapping or entity filter file.
type Document[F any] struct {
	// SchemaPath is the schema named in the header, if any.
	SchemaPath string
	// Entries keeps the top-level keys in file order.
	Entries []Entry[F]
}

// Mapping is a parsed mapping file.
type Mapping = Document[GenericField]

// Filter is a parsed entity filter file.
type Filter = Document[EntityFilter]

// Names returns the target field names in file order.
func (d *Document[F]) Names() []string {
	names := make([]string, len(d.Entries))
	for i, e := range d.Entries {
		names[i] = e.Name
	}

	return names
}

// ParseMapping parses YAML data into a Mapping.
func ParseMapping(data []byte) (*Mapping, error) {
	return parseDocument[GenericField](data)
}

// ParseFilter parses YAML data into a Filter.
func ParseFilter(data []byte) (*Filter, error) {
	return parseDocument[EntityFilter](data)
}

func parseDocument[F any](data []byte) (*Document[F], error) {
	var root yaml.Node

	err := yaml.Unmarshal(data, &root)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping YAML: %w", err)
	}

	doc := &Document[F]{}
	doc.SchemaPath, _ = SchemaPathFromReader(bytes.NewReader(data))

	if len(root.Content) == 0 {
		return doc, nil
	}

	top := root.Content[0]
	if top.Kind == yaml.ScalarNode && top.Tag == "!!null" {
		return doc, nil
	}

	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of field names", top.Line)
	}

	seen := make(map[string]struct{}, len(top.Content)/2)

	for i := 0; i+1 < len(top.Content); i += 2 {
		key := top.Content[i]
		if _, ok := seen[key.Value]; ok {
			return nil, fmt.Errorf("line %d: duplicate field %q", key.Line, key.Value)
		}

		seen[key.Value] = struct{}{}

		var fields []F

		err := top.Content[i+1].Decode(&fields)
		if err != nil {
			return nil, fmt.Errorf("failed to decode field %q: %w", key.Value, err)
		}

		doc.Entries = append(doc.Entries, Entry[F]{Name: key.Value, Fields: fields})
	}

	return doc, nil
}
