package ordered

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DecodeJSON reads a single JSON value from r. Objects become Map values,
// arrays become []any and numbers are kept as json.Number.
func DecodeJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := decodeJSONValue(dec)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("invalid character after top-level value")
	}

	return v, nil
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		m := Map{}

		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}

			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("expected object key, got %v", keyTok)
			}

			value, err := decodeJSONValue(dec)
			if err != nil {
				return nil, err
			}

			m.Set(key, value)
		}

		if _, err := dec.Token(); err != nil {
			return nil, err
		}

		return m, nil
	case '[':
		arr := []any{}

		for dec.More() {
			value, err := decodeJSONValue(dec)
			if err != nil {
				return nil, err
			}

			arr = append(arr, value)
		}

		if _, err := dec.Token(); err != nil {
			return nil, err
		}

		return arr, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %v", delim)
	}
}

// FromYAML converts a decoded YAML node tree into Map, []any and scalar values.
// Mapping keys are always taken as strings.
func FromYAML(node *yaml.Node) (any, error) {
	if node == nil {
		return nil, nil
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}

		return FromYAML(node.Content[0])
	case yaml.MappingNode:
		m := make(Map, 0, len(node.Content)/2)

		for i := 0; i+1 < len(node.Content); i += 2 {
			value, err := FromYAML(node.Content[i+1])
			if err != nil {
				return nil, err
			}

			m.Set(node.Content[i].Value, value)
		}

		return m, nil
	case yaml.SequenceNode:
		arr := make([]any, 0, len(node.Content))

		for _, item := range node.Content {
			value, err := FromYAML(item)
			if err != nil {
				return nil, err
			}

			arr = append(arr, value)
		}

		return arr, nil
	case yaml.AliasNode:
		return FromYAML(node.Alias)
	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}

		return v, nil
	default:
		return nil, fmt.Errorf("line %d: unsupported yaml node kind %v", node.Line, node.Kind)
	}
}
