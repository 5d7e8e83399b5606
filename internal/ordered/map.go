package ordered

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Pair is a single entry of a Map.
type Pair struct {
	Key   string
	Value any
}

// Map is a string-keyed mapping that preserves insertion order.
// The zero value is an empty map ready to use.
type Map []Pair

// Get returns the value stored under key.
func (m Map) Get(key string) (any, bool) {
	for _, p := range m {
		if p.Key == key {
			return p.Value, true
		}
	}

	return nil, false
}

// Has returns true if key is present.
func (m Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Set replaces the value of an existing key in place or appends a new entry.
func (m *Map) Set(key string, value any) {
	for i := range *m {
		if (*m)[i].Key == key {
			(*m)[i].Value = value
			return
		}
	}

	*m = append(*m, Pair{Key: key, Value: value})
}

// Keys returns the keys in insertion order.
func (m Map) Keys() []string {
	keys := make([]string, len(m))
	for i, p := range m {
		keys[i] = p.Key
	}

	return keys
}

// Clone returns a deep copy of the map.
func (m Map) Clone() Map {
	if m == nil {
		return nil
	}

	out := make(Map, len(m))
	for i, p := range m {
		out[i] = Pair{Key: p.Key, Value: DeepCopy(p.Value)}
	}

	return out
}

// DeepCopy copies Map, slice and plain map values recursively.
// Scalars are returned as they are.
func DeepCopy(v any) any {
	switch v := v.(type) {
	case Map:
		return v.Clone()
	case []any:
		if v == nil {
			return []any(nil)
		}

		out := make([]any, len(v))
		for i, item := range v {
			out[i] = DeepCopy(item)
		}

		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = DeepCopy(item)
		}

		return out
	default:
		return v
	}
}

// Plain converts Map values (recursively) into map[string]any, dropping order.
func Plain(v any) any {
	switch v := v.(type) {
	case Map:
		out := make(map[string]any, len(v))
		for _, p := range v {
			out[p.Key] = Plain(p.Value)
		}

		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = Plain(item)
		}

		return out
	default:
		return v
	}
}

// MarshalJSON encodes the map as a JSON object in insertion order.
func (m Map) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, p := range m {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := marshalJSON(p.Key)
		if err != nil {
			return nil, err
		}

		value, err := marshalJSON(p.Value)
		if err != nil {
			return nil, fmt.Errorf("encoding %q: %w", p.Key, err)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// marshalJSON encodes v without escaping HTML characters, which would
// otherwise mangle regular expressions such as "a&b" or "<x>".
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// MarshalYAML encodes the map as a YAML mapping node in insertion order.
func (m Map) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, p := range m {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Key}

		value := &yaml.Node{}
		if err := value.Encode(p.Value); err != nil {
			return nil, fmt.Errorf("encoding %q: %w", p.Key, err)
		}

		node.Content = append(node.Content, key, value)
	}

	return node, nil
}
