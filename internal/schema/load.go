package schema

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"mex-common/internal/common"
	"mex-common/internal/ordered"
)

// ErrUnresolvableRef is returned when a $ref cannot be followed.
var ErrUnresolvableRef = errors.New("unresolvable schema reference")

// Load reads a JSON or YAML schema document from path and builds its node tree.
func Load(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema %s: %w", path, err)
	}

	node, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema %s: %w", path, err)
	}

	return node, nil
}

// Parse decodes a JSON or YAML schema document and builds its node tree.
func Parse(data []byte) (*Node, error) {
	doc, err := Decode(data)
	if err != nil {
		return nil, err
	}

	return FromDocument(doc)
}

// Decode decodes a JSON or YAML document into ordered values.
// JSON input is decoded with number precision and key order intact; anything
// that is not valid JSON is decoded as YAML.
func Decode(data []byte) (any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		doc, err := ordered.DecodeJSON(bytes.NewReader(trimmed))
		if err == nil {
			return doc, nil
		}
	}

	var node yaml.Node

	err := yaml.Unmarshal(data, &node)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema document: %w", err)
	}

	return ordered.FromYAML(&node)
}

// FromDocument builds a node tree from a decoded schema document.
// Local references are resolved against doc itself.
func FromDocument(doc any) (*Node, error) {
	b := &builder{root: doc, active: map[string]bool{}}

	return b.build(doc)
}

type builder struct {
	root any
	// active holds the references currently being expanded.
	active map[string]bool
}

func (b *builder) build(v any) (*Node, error) {
	m, ok := v.(ordered.Map)
	if !ok {
		// boolean schemas and malformed nodes
		return &Node{Kind: KindScalar}, nil
	}

	if ref, ok := stringValue(m, "$ref"); ok {
		return b.buildRef(ref)
	}

	if allOf, ok := m.Get("allOf"); ok {
		if list, ok := allOf.([]any); ok && common.IsSingle(list) {
			return b.build(list[0])
		}
	}

	n := &Node{Types: typesOf(m)}
	n.Title, _ = stringValue(m, "title")
	n.Description, _ = stringValue(m, "description")
	n.Pattern, _ = stringValue(m, "pattern")
	n.Format, _ = stringValue(m, "format")

	if raw, ok := m.Get("properties"); ok {
		props, ok := raw.(ordered.Map)
		if ok {
			n.Properties = make([]Property, 0, len(props))

			for _, p := range props {
				child, err := b.build(p.Value)
				if err != nil {
					return nil, fmt.Errorf("properties/%s: %w", p.Key, err)
				}

				n.Properties = append(n.Properties, Property{Name: p.Key, Schema: child})
			}
		}
	}

	hasItems, err := b.buildItems(m, n)
	if err != nil {
		return nil, err
	}

	alternatives, err := b.buildAlternatives(m)
	if err != nil {
		return nil, err
	}

	n.AnyOf = alternatives

	switch {
	case n.Properties != nil:
		n.Kind = KindObject
	case hasItems || n.HasType("array"):
		n.Kind = KindArray
	case !common.IsEmpty(n.AnyOf):
		n.Kind = KindAnyOf
	default:
		n.Kind = KindScalar
	}

	return n, nil
}

func (b *builder) buildItems(m ordered.Map, n *Node) (bool, error) {
	raw, ok := m.Get("items")
	if !ok {
		return false, nil
	}

	// draft-04 tuple form: the first entry stands in for all elements
	if list, isList := raw.([]any); isList {
		first, ok := common.First(list)
		if !ok {
			return true, nil
		}

		raw = first
	}

	items, err := b.build(raw)
	if err != nil {
		return false, fmt.Errorf("items: %w", err)
	}

	n.Items = items

	return true, nil
}

func (b *builder) buildAlternatives(m ordered.Map) ([]*Node, error) {
	var alternatives []*Node

	for _, keyword := range []string{"anyOf", "oneOf"} {
		raw, ok := m.Get(keyword)
		if !ok {
			continue
		}

		list, ok := raw.([]any)
		if !ok {
			continue
		}

		for i, item := range list {
			alt, err := b.build(item)
			if err != nil {
				return nil, fmt.Errorf("%s/%d: %w", keyword, i, err)
			}

			alternatives = append(alternatives, alt)
		}
	}

	return alternatives, nil
}

func (b *builder) buildRef(ref string) (*Node, error) {
	fragment, ok := strings.CutPrefix(ref, "#")
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a local reference", ErrUnresolvableRef, ref)
	}

	if b.active[ref] {
		return &Node{Kind: KindScalar}, nil
	}

	target, err := resolvePointer(b.root, fragment)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnresolvableRef, ref, err)
	}

	b.active[ref] = true
	defer delete(b.active, ref)

	return b.build(target)
}

// resolvePointer walks doc along a JSON pointer such as "/$defs/Name".
func resolvePointer(doc any, pointer string) (any, error) {
	if pointer == "" {
		return doc, nil
	}

	if !strings.HasPrefix(pointer, "/") {
		return nil, fmt.Errorf("invalid json pointer %q", pointer)
	}

	current := doc

	for _, token := range strings.Split(pointer[1:], "/") {
		token, err := url.PathUnescape(token)
		if err != nil {
			return nil, err
		}

		token = strings.ReplaceAll(strings.ReplaceAll(token, "~1", "/"), "~0", "~")

		switch node := current.(type) {
		case ordered.Map:
			next, ok := node.Get(token)
			if !ok {
				return nil, fmt.Errorf("key %q not found", token)
			}

			current = next
		case []any:
			idx, err := strconv.Atoi(token)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, fmt.Errorf("index %q out of range", token)
			}

			current = node[idx]
		default:
			return nil, fmt.Errorf("cannot descend into %T at %q", current, token)
		}
	}

	return current, nil
}

func stringValue(m ordered.Map, key string) (string, bool) {
	raw, ok := m.Get(key)
	if !ok {
		return "", false
	}

	s, ok := raw.(string)

	return s, ok
}

func stringsOf(m ordered.Map, key string) []string {
	raw, ok := m.Get(key)
	if !ok {
		return nil
	}

	list, ok := raw.([]any)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(list))

	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}

	return out
}

func typesOf(m ordered.Map) []string {
	if s, ok := stringValue(m, "type"); ok {
		return []string{s}
	}

	return stringsOf(m, "type")
}
