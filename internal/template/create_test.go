package template

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mex-common/internal/ordered"
	"mex-common/internal/schema"
)

func parseSchema(t *testing.T, doc string) *schema.Node {
	t.Helper()

	node, err := schema.Parse([]byte(doc))
	require.NoError(t, err)

	return node
}

func TestCreateTemplateFromDummySchema(t *testing.T) {
	node := parseSchema(t, `{
		"type": "object",
		"properties": {
			"dummy_str": {"type": "string"},
			"dummy_url": {
				"title": "Url",
				"minLength": 1,
				"pattern": "^(([^:/?#]+):)?(//([^/?#]*))?([^?#]*)(\\?([^#]*))?(#(.*))?",
				"format": "uri"
			},
			"dummy_list": {
				"type": "array",
				"items": {
					"type": "object",
					"properties": {
						"dummy_nested_bool": {"type": "boolean"},
						"dummy_nested_string": {"type": "string"}
					},
					"required": ["dummy_nested_bool"]
				}
			},
			"dummy_choice": {"anyOf": [{"type": "integer"}, {"type": "string"}]}
		},
		"required": ["dummy_str"]
	}`)

	expected := ordered.Map{
		{Key: "dummy_str", Value: nil},
		{Key: "dummy_url", Value: nil},
		{Key: "dummy_list", Value: []any{
			ordered.Map{
				{Key: "dummy_nested_bool", Value: nil},
				{Key: "dummy_nested_string", Value: nil},
			},
		}},
		{Key: "dummy_choice", Value: nil},
	}

	got := CreateTemplateFromSchema(node)
	assert.Equal(t, expected, got, spew.Sdump(got))
}

func TestCreateTemplateShapes(t *testing.T) {
	tests := []struct {
		name     string
		schema   string
		expected any
	}{
		{
			name:     "scalar",
			schema:   `{"type": "integer"}`,
			expected: nil,
		},
		{
			name:     "malformed node",
			schema:   `{}`,
			expected: nil,
		},
		{
			name:     "boolean schema",
			schema:   `true`,
			expected: nil,
		},
		{
			name:     "anyOf with object branch",
			schema:   `{"anyOf": [{"type": "object", "properties": {"a": {"type": "string"}}}, {"type": "null"}]}`,
			expected: nil,
		},
		{
			name:     "empty object",
			schema:   `{"type": "object", "properties": {}}`,
			expected: ordered.Map{},
		},
		{
			name:     "array without items",
			schema:   `{"type": "array"}`,
			expected: []any{nil},
		},
		{
			name:     "array with minItems",
			schema:   `{"type": "array", "items": {"type": "string"}, "minItems": 4}`,
			expected: []any{nil},
		},
		{
			name:   "nested arrays",
			schema: `{"type": "array", "items": {"type": "array", "items": {"type": "string"}}}`,
			expected: []any{
				[]any{nil},
			},
		},
		{
			name: "referenced items",
			schema: `{
				"type": "object",
				"properties": {"rules": {"type": "array", "items": {"$ref": "#/$defs/Rule"}}},
				"$defs": {"Rule": {"type": "object", "properties": {"rule": {"anyOf": [{"type": "string"}, {"type": "null"}]}}}}
			}`,
			expected: ordered.Map{
				{Key: "rules", Value: []any{ordered.Map{{Key: "rule", Value: nil}}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CreateTemplateFromSchema(parseSchema(t, tt.schema))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCreateTemplateScalarProperties(t *testing.T) {
	node := parseSchema(t, `{
		"type": "object",
		"properties": {
			"c": {"type": "string"},
			"a": {"type": "boolean"},
			"b": {"type": "number", "format": "double"}
		}
	}`)

	got, ok := CreateTemplateFromSchema(node).(ordered.Map)
	require.True(t, ok)
	assert.Equal(t, []string{"c", "a", "b"}, got.Keys())

	for _, p := range got {
		assert.Nil(t, p.Value, p.Key)
	}
}

func TestCreateTemplateArrayHasOneElement(t *testing.T) {
	node := parseSchema(t, `{
		"type": "object",
		"properties": {
			"tags": {"type": "array", "items": {"type": "string"}, "minItems": 4},
			"rules": {"type": "array", "minItems": 1000000000, "items": {"type": "object", "properties": {"a": {}}}}
		}
	}`)

	got, ok := CreateTemplateFromSchema(node).(ordered.Map)
	require.True(t, ok)

	tags, _ := got.Get("tags")
	assert.Equal(t, []any{nil}, tags)

	rules, _ := got.Get("rules")
	assert.Equal(t, []any{ordered.Map{{Key: "a", Value: nil}}}, rules)
}

func TestCreateTemplateIsFreshPerCall(t *testing.T) {
	node := parseSchema(t, `{"type": "array", "items": {"type": "object", "properties": {"a": {}}}}`)

	first := CreateTemplateFromSchema(node).([]any)[0].(ordered.Map)
	first.Set("a", "changed")

	second := CreateTemplateFromSchema(node).([]any)[0].(ordered.Map)
	v, _ := second.Get("a")
	assert.Nil(t, v)
}

func TestCreateTemplateNilNode(t *testing.T) {
	assert.Nil(t, CreateTemplateFromSchema(nil))
}
