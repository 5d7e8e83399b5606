package mapping

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mex-common/internal/models"
	"mex-common/internal/ordered"
	"mex-common/internal/schema"
)

type DummyClass struct {
	models.ExtractedData

	DummyIdentifier *models.MergedOrganizationalUnitIdentifier `json:"dummy_identifier"`
	DummyStr        string                                     `json:"dummy_str" mex:"required"`
	DummyInt        *int                                       `json:"dummy_int"`
	DummyEmail      models.Email                               `json:"dummy_email" mex:"required"`
	DummyList       []string                                   `json:"dummy_list"`
}

func subJSON(t *testing.T, m ordered.Map, keys ...string) string {
	t.Helper()

	var cur any = m
	for _, k := range keys {
		next, ok := cur.(ordered.Map)
		require.True(t, ok, "%q is not an object in %s", k, spew.Sdump(cur))

		cur, ok = next.Get(k)
		require.True(t, ok, "missing key %q", k)
	}

	data, err := json.Marshal(cur)
	require.NoError(t, err)

	return string(data)
}

func TestMappingSchemaLayout(t *testing.T) {
	s := MappingSchema(models.NewModel(DummyClass{}))

	assert.Equal(t, []string{"$defs", "additionalProperties", "description", "properties", "required", "title", "type"}, s.Keys())

	props, _ := s.Get("properties")
	assert.Equal(t, []string{
		"hadPrimarySource",
		"identifierInPrimarySource",
		"dummy_identifier",
		"dummy_str",
		"dummy_int",
		"dummy_email",
		"dummy_list",
	}, props.(ordered.Map).Keys())

	required, _ := s.Get("required")
	assert.Equal(t, []any{"hadPrimarySource", "identifierInPrimarySource", "dummy_str", "dummy_email"}, required)

	defs, _ := s.Get("$defs")
	names := defs.(ordered.Map).Keys()
	assert.Len(t, names, 14)
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, "Dummy_emailFieldsInPrimarySource")
	assert.Contains(t, names, "HadprimarysourceMappingRule")

	title, _ := s.Get("title")
	assert.Equal(t, "DummyClass", title)
}

func TestMappingSchemaProperties(t *testing.T) {
	s := MappingSchema(models.NewModel(DummyClass{}))

	assert.JSONEq(t,
		`{"items":{"$ref":"#/$defs/Dummy_strFieldsInPrimarySource"},"title":"Dummy_str","type":"array"}`,
		subJSON(t, s, "properties", "dummy_str"))
	assert.JSONEq(t,
		`{"default":null,"items":{"$ref":"#/$defs/Dummy_listFieldsInPrimarySource"},"title":"Dummy_list","type":"array"}`,
		subJSON(t, s, "properties", "dummy_list"))
}

func TestMappingSchemaFieldRecord(t *testing.T) {
	s := MappingSchema(models.NewModel(DummyClass{}))

	expected := `{
		"additionalProperties": false,
		"description": "Mapping schema for Dummy_email fields in primary source.",
		"properties": {
			"fieldInPrimarySource": {"title": "Fieldinprimarysource", "type": "string"},
			"locationInPrimarySource": {
				"anyOf": [{"type": "string"}, {"type": "null"}],
				"default": null,
				"title": "Locationinprimarysource"
			},
			"examplesInPrimarySource": {
				"anyOf": [{"items": {"type": "string"}, "type": "array"}, {"type": "null"}],
				"default": null,
				"title": "Examplesinprimarysource"
			},
			"mappingRules": {
				"items": {"$ref": "#/$defs/Dummy_emailMappingRule"},
				"minItems": 1,
				"title": "Mappingrules",
				"type": "array"
			},
			"comment": {
				"anyOf": [{"type": "string"}, {"type": "null"}],
				"default": null,
				"title": "Comment"
			}
		},
		"required": ["fieldInPrimarySource", "mappingRules"],
		"title": "Dummy_emailFieldsInPrimarySource",
		"type": "object"
	}`

	assert.JSONEq(t, expected, subJSON(t, s, "$defs", "Dummy_emailFieldsInPrimarySource"))
}

func TestMappingSchemaRuleRecords(t *testing.T) {
	s := MappingSchema(models.NewModel(DummyClass{}))

	email := `{
		"additionalProperties": false,
		"description": "Mapping rule schema of field Dummy_email.",
		"properties": {
			"forValues": {
				"anyOf": [{"items": {"type": "string"}, "type": "array"}, {"type": "null"}],
				"default": null,
				"title": "Forvalues"
			},
			"setValues": {
				"anyOf": [
					{
						"items": {
							"examples": ["info@rki.de"],
							"format": "email",
							"pattern": "^[^@ \\t\\r\\n]+@[^@ \\t\\r\\n]+\\.[^@ \\t\\r\\n]+$",
							"title": "Email",
							"type": "string"
						},
						"type": "array"
					},
					{"type": "null"}
				],
				"default": null,
				"title": "Setvalues"
			},
			"rule": {
				"anyOf": [{"type": "string"}, {"type": "null"}],
				"default": null,
				"title": "Rule"
			}
		},
		"title": "Dummy_emailMappingRule",
		"type": "object"
	}`
	assert.JSONEq(t, email, subJSON(t, s, "$defs", "Dummy_emailMappingRule"))

	tests := []struct {
		def   string
		items string
	}{
		{"Dummy_intMappingRule", `{"anyOf":[{"type":"integer"},{"type":"null"}]}`},
		{"Dummy_listMappingRule", `{"type":"string"}`},
		{"Dummy_strMappingRule", `{"type":"string"}`},
		{"Dummy_identifierMappingRule", `{"anyOf":[{"pattern":"^[a-zA-Z0-9]{14,22}$","title":"MergedOrganizationalUnitIdentifier","type":"string"},{"type":"null"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.def, func(t *testing.T) {
			got := subJSON(t, s, "$defs", tt.def, "properties", "setValues")
			assert.JSONEq(t,
				`{"anyOf":[{"items":`+tt.items+`,"type":"array"},{"type":"null"}],"default":null,"title":"Setvalues"}`,
				got)
		})
	}
}

func TestEntityFilterSchema(t *testing.T) {
	s := EntityFilterSchema(models.NewModel(DummyClass{}))

	expected := `{
		"$defs": {
			"EntityFilter": {
				"additionalProperties": false,
				"description": "Entity filter model.",
				"properties": {
					"fieldInPrimarySource": {"title": "Fieldinprimarysource", "type": "string"},
					"locationInPrimarySource": {
						"anyOf": [{"type": "string"}, {"type": "null"}],
						"default": null,
						"title": "Locationinprimarysource"
					},
					"examplesInPrimarySource": {
						"anyOf": [{"items": {"type": "string"}, "type": "array"}, {"type": "null"}],
						"default": null,
						"title": "Examplesinprimarysource"
					},
					"mappingRules": {
						"items": {"$ref": "#/$defs/EntityFilterRule"},
						"minItems": 1,
						"title": "Mappingrules",
						"type": "array"
					},
					"comment": {
						"anyOf": [{"type": "string"}, {"type": "null"}],
						"default": null,
						"title": "Comment"
					}
				},
				"required": ["fieldInPrimarySource", "mappingRules"],
				"title": "EntityFilter",
				"type": "object"
			},
			"EntityFilterRule": {
				"additionalProperties": false,
				"description": "Entity filter rule model.",
				"properties": {
					"forValues": {
						"anyOf": [{"items": {"type": "string"}, "type": "array"}, {"type": "null"}],
						"default": null,
						"title": "Forvalues"
					},
					"rule": {
						"anyOf": [{"type": "string"}, {"type": "null"}],
						"default": null,
						"title": "Rule"
					}
				},
				"title": "EntityFilterRule",
				"type": "object"
			}
		},
		"additionalProperties": false,
		"properties": {
			"DummyClass": {
				"default": null,
				"items": {"$ref": "#/$defs/EntityFilter"},
				"title": "Dummyclass",
				"type": "array"
			}
		},
		"title": "DummyClass",
		"type": "object"
	}`

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, expected, string(data))
}

func TestGeneratedSchemaParses(t *testing.T) {
	m, ok := models.Lookup("ExtractedPerson")
	require.True(t, ok)

	data, err := MarshalSchema(MappingSchema(m))
	require.NoError(t, err)

	node, err := schema.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, schema.KindObject, node.Kind)

	identifier := node.Property("identifier")
	require.NotNil(t, identifier)
	assert.Equal(t, schema.KindArray, identifier.Kind)
	require.NotNil(t, identifier.Items)
	assert.Equal(t, schema.KindObject, identifier.Items.Kind)

	rules := identifier.Items.Property("mappingRules")
	require.NotNil(t, rules)
	assert.Equal(t, []string{"forValues", "setValues", "rule"}, rules.Items.PropertyNames())
}

func TestWriteSchemas(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "mappings", "__schema__")
	ms := models.Extracted()

	written, err := WriteSchemas(dir, ms)
	require.NoError(t, err)
	assert.Len(t, written, 2*len(ms))

	data, err := os.ReadFile(filepath.Join(dir, "ExtractedPerson_MappingSchema.json"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{\n  \"$defs\": {\n"))
	assert.True(t, strings.HasSuffix(string(data), "}\n"))

	_, err = os.Stat(filepath.Join(dir, "ExtractedVariableGroup_EntityFilterSchema.json"))
	require.NoError(t, err)
}

func TestCatalog(t *testing.T) {
	c := Catalog(models.Extracted())
	assert.Len(t, c, 10)
	assert.Contains(t, c, "ExtractedOrganization_MappingSchema.json")
	assert.Contains(t, c, "ExtractedOrganization_EntityFilterSchema.json")
}

func TestLayout(t *testing.T) {
	m, ok := models.Lookup("ExtractedPerson")
	require.True(t, ok)

	assert.Equal(t, filepath.Join("assets", "mappings", "__schema__"), SchemaDir("assets"))
	assert.Equal(t, filepath.Join("assets", "mappings", "__template__"), TemplateDir("assets"))
	assert.Equal(t, "ExtractedPerson_EntityFilterSchema.json", SchemaFileName(m, KindEntityFilter))
	assert.Equal(t, "ExtractedPerson_MappingTemplate.yaml", TemplateFileName(m, KindMapping))
	assert.Equal(t, "filters", TemplateSubdir(KindEntityFilter))
	assert.Equal(t, "mappings", TemplateSubdir(KindMapping))
}

func TestKindOfSchema(t *testing.T) {
	tests := []struct {
		ref      string
		wantKind string
		wantOK   bool
	}{
		{"../../__schema__/ExtractedPerson_MappingSchema.json", KindMapping, true},
		{"ExtractedPerson_EntityFilterSchema.json", KindEntityFilter, true},
		{"/abs/ExtractedVariableGroup_MappingSchema.json", KindMapping, true},
		{"schema.json", "", false},
		{"MappingSchema.json", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			kind, ok := KindOfSchema(tt.ref)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKind, kind)
		})
	}
}
