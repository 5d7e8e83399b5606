package mapping

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"mex-common/internal/common"
	"mex-common/internal/models"
	"mex-common/internal/ordered"
)

func ref(def string) ordered.Map {
	return ordered.Map{{Key: "$ref", Value: "#/$defs/" + def}}
}

func nullable(title string, schema ordered.Map) ordered.Map {
	return ordered.Map{
		{Key: "anyOf", Value: []any{schema, ordered.Map{{Key: "type", Value: "null"}}}},
		{Key: "default", Value: nil},
		{Key: "title", Value: title},
	}
}

func arrayOf(items ordered.Map) ordered.Map {
	return ordered.Map{
		{Key: "items", Value: items},
		{Key: "type", Value: "array"},
	}
}

func stringType() ordered.Map {
	return ordered.Map{{Key: "type", Value: "string"}}
}

// fieldRecord is the schema of GenericField or EntityFilter, with the
// mapping rules pointing at ruleDef.
func fieldRecord(title, description, ruleDef string) ordered.Map {
	return ordered.Map{
		{Key: "additionalProperties", Value: false},
		{Key: "description", Value: description},
		{Key: "properties", Value: ordered.Map{
			{Key: "fieldInPrimarySource", Value: ordered.Map{
				{Key: "title", Value: "Fieldinprimarysource"},
				{Key: "type", Value: "string"},
			}},
			{Key: "locationInPrimarySource", Value: nullable("Locationinprimarysource", stringType())},
			{Key: "examplesInPrimarySource", Value: nullable("Examplesinprimarysource", arrayOf(stringType()))},
			{Key: "mappingRules", Value: ordered.Map{
				{Key: "items", Value: ref(ruleDef)},
				{Key: "minItems", Value: 1},
				{Key: "title", Value: "Mappingrules"},
				{Key: "type", Value: "array"},
			}},
			{Key: "comment", Value: nullable("Comment", stringType())},
		}},
		{Key: "required", Value: []any{"fieldInPrimarySource", "mappingRules"}},
		{Key: "title", Value: title},
		{Key: "type", Value: "object"},
	}
}

// ruleRecord is the schema of GenericRule (setValues != nil) or
// EntityFilterRule (setValues == nil).
func ruleRecord(title, description string, setValues ordered.Map) ordered.Map {
	props := ordered.Map{
		{Key: "forValues", Value: nullable("Forvalues", arrayOf(stringType()))},
	}
	if setValues != nil {
		props.Set("setValues", nullable("Setvalues", arrayOf(setValues)))
	}

	props.Set("rule", nullable("Rule", stringType()))

	return ordered.Map{
		{Key: "additionalProperties", Value: false},
		{Key: "description", Value: description},
		{Key: "properties", Value: props},
		{Key: "title", Value: title},
		{Key: "type", Value: "object"},
	}
}

// setValuesItem is the schema of one entry of setValues. Optional single
// values may also be null.
func setValuesItem(f models.Field) ordered.Map {
	if f.List || f.Required {
		return f.Value.Clone()
	}

	return ordered.Map{
		{Key: "anyOf", Value: []any{f.Value.Clone(), ordered.Map{{Key: "type", Value: "null"}}}},
	}
}

// MappingSchema returns the JSON Schema of mapping files for model m.
//
// Every model field becomes an array of <Field>FieldsInPrimarySource
// records whose mapping rules are <Field>MappingRule records. Required
// model fields are required in the mapping file as well.
func MappingSchema(m models.Model) ordered.Map {
	var (
		defs     ordered.Map
		props    ordered.Map
		required []any
	)

	for _, f := range m.Fields() {
		name := common.Capitalize(f.Name)
		fieldDef := name + "FieldsInPrimarySource"
		ruleDef := name + "MappingRule"

		defs.Set(fieldDef, fieldRecord(
			fieldDef,
			fmt.Sprintf("Mapping schema for %s fields in primary source.", name),
			ruleDef,
		))
		defs.Set(ruleDef, ruleRecord(
			ruleDef,
			fmt.Sprintf("Mapping rule schema of field %s.", name),
			setValuesItem(f),
		))

		prop := ordered.Map{}
		if !f.Required {
			prop.Set("default", nil)
		}

		prop.Set("items", ref(fieldDef))
		prop.Set("title", name)
		prop.Set("type", "array")
		props.Set(f.Name, prop)

		if f.Required {
			required = append(required, f.Name)
		}
	}

	out := ordered.Map{
		{Key: "$defs", Value: sortedDefs(defs)},
		{Key: "additionalProperties", Value: false},
		{Key: "description", Value: "Schema for mapping the properties of the entity type " + m.Name + "."},
		{Key: "properties", Value: props},
	}
	if len(required) > 0 {
		out.Set("required", required)
	}

	out.Set("title", m.Name)
	out.Set("type", "object")

	return out
}

// EntityFilterSchema returns the JSON Schema of entity filter files for model m.
func EntityFilterSchema(m models.Model) ordered.Map {
	defs := ordered.Map{
		{Key: "EntityFilter", Value: fieldRecord("EntityFilter", "Entity filter model.", "EntityFilterRule")},
		{Key: "EntityFilterRule", Value: ruleRecord("EntityFilterRule", "Entity filter rule model.", nil)},
	}

	return ordered.Map{
		{Key: "$defs", Value: defs},
		{Key: "additionalProperties", Value: false},
		{Key: "properties", Value: ordered.Map{
			{Key: m.Name, Value: ordered.Map{
				{Key: "default", Value: nil},
				{Key: "items", Value: ref("EntityFilter")},
				{Key: "title", Value: common.Capitalize(m.Name)},
				{Key: "type", Value: "array"},
			}},
		}},
		{Key: "title", Value: m.Name},
		{Key: "type", Value: "object"},
	}
}

func sortedDefs(defs ordered.Map) ordered.Map {
	slices.SortFunc(defs, func(a, b ordered.Pair) int {
		return cmp.Compare(a.Key, b.Key)
	})

	return defs
}

// Catalog returns every generated schema by file name.
func Catalog(ms []models.Model) map[string]ordered.Map {
	out := make(map[string]ordered.Map, 2*len(ms))
	for _, m := range ms {
		out[SchemaFileName(m, KindMapping)] = MappingSchema(m)
		out[SchemaFileName(m, KindEntityFilter)] = EntityFilterSchema(m)
	}

	return out
}

// MarshalSchema encodes a schema as JSON indented by two spaces with a
// trailing newline.
func MarshalSchema(s ordered.Map) ([]byte, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode schema: %w", err)
	}

	var buf bytes.Buffer

	err = json.Indent(&buf, raw, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to indent schema: %w", err)
	}

	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

// WriteSchemas writes the mapping and entity filter schema of every model
// into dir and returns the written paths.
func WriteSchemas(dir string, ms []models.Model) ([]string, error) {
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return nil, fmt.Errorf("failed to create schema directory %s: %w", dir, err)
	}

	var written []string

	for _, m := range ms {
		for _, kind := range []string{KindMapping, KindEntityFilter} {
			s := MappingSchema(m)
			if kind == KindEntityFilter {
				s = EntityFilterSchema(m)
			}

			data, err := MarshalSchema(s)
			if err != nil {
				return written, fmt.Errorf("failed to encode %s schema of %s: %w", kind, m.Name, err)
			}

			path := filepath.Join(dir, SchemaFileName(m, kind))

			err = os.WriteFile(path, data, 0o644)
			if err != nil {
				return written, fmt.Errorf("failed to write schema %s: %w", path, err)
			}

			written = append(written, path)
		}
	}

	return written, nil
}
