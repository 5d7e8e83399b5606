package models

import (
	"reflect"
	"slices"
	"strings"

	"mex-common/internal/ordered"
)

// Field describes one field of an extracted model.
type Field struct {
	// Name is the JSON name of the field.
	Name string
	// List is true when the field holds multiple values.
	List bool
	// Required is true when every extracted item must set the field.
	Required bool
	// Value is the JSON Schema of a single value of the field.
	Value ordered.Map
}

// Model is a registered extracted model type.
type Model struct {
	Name string
	typ  reflect.Type
}

// NewModel registers the struct type of v as a model.
func NewModel(v any) Model {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return Model{Name: t.Name(), typ: t}
}

// BaseName returns the model name without the "Extracted" prefix.
func (m Model) BaseName() string {
	return strings.TrimPrefix(m.Name, "Extracted")
}

// Fields returns the model fields in declaration order. Fields of embedded
// structs come first, in the position of the embedding.
func (m Model) Fields() []Field {
	if m.typ == nil || m.typ.Kind() != reflect.Struct {
		return nil
	}

	return structFields(m.typ)
}

// Field returns the field with the given JSON name.
func (m Model) Field(name string) (Field, bool) {
	for _, f := range m.Fields() {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}

func structFields(t reflect.Type) []Field {
	var fields []Field

	for i := range t.NumField() {
		sf := t.Field(i)

		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			fields = append(fields, structFields(sf.Type)...)
			continue
		}

		if !sf.IsExported() {
			continue
		}

		name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}

		if name == "" {
			name = sf.Name
		}

		ft := sf.Type
		list := false

		switch ft.Kind() {
		case reflect.Slice:
			list = true
			ft = ft.Elem()
		case reflect.Pointer:
			ft = ft.Elem()
		default:
		}

		fields = append(fields, Field{
			Name:     name,
			List:     list,
			Required: slices.Contains(strings.Split(sf.Tag.Get("mex"), ","), "required"),
			Value:    valueSchema(ft),
		})
	}

	return fields
}

var providerType = reflect.TypeFor[SchemaProvider]()

func valueSchema(t reflect.Type) ordered.Map {
	if t.Implements(providerType) {
		provider, _ := reflect.Zero(t).Interface().(SchemaProvider)
		return provider.JSONSchema()
	}

	switch t.Kind() {
	case reflect.String:
		return ordered.Map{{Key: "type", Value: "string"}}
	case reflect.Bool:
		return ordered.Map{{Key: "type", Value: "boolean"}}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return ordered.Map{{Key: "type", Value: "integer"}}
	case reflect.Float32, reflect.Float64:
		return ordered.Map{{Key: "type", Value: "number"}}
	default:
		return ordered.Map{}
	}
}

var extracted = []Model{
	NewModel(ExtractedOrganization{}),
	NewModel(ExtractedOrganizationalUnit{}),
	NewModel(ExtractedPerson{}),
	NewModel(ExtractedPrimarySource{}),
	NewModel(ExtractedVariableGroup{}),
}

// Extracted returns all registered extracted models.
func Extracted() []Model {
	return slices.Clone(extracted)
}

// Lookup returns the extracted model with the given name.
func Lookup(name string) (Model, bool) {
	for _, m := range extracted {
		if m.Name == name {
			return m, true
		}
	}

	return Model{}, false
}
