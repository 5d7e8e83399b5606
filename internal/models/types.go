package models

import (
	"mex-common/internal/ordered"
)

// Patterns shared by the value types.
const (
	IdentifierPattern = `^[a-zA-Z0-9]{14,22}$`
	EmailPattern      = `^[^@ \t\r\n]+@[^@ \t\r\n]+\.[^@ \t\r\n]+$`
	URLPattern        = `^(?:(?:[^:/?#]+):)?(?://(?:[^/?#]*))?(?:[^?#]*)(?:\?(?:[^#]*))?(?:#(?:.*))?$`
	OrcidPattern      = `^https://orcid\.org/[-X0-9]{9,21}$`
	IsniPattern       = `^https://isni\.org/isni/[X0-9]{16}$`
	RorPattern        = `^https://ror\.org/[a-z0-9]{9}$`
	WikidataPattern   = `^https://www\.wikidata\.org/entity/[PQ0-9]{2,64}$`
)

// SchemaProvider is implemented by value types that know their JSON Schema.
type SchemaProvider interface {
	JSONSchema() ordered.Map
}

func identifierSchema(title string) ordered.Map {
	return ordered.Map{
		{Key: "pattern", Value: IdentifierPattern},
		{Key: "title", Value: title},
		{Key: "type", Value: "string"},
	}
}

func uriSchema(title, pattern string) ordered.Map {
	return ordered.Map{
		{Key: "format", Value: "uri"},
		{Key: "pattern", Value: pattern},
		{Key: "title", Value: title},
		{Key: "type", Value: "string"},
	}
}

func languageSchema() ordered.Map {
	return ordered.Map{
		{Key: "enum", Value: []any{"de", "en", nil}},
		{Key: "title", Value: "Language"},
		{Key: "type", Value: []any{"string", "null"}},
	}
}

// Identifier types. Each one is a string matching IdentifierPattern.
type (
	ExtractedOrganizationIdentifier       string
	ExtractedOrganizationalUnitIdentifier string
	ExtractedPersonIdentifier             string
	ExtractedPrimarySourceIdentifier      string
	ExtractedVariableGroupIdentifier      string
	MergedContactPointIdentifier          string
	MergedOrganizationIdentifier          string
	MergedOrganizationalUnitIdentifier    string
	MergedPersonIdentifier                string
	MergedPrimarySourceIdentifier         string
	MergedResourceIdentifier              string
	MergedVariableGroupIdentifier         string
)

func (ExtractedOrganizationIdentifier) JSONSchema() ordered.Map {
	return identifierSchema("ExtractedOrganizationIdentifier")
}

func (ExtractedOrganizationalUnitIdentifier) JSONSchema() ordered.Map {
	return identifierSchema("ExtractedOrganizationalUnitIdentifier")
}

func (ExtractedPersonIdentifier) JSONSchema() ordered.Map {
	return identifierSchema("ExtractedPersonIdentifier")
}

func (ExtractedPrimarySourceIdentifier) JSONSchema() ordered.Map {
	return identifierSchema("ExtractedPrimarySourceIdentifier")
}

func (ExtractedVariableGroupIdentifier) JSONSchema() ordered.Map {
	return identifierSchema("ExtractedVariableGroupIdentifier")
}

func (MergedContactPointIdentifier) JSONSchema() ordered.Map {
	return identifierSchema("MergedContactPointIdentifier")
}

func (MergedOrganizationIdentifier) JSONSchema() ordered.Map {
	return identifierSchema("MergedOrganizationIdentifier")
}

func (MergedOrganizationalUnitIdentifier) JSONSchema() ordered.Map {
	return identifierSchema("MergedOrganizationalUnitIdentifier")
}

func (MergedPersonIdentifier) JSONSchema() ordered.Map {
	return identifierSchema("MergedPersonIdentifier")
}

func (MergedPrimarySourceIdentifier) JSONSchema() ordered.Map {
	return identifierSchema("MergedPrimarySourceIdentifier")
}

func (MergedResourceIdentifier) JSONSchema() ordered.Map {
	return identifierSchema("MergedResourceIdentifier")
}

func (MergedVariableGroupIdentifier) JSONSchema() ordered.Map {
	return identifierSchema("MergedVariableGroupIdentifier")
}

// Email is an email address.
type Email string

func (Email) JSONSchema() ordered.Map {
	return ordered.Map{
		{Key: "examples", Value: []any{"info@rki.de"}},
		{Key: "format", Value: "email"},
		{Key: "pattern", Value: EmailPattern},
		{Key: "title", Value: "Email"},
		{Key: "type", Value: "string"},
	}
}

// OrcidID is an ORCID profile URL.
type OrcidID string

func (OrcidID) JSONSchema() ordered.Map {
	return uriSchema("OrcidId", OrcidPattern)
}

// IsniID is an ISNI profile URL.
type IsniID string

func (IsniID) JSONSchema() ordered.Map {
	return uriSchema("IsniId", IsniPattern)
}

// RorID is a Research Organization Registry URL.
type RorID string

func (RorID) JSONSchema() ordered.Map {
	return uriSchema("RorId", RorPattern)
}

// WikidataID is a Wikidata entity URL.
type WikidataID string

func (WikidataID) JSONSchema() ordered.Map {
	return uriSchema("WikidataId", WikidataPattern)
}

// Language is the language tag of a Text or Link.
type Language string

const (
	LanguageGerman  Language = "de"
	LanguageEnglish Language = "en"
)

// Text is a string value with an optional language.
type Text struct {
	Value    string   `json:"value"`
	Language Language `json:"language,omitempty"`
}

func (Text) JSONSchema() ordered.Map {
	return ordered.Map{
		{Key: "properties", Value: ordered.Map{
			{Key: "value", Value: ordered.Map{
				{Key: "minLength", Value: 1},
				{Key: "title", Value: "Value"},
				{Key: "type", Value: "string"},
			}},
			{Key: "language", Value: languageSchema()},
		}},
		{Key: "required", Value: []any{"value"}},
		{Key: "title", Value: "Text"},
		{Key: "type", Value: "object"},
	}
}

// Link is a URL with an optional title and language.
type Link struct {
	Language Language `json:"language,omitempty"`
	Title    string   `json:"title,omitempty"`
	URL      string   `json:"url"`
}

func (Link) JSONSchema() ordered.Map {
	return ordered.Map{
		{Key: "properties", Value: ordered.Map{
			{Key: "language", Value: languageSchema()},
			{Key: "title", Value: ordered.Map{
				{Key: "title", Value: "Title"},
				{Key: "type", Value: []any{"string", "null"}},
			}},
			{Key: "url", Value: ordered.Map{
				{Key: "format", Value: "uri"},
				{Key: "minLength", Value: 1},
				{Key: "pattern", Value: URLPattern},
				{Key: "title", Value: "Url"},
				{Key: "type", Value: "string"},
			}},
		}},
		{Key: "required", Value: []any{"url"}},
		{Key: "title", Value: "Link"},
		{Key: "type", Value: "object"},
	}
}
