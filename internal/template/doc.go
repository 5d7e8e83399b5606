// Package template derives fill-in-the-blanks YAML templates from mapping
// and entity filter schemas.
//
// CreateTemplateFromSchema walks a schema tree: objects become ordered maps
// of their properties, arrays become a one element list of their item
// template and everything else, anyOf alternatives included, becomes null.
// AddDefaultValues then replaces the standard fields (identifier,
// hadPrimarySource, stableTargetId) with their canned rules.
//
// Generator writes one template per extracted model next to the generated
// schemas, each starting with the yaml-language-server schema directive.
package template
