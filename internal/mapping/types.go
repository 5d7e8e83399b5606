package mapping

import (
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"mex-common/internal/match"
)

// GenericRule is one mapping rule of a field.
type GenericRule struct {
	// ForValues restricts the rule to these source values.
	ForValues []string `yaml:"forValues"`
	// SetValues are the target values the rule produces.
	SetValues []any `yaml:"setValues"`
	// Rule describes the rule in prose.
	Rule *string `yaml:"rule"`
}

// EntityFilterRule is one rule of an entity filter.
type EntityFilterRule struct {
	ForValues []string `yaml:"forValues"`
	Rule      *string  `yaml:"rule"`
}

// Field describes where a target field is found in a primary source and
// which rules apply to it. R is GenericRule for mapping files and
// EntityFilterRule for entity filters.
type Field[R any] struct {
	FieldInPrimarySource    string   `yaml:"fieldInPrimarySource"`
	LocationInPrimarySource *string  `yaml:"locationInPrimarySource"`
	ExamplesInPrimarySource []string `yaml:"examplesInPrimarySource"`
	MappingRules            []R      `yaml:"mappingRules"`
	Comment                 *string  `yaml:"comment"`
}

// GenericField is a field of a mapping file.
type GenericField = Field[GenericRule]

// EntityFilter is a field of an entity filter file.
type EntityFilter = Field[EntityFilterRule]

var (
	ruleKeys       = []string{"forValues", "setValues", "rule"}
	filterRuleKeys = []string{"forValues", "rule"}
	fieldKeys      = []string{
		"fieldInPrimarySource",
		"locationInPrimarySource",
		"examplesInPrimarySource",
		"mappingRules",
		"comment",
	}
)

// UnmarshalYAML implements custom YAML unmarshaling for GenericRule.
// Unknown keys are rejected.
func (r *GenericRule) UnmarshalYAML(node *yaml.Node) error {
	err := checkKeys(node, "GenericRule", ruleKeys)
	if err != nil {
		return err
	}

	type plain GenericRule

	return node.Decode((*plain)(r))
}

// UnmarshalYAML implements custom YAML unmarshaling for EntityFilterRule.
// Unknown keys are rejected.
func (r *EntityFilterRule) UnmarshalYAML(node *yaml.Node) error {
	err := checkKeys(node, "EntityFilterRule", filterRuleKeys)
	if err != nil {
		return err
	}

	type plain EntityFilterRule

	return node.Decode((*plain)(r))
}

type plainField[R any] Field[R]

// UnmarshalYAML implements custom YAML unmarshaling for Field.
// Unknown keys are rejected; fieldInPrimarySource and at least one
// mapping rule are required.
func (f *Field[R]) UnmarshalYAML(node *yaml.Node) error {
	err := checkKeys(node, "field", fieldKeys)
	if err != nil {
		return err
	}

	err = node.Decode((*plainField[R])(f))
	if err != nil {
		return err
	}

	if v := valueNode(node, "fieldInPrimarySource"); v == nil || v.Tag == "!!null" {
		return fmt.Errorf("line %d: fieldInPrimarySource is required", node.Line)
	}

	if len(f.MappingRules) == 0 {
		return fmt.Errorf("line %d: mappingRules needs at least one rule", node.Line)
	}

	return nil
}

// checkKeys verifies that node is a mapping that only uses allowed keys.
func checkKeys(node *yaml.Node, what string, allowed []string) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: %s must be a mapping", node.Line, what)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if slices.Contains(allowed, key.Value) {
			continue
		}

		msg := fmt.Sprintf("line %d: field %q not allowed in %s", key.Line, key.Value, what)
		if hints := match.Suggest(key.Value, allowed, 1); len(hints) > 0 {
			msg += fmt.Sprintf(" (did you mean %q?)", hints[0])
		}

		return fmt.Errorf("%s; allowed: %s", msg, strings.Join(allowed, ", "))
	}

	return nil
}

func valueNode(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}

	return nil
}
