package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	fields := []string{
		"fieldInPrimarySource",
		"locationInPrimarySource",
		"examplesInPrimarySource",
		"mappingRules",
		"comment",
	}

	tests := []struct {
		name  string
		input string
		limit int
		want  []string
	}{
		{"typo", "mappingRule", 3, []string{"mappingRules"}},
		{"case and separators", "field_in_primary_source", 3, []string{"fieldInPrimarySource"}},
		{"nothing close", "foo", 3, []string{}},
		{"exact match is not suggested", "comment", 3, []string{}},
		{"zero limit", "mappingRule", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Suggest(tt.input, fields, tt.limit))
		})
	}
}

func TestSuggestOrdersByScore(t *testing.T) {
	got := Suggest("identifer", []string{"identifiers", "identifier", "identity"}, 2)
	assert.Equal(t, []string{"identifier", "identifiers"}, got)
}
