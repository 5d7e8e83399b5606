package template

import (
	"mex-common/internal/ordered"
)

// NotApplicable is the fieldInPrimarySource of standard fields.
const NotApplicable = "n/a"

var standardRules = ordered.Map{
	{Key: "identifier", Value: "Assign identifier."},
	{Key: "hadPrimarySource", Value: "Assign 'stable target id' of primary source with identifier '...' " +
		"in /raw-data/primary-sources/primary-sources.json."},
	{Key: "stableTargetId", Value: "Assign 'stable target id' of merged item."},
}

// StandardFields returns the names of the fields that get canned defaults.
func StandardFields() []string {
	return standardRules.Keys()
}

// DefaultEntry returns a fresh copy of the canned entry for a standard field.
func DefaultEntry(field string) (ordered.Map, bool) {
	rule, ok := standardRules.Get(field)
	if !ok {
		return nil, false
	}

	return ordered.Map{
		{Key: "fieldInPrimarySource", Value: NotApplicable},
		{Key: "mappingRules", Value: []any{
			ordered.Map{{Key: "rule", Value: rule}},
		}},
	}, true
}

// AddDefaultValues returns a copy of tpl in which every standard field holds
// a one element list with its canned entry. Other fields keep their values.
// tpl itself is not modified.
func AddDefaultValues(tpl ordered.Map) ordered.Map {
	out := make(ordered.Map, len(tpl))
	for i, p := range tpl {
		out[i] = p

		if entry, ok := DefaultEntry(p.Key); ok {
			out[i].Value = []any{entry}
		}
	}

	return out
}
