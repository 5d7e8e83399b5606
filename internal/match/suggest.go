package match

import (
	"cmp"
	"slices"
)

// MinSuggestionScore is the lowest similarity a candidate needs to be suggested.
const MinSuggestionScore = 0.75

type scored struct {
	name  string
	score float64
}

// Suggest returns up to limit candidates that look like misspellings of name,
// best match first. Ties keep alphabetical order. A candidate equal to name is
// never suggested.
func Suggest(name string, candidates []string, limit int) []string {
	if limit <= 0 {
		return nil
	}

	var found []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		s := Score(name, c)
		if s >= MinSuggestionScore {
			found = append(found, scored{name: c, score: s})
		}
	}

	slices.SortFunc(found, func(a, b scored) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}

		return cmp.Compare(a.name, b.name)
	})

	out := make([]string, 0, min(limit, len(found)))
	for _, f := range found[:min(limit, len(found))] {
		out = append(out, f.name)
	}

	return out
}
