package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"hello", "hello", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"a", "ab", 1},
		{"abc", "ab", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"Hello", "hello", 1},
		{"identifer", "identifier", 1},
		{"mappingrule", "mappingrules", 1},
		{"über", "uber", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a), "symmetry")
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 0.0001)
	assert.InDelta(t, 1.0, Similarity("abc", "abc"), 0.0001)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 0.0001)
	assert.InDelta(t, 0.9, Similarity("identifer", "identifier"), 0.0001)
}

func TestScoreNormalizes(t *testing.T) {
	assert.InDelta(t, 1.0, Score("hadPrimarySource", "had_primary_source"), 0.0001)
	assert.InDelta(t, 1.0, Score("StableTargetId", "stabletargetid"), 0.0001)
}
