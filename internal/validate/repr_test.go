package validate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepr(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"none", nil, "None"},
		{"true", true, "True"},
		{"false", false, "False"},
		{"integer", json.Number("1"), "1"},
		{"float", 2.0, "2.0"},
		{"string", "foo", "'foo'"},
		{"single quote", "it's", `"it's"`},
		{"both quotes", `it's "x"`, `'it\'s "x"'`},
		{"escapes", "a\tb\nc\\", `'a\tb\nc\\'`},
		{"control", "\x01", `'\x01'`},
		{"unicode", "Straße", "'Straße'"},
		{"empty list", []any{}, "[]"},
		{"list", []any{json.Number("1"), "x", nil}, "[1, 'x', None]"},
		{"dict", map[string]any{"b": true, "a": []any{}}, "{'a': [], 'b': True}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repr(tt.in))
		})
	}
}

func TestReprList(t *testing.T) {
	assert.Equal(t, "'a', 'b'", reprList([]string{"a", "b"}))
	assert.Empty(t, reprList(nil))
}
