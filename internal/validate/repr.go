package validate

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// repr renders a JSON value in the notation violation messages use for
// instance values: None, True, 'text', [1, 'x'], {'k': None}.
func repr(v any) string {
	var b strings.Builder

	writeRepr(&b, v)

	return b.String()
}

func writeRepr(b *strings.Builder, v any) {
	switch v := v.(type) {
	case nil:
		b.WriteString("None")
	case bool:
		if v {
			b.WriteString("True")
		} else {
			b.WriteString("False")
		}
	case string:
		b.WriteString(quote(v))
	case json.Number:
		b.WriteString(v.String())
	case []any:
		b.WriteByte('[')

		for i, item := range v {
			if i > 0 {
				b.WriteString(", ")
			}

			writeRepr(b, item)
		}

		b.WriteByte(']')
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}

		slices.Sort(keys)

		b.WriteByte('{')

		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}

			b.WriteString(quote(k))
			b.WriteString(": ")
			writeRepr(b, v[k])
		}

		b.WriteByte('}')
	case float64:
		b.WriteString(formatFloat(v))
	default:
		fmt.Fprint(b, v)
	}
}

// quote wraps s in single quotes unless it contains a single quote and no
// double quote.
func quote(s string) string {
	q := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}

	var b strings.Builder

	b.WriteByte(q)

	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == rune(q):
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		default:
			b.WriteRune(r)
		}
	}

	b.WriteByte(q)

	return b.String()
}

func reprList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = quote(s)
	}

	return strings.Join(quoted, ", ")
}
