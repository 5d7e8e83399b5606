package mapping

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaPathFromReader(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		want   string
		wantOK bool
	}{
		{
			name:   "first line",
			body:   "# yaml-language-server: $schema=../../shoobidoo.json\n",
			want:   "../../shoobidoo.json",
			wantOK: true,
		},
		{
			name:   "not in first line",
			body:   "asd\n# yaml-language-server: $schema=schema/not/in/first/line.json\n",
			want:   "schema/not/in/first/line.json",
			wantOK: true,
		},
		{
			name: "no directive",
			body: "blablabla",
		},
		{
			name:   "trailing text is ignored",
			body:   "# yaml-language-server: $schema=a.json  # comment\n",
			want:   "a.json",
			wantOK: true,
		},
		{
			name: "beyond the header",
			body: strings.Repeat("x: 1\n", HeaderLines) + "# yaml-language-server: $schema=late.json\n",
		},
		{
			name:   "last header line",
			body:   strings.Repeat("x: 1\n", HeaderLines-1) + "# yaml-language-server: $schema=last.json\n",
			want:   "last.json",
			wantOK: true,
		},
		{
			name: "indented directive",
			body: "  # yaml-language-server: $schema=a.json\n",
		},
		{
			name:   "after a very long line",
			body:   "# " + strings.Repeat("x", 70000) + "\n# yaml-language-server: $schema=s.json\n",
			want:   "s.json",
			wantOK: true,
		},
		{
			name:   "path with spaces",
			body:   "# yaml-language-server: $schema=../my schemas/Person Schema.json\n",
			want:   "../my schemas/Person Schema.json",
			wantOK: true,
		},
		{
			name:   "non json reference",
			body:   "# yaml-language-server: $schema=schema.yaml # yaml schema\n",
			want:   "schema.yaml",
			wantOK: true,
		},
		{
			name:   "crlf line endings",
			body:   "a: 1\r\n# yaml-language-server: $schema=win.json\r\n",
			want:   "win.json",
			wantOK: true,
		},
		{
			name:   "no trailing newline",
			body:   "# yaml-language-server: $schema=last.json",
			want:   "last.json",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SchemaPathFromReader(strings.NewReader(tt.body))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	ref := TemplateSchemaRef("ExtractedPerson_MappingSchema.json")
	assert.Equal(t, "../../__schema__/ExtractedPerson_MappingSchema.json", ref)

	got, ok := SchemaPathFromReader(strings.NewReader(Header(ref) + "\n\nidentifier: null\n"))
	assert.True(t, ok)
	assert.Equal(t, ref, got)
}
