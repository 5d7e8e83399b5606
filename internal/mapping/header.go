package mapping

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

// HeaderLines is the number of leading lines searched for the schema directive.
const HeaderLines = 10

// SchemaDirective prefixes the comment that associates a document with its schema.
const SchemaDirective = "# yaml-language-server: $schema="

// directivePattern captures up to the last ".json" on the line, so paths with
// spaces survive, and falls back to the first whitespace-free token.
var directivePattern = regexp.MustCompile(`^# yaml-language-server: \$schema=(.*\.json|\S+)`)

// Header returns the directive line for schemaRef, without a trailing newline.
func Header(schemaRef string) string {
	return SchemaDirective + schemaRef
}

// SchemaPathFromReader scans the first HeaderLines lines of r for the schema
// directive and returns the referenced path. Lines of any length are read.
// It returns false when no directive is found or r cannot be read.
func SchemaPathFromReader(r io.Reader) (string, bool) {
	br := bufio.NewReader(r)

	for range HeaderLines {
		line, err := br.ReadString('\n')

		m := directivePattern.FindStringSubmatch(strings.TrimRight(line, "\r\n"))
		if m != nil {
			return m[1], true
		}

		if err != nil {
			break
		}
	}

	return "", false
}
