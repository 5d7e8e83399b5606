package template

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"mex-common/internal/mapping"
)

// Render encodes tpl as YAML preceded by the schema directive pointing at
// schemaFile in the sibling __schema__ directory and a blank line.
func Render(tpl any, schemaFile string) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(mapping.Header(mapping.TemplateSchemaRef(schemaFile)))
	buf.WriteString("\n\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	err := enc.Encode(tpl)
	if err != nil {
		return nil, fmt.Errorf("failed to encode template: %w", err)
	}

	err = enc.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to encode template: %w", err)
	}

	return buf.Bytes(), nil
}
