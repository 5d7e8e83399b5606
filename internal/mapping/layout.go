package mapping

import (
	"path/filepath"
	"strings"

	"mex-common/internal/models"
)

// Document kinds.
const (
	KindMapping      = "Mapping"
	KindEntityFilter = "EntityFilter"
)

// SchemaDir returns the directory holding generated schemas.
func SchemaDir(assetsDir string) string {
	return filepath.Join(assetsDir, "mappings", "__schema__")
}

// TemplateDir returns the directory holding generated templates.
func TemplateDir(assetsDir string) string {
	return filepath.Join(assetsDir, "mappings", "__template__")
}

// SchemaFileName returns e.g. "ExtractedPerson_MappingSchema.json".
func SchemaFileName(m models.Model, kind string) string {
	return m.Name + "_" + kind + "Schema.json"
}

// KindOfSchema returns the document kind of a generated schema from its file
// name, e.g. KindMapping for ".../ExtractedPerson_MappingSchema.json".
func KindOfSchema(schemaRef string) (string, bool) {
	name := strings.TrimSuffix(filepath.Base(schemaRef), ".json")

	for _, kind := range []string{KindEntityFilter, KindMapping} {
		if strings.HasSuffix(name, "_"+kind+"Schema") {
			return kind, true
		}
	}

	return "", false
}

// TemplateFileName returns e.g. "ExtractedPerson_MappingTemplate.yaml".
func TemplateFileName(m models.Model, kind string) string {
	return m.Name + "_" + kind + "Template.yaml"
}

// TemplateSubdir returns the template subdirectory for a document kind.
func TemplateSubdir(kind string) string {
	if kind == KindEntityFilter {
		return "filters"
	}

	return "mappings"
}

// TemplateSchemaRef is the schema reference written into template headers,
// relative to <assets>/mappings/__template__/<subdir>/.
func TemplateSchemaRef(schemaFile string) string {
	return "../../__schema__/" + schemaFile
}
