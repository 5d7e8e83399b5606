package template

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"

	"mex-common/internal/mapping"
	"mex-common/internal/models"
	"mex-common/internal/ordered"
	"mex-common/internal/schema"
)

// ErrSchemaMissing is returned when a template is requested for a schema
// that has not been generated yet.
var ErrSchemaMissing = errors.New("schema does not exist")

// Generator writes templates for a set of extracted models.
type Generator struct {
	assetsDir string
	models    []models.Model
	logger    *slog.Logger
	debug     bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for progress and debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithModels replaces the default model list (models.Extracted).
func WithModels(ms []models.Model) Option {
	return func(g *Generator) {
		g.models = ms
	}
}

// WithDebug logs a dump of every created template at debug level.
func WithDebug(debug bool) Option {
	return func(g *Generator) {
		g.debug = debug
	}
}

// NewGenerator returns a Generator working below assetsDir.
func NewGenerator(assetsDir string, opts ...Option) *Generator {
	g := &Generator{
		assetsDir: assetsDir,
		models:    models.Extracted(),
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Run creates the templates of one document kind (mapping.KindMapping or
// mapping.KindEntityFilter) for every model and returns the written paths.
// Mapping templates get the standard field defaults.
func (g *Generator) Run(kind string) ([]string, error) {
	schemaDir := mapping.SchemaDir(g.assetsDir)
	templateDir := filepath.Join(mapping.TemplateDir(g.assetsDir), mapping.TemplateSubdir(kind))

	var written []string

	for _, m := range g.models {
		schemaPath := filepath.Join(schemaDir, mapping.SchemaFileName(m, kind))
		templatePath := filepath.Join(templateDir, mapping.TemplateFileName(m, kind))

		_, err := os.Stat(schemaPath)
		if errors.Is(err, os.ErrNotExist) {
			return written, fmt.Errorf("%w: expected %s, generate the schemas before the templates",
				ErrSchemaMissing, schemaPath)
		}

		err = g.generateFile(schemaPath, templatePath, kind == mapping.KindMapping)
		if err != nil {
			return written, err
		}

		g.logger.Info("created template", "schema", schemaPath, "template", templatePath)

		written = append(written, templatePath)
	}

	return written, nil
}

// generateFile creates the template of the schema at schemaPath and writes it
// to templatePath, creating parent directories as needed.
func (g *Generator) generateFile(schemaPath, templatePath string, defaults bool) error {
	node, err := schema.Load(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}

	tpl := CreateTemplateFromSchema(node)

	if defaults {
		if m, ok := tpl.(ordered.Map); ok {
			tpl = AddDefaultValues(m)
		}
	}

	if g.debug {
		g.logger.Debug("template", "schema", schemaPath, "dump", spew.Sdump(tpl))
	}

	data, err := Render(tpl, filepath.Base(schemaPath))
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(templatePath), 0o755)
	if err != nil {
		return fmt.Errorf("failed to create template directory: %w", err)
	}

	err = os.WriteFile(templatePath, data, 0o644)
	if err != nil {
		return fmt.Errorf("failed to write template %s: %w", templatePath, err)
	}

	return nil
}
