package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"mex-common/internal/diagnostic"
	"mex-common/internal/mapping"
	"mex-common/internal/ordered"
	"mex-common/internal/schema"
)

// catalogBase is the base URL under which catalog schemas are registered.
const catalogBase = "https://mex.invalid/schemas/"

// ErrSchemaNotFound is returned when a schema reference points nowhere.
var ErrSchemaNotFound = errors.New("schema not found")

// Validator validates mapping files against their referenced schemas.
type Validator struct {
	logger  *slog.Logger
	catalog map[string]ordered.Map
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger that receives per-file results. The default is
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		v.logger = logger
	}
}

// WithSchemaCatalog registers schemas by file name. A reference that does not
// exist on disk relative to the mapping file is looked up here by its base name.
func WithSchemaCatalog(catalog map[string]ordered.Map) Option {
	return func(v *Validator) {
		v.catalog = catalog
	}
}

// New returns a Validator configured by opts.
func New(opts ...Option) *Validator {
	v := &Validator{logger: slog.Default()}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// ValidateMappings validates every file in paths and returns the process
// exit code: 0 when all files are valid, 1 otherwise.
func ValidateMappings(paths []string, opts ...Option) int {
	return New(opts...).ValidateFiles(paths).ExitCode()
}

// ValidateFiles validates the files in the given order and logs the outcome
// of each one.
func (v *Validator) ValidateFiles(paths []string) *Report {
	v.logger.Info("Validating mappings...")

	report := &Report{}

	for _, path := range paths {
		res := v.ValidateFile(path)
		report.Files = append(report.Files, res)

		for _, d := range res.Diagnostics.Warnings {
			v.logger.Warn(d.Location(), "file", path, "code", d.Code, "severity", d.Severity)
		}

		for _, d := range res.Diagnostics.Errors {
			v.logger.Info(d.Location(), "file", path, "code", d.Code, "severity", d.Severity)

			if len(d.Suggestions) > 0 {
				v.logger.Info("did you mean "+strings.Join(d.Suggestions, ", ")+"?", "file", path, "path", d.Path)
			}
		}

		if res.Passed() {
			if res.Fields != nil {
				v.logger.Debug("mapped fields", "file", path, "fields", res.Fields)
			}

			v.logger.Info(path + " PASS")
		} else {
			v.logger.Info(path + " FAIL")
		}
	}

	if failed := report.Failed(); len(failed) > 0 {
		v.logger.Info("The following mappings did not validate:\n" + strings.Join(failed, "\n"))
	}

	return report
}

// ValidateFile validates a single mapping file. Problems are reported as
// diagnostics, never as errors.
func (v *Validator) ValidateFile(path string) FileResult {
	res := FileResult{Path: path}
	diags := &res.Diagnostics

	data, err := os.ReadFile(path)
	if err != nil {
		diags.AddError(diagnostic.CodeMappingUnreadable, fmt.Sprintf("failed to read mapping: %v", err), path, "")
		return res
	}

	ref, ok := mapping.SchemaPathFromReader(bytes.NewReader(data))
	if !ok {
		diags.AddError(diagnostic.CodeSchemaReferenceMissing, fmt.Sprintf("could not find schema in `%s`", path), path, "")
		return res
	}

	res.SchemaRef = ref

	sch, root, fromCatalog, err := v.compile(path, ref)
	if err != nil {
		diags.AddError(diagnostic.CodeSchemaUnresolvable, err.Error(), path, "")
		return res
	}

	if fromCatalog {
		diags.AddWarning(diagnostic.CodeSchemaFromCatalog,
			fmt.Sprintf("schema %s not found next to the mapping, using the built-in %s", ref, filepath.Base(ref)),
			path, "")
	}

	instance, err := decodeMapping(data)
	if err != nil {
		diags.AddError(diagnostic.CodeMappingUnparsable, err.Error(), path, "")
		return res
	}

	err = sch.Validate(instance)
	if err == nil {
		v.checkDocument(&res, ref, data)
		return res
	}

	for _, viol := range violations(err, instance, root) {
		diags.Add(diagnostic.Diagnostic{
			Severity:    diagnostic.DiagnosticError,
			Code:        diagnostic.CodeSchemaViolation,
			Message:     viol.Message,
			File:        path,
			Path:        viol.Path,
			Suggestions: viol.Suggestions,
		})
	}

	return res
}

// checkDocument decodes a schema-valid mapping or entity filter into its
// record types and records the mapped field names. Documents of other
// schemas are left alone.
func (v *Validator) checkDocument(res *FileResult, ref string, data []byte) {
	kind, ok := mapping.KindOfSchema(ref)
	if !ok {
		return
	}

	var (
		names []string
		err   error
	)

	if kind == mapping.KindEntityFilter {
		var doc *mapping.Filter

		doc, err = mapping.ParseFilter(data)
		if err == nil {
			names = doc.Names()
		}
	} else {
		var doc *mapping.Mapping

		doc, err = mapping.ParseMapping(data)
		if err == nil {
			names = doc.Names()
		}
	}

	if err != nil {
		res.Diagnostics.AddError(diagnostic.CodeMappingInvalid, err.Error(), res.Path, "")
		return
	}

	res.Fields = names
}

// compile resolves ref relative to the mapping file, falling back to the
// catalog, and compiles the schema. The returned node tree is only used for
// suggestions and may be nil. fromCatalog reports whether the catalog
// provided the schema.
func (v *Validator) compile(mappingPath, ref string) (sch *jsonschema.Schema, root *schema.Node, fromCatalog bool, err error) {
	location := ref
	if !filepath.IsAbs(location) {
		location = filepath.Join(filepath.Dir(mappingPath), ref)
	}

	abs, err := filepath.Abs(location)
	if err != nil {
		return nil, nil, false, fmt.Errorf("failed to resolve schema path %s: %w", location, err)
	}

	_, statErr := os.Stat(abs)
	if statErr == nil {
		sch, err = newCompiler().Compile(abs)
		if err != nil {
			return nil, nil, false, fmt.Errorf("failed to compile schema %s: %w", abs, err)
		}

		root, _ = schema.Load(abs)

		return sch, root, false, nil
	}

	name := filepath.Base(ref)
	if doc, ok := v.catalog[name]; ok {
		sch, root, err = compileCatalog(name, doc)

		return sch, root, err == nil, err
	}

	return nil, nil, false, fmt.Errorf("%w: %s (%v)", ErrSchemaNotFound, location, statErr)
}

func compileCatalog(name string, doc ordered.Map) (*jsonschema.Schema, *schema.Node, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode schema %s: %w", name, err)
	}

	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode schema %s: %w", name, err)
	}

	url := catalogBase + name
	c := newCompiler()

	err = c.AddResource(url, parsed)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to register schema %s: %w", name, err)
	}

	sch, err := c.Compile(url)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compile schema %s: %w", name, err)
	}

	root, _ := schema.FromDocument(doc)

	return sch, root, nil
}

func decodeMapping(data []byte) (any, error) {
	var v any

	err := yaml.Unmarshal(data, &v)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping YAML: %w", err)
	}

	return normalize(v), nil
}
