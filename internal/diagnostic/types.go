package diagnostic

import (
	"mex-common/internal/common"
)

// Codes reported for mapping files.
const (
	CodeSchemaReferenceMissing = "schema_reference_missing"
	CodeSchemaUnresolvable     = "schema_unresolvable"
	CodeMappingUnreadable      = "mapping_unreadable"
	CodeMappingUnparsable      = "mapping_unparsable"
	CodeSchemaViolation        = "schema_violation"
	CodeMappingInvalid         = "mapping_invalid"
	CodeSchemaFromCatalog      = "schema_from_catalog"
)

// Diagnostics holds the diagnostics of one mapping file.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// File is the mapping file this relates to (if any).
	File string
	// Path locates the offending value inside the document (if any).
	Path string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticWarning DiagnosticSeverity = iota
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Add appends a prepared diagnostic according to its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	default:
		d.Warnings = append(d.Warnings, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, file, path string) {
	d.Add(Diagnostic{
		Severity: DiagnosticError,
		Code:     code,
		Message:  message,
		File:     file,
		Path:     path,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, file, path string) {
	d.Add(Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		File:     file,
		Path:     path,
	})
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Location returns "<path>: <message>", or just the message when the
// diagnostic has no document path.
func (d Diagnostic) Location() string {
	if d.Path == "" {
		return d.Message
	}

	return d.Path + ": " + d.Message
}
