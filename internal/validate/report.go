package validate

import (
	"mex-common/internal/diagnostic"
)

// FileResult is the outcome of validating one mapping file.
type FileResult struct {
	Path string
	// SchemaRef is the schema reference found in the header, if any.
	SchemaRef string
	// Fields lists the top-level field names of a valid mapping or entity
	// filter, in file order.
	Fields      []string
	Diagnostics diagnostic.Diagnostics
}

// Passed reports whether the file had a resolvable schema and no violations.
func (r FileResult) Passed() bool {
	return r.Diagnostics.IsValid()
}

// Report aggregates the results of a validation run.
type Report struct {
	Files []FileResult
}

// Failed returns the paths of the files that did not validate, in order.
func (r *Report) Failed() []string {
	var failed []string

	for _, f := range r.Files {
		if !f.Passed() {
			failed = append(failed, f.Path)
		}
	}

	return failed
}

// ExitCode returns 0 when every file passed and 1 otherwise.
func (r *Report) ExitCode() int {
	if len(r.Failed()) > 0 {
		return 1
	}

	return 0
}
