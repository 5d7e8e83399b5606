// Package validate checks mapping files against the JSON Schema named in
// their yaml-language-server header.
//
// Files are processed one after another. Each file yields a
// diagnostic.Diagnostics; problems never abort the run. Schema violations
// are flattened to one diagnostic per failing keyword, located with a
// `$.field[0].sub` path and worded like this:
//
//	$.foo: 1 is not of type 'string'
//	$: 'identifier' is a required property
//	$.email[0].mappingRules: [] should be non-empty
//
// The Report aggregates all files; its ExitCode is 0 only when every file
// had a resolvable schema and no violations.
package validate
