// Package diagnostic provides the diagnostic types reported while checking
// mapping files.
//
// A Diagnostic carries a snake_case code, a message, the file it concerns
// and, for schema violations, the location inside the document in
// `$.field[0].sub` notation. Diagnostics groups them by severity.
package diagnostic
