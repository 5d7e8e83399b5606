// Package match suggests known names for misspelled ones.
//
// Names are compared after normalization (case folding, separator removal)
// using a Levenshtein similarity score. The validator uses it to point at
// the intended field when a mapping file contains an unexpected key.
package match
