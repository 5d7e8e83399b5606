// Package config collects the settings of the mex-mapping command.
//
// Values are layered, later sources winning: built-in defaults, a .env file
// in the working directory, MEX_* environment variables, command-line flags.
// A .env file never overrides variables that are already set.
package config
