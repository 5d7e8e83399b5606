// Package main provides the mex-mapping command.
//
// mex-mapping generates the JSON Schemas and YAML templates for mapping
// files of the extracted models, and validates filled-in mapping files
// against the schema named in their header:
//
//	mex-mapping generate [--assets-dir DIR] [--schemas-only | --templates-only]
//	mex-mapping validate [flags] <file>...
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"mex-common/internal/config"
	"mex-common/internal/logging"
	"mex-common/internal/mapping"
	"mex-common/internal/models"
	"mex-common/internal/template"
	"mex-common/internal/validate"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: mex-mapping <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	fmt.Fprintln(w, "  generate   write mapping schemas and templates below the assets directory")
	fmt.Fprintln(w, "  validate   validate mapping files against the schema in their header")
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}

	settings, err := config.Load(".env")
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	switch args[0] {
	case "generate":
		return runGenerate(args[1:], settings, stderr)
	case "validate":
		return runValidate(args[1:], settings, stderr)
	case "help", "-h", "--help":
		usage(stdout)
		return exitOK
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)

		return exitUsage
	}
}

func newFlagSet(name, synopsis string, settings *config.Settings, stderr io.Writer) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: mex-mapping %s\n\nflags:\n", synopsis)
		flags.PrintDefaults()
	}

	settings.BindFlags(flags)

	return flags
}

// parseFlags returns a non-negative exit code when the command must stop.
func parseFlags(flags *pflag.FlagSet, args []string, stderr io.Writer) int {
	err := flags.Parse(args)
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}

	if err != nil {
		fmt.Fprintln(stderr, err)
		flags.Usage()

		return exitUsage
	}

	return -1
}

func newLogger(settings config.Settings, w io.Writer) (*slog.Logger, error) {
	return logging.New(w, settings.EffectiveLogLevel(), settings.LogFormat)
}

func runValidate(args []string, settings config.Settings, stderr io.Writer) int {
	flags := newFlagSet("validate", "validate [flags] <file>...", &settings, stderr)

	if code := parseFlags(flags, args, stderr); code >= 0 {
		return code
	}

	if flags.NArg() == 0 {
		flags.Usage()
		return exitUsage
	}

	logger, err := newLogger(settings, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	return validate.ValidateMappings(flags.Args(),
		validate.WithLogger(logger),
		validate.WithSchemaCatalog(mapping.Catalog(models.Extracted())),
	)
}

func runGenerate(args []string, settings config.Settings, stderr io.Writer) int {
	flags := newFlagSet("generate", "generate [flags]", &settings, stderr)
	schemasOnly := flags.Bool("schemas-only", false, "only write the JSON schemas")
	templatesOnly := flags.Bool("templates-only", false, "only write the templates from existing schemas")

	if code := parseFlags(flags, args, stderr); code >= 0 {
		return code
	}

	if flags.NArg() > 0 || (*schemasOnly && *templatesOnly) {
		flags.Usage()
		return exitUsage
	}

	logger, err := newLogger(settings, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	ms := models.Extracted()

	if !*templatesOnly {
		written, err := mapping.WriteSchemas(mapping.SchemaDir(settings.AssetsDir), ms)
		if err != nil {
			logger.Error("failed to write schemas", "error", err)
			return exitFail
		}

		for _, path := range written {
			logger.Info("created schema", "path", path)
		}
	}

	if *schemasOnly {
		return exitOK
	}

	g := template.NewGenerator(settings.AssetsDir,
		template.WithLogger(logger),
		template.WithModels(ms),
		template.WithDebug(settings.Debug),
	)

	for _, kind := range []string{mapping.KindMapping, mapping.KindEntityFilter} {
		_, err := g.Run(kind)
		if err != nil {
			logger.Error("failed to generate templates", "kind", kind, "error", err)
			return exitFail
		}
	}

	return exitOK
}
