package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ethanolivertroy/js-dependency-extractor/internal/config"
	"github.com/ethanolivertroy/js-dependency-extractor/internal/logging"
	"github.com/ethanolivertroy/js-dependency-extractor/internal/models"
	"github.com/ethanolivertroy/js-dependency-extractor/internal/reporter"
	"github.com/ethanolivertroy/js-dependency-extractor/internal/scanner"
	"github.com/ethanolivertroy/js-dependency-extractor/internal/version"
)

type options struct {
	path           string
	configPath     string
	ignorePaths    []string
	onlyExtensions []string
	mergePartial   bool
	debug          bool
	format         string
	output         string
}

// newRootCmd builds the command, a fresh one per call so tests don't share flag state
func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "js-dependency-extractor [path]",
		Short: "Extract dependencies required or imported by JavaScript and TypeScript files",
		Long: `js-dependency-extractor lists the dependencies a JavaScript or TypeScript
project requires or imports.

It looks for require('dependency') calls and from 'dependency' import clauses
in a single file or, recursively, in every file of a directory, and prints
the dependency names alphabetically, one per line.

Defaults can be stored in a .depextract.toml file in the working directory;
flags take precedence over the file.

Examples:
  # Extract dependencies of a project
  js-dependency-extractor -p ./my-project

  # Skip tests and installed modules, merge lodash/fp into lodash
  js-dependency-extractor -p . -i node_modules -i test -m

  # Only inspect TypeScript files and output JSON
  js-dependency-extractor -p src -e .ts,.tsx --format json`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if cmd.Flags().Changed("path") {
					return errors.New("path given both as argument and with --path")
				}
				opts.path = args[0]
			}
			return run(cmd, opts)
		},
	}

	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	flags := cmd.Flags()
	flags.StringVarP(&opts.path, "path", "p", "", "Path to a file or a directory to extract dependencies from")
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file (default: "+config.DefaultConfigPath+" if present)")
	flags.StringSliceVarP(&opts.ignorePaths, "ignore-paths", "i", nil, "Path substring(s) to ignore")
	flags.StringSliceVarP(&opts.onlyExtensions, "only-extensions", "e", nil, "File extension(s) to inspect, e.g. .js,.ts")
	flags.BoolVarP(&opts.mergePartial, "merge-partial", "m", false, "Merge partial requires/imports into one main dependency")
	flags.BoolVarP(&opts.debug, "debug", "d", false, "Output extra debugging")
	flags.StringVarP(&opts.format, "format", "f", config.FormatText, "Output format: text, json")
	flags.StringVarP(&opts.output, "output", "o", "", "Output file path (default: stdout)")

	return cmd
}

// Execute runs the root command and exits with 1 on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, opts *options) error {
	settings, err := resolveSettings(cmd, opts)
	if err != nil {
		return err
	}

	level := logging.LevelWarn
	if settings.Debug {
		level = logging.LevelDebug
	}
	logger := logging.Init(&logging.Config{Level: level, Output: cmd.ErrOrStderr()})

	if settings.Debug {
		fmt.Fprintf(cmd.ErrOrStderr(), "command options: %+v format=%s output=%q\n",
			settings.Scan, settings.Format, settings.Output)
	}

	deps, err := scanner.Extract(context.Background(), &settings.Scan, scanner.WithLogger(logger))
	if err != nil {
		return err
	}

	output, err := reporter.Get(settings.Format).Report(models.Result{
		Path:         settings.Scan.Path,
		MergePartial: settings.Scan.MergePartial,
		Dependencies: deps,
	})
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	return writeOutput(cmd.OutOrStdout(), cmd.ErrOrStderr(), settings.Output, output)
}

// resolveSettings layers explicitly set flags over the config file
func resolveSettings(cmd *cobra.Command, opts *options) (*config.Settings, error) {
	settings, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if opts.path != "" {
		settings.Scan.Path = opts.path
	}
	if flags.Changed("ignore-paths") {
		settings.Scan.IgnorePaths = config.Clean(opts.ignorePaths)
	}
	if flags.Changed("only-extensions") {
		settings.Scan.OnlyExtensions = config.Clean(opts.onlyExtensions)
	}
	if flags.Changed("merge-partial") {
		settings.Scan.MergePartial = opts.mergePartial
	}
	if flags.Changed("format") {
		settings.Format = opts.format
	}
	if flags.Changed("output") {
		settings.Output = opts.output
	}
	settings.Debug = opts.debug

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func writeOutput(stdout, stderr io.Writer, path string, output []byte) error {
	if path == "" {
		_, err := stdout.Write(output)
		return err
	}
	if err := os.WriteFile(path, output, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(stderr, "Report written to %s\n", path)
	return nil
}
