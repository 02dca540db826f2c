package main

import (
	"fmt"
	"log"

	"github.com/jonathan/people-filter/internal/config"
	"github.com/jonathan/people-filter/internal/observability"
	"github.com/jonathan/people-filter/internal/pipeline"
	"github.com/spf13/cobra"
)

type filterOptions struct {
	configPath      string
	dataDir         string
	continueOnError bool
	validateOutput  bool
	verbose         bool
}

func bindFilterFlags(cmd *cobra.Command) {
	opts := &filterOptions{}

	// Config file flag (processed first)
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	cmd.Flags().StringVarP(&opts.dataDir, "data-dir", "d", "", "Directory holding the input and output files (default \"src/data\")")
	cmd.Flags().BoolVar(&opts.continueOnError, "continue-on-error", false, "Keep filtering the next file after a failure")
	cmd.Flags().BoolVar(&opts.validateOutput, "validate", false, "Check filtered documents against the output schemas before writing")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print detailed debug information")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runFilter(cmd, opts)
	}
}

func runFilter(cmd *cobra.Command, opts *filterOptions) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	paths := cfg.Resolve()
	if cfg.Verbose {
		log.Printf("[CONFIG] people: %s -> %s", paths.PeopleInput, paths.PeopleOutput)
		log.Printf("[CONFIG] groups: %s -> %s", paths.GroupsInput, paths.GroupsOutput)
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	report := pipeline.Run(pipeline.Conversions(paths), pipeline.RunOptions{
		ContinueOnError: cfg.ContinueOnError,
		ValidateOutput:  cfg.ValidateOutput,
		Verbose:         cfg.Verbose,
	}, printer)

	if cfg.Verbose {
		printer.PrintReport(report)
	}

	// Failures are reported on stdout, never through the exit status
	return nil
}

// resolveConfig layers flags over the config file, environment and defaults.
func resolveConfig(cmd *cobra.Command, opts *filterOptions) (config.Config, error) {
	var cfg config.Config
	if opts.configPath != "" {
		loaded, err := config.LoadConfig(opts.configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	env, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}
	cfg = cfg.MergeWithDefaults(env)
	cfg = cfg.MergeWithDefaults(config.Defaults())

	if cmd.Flags().Changed("data-dir") {
		cfg.DataDir = opts.dataDir
	}
	if cmd.Flags().Changed("continue-on-error") {
		cfg.ContinueOnError = opts.continueOnError
	}
	if cmd.Flags().Changed("validate") {
		cfg.ValidateOutput = opts.validateOutput
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = opts.verbose
	}

	return cfg, nil
}
