package main

import (
	"fmt"
	"os"

	"github.com/jonathan/people-filter/internal/config"
	"github.com/jonathan/people-filter/internal/dataset"
	"github.com/jonathan/people-filter/internal/observability"
	"github.com/jonathan/people-filter/internal/schemas"
	embedded "github.com/jonathan/people-filter/schemas"
	"github.com/spf13/cobra"
)

type validateOptions struct {
	dataDir    string
	schemaPath string
	jsonPath   string
}

func newValidateCmd() *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate filtered output files against their JSON Schemas",
		Long: `Checks people_filtered.json and peopleGroups_filtered.json in the data directory against
the embedded output schemas. Use --schema and --json to validate a single file against a schema file instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dataDir, "data-dir", "d", config.DefaultDataDir, "Directory holding the filtered files")
	cmd.Flags().StringVar(&opts.schemaPath, "schema", "", "Path to a JSON Schema file (requires --json)")
	cmd.Flags().StringVar(&opts.jsonPath, "json", "", "Path to a JSON file to validate (requires --schema)")
	cmd.MarkFlagsRequiredTogether("schema", "json")

	return cmd
}

func runValidate(cmd *cobra.Command, opts *validateOptions) error {
	printer := observability.NewPrinter(cmd.OutOrStdout())

	if opts.schemaPath != "" {
		if err := schemas.ValidateJSON(opts.schemaPath, opts.jsonPath); err != nil {
			printer.ValidationFailed(opts.jsonPath, err)
			return fmt.Errorf("validation failed")
		}
		printer.ValidationPassed(opts.jsonPath)
		return nil
	}

	cfg := config.Defaults()
	cfg.DataDir = opts.dataDir
	paths := cfg.Resolve()

	targets := []struct {
		path   string
		schema []byte
	}{
		{paths.PeopleOutput, embedded.PeopleFiltered},
		{paths.GroupsOutput, embedded.GroupsFiltered},
	}

	failed := 0
	for _, target := range targets {
		if !dataset.Exists(target.path) {
			printer.NotFound(target.path)
			continue
		}

		doc, err := os.ReadFile(target.path)
		if err == nil {
			err = schemas.ValidateDocument(target.schema, doc)
		}
		if err != nil {
			printer.ValidationFailed(target.path, err)
			failed++
			continue
		}
		printer.ValidationPassed(target.path)
	}

	if failed > 0 {
		return fmt.Errorf("validation failed for %d file(s)", failed)
	}
	return nil
}
