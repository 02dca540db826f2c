// Package main provides the entry point for the people_filter CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "people_filter",
		Short: "Reduce people and people group exports to whitelisted fields",
		Long: `Reads src/data/people.json and src/data/peopleGroups.json, keeps only the whitelisted
fields of each record and writes src/data/people_filtered.json and
src/data/peopleGroups_filtered.json.

People keep personID, name, memberOf and personLookup. Groups keep id and groupName.
Problems are reported on stdout; the run always exits successfully.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	bindFilterFlags(rootCmd)
	rootCmd.AddCommand(newValidateCmd())

	return rootCmd
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
