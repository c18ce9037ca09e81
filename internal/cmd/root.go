// Package cmd implements the showcase command line.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Output formats accepted by --output
const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

// NewRootCommand builds the command tree. Each call returns a fresh tree so
// tests can execute commands in isolation.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "showcase",
		Short: "Marketing site and product catalog",
		Long: `Serve the marketing site, export it as static files, or inspect the
product catalog it is built from.

Configuration comes from the environment (WEBSITE_PORT, WEBSITE_BASE_URL,
CATALOG_FILE, CONTENT_FILE, LOG_LEVEL, ...). A .env and .env.local in the
working directory are loaded first when present.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newServeCommand(),
		newExportCommand(),
		newCatalogCommand(),
		newVersionCommand(),
	)
	return root
}

// Execute runs the root command. This is called by main.main().
func Execute() error {
	return NewRootCommand().Execute()
}

func checkOutput(format string) error {
	switch format {
	case outputTable, outputJSON, outputYAML:
		return nil
	}
	return fmt.Errorf("unsupported output format %q (table, json, yaml)", format)
}
