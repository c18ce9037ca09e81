package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/emergent-company/showcase/internal/catalog"
)

var catalogFlags struct {
	query  string
	file   string
	output string
}

func newCatalogCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "catalog",
		Short: "List the products, optionally filtered",
		Long: `List the catalog products using the same filter as the explore page: a
case-insensitive substring match against title, category and stack tags.

Examples:
  showcase catalog
  showcase catalog --query react
  showcase catalog --query firebase --output yaml`,
		Args: cobra.NoArgs,
		RunE: runCatalog,
	}

	c.Flags().StringVarP(&catalogFlags.query, "query", "q", "", "filter text")
	c.Flags().StringVar(&catalogFlags.file, "file", "", "catalog YAML file (default is the embedded catalog)")
	c.Flags().StringVarP(&catalogFlags.output, "output", "o", outputTable, "output format (table, json, yaml)")
	return c
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	if err := checkOutput(catalogFlags.output); err != nil {
		return err
	}

	var (
		c   *catalog.Catalog
		err error
	)
	if catalogFlags.file != "" {
		c, err = catalog.LoadFile(catalogFlags.file)
	} else {
		c, err = catalog.Default()
	}
	if err != nil {
		return err
	}

	products := c.Filter(catalog.NormalizeQuery(catalogFlags.query))
	return writeProducts(cmd.OutOrStdout(), catalogFlags.output, products)
}

func writeProducts(w io.Writer, format string, products []catalog.Product) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(products)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(products); err != nil {
			return err
		}
		return enc.Close()
	}

	if len(products) == 0 {
		_, err := fmt.Fprintln(w, "No products match.")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("Slug", "Title", "Category", "Stack")
	for _, p := range products {
		table.Append(p.Slug, p.Title, p.Category, strings.Join(p.Stack, ", "))
	}
	return table.Render()
}
