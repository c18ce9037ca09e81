package cmd

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/emergent-company/showcase/internal/catalog"
	"github.com/emergent-company/showcase/internal/config"
	"github.com/emergent-company/showcase/internal/content"
	"github.com/emergent-company/showcase/internal/export"
	"github.com/emergent-company/showcase/internal/handlers"
	"github.com/emergent-company/showcase/internal/logger"
	"github.com/emergent-company/showcase/internal/server"
	"github.com/emergent-company/showcase/web"
)

var exportFlags struct {
	out         string
	baseURL     string
	markdown    bool
	concurrency int
}

func newExportCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "export",
		Short: "Render the site to static files",
		Long: `Render the landing page, the explore page and every product page into
an output directory, together with the static assets. Each page also gets a
markdown rendition (index.md) unless --markdown=false is given.

Examples:
  showcase export --out dist
  showcase export --out dist --base-url https://nexo.digital`,
		Args: cobra.NoArgs,
		RunE: runExport,
	}

	c.Flags().StringVarP(&exportFlags.out, "out", "o", "dist", "output directory")
	c.Flags().StringVar(&exportFlags.baseURL, "base-url", "", "public URL for canonical links and sitemap.xml (defaults to WEBSITE_BASE_URL; no sitemap when neither is set)")
	c.Flags().BoolVar(&exportFlags.markdown, "markdown", true, "write index.md next to each page")
	c.Flags().IntVar(&exportFlags.concurrency, "concurrency", 4, "pages rendered in parallel")
	return c
}

func runExport(cmd *cobra.Command, _ []string) error {
	config.LoadDotEnv()

	var (
		cfg    *config.Config
		log    *slog.Logger
		cat    *catalog.Catalog
		router http.Handler
	)
	app := fx.New(
		fx.NopLogger,
		logger.Module,
		config.Module,
		catalog.Module,
		content.Module,
		handlers.Module,
		fx.Provide(server.NewRouter),
		// --base-url wins over WEBSITE_BASE_URL for canonical links too.
		fx.Decorate(func(c *config.Config) *config.Config {
			if exportFlags.baseURL != "" {
				c.BaseURL = exportFlags.baseURL
			}
			return c
		}),
		fx.Populate(&cfg, &log, &cat, &router),
	)
	if err := app.Err(); err != nil {
		return err
	}

	static, err := web.Static()
	if err != nil {
		return err
	}

	res, err := export.New(router, cat, static, log).Export(cmd.Context(), export.Options{
		OutDir:      exportFlags.out,
		BaseURL:     cfg.BaseURL,
		Markdown:    exportFlags.markdown,
		Concurrency: exportFlags.concurrency,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d pages and %d assets to %s\n", res.Pages, res.Assets, exportFlags.out)
	return nil
}
