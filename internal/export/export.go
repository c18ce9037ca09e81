// Package export renders the site to a directory of static files that any
// plain web server or object store can host.
package export

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"github.com/emergent-company/showcase/internal/catalog"
	"github.com/emergent-company/showcase/internal/logger"
)

// Page is one route to render and where its output goes.
type Page struct {
	// Route is the request path served by the router
	Route string
	// Dir is the output directory relative to the export root
	Dir string
}

// Options configures an export run
type Options struct {
	OutDir string
	// BaseURL is used for sitemap entries; the sitemap is skipped when empty
	BaseURL string
	// Markdown writes an index.md next to each index.html
	Markdown bool
	// Concurrency bounds how many pages render at once
	Concurrency int
}

// Result summarizes an export run
type Result struct {
	Pages  int
	Assets int
	Files  []string
}

// Exporter renders pages through the site router
type Exporter struct {
	router  http.Handler
	catalog *catalog.Catalog
	static  fs.FS
	log     *slog.Logger
	conv    *md.Converter
}

// New creates an Exporter
func New(router http.Handler, c *catalog.Catalog, static fs.FS, log *slog.Logger) *Exporter {
	conv := md.NewConverter("", true, nil)
	conv.Use(plugin.GitHubFlavored())

	return &Exporter{
		router:  router,
		catalog: c,
		static:  static,
		log:     log.With(logger.Scope("export")),
		conv:    conv,
	}
}

// Pages lists every route the export renders
func (e *Exporter) Pages() []Page {
	pages := []Page{
		{Route: "/", Dir: ""},
		{Route: "/explore", Dir: "explore"},
	}
	for _, p := range e.catalog.Products() {
		pages = append(pages, Page{Route: "/products/" + p.Slug, Dir: path.Join("products", p.Slug)})
	}
	return pages
}

// Export renders all pages and copies the static assets into opts.OutDir
func (e *Exporter) Export(ctx context.Context, opts Options) (*Result, error) {
	if opts.OutDir == "" {
		return nil, fmt.Errorf("export: output directory is required")
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	var (
		mu  sync.Mutex
		res = &Result{}
	)
	record := func(files ...string) {
		mu.Lock()
		res.Files = append(res.Files, files...)
		mu.Unlock()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	pages := e.Pages()
	for _, p := range pages {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			files, err := e.exportPage(ctx, p, opts)
			if err != nil {
				return fmt.Errorf("export %s: %w", p.Route, err)
			}
			record(files...)
			return nil
		})
	}

	g.Go(func() error {
		files, err := e.copyStatic(filepath.Join(opts.OutDir, "static"))
		if err != nil {
			return fmt.Errorf("copy static assets: %w", err)
		}
		mu.Lock()
		res.Assets = len(files)
		mu.Unlock()
		record(files...)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if opts.BaseURL != "" {
		file := filepath.Join(opts.OutDir, "sitemap.xml")
		if err := writeSitemap(file, opts.BaseURL, pages); err != nil {
			return nil, err
		}
		res.Files = append(res.Files, file)
	}

	res.Pages = len(pages)
	e.log.Info("export complete",
		slog.String("out", opts.OutDir),
		slog.Int("pages", res.Pages),
		slog.Int("assets", res.Assets),
	)
	return res, nil
}

func (e *Exporter) exportPage(ctx context.Context, p Page, opts Options) ([]string, error) {
	req := httptest.NewRequest(http.MethodGet, p.Route, nil).WithContext(ctx)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", rec.Code)
	}

	dir := filepath.Join(opts.OutDir, filepath.FromSlash(p.Dir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	body := rec.Body.Bytes()
	htmlFile := filepath.Join(dir, "index.html")
	if err := os.WriteFile(htmlFile, body, 0o644); err != nil {
		return nil, err
	}
	files := []string{htmlFile}

	if opts.Markdown {
		markdown, err := e.Markdown(string(body))
		if err != nil {
			return nil, fmt.Errorf("convert to markdown: %w", err)
		}
		mdFile := filepath.Join(dir, "index.md")
		if err := os.WriteFile(mdFile, []byte(markdown), 0o644); err != nil {
			return nil, err
		}
		files = append(files, mdFile)
	}

	e.log.Debug("exported page", slog.String("route", p.Route), slog.String("file", htmlFile))
	return files, nil
}

// Markdown converts the <main> content of a rendered page to markdown,
// headed by the page title.
func (e *Exporter) Markdown(page string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return "", err
	}

	body := doc.Find("main").First()
	if body.Length() == 0 {
		body = doc.Find("body")
	}
	// Tooltips duplicate their labels' text, icons are empty spans and
	// hidden nodes are filtered-out cards or an unused empty state.
	body.Find("script, form, [hidden], [aria-hidden=true], [role=tooltip]").Remove()

	inner, err := body.Html()
	if err != nil {
		return "", err
	}

	markdown, err := e.conv.ConvertString(inner)
	if err != nil {
		return "", err
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title != "" {
		markdown = "# " + title + "\n\n" + markdown
	}
	return strings.TrimSpace(markdown) + "\n", nil
}

func (e *Exporter) copyStatic(dst string) ([]string, error) {
	var files []string
	err := fs.WalkDir(e.static, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(e.static, p)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return err
		}
		files = append(files, target)
		return nil
	})
	return files, err
}
