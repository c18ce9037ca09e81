package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"strings"

	"go.uber.org/fx"
	g "maragu.dev/gomponents"

	"github.com/emergent-company/showcase/internal/apperror"
	"github.com/emergent-company/showcase/internal/catalog"
	"github.com/emergent-company/showcase/internal/config"
	"github.com/emergent-company/showcase/internal/content"
	"github.com/emergent-company/showcase/internal/logger"
	"github.com/emergent-company/showcase/internal/metrics"
)

var Module = fx.Module("handlers",
	fx.Provide(NewHandler),
)

// Params are the dependencies of the page handlers
type Params struct {
	fx.In

	Config  *config.Config
	Log     *slog.Logger
	Catalog *catalog.Catalog
	Site    *content.Site
}

// Handler serves the site's pages and JSON endpoints
type Handler struct {
	cfg     *config.Config
	log     *slog.Logger
	catalog *catalog.Catalog
	site    *content.Site
}

// NewHandler creates a new Handler
func NewHandler(p Params) *Handler {
	metrics.CatalogProducts.Set(float64(p.Catalog.Len()))

	return &Handler{
		cfg:     p.Config,
		log:     p.Log.With(logger.Scope("handlers")),
		catalog: p.Catalog,
		site:    p.Site,
	}
}

// Brand returns the site name, used by the error pages
func (h *Handler) Brand() string {
	return h.site.Brand.Name
}

// canonical joins the public base URL with path
func (h *Handler) canonical(path string) string {
	if h.cfg.BaseURL == "" {
		return ""
	}
	return strings.TrimRight(h.cfg.BaseURL, "/") + path
}

// render writes a full page. The page is rendered into memory first so a
// rendering failure becomes a clean 500 instead of a truncated document.
func render(w http.ResponseWriter, status int, page g.Node) error {
	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return apperror.NewInternal("failed to render page", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
	return nil
}
