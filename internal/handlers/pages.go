package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"maragu.dev/gomponents/html"

	"github.com/emergent-company/showcase/internal/apperror"
	"github.com/emergent-company/showcase/internal/catalog"
	"github.com/emergent-company/showcase/internal/components"
	"github.com/emergent-company/showcase/internal/metrics"
	"github.com/emergent-company/showcase/internal/ui"
)

// LandingPage renders the single-page marketing site. ?faq=1,3 opens FAQ
// rows so a question can be linked directly.
func (h *Handler) LandingPage(w http.ResponseWriter, r *http.Request) error {
	faq := ui.NewAccordion(len(h.site.FAQ), parseIndexes(r.URL.Query().Get("faq"))...)

	page := components.Layout(
		components.PageConfig{
			Title:       h.site.Brand.Name + " - " + h.site.Brand.Tagline,
			Description: h.site.Brand.Description,
			Canonical:   h.canonical("/"),
		},
		components.Topbar(h.site.Brand.Name, "/"),
		html.Main(
			components.Hero(h.site.Hero),
			components.Services(h.site.Services),
			components.ProductsSection(h.catalog.Products()),
			components.Pricing(h.site.Pricing),
			components.FAQ(h.site.FAQ, faq),
		),
		components.PageFooter(h.site, 0),
	)

	return render(w, http.StatusOK, page)
}

// ExplorePage renders the filterable catalog. The query comes from ?q=.
func (h *Handler) ExplorePage(w http.ResponseWriter, r *http.Request) error {
	query := catalog.NormalizeQuery(r.URL.Query().Get("q"))
	results := h.catalog.Filter(query)
	metrics.ObserveSearch("page", query, len(results))

	title := "Explorar productos - " + h.site.Brand.Name
	if query != "" {
		title = query + " - " + title
	}

	page := components.Layout(
		components.PageConfig{
			Title:       title,
			Description: "Busca entre los productos de " + h.site.Brand.Name + " por nombre, categoría o tecnología.",
			Canonical:   h.canonical("/explore"),
			Scripts:     []string{"/static/js/explore.js"},
		},
		components.Topbar(h.site.Brand.Name, "/explore"),
		html.Main(components.Explore(query, h.catalog.Products(), results)),
		components.PageFooter(h.site, 0),
	)

	return render(w, http.StatusOK, page)
}

// ProductPage renders a single product by slug.
func (h *Handler) ProductPage(w http.ResponseWriter, r *http.Request) error {
	slug := chi.URLParam(r, "slug")
	p, ok := h.catalog.BySlug(slug)
	if !ok {
		return apperror.NewProductNotFound(slug)
	}

	page := components.Layout(
		components.PageConfig{
			Title:       p.Title + " - " + h.site.Brand.Name,
			Description: p.Solution,
			Canonical:   h.canonical("/products/" + p.Slug),
		},
		components.Topbar(h.site.Brand.Name, ""),
		html.Main(components.ProductDetail(p)),
		components.PageFooter(h.site, 0),
	)

	return render(w, http.StatusOK, page)
}

// parseIndexes reads a comma separated list of non-negative ints, skipping
// anything malformed.
func parseIndexes(s string) []int {
	if s == "" {
		return nil
	}
	var out []int
	for _, part := range strings.Split(s, ",") {
		i, err := strconv.Atoi(strings.TrimSpace(part))
		if err == nil && i >= 0 {
			out = append(out, i)
		}
	}
	return out
}
