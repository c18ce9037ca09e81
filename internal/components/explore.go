package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/emergent-company/showcase/internal/catalog"
)

// Explore is the body of the explore route: a search box over the catalog,
// every product card, and an empty state. Cards outside results and the empty
// state (when there are results) start hidden. The form works as a plain GET;
// explore.js filters the same cards in place, without a server round trip.
func Explore(query string, all, results []catalog.Product) g.Node {
	matched := make(map[string]bool, len(results))
	for _, p := range results {
		matched[p.Slug] = true
	}

	return Section(
		Class("pt-28 pb-16 container mx-auto px-4"),
		g.Attr("data-explore", ""),
		Div(
			Class("text-center"),
			H1(Class("font-bold text-3xl sm:text-4xl"), g.Text("Explora nuestros productos")),
			P(Class("mt-3 text-base-content/70"), g.Text("Busca por nombre, categoría o tecnología.")),
		),
		ExploreSearch(query),
		P(
			Class("mt-4 text-center text-sm text-base-content/60"),
			g.Attr("data-result-count", ""),
			g.Attr("aria-live", "polite"),
			g.Text(resultCount(len(results), len(all))),
		),
		Div(
			Class("mt-10"),
			g.Attr("data-results", ""),
			SearchGrid(all, matched),
			EmptyState(query, len(results) > 0),
		),
	)
}

// SearchGrid renders all products as filterable cards. data-search carries the
// fields a query is matched against; cards missing from matched are hidden.
func SearchGrid(all []catalog.Product, matched map[string]bool) g.Node {
	cards := make([]g.Node, len(all))
	for i, p := range all {
		cards[i] = Reveal(stagger(i), "h-full",
			g.Attr("data-explore-item", ""),
			g.Attr("data-search", catalog.SearchKey(p)),
			g.If(!matched[p.Slug], g.Attr("hidden")),
			ProductCard(p),
		)
	}
	return Div(
		Class(productGridClass),
		g.Attr("data-product-grid", ""),
		g.Group(cards),
	)
}

// ExploreSearch is the search form of the explore view.
func ExploreSearch(query string) g.Node {
	return Form(
		Class("mt-8 max-w-xl mx-auto"),
		Action("/explore"),
		Method("get"),
		g.Attr("role", "search"),
		Label(
			Class("input input-bordered input-lg w-full flex items-center gap-2"),
			Icon("lucide--search size-5 opacity-60", ""),
			Input(
				Type("search"),
				Name("q"),
				Value(query),
				Placeholder("Ej. React, Educación, Inventario..."),
				g.Attr("autocomplete", "off"),
				g.Attr("maxlength", fmt.Sprint(catalog.MaxQueryRunes)),
				g.Attr("aria-label", "Buscar productos"),
				g.Attr("data-explore-input", ""),
				Class("grow"),
			),
		),
	)
}

func resultCount(n, total int) string {
	if n == total {
		return fmt.Sprintf("%d productos", total)
	}
	return fmt.Sprintf("%d de %d productos", n, total)
}
