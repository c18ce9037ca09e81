package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/emergent-company/showcase/internal/catalog"
)

// ProductsSection is the landing page product showcase.
func ProductsSection(products []catalog.Product) g.Node {
	return Section(
		Class("py-12 md:py-20 container mx-auto px-4"),
		SectionHeading("productos", "lucide--boxes", "Nuestros productos",
			"Soluciones listas para implementar, probadas en negocios como el tuyo."),
		Div(Class("mt-12"), ProductGrid(products)),
		Div(
			Class("mt-10 text-center"),
			A(
				Href("/explore"),
				Class("btn btn-outline"),
				Icon("lucide--search size-4", ""),
				g.Text("Explorar y filtrar el catálogo"),
			),
		),
	)
}

const productGridClass = "grid grid-cols-1 md:grid-cols-2 gap-6 2xl:gap-8"

// ProductGrid lays out product cards, staggering their entrance.
func ProductGrid(products []catalog.Product) g.Node {
	cards := make([]g.Node, len(products))
	for i, p := range products {
		cards[i] = Reveal(stagger(i), "h-full", ProductCard(p))
	}
	return Div(
		Class(productGridClass),
		g.Attr("data-product-grid", ""),
		g.Group(cards),
	)
}

// ProductCard renders one product listing.
func ProductCard(p catalog.Product) g.Node {
	return Article(
		Class(fmt.Sprintf("card h-full border border-base-300 hover:border-%s/50 transition-all duration-300", p.ColorClass)),
		g.Attr("data-product", p.Slug),
		Div(
			Class("card-body"),
			Div(
				Class("flex items-start justify-between gap-3"),
				H3(
					Class("font-semibold text-xl"),
					A(Href(productPath(p.Slug)), Class("link-hover"), g.Text(p.Title)),
				),
				Span(Class(fmt.Sprintf("badge badge-%s badge-sm", p.ColorClass)), g.Text(p.Category)),
			),

			problemSolution(p),

			g.If(len(p.Metrics) > 0, Ul(
				Class("mt-4 flex flex-wrap gap-2"),
				g.Group(g.Map(p.Metrics, metricChip)),
			)),

			StackBadges(p.Stack),

			Div(
				Class("card-actions mt-5 justify-between items-center"),
				A(
					Href(productPath(p.Slug)),
					Class("btn btn-ghost btn-sm"),
					g.Text("Más detalles"),
				),
				CTAButton(p),
			),
		),
	)
}

func problemSolution(p catalog.Product) g.Node {
	return Dl(
		Class("mt-3 space-y-3 text-sm"),
		Div(
			Dt(Class("font-medium text-error/80"), g.Text("El problema")),
			Dd(Class("text-base-content/80"), g.Text(p.Problem)),
		),
		Div(
			Dt(Class("font-medium text-success"), g.Text("La solución")),
			Dd(Class("text-base-content/80"), g.Text(p.Solution)),
		),
	)
}

func metricChip(m catalog.Metric) g.Node {
	return Li(
		Tooltip(m.Tooltip,
			Span(
				Class("inline-flex items-center gap-1 rounded-full bg-base-200 px-3 py-1 text-xs font-medium cursor-help"),
				Icon("lucide--check size-3.5 text-success", ""),
				g.Text(m.Label),
				Icon("lucide--info size-3 opacity-60", "Más información"),
			),
		),
	)
}

// StackBadges lists the technology tags of a product.
func StackBadges(stack []string) g.Node {
	if len(stack) == 0 {
		return nil
	}
	return Div(
		Class("mt-4 flex flex-wrap gap-1.5"),
		g.Attr("aria-label", "Tecnologías"),
		g.Group(g.Map(stack, func(tag string) g.Node {
			return Span(Class("badge badge-ghost badge-sm font-mono"), g.Text(tag))
		})),
	)
}

// CTAButton is the primary call to action of a product.
func CTAButton(p catalog.Product) g.Node {
	external := strings.HasPrefix(p.CTALink, "http://") || strings.HasPrefix(p.CTALink, "https://")
	return A(
		Href(p.CTALink),
		Class(fmt.Sprintf("btn btn-%s btn-sm", p.ColorClass)),
		g.If(external, g.Group([]g.Node{
			Target("_blank"),
			Rel("noopener noreferrer"),
		})),
		g.Text(p.CTAText),
		Icon("lucide--arrow-right size-4", ""),
	)
}

// EmptyState is shown in place of the cards when a search matches nothing.
func EmptyState(query string, hidden bool) g.Node {
	return Div(
		Class("py-16 text-center"),
		g.Attr("data-empty-state", ""),
		g.Attr("role", "status"),
		g.If(hidden, g.Attr("hidden")),
		IconBadge("lucide--search-x", "warning"),
		P(
			Class("mt-4 font-semibold text-lg"),
			g.Text("No encontramos productos para "),
			Strong(Class("text-primary"), g.Attr("data-empty-query", ""), g.Text(query)),
		),
		P(
			Class("mt-2 text-base-content/70"),
			g.Text("Prueba con otra tecnología o categoría, o "),
			A(Href("/explore"), Class("link link-primary"), g.Text("mira todo el catálogo")),
			g.Text("."),
		),
	)
}

// ProductDetail is the full page body for a single product.
func ProductDetail(p catalog.Product) g.Node {
	return Section(
		Class("pt-28 pb-16 container mx-auto px-4 max-w-3xl"),
		A(Href("/explore"), Class("btn btn-ghost btn-sm"), Icon("lucide--arrow-left size-4", ""), g.Text("Volver al catálogo")),
		Reveal(0, "",
			Span(Class(fmt.Sprintf("mt-6 badge badge-%s", p.ColorClass)), g.Text(p.Category)),
			H1(Class("mt-3 text-4xl font-extrabold"), g.Text(p.Title)),
			problemSolution(p),
		),
		Reveal(stagger(1), "",
			H2(Class("mt-10 font-semibold text-xl"), g.Text("Beneficios")),
			Ul(
				Class("mt-4 space-y-3"),
				g.Group(g.Map(p.Metrics, func(m catalog.Metric) g.Node {
					return Li(
						Class("flex gap-3"),
						Icon("lucide--badge-check size-5 text-success shrink-0", ""),
						Div(
							P(Class("font-medium"), g.Text(m.Label)),
							P(Class("text-sm text-base-content/70"), g.Text(m.Tooltip)),
						),
					)
				})),
			),
			StackBadges(p.Stack),
			Div(Class("mt-8"), CTAButton(p)),
		),
	)
}

func productPath(slug string) string {
	return "/products/" + slug
}
