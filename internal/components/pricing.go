package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/emergent-company/showcase/internal/content"
)

func Pricing(tiers []content.Tier) g.Node {
	tiles := make([]g.Node, len(tiers))
	for i, t := range tiers {
		tiles[i] = Reveal(stagger(i), "h-full", pricingTile(t))
	}

	return Section(
		Class("py-12 md:py-20 bg-base-200/50"),
		Div(
			Class("container mx-auto px-4"),
			SectionHeading("precios", "lucide--tag", "Planes y precios",
				"Precios transparentes. Sin mensualidades escondidas."),
			Div(
				Class("mt-12 grid grid-cols-1 md:grid-cols-3 gap-6 items-stretch"),
				g.Group(tiles),
			),
		),
	)
}

func pricingTile(t content.Tier) g.Node {
	cardClass := "card h-full bg-base-100 border border-base-300"
	btnClass := "btn btn-outline btn-block"
	if t.Highlighted {
		cardClass = "card h-full bg-base-100 border-2 border-primary shadow-xl md:scale-105"
		btnClass = "btn btn-primary btn-block"
	}

	return Div(
		Class(cardClass),
		g.If(t.Highlighted, g.Attr("data-highlighted", "true")),
		Div(
			Class("card-body"),
			Div(
				Class("flex items-center justify-between"),
				H3(Class("font-semibold text-lg"), g.Text(t.Name)),
				g.If(t.Highlighted, Span(Class("badge badge-primary badge-sm"), g.Text("Más popular"))),
			),
			g.If(t.Description != "", P(Class("text-sm text-base-content/70"), g.Text(t.Description))),
			P(
				Class("mt-4"),
				Span(Class("text-4xl font-extrabold"), g.Text(t.Price)),
				g.If(t.Period != "", Span(Class("ms-2 text-sm text-base-content/60"), g.Text(t.Period))),
			),
			Ul(
				Class("mt-6 space-y-2 text-sm flex-1"),
				g.Group(g.Map(t.Features, func(f string) g.Node {
					return Li(
						Class("flex items-center gap-2"),
						Icon("lucide--check size-4 text-success", ""),
						g.Text(f),
					)
				})),
			),
			Div(
				Class("card-actions mt-6"),
				A(Href(t.CTA.Href), Class(btnClass), g.Text(t.CTA.Text)),
			),
		),
	)
}
