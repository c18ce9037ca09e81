package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/emergent-company/showcase/internal/content"
)

var serviceColors = []string{"primary", "secondary", "accent"}

func Services(services []content.Service) g.Node {
	cards := make([]g.Node, len(services))
	for i, s := range services {
		color := serviceColors[i%len(serviceColors)]
		cards[i] = Reveal(stagger(i), "",
			Div(
				Class("hover:bg-base-200/40 border border-base-300 hover:border-base-300/60 transition-all duration-300 card h-full"),
				Div(
					Class("card-body"),
					IconBadge(s.Icon, color),
					H3(Class("mt-4 font-semibold text-xl"), g.Text(s.Title)),
					P(Class("mt-2 text-sm text-base-content/80 leading-relaxed"), g.Text(s.Description)),
				),
			),
		)
	}

	return Section(
		Class("py-12 md:py-20 container mx-auto px-4"),
		SectionHeading("servicios", "lucide--sparkles", "Qué hacemos",
			"Además de nuestros productos, acompañamos a tu equipo en cada etapa de su transformación digital."),
		Div(
			Class("gap-6 2xl:gap-8 grid grid-cols-1 md:grid-cols-3 mt-12"),
			g.Group(cards),
		),
	)
}
