package components

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/emergent-company/showcase/internal/content"
	"github.com/emergent-company/showcase/internal/ui"
)

// PageFooter holds the contact call to action and the site links.
func PageFooter(site *content.Site, year int) g.Node {
	if year == 0 {
		year = time.Now().Year()
	}

	return Footer(
		Class("relative border-t border-base-300"),

		Div(
			ID("contacto"),
			Class("container mx-auto px-4 py-16 text-center scroll-mt-20"),
			Reveal(0, "",
				P(Class("font-bold text-2xl sm:text-3xl lg:text-4xl"), g.Text("¿Listo para empezar?")),
				P(Class("inline-block mt-3 max-w-2xl text-base-content/80"), g.Text(site.Brand.Tagline)),
			),
			Reveal(stagger(1), "",
				Div(
					Class("mt-8 flex flex-wrap justify-center gap-4"),
					g.Group(g.Map(site.Contacts, func(c content.Contact) g.Node {
						return ContactButton(ui.NewContactButton(c.Href, c.Label, nil), c.Kind)
					})),
				),
			),
		),

		Div(
			Class("container mx-auto px-4 grid grid-cols-2 md:grid-cols-4 gap-6 py-10 border-t border-base-300"),
			Div(
				Class("col-span-2"),
				Logo(site.Brand.Name),
				P(Class("mt-3 max-sm:text-sm text-base-content/80"), g.Text(site.Brand.Description)),
			),
			Div(
				P(Class("font-medium"), g.Text("Sitio")),
				Div(
					Class("flex flex-col space-y-1.5 mt-4 text-base-content/80"),
					g.Group(g.Map(navItems, func(item navItem) g.Node {
						return A(Href(item.Href), g.Text(item.Label))
					})),
				),
			),
			Div(
				P(Class("font-medium"), g.Text("Contacto")),
				Div(
					Class("flex flex-col space-y-1.5 mt-4 text-base-content/80"),
					g.Group(g.Map(site.Contacts, func(c content.Contact) g.Node {
						return A(Href(c.Href), Target(ui.NewContactButton(c.Href, c.Label, nil).Target()), g.Text(c.Label))
					})),
				),
			),
		),

		Div(
			Class("container mx-auto px-4 py-6 border-t border-base-300 text-sm text-base-content/60"),
			P(g.Text(fmt.Sprintf("© %d %s. Todos los derechos reservados.", year, site.Brand.Name))),
		),
	)
}
