package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type navItem struct {
	Href  string
	Label string
}

var navItems = []navItem{
	{"/#servicios", "Servicios"},
	{"/#productos", "Productos"},
	{"/#precios", "Precios"},
	{"/#faq", "Preguntas"},
	{"/explore", "Explorar"},
}

// Topbar is the fixed navigation bar. activePath marks the current route.
func Topbar(brand, activePath string) g.Node {
	return Header(
		Class("fixed inset-x-0 top-0 z-[60] bg-base-100/80 backdrop-blur border-b border-base-300"),
		Nav(
			Class("container mx-auto flex justify-between items-center px-4 py-3"),
			A(Href("/"), Logo(brand)),
			Ul(
				Class("hidden md:inline-flex gap-1 menu menu-horizontal"),
				g.Group(g.Map(navItems, func(item navItem) g.Node {
					return Li(A(
						Href(item.Href),
						g.If(item.Href == activePath, g.Group([]g.Node{
							Class("menu-active"),
							g.Attr("aria-current", "page"),
						})),
						g.Text(item.Label),
					))
				})),
			),
			A(
				Href("/#contacto"),
				Class("btn btn-primary btn-sm"),
				Icon("lucide--message-circle size-4", ""),
				Span(Class("max-sm:hidden"), g.Text("Contáctanos")),
			),
		),
	)
}
