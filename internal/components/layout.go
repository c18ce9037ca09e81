package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	Theme       string
	OGImage     string
	// Canonical is the absolute URL of the page, used for og:url
	Canonical string
	// Scripts are extra module scripts loaded after the shared ones
	Scripts []string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Theme == "" {
		config.Theme = "corporate"
	}

	if config.Title == "" {
		config.Title = "Nexo Digital - Software a la medida"
	}

	if config.OGImage == "" {
		config.OGImage = "/static/images/og-image.svg"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("es"),
			g.Attr("data-theme", config.Theme),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				g.If(config.Description != "", Meta(Name("description"), Content(config.Description))),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				g.If(config.Description != "", Meta(g.Attr("property", "og:description"), Content(config.Description))),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Meta(g.Attr("property", "og:image"), Content(config.OGImage)),
				g.If(config.Canonical != "", g.Group([]g.Node{
					Meta(g.Attr("property", "og:url"), Content(config.Canonical)),
					Link(Rel("canonical"), Href(config.Canonical)),
				})),

				Link(Rel("icon"), Href("/static/images/favicon.svg"), Type("image/svg+xml")),

				Link(Rel("stylesheet"), Href("https://cdn.jsdelivr.net/npm/daisyui@5")),
				Script(Src("https://cdn.jsdelivr.net/npm/@tailwindcss/browser@4")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),

				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				Class("bg-base-100 text-base-content"),
				g.Group(content),

				Script(Type("module"), Src("/static/js/reveal.js")),
				Script(Type("module"), Src("/static/js/contact.js")),
				g.Group(g.Map(config.Scripts, func(src string) g.Node {
					return Script(Type("module"), Src(src))
				})),
			),
		),
	})
}
