package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/emergent-company/showcase/internal/content"
)

func Hero(h content.Hero) g.Node {
	return g.Group([]g.Node{
		Section(
			Class("relative overflow-hidden pt-32 pb-20 md:pt-40 md:pb-28"),
			ID("hero"),

			Div(
				Class("container mx-auto px-4 text-center max-w-4xl"),

				g.If(h.Eyebrow != "", Reveal(0, "",
					Span(
						Class("inline-flex items-center rounded-full border border-primary/20 bg-primary/5 px-3 py-1 text-sm font-medium text-primary"),
						g.Text(h.Eyebrow),
					),
				)),

				Reveal(stagger(1), "",
					H1(
						Class("mt-5 text-4xl leading-tight font-extrabold tracking-tight md:text-5xl xl:text-6xl"),
						g.Text(h.Headline),
						g.If(h.Highlight != "", g.Group([]g.Node{
							Br(),
							Span(
								Class("bg-linear-to-r from-primary via-secondary to-accent bg-clip-text text-transparent"),
								g.Text(h.Highlight),
							),
						})),
					),
				),

				Reveal(stagger(2), "",
					P(
						Class("text-base-content/80 mt-6 text-lg max-w-2xl mx-auto"),
						g.Text(h.Subheadline),
					),
				),

				Reveal(stagger(3), "",
					Div(
						Class("mt-8 inline-flex flex-wrap justify-center gap-3"),
						A(
							Href(h.PrimaryCTA.Href),
							Class("btn btn-primary shadow-primary/20 shadow-xl"),
							g.Text(h.PrimaryCTA.Text),
							Icon("lucide--arrow-right size-4", ""),
						),
						g.Iff(h.SecondaryCTA != nil, func() g.Node {
							return A(
								Href(h.SecondaryCTA.Href),
								Class("btn btn-ghost"),
								Icon("lucide--search size-4", ""),
								g.Text(h.SecondaryCTA.Text),
							)
						}),
					),
				),
			),
		),

		Div(Class("from-primary via-secondary to-accent h-1 w-full bg-linear-to-r")),
	})
}
