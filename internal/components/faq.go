package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/emergent-company/showcase/internal/content"
	"github.com/emergent-company/showcase/internal/ui"
)

// FAQ renders questions as independent accordion rows. state decides which
// rows start expanded; a nil state renders them all collapsed.
func FAQ(questions []content.Question, state *ui.Accordion) g.Node {
	if state == nil {
		state = ui.NewAccordion(len(questions))
	}

	rows := make([]g.Node, len(questions))
	for i, q := range questions {
		rows[i] = AccordionRow(i, q, state.Expanded(i))
	}

	return Section(
		Class("py-12 md:py-20 container mx-auto px-4 max-w-3xl"),
		SectionHeading("faq", "lucide--help-circle", "Preguntas frecuentes", ""),
		Reveal(0, "",
			Div(
				Class("mt-10 space-y-3"),
				g.Group(rows),
			),
		),
	)
}

// AccordionRow is a native disclosure widget: the browser toggles it without
// scripts and only its own answer region changes.
func AccordionRow(index int, q content.Question, expanded bool) g.Node {
	return Details(
		ID(fmt.Sprintf("faq-%d", index)),
		Class("collapse collapse-arrow border border-base-300 bg-base-100"),
		g.If(expanded, g.Attr("open")),
		Summary(
			Class("collapse-title font-medium"),
			g.Text(q.Question),
		),
		Div(
			Class("collapse-content text-sm text-base-content/80"),
			P(g.Text(q.Answer)),
		),
	)
}
