package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/emergent-company/showcase/internal/content"
	"github.com/emergent-company/showcase/internal/ui"
)

var contactStyles = map[content.ContactKind]struct {
	icon  string
	class string
}{
	content.ContactWhatsApp: {"lucide--message-circle", "btn btn-success btn-lg"},
	content.ContactEmail:    {"lucide--mail", "btn btn-primary btn-lg"},
	content.ContactWeb:      {"lucide--globe", "btn btn-outline btn-lg"},
}

// ContactButton renders both labels of a contact button; contact.js slides
// the confirmation in on click and back out after the confirm delay.
func ContactButton(b *ui.ContactButton, kind content.ContactKind) g.Node {
	style, ok := contactStyles[kind]
	if !ok {
		style = contactStyles[content.ContactWeb]
	}

	return A(
		Href(b.Href),
		Target(b.Target()),
		Rel("noopener noreferrer"),
		Class(style.class+" contact-button relative overflow-hidden min-w-[200px] active:scale-95 transition-all duration-200"),
		g.Attr("data-contact", ""),
		g.Attr("data-confirm-ms", strconv.FormatInt(ui.ContactConfirmDelay.Milliseconds(), 10)),
		g.If(b.Clicked(), g.Attr("data-clicked", "true")),
		Span(
			Class("contact-label inline-flex items-center gap-2"),
			Icon(style.icon+" size-5", ""),
			g.Text(b.Label),
		),
		Span(
			Class("contact-confirm absolute inset-0 flex items-center justify-center gap-2 font-bold"),
			g.Attr("aria-hidden", "true"),
			Icon("lucide--check size-5", ""),
			g.Text(b.ConfirmLabel),
		),
	)
}
