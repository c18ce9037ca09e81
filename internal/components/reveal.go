package components

import (
	"strconv"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/emergent-company/showcase/internal/ui"
)

// Reveal wraps content in an entrance transition that reveal.js starts the
// first time the wrapper scrolls into view. Without the script the content
// renders in its final visible state.
func Reveal(delay time.Duration, extraClass string, children ...g.Node) g.Node {
	return RevealState(ui.NewReveal(delay), extraClass, children...)
}

// RevealState renders a wrapper for an existing reveal state.
func RevealState(r *ui.Reveal, extraClass string, children ...g.Node) g.Node {
	classes := r.Classes()
	if extraClass != "" {
		classes += " " + extraClass
	}
	return Div(
		Class(classes),
		g.Attr("data-reveal", ""),
		g.Attr("data-reveal-threshold", strconv.FormatFloat(ui.DefaultObserverOptions.Threshold, 'f', -1, 64)),
		g.Attr("data-reveal-margin", ui.DefaultObserverOptions.RootMargin),
		g.Attr("style", r.Style()),
		g.Group(children),
	)
}

// stagger spaces out sibling reveals.
func stagger(i int) time.Duration {
	return time.Duration(i) * 100 * time.Millisecond
}
