package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/emergent-company/showcase/internal/apperror"
)

// ErrorPage is the HTML page shown to browsers for an application error.
func ErrorPage(brand string) apperror.PageFunc {
	return func(e *apperror.Error) g.Node {
		return Layout(
			PageConfig{Title: fmt.Sprintf("%d - %s", e.HTTPStatus, brand)},
			Topbar(brand, ""),
			Main(
				Class("min-h-screen flex items-center justify-center px-4"),
				Div(
					Class("text-center"),
					P(Class("font-black text-7xl text-base-content/20"), g.Text(fmt.Sprint(e.HTTPStatus))),
					H1(Class("mt-4 font-semibold text-2xl"), g.Text(e.Message)),
					A(Href("/"), Class("btn btn-primary mt-8"), g.Text("Volver al inicio")),
				),
			),
		)
	}
}
