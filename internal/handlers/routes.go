package handlers

import (
	"github.com/go-chi/chi/v5"

	"github.com/emergent-company/showcase/internal/apperror"
)

// RegisterRoutes registers the page and API routes
func RegisterRoutes(r chi.Router, h *Handler, rs *apperror.Responder) {
	r.Get("/", rs.Handler(h.LandingPage))
	r.Get("/explore", rs.Handler(h.ExplorePage))
	r.Get("/products/{slug}", rs.Handler(h.ProductPage))

	r.Get("/health", rs.Handler(h.Health))

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", rs.Handler(h.ListProducts))
		r.Get("/products/{slug}", rs.Handler(h.GetProduct))
	})
}
