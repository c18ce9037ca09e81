package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/emergent-company/showcase/internal/apperror"
	"github.com/emergent-company/showcase/internal/catalog"
	"github.com/emergent-company/showcase/internal/metrics"
	"github.com/emergent-company/showcase/internal/version"
)

// ProductsResponse is the body of GET /api/products
type ProductsResponse struct {
	Query    string            `json:"query"`
	Total    int               `json:"total"`
	Count    int               `json:"count"`
	Products []catalog.Product `json:"products"`
}

// ListProducts returns the products matching ?q= as JSON. explore.js uses it
// to filter the grid in place.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) error {
	query := catalog.NormalizeQuery(r.URL.Query().Get("q"))
	results := h.catalog.Filter(query)
	metrics.ObserveSearch("api", query, len(results))

	return writeJSON(w, http.StatusOK, ProductsResponse{
		Query:    query,
		Total:    h.catalog.Len(),
		Count:    len(results),
		Products: results,
	})
}

// GetProduct returns one product as JSON
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) error {
	slug := chi.URLParam(r, "slug")
	p, ok := h.catalog.BySlug(slug)
	if !ok {
		return apperror.NewProductNotFound(slug)
	}
	return writeJSON(w, http.StatusOK, p)
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status   string              `json:"status"`
	Version  version.VersionInfo `json:"version"`
	Products int                 `json:"products"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) error {
	return writeJSON(w, http.StatusOK, HealthResponse{
		Status:   "ok",
		Version:  version.Info(),
		Products: h.catalog.Len(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return apperror.NewInternal("failed to encode response", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
	return nil
}
