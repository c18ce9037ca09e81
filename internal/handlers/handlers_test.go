package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emergent-company/showcase/internal/apperror"
	"github.com/emergent-company/showcase/internal/catalog"
	"github.com/emergent-company/showcase/internal/config"
	"github.com/emergent-company/showcase/internal/content"
	"github.com/emergent-company/showcase/internal/logger"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	c, err := catalog.Default()
	require.NoError(t, err)
	s, err := content.Default()
	require.NoError(t, err)

	h := NewHandler(Params{
		Config:  &config.Config{BaseURL: "https://nexo.example.com/"},
		Log:     logger.Discard(),
		Catalog: c,
		Site:    s,
	})

	r := chi.NewRouter()
	RegisterRoutes(r, h, apperror.NewResponder(logger.Discard(), nil))
	return r
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func parse(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return doc
}

func productSlugs(doc *goquery.Document) []string {
	var slugs []string
	doc.Find("[data-product]").Each(func(_ int, s *goquery.Selection) {
		slugs = append(slugs, s.AttrOr("data-product", ""))
	})
	return slugs
}

// visibleSlugs lists the explore cards a search left visible.
func visibleSlugs(doc *goquery.Document) []string {
	var slugs []string
	doc.Find("[data-explore-item]:not([hidden]) [data-product]").Each(func(_ int, s *goquery.Selection) {
		slugs = append(slugs, s.AttrOr("data-product", ""))
	})
	return slugs
}

func TestLandingPage(t *testing.T) {
	rec := get(t, newTestRouter(t), "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	doc := parse(t, rec)
	assert.Equal(t, []string{"adminpro", "educontrol", "stockflow", "citapro"}, productSlugs(doc))
	assert.Equal(t, 1, doc.Find("#hero").Length())
	assert.Equal(t, 1, doc.Find("#precios").Length())
	assert.Equal(t, 4, doc.Find("details").Length())
	assert.Equal(t, 0, doc.Find("details[open]").Length())
	assert.Equal(t, 2, doc.Find("#contacto a[data-contact]").Length())
	assert.Equal(t, "https://nexo.example.com/", doc.Find("link[rel=canonical]").AttrOr("href", ""))
}

func TestLandingPage_OpenFAQRows(t *testing.T) {
	doc := parse(t, get(t, newTestRouter(t), "/?faq=0,2,x,99"))

	open := doc.Find("details[open]")
	require.Equal(t, 2, open.Length())
	assert.Equal(t, "faq-0", open.Eq(0).AttrOr("id", ""))
	assert.Equal(t, "faq-2", open.Eq(1).AttrOr("id", ""))
}

func TestExplorePage(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		slugs []string
		empty bool
	}{
		{"no query", "/explore", []string{"adminpro", "educontrol", "stockflow", "citapro"}, false},
		{"react", "/explore?q=React", []string{"adminpro", "educontrol"}, false},
		{"lowercase", "/explore?q=react", []string{"adminpro", "educontrol"}, false},
		{"padded", "/explore?q=%20%20react%20", []string{"adminpro", "educontrol"}, false},
		{"category", "/explore?q=inventario", []string{"stockflow"}, false},
		{"whitespace only", "/explore?q=%20%20", []string{"adminpro", "educontrol", "stockflow", "citapro"}, false},
		{"no match", "/explore?q=kubernetes", nil, true},
	}

	r := newTestRouter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, r, tt.url)
			require.Equal(t, http.StatusOK, rec.Code)

			doc := parse(t, rec)
			assert.Equal(t, tt.slugs, visibleSlugs(doc))
			assert.Equal(t, 4, doc.Find("[data-explore-item]").Length())
			assert.Equal(t, tt.empty, doc.Find("[data-empty-state]:not([hidden])").Length() == 1)
			assert.Equal(t, 1, doc.Find(`script[src="/static/js/explore.js"]`).Length())
		})
	}
}

func TestExplorePage_EscapesQuery(t *testing.T) {
	rec := get(t, newTestRouter(t), "/explore?q=%3Cscript%3Ealert(1)%3C%2Fscript%3E")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<script>alert(1)</script>")
	assert.Contains(t, rec.Body.String(), "&lt;script&gt;alert(1)&lt;/script&gt;")
}

func TestProductPage(t *testing.T) {
	r := newTestRouter(t)

	rec := get(t, r, "/products/citapro")
	require.Equal(t, http.StatusOK, rec.Code)
	doc := parse(t, rec)
	assert.Equal(t, "CitaPro", doc.Find("h1").Text())
	assert.Equal(t, "CitaPro - Nexo Digital", doc.Find("title").Text())

	rec = get(t, r, "/products/ghost")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListProducts(t *testing.T) {
	r := newTestRouter(t)

	rec := get(t, r, "/api/products?q=REACT")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ProductsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "REACT", body.Query)
	assert.Equal(t, 4, body.Total)
	assert.Equal(t, 2, body.Count)
	require.Len(t, body.Products, 2)
	assert.Equal(t, "AdminPro", body.Products[0].Title)
	assert.Equal(t, "EduControl", body.Products[1].Title)

	rec = get(t, r, "/api/products?q=zzz")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 0, body.Count)
	assert.NotNil(t, body.Products)
	assert.Contains(t, rec.Body.String(), `"products":[]`)
}

func TestGetProduct(t *testing.T) {
	r := newTestRouter(t)

	rec := get(t, r, "/api/products/stockflow")
	require.Equal(t, http.StatusOK, rec.Code)
	var p catalog.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "StockFlow", p.Title)
	assert.Equal(t, []string{"Vue.js", "Laravel", "MySQL"}, p.Stack)

	rec = get(t, r, "/api/products/ghost")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"product_not_found"`)
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestRouter(t), "/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var body HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, 4, body.Products)
	assert.NotEmpty(t, body.Version.Version)
}

func TestParseIndexes(t *testing.T) {
	assert.Nil(t, parseIndexes(""))
	assert.Equal(t, []int{1, 3}, parseIndexes("1, 3"))
	assert.Equal(t, []int{0}, parseIndexes("0,-2,abc,"))
}
