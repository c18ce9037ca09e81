package apperror

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/emergent-company/showcase/internal/logger"
)

func testPage(e *Error) g.Node {
	return P(Class("error"), g.Text(e.Message))
}

func TestRespond_APIRequestGetsJSON(t *testing.T) {
	rs := NewResponder(logger.Discard(), testPage)

	req := httptest.NewRequest(http.MethodGet, "/api/products/x", nil)
	rec := httptest.NewRecorder()
	rs.Respond(rec, req, NewProductNotFound("x"))

	if rec.Code != http.StatusNotFound {
		t.Errorf("Status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	errObj := resp["error"].(map[string]any)
	if errObj["code"] != "product_not_found" {
		t.Errorf("Code = %v, want product_not_found", errObj["code"])
	}
	if errObj["message"] != "Product not found" {
		t.Errorf("Message = %v, want 'Product not found'", errObj["message"])
	}
}

func TestRespond_BrowserGetsHTML(t *testing.T) {
	rs := NewResponder(logger.Discard(), testPage)

	req := httptest.NewRequest(http.MethodGet, "/products/ghost", nil)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	rec := httptest.NewRecorder()
	rs.Respond(rec, req, ErrProductNotFound)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `<p class="error">Product not found</p>`) {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestRespond_UnknownErrorIsInternal(t *testing.T) {
	rs := NewResponder(logger.Discard(), nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	rs.Respond(rec, req, errors.New("template exploded"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Status = %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "template exploded") {
		t.Error("internal error text must not reach the client")
	}
}

func TestRespond_HeadHasNoBody(t *testing.T) {
	rs := NewResponder(logger.Discard(), testPage)

	req := httptest.NewRequest(http.MethodHead, "/missing", nil)
	rec := httptest.NewRecorder()
	rs.Respond(rec, req, ErrNotFound)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Status = %d, want 404", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("HEAD body should be empty, got %q", rec.Body.String())
	}
}

func TestHandler(t *testing.T) {
	rs := NewResponder(logger.Discard(), testPage)
	h := rs.Handler(func(w http.ResponseWriter, r *http.Request) error {
		if r.URL.Query().Get("fail") != "" {
			return NewProductNotFound("42")
		}
		w.WriteHeader(http.StatusNoContent)
		return nil
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/api/things", nil))
	if rec.Code != http.StatusNoContent {
		t.Errorf("Status = %d, want 204", rec.Code)
	}

	rec = httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/api/things?fail=1", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("Status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"slug":"42"`) {
		t.Errorf("body = %q", rec.Body.String())
	}
}
