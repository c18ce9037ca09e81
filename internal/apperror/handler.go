package apperror

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	g "maragu.dev/gomponents"
)

// PageFunc renders a full HTML page for an error shown to a browser.
type PageFunc func(e *Error) g.Node

// Responder writes errors to HTTP responses. API requests get the JSON
// envelope {"error": {...}}, browsers get the HTML page from Page.
type Responder struct {
	Log  *slog.Logger
	Page PageFunc
}

// NewResponder creates a Responder
func NewResponder(log *slog.Logger, page PageFunc) *Responder {
	return &Responder{Log: log, Page: page}
}

// Respond writes err to w
func (rs *Responder) Respond(w http.ResponseWriter, r *http.Request, err error) {
	appErr := As(err)

	// 5xx errors get logged at error level
	if appErr.HTTPStatus >= 500 && rs.Log != nil {
		rs.Log.Error("request error",
			slog.Int("status", appErr.HTTPStatus),
			slog.String("path", r.URL.Path),
			slog.String("error", appErr.Error()),
		)
	}

	if r.Method == http.MethodHead {
		w.WriteHeader(appErr.HTTPStatus)
		return
	}

	if wantsJSON(r) || rs.Page == nil {
		status, body := ToHTTPError(appErr)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(appErr.HTTPStatus)
	_ = rs.Page(appErr).Render(w)
}

// Handler adapts an error-returning handler to http.HandlerFunc
func (rs *Responder) Handler(fn func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			rs.Respond(w, r, err)
		}
	}
}

func wantsJSON(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return true
	}
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}
