package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorError(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "without internal error",
			err:      &Error{HTTPStatus: http.StatusNotFound, Code: "not_found", Message: "Page not found"},
			expected: "not_found: Page not found",
		},
		{
			name: "with internal error",
			err: &Error{
				HTTPStatus: http.StatusInternalServerError,
				Code:       "internal_error",
				Message:    "Something went wrong",
				Internal:   errors.New("render failed"),
			},
			expected: "internal_error: Something went wrong (render failed)",
		},
		{
			name:     "empty message",
			err:      &Error{HTTPStatus: http.StatusBadRequest, Code: "bad_request"},
			expected: "bad_request: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestWithCopiesDoNotMutateBase(t *testing.T) {
	inner := errors.New("boom")
	e := ErrNotFound.WithMessage("custom").WithInternal(inner).WithDetails(map[string]any{"k": "v"})

	if ErrNotFound.Message != "Page not found" {
		t.Errorf("base error mutated: %q", ErrNotFound.Message)
	}
	if e.Message != "custom" || e.Internal != inner || e.Details["k"] != "v" {
		t.Errorf("unexpected copy: %+v", e)
	}
	if !errors.Is(e, inner) {
		t.Error("errors.Is should reach the internal error")
	}
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", NewProductNotFound("nope"))
	if got := As(wrapped); got.Code != "product_not_found" {
		t.Errorf("As() code = %q, want product_not_found", got.Code)
	}

	plain := errors.New("plain")
	got := As(plain)
	if got.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("As() status = %d, want 500", got.HTTPStatus)
	}
	if !errors.Is(got, plain) {
		t.Error("As() should keep the original error as internal")
	}
}

func TestToHTTPError(t *testing.T) {
	status, body := ToHTTPError(NewProductNotFound("ghost"))
	if status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", status)
	}
	errObj := body["error"].(map[string]any)
	if errObj["code"] != "product_not_found" {
		t.Errorf("code = %v", errObj["code"])
	}
	if errObj["details"].(map[string]any)["slug"] != "ghost" {
		t.Errorf("details = %v", errObj["details"])
	}

	status, body = ToHTTPError(errors.New("hidden detail"))
	if status != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", status)
	}
	if msg := body["error"].(map[string]any)["message"]; msg != "An internal error occurred" {
		t.Errorf("internal details leaked: %v", msg)
	}
}
