// Package validate provides the shared struct validator for the catalog and
// landing content, with the custom tags those documents need.
package validate

import (
	"net/url"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var slugRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator returns the process-wide validator. validator.Validate caches
// struct metadata and is safe for concurrent use.
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugRe.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("link", func(fl validator.FieldLevel) bool {
			return IsLink(fl.Field().String())
		})
		instance = v
	})
	return instance
}

// Struct validates s with the shared validator.
func Struct(s any) error {
	return Validator().Struct(s)
}

// IsLink reports whether s is something a call-to-action may point at:
// an absolute http(s) URL, a mailto: or tel: link, a same-page anchor,
// or a site-relative path.
func IsLink(s string) bool {
	if s == "" || strings.ContainsAny(s, " \t\n") {
		return false
	}
	switch {
	case strings.HasPrefix(s, "#"):
		return len(s) > 1
	case strings.HasPrefix(s, "/"):
		return !strings.HasPrefix(s, "//")
	}

	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "http", "https":
		return u.Host != ""
	case "mailto", "tel":
		return u.Opaque != ""
	}
	return false
}
