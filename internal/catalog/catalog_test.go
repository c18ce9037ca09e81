package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Default()
	require.NoError(t, err)
	return c
}

func titles(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Title
	}
	return out
}

func TestDefault(t *testing.T) {
	c := defaultCatalog(t)

	assert.Equal(t, 4, c.Len())
	assert.Equal(t, []string{"AdminPro", "EduControl", "StockFlow", "CitaPro"}, titles(c.Products()))

	p, ok := c.BySlug("educontrol")
	require.True(t, ok)
	assert.Equal(t, "Educación", p.Category)
	assert.Len(t, p.Metrics, 3)
	assert.Contains(t, p.Stack, "React")

	_, ok = c.BySlug("missing")
	assert.False(t, ok)
}

func TestProducts_ReturnsCopies(t *testing.T) {
	c := defaultCatalog(t)

	first := c.Products()
	first[0].Title = "Mutated"
	first[0].Stack[0] = "COBOL"
	first[0].Metrics[0].Label = "Mutated"

	p, ok := c.BySlug("adminpro")
	require.True(t, ok)
	p.Stack[0] = "Fortran"

	again := c.Products()
	assert.Equal(t, "AdminPro", again[0].Title)
	assert.Equal(t, "React", again[0].Stack[0])
	assert.Equal(t, "Reportes en tiempo real", again[0].Metrics[0].Label)

	filtered := c.Filter("react")
	filtered[0].Stack[0] = "Angular"
	assert.Equal(t, "React", c.Products()[0].Stack[0])
}

func TestNew_CopiesInput(t *testing.T) {
	in := []Product{{Slug: "a", Title: "A", Stack: []string{"Go"}}}
	c, err := New(in)
	require.NoError(t, err)

	in[0].Stack[0] = "Rust"
	assert.Equal(t, "Go", c.Products()[0].Stack[0])
}

func TestNew_DuplicateSlug(t *testing.T) {
	_, err := New([]Product{{Slug: "a"}, {Slug: "a"}})
	assert.True(t, errors.Is(err, ErrDuplicateSlug))
}

func TestLoad_Errors(t *testing.T) {
	valid := `
products:
  - slug: demo
    title: Demo
    category: Test
    problem: p
    solution: s
    stack: [Go]
    cta_link: https://example.com
    cta_text: Go
    color_class: primary
`
	_, err := Load(strings.NewReader(valid))
	require.NoError(t, err)

	tests := []struct {
		name string
		doc  string
	}{
		{"unknown field", strings.Replace(valid, "title: Demo", "title: Demo\n    price: 10", 1)},
		{"bad slug", strings.Replace(valid, "slug: demo", "slug: Demo Product", 1)},
		{"bad link", strings.Replace(valid, "https://example.com", "javascript:alert(1)", 1)},
		{"missing title", strings.Replace(valid, "title: Demo", "title: \"\"", 1)},
		{"empty stack tag", strings.Replace(valid, "[Go]", "[Go, \"\"]", 1)},
		{"unknown color", strings.Replace(valid, "color_class: primary", "color_class: neon", 1)},
		{"no products", "products: []\n"},
		{"not yaml", "products: [\n"},
		{"duplicate slug", valid + strings.Replace(valid, "products:\n", "", 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.yaml")
	require.NoError(t, os.WriteFile(path, defaultProducts, 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
