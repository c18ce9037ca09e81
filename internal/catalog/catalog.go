// Package catalog holds the product listings advertised by the site and the
// free-text filter used by the explore view.
//
// A Catalog is built once at startup and never mutated afterwards. Accessors
// hand out copies so callers cannot reach the backing slices.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/emergent-company/showcase/internal/validate"
)

//go:embed products.yaml
var defaultProducts []byte

// Metric is one labeled feature or benefit, with the text shown in its tooltip.
type Metric struct {
	Label   string `yaml:"label" json:"label" validate:"required"`
	Tooltip string `yaml:"tooltip" json:"tooltip" validate:"required"`
}

// Product describes one offered product, rendered as a card.
type Product struct {
	Slug       string   `yaml:"slug" json:"slug" validate:"required,slug"`
	Title      string   `yaml:"title" json:"title" validate:"required"`
	Category   string   `yaml:"category" json:"category" validate:"required"`
	Problem    string   `yaml:"problem" json:"problem" validate:"required"`
	Solution   string   `yaml:"solution" json:"solution" validate:"required"`
	Metrics    []Metric `yaml:"metrics" json:"metrics" validate:"dive"`
	Stack      []string `yaml:"stack" json:"stack" validate:"dive,required"`
	CTALink    string   `yaml:"cta_link" json:"cta_link" validate:"required,link"`
	CTAText    string   `yaml:"cta_text" json:"cta_text" validate:"required"`
	ColorClass string   `yaml:"color_class" json:"color_class" validate:"required,oneof=primary secondary accent success info warning"`
}

func (p Product) clone() Product {
	p.Metrics = append([]Metric(nil), p.Metrics...)
	p.Stack = append([]string(nil), p.Stack...)
	return p
}

type document struct {
	Products []Product `yaml:"products" validate:"required,min=1,dive"`
}

// Catalog is the ordered, immutable list of products.
type Catalog struct {
	products []Product
	bySlug   map[string]int
}

// ErrDuplicateSlug is returned when two products share a slug.
var ErrDuplicateSlug = errors.New("duplicate product slug")

// Load parses and validates a products YAML document.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}
	return New(doc.Products)
}

// LoadFile loads a catalog from a YAML file on disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultProducts))
}

// New builds a catalog from products, copying them.
func New(products []Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		bySlug:   make(map[string]int, len(products)),
	}
	for _, p := range products {
		if _, dup := c.bySlug[p.Slug]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSlug, p.Slug)
		}
		c.bySlug[p.Slug] = len(c.products)
		c.products = append(c.products, p.clone())
	}
	return c, nil
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Products returns all products in display order.
func (c *Catalog) Products() []Product {
	return cloneAll(c.products)
}

// BySlug looks up a product by slug.
func (c *Catalog) BySlug(slug string) (Product, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Product{}, false
	}
	return c.products[i].clone(), true
}

// Filter returns the products matching query, in display order.
func (c *Catalog) Filter(query string) []Product {
	return cloneAll(Filter(c.products, query))
}

func cloneAll(products []Product) []Product {
	out := make([]Product, len(products))
	for i, p := range products {
		out[i] = p.clone()
	}
	return out
}
