// Package content holds the landing page copy: hero, services, pricing,
// FAQ and contact channels. Like the catalog it is loaded once and read-only.
package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/emergent-company/showcase/internal/validate"
)

//go:embed site.yaml
var defaultSite []byte

type Brand struct {
	Name        string `yaml:"name" validate:"required"`
	Tagline     string `yaml:"tagline" validate:"required"`
	Description string `yaml:"description" validate:"required"`
}

type Link struct {
	Text string `yaml:"text" validate:"required"`
	Href string `yaml:"href" validate:"required,link"`
}

type Hero struct {
	Eyebrow      string `yaml:"eyebrow"`
	Headline     string `yaml:"headline" validate:"required"`
	Highlight    string `yaml:"highlight"`
	Subheadline  string `yaml:"subheadline" validate:"required"`
	PrimaryCTA   Link   `yaml:"primary_cta"`
	SecondaryCTA *Link  `yaml:"secondary_cta"`
}

type Service struct {
	Icon        string `yaml:"icon" validate:"required"`
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description" validate:"required"`
}

// Tier is one pricing tile.
type Tier struct {
	Name        string   `yaml:"name" validate:"required"`
	Price       string   `yaml:"price" validate:"required"`
	Period      string   `yaml:"period"`
	Description string   `yaml:"description"`
	Highlighted bool     `yaml:"highlighted"`
	Features    []string `yaml:"features" validate:"min=1,dive,required"`
	CTA         Link     `yaml:"cta"`
}

// Question is one FAQ accordion row.
type Question struct {
	Question string `yaml:"question" validate:"required"`
	Answer   string `yaml:"answer" validate:"required"`
}

// ContactKind selects the icon and link target of a contact button.
type ContactKind string

const (
	ContactEmail    ContactKind = "email"
	ContactWhatsApp ContactKind = "whatsapp"
	ContactWeb      ContactKind = "web"
)

// Contact is a footer contact button.
type Contact struct {
	Kind  ContactKind `yaml:"kind" validate:"required,oneof=email whatsapp web"`
	Label string      `yaml:"label" validate:"required"`
	Href  string      `yaml:"href" validate:"required,link"`
}

// Site is all landing page copy.
type Site struct {
	Brand    Brand      `yaml:"brand"`
	Hero     Hero       `yaml:"hero"`
	Services []Service  `yaml:"services" validate:"dive"`
	Pricing  []Tier     `yaml:"pricing" validate:"dive"`
	FAQ      []Question `yaml:"faq" validate:"dive"`
	Contacts []Contact  `yaml:"contacts" validate:"min=1,dive"`
}

// Load parses and validates a site YAML document.
func Load(r io.Reader) (*Site, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Site
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode site content: %w", err)
	}
	if err := validate.Struct(s); err != nil {
		return nil, fmt.Errorf("validate site content: %w", err)
	}
	return &s, nil
}

// LoadFile loads site content from a YAML file on disk.
func LoadFile(path string) (*Site, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open site content: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the site content compiled into the binary.
func Default() (*Site, error) {
	return Load(bytes.NewReader(defaultSite))
}
