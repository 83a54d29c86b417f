// Package content holds the marketing catalog served to the site: company
// details, services, pricing plans, FAQ, and the seed testimonials.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/swiftmove/backend/internal/model"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// SeedTestimonial is a testimonial entry in the catalog file.
type SeedTestimonial struct {
	Name     string `yaml:"name"`
	Role     string `yaml:"role"`
	Location string `yaml:"location"`
	Rating   int    `yaml:"rating"`
	Text     string `yaml:"text"`
}

// Catalog is the full marketing content of the site.
type Catalog struct {
	Company      model.Company       `yaml:"company"`
	ServiceAreas []string            `yaml:"service_areas"`
	Services     []model.Service     `yaml:"services"`
	Pricing      []model.PricingPlan `yaml:"pricing"`
	FAQs         []model.FAQ         `yaml:"faqs"`
	Testimonials []SeedTestimonial   `yaml:"testimonials"`
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog from path, or returns the default catalog when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("content: decode: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	if c.Company.Name == "" {
		return errors.New("content: company.name is required")
	}
	for i, t := range c.Testimonials {
		if t.Name == "" || t.Text == "" {
			return fmt.Errorf("content: testimonial %d: name and text are required", i)
		}
		if t.Rating < 1 || t.Rating > 5 {
			return fmt.Errorf("content: testimonial %d: rating must be 1-5", i)
		}
	}
	return nil
}

// SeedTestimonials converts the catalog testimonials into model records.
func (c *Catalog) SeedTestimonials() []*model.Testimonial {
	out := make([]*model.Testimonial, 0, len(c.Testimonials))
	for _, t := range c.Testimonials {
		out = append(out, &model.Testimonial{
			Name:     t.Name,
			Role:     t.Role,
			Location: t.Location,
			Rating:   t.Rating,
			Text:     t.Text,
		})
	}
	return out
}
