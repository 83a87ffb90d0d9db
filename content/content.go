// Package content holds the copy the landing page is rendered from.
// The production tables live in cfa.yaml and are embedded into the binary.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"

	"cfa_site/models"

	"gopkg.in/yaml.v3"
)

//go:embed cfa.yaml
var defaultTables []byte

var (
	defaultContent *models.Content
	defaultErr     error
	defaultOnce    sync.Once
)

// Default returns the embedded production content. It is parsed once per process.
func Default() (*models.Content, error) {
	defaultOnce.Do(func() {
		defaultContent, defaultErr = Parse(defaultTables)
	})
	return defaultContent, defaultErr
}

// MustDefault is Default for callers that cannot recover from a broken binary
func MustDefault() *models.Content {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes a YAML document into content tables
func Parse(data []byte) (*models.Content, error) {
	var c models.Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to decode content tables: %w", err)
	}
	return &c, nil
}

// LoadFile reads content tables from a YAML file on disk
func LoadFile(path string) (*models.Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file %s: %w", path, err)
	}
	return Parse(data)
}

// Load returns the override file when path is set, the embedded tables otherwise
func Load(path string) (*models.Content, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Validate reports every record with an empty required field.
// The render path never calls it; it backs tests and `cfa export --check`.
func Validate(c *models.Content) error {
	var errs []error
	missing := func(section string, i int, field string) {
		errs = append(errs, fmt.Errorf("%s[%d]: %s is empty", section, i, field))
	}

	for i, f := range c.Features.Items {
		if f.Icon == "" {
			missing("features", i, "icon")
		}
		if f.Title == "" {
			missing("features", i, "title")
		}
		if f.Description == "" {
			missing("features", i, "description")
		}
	}
	for i, s := range c.Steps.Items {
		if s.Step == "" {
			missing("steps", i, "step")
		}
		if s.Title == "" {
			missing("steps", i, "title")
		}
		if s.Description == "" {
			missing("steps", i, "description")
		}
	}
	for i, it := range c.Integrations.Items {
		if it.Name == "" {
			missing("integrations", i, "name")
		}
		if it.Logo == "" {
			missing("integrations", i, "logo")
		}
	}
	for i, t := range c.Testimonials.Items {
		if t.Quote == "" {
			missing("testimonials", i, "quote")
		}
		if t.Metric == "" {
			missing("testimonials", i, "metric")
		}
		if t.Company == "" {
			missing("testimonials", i, "company")
		}
		if t.Benefit == "" {
			missing("testimonials", i, "benefit")
		}
	}
	for i, item := range c.Compliance.Items {
		if item.Icon == "" {
			missing("compliance", i, "icon")
		}
		if item.Title == "" {
			missing("compliance", i, "title")
		}
		if item.Description == "" {
			missing("compliance", i, "description")
		}
	}

	return errors.Join(errs...)
}
