// Package catalog holds the ordered, read-only set of recipe templates.
//
// Order matters: when two templates score the same against an ingredient
// list, the one declared first wins.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pageza/geladeira/backend/internal/models"
)

// ErrInvalidTemplate is returned when a template breaks a catalog invariant
var ErrInvalidTemplate = errors.New("invalid recipe template")

// Catalog is an immutable, ordered sequence of recipe templates
type Catalog struct {
	templates []models.RecipeTemplate
}

// New validates the templates and returns a catalog holding private copies of them
func New(templates ...models.RecipeTemplate) (*Catalog, error) {
	c := &Catalog{templates: make([]models.RecipeTemplate, 0, len(templates))}
	for i, t := range templates {
		if err := validate(t); err != nil {
			return nil, fmt.Errorf("template %d (%q): %w", i, t.Title, err)
		}
		c.templates = append(c.templates, clone(t))
	}
	return c, nil
}

// Len returns the number of templates
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.templates)
}

// At returns the template at position i. The caller must not modify its slices.
func (c *Catalog) At(i int) *models.RecipeTemplate {
	return &c.templates[i]
}

// Templates returns a copy of the templates in catalog order
func (c *Catalog) Templates() []models.RecipeTemplate {
	if c == nil {
		return nil
	}
	out := make([]models.RecipeTemplate, len(c.templates))
	for i, t := range c.templates {
		out[i] = clone(t)
	}
	return out
}

func validate(t models.RecipeTemplate) error {
	switch {
	case strings.TrimSpace(t.Title) == "":
		return fmt.Errorf("%w: title is required", ErrInvalidTemplate)
	case len(t.TriggerKeywords) == 0:
		return fmt.Errorf("%w: at least one trigger keyword is required", ErrInvalidTemplate)
	case len(t.Instructions) == 0:
		return fmt.Errorf("%w: at least one instruction is required", ErrInvalidTemplate)
	case t.Servings < 1:
		return fmt.Errorf("%w: servings must be at least 1", ErrInvalidTemplate)
	}

	seen := make(map[string]bool, len(t.TriggerKeywords))
	for _, kw := range t.TriggerKeywords {
		k := strings.ToLower(strings.TrimSpace(kw))
		if k == "" {
			return fmt.Errorf("%w: empty trigger keyword", ErrInvalidTemplate)
		}
		if seen[k] {
			return fmt.Errorf("%w: duplicate trigger keyword %q", ErrInvalidTemplate, kw)
		}
		seen[k] = true
	}
	return nil
}

func clone(t models.RecipeTemplate) models.RecipeTemplate {
	t.TriggerKeywords = append([]string(nil), t.TriggerKeywords...)
	t.Instructions = append([]string(nil), t.Instructions...)
	return t
}
