// Package classification resolves workspace export files to taxonomy categories.
package classification

import (
	"fmt"
	"strings"

	"github.com/Veraticus/kurmi-workspace/internal/common"
	"github.com/Veraticus/kurmi-workspace/internal/model"
)

// Taxonomy is an ordered, read-only list of categories.
type Taxonomy struct {
	byID       map[string]int
	categories []model.Category
}

var defaultTaxonomy = mustTaxonomy(DefaultCategories())

// Default returns the process-wide canonical taxonomy.
func Default() *Taxonomy {
	return defaultTaxonomy
}

// NewTaxonomy validates the categories and keeps them in the given order.
func NewTaxonomy(categories []model.Category) (*Taxonomy, error) {
	t := &Taxonomy{
		byID:       make(map[string]int, len(categories)),
		categories: make([]model.Category, 0, len(categories)),
	}

	for i, c := range categories {
		if strings.TrimSpace(c.ID) == "" {
			return nil, fmt.Errorf("%w: category at index %d has no id", common.ErrInvalidConfig, i)
		}
		if _, dup := t.byID[c.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate category %q", common.ErrInvalidConfig, c.ID)
		}
		if len(c.Patterns) == 0 {
			return nil, fmt.Errorf("%w: category %q has no patterns", common.ErrInvalidConfig, c.ID)
		}
		for _, p := range c.Patterns {
			if !strings.HasPrefix(p, model.PatternWildcard) || len(p) == len(model.PatternWildcard) {
				return nil, fmt.Errorf("%w: category %q pattern %q must be \"*<suffix>\"", common.ErrInvalidConfig, c.ID, p)
			}
		}

		patterns := append([]string(nil), c.Patterns...)
		t.byID[c.ID] = len(t.categories)
		t.categories = append(t.categories, model.Category{
			ID:          c.ID,
			Description: c.Description,
			Patterns:    patterns,
		})
	}

	return t, nil
}

func mustTaxonomy(categories []model.Category) *Taxonomy {
	t, err := NewTaxonomy(categories)
	if err != nil {
		panic(err)
	}
	return t
}

// Categories returns a copy of the categories in canonical order.
func (t *Taxonomy) Categories() []model.Category {
	out := make([]model.Category, len(t.categories))
	copy(out, t.categories)
	return out
}

// IDs returns the category identifiers in canonical order.
func (t *Taxonomy) IDs() []string {
	ids := make([]string, 0, len(t.categories))
	for _, c := range t.categories {
		ids = append(ids, c.ID)
	}
	return ids
}

// Lookup returns the category with the given id.
func (t *Taxonomy) Lookup(id string) (model.Category, bool) {
	i, ok := t.byID[id]
	if !ok {
		return model.Category{}, false
	}
	return t.categories[i], true
}

// Subset returns the named categories in canonical order, whatever order ids
// were given in. An empty ids list selects every category.
func (t *Taxonomy) Subset(ids []string) ([]model.Category, error) {
	if len(ids) == 0 {
		return t.Categories(), nil
	}

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, ok := t.byID[id]; !ok {
			return nil, fmt.Errorf("%w: %s", common.ErrUnknownCategory, id)
		}
		wanted[id] = true
	}

	subset := make([]model.Category, 0, len(wanted))
	for _, c := range t.categories {
		if wanted[c.ID] {
			subset = append(subset, c)
		}
	}
	return subset, nil
}

// Resolve returns the first category, in the order given, whose patterns match
// the basename. Later matches are never considered.
func Resolve(categories []model.Category, basename string) (model.Category, bool) {
	for _, c := range categories {
		if c.Matches(basename) {
			return c, true
		}
	}
	return model.Category{}, false
}
