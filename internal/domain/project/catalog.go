package project

import (
	"fmt"
	"slices"
	"strings"
)

// Catalog is the read-only project list. It is built once and shared by
// every consumer; all queries return fresh slices.
type Catalog struct {
	projects []Project
	byID     map[string]int
}

// NewCatalog validates projects and builds a catalog in the given order.
func NewCatalog(projects []Project) (*Catalog, error) {
	c := &Catalog{
		projects: make([]Project, 0, len(projects)),
		byID:     make(map[string]int, len(projects)),
	}
	for i, p := range projects {
		if strings.TrimSpace(p.ID) == "" {
			return nil, fmt.Errorf("%w: project at position %d has no id", ErrInvalidCatalog, i)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidCatalog, p.ID)
		}
		if p.IsFeatured && len(p.Images) == 0 {
			return nil, fmt.Errorf("%w: featured project %q has no images", ErrInvalidCatalog, p.ID)
		}
		c.byID[p.ID] = len(c.projects)
		c.projects = append(c.projects, p.clone())
	}
	return c, nil
}

// Len returns the number of projects.
func (c *Catalog) Len() int {
	return len(c.projects)
}

// ListAll returns every project in catalog order.
func (c *Catalog) ListAll() []Project {
	return c.collect(func(Project) bool { return true })
}

// ListFeatured returns featured projects in catalog order. The result is
// empty, not nil-with-error, when nothing is featured.
func (c *Catalog) ListFeatured() []Project {
	return c.collect(func(p Project) bool { return p.IsFeatured })
}

// ListByCategory returns projects whose category equals category exactly.
func (c *Catalog) ListByCategory(category string) []Project {
	return c.collect(func(p Project) bool { return p.Category == category })
}

// ListByYear returns projects from year.
func (c *Catalog) ListByYear(year int) []Project {
	return c.collect(func(p Project) bool { return p.Year == year })
}

// GetByID looks up a project. A missing id reports false.
func (c *Catalog) GetByID(id string) (Project, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Project{}, false
	}
	return c.projects[i].clone(), true
}

// ListCategories returns distinct categories in first-seen order.
func (c *Catalog) ListCategories() []string {
	seen := make(map[string]struct{})
	categories := []string{}
	for _, p := range c.projects {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories
}

// ListYears returns distinct years, newest first.
func (c *Catalog) ListYears() []int {
	years := []int{}
	for _, p := range c.projects {
		if !slices.Contains(years, p.Year) {
			years = append(years, p.Year)
		}
	}
	slices.SortFunc(years, func(a, b int) int { return b - a })
	return years
}

func (c *Catalog) collect(keep func(Project) bool) []Project {
	out := []Project{}
	for _, p := range c.projects {
		if keep(p) {
			out = append(out, p.clone())
		}
	}
	return out
}
