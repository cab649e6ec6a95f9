package gallery

import (
	"sync"

	"github.com/rpggio/reel/internal/domain/project"
)

// Controller holds one gallery's filters and detail selection. The visible
// list is recomputed from the catalog on every filter change.
type Controller struct {
	mu       sync.Mutex
	catalog  *project.Catalog
	filters  FilterState
	visible  []project.Project
	selected *project.Project
}

// State is a snapshot of a gallery.
type State struct {
	Filters    FilterState       `json:"filters"`
	Visible    []project.Project `json:"visible"`
	Selected   *project.Project  `json:"selected,omitempty"`
	DetailOpen bool              `json:"detail_open"`
}

// NewController creates a gallery with empty filters and the detail closed.
func NewController(catalog *project.Catalog) *Controller {
	c := &Controller{catalog: catalog}
	c.recompute()
	return c
}

// ApplySearch replaces the search query.
func (c *Controller) ApplySearch(query string) []project.Project {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters.SearchQuery = query
	return c.recompute()
}

// ApplyCategory replaces the category filter; nil clears it.
func (c *Controller) ApplyCategory(category *string) []project.Project {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters.Category = copyPtr(category)
	return c.recompute()
}

// ToggleCategory selects category, or clears it when it is already active.
func (c *Controller) ToggleCategory(category string) []project.Project {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.filters.Category != nil && *c.filters.Category == category {
		c.filters.Category = nil
	} else {
		c.filters.Category = &category
	}
	return c.recompute()
}

// ApplyYear replaces the year filter; nil clears it.
func (c *Controller) ApplyYear(year *int) []project.Project {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters.Year = copyPtr(year)
	return c.recompute()
}

// ClearFilters resets every filter.
func (c *Controller) ClearFilters() []project.Project {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters = FilterState{}
	return c.recompute()
}

// Visible returns the current visible list.
func (c *Controller) Visible() []project.Project {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneProjects(c.visible)
}

// SelectProject opens the detail view on p, replacing any open project.
func (c *Controller) SelectProject(p project.Project) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = &p
}

// SelectByID opens the detail view on the catalog project id.
func (c *Controller) SelectByID(id string) bool {
	p, ok := c.catalog.GetByID(id)
	if !ok {
		return false
	}
	c.SelectProject(p)
	return true
}

// CloseDetail closes the detail view.
func (c *Controller) CloseDetail() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = nil
}

// Selected returns the open project, if any.
func (c *Controller) Selected() (project.Project, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		return project.Project{}, false
	}
	return *c.selected, true
}

// Snapshot returns the current gallery state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	state := State{
		Filters: FilterState{
			SearchQuery: c.filters.SearchQuery,
			Category:    copyPtr(c.filters.Category),
			Year:        copyPtr(c.filters.Year),
		},
		Visible:    cloneProjects(c.visible),
		DetailOpen: c.selected != nil,
	}
	if c.selected != nil {
		selected := *c.selected
		state.Selected = &selected
	}
	return state
}

// recompute must be called with mu held.
func (c *Controller) recompute() []project.Project {
	c.visible = Filter(c.catalog, c.filters)
	return cloneProjects(c.visible)
}

func cloneProjects(in []project.Project) []project.Project {
	out := make([]project.Project, len(in))
	copy(out, in)
	return out
}

func copyPtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
