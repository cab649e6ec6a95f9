package gallery

import (
	"slices"
	"strings"

	"github.com/rpggio/reel/internal/domain/project"
)

// FilterState is the search and facet selection of one gallery.
type FilterState struct {
	SearchQuery string  `json:"search_query"`
	Category    *string `json:"category,omitempty"`
	Year        *int    `json:"year,omitempty"`
}

// IsZero reports whether no filter is active.
func (f FilterState) IsZero() bool {
	return f.SearchQuery == "" && f.Category == nil && f.Year == nil
}

// Filter returns the catalog projects visible under state, in catalog order.
// Category and year match exactly; the search query matches
// case-insensitively against title, descriptions and techniques. All active
// filters must match.
func Filter(catalog *project.Catalog, state FilterState) []project.Project {
	query := strings.ToLower(state.SearchQuery)
	visible := []project.Project{}
	for _, p := range catalog.ListAll() {
		if state.Category != nil && p.Category != *state.Category {
			continue
		}
		if state.Year != nil && p.Year != *state.Year {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		visible = append(visible, p)
	}
	return visible
}

func matchesQuery(p project.Project, query string) bool {
	if strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.ShortDescription), query) ||
		strings.Contains(strings.ToLower(p.Description), query) {
		return true
	}
	return slices.ContainsFunc(p.Techniques, func(t string) bool {
		return strings.Contains(strings.ToLower(t), query)
	})
}
