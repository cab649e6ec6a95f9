package mcp

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/reel/internal/domain/project"
)

const serverInstructions = `reel serves a filmmaker's portfolio: a fixed catalog of projects plus the filmmaker's profile.

Tools:
- list_projects: the gallery. Filters combine with AND: query (case-insensitive, title/descriptions/techniques), category (exact), year.
- get_project: the detail view for one project id.
- list_featured: featured projects in carousel order.
- list_categories: category and year facets for list_projects.
- get_profile: bio, skills, education and links.

Docs:
- reel://docs/index
- reel://docs/catalog (generated summary of the loaded catalog)
`

const indexDoc = `# reel docs

The catalog is read-only. Project order is the curated display order and
every listing keeps it.

## Finding projects

1. ` + "`list_categories`" + ` for valid category names and years.
2. ` + "`list_projects`" + ` with any of ` + "`query`" + `, ` + "`category`" + `, ` + "`year`" + `.
3. ` + "`get_project`" + ` for the full detail view.

An empty project list is a normal result, not an error. Category matching
is case-sensitive; search is not.

## Detail view defaults

- ` + "`director`" + ` is the first collaborator, or "Self-directed".
- ` + "`role`" + ` falls back to "Director, Cinematographer".
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     func() string
}

func docResources(catalog *project.Catalog) []docResource {
	return []docResource{
		{
			URI:         "reel://docs/index",
			Name:        "docs_index",
			Title:       "reel docs index",
			Description: "How to browse the portfolio with the reel tools.",
			Content:     func() string { return indexDoc },
		},
		{
			URI:         "reel://docs/catalog",
			Name:        "docs_catalog",
			Title:       "Catalog summary",
			Description: "Generated summary of the loaded catalog: counts, categories, years and project titles.",
			Content:     func() string { return catalogDoc(catalog) },
		},
	}
}

func catalogDoc(catalog *project.Catalog) string {
	var b strings.Builder
	b.WriteString("# Catalog\n\n")
	fmt.Fprintf(&b, "- Projects: %d\n", catalog.Len())
	fmt.Fprintf(&b, "- Featured: %d\n", len(catalog.ListFeatured()))

	b.WriteString("\n## Categories\n\n")
	for _, c := range catalog.ListCategories() {
		fmt.Fprintf(&b, "- %s (%d)\n", c, len(catalog.ListByCategory(c)))
	}

	b.WriteString("\n## Years\n\n")
	for _, y := range catalog.ListYears() {
		fmt.Fprintf(&b, "- %d (%d)\n", y, len(catalog.ListByYear(y)))
	}

	b.WriteString("\n## Projects\n\n")
	for _, p := range catalog.ListAll() {
		marker := ""
		if p.IsFeatured {
			marker = " *featured*"
		}
		fmt.Fprintf(&b, "- `%s` %s (%s, %d)%s\n", p.ID, p.Title, p.Category, p.Year, marker)
	}
	return b.String()
}

func registerDocResources(server *sdkmcp.Server, catalog *project.Catalog) {
	for _, doc := range docResources(catalog) {
		content := doc.Content()

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     content,
				}},
			}, nil
		})
	}
}
