package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/reel/internal/domain/gallery"
	"github.com/rpggio/reel/internal/domain/profile"
	"github.com/rpggio/reel/internal/domain/project"
)

// ListProjectsInput filters the gallery.
type ListProjectsInput struct {
	Query    string `json:"query,omitempty" jsonschema:"case-insensitive text matched against title, descriptions and techniques"`
	Category string `json:"category,omitempty" jsonschema:"exact category name, see list_categories"`
	Year     int    `json:"year,omitempty" jsonschema:"release year"`
}

// ListProjectsResult is the filtered gallery.
type ListProjectsResult struct {
	Projects []project.GalleryCard `json:"projects"`
	Count    int                   `json:"count"`
}

// GetProjectInput names one project.
type GetProjectInput struct {
	ID string `json:"id" jsonschema:"project ID"`
}

type emptyInput struct{}

// ListFeaturedResult is the featured subset in carousel order.
type ListFeaturedResult struct {
	Featured []project.FeaturedCard `json:"featured"`
}

// ListCategoriesResult holds the gallery facets.
type ListCategoriesResult struct {
	Categories []string `json:"categories"`
	Years      []int    `json:"years"`
}

func registerTools(server *sdkmcp.Server, catalog *project.Catalog, p profile.Profile) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List portfolio projects, optionally filtered by search text, category and year. All filters must match.",
	}, listProjectsHandler(catalog))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_project",
		Description: "Get the full detail view of one project",
	}, getProjectHandler(catalog))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_featured",
		Description: "List featured projects in carousel order",
	}, listFeaturedHandler(catalog))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_categories",
		Description: "List project categories in catalog order and years newest first",
	}, listCategoriesHandler(catalog))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_profile",
		Description: "Get the filmmaker's profile: bio, skills, education and links",
	}, getProfileHandler(p))
}

func listProjectsHandler(catalog *project.Catalog) sdkmcp.ToolHandlerFor[ListProjectsInput, ListProjectsResult] {
	return func(_ context.Context, _ *sdkmcp.CallToolRequest, input ListProjectsInput) (*sdkmcp.CallToolResult, ListProjectsResult, error) {
		state := gallery.FilterState{SearchQuery: input.Query}
		if input.Category != "" {
			state.Category = &input.Category
		}
		if input.Year != 0 {
			state.Year = &input.Year
		}
		cards := project.NewGalleryCards(gallery.Filter(catalog, state))
		return nil, ListProjectsResult{Projects: cards, Count: len(cards)}, nil
	}
}

func getProjectHandler(catalog *project.Catalog) sdkmcp.ToolHandlerFor[GetProjectInput, project.Detail] {
	return func(_ context.Context, _ *sdkmcp.CallToolRequest, input GetProjectInput) (*sdkmcp.CallToolResult, project.Detail, error) {
		detail, ok := catalog.DetailByID(input.ID)
		if !ok {
			return nil, project.Detail{}, MapError(errProjectNotFound)
		}
		return nil, detail, nil
	}
}

func listFeaturedHandler(catalog *project.Catalog) sdkmcp.ToolHandlerFor[emptyInput, ListFeaturedResult] {
	return func(_ context.Context, _ *sdkmcp.CallToolRequest, _ emptyInput) (*sdkmcp.CallToolResult, ListFeaturedResult, error) {
		return nil, ListFeaturedResult{Featured: catalog.FeaturedCards()}, nil
	}
}

func listCategoriesHandler(catalog *project.Catalog) sdkmcp.ToolHandlerFor[emptyInput, ListCategoriesResult] {
	return func(_ context.Context, _ *sdkmcp.CallToolRequest, _ emptyInput) (*sdkmcp.CallToolResult, ListCategoriesResult, error) {
		return nil, ListCategoriesResult{
			Categories: catalog.ListCategories(),
			Years:      catalog.ListYears(),
		}, nil
	}
}

func getProfileHandler(p profile.Profile) sdkmcp.ToolHandlerFor[emptyInput, profile.Profile] {
	return func(_ context.Context, _ *sdkmcp.CallToolRequest, _ emptyInput) (*sdkmcp.CallToolResult, profile.Profile, error) {
		return nil, p, nil
	}
}
