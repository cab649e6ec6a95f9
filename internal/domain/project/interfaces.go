package project

import "context"

// Repository provides persistence for the catalog snapshot.
type Repository interface {
	// Replace swaps the stored catalog for projects, keeping their order.
	Replace(ctx context.Context, projects []Project) error
	List(ctx context.Context) ([]Project, error)
	Get(ctx context.Context, id string) (*Project, error)
}
