package repository

import (
	"context"

	"github.com/rpggio/reel/internal/domain/project"
)

// ProjectRepository manages the stored catalog snapshot
type ProjectRepository interface {
	Replace(ctx context.Context, projects []project.Project) error
	List(ctx context.Context) ([]project.Project, error)
	Get(ctx context.Context, id string) (*project.Project, error)
}
