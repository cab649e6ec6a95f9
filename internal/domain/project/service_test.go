package project_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rpggio/reel/internal/domain/project"
	"github.com/rpggio/reel/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProjectService_Import(t *testing.T) {
	ctx := context.Background()
	projects := []project.Project{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}}

	repo := &mocks.ProjectRepository{}
	repo.On("Replace", ctx, projects).Return(nil)

	svc := project.NewService(repo, nil)
	catalog, err := svc.Import(ctx, projects)
	require.NoError(t, err)
	require.Equal(t, 2, catalog.Len())
	repo.AssertExpectations(t)
}

func TestProjectService_ImportValidation(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ProjectRepository{}
	svc := project.NewService(repo, nil)

	_, err := svc.Import(ctx, nil)
	require.ErrorIs(t, err, project.ErrEmptyImport)

	_, err = svc.Import(ctx, []project.Project{{ID: "a"}, {ID: "a"}})
	require.ErrorIs(t, err, project.ErrInvalidCatalog)
	repo.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything)
}

func TestProjectService_ImportStorageError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk full")

	repo := &mocks.ProjectRepository{}
	repo.On("Replace", ctx, mock.Anything).Return(boom)

	svc := project.NewService(repo, nil)
	_, err := svc.Import(ctx, []project.Project{{ID: "a"}})
	require.ErrorIs(t, err, boom)
}

func TestProjectService_LoadOrImport(t *testing.T) {
	ctx := context.Background()
	seedProjects := []project.Project{{ID: "a", Title: "A"}}

	repo := &mocks.ProjectRepository{}
	repo.On("List", ctx).Return([]project.Project{}, nil)
	repo.On("Replace", ctx, seedProjects).Return(nil)

	svc := project.NewService(repo, nil)
	catalog, err := svc.LoadOrImport(ctx, seedProjects)
	require.NoError(t, err)
	require.Equal(t, 1, catalog.Len())
	repo.AssertExpectations(t)
}

func TestProjectService_LoadOrImportUsesStored(t *testing.T) {
	ctx := context.Background()
	stored := []project.Project{{ID: "x", Title: "Stored"}}

	repo := &mocks.ProjectRepository{}
	repo.On("List", ctx).Return(stored, nil)

	svc := project.NewService(repo, nil)
	catalog, err := svc.LoadOrImport(ctx, []project.Project{{ID: "a"}})
	require.NoError(t, err)
	p, ok := catalog.GetByID("x")
	require.True(t, ok)
	require.Equal(t, "Stored", p.Title)
	repo.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything)
}
