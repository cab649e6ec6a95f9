package sqlite

import (
	"context"
	"testing"

	"github.com/rpggio/reel/internal/domain/project"
	"github.com/rpggio/reel/internal/repository"
	"github.com/rpggio/reel/seed"
	"github.com/stretchr/testify/require"
)

func seedProjects(t *testing.T) []project.Project {
	t.Helper()
	f, err := seed.Default()
	require.NoError(t, err)
	return f.Projects
}

func TestProjectRepository_ReplaceAndList(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	projects := seedProjects(t)
	require.NoError(t, repo.Replace(ctx, projects))

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, len(projects))
	for i := range projects {
		require.Equal(t, projects[i].ID, listed[i].ID)
		require.Equal(t, projects[i].Title, listed[i].Title)
		require.Equal(t, projects[i].Images, listed[i].Images)
		require.Equal(t, projects[i].Techniques, listed[i].Techniques)
		require.Equal(t, projects[i].IsFeatured, listed[i].IsFeatured)
		require.Equal(t, projects[i].VideoEmbedURL, listed[i].VideoEmbedURL)
	}
}

func TestProjectRepository_ListEmpty(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)

	listed, err := repo.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, listed)
	require.Empty(t, listed)
}

func TestProjectRepository_ReplaceOverwrites(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Replace(ctx, seedProjects(t)))

	replacement := []project.Project{
		{ID: "z", Title: "Zoetrope", Category: "Experimental", Year: 2019, Images: []string{"z1.jpg", "z2.jpg"}},
		{ID: "y", Title: "Yarn", Category: "Short Film", Year: 2018},
	}
	require.NoError(t, repo.Replace(ctx, replacement))

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	require.Equal(t, "z", listed[0].ID)
	require.Equal(t, []string{"z1.jpg", "z2.jpg"}, listed[0].Images)
	require.Equal(t, "y", listed[1].ID)
	require.Empty(t, listed[1].Images)

	var count int
	err = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM project_techniques`).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

func TestProjectRepository_ReplaceDuplicateID(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Replace(ctx, seedProjects(t)))

	err := repo.Replace(ctx, []project.Project{
		{ID: "dup", Title: "One"},
		{ID: "dup", Title: "Two"},
	})
	require.ErrorIs(t, err, repository.ErrConflict)

	// The failed replace leaves the previous catalog in place
	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, len(seedProjects(t)))
}

func TestProjectRepository_Get(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Replace(ctx, seedProjects(t)))

	p, err := repo.Get(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, "Urban Solitude", p.Title)
	require.NotEmpty(t, p.Images)
	require.NotEmpty(t, p.Techniques)
}

func TestProjectRepository_GetNotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)

	_, err := repo.Get(context.Background(), "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}
