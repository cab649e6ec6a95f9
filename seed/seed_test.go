package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rpggio/reel/internal/domain/project"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)
	require.Equal(t, "Alex Johnson", f.Profile.Name)
	require.Len(t, f.Projects, 8)

	catalog, err := f.Catalog()
	require.NoError(t, err)

	urban, ok := catalog.GetByID("1")
	require.True(t, ok)
	require.Equal(t, "Urban Solitude", urban.Title)
	require.Contains(t, urban.Techniques, "Handheld Camera")

	require.Len(t, catalog.ListFeatured(), 3)
}

func TestParse_RejectsDuplicateIDs(t *testing.T) {
	data := []byte(`
profile:
  name: Someone
projects:
  - id: "1"
    title: A
  - id: "1"
    title: B
`)
	_, err := Parse(data)
	require.ErrorIs(t, err, project.ErrInvalidCatalog)
}

func TestParse_RejectsFeaturedWithoutImages(t *testing.T) {
	data := []byte(`
profile:
  name: Someone
projects:
  - id: "1"
    title: A
    is_featured: true
`)
	_, err := Parse(data)
	require.ErrorIs(t, err, project.ErrInvalidCatalog)
}

func TestParse_RequiresProfileName(t *testing.T) {
	_, err := Parse([]byte("projects: []\n"))
	require.Error(t, err)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("projects: [\n"))
	require.Error(t, err)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	data := []byte(`
profile:
  name: Someone
projects:
  - id: a
    title: Only
    category: Short Film
    year: 2024
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	require.Len(t, f.Projects, 1)
	require.Equal(t, "Only", f.Projects[0].Title)
	require.NotNil(t, f.Profile.Skills)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
