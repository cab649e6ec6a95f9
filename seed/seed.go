// Package seed loads the portfolio catalog and profile from YAML. The
// default seed is bundled into the binary.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/rpggio/reel/internal/domain/profile"
	"github.com/rpggio/reel/internal/domain/project"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// File is the on-disk seed layout.
type File struct {
	Profile  profile.Profile   `yaml:"profile"`
	Projects []project.Project `yaml:"projects"`
}

// Parse decodes and validates seed data.
func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse seed: %w", err)
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	f.Profile = f.Profile.Normalized()
	return f, nil
}

// Load reads the seed at path, or the bundled seed when path is empty.
func Load(path string) (File, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

// Default returns the bundled seed.
func Default() (File, error) {
	return Parse(defaultCatalog)
}

// Validate checks the profile and the catalog invariants.
func (f File) Validate() error {
	if err := f.Profile.Validate(); err != nil {
		return fmt.Errorf("seed profile: %w", err)
	}
	if _, err := project.NewCatalog(f.Projects); err != nil {
		return fmt.Errorf("seed projects: %w", err)
	}
	return nil
}

// Catalog builds a catalog from the seed projects.
func (f File) Catalog() (*project.Catalog, error) {
	return project.NewCatalog(f.Projects)
}
