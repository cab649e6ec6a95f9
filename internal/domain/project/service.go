package project

import (
	"context"
	"fmt"
	"log/slog"
)

// Service handles catalog loading and imports.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, logger: logger}
}

// Import validates projects and replaces the stored catalog with them.
func (s *Service) Import(ctx context.Context, projects []Project) (*Catalog, error) {
	if len(projects) == 0 {
		return nil, ErrEmptyImport
	}

	catalog, err := NewCatalog(projects)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Replace(ctx, catalog.ListAll()); err != nil {
		return nil, fmt.Errorf("importing catalog: %w", err)
	}

	s.logger.Info("catalog imported", "projects", catalog.Len(), "featured", len(catalog.ListFeatured()))
	return catalog, nil
}

// Load reads the stored catalog.
func (s *Service) Load(ctx context.Context) (*Catalog, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	catalog, err := NewCatalog(projects)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("catalog loaded", "projects", catalog.Len())
	return catalog, nil
}

// LoadOrImport loads the stored catalog, importing seed when storage is empty.
func (s *Service) LoadOrImport(ctx context.Context, seed []Project) (*Catalog, error) {
	catalog, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	if catalog.Len() > 0 {
		return catalog, nil
	}

	s.logger.Info("catalog storage empty, importing seed")
	return s.Import(ctx, seed)
}
