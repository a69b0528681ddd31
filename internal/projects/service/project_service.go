package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/inayah-hub/DASHBOARDS/internal/projects/domain"
	"github.com/inayah-hub/DASHBOARDS/internal/projects/repository"
)

// SeedProjects are inserted by Seed when the collection is empty.
var SeedProjects = []domain.NewProject{
	{ClientName: "Acme Corp", ProjectNo: "P-101", Media: domain.MediaVideo, Status: domain.StatusInProgress},
	{ClientName: "Globex", ProjectNo: "P-102", Media: domain.MediaWeb, Status: domain.StatusCompleted},
	{ClientName: "Soylent", ProjectNo: "P-103", Media: domain.MediaSocial, Status: domain.StatusInProgress},
	{ClientName: "Initech", ProjectNo: "P-104", Media: domain.MediaVideo, Status: domain.StatusInProgress},
}

// ProjectService handles project-related business logic
type ProjectService struct {
	repo   repository.Repository
	logger *zap.Logger
}

// NewProjectService creates a new project service
func NewProjectService(repo repository.Repository, logger *zap.Logger) *ProjectService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProjectService{
		repo:   repo,
		logger: logger,
	}
}

// List returns every project in insertion order
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.repo.List(ctx)
}

// Create stores a validated project
func (s *ProjectService) Create(ctx context.Context, in domain.NewProject) (*domain.Project, error) {
	p, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.logger.Info("project created", zap.Int64("id", p.ID), zap.String("client", p.ClientName))
	return p, nil
}

// Update applies a validated partial update
func (s *ProjectService) Update(ctx context.Context, id int64, patch domain.ProjectPatch) (*domain.Project, error) {
	p, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.logger.Info("project updated", zap.Int64("id", p.ID), zap.String("status", p.Status))
	return p, nil
}

// Delete hard-deletes a project; unknown ids are ignored
func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("project deleted", zap.Int64("id", id))
	return nil
}

// Seed inserts SeedProjects if the collection is empty. It reports how many
// records were inserted and is safe to call on every start.
func (s *ProjectService) Seed(ctx context.Context) (int, error) {
	return s.SeedWith(ctx, SeedProjects)
}

// SeedWith is Seed with a caller-supplied record set.
func (s *ProjectService) SeedWith(ctx context.Context, records []domain.NewProject) (int, error) {
	existing, err := s.repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed: list projects: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	for i, in := range records {
		if _, err := s.repo.Create(ctx, in); err != nil {
			return i, fmt.Errorf("seed: create %s: %w", in.ProjectNo, err)
		}
	}
	s.logger.Info("seeded projects", zap.Int("count", len(records)))
	return len(records), nil
}
