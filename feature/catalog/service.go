package catalog

import (
	"context"

	"pantry-planner/core/kitchen"

	"go.uber.org/zap"
)

// Service handles catalog operations.
type Service struct {
	repo   *Repository
	logger *zap.Logger
}

// NewService creates a new catalog service.
func NewService(repo *Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns the catalog in insertion order, filtered by query when set.
func (s *Service) List(ctx context.Context, query string) ([]kitchen.Ingredient, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return kitchen.FilterIngredients(all, query), nil
}

// Get returns one ingredient.
func (s *Service) Get(ctx context.Context, id string) (*kitchen.Ingredient, error) {
	return s.repo.Lookup(ctx, id)
}

// Create adds an ingredient to the catalog.
func (s *Service) Create(ctx context.Context, ing *kitchen.Ingredient) error {
	if err := s.repo.Create(ctx, ing); err != nil {
		return err
	}
	s.logger.Info("Ingredient created", zap.String("ingredient", ing.ID), zap.String("name", ing.Name))
	return nil
}
