package recipes

import (
	"context"
	"fmt"

	"pantry-planner/core/kitchen"

	"go.uber.org/zap"
)

// View is a recipe as served over HTTP.
type View struct {
	kitchen.Recipe
	TotalTime int `json:"total_time"`
}

func viewOf(rec kitchen.Recipe) View {
	return View{Recipe: rec, TotalTime: rec.TotalTime()}
}

func viewsOf(recs []kitchen.Recipe) []View {
	out := make([]View, len(recs))
	for i, rec := range recs {
		out[i] = viewOf(rec)
	}
	return out
}

// Service handles recipe operations on behalf of a caller.
type Service struct {
	repo   *Repository
	logger *zap.Logger
}

// NewService creates a new recipe service.
func NewService(repo *Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListPublic returns public recipes matching query.
func (s *Service) ListPublic(ctx context.Context, query string) ([]View, error) {
	recs, err := s.repo.ListPublic(ctx)
	if err != nil {
		return nil, err
	}
	return viewsOf(kitchen.FilterRecipes(recs, query)), nil
}

// ListMine returns the recipes owned by userID matching query.
func (s *Service) ListMine(ctx context.Context, userID, query string) ([]View, error) {
	recs, err := s.repo.ListOwnedBy(ctx, userID)
	if err != nil {
		return nil, err
	}
	return viewsOf(kitchen.FilterRecipes(recs, query)), nil
}

// Get returns the recipe if userID may read it. Private recipes of other
// users are reported as not found.
func (s *Service) Get(ctx context.Context, userID, id string) (*View, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !rec.VisibleTo(userID) {
		return nil, fmt.Errorf("recipe %s: %w", id, kitchen.ErrNotFound)
	}
	v := viewOf(*rec)
	return &v, nil
}

// Delete removes a recipe owned by userID.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.logger.Info("Recipe deleted", zap.String("recipe", id), zap.String("owner", userID))
	return nil
}

// Create stores rec as owned by userID.
func (s *Service) Create(ctx context.Context, userID string, rec *kitchen.Recipe) (*View, error) {
	rec.OwnerID = userID
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	s.logger.Info("Recipe created",
		zap.String("recipe", rec.ID),
		zap.String("owner", userID),
		zap.Int("lines", len(rec.Lines)),
	)
	return s.Get(ctx, userID, rec.ID)
}
