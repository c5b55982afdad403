package shopping

import (
	"context"
	"fmt"

	"pantry-planner/core/kitchen"
	"pantry-planner/core/reconcile"
	"pantry-planner/core/utils"

	"go.uber.org/zap"
)

// Response is a shopping list with its display total.
type Response struct {
	*reconcile.ShoppingList
	FormattedTotal string `json:"formatted_total"`
	Currency       string `json:"currency"`
}

// Service builds shopping lists for callers.
type Service struct {
	planner  *reconcile.Planner
	currency string
	logger   *zap.Logger
}

// NewService creates a shopping service. currency is appended to formatted totals.
func NewService(planner *reconcile.Planner, currency string, logger *zap.Logger) *Service {
	return &Service{planner: planner, currency: currency, logger: logger}
}

// Generate reconciles recipeID against inventoryID for userID.
func (s *Service) Generate(ctx context.Context, userID, recipeID, inventoryID string) (*Response, error) {
	if recipeID == "" || inventoryID == "" {
		return nil, fmt.Errorf("%w: recipe and inventory are required", kitchen.ErrInvalid)
	}

	list, err := s.planner.Plan(ctx, recipeID, inventoryID, reconcile.VisibleTo(userID))
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Shopping list generated",
		zap.String("recipe", recipeID),
		zap.String("inventory", inventoryID),
		zap.Int("short", list.Summary.Short),
	)
	return &Response{
		ShoppingList:   list,
		FormattedTotal: utils.FormatMoney(list.Total, s.currency),
		Currency:       s.currency,
	}, nil
}
