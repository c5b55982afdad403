package inventories

import (
	"context"
	"fmt"

	"pantry-planner/core/kitchen"

	"go.uber.org/zap"
)

// View is an inventory as served over HTTP, with items sorted by name.
type View struct {
	ID      string                  `json:"id"`
	Name    string                  `json:"name"`
	OwnerID string                  `json:"owner_id"`
	Items   []kitchen.InventoryItem `json:"items"`
}

func viewOf(inv *kitchen.Inventory, query string) View {
	return View{
		ID:      inv.ID,
		Name:    inv.Name,
		OwnerID: inv.OwnerID,
		Items:   kitchen.FilterItems(inv.SortedItems(), query),
	}
}

// Service handles inventory operations on behalf of a caller.
type Service struct {
	repo   *Repository
	logger *zap.Logger
}

// NewService creates a new inventory service.
func NewService(repo *Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListMine returns the caller's inventories.
func (s *Service) ListMine(ctx context.Context, userID string) ([]View, error) {
	invs, err := s.repo.ListOwnedBy(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]View, len(invs))
	for i := range invs {
		out[i] = viewOf(&invs[i], "")
	}
	return out, nil
}

// Get returns the inventory if userID owns it, with items matching query.
func (s *Service) Get(ctx context.Context, userID, id, query string) (*View, error) {
	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if userID == "" || inv.OwnerID != userID {
		return nil, fmt.Errorf("inventory %s: %w", id, kitchen.ErrForbidden)
	}
	v := viewOf(inv, query)
	return &v, nil
}

// Create stores a new inventory owned by userID.
func (s *Service) Create(ctx context.Context, userID string, inv *kitchen.Inventory) (*View, error) {
	inv.OwnerID = userID
	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	s.logger.Info("Inventory created", zap.String("inventory", inv.ID), zap.String("owner", userID))
	return s.Get(ctx, userID, inv.ID, "")
}

// SetItem sets the on-hand quantity of ingredientID. The quantity must be positive;
// use RemoveItem to drop an ingredient.
func (s *Service) SetItem(ctx context.Context, userID, inventoryID, ingredientID string, quantity float64) (*View, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: ingredient %s: quantity must be positive", kitchen.ErrInvalid, ingredientID)
	}
	item := kitchen.InventoryItem{IngredientID: ingredientID, Quantity: quantity}
	if err := s.repo.SetItem(ctx, userID, inventoryID, item); err != nil {
		return nil, err
	}
	s.logger.Info("Inventory item set",
		zap.String("inventory", inventoryID),
		zap.String("ingredient", ingredientID),
		zap.Float64("quantity", quantity),
	)
	return s.Get(ctx, userID, inventoryID, "")
}

// Delete removes an inventory owned by userID.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.logger.Info("Inventory deleted", zap.String("inventory", id), zap.String("owner", userID))
	return nil
}

// RemoveItem drops ingredientID from the inventory.
func (s *Service) RemoveItem(ctx context.Context, userID, inventoryID, ingredientID string) error {
	if err := s.repo.RemoveItem(ctx, userID, inventoryID, ingredientID); err != nil {
		return err
	}
	s.logger.Info("Inventory item removed", zap.String("inventory", inventoryID), zap.String("ingredient", ingredientID))
	return nil
}
