package kitchen

import (
	"fmt"
	"math"
	"strings"
)

// Validate checks the data-entry rules for a catalog entry.
func (i Ingredient) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return fmt.Errorf("%w: ingredient id is required", ErrInvalid)
	}
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("%w: ingredient %s: name is required", ErrInvalid, i.ID)
	}
	if strings.TrimSpace(i.Unit) == "" {
		return fmt.Errorf("%w: ingredient %s: unit is required", ErrInvalid, i.ID)
	}
	if !finite(i.UnitPrice) || i.UnitPrice < 0 {
		return fmt.Errorf("%w: ingredient %s: unit price must be a non-negative number", ErrInvalid, i.ID)
	}
	return nil
}

// Validate checks the data-entry rules for a recipe.
// Duplicate ingredient lines are rejected.
func (r *Recipe) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("%w: recipe id is required", ErrInvalid)
	}
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: recipe %s: name is required", ErrInvalid, r.ID)
	}
	if strings.TrimSpace(r.OwnerID) == "" {
		return fmt.Errorf("%w: recipe %s: owner is required", ErrInvalid, r.ID)
	}
	if r.PrepTime < 0 || r.CookTime < 0 {
		return fmt.Errorf("%w: recipe %s: times must not be negative", ErrInvalid, r.ID)
	}

	seen := make(map[string]struct{}, len(r.Lines))
	for idx, line := range r.Lines {
		if strings.TrimSpace(line.IngredientID) == "" {
			return fmt.Errorf("%w: recipe %s: line %d has no ingredient", ErrInvalid, r.ID, idx+1)
		}
		if _, dup := seen[line.IngredientID]; dup {
			return fmt.Errorf("%w: recipe %s: ingredient %s listed twice", ErrInvalid, r.ID, line.IngredientID)
		}
		seen[line.IngredientID] = struct{}{}

		if !finite(line.Quantity) || line.Quantity <= 0 {
			return fmt.Errorf("%w: recipe %s: ingredient %s: quantity must be positive", ErrInvalid, r.ID, line.IngredientID)
		}
	}
	return nil
}

// Validate checks an on-hand quantity.
func (it InventoryItem) Validate() error {
	if strings.TrimSpace(it.IngredientID) == "" {
		return fmt.Errorf("%w: inventory item has no ingredient", ErrInvalid)
	}
	if !finite(it.Quantity) || it.Quantity < 0 {
		return fmt.Errorf("%w: ingredient %s: quantity must not be negative", ErrInvalid, it.IngredientID)
	}
	return nil
}

// Validate checks the data-entry rules for an inventory and its items.
func (inv *Inventory) Validate() error {
	if strings.TrimSpace(inv.ID) == "" {
		return fmt.Errorf("%w: inventory id is required", ErrInvalid)
	}
	if strings.TrimSpace(inv.Name) == "" {
		return fmt.Errorf("%w: inventory %s: name is required", ErrInvalid, inv.ID)
	}
	if strings.TrimSpace(inv.OwnerID) == "" {
		return fmt.Errorf("%w: inventory %s: owner is required", ErrInvalid, inv.ID)
	}
	for key, item := range inv.Items {
		if key != item.IngredientID {
			return fmt.Errorf("%w: inventory %s: item keyed %s holds ingredient %s", ErrInvalid, inv.ID, key, item.IngredientID)
		}
		if err := item.Validate(); err != nil {
			return fmt.Errorf("inventory %s: %w", inv.ID, err)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
