package kitchen

import (
	"context"
	"errors"
	"fmt"
)

// ResolveRecipe attaches catalog detail to every line of r.
// A line whose ingredient is missing from the catalog yields ErrIntegrity.
func ResolveRecipe(ctx context.Context, catalog IngredientCatalog, r *Recipe) error {
	for i := range r.Lines {
		ing, err := resolve(ctx, catalog, r.Lines[i].IngredientID)
		if err != nil {
			return fmt.Errorf("recipe %s: %w", r.ID, err)
		}
		r.Lines[i].Ingredient = ing
	}
	return nil
}

// ResolveInventory attaches catalog detail to every item of inv.
func ResolveInventory(ctx context.Context, catalog IngredientCatalog, inv *Inventory) error {
	for id, item := range inv.Items {
		ing, err := resolve(ctx, catalog, id)
		if err != nil {
			return fmt.Errorf("inventory %s: %w", inv.ID, err)
		}
		item.Ingredient = ing
		inv.Items[id] = item
	}
	return nil
}

// CheckReferences verifies at creation time that every id exists in the catalog.
func CheckReferences(ctx context.Context, catalog IngredientCatalog, ids ...string) error {
	for _, id := range ids {
		if _, err := catalog.Lookup(ctx, id); err != nil {
			if errors.Is(err, ErrNotFound) {
				return fmt.Errorf("%w: unknown ingredient %s", ErrInvalid, id)
			}
			return err
		}
	}
	return nil
}

func resolve(ctx context.Context, catalog IngredientCatalog, id string) (*Ingredient, error) {
	ing, err := catalog.Lookup(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: ingredient %s is not in the catalog", ErrIntegrity, id)
		}
		return nil, err
	}
	return ing, nil
}
