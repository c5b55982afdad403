package reconcile

import (
	"context"
	"fmt"

	"pantry-planner/core/kitchen"

	"golang.org/x/sync/errgroup"
)

// Planner resolves a recipe and an inventory and reconciles them.
type Planner struct {
	recipes     kitchen.RecipeStore
	inventories kitchen.InventoryStore
}

// NewPlanner creates a planner over the given stores.
func NewPlanner(recipes kitchen.RecipeStore, inventories kitchen.InventoryStore) *Planner {
	return &Planner{recipes: recipes, inventories: inventories}
}

// Plan builds the shopping list for recipeID against inventoryID.
// Both records are resolved concurrently; if either fails, or a guard rejects
// them, the engine is not invoked and the error is returned as is.
func (p *Planner) Plan(ctx context.Context, recipeID, inventoryID string, guards ...Guard) (*ShoppingList, error) {
	var (
		recipe    *kitchen.Recipe
		inventory *kitchen.Inventory
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r, err := p.recipes.GetByID(gctx, recipeID)
		if err != nil {
			return fmt.Errorf("failed to resolve recipe: %w", err)
		}
		recipe = r
		return nil
	})

	g.Go(func() error {
		inv, err := p.inventories.GetByID(gctx, inventoryID)
		if err != nil {
			return fmt.Errorf("failed to resolve inventory: %w", err)
		}
		inventory = inv
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, guard := range guards {
		if err := guard(recipe, inventory); err != nil {
			return nil, err
		}
	}

	return Build(recipe, inventory)
}

// Build reconciles already resolved records into a shopping list.
func Build(recipe *kitchen.Recipe, inventory *kitchen.Inventory) (*ShoppingList, error) {
	items, err := Reconcile(recipe, inventory)
	if err != nil {
		return nil, err
	}

	return &ShoppingList{
		RecipeID:      recipe.ID,
		RecipeName:    recipe.Name,
		InventoryID:   inventory.ID,
		InventoryName: inventory.Name,
		Items:         items,
		Total:         Total(items),
		Summary:       Summarize(recipe, items),
	}, nil
}

// VisibleTo only lets userID plan recipes they can read against inventories they own.
// A private recipe of another user is reported as not found.
func VisibleTo(userID string) Guard {
	return func(recipe *kitchen.Recipe, inventory *kitchen.Inventory) error {
		if !recipe.VisibleTo(userID) {
			return fmt.Errorf("recipe %s: %w", recipe.ID, kitchen.ErrNotFound)
		}
		if userID == "" || inventory.OwnerID != userID {
			return fmt.Errorf("inventory %s: %w", inventory.ID, kitchen.ErrForbidden)
		}
		return nil
	}
}
