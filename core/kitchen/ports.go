package kitchen

import "context"

// IngredientCatalog resolves canonical ingredient definitions.
type IngredientCatalog interface {
	// Lookup returns the ingredient or an error wrapping ErrNotFound.
	Lookup(ctx context.Context, id string) (*Ingredient, error)
	// ListAll returns every ingredient in insertion order.
	ListAll(ctx context.Context) ([]Ingredient, error)
}

// RecipeStore resolves recipes with their ingredient lines already resolved.
type RecipeStore interface {
	GetByID(ctx context.Context, id string) (*Recipe, error)
	// ListPublic returns public recipes in insertion order.
	ListPublic(ctx context.Context) ([]Recipe, error)
	// ListOwnedBy returns the recipes owned by userID in insertion order.
	ListOwnedBy(ctx context.Context, userID string) ([]Recipe, error)
}

// InventoryStore resolves inventories with their items already resolved.
type InventoryStore interface {
	GetByID(ctx context.Context, id string) (*Inventory, error)
	// ListOwnedBy returns the inventories owned by userID in insertion order.
	ListOwnedBy(ctx context.Context, userID string) ([]Inventory, error)
}
