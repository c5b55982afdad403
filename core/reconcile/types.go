package reconcile

import "pantry-planner/core/kitchen"

// ShoppingList is the outcome of planning one recipe against one inventory.
type ShoppingList struct {
	// RecipeID is the recipe that was reconciled.
	RecipeID string `json:"recipe_id"`

	// RecipeName is the display name of the recipe.
	RecipeName string `json:"recipe_name"`

	// InventoryID is the inventory the recipe was reconciled against.
	InventoryID string `json:"inventory_id"`

	// InventoryName is the display name of the inventory.
	InventoryName string `json:"inventory_name"`

	// Items are the shortages in recipe-line order.
	Items []kitchen.ShortageItem `json:"items"`

	// Total is the sum of item prices, recomputed for every list.
	Total float64 `json:"total"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// Summary counts how the recipe lines were accounted for.
// Every line is either Covered or Short, never both.
type Summary struct {
	// Lines is the number of ingredient lines in the recipe.
	Lines int `json:"lines"`

	// Covered counts lines fully satisfied by the inventory.
	Covered int `json:"covered"`

	// Short counts lines that produced a shortage item.
	Short int `json:"short"`
}

// Guard vets a resolved recipe and inventory before reconciliation.
type Guard func(recipe *kitchen.Recipe, inventory *kitchen.Inventory) error
