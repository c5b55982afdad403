// Package kitchen defines the records shared by every part of the planner:
// ingredients, recipes, inventories and the shortage lines derived from them.
//
// # Records
//
//   - Ingredient: a catalog entry with a unit token and a price per unit.
//   - Recipe: ordered ingredient lines plus ordered preparation steps.
//   - Inventory: on-hand quantities keyed by ingredient identifier, so an
//     inventory can never hold two items for the same ingredient.
//   - ShortageItem: one line of a shopping list.
//
// # Ports
//
// The package only declares the capabilities the reconciliation core needs
// from its stores (IngredientCatalog, RecipeStore, InventoryStore). Concrete
// implementations live in kitchen/memory (datasets, tests) and in the feature
// packages (gorm).
//
// # Errors
//
// Callers match failures with errors.Is against ErrNotFound, ErrIntegrity,
// ErrInvalid, ErrForbidden and ErrAlreadyExists.
package kitchen
