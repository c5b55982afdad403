package reconcile

import (
	"fmt"

	"pantry-planner/core/kitchen"
)

// Reconcile returns the shortage items for recipe given inventory.
// It never returns a nil slice on success. A line without resolved ingredient
// detail fails the whole call with kitchen.ErrIntegrity.
func Reconcile(recipe *kitchen.Recipe, inventory *kitchen.Inventory) ([]kitchen.ShortageItem, error) {
	items := make([]kitchen.ShortageItem, 0, len(recipe.Lines))

	for _, line := range recipe.Lines {
		if line.Ingredient == nil {
			return nil, fmt.Errorf("%w: recipe %s: ingredient %s is unresolved", kitchen.ErrIntegrity, recipe.ID, line.IngredientID)
		}

		needed := shortfall(line.Quantity, inventory.OnHand(line.IngredientID))
		if needed <= 0 {
			continue
		}

		items = append(items, kitchen.ShortageItem{
			IngredientID: line.IngredientID,
			Ingredient:   *line.Ingredient,
			Quantity:     needed,
			Price:        needed * line.Ingredient.UnitPrice,
		})
	}

	return items, nil
}

// Total sums the prices of items.
func Total(items []kitchen.ShortageItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price
	}
	return total
}

// Summarize counts covered and short lines of recipe against items.
func Summarize(recipe *kitchen.Recipe, items []kitchen.ShortageItem) Summary {
	return Summary{
		Lines:   len(recipe.Lines),
		Covered: len(recipe.Lines) - len(items),
		Short:   len(items),
	}
}

// shortfall is max(0, required - onHand). Negative inputs go through the same
// clamp and are not otherwise corrected.
func shortfall(required, onHand float64) float64 {
	needed := required - onHand
	if needed < 0 {
		return 0
	}
	return needed
}
