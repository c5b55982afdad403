package checks

import (
	"context"
	"fmt"

	"pantry-planner/feature/catalog"
	"pantry-planner/feature/inventories"
	"pantry-planner/feature/recipes"

	"gorm.io/gorm"
)

// Reference is a row pointing at something that does not exist.
type Reference struct {
	Owner        string `json:"owner"`
	IngredientID string `json:"ingredient_id"`
}

// Duplicate is an ingredient listed more than once in one recipe.
type Duplicate struct {
	RecipeID     string `json:"recipe_id"`
	IngredientID string `json:"ingredient_id"`
	Count        int64  `json:"count"`
}

// DataReport lists rows that would make shopping lists fail or be ambiguous.
type DataReport struct {
	Matched                bool        `json:"matched"`
	DanglingRecipeLines    []Reference `json:"dangling_recipe_lines"`
	DanglingInventoryItems []Reference `json:"dangling_inventory_items"`
	OrphanRecipeLines      []Reference `json:"orphan_recipe_lines"`
	DuplicateLines         []Duplicate `json:"duplicate_lines"`
}

// CheckData looks for references to missing ingredients or recipes and for
// duplicate ingredient lines.
func CheckData(ctx context.Context, db *gorm.DB) (*DataReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	db = db.WithContext(ctx)

	report := &DataReport{
		DanglingRecipeLines:    []Reference{},
		DanglingInventoryItems: []Reference{},
		OrphanRecipeLines:      []Reference{},
		DuplicateLines:         []Duplicate{},
	}

	ingredientIDs := db.Model(&catalog.IngredientRow{}).Select("id")
	recipeIDs := db.Model(&recipes.RecipeRow{}).Select("id")

	err := db.Model(&recipes.LineRow{}).
		Select("recipe_id AS owner, ingredient_id").
		Where("ingredient_id NOT IN (?)", ingredientIDs).
		Order("row_id").
		Scan(&report.DanglingRecipeLines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to check recipe lines: %w", err)
	}

	err = db.Model(&inventories.ItemRow{}).
		Select("inventory_id AS owner, ingredient_id").
		Where("ingredient_id NOT IN (?)", ingredientIDs).
		Order("row_id").
		Scan(&report.DanglingInventoryItems).Error
	if err != nil {
		return nil, fmt.Errorf("failed to check inventory items: %w", err)
	}

	err = db.Model(&recipes.LineRow{}).
		Select("recipe_id AS owner, ingredient_id").
		Where("recipe_id NOT IN (?)", recipeIDs).
		Order("row_id").
		Scan(&report.OrphanRecipeLines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to check recipe line owners: %w", err)
	}

	err = db.Model(&recipes.LineRow{}).
		Select("recipe_id, ingredient_id, COUNT(*) AS count").
		Group("recipe_id, ingredient_id").
		Having("COUNT(*) > ?", 1).
		Order("recipe_id, ingredient_id").
		Scan(&report.DuplicateLines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to check duplicate lines: %w", err)
	}

	report.Matched = len(report.DanglingRecipeLines) == 0 &&
		len(report.DanglingInventoryItems) == 0 &&
		len(report.OrphanRecipeLines) == 0 &&
		len(report.DuplicateLines) == 0
	return report, nil
}
