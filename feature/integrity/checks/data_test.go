package checks

import (
	"context"
	"testing"

	"pantry-planner/core/database"
	"pantry-planner/feature/catalog"
	"pantry-planner/feature/inventories"
	"pantry-planner/feature/recipes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDataDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	var models []any
	models = append(models, catalog.Models()...)
	models = append(models, recipes.Models()...)
	models = append(models, inventories.Models()...)
	require.NoError(t, database.Migrate(db, models...))

	require.NoError(t, db.Create(&[]catalog.IngredientRow{
		{ID: "flour", Name: "Flour", Unit: "g", UnitPrice: 0.002},
		{ID: "eggs", Name: "Eggs", Unit: "piece", UnitPrice: 0.25},
	}).Error)
	require.NoError(t, db.Create(&recipes.RecipeRow{ID: "cake", Name: "Cake", OwnerID: "alice"}).Error)
	require.NoError(t, db.Create(&inventories.InventoryRow{ID: "fridge", Name: "Fridge", OwnerID: "alice"}).Error)
	return db
}

func TestCheckData_Clean(t *testing.T) {
	db := setupDataDB(t)
	require.NoError(t, db.Create(&[]recipes.LineRow{
		{RecipeID: "cake", Position: 0, IngredientID: "flour", Quantity: 200},
		{RecipeID: "cake", Position: 1, IngredientID: "eggs", Quantity: 3},
	}).Error)
	require.NoError(t, db.Create(&inventories.ItemRow{InventoryID: "fridge", IngredientID: "eggs", Quantity: 6}).Error)

	report, err := CheckData(context.Background(), db)
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Empty(t, report.DanglingRecipeLines)
	assert.Empty(t, report.DuplicateLines)
}

func TestCheckData_Problems(t *testing.T) {
	db := setupDataDB(t)
	require.NoError(t, db.Create(&[]recipes.LineRow{
		{RecipeID: "cake", Position: 0, IngredientID: "flour", Quantity: 200},
		{RecipeID: "cake", Position: 1, IngredientID: "flour", Quantity: 50},
		{RecipeID: "cake", Position: 2, IngredientID: "ghost", Quantity: 1},
		{RecipeID: "gone", Position: 0, IngredientID: "eggs", Quantity: 2},
	}).Error)
	require.NoError(t, db.Create(&inventories.ItemRow{InventoryID: "fridge", IngredientID: "truffle", Quantity: 1}).Error)

	report, err := CheckData(context.Background(), db)
	require.NoError(t, err)

	assert.False(t, report.Matched)
	assert.Equal(t, []Reference{{Owner: "cake", IngredientID: "ghost"}}, report.DanglingRecipeLines)
	assert.Equal(t, []Reference{{Owner: "fridge", IngredientID: "truffle"}}, report.DanglingInventoryItems)
	assert.Equal(t, []Reference{{Owner: "gone", IngredientID: "eggs"}}, report.OrphanRecipeLines)
	assert.Equal(t, []Duplicate{{RecipeID: "cake", IngredientID: "flour", Count: 2}}, report.DuplicateLines)
}

func TestCheckData_NilDB(t *testing.T) {
	_, err := CheckData(context.Background(), nil)
	assert.Error(t, err)
}
