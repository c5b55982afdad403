package dataset

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"pantry-planner/core/kitchen"
	"pantry-planner/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
ingredients:
  - {id: flour, name: Flour, unit: g, unit_price: 0.002}
  - {id: sugar, name: Sugar, unit: g, unit_price: 0.003}
  - {id: eggs, name: Eggs, unit: piece, unit_price: 0.25}
recipes:
  - id: cake
    name: Cake
    image_url: https://img.example/cake.jpg
    prep_time: 20
    cook_time: 30
    public: true
    owner_id: u1
    ingredients:
      - {ingredient_id: flour, quantity: 200}
      - {ingredient_id: sugar, quantity: 150}
      - {ingredient_id: eggs, quantity: 3}
    steps: [Mix, Bake]
inventories:
  - id: pantry
    name: Pantry
    owner_id: u1
    items:
      - {ingredient_id: flour, quantity: 1000}
`

const sampleJSON = `{
  "ingredients": [{"id": "eggs", "name": "Eggs", "unit": "piece", "unit_price": 0.25}],
  "recipes": [],
  "inventories": [{"id": "fridge", "name": "Fridge", "owner_id": "u1", "items": [{"ingredient_id": "eggs", "quantity": 6}]}]
}`

func TestParse(t *testing.T) {
	ds, err := Parse(strings.NewReader(sampleYAML))
	require.NoError(t, err)
	assert.Len(t, ds.Ingredients, 3)
	require.Len(t, ds.Recipes, 1)
	assert.Equal(t, []string{"Mix", "Bake"}, ds.Recipes[0].Steps)
	assert.Equal(t, "eggs", ds.Recipes[0].Ingredients[2].IngredientID)
	assert.Equal(t, "https://img.example/cake.jpg", ds.Recipes[0].Recipe().ImageURL)

	js, err := Parse(strings.NewReader(sampleJSON))
	require.NoError(t, err)
	require.Len(t, js.Inventories, 1)
	assert.Equal(t, 6.0, js.Inventories[0].Items[0].Quantity)

	empty, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, empty.Ingredients)

	_, err = Parse(strings.NewReader("ingredients: [{id: x, colour: red}]"))
	assert.Error(t, err)
}

func TestMemory(t *testing.T) {
	ctx := context.Background()
	ds, err := Parse(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	stores, err := ds.Memory(ctx)
	require.NoError(t, err)

	r, err := stores.Recipes.GetByID(ctx, "cake")
	require.NoError(t, err)
	assert.Equal(t, "Flour", r.Lines[0].Ingredient.Name)

	inv, err := stores.Inventories.GetByID(ctx, "pantry")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, inv.OnHand("flour"))
}

func TestMemory_RejectsDuplicates(t *testing.T) {
	ds := &Dataset{Ingredients: []IngredientRecord{
		{ID: "flour", Name: "Flour", Unit: "g"},
		{ID: "flour", Name: "Flour again", Unit: "g"},
	}}
	_, err := ds.Memory(context.Background())
	assert.ErrorIs(t, err, kitchen.ErrInvalid)

	dupItems := &Dataset{
		Ingredients: []IngredientRecord{{ID: "flour", Name: "Flour", Unit: "g"}},
		Inventories: []InventoryRecord{{ID: "p", Name: "P", OwnerID: "u1", Items: []LineRecord{
			{IngredientID: "flour", Quantity: 1},
			{IngredientID: "flour", Quantity: 2},
		}}},
	}
	_, err = dupItems.Memory(context.Background())
	assert.ErrorIs(t, err, kitchen.ErrInvalid)
}

func TestSeed_SkipsExisting(t *testing.T) {
	ctx := context.Background()
	ds, err := Parse(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	stores, err := ds.Memory(ctx)
	require.NoError(t, err)

	report, err := Seed(ctx, ds, Writers{
		Ingredients: stores.Catalog,
		Recipes:     stores.Recipes,
		Inventories: stores.Inventories,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, report.Skipped["ingredients"])
	assert.Equal(t, 1, report.Skipped["recipes"])
	assert.Equal(t, 1, report.Skipped["inventories"])
	assert.Zero(t, report.Created["ingredients"])
}

func TestSeed_StopsOnInvalidRecord(t *testing.T) {
	ds := &Dataset{
		Ingredients: []IngredientRecord{{ID: "flour", Name: "Flour", Unit: "g"}},
		Recipes: []RecipeRecord{{ID: "bad", Name: "Bad", OwnerID: "u1", Ingredients: []LineRecord{
			{IngredientID: "ghost", Quantity: 1},
		}}},
	}
	_, err := ds.Memory(context.Background())
	assert.ErrorIs(t, err, kitchen.ErrInvalid)
	assert.Contains(t, err.Error(), "seed recipe bad")
}

func TestFromStorage(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "assets", "datasets/pantry.yaml", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(sampleJSON))), nil)

	ds, err := FromStorage(context.Background(), mockClient, "assets", "datasets/pantry.yaml")
	require.NoError(t, err)
	assert.Len(t, ds.Ingredients, 1)

	failing := new(mocks.Client)
	failing.On("GetObject", mock.Anything, "assets", "missing.yaml", mock.Anything).
		Return(nil, errors.New("no such key"))
	_, err = FromStorage(context.Background(), failing, "assets", "missing.yaml")
	assert.ErrorContains(t, err, "no such key")
}
