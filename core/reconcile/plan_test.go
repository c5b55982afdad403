package reconcile

import (
	"context"
	"errors"
	"testing"

	"pantry-planner/core/kitchen"
	"pantry-planner/core/kitchen/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlanner(t *testing.T) *Planner {
	t.Helper()
	ctx := context.Background()

	catalog := memory.NewCatalog()
	for _, ing := range []kitchen.Ingredient{flour, sugar, eggs, milk} {
		ing := ing
		require.NoError(t, catalog.Create(ctx, &ing))
	}

	recipes := memory.NewRecipes(catalog)
	require.NoError(t, recipes.Create(ctx, &kitchen.Recipe{
		ID: "crepes", Name: "Crepes", OwnerID: "alice", Public: true,
		Lines: []kitchen.RecipeLine{
			{IngredientID: "flour", Quantity: 250},
			{IngredientID: "eggs", Quantity: 4},
			{IngredientID: "milk", Quantity: 500},
		},
	}))
	require.NoError(t, recipes.Create(ctx, &kitchen.Recipe{
		ID: "secret-cake", Name: "Secret Cake", OwnerID: "bob",
		Lines: []kitchen.RecipeLine{{IngredientID: "sugar", Quantity: 100}},
	}))

	inventories := memory.NewInventories(catalog)
	fridge := kitchen.NewInventory("fridge", "Fridge", "alice")
	fridge.Put(kitchen.InventoryItem{IngredientID: "eggs", Quantity: 6})
	fridge.Put(kitchen.InventoryItem{IngredientID: "milk", Quantity: 200})
	require.NoError(t, inventories.Create(ctx, fridge))
	require.NoError(t, inventories.Create(ctx, kitchen.NewInventory("bob-shelf", "Shelf", "bob")))

	return NewPlanner(recipes, inventories)
}

func TestPlanner_Plan(t *testing.T) {
	planner := newTestPlanner(t)

	list, err := planner.Plan(context.Background(), "crepes", "fridge")
	require.NoError(t, err)

	assert.Equal(t, "Crepes", list.RecipeName)
	assert.Equal(t, "Fridge", list.InventoryName)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "flour", list.Items[0].IngredientID)
	assert.Equal(t, 250.0, list.Items[0].Quantity)
	assert.Equal(t, "milk", list.Items[1].IngredientID)
	assert.Equal(t, 300.0, list.Items[1].Quantity)
	assert.InDelta(t, 250*flour.UnitPrice+300*milk.UnitPrice, list.Total, 1e-9)
	assert.Equal(t, Summary{Lines: 3, Covered: 1, Short: 2}, list.Summary)
}

func TestPlanner_PlanNotFound(t *testing.T) {
	planner := newTestPlanner(t)

	_, err := planner.Plan(context.Background(), "pancakes", "fridge")
	assert.ErrorIs(t, err, kitchen.ErrNotFound)
	assert.Contains(t, err.Error(), "recipe")

	_, err = planner.Plan(context.Background(), "crepes", "garage")
	assert.ErrorIs(t, err, kitchen.ErrNotFound)
	assert.Contains(t, err.Error(), "inventory")
}

func TestPlanner_VisibleTo(t *testing.T) {
	planner := newTestPlanner(t)
	ctx := context.Background()

	list, err := planner.Plan(ctx, "crepes", "fridge", VisibleTo("alice"))
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)

	// Public recipe, foreign inventory.
	_, err = planner.Plan(ctx, "crepes", "fridge", VisibleTo("bob"))
	assert.ErrorIs(t, err, kitchen.ErrForbidden)

	// Private recipe of another user.
	_, err = planner.Plan(ctx, "secret-cake", "fridge", VisibleTo("alice"))
	assert.ErrorIs(t, err, kitchen.ErrNotFound)

	list, err = planner.Plan(ctx, "secret-cake", "bob-shelf", VisibleTo("bob"))
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)

	_, err = planner.Plan(ctx, "crepes", "fridge", VisibleTo(""))
	assert.ErrorIs(t, err, kitchen.ErrForbidden)
}

func TestPlanner_GuardShortCircuits(t *testing.T) {
	planner := newTestPlanner(t)
	boom := errors.New("boom")
	called := false

	_, err := planner.Plan(context.Background(), "crepes", "fridge",
		func(*kitchen.Recipe, *kitchen.Inventory) error { return boom },
		func(*kitchen.Recipe, *kitchen.Inventory) error { called = true; return nil },
	)
	assert.ErrorIs(t, err, boom)
	assert.False(t, called)
}

type brokenRecipes struct{}

func (brokenRecipes) GetByID(_ context.Context, id string) (*kitchen.Recipe, error) {
	return &kitchen.Recipe{ID: id, Name: "Broken", Lines: []kitchen.RecipeLine{
		{IngredientID: "ghost", Quantity: 1},
	}}, nil
}

func (brokenRecipes) ListPublic(context.Context) ([]kitchen.Recipe, error) { return nil, nil }

func (brokenRecipes) ListOwnedBy(context.Context, string) ([]kitchen.Recipe, error) {
	return nil, nil
}

func TestPlanner_IntegrityFailure(t *testing.T) {
	inventories := memory.NewInventories(memory.NewCatalog())
	require.NoError(t, inventories.Create(context.Background(), kitchen.NewInventory("empty", "Empty", "u1")))

	planner := NewPlanner(brokenRecipes{}, inventories)
	list, err := planner.Plan(context.Background(), "broken", "empty")
	assert.Nil(t, list)
	assert.ErrorIs(t, err, kitchen.ErrIntegrity)
}
