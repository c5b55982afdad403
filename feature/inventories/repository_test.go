package inventories

import (
	"context"
	"testing"

	"pantry-planner/core/database"
	"pantry-planner/core/kitchen"
	"pantry-planner/feature/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRepo(t *testing.T) (*Repository, *gorm.DB) {
	t.Helper()
	ctx := context.Background()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, append(catalog.Models(), Models()...)...))

	cat := catalog.NewRepository(db)
	for _, ing := range []kitchen.Ingredient{
		{ID: "flour", Name: "Flour", Unit: "g", UnitPrice: 0.002},
		{ID: "eggs", Name: "Eggs", Unit: "piece", UnitPrice: 0.25},
		{ID: "milk", Name: "Milk", Unit: "ml", UnitPrice: 0.001},
	} {
		ing := ing
		require.NoError(t, cat.Create(ctx, &ing))
	}
	return NewRepository(db, cat), db
}

func pantry(id, owner string) *kitchen.Inventory {
	inv := kitchen.NewInventory(id, "Pantry "+id, owner)
	inv.Put(kitchen.InventoryItem{IngredientID: "flour", Quantity: 1000})
	inv.Put(kitchen.InventoryItem{IngredientID: "eggs", Quantity: 6})
	return inv
}

func TestRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupRepo(t)

	require.NoError(t, repo.Create(ctx, pantry("p1", "alice")))

	inv, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "alice", inv.OwnerID)
	assert.Equal(t, 1000.0, inv.OnHand("flour"))
	assert.Equal(t, 6.0, inv.OnHand("eggs"))
	assert.Zero(t, inv.OnHand("milk"))
	require.NotNil(t, inv.Items["eggs"].Ingredient)
	assert.Equal(t, "Eggs", inv.Items["eggs"].Ingredient.Name)

	_, err = repo.GetByID(ctx, "p2")
	assert.ErrorIs(t, err, kitchen.ErrNotFound)

	assert.ErrorIs(t, repo.Create(ctx, pantry("p1", "alice")), kitchen.ErrAlreadyExists)

	bad := pantry("p3", "alice")
	bad.Put(kitchen.InventoryItem{IngredientID: "saffron", Quantity: 1})
	assert.ErrorIs(t, repo.Create(ctx, bad), kitchen.ErrInvalid)
}

func TestRepository_ListOwnedBy(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupRepo(t)

	require.NoError(t, repo.Create(ctx, pantry("z", "alice")))
	require.NoError(t, repo.Create(ctx, pantry("a", "alice")))
	require.NoError(t, repo.Create(ctx, pantry("b", "bob")))

	mine, err := repo.ListOwnedBy(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "z", mine[0].ID)
	assert.Equal(t, "a", mine[1].ID)
	assert.Equal(t, 6.0, mine[1].OnHand("eggs"))
}

func TestRepository_SetItem(t *testing.T) {
	ctx := context.Background()
	repo, db := setupRepo(t)
	require.NoError(t, repo.Create(ctx, pantry("p1", "alice")))

	require.NoError(t, repo.SetItem(ctx, "alice", "p1", kitchen.InventoryItem{IngredientID: "milk", Quantity: 500}))
	require.NoError(t, repo.SetItem(ctx, "alice", "p1", kitchen.InventoryItem{IngredientID: "eggs", Quantity: 2}))

	inv, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 500.0, inv.OnHand("milk"))
	assert.Equal(t, 2.0, inv.OnHand("eggs"), "existing item is replaced")

	var count int64
	require.NoError(t, db.Model(&ItemRow{}).Where("inventory_id = ? AND ingredient_id = ?", "p1", "eggs").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	err = repo.SetItem(ctx, "bob", "p1", kitchen.InventoryItem{IngredientID: "milk", Quantity: 1})
	assert.ErrorIs(t, err, kitchen.ErrForbidden)

	err = repo.SetItem(ctx, "alice", "nope", kitchen.InventoryItem{IngredientID: "milk", Quantity: 1})
	assert.ErrorIs(t, err, kitchen.ErrNotFound)

	err = repo.SetItem(ctx, "alice", "p1", kitchen.InventoryItem{IngredientID: "saffron", Quantity: 1})
	assert.ErrorIs(t, err, kitchen.ErrInvalid)

	err = repo.SetItem(ctx, "alice", "p1", kitchen.InventoryItem{IngredientID: "milk", Quantity: -1})
	assert.ErrorIs(t, err, kitchen.ErrInvalid)
}

func TestRepository_RemoveItem(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupRepo(t)
	require.NoError(t, repo.Create(ctx, pantry("p1", "alice")))

	assert.ErrorIs(t, repo.RemoveItem(ctx, "bob", "p1", "eggs"), kitchen.ErrForbidden)
	require.NoError(t, repo.RemoveItem(ctx, "alice", "p1", "eggs"))
	assert.ErrorIs(t, repo.RemoveItem(ctx, "alice", "p1", "eggs"), kitchen.ErrNotFound)

	inv, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Zero(t, inv.OnHand("eggs"))
	assert.Len(t, inv.Items, 1)
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo, db := setupRepo(t)
	require.NoError(t, repo.Create(ctx, pantry("p1", "alice")))
	require.NoError(t, repo.Create(ctx, pantry("p2", "alice")))

	assert.ErrorIs(t, repo.Delete(ctx, "bob", "p1"), kitchen.ErrForbidden)
	assert.ErrorIs(t, repo.Delete(ctx, "alice", "p9"), kitchen.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, "alice", "p1"))
	_, err := repo.GetByID(ctx, "p1")
	assert.ErrorIs(t, err, kitchen.ErrNotFound)

	var items int64
	require.NoError(t, db.Model(&ItemRow{}).Where("inventory_id = ?", "p1").Count(&items).Error)
	assert.Zero(t, items)

	left, err := repo.GetByID(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, 6.0, left.OnHand("eggs"))
}
