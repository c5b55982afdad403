package catalog

import (
	"context"
	"errors"
	"testing"

	"pantry-planner/core/database"
	"pantry-planner/core/kitchen"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, Models()...))
	return db
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestRepository_CreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupDB(t))

	require.NoError(t, repo.Create(ctx, &kitchen.Ingredient{ID: "sugar", Name: "Sugar", Unit: "g", UnitPrice: 0.003}))
	require.NoError(t, repo.Create(ctx, &kitchen.Ingredient{ID: "flour", Name: "Flour", Unit: "g", UnitPrice: 0.002}))

	generated := &kitchen.Ingredient{Name: "Eggs", Unit: "piece", UnitPrice: 0.25}
	require.NoError(t, repo.Create(ctx, generated))
	assert.NotEmpty(t, generated.ID)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "sugar", all[0].ID, "insertion order")
	assert.Equal(t, "flour", all[1].ID)

	ing, err := repo.Lookup(ctx, "flour")
	require.NoError(t, err)
	assert.Equal(t, 0.002, ing.UnitPrice)

	_, err = repo.Lookup(ctx, "salt")
	assert.ErrorIs(t, err, kitchen.ErrNotFound)

	err = repo.Create(ctx, &kitchen.Ingredient{ID: "flour", Name: "Flour", Unit: "g"})
	assert.ErrorIs(t, err, kitchen.ErrAlreadyExists)

	err = repo.Create(ctx, &kitchen.Ingredient{ID: "salt", Name: "Salt", Unit: "g", UnitPrice: -1})
	assert.ErrorIs(t, err, kitchen.ErrInvalid)
}

func TestRepository_Snapshot(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupDB(t))
	require.NoError(t, repo.Create(ctx, &kitchen.Ingredient{ID: "flour", Name: "Flour", Unit: "g"}))
	require.NoError(t, repo.Create(ctx, &kitchen.Ingredient{ID: "eggs", Name: "Eggs", Unit: "piece"}))

	snap, err := repo.Snapshot(ctx, []string{"flour", "eggs", "ghost"})
	require.NoError(t, err)

	ing, err := snap.Lookup(ctx, "eggs")
	require.NoError(t, err)
	assert.Equal(t, "Eggs", ing.Name)

	_, err = snap.Lookup(ctx, "ghost")
	assert.ErrorIs(t, err, kitchen.ErrNotFound)

	all, err := snap.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Eggs", all[0].Name)

	empty, err := repo.Snapshot(ctx, nil)
	require.NoError(t, err)
	_, err = empty.Lookup(ctx, "flour")
	assert.ErrorIs(t, err, kitchen.ErrNotFound)
}

func TestRepository_LookupDatabaseError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `ingredients`").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Lookup(context.Background(), "flour")
	assert.ErrorContains(t, err, "connection reset")
	assert.NotErrorIs(t, err, kitchen.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
