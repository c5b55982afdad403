package cmd

import (
	"fmt"

	"pantry-planner/core/config"
	"pantry-planner/core/database"
	"pantry-planner/core/logger"
	"pantry-planner/core/reconcile"
	"pantry-planner/feature/catalog"
	"pantry-planner/feature/integrity"
	"pantry-planner/feature/inventories"
	"pantry-planner/feature/recipes"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// repositories are the gorm-backed kitchen stores.
type repositories struct {
	catalog     *catalog.Repository
	recipes     *recipes.Repository
	inventories *inventories.Repository
}

func newRepositories(db *gorm.DB) *repositories {
	cat := catalog.NewRepository(db)
	return &repositories{
		catalog:     cat,
		recipes:     recipes.NewRepository(db, cat),
		inventories: inventories.NewRepository(db, cat),
	}
}

func (r *repositories) planner() *reconcile.Planner {
	return reconcile.NewPlanner(r.recipes, r.inventories)
}

func loadEnvironment() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, logg, nil
}

// openDatabase connects and migrates every application table.
func openDatabase(cfg database.Config) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db, integrity.Models()...); err != nil {
		return nil, err
	}
	return db, nil
}
