package recipes

import (
	"context"
	"errors"
	"fmt"

	"pantry-planner/core/kitchen"
	"pantry-planner/feature/catalog"

	"gorm.io/gorm"
)

var _ kitchen.RecipeStore = (*Repository)(nil)

// Repository stores recipes with gorm and resolves their lines against the catalog.
type Repository struct {
	db      *gorm.DB
	catalog *catalog.Repository
}

// NewRepository creates a recipe repository.
func NewRepository(db *gorm.DB, catalog *catalog.Repository) *Repository {
	return &Repository{db: db, catalog: catalog}
}

// Create stores rec after validating it and checking its ingredients exist.
func (r *Repository) Create(ctx context.Context, rec *kitchen.Recipe) error {
	if rec.ID == "" {
		rec.ID = kitchen.NewID()
	}
	if err := rec.Validate(); err != nil {
		return err
	}

	ids := lineIDs(rec.Lines)
	snap, err := r.catalog.Snapshot(ctx, ids)
	if err != nil {
		return err
	}
	if err := kitchen.CheckReferences(ctx, snap, ids...); err != nil {
		return fmt.Errorf("recipe %s: %w", rec.ID, err)
	}

	row, lines, err := rowsFromDomain(rec)
	if err != nil {
		return fmt.Errorf("failed to encode recipe %s: %w", rec.ID, err)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&RecipeRow{}).Where("id = ?", rec.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check recipe %s: %w", rec.ID, err)
		}
		if count > 0 {
			return fmt.Errorf("recipe %s: %w", rec.ID, kitchen.ErrAlreadyExists)
		}

		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to create recipe %s: %w", rec.ID, err)
		}
		if len(lines) > 0 {
			if err := tx.Create(&lines).Error; err != nil {
				return fmt.Errorf("failed to create lines of recipe %s: %w", rec.ID, err)
			}
		}
		return nil
	})
}

// Delete removes the recipe and its lines. Only the owner may delete a recipe.
func (r *Repository) Delete(ctx context.Context, userID, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.authorize(tx, userID, id); err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&LineRow{}).Error; err != nil {
			return fmt.Errorf("failed to delete lines of recipe %s: %w", id, err)
		}
		if err := tx.Where("id = ?", id).Delete(&RecipeRow{}).Error; err != nil {
			return fmt.Errorf("failed to delete recipe %s: %w", id, err)
		}
		return nil
	})
}

func (r *Repository) authorize(tx *gorm.DB, userID, id string) error {
	var row RecipeRow
	err := tx.Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("recipe %s: %w", id, kitchen.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to load recipe %s: %w", id, err)
	}
	if userID == "" || row.OwnerID != userID {
		return fmt.Errorf("recipe %s: %w", id, kitchen.ErrForbidden)
	}
	return nil
}

// GetByID returns the recipe with resolved lines.
func (r *Repository) GetByID(ctx context.Context, id string) (*kitchen.Recipe, error) {
	var row RecipeRow
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("recipe %s: %w", id, kitchen.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe %s: %w", id, err)
	}

	out, err := r.hydrate(ctx, []RecipeRow{row})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// ListPublic returns public recipes in insertion order.
func (r *Repository) ListPublic(ctx context.Context) ([]kitchen.Recipe, error) {
	return r.list(ctx, "is_public = ?", true)
}

// ListOwnedBy returns the recipes owned by userID in insertion order.
func (r *Repository) ListOwnedBy(ctx context.Context, userID string) ([]kitchen.Recipe, error) {
	return r.list(ctx, "owner_id = ?", userID)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]kitchen.Recipe, error) {
	var rows []RecipeRow
	if err := r.db.WithContext(ctx).Where(query, args...).Order("row_id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return r.hydrate(ctx, rows)
}

// hydrate loads the lines of rows with one query and resolves them with one catalog snapshot.
func (r *Repository) hydrate(ctx context.Context, rows []RecipeRow) ([]kitchen.Recipe, error) {
	out := make([]kitchen.Recipe, 0, len(rows))
	if len(rows) == 0 {
		return out, nil
	}

	recipeIDs := make([]string, len(rows))
	for i, row := range rows {
		recipeIDs[i] = row.ID
	}

	var lines []LineRow
	err := r.db.WithContext(ctx).
		Where("recipe_id IN ?", recipeIDs).
		Order("recipe_id, position").
		Find(&lines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe lines: %w", err)
	}

	byRecipe := make(map[string][]LineRow, len(rows))
	ingredientIDs := make([]string, 0, len(lines))
	for _, line := range lines {
		byRecipe[line.RecipeID] = append(byRecipe[line.RecipeID], line)
		ingredientIDs = append(ingredientIDs, line.IngredientID)
	}

	snap, err := r.catalog.Snapshot(ctx, ingredientIDs)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		rec, err := row.toDomain(byRecipe[row.ID])
		if err != nil {
			return nil, fmt.Errorf("failed to decode recipe %s: %w", row.ID, err)
		}
		if err := kitchen.ResolveRecipe(ctx, snap, rec); err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, nil
}

func lineIDs(lines []kitchen.RecipeLine) []string {
	ids := make([]string, len(lines))
	for i, line := range lines {
		ids[i] = line.IngredientID
	}
	return ids
}
