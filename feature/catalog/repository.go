package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"pantry-planner/core/kitchen"

	"gorm.io/gorm"
)

var _ kitchen.IngredientCatalog = (*Repository)(nil)

// Repository stores ingredients with gorm.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a catalog repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create adds ing, assigning an id when it has none.
func (r *Repository) Create(ctx context.Context, ing *kitchen.Ingredient) error {
	if ing.ID == "" {
		ing.ID = kitchen.NewID()
	}
	if err := ing.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&IngredientRow{}).Where("id = ?", ing.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check ingredient %s: %w", ing.ID, err)
		}
		if count > 0 {
			return fmt.Errorf("ingredient %s: %w", ing.ID, kitchen.ErrAlreadyExists)
		}

		row := rowFromDomain(ing)
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to create ingredient %s: %w", ing.ID, err)
		}
		return nil
	})
}

// Lookup returns the ingredient with the given id.
func (r *Repository) Lookup(ctx context.Context, id string) (*kitchen.Ingredient, error) {
	var row IngredientRow
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("ingredient %s: %w", id, kitchen.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load ingredient %s: %w", id, err)
	}
	ing := row.ToDomain()
	return &ing, nil
}

// ListAll returns every ingredient in insertion order.
func (r *Repository) ListAll(ctx context.Context) ([]kitchen.Ingredient, error) {
	var rows []IngredientRow
	if err := r.db.WithContext(ctx).Order("row_id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}
	out := make([]kitchen.Ingredient, len(rows))
	for i, row := range rows {
		out[i] = row.ToDomain()
	}
	return out, nil
}

// Snapshot loads the given ingredients with one query. The result answers
// Lookup for those ids only, which lets callers resolve many lines at once.
func (r *Repository) Snapshot(ctx context.Context, ids []string) (kitchen.IngredientCatalog, error) {
	snap := Snapshot{}
	if len(ids) == 0 {
		return snap, nil
	}

	var rows []IngredientRow
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load ingredients: %w", err)
	}
	for _, row := range rows {
		snap[row.ID] = row.ToDomain()
	}
	return snap, nil
}

// Snapshot is a fixed set of ingredients keyed by id.
type Snapshot map[string]kitchen.Ingredient

// Lookup returns the ingredient with the given id.
func (s Snapshot) Lookup(_ context.Context, id string) (*kitchen.Ingredient, error) {
	ing, ok := s[id]
	if !ok {
		return nil, fmt.Errorf("ingredient %s: %w", id, kitchen.ErrNotFound)
	}
	return &ing, nil
}

// ListAll returns the snapshot ordered by name.
func (s Snapshot) ListAll(_ context.Context) ([]kitchen.Ingredient, error) {
	out := make([]kitchen.Ingredient, 0, len(s))
	for _, ing := range s {
		out = append(out, ing)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
