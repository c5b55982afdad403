package dataset

import (
	"context"
	"errors"
	"fmt"

	"pantry-planner/core/kitchen"
	"pantry-planner/core/kitchen/memory"
)

// Writer creates records of one kind. Both the memory stores and the gorm
// repositories satisfy it.
type Writer[T any] interface {
	Create(ctx context.Context, v *T) error
}

// Writers bundles the destinations of a seed run.
type Writers struct {
	Ingredients Writer[kitchen.Ingredient]
	Recipes     Writer[kitchen.Recipe]
	Inventories Writer[kitchen.Inventory]
}

// Report counts what a seed run did.
type Report struct {
	Created map[string]int `json:"created"`
	Skipped map[string]int `json:"skipped"`
}

func newReport() *Report {
	return &Report{Created: map[string]int{}, Skipped: map[string]int{}}
}

func (r *Report) record(kind string, err error) error {
	switch {
	case err == nil:
		r.Created[kind]++
	case errors.Is(err, kitchen.ErrAlreadyExists):
		r.Skipped[kind]++
	default:
		return err
	}
	return nil
}

// Seed writes ingredients, then recipes, then inventories, so that every
// reference is already in the catalog when it is checked. Records that
// already exist are skipped; any other failure stops the run.
func Seed(ctx context.Context, ds *Dataset, w Writers) (*Report, error) {
	report := newReport()

	for _, rec := range ds.Ingredients {
		ing := rec.Ingredient()
		if err := report.record("ingredients", w.Ingredients.Create(ctx, &ing)); err != nil {
			return report, fmt.Errorf("seed ingredient %s: %w", rec.ID, err)
		}
	}

	for _, rec := range ds.Recipes {
		r := rec.Recipe()
		if err := report.record("recipes", w.Recipes.Create(ctx, &r)); err != nil {
			return report, fmt.Errorf("seed recipe %s: %w", rec.ID, err)
		}
	}

	for _, rec := range ds.Inventories {
		inv, err := rec.Inventory()
		if err != nil {
			return report, err
		}
		if err := report.record("inventories", w.Inventories.Create(ctx, inv)); err != nil {
			return report, fmt.Errorf("seed inventory %s: %w", rec.ID, err)
		}
	}

	return report, nil
}

// Stores holds the memory stores built from a dataset.
type Stores struct {
	Catalog     *memory.Catalog
	Recipes     *memory.Recipes
	Inventories *memory.Inventories
}

// Memory loads ds into fresh memory stores. Duplicates inside the dataset are errors.
func (ds *Dataset) Memory(ctx context.Context) (*Stores, error) {
	catalog := memory.NewCatalog()
	stores := &Stores{
		Catalog:     catalog,
		Recipes:     memory.NewRecipes(catalog),
		Inventories: memory.NewInventories(catalog),
	}

	report, err := Seed(ctx, ds, Writers{
		Ingredients: stores.Catalog,
		Recipes:     stores.Recipes,
		Inventories: stores.Inventories,
	})
	if err != nil {
		return nil, err
	}
	for kind, n := range report.Skipped {
		if n > 0 {
			return nil, fmt.Errorf("%w: dataset repeats %d %s", kitchen.ErrInvalid, n, kind)
		}
	}
	return stores, nil
}
