// Package memory provides in-memory implementations of the kitchen stores.
// They back dataset-driven runs of the planner and tests. All stores are safe
// for concurrent access and hand out copies, never their own records.
package memory

import (
	"context"
	"fmt"
	"sync"

	"pantry-planner/core/kitchen"
)

// Compile-time interface checks.
var (
	_ kitchen.IngredientCatalog = (*Catalog)(nil)
	_ kitchen.RecipeStore       = (*Recipes)(nil)
	_ kitchen.InventoryStore    = (*Inventories)(nil)
)

// Catalog is an in-memory ingredient catalog.
type Catalog struct {
	mu    sync.RWMutex
	byID  map[string]kitchen.Ingredient
	order []string
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{byID: make(map[string]kitchen.Ingredient)}
}

// Create adds ing, assigning an id when it has none.
func (c *Catalog) Create(_ context.Context, ing *kitchen.Ingredient) error {
	if ing.ID == "" {
		ing.ID = kitchen.NewID()
	}
	if err := ing.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byID[ing.ID]; ok {
		return fmt.Errorf("ingredient %s: %w", ing.ID, kitchen.ErrAlreadyExists)
	}
	c.byID[ing.ID] = *ing
	c.order = append(c.order, ing.ID)
	return nil
}

// Lookup returns the ingredient with the given id.
func (c *Catalog) Lookup(_ context.Context, id string) (*kitchen.Ingredient, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ing, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("ingredient %s: %w", id, kitchen.ErrNotFound)
	}
	return &ing, nil
}

// ListAll returns every ingredient in insertion order.
func (c *Catalog) ListAll(_ context.Context) ([]kitchen.Ingredient, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]kitchen.Ingredient, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out, nil
}

// Recipes is an in-memory recipe store resolving lines against a catalog.
type Recipes struct {
	mu      sync.RWMutex
	catalog kitchen.IngredientCatalog
	byID    map[string]*kitchen.Recipe
	order   []string
}

// NewRecipes creates an empty recipe store.
func NewRecipes(catalog kitchen.IngredientCatalog) *Recipes {
	return &Recipes{
		catalog: catalog,
		byID:    make(map[string]*kitchen.Recipe),
	}
}

// Create adds r after checking that all its ingredients exist.
func (s *Recipes) Create(ctx context.Context, r *kitchen.Recipe) error {
	if r.ID == "" {
		r.ID = kitchen.NewID()
	}
	if err := r.Validate(); err != nil {
		return err
	}
	ids := make([]string, len(r.Lines))
	for i, line := range r.Lines {
		ids[i] = line.IngredientID
	}
	if err := kitchen.CheckReferences(ctx, s.catalog, ids...); err != nil {
		return fmt.Errorf("recipe %s: %w", r.ID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[r.ID]; ok {
		return fmt.Errorf("recipe %s: %w", r.ID, kitchen.ErrAlreadyExists)
	}
	s.byID[r.ID] = r.Clone()
	s.order = append(s.order, r.ID)
	return nil
}

// GetByID returns the recipe with resolved ingredient lines.
func (s *Recipes) GetByID(ctx context.Context, id string) (*kitchen.Recipe, error) {
	s.mu.RLock()
	stored, ok := s.byID[id]
	var r *kitchen.Recipe
	if ok {
		r = stored.Clone()
	}
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("recipe %s: %w", id, kitchen.ErrNotFound)
	}
	if err := kitchen.ResolveRecipe(ctx, s.catalog, r); err != nil {
		return nil, err
	}
	return r, nil
}

// ListPublic returns public recipes in insertion order.
func (s *Recipes) ListPublic(ctx context.Context) ([]kitchen.Recipe, error) {
	return s.list(ctx, func(r *kitchen.Recipe) bool { return r.Public })
}

// ListOwnedBy returns the recipes owned by userID in insertion order.
func (s *Recipes) ListOwnedBy(ctx context.Context, userID string) ([]kitchen.Recipe, error) {
	return s.list(ctx, func(r *kitchen.Recipe) bool { return r.OwnerID == userID })
}

func (s *Recipes) list(ctx context.Context, keep func(*kitchen.Recipe) bool) ([]kitchen.Recipe, error) {
	s.mu.RLock()
	var picked []*kitchen.Recipe
	for _, id := range s.order {
		if r := s.byID[id]; keep(r) {
			picked = append(picked, r.Clone())
		}
	}
	s.mu.RUnlock()

	out := make([]kitchen.Recipe, 0, len(picked))
	for _, r := range picked {
		if err := kitchen.ResolveRecipe(ctx, s.catalog, r); err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, nil
}

// Inventories is an in-memory inventory store resolving items against a catalog.
type Inventories struct {
	mu      sync.RWMutex
	catalog kitchen.IngredientCatalog
	byID    map[string]*kitchen.Inventory
	order   []string
}

// NewInventories creates an empty inventory store.
func NewInventories(catalog kitchen.IngredientCatalog) *Inventories {
	return &Inventories{
		catalog: catalog,
		byID:    make(map[string]*kitchen.Inventory),
	}
}

// Create adds inv after checking that all its ingredients exist.
func (s *Inventories) Create(ctx context.Context, inv *kitchen.Inventory) error {
	if inv.ID == "" {
		inv.ID = kitchen.NewID()
	}
	if err := inv.Validate(); err != nil {
		return err
	}
	ids := make([]string, 0, len(inv.Items))
	for id := range inv.Items {
		ids = append(ids, id)
	}
	if err := kitchen.CheckReferences(ctx, s.catalog, ids...); err != nil {
		return fmt.Errorf("inventory %s: %w", inv.ID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[inv.ID]; ok {
		return fmt.Errorf("inventory %s: %w", inv.ID, kitchen.ErrAlreadyExists)
	}
	s.byID[inv.ID] = inv.Clone()
	s.order = append(s.order, inv.ID)
	return nil
}

// GetByID returns the inventory with resolved items.
func (s *Inventories) GetByID(ctx context.Context, id string) (*kitchen.Inventory, error) {
	s.mu.RLock()
	stored, ok := s.byID[id]
	var inv *kitchen.Inventory
	if ok {
		inv = stored.Clone()
	}
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("inventory %s: %w", id, kitchen.ErrNotFound)
	}
	if err := kitchen.ResolveInventory(ctx, s.catalog, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// ListOwnedBy returns the inventories owned by userID in insertion order.
func (s *Inventories) ListOwnedBy(ctx context.Context, userID string) ([]kitchen.Inventory, error) {
	s.mu.RLock()
	var picked []*kitchen.Inventory
	for _, id := range s.order {
		if inv := s.byID[id]; inv.OwnerID == userID {
			picked = append(picked, inv.Clone())
		}
	}
	s.mu.RUnlock()

	out := make([]kitchen.Inventory, 0, len(picked))
	for _, inv := range picked {
		if err := kitchen.ResolveInventory(ctx, s.catalog, inv); err != nil {
			return nil, err
		}
		out = append(out, *inv)
	}
	return out, nil
}
