package inventories

import (
	"context"
	"errors"
	"fmt"

	"pantry-planner/core/kitchen"
	"pantry-planner/feature/catalog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ kitchen.InventoryStore = (*Repository)(nil)

// Repository stores inventories with gorm and resolves their items against the catalog.
type Repository struct {
	db      *gorm.DB
	catalog *catalog.Repository
}

// NewRepository creates an inventory repository.
func NewRepository(db *gorm.DB, catalog *catalog.Repository) *Repository {
	return &Repository{db: db, catalog: catalog}
}

// Create stores inv after validating it and checking its ingredients exist.
func (r *Repository) Create(ctx context.Context, inv *kitchen.Inventory) error {
	if inv.ID == "" {
		inv.ID = kitchen.NewID()
	}
	if err := inv.Validate(); err != nil {
		return err
	}

	items := inv.SortedItems()
	ids := make([]string, len(items))
	rows := make([]ItemRow, len(items))
	for i, item := range items {
		ids[i] = item.IngredientID
		rows[i] = ItemRow{InventoryID: inv.ID, IngredientID: item.IngredientID, Quantity: item.Quantity}
	}
	if err := r.checkReferences(ctx, ids...); err != nil {
		return fmt.Errorf("inventory %s: %w", inv.ID, err)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&InventoryRow{}).Where("id = ?", inv.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check inventory %s: %w", inv.ID, err)
		}
		if count > 0 {
			return fmt.Errorf("inventory %s: %w", inv.ID, kitchen.ErrAlreadyExists)
		}

		row := InventoryRow{ID: inv.ID, Name: inv.Name, OwnerID: inv.OwnerID}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to create inventory %s: %w", inv.ID, err)
		}
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return fmt.Errorf("failed to create items of inventory %s: %w", inv.ID, err)
			}
		}
		return nil
	})
}

// GetByID returns the inventory with resolved items.
func (r *Repository) GetByID(ctx context.Context, id string) (*kitchen.Inventory, error) {
	row, err := r.find(r.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	out, err := r.hydrate(ctx, []InventoryRow{*row})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// ListOwnedBy returns the inventories owned by userID in insertion order.
func (r *Repository) ListOwnedBy(ctx context.Context, userID string) ([]kitchen.Inventory, error) {
	var rows []InventoryRow
	if err := r.db.WithContext(ctx).Where("owner_id = ?", userID).Order("row_id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list inventories: %w", err)
	}
	return r.hydrate(ctx, rows)
}

// SetItem sets the on-hand quantity of ingredientID, adding the item when absent.
// Only the owner may change an inventory.
func (r *Repository) SetItem(ctx context.Context, userID, inventoryID string, item kitchen.InventoryItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if err := r.checkReferences(ctx, item.IngredientID); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.authorize(tx, userID, inventoryID); err != nil {
			return err
		}

		row := ItemRow{InventoryID: inventoryID, IngredientID: item.IngredientID, Quantity: item.Quantity}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "inventory_id"}, {Name: "ingredient_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity"}),
		}).Create(&row).Error
		if err != nil {
			return fmt.Errorf("failed to store item %s of inventory %s: %w", item.IngredientID, inventoryID, err)
		}
		return nil
	})
}

// RemoveItem drops ingredientID from the inventory. Only the owner may change an inventory.
func (r *Repository) RemoveItem(ctx context.Context, userID, inventoryID, ingredientID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.authorize(tx, userID, inventoryID); err != nil {
			return err
		}

		res := tx.Where("inventory_id = ? AND ingredient_id = ?", inventoryID, ingredientID).Delete(&ItemRow{})
		if res.Error != nil {
			return fmt.Errorf("failed to remove item %s of inventory %s: %w", ingredientID, inventoryID, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("inventory %s: item %s: %w", inventoryID, ingredientID, kitchen.ErrNotFound)
		}
		return nil
	})
}

// Delete removes the inventory and its items. Only the owner may delete an inventory.
func (r *Repository) Delete(ctx context.Context, userID, inventoryID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.authorize(tx, userID, inventoryID); err != nil {
			return err
		}
		if err := tx.Where("inventory_id = ?", inventoryID).Delete(&ItemRow{}).Error; err != nil {
			return fmt.Errorf("failed to delete items of inventory %s: %w", inventoryID, err)
		}
		if err := tx.Where("id = ?", inventoryID).Delete(&InventoryRow{}).Error; err != nil {
			return fmt.Errorf("failed to delete inventory %s: %w", inventoryID, err)
		}
		return nil
	})
}

func (r *Repository) find(db *gorm.DB, id string) (*InventoryRow, error) {
	var row InventoryRow
	err := db.Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("inventory %s: %w", id, kitchen.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory %s: %w", id, err)
	}
	return &row, nil
}

func (r *Repository) authorize(tx *gorm.DB, userID, inventoryID string) error {
	row, err := r.find(tx, inventoryID)
	if err != nil {
		return err
	}
	if userID == "" || row.OwnerID != userID {
		return fmt.Errorf("inventory %s: %w", inventoryID, kitchen.ErrForbidden)
	}
	return nil
}

func (r *Repository) checkReferences(ctx context.Context, ids ...string) error {
	snap, err := r.catalog.Snapshot(ctx, ids)
	if err != nil {
		return err
	}
	return kitchen.CheckReferences(ctx, snap, ids...)
}

func (r *Repository) hydrate(ctx context.Context, rows []InventoryRow) ([]kitchen.Inventory, error) {
	out := make([]kitchen.Inventory, 0, len(rows))
	if len(rows) == 0 {
		return out, nil
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}

	var items []ItemRow
	if err := r.db.WithContext(ctx).Where("inventory_id IN ?", ids).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to load inventory items: %w", err)
	}

	byInventory := make(map[string][]ItemRow, len(rows))
	ingredientIDs := make([]string, 0, len(items))
	for _, item := range items {
		byInventory[item.InventoryID] = append(byInventory[item.InventoryID], item)
		ingredientIDs = append(ingredientIDs, item.IngredientID)
	}

	snap, err := r.catalog.Snapshot(ctx, ingredientIDs)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		inv := row.toDomain(byInventory[row.ID])
		if err := kitchen.ResolveInventory(ctx, snap, inv); err != nil {
			return nil, err
		}
		out = append(out, *inv)
	}
	return out, nil
}
