package inventories

import "pantry-planner/core/kitchen"

// InventoryRow is the inventories table.
type InventoryRow struct {
	RowID   uint   `gorm:"column:row_id;primaryKey;autoIncrement"`
	ID      string `gorm:"column:id;type:varchar(64);uniqueIndex;not null"`
	Name    string `gorm:"column:name;type:varchar(255);not null"`
	OwnerID string `gorm:"column:owner_id;type:varchar(64);index;not null"`
}

// TableName overrides the table name.
func (InventoryRow) TableName() string {
	return "inventories"
}

// ItemRow is one on-hand quantity.
type ItemRow struct {
	RowID        uint    `gorm:"column:row_id;primaryKey;autoIncrement"`
	InventoryID  string  `gorm:"column:inventory_id;type:varchar(64);not null;uniqueIndex:idx_inventory_ingredient"`
	IngredientID string  `gorm:"column:ingredient_id;type:varchar(64);not null;uniqueIndex:idx_inventory_ingredient"`
	Quantity     float64 `gorm:"column:quantity;not null"`
}

// TableName overrides the table name.
func (ItemRow) TableName() string {
	return "inventory_items"
}

// Models returns the tables owned by this feature.
func Models() []any {
	return []any{&InventoryRow{}, &ItemRow{}}
}

func (r InventoryRow) toDomain(items []ItemRow) *kitchen.Inventory {
	inv := kitchen.NewInventory(r.ID, r.Name, r.OwnerID)
	for _, item := range items {
		inv.Put(kitchen.InventoryItem{IngredientID: item.IngredientID, Quantity: item.Quantity})
	}
	return inv
}
