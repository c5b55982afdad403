package catalog

import "pantry-planner/core/kitchen"

// IngredientRow is the ingredients table. RowID keeps insertion order.
type IngredientRow struct {
	RowID     uint    `gorm:"column:row_id;primaryKey;autoIncrement"`
	ID        string  `gorm:"column:id;type:varchar(64);uniqueIndex;not null"`
	Name      string  `gorm:"column:name;type:varchar(255);not null"`
	Unit      string  `gorm:"column:unit;type:varchar(32);not null"`
	UnitPrice float64 `gorm:"column:unit_price;not null"`
}

// TableName overrides the table name.
func (IngredientRow) TableName() string {
	return "ingredients"
}

// ToDomain converts the row to a kitchen.Ingredient.
func (r IngredientRow) ToDomain() kitchen.Ingredient {
	return kitchen.Ingredient{
		ID:        r.ID,
		Name:      r.Name,
		Unit:      r.Unit,
		UnitPrice: r.UnitPrice,
	}
}

func rowFromDomain(ing *kitchen.Ingredient) IngredientRow {
	return IngredientRow{
		ID:        ing.ID,
		Name:      ing.Name,
		Unit:      ing.Unit,
		UnitPrice: ing.UnitPrice,
	}
}

// Models returns the tables owned by this feature.
func Models() []any {
	return []any{&IngredientRow{}}
}
