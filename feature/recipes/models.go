package recipes

import (
	"encoding/json"

	"pantry-planner/core/kitchen"

	"gorm.io/datatypes"
)

// RecipeRow is the recipes table.
type RecipeRow struct {
	RowID       uint           `gorm:"column:row_id;primaryKey;autoIncrement"`
	ID          string         `gorm:"column:id;type:varchar(64);uniqueIndex;not null"`
	Name        string         `gorm:"column:name;type:varchar(255);not null"`
	Description string         `gorm:"column:description;type:text"`
	ImageURL    string         `gorm:"column:image_url;type:varchar(512)"`
	PrepTime    int            `gorm:"column:prep_time"`
	CookTime    int            `gorm:"column:cook_time"`
	IsPublic    bool           `gorm:"column:is_public;index"`
	OwnerID     string         `gorm:"column:owner_id;type:varchar(64);index;not null"`
	Steps       datatypes.JSON `gorm:"column:steps"`
}

// TableName overrides the table name.
func (RecipeRow) TableName() string {
	return "recipes"
}

// LineRow is one ingredient line of a recipe.
type LineRow struct {
	RowID        uint    `gorm:"column:row_id;primaryKey;autoIncrement"`
	RecipeID     string  `gorm:"column:recipe_id;type:varchar(64);index;not null"`
	Position     int     `gorm:"column:position;not null"`
	IngredientID string  `gorm:"column:ingredient_id;type:varchar(64);index;not null"`
	Quantity     float64 `gorm:"column:quantity;not null"`
}

// TableName overrides the table name.
func (LineRow) TableName() string {
	return "recipe_lines"
}

// Models returns the tables owned by this feature.
func Models() []any {
	return []any{&RecipeRow{}, &LineRow{}}
}

func (r RecipeRow) toDomain(lines []LineRow) (*kitchen.Recipe, error) {
	rec := &kitchen.Recipe{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		PrepTime:    r.PrepTime,
		CookTime:    r.CookTime,
		Public:      r.IsPublic,
		OwnerID:     r.OwnerID,
		Lines:       make([]kitchen.RecipeLine, 0, len(lines)),
		Steps:       []string{},
	}
	if len(r.Steps) > 0 {
		if err := json.Unmarshal(r.Steps, &rec.Steps); err != nil {
			return nil, err
		}
	}
	for _, line := range lines {
		rec.Lines = append(rec.Lines, kitchen.RecipeLine{
			IngredientID: line.IngredientID,
			Quantity:     line.Quantity,
		})
	}
	return rec, nil
}

func rowsFromDomain(rec *kitchen.Recipe) (RecipeRow, []LineRow, error) {
	steps := rec.Steps
	if steps == nil {
		steps = []string{}
	}
	raw, err := json.Marshal(steps)
	if err != nil {
		return RecipeRow{}, nil, err
	}

	row := RecipeRow{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		ImageURL:    rec.ImageURL,
		PrepTime:    rec.PrepTime,
		CookTime:    rec.CookTime,
		IsPublic:    rec.Public,
		OwnerID:     rec.OwnerID,
		Steps:       datatypes.JSON(raw),
	}

	lines := make([]LineRow, len(rec.Lines))
	for i, line := range rec.Lines {
		lines[i] = LineRow{
			RecipeID:     rec.ID,
			Position:     i,
			IngredientID: line.IngredientID,
			Quantity:     line.Quantity,
		}
	}
	return row, lines, nil
}
