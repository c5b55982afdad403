package kitchen

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIngredient_Validate(t *testing.T) {
	tests := []struct {
		name    string
		ing     Ingredient
		wantErr bool
	}{
		{"Valid", Ingredient{ID: "1", Name: "Flour", Unit: "g", UnitPrice: 0.002}, false},
		{"FreeIngredient", Ingredient{ID: "1", Name: "Water", Unit: "ml", UnitPrice: 0}, false},
		{"MissingID", Ingredient{Name: "Flour", Unit: "g"}, true},
		{"MissingName", Ingredient{ID: "1", Unit: "g"}, true},
		{"MissingUnit", Ingredient{ID: "1", Name: "Flour"}, true},
		{"NegativePrice", Ingredient{ID: "1", Name: "Flour", Unit: "g", UnitPrice: -1}, true},
		{"NaNPrice", Ingredient{ID: "1", Name: "Flour", Unit: "g", UnitPrice: math.NaN()}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ing.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRecipe_Validate(t *testing.T) {
	valid := func() *Recipe {
		return &Recipe{
			ID:       "r1",
			Name:     "Crepes",
			OwnerID:  "u1",
			PrepTime: 10,
			CookTime: 15,
			Lines: []RecipeLine{
				{IngredientID: "flour", Quantity: 250},
				{IngredientID: "eggs", Quantity: 4},
			},
		}
	}

	assert.NoError(t, valid().Validate())

	t.Run("NoLines", func(t *testing.T) {
		r := valid()
		r.Lines = nil
		assert.NoError(t, r.Validate())
	})

	t.Run("ZeroQuantity", func(t *testing.T) {
		r := valid()
		r.Lines[0].Quantity = 0
		assert.ErrorIs(t, r.Validate(), ErrInvalid)
	})

	t.Run("NegativeQuantity", func(t *testing.T) {
		r := valid()
		r.Lines[1].Quantity = -3
		assert.ErrorIs(t, r.Validate(), ErrInvalid)
	})

	t.Run("DuplicateIngredient", func(t *testing.T) {
		r := valid()
		r.Lines = append(r.Lines, RecipeLine{IngredientID: "flour", Quantity: 10})
		err := r.Validate()
		assert.ErrorIs(t, err, ErrInvalid)
		assert.Contains(t, err.Error(), "listed twice")
	})

	t.Run("NegativeTime", func(t *testing.T) {
		r := valid()
		r.CookTime = -1
		assert.ErrorIs(t, r.Validate(), ErrInvalid)
	})

	t.Run("MissingOwner", func(t *testing.T) {
		r := valid()
		r.OwnerID = ""
		assert.ErrorIs(t, r.Validate(), ErrInvalid)
	})
}

func TestInventory_Validate(t *testing.T) {
	inv := NewInventory("i1", "Pantry", "u1")
	inv.Put(InventoryItem{IngredientID: "flour", Quantity: 1000})
	inv.Put(InventoryItem{IngredientID: "salt", Quantity: 0})
	assert.NoError(t, inv.Validate())

	inv.Put(InventoryItem{IngredientID: "sugar", Quantity: -5})
	assert.ErrorIs(t, inv.Validate(), ErrInvalid)

	mismatched := NewInventory("i2", "Fridge", "u1")
	mismatched.Items["milk"] = InventoryItem{IngredientID: "eggs", Quantity: 1}
	assert.ErrorIs(t, mismatched.Validate(), ErrInvalid)
}
