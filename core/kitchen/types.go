package kitchen

import (
	"encoding/json"
	"sort"

	"github.com/google/uuid"
)

// Ingredient is a catalog entry. UnitPrice is the price of one Unit.
type Ingredient struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Unit      string  `json:"unit"`
	UnitPrice float64 `json:"unit_price"`
}

// RecipeLine is one required ingredient of a recipe, expressed in the ingredient's unit.
type RecipeLine struct {
	IngredientID string `json:"ingredient_id"`
	// Ingredient is the resolved catalog entry. Stores fill it on read.
	Ingredient *Ingredient `json:"ingredient,omitempty"`
	Quantity   float64     `json:"quantity"`
}

// Recipe is owned by a single user and is either public or private.
type Recipe struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	ImageURL    string       `json:"image_url"`
	PrepTime    int          `json:"prep_time"`
	CookTime    int          `json:"cook_time"`
	Public      bool         `json:"is_public"`
	OwnerID     string       `json:"owner_id"`
	Lines       []RecipeLine `json:"ingredients"`
	Steps       []string     `json:"steps"`
}

// TotalTime returns preparation plus cooking time in minutes.
func (r *Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}

// VisibleTo reports whether userID may read the recipe.
func (r *Recipe) VisibleTo(userID string) bool {
	return r.Public || (userID != "" && r.OwnerID == userID)
}

// Clone returns a copy that shares no slices with r.
func (r *Recipe) Clone() *Recipe {
	out := *r
	out.Lines = make([]RecipeLine, len(r.Lines))
	for i, line := range r.Lines {
		out.Lines[i] = line
		if line.Ingredient != nil {
			ing := *line.Ingredient
			out.Lines[i].Ingredient = &ing
		}
	}
	out.Steps = append([]string(nil), r.Steps...)
	return &out
}

// InventoryItem is the on-hand quantity of one ingredient.
type InventoryItem struct {
	IngredientID string      `json:"ingredient_id"`
	Ingredient   *Ingredient `json:"ingredient,omitempty"`
	Quantity     float64     `json:"quantity"`
}

// Inventory maps ingredient ids to on-hand items.
type Inventory struct {
	ID      string
	Name    string
	OwnerID string
	Items   map[string]InventoryItem
}

// NewInventory returns an empty inventory.
func NewInventory(id, name, ownerID string) *Inventory {
	return &Inventory{
		ID:      id,
		Name:    name,
		OwnerID: ownerID,
		Items:   make(map[string]InventoryItem),
	}
}

// Put stores item, replacing any item already held for the same ingredient.
func (inv *Inventory) Put(item InventoryItem) {
	if inv.Items == nil {
		inv.Items = make(map[string]InventoryItem)
	}
	inv.Items[item.IngredientID] = item
}

// OnHand returns the quantity held for ingredientID, or zero when absent.
func (inv *Inventory) OnHand(ingredientID string) float64 {
	if inv == nil {
		return 0
	}
	return inv.Items[ingredientID].Quantity
}

// SortedItems returns the items ordered by ingredient name, then id.
func (inv *Inventory) SortedItems() []InventoryItem {
	items := make([]InventoryItem, 0, len(inv.Items))
	for _, item := range inv.Items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		ni, nj := itemName(items[i]), itemName(items[j])
		if ni != nj {
			return ni < nj
		}
		return items[i].IngredientID < items[j].IngredientID
	})
	return items
}

// Clone returns a copy that shares no map with inv.
func (inv *Inventory) Clone() *Inventory {
	out := NewInventory(inv.ID, inv.Name, inv.OwnerID)
	for id, item := range inv.Items {
		if item.Ingredient != nil {
			ing := *item.Ingredient
			item.Ingredient = &ing
		}
		out.Items[id] = item
	}
	return out
}

// MarshalJSON renders items as a list in SortedItems order.
func (inv Inventory) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID      string          `json:"id"`
		Name    string          `json:"name"`
		OwnerID string          `json:"owner_id"`
		Items   []InventoryItem `json:"items"`
	}{
		ID:      inv.ID,
		Name:    inv.Name,
		OwnerID: inv.OwnerID,
		Items:   inv.SortedItems(),
	})
}

func itemName(item InventoryItem) string {
	if item.Ingredient != nil {
		return item.Ingredient.Name
	}
	return ""
}

// ShortageItem is one shopping-list line: the quantity still needed and its price.
type ShortageItem struct {
	IngredientID string     `json:"ingredient_id"`
	Ingredient   Ingredient `json:"ingredient"`
	Quantity     float64    `json:"quantity"`
	Price        float64    `json:"price"`
}

// NewID returns a fresh record identifier.
func NewID() string {
	return uuid.NewString()
}
