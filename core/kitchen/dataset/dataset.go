// Package dataset reads planner records from YAML or JSON documents and
// writes them into any set of kitchen stores.
//
// A dataset can come from a local file or from an object in the configured
// storage bucket. The same document shape serves both:
//
//	ingredients:
//	  - {id: flour, name: Flour, unit: g, unit_price: 0.002}
//	recipes:
//	  - id: crepes
//	    name: Crepes
//	    owner_id: u1
//	    public: true
//	    ingredients:
//	      - {ingredient_id: flour, quantity: 250}
//	    steps: [Mix, Rest, Cook]
//	inventories:
//	  - id: pantry
//	    name: Pantry
//	    owner_id: u1
//	    items:
//	      - {ingredient_id: flour, quantity: 1000}
package dataset

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"pantry-planner/core/kitchen"
	"pantry-planner/core/storage"

	"github.com/minio/minio-go/v7"
	"gopkg.in/yaml.v3"
)

// Dataset is the decoded document.
type Dataset struct {
	Ingredients []IngredientRecord `yaml:"ingredients"`
	Recipes     []RecipeRecord     `yaml:"recipes"`
	Inventories []InventoryRecord  `yaml:"inventories"`
}

// IngredientRecord is a catalog entry as written in a dataset.
type IngredientRecord struct {
	ID        string  `yaml:"id"`
	Name      string  `yaml:"name"`
	Unit      string  `yaml:"unit"`
	UnitPrice float64 `yaml:"unit_price"`
}

// LineRecord is a recipe line or an inventory item.
type LineRecord struct {
	IngredientID string  `yaml:"ingredient_id"`
	Quantity     float64 `yaml:"quantity"`
}

// RecipeRecord is a recipe as written in a dataset.
type RecipeRecord struct {
	ID          string       `yaml:"id"`
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	ImageURL    string       `yaml:"image_url"`
	PrepTime    int          `yaml:"prep_time"`
	CookTime    int          `yaml:"cook_time"`
	Public      bool         `yaml:"public"`
	OwnerID     string       `yaml:"owner_id"`
	Ingredients []LineRecord `yaml:"ingredients"`
	Steps       []string     `yaml:"steps"`
}

// InventoryRecord is an inventory as written in a dataset.
type InventoryRecord struct {
	ID      string       `yaml:"id"`
	Name    string       `yaml:"name"`
	OwnerID string       `yaml:"owner_id"`
	Items   []LineRecord `yaml:"items"`
}

// Parse decodes a YAML or JSON document.
func Parse(r io.Reader) (*Dataset, error) {
	var ds Dataset
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		if err == io.EOF {
			return &ds, nil
		}
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}
	return &ds, nil
}

// FromFile reads a dataset from a local path.
func FromFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// FromStorage reads a dataset object from the bucket.
func FromStorage(ctx context.Context, client storage.Client, bucket, objectName string) (*Dataset, error) {
	obj, err := client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get dataset object %s: %w", objectName, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset object %s: %w", objectName, err)
	}
	return Parse(bytes.NewReader(data))
}

// Ingredient converts the record.
func (r IngredientRecord) Ingredient() kitchen.Ingredient {
	return kitchen.Ingredient{ID: r.ID, Name: r.Name, Unit: r.Unit, UnitPrice: r.UnitPrice}
}

// Recipe converts the record, keeping line and step order.
func (r RecipeRecord) Recipe() kitchen.Recipe {
	lines := make([]kitchen.RecipeLine, len(r.Ingredients))
	for i, l := range r.Ingredients {
		lines[i] = kitchen.RecipeLine{IngredientID: l.IngredientID, Quantity: l.Quantity}
	}
	return kitchen.Recipe{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		PrepTime:    r.PrepTime,
		CookTime:    r.CookTime,
		Public:      r.Public,
		OwnerID:     r.OwnerID,
		Lines:       lines,
		Steps:       append([]string{}, r.Steps...),
	}
}

// Inventory converts the record. Listing the same ingredient twice is rejected.
func (r InventoryRecord) Inventory() (*kitchen.Inventory, error) {
	inv := kitchen.NewInventory(r.ID, r.Name, r.OwnerID)
	for _, item := range r.Items {
		if _, dup := inv.Items[item.IngredientID]; dup {
			return nil, fmt.Errorf("%w: inventory %s: ingredient %s listed twice", kitchen.ErrInvalid, r.ID, item.IngredientID)
		}
		inv.Put(kitchen.InventoryItem{IngredientID: item.IngredientID, Quantity: item.Quantity})
	}
	return inv, nil
}
