package kitchen

import "strings"

// Matches reports whether any field contains query, ignoring case.
// An empty query matches everything.
func Matches(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// FilterRecipes keeps recipes whose name or description matches query.
func FilterRecipes(recipes []Recipe, query string) []Recipe {
	out := make([]Recipe, 0, len(recipes))
	for _, r := range recipes {
		if Matches(query, r.Name, r.Description) {
			out = append(out, r)
		}
	}
	return out
}

// FilterIngredients keeps ingredients whose name matches query.
func FilterIngredients(ingredients []Ingredient, query string) []Ingredient {
	out := make([]Ingredient, 0, len(ingredients))
	for _, ing := range ingredients {
		if Matches(query, ing.Name) {
			out = append(out, ing)
		}
	}
	return out
}

// FilterItems keeps inventory items whose ingredient name matches query.
func FilterItems(items []InventoryItem, query string) []InventoryItem {
	out := make([]InventoryItem, 0, len(items))
	for _, item := range items {
		if Matches(query, itemName(item)) {
			out = append(out, item)
		}
	}
	return out
}
