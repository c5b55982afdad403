// Package catalog implements the ingredient catalog feature.
//
// The catalog is the authoritative set of ingredient definitions. Recipes and
// inventories only store ingredient ids and resolve them here on read.
//
// # Components
//
//   - Repository: gorm-backed kitchen.IngredientCatalog over the ingredients table.
//   - Service: listing with name search, lookup and creation.
//   - Handler: HTTP endpoints.
//
// # HTTP Endpoints
//
//   - GET  /ingredients?q=     : list the catalog, optionally filtered by name.
//   - GET  /ingredients/:id    : one ingredient.
//   - POST /ingredients        : add an ingredient.
package catalog
