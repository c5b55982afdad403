// Package recipes implements the recipe feature.
//
// Recipes are owned by one user and are either public or private. Their
// ingredient lines keep the order they were entered in (recipe_lines.position)
// and reference the catalog by id; the repository resolves them on every read,
// so a line pointing at a missing catalog entry surfaces as
// kitchen.ErrIntegrity instead of being dropped.
//
// # HTTP Endpoints
//
//   - GET  /recipes/public?q= : public recipes in insertion order.
//   - GET  /recipes/mine?q=   : the caller's recipes, public or not.
//   - GET  /recipes/:id       : one recipe, if public or owned by the caller.
//   - POST /recipes           : create a recipe owned by the caller.
package recipes
