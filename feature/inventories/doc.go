// Package inventories implements the inventory feature.
//
// An inventory belongs to one user and holds at most one item per ingredient;
// the inventory_items table enforces that with a unique (inventory_id,
// ingredient_id) index. Only the owner may read or change an inventory.
//
// # HTTP Endpoints
//
//   - GET    /inventories/mine                  : the caller's inventories.
//   - GET    /inventories/:id?q=                : one inventory, items filtered by name.
//   - POST   /inventories                       : create an inventory for the caller.
//   - PUT    /inventories/:id/items/:ingredient : set the on-hand quantity of an ingredient.
//   - DELETE /inventories/:id/items/:ingredient : remove an ingredient.
package inventories
