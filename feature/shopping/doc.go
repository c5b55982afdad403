// Package shopping serves shopping lists.
//
// A shopping list is computed on every request by the reconcile planner from
// one recipe and one of the caller's inventories; nothing is cached or stored.
// The recipe must be readable by the caller and the inventory owned by them.
//
// # HTTP Endpoints
//
//   - GET /shopping-list?recipe=&inventory=                  : the list as JSON.
//   - GET /shopping-list/export?recipe=&inventory=&format=   : csv (default) or xlsx download.
package shopping
