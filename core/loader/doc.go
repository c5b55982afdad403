// Package loader provides the feature loading system.
//
// Each feature (catalog, recipes, inventories, shopping, integrity) implements
// Feature and registers its routes when loaded:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager keeps the registry. Register adds a feature; LoadAll loads the
// enabled ones in registration order.
package loader
