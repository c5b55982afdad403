// Package reconcile derives shopping lists by comparing what a recipe needs
// against what an inventory already holds.
//
// # Engine
//
// Reconcile is a pure function over one recipe and one inventory. For every
// recipe line, in recipe order, it computes
//
//	needed = max(0, required - onHand)
//
// and emits a ShortageItem priced at needed x unit price when needed > 0.
// Lines never interact: surplus stock of one ingredient is not carried over
// to another, ingredients only present in the inventory are ignored, and a
// fully covered line produces no output. The price is the exact product;
// rounding is left to presentation (see core/utils).
//
// Reconcile holds no state and performs no I/O, so it may be called
// concurrently on shared inputs. Nothing is cached: callers recompute the
// list (and its Total) whenever they need it.
//
// # Planner
//
// Planner sits one layer above the engine. It resolves the recipe and the
// inventory through the kitchen store ports, concurrently, and only invokes
// Reconcile once both resolved. Not-found and integrity failures are returned
// to the caller untouched so they can be matched with errors.Is.
//
// # Usage
//
//	planner := reconcile.NewPlanner(recipeStore, inventoryStore)
//	list, err := planner.Plan(ctx, "crepes", "fridge", reconcile.VisibleTo(userID))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(list.Total)
package reconcile
