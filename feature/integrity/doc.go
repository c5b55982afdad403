// Package integrity checks that the deployment can serve shopping lists.
//
// # Checks Provided
//
//   - Storage: the bucket exists and holds the seed dataset.
//   - Schema: every column of the gorm models exists in the connected database.
//   - Data: recipe lines and inventory items only reference known ingredients,
//     every line belongs to a recipe, and no recipe lists an ingredient twice.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/storage : Runs the storage check (supports ?fix=true).
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/data : Runs the data check.
package integrity
