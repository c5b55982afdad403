package kitchen

import "errors"

// Sentinel errors used across layers.
var (
	// ErrNotFound means a recipe, inventory or ingredient id does not resolve.
	ErrNotFound = errors.New("not found")
	// ErrIntegrity means a stored line references an ingredient the catalog cannot resolve.
	ErrIntegrity = errors.New("integrity violation")
	// ErrInvalid means a record failed data-entry validation.
	ErrInvalid = errors.New("invalid record")
	// ErrForbidden means the caller does not own the record it tried to use or change.
	ErrForbidden = errors.New("forbidden")
	// ErrAlreadyExists means a record with the same id is already stored.
	ErrAlreadyExists = errors.New("already exists")
)
