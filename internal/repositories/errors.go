package repositories

import "errors"

// Sentinel errors returned by repository implementations. Handlers map
// these onto HTTP statuses with errors.Is, so store-specific failures
// never leak past this package.
var (
	// ErrNotFound is returned when no row matches the lookup.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey is returned when an insert or update violates a
	// unique index (username, slug). The index is the enforcement
	// point; any pre-check in a service is advisory only.
	ErrDuplicateKey = errors.New("duplicate key")
)
