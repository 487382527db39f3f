package domain

import "errors"

// Sentinel errors shared across the repository and service layers. Callers
// match with errors.Is; the storage layer wraps driver diagnostics around
// these so the category survives the trip up.
var (
	// ErrNotFound: the referenced key does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrRentConflict: the equipment exists but was not AVAILABLE when the
	// rent's compare-and-set ran. The whole rent unit is rolled back.
	ErrRentConflict = errors.New("equipment not available for rent")

	// ErrStatusConflict: a compare-and-set found the record in a different
	// status than required; the surrounding unit is rolled back.
	ErrStatusConflict = errors.New("status precondition violated")

	// ErrAlreadyReturned: no open ledger entry for the checkout ID; it is
	// unknown or was already returned.
	ErrAlreadyReturned = errors.New("rental not found or already returned")

	// ErrDuplicateKey: an insert collided with an existing primary key.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrReferenced: a delete was blocked by a foreign-key reference.
	ErrReferenced = errors.New("record is referenced by other rows")

	// ErrNoChanges: a sparse patch carried no fields; nothing was written.
	ErrNoChanges = errors.New("no changes entered")

	// ErrInvalidTransition: the requested status change is not in the
	// transition table.
	ErrInvalidTransition = errors.New("illegal status transition")

	// ErrValidation: malformed or missing required input.
	ErrValidation = errors.New("validation failed")
)
