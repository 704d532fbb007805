package shop

import "errors"

// Validation errors surfaced by catalog operations. They are recovered at
// the command boundary and turned into a user-visible message, never a
// process abort.
var (
	// ErrNotFound reports an operation referencing an unknown product id.
	ErrNotFound = errors.New("product not found")
	// ErrDuplicateID reports an add with an id already in the catalog.
	ErrDuplicateID = errors.New("product id already exists")
	// ErrInsufficientStock reports a stock reduction larger than the
	// available quantity.
	ErrInsufficientStock = errors.New("insufficient stock")
)
