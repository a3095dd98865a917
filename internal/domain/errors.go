package domain

import "errors"

var (
	// ErrValidation signals an invalid query parameter supplied by the caller.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound signals a missing product.
	ErrNotFound = errors.New("product not found")
	// ErrStoreUnavailable signals that the catalog store is unreachable or
	// failed to execute a query. It is never folded into an empty result.
	ErrStoreUnavailable = errors.New("catalog store unavailable")
)
