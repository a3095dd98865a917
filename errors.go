package shophub

import "errors"

// Sentinel errors returned by the SDK. API failures map onto these so callers
// can branch with errors.Is regardless of transport detail.
var (
	// ErrInvalidQuery reports a request the API rejected as malformed
	// (bad category, inverted price range, empty search term).
	ErrInvalidQuery = errors.New("shophub: invalid query")

	// ErrNotFound reports a product that does not exist.
	ErrNotFound = errors.New("shophub: product not found")

	// ErrUnavailable reports that the API or its backing store could not
	// serve the request. Retrying later may succeed.
	ErrUnavailable = errors.New("shophub: service unavailable")
)
