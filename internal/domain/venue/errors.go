package venue

import "errors"

// Sentinel errors.
var (
	// ErrNotFound is returned by a Geocoder when a query has no hit.
	ErrNotFound = errors.New("venue not found")
)
