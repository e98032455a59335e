package geocode

import "errors"

// Sentinel errors.
var (
	ErrRequest     = errors.New("geocoder request failed")
	ErrStatus      = errors.New("geocoder returned unexpected status")
	ErrDecode      = errors.New("geocoder response malformed")
	ErrNoCountry   = errors.New("geocoder result has no country code")
	ErrEmptyQuery  = errors.New("empty geocoder query")
	ErrRateLimited = errors.New("geocoder rate limiter wait failed")
)
