package countrynames

import "errors"

// Sentinel errors.
var (
	ErrEmptyName      = errors.New("empty country name")
	ErrUnknownCountry = errors.New("country name not recognised")
)
