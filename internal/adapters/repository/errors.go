package repository

import "errors"

// Sentinel errors.
var (
	ErrNotLoaded = errors.New("dataset not loaded")
	ErrNoSource  = errors.New("no dataset source configured")
)
