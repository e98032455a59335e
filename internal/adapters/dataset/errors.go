package dataset

import "errors"

// Sentinel errors.
var (
	ErrMissingDataset = errors.New("dataset file missing")
	ErrOpenDatabase   = errors.New("open duckdb")
	ErrReadDataset    = errors.New("read dataset")
)
