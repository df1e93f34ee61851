package insight

import "errors"

// Sentinel kinds for aggregation errors.
var (
	// ErrInvalidFilter rejects filter combinations the views cannot
	// express, such as a month without a year.
	ErrInvalidFilter = errors.New("invalid filter")
)
