package repository

import "errors"

// Sentinel kinds for snapshot errors.
var (
	ErrEmptySnapshot = errors.New("snapshot has no records")
)
