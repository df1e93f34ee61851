package dataset

import "errors"

// Sentinel kinds for dataset errors. Both are fatal at startup; per-row
// failures are aggregated in Report instead.
var (
	ErrSourceUnavailable = errors.New("ridership source unavailable")
	ErrMalformedTable    = errors.New("malformed ridership table")
)
