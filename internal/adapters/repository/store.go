// Package repository holds the frozen dataset snapshot served to every
// query layer.
package repository

import (
	"context"

	"github.com/lwyay/riderboard/internal/domain/model"
)

// Store provides read access to the loaded dataset. Implementations
// are immutable after construction, so callers on different goroutines
// share one snapshot without coordination.
type Store interface {
	// ID identifies this snapshot in logs and stats.
	ID(ctx context.Context) string

	// Records returns the full enriched record set, sorted by date
	// ascending with invalid-date records at the front.
	Records(ctx context.Context) []model.Record

	// Years returns the distinct valid years, ascending.
	Years(ctx context.Context) []int

	// Months returns the distinct month names present in a year, in
	// calendar order. Unknown years yield an empty slice.
	Months(ctx context.Context, year int) []string

	// Holidays returns the holiday entries joined onto this dataset.
	Holidays(ctx context.Context) []model.HolidayEntry

	// Count returns the number of records, including invalid-date ones.
	Count(ctx context.Context) int
}
