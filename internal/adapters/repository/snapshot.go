package repository

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/lwyay/riderboard/internal/domain/model"
)

// Snapshot is an immutable Store built once after load and enrichment.
// All fields are computed in NewSnapshot; accessors return copies so
// callers cannot poke at shared state.
type Snapshot struct {
	id       string
	records  []model.Record
	years    []int
	months   map[int][]string
	holidays []model.HolidayEntry
}

// Option applies a configuration option to the Snapshot.
type Option func(*Snapshot)

// WithID overrides the generated snapshot id; useful in tests.
func WithID(id string) Option {
	return func(s *Snapshot) {
		if id != "" {
			s.id = id
		}
	}
}

// NewSnapshot freezes the given records. Records are copied and sorted
// by date ascending (invalid dates first), and the year/month indexes
// are computed eagerly.
func NewSnapshot(records []model.Record, opts ...Option) *Snapshot {
	s := &Snapshot{
		id:      uuid.NewString(),
		records: make([]model.Record, len(records)),
		months:  make(map[int][]string),
	}
	copy(s.records, records)
	sort.SliceStable(s.records, func(i, j int) bool {
		return s.records[i].Date.Before(s.records[j].Date)
	})

	monthSet := make(map[int]map[time.Month]bool)
	for _, r := range s.records {
		if !r.Valid() {
			continue
		}
		if monthSet[r.Year] == nil {
			monthSet[r.Year] = make(map[time.Month]bool)
			s.years = append(s.years, r.Year)
		}
		monthSet[r.Year][r.Date.Month()] = true
	}
	sort.Ints(s.years)
	for year, set := range monthSet {
		for m := time.January; m <= time.December; m++ {
			if set[m] {
				s.months[year] = append(s.months[year], m.String())
			}
		}
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetHolidays records the holiday entries that were joined onto the
// dataset. Called once during construction by the app service, before
// the snapshot is shared.
func (s *Snapshot) SetHolidays(entries []model.HolidayEntry) {
	s.holidays = make([]model.HolidayEntry, len(entries))
	copy(s.holidays, entries)
}

// ID identifies this snapshot in logs and stats.
func (s *Snapshot) ID(_ context.Context) string { return s.id }

// Records returns a copy of the enriched record set.
func (s *Snapshot) Records(_ context.Context) []model.Record {
	out := make([]model.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Years returns the distinct valid years, ascending.
func (s *Snapshot) Years(_ context.Context) []int {
	out := make([]int, len(s.years))
	copy(out, s.years)
	return out
}

// Months returns the month names present in a year, calendar order.
func (s *Snapshot) Months(_ context.Context, year int) []string {
	out := make([]string, len(s.months[year]))
	copy(out, s.months[year])
	return out
}

// Holidays returns the holiday entries joined onto this dataset.
func (s *Snapshot) Holidays(_ context.Context) []model.HolidayEntry {
	out := make([]model.HolidayEntry, len(s.holidays))
	copy(out, s.holidays)
	return out
}

// Count returns the number of records, including invalid-date ones.
func (s *Snapshot) Count(_ context.Context) int { return len(s.records) }
