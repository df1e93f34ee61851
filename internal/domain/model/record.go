// Package model contains domain models passed between layers.
package model

import "time"

// DateLayout is the canonical wire format for dates across the API.
const DateLayout = "2006-01-02"

// Record represents one calendar day of ridership. The base record set
// is built once at startup and treated as read-only afterwards; derived
// views never mutate it.
type Record struct {
	Date  time.Time // zero when the source text did not parse
	Bus   int
	Rail  int
	Total int

	Year      int    // derived from Date; 0 when invalid
	MonthName string // English month name, e.g. "July"
	DayName   string // English weekday name, e.g. "Tuesday"

	HolidayName string
	IsHoliday   bool
}

// Valid reports whether the record carries a parseable date. Invalid
// records stay in the set for completeness but are excluded from all
// date-keyed aggregation.
func (r Record) Valid() bool {
	return !r.Date.IsZero()
}

// Derive fills Year, MonthName and DayName from Date. Go's time package
// always renders English names, so the result does not depend on the
// host locale. No-op for invalid dates.
func (r *Record) Derive() {
	if r.Date.IsZero() {
		return
	}
	r.Year = r.Date.Year()
	r.MonthName = r.Date.Month().String()
	r.DayName = r.Date.Weekday().String()
}

// HolidayEntry is a (date, name) pair produced by a holiday provider.
// Read-only after construction.
type HolidayEntry struct {
	Date time.Time `json:"date"`
	Name string    `json:"name"`
}

// Event is a hand-curated notable date used for chart annotation only.
// Events are never derived from the dataset or the holiday calendar.
type Event struct {
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

// MonthNames lists the English month names in calendar order, for
// filter validation and dropdown population.
func MonthNames() []string {
	names := make([]string, 12)
	for m := time.January; m <= time.December; m++ {
		names[m-1] = m.String()
	}
	return names
}

// ValidMonthName reports whether name is an English month name.
func ValidMonthName(name string) bool {
	for m := time.January; m <= time.December; m++ {
		if m.String() == name {
			return true
		}
	}
	return false
}
