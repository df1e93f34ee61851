// Package calendar enriches ridership records with public holidays and
// exposes the static list of notable events used for chart annotation.
package calendar

import (
	"sort"
	"time"

	"github.com/rickar/cal/v2/us"

	"github.com/lwyay/riderboard/internal/domain/model"
)

// Provider supplies the recognized public holidays of a jurisdiction
// for an inclusive year range. It is a pluggable collaborator; the core
// never hardcodes holiday rules itself.
type Provider interface {
	Holidays(fromYear, toYear int) []model.HolidayEntry
}

// USProvider lists United States federal holidays, including observed
// shifts when a holiday falls on a weekend, backed by rickar/cal.
type USProvider struct{}

// Holidays returns every US federal holiday in [fromYear, toYear].
// Entries follow the rule set's canonical order within each year; the
// result is additionally sorted by date for stable output.
func (USProvider) Holidays(fromYear, toYear int) []model.HolidayEntry {
	if toYear < fromYear {
		return nil
	}
	var entries []model.HolidayEntry
	for year := fromYear; year <= toYear; year++ {
		for _, h := range us.Holidays {
			actual, observed := h.Calc(year)
			if !actual.IsZero() {
				entries = append(entries, model.HolidayEntry{Date: toDate(actual), Name: h.Name})
			}
			if !observed.IsZero() && !observed.Equal(actual) {
				entries = append(entries, model.HolidayEntry{Date: toDate(observed), Name: h.Name + " (Observed)"})
			}
		}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Date.Before(entries[j].Date) })
	return entries
}

// toDate strips the clock and zone, leaving a bare UTC calendar date
// that compares equal to record dates.
func toDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
