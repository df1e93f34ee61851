package calendar

import (
	"time"

	"github.com/lwyay/riderboard/internal/domain/model"
)

// YearSpan returns the inclusive [min, max] year range covered by the
// valid records. ok is false when no record carries a parseable date.
func YearSpan(records []model.Record) (minYear, maxYear int, ok bool) {
	for _, r := range records {
		if !r.Valid() {
			continue
		}
		if !ok || r.Year < minYear {
			minYear = r.Year
		}
		if !ok || r.Year > maxYear {
			maxYear = r.Year
		}
		ok = true
	}
	return minYear, maxYear, ok
}

// Enrich left-joins holiday names onto the records by exact date and
// returns a new slice; the input is never mutated. A date with no
// matching holiday gets IsHoliday=false and an empty name, which also
// makes Enrich idempotent: re-enriching an enriched set reassigns the
// same values.
//
// When several holidays fall on one date, the first entry in the
// provider's order wins. USProvider emits rule-set order within a
// year, so the rule is deterministic.
func Enrich(records []model.Record, p Provider) []model.Record {
	out := make([]model.Record, len(records))
	copy(out, records)

	minYear, maxYear, ok := YearSpan(records)
	if !ok {
		return out
	}

	byDate := make(map[time.Time]string)
	for _, e := range p.Holidays(minYear, maxYear) {
		if _, taken := byDate[e.Date]; !taken {
			byDate[e.Date] = e.Name
		}
	}

	for i := range out {
		if !out[i].Valid() {
			out[i].HolidayName = ""
			out[i].IsHoliday = false
			continue
		}
		name, hit := byDate[out[i].Date]
		out[i].HolidayName = name
		out[i].IsHoliday = hit
	}
	return out
}
