// Package insight computes the summary views shown in the dashboard
// table: yearly totals, busiest/quietest days of a year, and monthly
// extremes plus total. Every function is a pure view over the frozen
// record set; nothing here mutates records.
package insight

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/lwyay/riderboard/internal/domain/model"
	"github.com/lwyay/riderboard/internal/domain/types"
)

// Filter selects which summary view is produced. Month requires Year;
// the reference behavior never allowed month-only filtering and this
// implementation keeps it a rejected combination.
type Filter struct {
	Year  *int
	Month string // English month name, e.g. "July"; empty for none
}

// Validate rejects unusable filter combinations with ErrInvalidFilter.
func (f Filter) Validate() error {
	if f.Month == "" {
		return nil
	}
	if f.Year == nil {
		return fmt.Errorf("%w: month filter requires a year", ErrInvalidFilter)
	}
	if !model.ValidMonthName(f.Month) {
		return fmt.Errorf("%w: unknown month %q", ErrInvalidFilter, f.Month)
	}
	return nil
}

// Mode tags the shape of a Summary.
type Mode string

// Summary modes.
const (
	ModeYearly  Mode = "yearly_totals"  // no filter
	ModeDaily   Mode = "daily_extremes" // year only
	ModeMonthly Mode = "monthly"        // year and month
)

// YearTotal is one row of the yearly-totals view.
type YearTotal struct {
	Year  int `json:"year"`
	Total int `json:"total_ridership"`
}

// DayExtreme carries the busiest or quietest single day of a
// restriction.
type DayExtreme struct {
	Date  string `json:"date"` // model.DateLayout
	Day   string `json:"day"`
	Total int    `json:"total"`
}

// Summary is the tagged union of the three view shapes. Exactly the
// fields implied by Mode are populated; an empty restriction leaves the
// extremes nil rather than erroring.
type Summary struct {
	Mode       Mode        `json:"mode"`
	YearTotals []YearTotal `json:"year_totals,omitempty"`
	Busiest    *DayExtreme `json:"busiest,omitempty"`
	Quietest   *DayExtreme `json:"quietest,omitempty"`
	MonthTotal *int        `json:"month_total,omitempty"`
}

// Empty reports whether the summary carries no rows.
func (s Summary) Empty() bool {
	return len(s.YearTotals) == 0 && s.Busiest == nil && s.Quietest == nil && s.MonthTotal == nil
}

// Rows flattens the summary into presentation table rows. Yearly rows
// use the year as the insight label; cells without a single-day value
// hold types.NotApplicable.
func (s Summary) Rows() []types.TableRow {
	var rows []types.TableRow
	for _, yt := range s.YearTotals {
		rows = append(rows, types.TableRow{
			Insight:   strconv.Itoa(yt.Year),
			Date:      types.NotApplicable,
			Day:       types.NotApplicable,
			Ridership: yt.Total,
		})
	}
	if s.Busiest != nil {
		rows = append(rows, types.TableRow{Insight: "Busiest Day", Date: s.Busiest.Date, Day: s.Busiest.Day, Ridership: s.Busiest.Total})
	}
	if s.Quietest != nil {
		rows = append(rows, types.TableRow{Insight: "Quietest Day", Date: s.Quietest.Date, Day: s.Quietest.Day, Ridership: s.Quietest.Total})
	}
	if s.MonthTotal != nil {
		rows = append(rows, types.TableRow{Insight: "Monthly Total", Date: types.NotApplicable, Day: types.NotApplicable, Ridership: *s.MonthTotal})
	}
	return rows
}

// Summarize computes the view selected by the filter:
//
//   - no filter: one YearTotal per distinct year, ascending;
//   - year only: busiest and quietest day of that year;
//   - year and month: busiest, quietest, and the monthly total.
//
// Records without a valid date never participate. An existing but empty
// restriction yields an empty Summary, not an error. Ties on ridership
// resolve to the earliest date: the restriction is sorted by date
// ascending and comparisons are strict.
func Summarize(records []model.Record, f Filter) (Summary, error) {
	if err := f.Validate(); err != nil {
		return Summary{}, err
	}

	if f.Year == nil {
		return yearlyTotals(records), nil
	}

	set := Restrict(records, f)
	mode := ModeDaily
	if f.Month != "" {
		mode = ModeMonthly
	}
	s := Summary{Mode: mode}
	if len(set) == 0 {
		return s, nil
	}

	busiest, quietest := set[0], set[0]
	monthTotal := 0
	for _, r := range set {
		if r.Total > busiest.Total {
			busiest = r
		}
		if r.Total < quietest.Total {
			quietest = r
		}
		monthTotal += r.Total
	}
	s.Busiest = extreme(busiest)
	s.Quietest = extreme(quietest)
	if mode == ModeMonthly {
		s.MonthTotal = &monthTotal
	}
	return s, nil
}

func extreme(r model.Record) *DayExtreme {
	return &DayExtreme{Date: r.Date.Format(model.DateLayout), Day: r.DayName, Total: r.Total}
}

func yearlyTotals(records []model.Record) Summary {
	totals := make(map[int]int)
	for _, r := range records {
		if !r.Valid() {
			continue
		}
		totals[r.Year] += r.Total
	}
	years := make([]int, 0, len(totals))
	for y := range totals {
		years = append(years, y)
	}
	sort.Ints(years)

	s := Summary{Mode: ModeYearly}
	for _, y := range years {
		s.YearTotals = append(s.YearTotals, YearTotal{Year: y, Total: totals[y]})
	}
	return s
}

// Restrict returns the valid records matching the filter, sorted by
// date ascending. An unset filter passes every valid record.
func Restrict(records []model.Record, f Filter) []model.Record {
	var set []model.Record
	for _, r := range records {
		if !r.Valid() {
			continue
		}
		if f.Year != nil && r.Year != *f.Year {
			continue
		}
		if f.Month != "" && r.MonthName != f.Month {
			continue
		}
		set = append(set, r)
	}
	sort.Slice(set, func(i, j int) bool { return set[i].Date.Before(set[j].Date) })
	return set
}
