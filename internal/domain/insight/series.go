package insight

import (
	"fmt"

	"github.com/lwyay/riderboard/internal/domain/model"
)

// Chart series names, matching the source's mode columns.
const (
	SeriesBus   = "Bus"
	SeriesRail  = "Rail"
	SeriesTotal = "Grand Total"
)

// Point is one chart sample. Day rides along for hover text.
type Point struct {
	Date   string `json:"date"` // model.DateLayout
	Day    string `json:"day"`
	Riders int    `json:"riders"`
}

// Series is one selectable line of the chart.
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// Marker is a vertical chart annotation at a holiday or event date.
type Marker struct {
	Date  string `json:"date"` // model.DateLayout
	Label string `json:"label"`
	Kind  string `json:"kind"` // "holiday" or "event"
}

// SelectSeries builds the chart lines for the requested series names
// over the filtered record set, sorted by date ascending. An unknown
// series name is rejected with ErrInvalidFilter.
func SelectSeries(records []model.Record, f Filter, names []string) ([]Series, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	for _, name := range names {
		if name != SeriesBus && name != SeriesRail && name != SeriesTotal {
			return nil, fmt.Errorf("%w: unknown series %q", ErrInvalidFilter, name)
		}
	}

	set := Restrict(records, f)
	out := make([]Series, 0, len(names))
	for _, name := range names {
		s := Series{Name: name, Points: make([]Point, 0, len(set))}
		for _, r := range set {
			riders := r.Total
			switch name {
			case SeriesBus:
				riders = r.Bus
			case SeriesRail:
				riders = r.Rail
			}
			s.Points = append(s.Points, Point{Date: r.Date.Format(model.DateLayout), Day: r.DayName, Riders: riders})
		}
		out = append(out, s)
	}
	return out, nil
}

// Markers computes the chart annotations for the filtered view.
// Holidays come from the enrichment already joined onto the records;
// events are matched at query time by exact date against the records
// currently in view, so an event outside the restriction never shows.
func Markers(records []model.Record, f Filter, withHolidays, withEvents bool, events []model.Event) ([]Marker, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	set := Restrict(records, f)
	var out []Marker
	if withHolidays {
		for _, r := range set {
			if r.IsHoliday {
				out = append(out, Marker{Date: r.Date.Format(model.DateLayout), Label: r.HolidayName, Kind: "holiday"})
			}
		}
	}
	if withEvents {
		inView := make(map[string]bool, len(set))
		for _, r := range set {
			inView[r.Date.Format(model.DateLayout)] = true
		}
		for _, e := range events {
			if key := e.Date.Format(model.DateLayout); inView[key] {
				out = append(out, Marker{Date: key, Label: e.Description, Kind: "event"})
			}
		}
	}
	return out, nil
}
