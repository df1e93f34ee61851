package calendar_test

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/lwyay/riderboard/internal/domain/calendar"
	"github.com/lwyay/riderboard/internal/domain/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func rec(y int, m time.Month, d int) model.Record {
	r := model.Record{Date: day(y, m, d), Bus: 1, Rail: 1, Total: 2}
	r.Derive()
	return r
}

func TestYearSpan(t *testing.T) {
	Convey("Given records across several years", t, func() {
		records := []model.Record{
			rec(2021, time.June, 1),
			rec(2019, time.March, 5),
			rec(2023, time.December, 31),
			{}, // invalid date
		}

		Convey("When computing the year span", func() {
			minYear, maxYear, ok := calendar.YearSpan(records)

			Convey("Then it should cover the valid records only", func() {
				So(ok, ShouldBeTrue)
				So(minYear, ShouldEqual, 2019)
				So(maxYear, ShouldEqual, 2023)
			})
		})
	})

	Convey("Given only invalid records", t, func() {
		records := []model.Record{{}, {}}

		Convey("When computing the year span", func() {
			_, _, ok := calendar.YearSpan(records)

			Convey("Then it should report no span", func() {
				So(ok, ShouldBeFalse)
			})
		})
	})
}

// fakeProvider serves a fixed holiday list, ignoring the year range.
type fakeProvider struct {
	entries []model.HolidayEntry
}

func (p fakeProvider) Holidays(_, _ int) []model.HolidayEntry {
	return p.entries
}

func TestEnrich(t *testing.T) {
	Convey("Given records and a provider with one matching holiday", t, func() {
		records := []model.Record{
			rec(2023, time.July, 3),
			rec(2023, time.July, 4),
			{Bus: 5, Rail: 5, Total: 10}, // invalid date
		}
		provider := fakeProvider{entries: []model.HolidayEntry{
			{Date: day(2023, time.July, 4), Name: "Independence Day"},
			{Date: day(2023, time.December, 25), Name: "Christmas Day"},
		}}

		Convey("When enriching", func() {
			out := calendar.Enrich(records, provider)

			Convey("Then only the matching date should be flagged", func() {
				So(out, ShouldHaveLength, 3)
				So(out[0].IsHoliday, ShouldBeFalse)
				So(out[0].HolidayName, ShouldBeBlank)
				So(out[1].IsHoliday, ShouldBeTrue)
				So(out[1].HolidayName, ShouldEqual, "Independence Day")
				So(out[2].IsHoliday, ShouldBeFalse)
			})

			Convey("And the input should be untouched", func() {
				So(records[1].IsHoliday, ShouldBeFalse)
				So(records[1].HolidayName, ShouldBeBlank)
			})

			Convey("And enriching again should change nothing", func() {
				again := calendar.Enrich(out, provider)
				So(again, ShouldResemble, out)
			})
		})
	})

	Convey("Given two holidays on the same date", t, func() {
		records := []model.Record{rec(2023, time.November, 10)}
		provider := fakeProvider{entries: []model.HolidayEntry{
			{Date: day(2023, time.November, 10), Name: "Veterans Day (Observed)"},
			{Date: day(2023, time.November, 10), Name: "State Holiday"},
		}}

		Convey("When enriching", func() {
			out := calendar.Enrich(records, provider)

			Convey("Then the first provider entry should win", func() {
				So(out[0].IsHoliday, ShouldBeTrue)
				So(out[0].HolidayName, ShouldEqual, "Veterans Day (Observed)")
			})
		})
	})

	Convey("Given no valid records", t, func() {
		records := []model.Record{{Total: 7}}

		Convey("When enriching", func() {
			out := calendar.Enrich(records, fakeProvider{})

			Convey("Then the set should pass through unflagged", func() {
				So(out, ShouldHaveLength, 1)
				So(out[0].Total, ShouldEqual, 7)
				So(out[0].IsHoliday, ShouldBeFalse)
			})
		})
	})
}

func TestUSProvider(t *testing.T) {
	Convey("Given the US holiday provider", t, func() {
		provider := calendar.USProvider{}

		Convey("When listing holidays for 2023", func() {
			entries := provider.Holidays(2023, 2023)

			Convey("Then well-known federal holidays should appear", func() {
				byName := make(map[string]time.Time)
				for _, e := range entries {
					byName[e.Name] = e.Date
				}
				So(byName["Independence Day"], ShouldEqual, day(2023, time.July, 4))
				So(byName["Thanksgiving Day"], ShouldEqual, day(2023, time.November, 23))
				So(byName["Christmas Day"], ShouldEqual, day(2023, time.December, 25))
			})

			Convey("And weekend holidays should carry an observed entry", func() {
				// New Year's Day 2023 falls on a Sunday.
				found := false
				for _, e := range entries {
					if e.Name == "New Year's Day (Observed)" {
						found = true
						So(e.Date, ShouldEqual, day(2023, time.January, 2))
					}
				}
				So(found, ShouldBeTrue)
			})

			Convey("And entries should be sorted by date", func() {
				for i := 1; i < len(entries); i++ {
					So(entries[i].Date.Before(entries[i-1].Date), ShouldBeFalse)
				}
			})
		})

		Convey("When the range is inverted", func() {
			entries := provider.Holidays(2024, 2023)

			Convey("Then it should return nothing", func() {
				So(entries, ShouldBeEmpty)
			})
		})
	})
}

func TestEvents(t *testing.T) {
	Convey("Given the static event list", t, func() {
		events := calendar.Events()

		Convey("Then it should carry the curated annotations", func() {
			So(events, ShouldHaveLength, 8)
			So(events[0].Date, ShouldEqual, day(2019, time.April, 3))
			So(events[0].Description, ShouldEqual, "Cherry Blossom Festival Peak")
			So(events[len(events)-1].Date, ShouldEqual, day(2024, time.October, 29))
		})

		Convey("And callers should get an independent copy", func() {
			events[0].Description = "scribbled over"
			So(calendar.Events()[0].Description, ShouldEqual, "Cherry Blossom Festival Peak")
		})
	})
}
