package gendata

import (
	"bytes"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	"github.com/lwyay/riderboard/internal/domain/dataset"
)

func TestGenerator(t *testing.T) {
	convey.Convey("Given a seeded generator over one week", t, func() {
		from := time.Date(2023, time.July, 3, 0, 0, 0, 0, time.UTC)
		to := time.Date(2023, time.July, 9, 0, 0, 0, 0, time.UTC)
		gen := NewGenerator(WithSeed(42), WithRange(from, to))

		convey.Convey("When generating rows", func() {
			rows := gen.Rows()

			convey.Convey("Then it should emit one row per day", func() {
				convey.So(rows, convey.ShouldHaveLength, 7)
				convey.So(rows[0].Date, convey.ShouldEqual, from)
				convey.So(rows[6].Date, convey.ShouldEqual, to)
			})

			convey.Convey("And totals should be bus plus rail", func() {
				for _, r := range rows {
					convey.So(r.Total(), convey.ShouldEqual, r.Bus+r.Rail)
				}
			})

			convey.Convey("And weekends should be quieter than weekdays", func() {
				// July 3 2023 is a Monday, July 8 a Saturday.
				convey.So(rows[5].Total(), convey.ShouldBeLessThan, rows[0].Total())
			})
		})

		convey.Convey("When generating the same seed twice", func() {
			again := NewGenerator(WithSeed(42), WithRange(from, to))

			convey.Convey("Then the sequences should match", func() {
				convey.So(again.Rows(), convey.ShouldResemble, gen.Rows())
			})
		})

		convey.Convey("When rendering the table", func() {
			table := gen.Table()

			convey.Convey("Then it should carry a title row and the export header", func() {
				convey.So(table, convey.ShouldHaveLength, 9)
				convey.So(table[1], convey.ShouldResemble, []string{
					dataset.ColDate, dataset.ColBus, dataset.ColRail, dataset.ColTotal,
				})
			})
		})
	})
}

func TestGeneratorRoundTrip(t *testing.T) {
	convey.Convey("Given a generated UTF-16 export", t, func() {
		from := time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2022, time.March, 31, 0, 0, 0, 0, time.UTC)
		gen := NewGenerator(WithSeed(7), WithRange(from, to))

		var buf bytes.Buffer
		convey.So(Write(&buf, gen.Table()), convey.ShouldBeNil)

		convey.Convey("When parsed and normalized by the loader", func() {
			raw, err := dataset.Parse(&buf)
			convey.So(err, convey.ShouldBeNil)

			records, report := dataset.Normalize(raw, 10)

			convey.Convey("Then every day should survive cleanly", func() {
				convey.So(report.Clean(), convey.ShouldBeTrue)
				convey.So(records, convey.ShouldHaveLength, 31)
				convey.So(records[0].Date, convey.ShouldEqual, from)
			})
		})
	})
}

func TestGeneratorBadRows(t *testing.T) {
	convey.Convey("Given a generator that injects malformed rows", t, func() {
		from := time.Date(2022, time.June, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2022, time.June, 30, 0, 0, 0, 0, time.UTC)
		gen := NewGenerator(WithSeed(11), WithRange(from, to), WithBadRows(5))

		var buf bytes.Buffer
		convey.So(Write(&buf, gen.Table()), convey.ShouldBeNil)

		convey.Convey("When the loader normalizes the export", func() {
			raw, err := dataset.Parse(&buf)
			convey.So(err, convey.ShouldBeNil)

			_, report := dataset.Normalize(raw, 10)

			convey.Convey("Then the report should account for the defects", func() {
				convey.So(report.Clean(), convey.ShouldBeFalse)
				convey.So(report.TotalErrors(), convey.ShouldBeGreaterThan, 0)
				convey.So(report.Sample, convey.ShouldNotBeEmpty)
			})
		})
	})
}

func TestGroupThousands(t *testing.T) {
	convey.Convey("Given comma grouping", t, func() {
		cases := map[int]string{
			0:        "0",
			999:      "999",
			1000:     "1,000",
			123456:   "123,456",
			7654321:  "7,654,321",
			-1234567: "-1,234,567",
		}
		for n, want := range cases {
			convey.So(groupThousands(n), convey.ShouldEqual, want)
		}
	})
}
