// Package gendata produces synthetic ridership exports in the same
// UTF-16 tab-separated shape the real source publishes. Useful for
// local development and for exercising the loader end to end.
package gendata

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/lwyay/riderboard/internal/domain/dataset"
	"github.com/lwyay/riderboard/internal/domain/model"
)

// Baseline ridership levels and daily noise.
const (
	busBaseline   = 450_000
	railBaseline  = 350_000
	dailyJitter   = 60_000
	weekendFactor = 0.55
)

// Row is one generated day of ridership.
type Row struct {
	Date time.Time
	Bus  int
	Rail int
}

// Total is the bus plus rail count for the day.
func (r Row) Total() int { return r.Bus + r.Rail }

// Generator produces daily ridership rows over a date range. The
// sequence is deterministic for a given seed.
type Generator struct {
	rng *rand.Rand

	from time.Time
	to   time.Time

	// badEvery injects one malformed row per N clean rows when > 0.
	badEvery int
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithSeed fixes the random sequence.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRange sets the inclusive date range to generate.
func WithRange(from, to time.Time) Option {
	return func(g *Generator) {
		if !from.After(to) {
			g.from = from
			g.to = to
		}
	}
}

// WithBadRows injects one malformed row per n clean rows. Malformed
// rows rotate through the failure shapes the normalizer reports:
// unparseable dates, non-numeric counts, negative counts, short rows.
func WithBadRows(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.badEvery = n
		}
	}
}

// NewGenerator constructs a Generator covering the last full year by
// default.
func NewGenerator(opts ...Option) *Generator {
	now := time.Now().UTC()
	g := &Generator{
		rng:  rand.New(rand.NewSource(now.UnixNano())),
		from: time.Date(now.Year()-1, time.January, 1, 0, 0, 0, 0, time.UTC),
		to:   time.Date(now.Year()-1, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Rows generates one row per day in the configured range.
func (g *Generator) Rows() []Row {
	var rows []Row
	for d := g.from; !d.After(g.to); d = d.AddDate(0, 0, 1) {
		rows = append(rows, g.day(d))
	}
	return rows
}

func (g *Generator) day(d time.Time) Row {
	bus := float64(busBaseline) + float64(g.rng.Intn(2*dailyJitter)-dailyJitter)
	rail := float64(railBaseline) + float64(g.rng.Intn(2*dailyJitter)-dailyJitter)
	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		bus *= weekendFactor
		rail *= weekendFactor
	}
	return Row{Date: d, Bus: int(bus), Rail: int(rail)}
}

// Table renders rows as the export's cell grid: a title row, the
// column header, then one data row per day with comma-grouped counts.
func (g *Generator) Table() [][]string {
	rows := g.Rows()
	out := make([][]string, 0, len(rows)+2)
	out = append(out, []string{"Daily Ridership Totals"})
	out = append(out, []string{dataset.ColDate, dataset.ColBus, dataset.ColRail, dataset.ColTotal})

	clean := 0
	badKind := 0
	for _, r := range rows {
		if g.badEvery > 0 && clean > 0 && clean%g.badEvery == 0 {
			out = append(out, g.badRow(r, badKind))
			badKind++
			clean++
			continue
		}
		out = append(out, []string{
			r.Date.Format(model.DateLayout),
			groupThousands(r.Bus),
			groupThousands(r.Rail),
			groupThousands(r.Total()),
		})
		clean++
	}
	return out
}

// badRow returns a defective variant of the given row.
func (g *Generator) badRow(r Row, kind int) []string {
	date := r.Date.Format(model.DateLayout)
	switch kind % 4 {
	case 0:
		return []string{"not-a-date", groupThousands(r.Bus), groupThousands(r.Rail), groupThousands(r.Total())}
	case 1:
		return []string{date, "n/a", groupThousands(r.Rail), groupThousands(r.Total())}
	case 2:
		return []string{date, groupThousands(-r.Bus), groupThousands(r.Rail), groupThousands(r.Total())}
	default:
		return []string{date}
	}
}

// groupThousands formats n with comma separators, matching the source
// export's number style.
func groupThousands(n int) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.Itoa(n)
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
