package dataset

import (
	"strconv"
	"strings"
	"time"

	"github.com/lwyay/riderboard/internal/domain/model"
)

// ErrorKind classifies a per-row normalization failure.
type ErrorKind string

// Per-row failure kinds.
const (
	KindInvalidDate    ErrorKind = "invalid_date"
	KindMalformedCount ErrorKind = "malformed_count"
	KindNegativeCount  ErrorKind = "negative_count"
	KindDuplicateDate  ErrorKind = "duplicate_date"
	KindShortRow       ErrorKind = "short_row"
)

// defaultSampleCap bounds how many row errors the report retains
// verbatim; beyond it only the counters grow.
const defaultSampleCap = 10

// RowError records one rejected or degraded source row.
type RowError struct {
	Line int // 1-based line in the source, counting title and header
	Kind ErrorKind
	Text string // offending cell text
}

// Report aggregates per-row failures for a whole load, so a handful of
// bad rows is surfaced once instead of aborting the batch.
type Report struct {
	RowsRead int
	Records  int
	Counts   map[ErrorKind]int
	Sample   []RowError

	sampleCap int
}

func newReport(sampleCap int) *Report {
	if sampleCap <= 0 {
		sampleCap = defaultSampleCap
	}
	return &Report{Counts: make(map[ErrorKind]int), sampleCap: sampleCap}
}

func (r *Report) add(e RowError) {
	r.Counts[e.Kind]++
	if len(r.Sample) < r.sampleCap {
		r.Sample = append(r.Sample, e)
	}
}

// TotalErrors returns the number of row failures across all kinds.
func (r *Report) TotalErrors() int {
	n := 0
	for _, c := range r.Counts {
		n += c
	}
	return n
}

// Clean reports whether every row normalized without a failure.
func (r *Report) Clean() bool { return r.TotalErrors() == 0 }

// dateLayouts are attempted in order when parsing the Date column.
// time.Parse tolerates unpadded digits, so "1/2/2006" also accepts
// "01/02/2006".
var dateLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"1/2/06",
	"January 2, 2006",
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			// Normalize to a bare UTC calendar date so map keys and
			// equality checks are stable.
			return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// parseCount strips comma group separators before integer conversion,
// so "12,345" and "12345" yield the same value.
func parseCount(s string) (int, ErrorKind) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, KindMalformedCount
	}
	if n < 0 {
		return 0, KindNegativeCount
	}
	return n, ""
}

// Normalize converts raw rows into domain records plus a Report of
// per-row failures. Rules:
//
//   - An unparseable date keeps the record in the set with a zero Date;
//     such records fail Record.Valid and are excluded from every
//     date-keyed aggregation.
//   - A malformed or negative count drops the row; a row without usable
//     totals cannot contribute to any view.
//   - A repeated date keeps the first occurrence and drops the rest.
func Normalize(raw *RawTable, sampleCap int) ([]model.Record, *Report) {
	report := newReport(sampleCap)

	dateIdx := raw.columnIndex(ColDate)
	busIdx := raw.columnIndex(ColBus)
	railIdx := raw.columnIndex(ColRail)
	totalIdx := raw.columnIndex(ColTotal)
	width := max(max(dateIdx, busIdx), max(railIdx, totalIdx)) + 1

	records := make([]model.Record, 0, len(raw.Rows))
	seen := make(map[time.Time]bool, len(raw.Rows))

	for i, row := range raw.Rows {
		line := i + 3 // after title and header lines
		report.RowsRead++

		if len(row) < width {
			report.add(RowError{Line: line, Kind: KindShortRow, Text: strings.Join(row, "\t")})
			continue
		}

		rec := model.Record{}

		bad := ErrorKind("")
		cell := ""
		for _, c := range []struct {
			idx int
			dst *int
		}{{busIdx, &rec.Bus}, {railIdx, &rec.Rail}, {totalIdx, &rec.Total}} {
			n, kind := parseCount(row[c.idx])
			if kind != "" {
				bad, cell = kind, row[c.idx]
				break
			}
			*c.dst = n
		}
		if bad != "" {
			report.add(RowError{Line: line, Kind: bad, Text: cell})
			continue
		}

		date, ok := parseDate(row[dateIdx])
		if !ok {
			report.add(RowError{Line: line, Kind: KindInvalidDate, Text: row[dateIdx]})
		} else {
			if seen[date] {
				report.add(RowError{Line: line, Kind: KindDuplicateDate, Text: row[dateIdx]})
				continue
			}
			seen[date] = true
			rec.Date = date
			rec.Derive()
		}

		records = append(records, rec)
		report.Records++
	}
	return records, report
}
