// Package dataset loads the daily ridership export and normalizes it
// into domain records.
//
// The source is a UTF-16, tab-separated table with a leading title line
// to discard and a header of Date / Bus / Rail / Grand Total columns.
// Loading is a one-shot batch operation at process start; there are no
// retries.
package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Column names required in the source header.
const (
	ColDate  = "Date"
	ColBus   = "Bus"
	ColRail  = "Rail"
	ColTotal = "Grand Total"
)

// RawTable holds the decoded source table: the header row and every
// data row, exactly as read minus the discarded title line.
type RawTable struct {
	Header []string
	Rows   [][]string

	index map[string]int // lowercased header name -> column position
}

// Column returns the values of a named column (case-insensitive) and
// whether the column exists.
func (t *RawTable) Column(name string) ([]string, bool) {
	i, ok := t.index[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	vals := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if i < len(row) {
			vals = append(vals, row[i])
		} else {
			vals = append(vals, "")
		}
	}
	return vals, true
}

// columnIndex returns the position of a named column, or -1.
func (t *RawTable) columnIndex(name string) int {
	i, ok := t.index[strings.ToLower(name)]
	if !ok {
		return -1
	}
	return i
}

// Load reads the table from a local path or an http(s) URL.
// An unreadable location yields ErrSourceUnavailable; a table without
// the expected columns yields ErrMalformedTable.
func Load(ctx context.Context, source string) (*RawTable, error) {
	rc, err := open(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, source, err)
	}
	defer func() { _ = rc.Close() }()
	return Parse(rc)
}

// open dispatches between filesystem and HTTP sources.
func open(ctx context.Context, source string) (io.ReadCloser, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, err
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			_ = resp.Body.Close()
			return nil, fmt.Errorf("unexpected status %s", resp.Status)
		}
		return resp.Body, nil
	}
	f, err := os.Open(source)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Parse decodes a UTF-16 tab-separated stream into a RawTable. The BOM
// decides endianness; little-endian is assumed when absent, matching
// the spreadsheet exports this feed comes from.
func Parse(r io.Reader) (*RawTable, error) {
	dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	cr := csv.NewReader(transform.NewReader(r, dec))
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedTable, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: missing header row", ErrMalformedTable)
	}

	// rows[0] is the export title; the real header follows it.
	t := &RawTable{
		Header: rows[1],
		Rows:   rows[2:],
		index:  make(map[string]int, len(rows[1])),
	}
	for i, h := range t.Header {
		t.index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range []string{ColDate, ColBus, ColRail, ColTotal} {
		if t.columnIndex(col) < 0 {
			return nil, fmt.Errorf("%w: missing column %q", ErrMalformedTable, col)
		}
	}
	return t, nil
}
