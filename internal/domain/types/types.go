// Package types contains common types used across the application
package types

// NotApplicable marks table cells that have no single-day value, e.g.
// the date column of a monthly-total row.
const NotApplicable = "N/A"

// TableRow is one summary-table row as rendered by the presentation
// layer: an insight label plus display values.
type TableRow struct {
	Insight   string `json:"insight"`
	Date      string `json:"date"`
	Day       string `json:"day"`
	Ridership int    `json:"ridership"`
}
