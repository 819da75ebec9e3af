package exporter

import (
	"strconv"

	"afcli/internal/table"
)

// dateLayout is the date format used in exported artifacts
const dateLayout = "2006-01-02"

// formatCell renders a table cell for CSV output. Undefined cells export as
// NaN so spreadsheet consumers see the gap explicitly.
func formatCell(v table.Value) string {
	return v.Format(dateLayout)
}

// formatFloat formats a float64 value for CSV output
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatInt formats an int value for CSV output
func formatInt(i int) string {
	return strconv.Itoa(i)
}
