package pipeline

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"afcli/internal/table"
)

// Column lists driving the cleaning pass. Columns missing from a given
// export are simply skipped.
var (
	requiredColumns = []string{"price", "startPrice", "registeredDate"}

	dateColumns = []string{"startDate", "endDate", "registeredDate"}

	numericColumns = []string{
		"price", "startPrice", "renewPrice", "bidCount",
		"ahrefsDomainRating", "alexaRanking", "umbrellaRanking",
		"backlinksCount", "cloudflareRanking", "estibotValue",
		"extensionsTaken", "keywordSearchCount", "lastSoldPrice",
	}

	// columns that must survive coercion for a row to be kept
	requiredNumericColumns = []string{"price", "bidCount"}
)

// dateLayouts are tried in order when coercing date cells
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
}

// Clean drops rows missing required fields, coerces date and numeric columns
// to their target types, and drops rows whose price or bidCount failed
// coercion. Coercion failures become the undefined marker, never an error.
// The output is a strict row-subset of the input with untouched columns
// unchanged; re-cleaning clean data is a no-op.
func Clean(ctx context.Context, t *table.Table) *table.Table {
	logger := slog.Default()
	before := t.Len()

	out := t.Filter(func(r table.Row) bool {
		for _, col := range requiredColumns {
			if r.Get(col).IsUndefined() {
				return false
			}
		}
		return true
	})

	for _, col := range dateColumns {
		if !out.HasColumn(col) {
			continue
		}
		for i := 0; i < out.Len(); i++ {
			out.Set(i, col, coerceDate(out.At(i, col)))
		}
	}

	for _, col := range numericColumns {
		if !out.HasColumn(col) {
			continue
		}
		for i := 0; i < out.Len(); i++ {
			out.Set(i, col, coerceNumber(out.At(i, col)))
		}
	}

	out = out.Filter(func(r table.Row) bool {
		for _, col := range requiredNumericColumns {
			if r.Get(col).IsUndefined() {
				return false
			}
		}
		return true
	})

	logger.InfoContext(ctx, "cleaning complete",
		"rows_in", before,
		"rows_out", out.Len(),
		"rows_dropped", before-out.Len())
	return out
}

// coerceDate converts a raw cell to a date. Already-coerced dates pass
// through untouched so repeated cleaning is idempotent.
func coerceDate(v table.Value) table.Value {
	if v.Kind() == table.KindDate {
		return v
	}
	s, ok := v.Str()
	if !ok {
		return table.Undefined()
	}
	for _, layout := range dateLayouts {
		if tm, err := time.Parse(layout, s); err == nil {
			return table.Date(tm)
		}
	}
	return table.Undefined()
}

// coerceNumber converts a raw cell to a number, tolerating the currency
// noise Afternic exports carry (thousands separators, a leading dollar sign).
func coerceNumber(v table.Value) table.Value {
	if v.Kind() == table.KindNumber {
		return v
	}
	s, ok := v.Str()
	if !ok {
		return table.Undefined()
	}
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		// ParseFloat accepts the literals "NaN" and "Inf"; a non-finite
		// cell is as unusable as an unparseable one
		return table.Undefined()
	}
	return table.Number(f)
}
