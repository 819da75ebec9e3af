// Package suggest implements the heuristic deal filter: a fixed threshold
// predicate surfacing cheap listings with real backlink authority. It is a
// candidate-surfacing shortlist, not a statistically validated ranking.
package suggest

import (
	"context"
	"log/slog"
	"math"

	"afcli/internal/table"
)

// requiredColumns must exist for the filter to run at all. A missing column
// degrades to an empty result instead of failing the run; an undefined cell
// merely excludes its row. The two cases are deliberately distinct.
var requiredColumns = []string{"price", "ahrefsDomainRating"}

// Suggest returns the rows whose price is strictly below priceThreshold and
// whose ahrefsDomainRating is strictly above ratingThreshold, sorted by
// rating descending (ties keep the input row order). Rows undefined in
// either compared field are excluded. The input table is not mutated.
func Suggest(ctx context.Context, t *table.Table, priceThreshold, ratingThreshold float64) *table.Table {
	logger := slog.Default()

	for _, col := range requiredColumns {
		if !t.HasColumn(col) {
			logger.WarnContext(ctx, "column not found in table, returning empty suggestion set",
				"column", col)
			return table.New(t.Columns())
		}
	}

	out := t.Filter(func(r table.Row) bool {
		price, ok := r.Get("price").Float()
		if !ok {
			return false
		}
		rating, ok := r.Get("ahrefsDomainRating").Float()
		if !ok {
			return false
		}
		return price < priceThreshold && rating > ratingThreshold
	})

	out.SortStableBy(func(a, b table.Row) bool {
		return ratingOf(a) > ratingOf(b)
	})

	logger.InfoContext(ctx, "suggestion filter applied",
		"candidates", t.Len(),
		"suggested", out.Len(),
		"price_threshold", priceThreshold,
		"rating_threshold", ratingThreshold)
	return out
}

// ratingOf sorts undefined ratings last; the predicate already excludes
// them, this just keeps the comparator total.
func ratingOf(r table.Row) float64 {
	v, ok := r.Get("ahrefsDomainRating").Float()
	if !ok {
		return math.Inf(-1)
	}
	return v
}
