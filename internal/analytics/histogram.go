package analytics

import (
	"math"

	"afcli/internal/table"
)

// Histogram is the binned distribution of one numeric column. LogCounts is a
// presentation hint for the external renderer: the count axis should be
// log-scaled. The counts themselves are raw.
type Histogram struct {
	Column    string    `json:"column"`
	Edges     []float64 `json:"edges"`
	Counts    []int     `json:"counts"`
	LogCounts bool      `json:"log_counts"`
}

// HistogramOf bins the defined values of the named column into bins
// equal-width buckets. Returns false when the column is absent from the
// table or has no defined numeric values.
func HistogramOf(t *table.Table, column string, bins int) (Histogram, bool) {
	if !t.HasColumn(column) || bins <= 0 {
		return Histogram{}, false
	}
	xs := columnValues(t, column)
	finite := xs[:0]
	for _, x := range xs {
		// a non-finite value has no bin index
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			finite = append(finite, x)
		}
	}
	xs = finite
	if len(xs) == 0 {
		return Histogram{}, false
	}

	lo, hi := xs[0], xs[0]
	for _, x := range xs {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	// degenerate single-value distribution still gets a non-zero bin width
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	h := Histogram{
		Column: column,
		Edges:  make([]float64, bins+1),
		Counts: make([]int, bins),
	}
	width := (hi - lo) / float64(bins)
	for i := 0; i <= bins; i++ {
		h.Edges[i] = lo + float64(i)*width
	}
	for _, x := range xs {
		idx := int((x - lo) / width)
		if idx >= bins {
			idx = bins - 1 // max value lands in the last bin
		}
		h.Counts[idx]++
	}
	return h, true
}
