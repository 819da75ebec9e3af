package analytics

import (
	"math"
	"sort"

	"afcli/internal/table"
)

// ColumnInfo describes one column of the structural summary
type ColumnInfo struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Defined int    `json:"defined"`
}

// TableInfo is the structural summary of a listing table
type TableInfo struct {
	Rows    int          `json:"rows"`
	Columns []ColumnInfo `json:"columns"`
}

// ColumnStats holds descriptive statistics for one numeric column.
// Std is the sample standard deviation (n-1 denominator); quartiles use
// linear interpolation between closest ranks.
type ColumnStats struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Q25    float64 `json:"q25"`
	Q50    float64 `json:"q50"`
	Q75    float64 `json:"q75"`
	Max    float64 `json:"max"`
}

// Info computes the structural summary: row count plus, per column, the
// inferred kind and the number of defined (non-undefined) cells.
func Info(t *table.Table) TableInfo {
	info := TableInfo{Rows: t.Len()}
	for _, col := range t.Columns() {
		ci := ColumnInfo{Name: col, Kind: inferKind(t, col)}
		for i := 0; i < t.Len(); i++ {
			if !t.At(i, col).IsUndefined() {
				ci.Defined++
			}
		}
		info.Columns = append(info.Columns, ci)
	}
	return info
}

// Describe computes descriptive statistics for every numeric column, in
// table column order.
func Describe(t *table.Table) []ColumnStats {
	var out []ColumnStats
	for _, col := range NumericColumns(t) {
		out = append(out, describeColumn(col, columnValues(t, col)))
	}
	return out
}

// NumericColumns returns, in order, the columns whose defined cells are all
// numbers (with at least one defined cell).
func NumericColumns(t *table.Table) []string {
	var out []string
	for _, col := range t.Columns() {
		if inferKind(t, col) == "number" {
			out = append(out, col)
		}
	}
	return out
}

// inferKind reports the kind of a column's defined cells, "mixed" when they
// disagree and "undefined" when none are defined.
func inferKind(t *table.Table, col string) string {
	kind := table.KindUndefined
	for i := 0; i < t.Len(); i++ {
		v := t.At(i, col)
		if v.IsUndefined() {
			continue
		}
		if kind == table.KindUndefined {
			kind = v.Kind()
			continue
		}
		if v.Kind() != kind {
			return "mixed"
		}
	}
	return kind.String()
}

// columnValues collects the defined numeric values of a column
func columnValues(t *table.Table, col string) []float64 {
	var xs []float64
	for i := 0; i < t.Len(); i++ {
		if f, ok := t.At(i, col).Float(); ok {
			xs = append(xs, f)
		}
	}
	return xs
}

func describeColumn(col string, xs []float64) ColumnStats {
	stats := ColumnStats{Column: col, Count: len(xs)}
	if len(xs) == 0 {
		nan := math.NaN()
		stats.Mean, stats.Std, stats.Min, stats.Q25, stats.Q50, stats.Q75, stats.Max = nan, nan, nan, nan, nan, nan, nan
		return stats
	}

	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	stats.Min = sorted[0]
	stats.Max = sorted[len(sorted)-1]
	stats.Mean = mean(xs)
	stats.Std = sampleStd(xs, stats.Mean)
	stats.Q25 = quantile(sorted, 0.25)
	stats.Q50 = quantile(sorted, 0.50)
	stats.Q75 = quantile(sorted, 0.75)
	return stats
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// sampleStd is the n-1 standard deviation; NaN for fewer than two values
func sampleStd(xs []float64, mu float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	var ss float64
	for _, x := range xs {
		d := x - mu
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)-1))
}

// quantile interpolates linearly between closest ranks of sorted data
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	h := q * float64(len(sorted)-1)
	lo := int(math.Floor(h))
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
