package analytics

import (
	"math"

	"afcli/internal/table"
)

// CorrMatrix is a square Pearson correlation matrix over the numeric columns
// of a table. Values[i][j] is the correlation between Columns[i] and
// Columns[j]; entries with fewer than two complete pairs or zero variance
// are NaN.
type CorrMatrix struct {
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"`
}

// Correlation computes the pairwise-complete Pearson correlation matrix of
// the table's numeric columns. For each pair, rows undefined in either
// column are excluded from that pair's computation only.
func Correlation(t *table.Table) *CorrMatrix {
	cols := NumericColumns(t)
	m := &CorrMatrix{
		Columns: cols,
		Values:  make([][]float64, len(cols)),
	}

	for i := range cols {
		m.Values[i] = make([]float64, len(cols))
	}
	for i, a := range cols {
		m.Values[i][i] = pearson(t, a, a)
		for j := i + 1; j < len(cols); j++ {
			r := pearson(t, a, cols[j])
			m.Values[i][j] = r
			m.Values[j][i] = r
		}
	}
	return m
}

// At returns the matrix entry for the named column pair, with ok false when
// either column is not part of the matrix.
func (m *CorrMatrix) At(a, b string) (float64, bool) {
	ai, bi := -1, -1
	for i, col := range m.Columns {
		if col == a {
			ai = i
		}
		if col == b {
			bi = i
		}
	}
	if ai < 0 || bi < 0 {
		return 0, false
	}
	return m.Values[ai][bi], true
}

// pearson computes the correlation over rows where both cells are defined
func pearson(t *table.Table, colA, colB string) float64 {
	var xs, ys []float64
	for i := 0; i < t.Len(); i++ {
		x, ok := t.At(i, colA).Float()
		if !ok {
			continue
		}
		y, ok := t.At(i, colB).Float()
		if !ok {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}

	n := len(xs)
	if n < 2 {
		return math.NaN()
	}

	mx, my := mean(xs), mean(ys)
	var sxy, sxx, syy float64
	for i := 0; i < n; i++ {
		dx := xs[i] - mx
		dy := ys[i] - my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return math.NaN()
	}
	return sxy / math.Sqrt(sxx*syy)
}
