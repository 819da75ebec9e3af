package analytics

import (
	"fmt"
	"io"
	"text/tabwriter"

	"afcli/internal/table"
)

const dateLayout = "2006-01-02"

// RenderInfo writes the structural summary as text
func RenderInfo(w io.Writer, info TableInfo) {
	fmt.Fprintln(w, "===== BASIC INFO =====")
	fmt.Fprintf(w, "rows: %d, columns: %d\n", info.Rows, len(info.Columns))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "column\tkind\tdefined")
	for _, col := range info.Columns {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", col.Name, col.Kind, col.Defined)
	}
	tw.Flush()
}

// RenderStats writes the descriptive statistics as text
func RenderStats(w io.Writer, stats []ColumnStats) {
	fmt.Fprintln(w, "===== DESCRIPTIVE STATISTICS =====")

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "column\tcount\tmean\tstd\tmin\t25%\t50%\t75%\tmax")
	for _, s := range stats {
		fmt.Fprintf(tw, "%s\t%d\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n",
			s.Column, s.Count, s.Mean, s.Std, s.Min, s.Q25, s.Q50, s.Q75, s.Max)
	}
	tw.Flush()
}

// RenderCorrelation writes the correlation matrix as text
func RenderCorrelation(w io.Writer, m *CorrMatrix) {
	fmt.Fprintln(w, "===== CORRELATION MATRIX =====")

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprint(tw, " ")
	for _, col := range m.Columns {
		fmt.Fprintf(tw, "\t%s", col)
	}
	fmt.Fprintln(tw)
	for i, col := range m.Columns {
		fmt.Fprint(tw, col)
		for j := range m.Columns {
			fmt.Fprintf(tw, "\t%.3f", m.Values[i][j])
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}

// RenderTable writes up to maxRows rows of the named columns as text.
// Columns absent from the table render as NaN cells.
func RenderTable(w io.Writer, title string, t *table.Table, columns []string, maxRows int) {
	fmt.Fprintf(w, "===== %s =====\n", title)
	if t.Len() == 0 {
		fmt.Fprintln(w, "(no rows)")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, col := range columns {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, col)
	}
	fmt.Fprintln(tw)

	n := t.Len()
	if maxRows > 0 && maxRows < n {
		n = maxRows
	}
	for i := 0; i < n; i++ {
		for j, col := range columns {
			if j > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, t.At(i, col).Format(dateLayout))
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()

	if n < t.Len() {
		fmt.Fprintf(w, "(showing %d of %d rows)\n", n, t.Len())
	}
}
