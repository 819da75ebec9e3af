package exporter

import (
	"context"

	"afcli/internal/analytics"
)

// WriteStats exports descriptive statistics to a CSV artifact alongside the
// printed report, one row per numeric column.
func (w *CSVWriter) WriteStats(ctx context.Context, name string, stats []analytics.ColumnStats) error {
	headers := []string{"column", "count", "mean", "std", "min", "q25", "q50", "q75", "max"}
	records := make([][]string, len(stats))
	for i, s := range stats {
		records[i] = []string{
			s.Column,
			formatInt(s.Count),
			formatFloat(s.Mean),
			formatFloat(s.Std),
			formatFloat(s.Min),
			formatFloat(s.Q25),
			formatFloat(s.Q50),
			formatFloat(s.Q75),
			formatFloat(s.Max),
		}
	}
	return w.WriteCSV(ctx, name, WriteOptions{Headers: headers, Records: records})
}
