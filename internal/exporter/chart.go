package exporter

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"time"

	"afcli/internal/analytics"
	"afcli/internal/errors"
	"afcli/internal/infrastructure"
)

// ChartData is the JSON envelope handed to the external presentation
// collaborator. It carries the correlation heatmap matrix and the price
// histogram series as plain data; all rendering decisions stay with the
// consumer.
type ChartData struct {
	GeneratedAt string          `json:"generated_at"`
	Format      string          `json:"format"`
	RunID       string          `json:"run_id,omitempty"`
	Heatmap     *HeatmapData    `json:"heatmap,omitempty"`
	Histogram   *HistogramChart `json:"histogram,omitempty"`
}

// HeatmapData mirrors the correlation matrix with JSON-safe entries:
// NaN correlations (too few pairs, zero variance) become null.
type HeatmapData struct {
	Columns []string     `json:"columns"`
	Values  [][]*float64 `json:"values"`
	Title   string       `json:"title"`
}

// HistogramChart is a histogram series plus its axis-scaling hint
type HistogramChart struct {
	Column string    `json:"column"`
	Edges  []float64 `json:"edges"`
	Counts []int     `json:"counts"`
	YScale string    `json:"y_scale"`
	Title  string    `json:"title"`
}

// WriteChartData writes the chart payload for the presentation layer.
// Either input may be nil when the underlying data was unavailable.
func (w *CSVWriter) WriteChartData(ctx context.Context, name string, corr *analytics.CorrMatrix, hist *analytics.Histogram) error {
	fullPath := filepath.Join(w.dir, name)

	payload := ChartData{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Format:      "chart_data_v1",
		RunID:       infrastructure.GetRunID(ctx),
	}
	if corr != nil {
		payload.Heatmap = heatmapFrom(corr)
	}
	if hist != nil {
		payload.Histogram = histogramChartFrom(hist)
	}

	slog.Default().InfoContext(ctx, "writing chart data",
		"path", fullPath,
		"heatmap", payload.Heatmap != nil,
		"histogram", payload.Histogram != nil)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return errors.NewStorageError("failed to create output directory", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return errors.NewStorageError("failed to create chart data file", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		return errors.NewStorageError("failed to encode chart data", err)
	}
	return nil
}

func heatmapFrom(m *analytics.CorrMatrix) *HeatmapData {
	h := &HeatmapData{
		Columns: m.Columns,
		Values:  make([][]*float64, len(m.Values)),
		Title:   "Correlation Heatmap",
	}
	for i, row := range m.Values {
		h.Values[i] = make([]*float64, len(row))
		for j, v := range row {
			if math.IsNaN(v) {
				continue // null entry
			}
			val := v
			h.Values[i][j] = &val
		}
	}
	return h
}

func histogramChartFrom(hist *analytics.Histogram) *HistogramChart {
	c := &HistogramChart{
		Column: hist.Column,
		Edges:  hist.Edges,
		Counts: hist.Counts,
		YScale: "linear",
		Title:  "Distribution of " + hist.Column,
	}
	if hist.LogCounts {
		c.YScale = "log"
	}
	return c
}
