// Package exporter writes the analysis artifacts: CSV exports of the
// suggested-deal table and descriptive statistics, and a JSON chart-data
// payload (correlation heatmap, price histogram) for the external
// presentation layer. Exports are best-effort side outputs; the printed
// report is the primary surface.
package exporter
