package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"afcli/internal/analytics"
	"afcli/internal/config"
	"afcli/internal/exporter"
	"afcli/internal/infrastructure"
	"afcli/internal/pipeline"
	"afcli/internal/suggest"
)

// suggestionColumns is the shortlist printed and exported for the analyst
var suggestionColumns = []string{"url", "price", "ahrefsDomainRating", "domainLength", "domainAge"}

func main() {
	input := flag.String("input", "", "path to the auction listings export (defaults to afternic_auctions.csv)")
	price := flag.Float64("price", 0, "price threshold, upper exclusive bound (defaults to 500)")
	rating := flag.Float64("rating", -1, "ahrefs rating threshold, lower exclusive bound (defaults to 20)")
	out := flag.String("out", "", "output directory for report artifacts (defaults to reports)")
	configFile := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Flags beat config; zero values mean "not set"
	if *input != "" {
		cfg.Input.Path = *input
	}
	if *price > 0 {
		cfg.Thresholds.Price = *price
	}
	if *rating >= 0 {
		cfg.Thresholds.Rating = *rating
	}
	if *out != "" {
		cfg.Output.Dir = *out
	}

	if _, err := infrastructure.InitializeLogger(cfg.Logging); err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithRunID(context.Background())

	if err := run(ctx, cfg, pipeline.NewDeriver(), os.Stdout); err != nil {
		slog.ErrorContext(ctx, "Analysis failed", "error", err)
		os.Exit(1)
	}
}

// run executes the full pipeline: load, clean, derive, report, suggest,
// export. Loader failures are fatal; export failures are logged and the run
// still succeeds, since the printed report already reached the analyst.
func run(ctx context.Context, cfg *config.Config, deriver *pipeline.Deriver, stdout io.Writer) error {
	t, err := pipeline.Load(ctx, cfg.Input.Path)
	if err != nil {
		return fmt.Errorf("load listings: %w", err)
	}

	t = pipeline.Clean(ctx, t)
	t = deriver.Derive(ctx, t)

	info := analytics.Info(t)
	stats := analytics.Describe(t)
	corr := analytics.Correlation(t)

	analytics.RenderInfo(stdout, info)
	fmt.Fprintln(stdout)
	analytics.RenderStats(stdout, stats)
	fmt.Fprintln(stdout)
	analytics.RenderCorrelation(stdout, corr)
	fmt.Fprintln(stdout)

	suggested := suggest.Suggest(ctx, t, cfg.Thresholds.Price, cfg.Thresholds.Rating)
	analytics.RenderTable(stdout, "SUGGESTED DOMAINS", suggested, suggestionColumns, cfg.Output.SuggestionRows)

	writer := exporter.NewCSVWriter(cfg.Output.Dir)

	var hist *analytics.Histogram
	if h, ok := analytics.HistogramOf(t, "price", cfg.Output.HistogramBins); ok {
		h.LogCounts = true
		hist = &h
	}
	if err := writer.WriteChartData(ctx, "charts.json", corr, hist); err != nil {
		slog.ErrorContext(ctx, "Failed to export chart data", "error", err)
	}
	if err := writer.WriteStats(ctx, "statistics.csv", stats); err != nil {
		slog.ErrorContext(ctx, "Failed to export statistics", "error", err)
	}
	if err := writer.WriteTable(ctx, "suggestions.csv", suggested, suggestionColumns); err != nil {
		slog.ErrorContext(ctx, "Failed to export suggestions", "error", err)
	}

	return nil
}
