package exporter

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"afcli/internal/errors"
	"afcli/internal/table"
)

// CSVWriter provides CSV export functionality rooted at an output directory
type CSVWriter struct {
	dir string
}

// NewCSVWriter creates a new CSV writer writing into dir
func NewCSVWriter(dir string) *CSVWriter {
	return &CSVWriter{dir: dir}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteCSV writes data to a CSV file under the output directory
func (w *CSVWriter) WriteCSV(ctx context.Context, name string, options WriteOptions) error {
	fullPath := filepath.Join(w.dir, name)

	slog.Default().InfoContext(ctx, "writing CSV file",
		"path", fullPath,
		"record_count", len(options.Records))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return errors.NewStorageError("failed to create output directory", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return errors.NewStorageError("failed to create CSV file", err)
	}
	defer file.Close()

	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return errors.NewStorageError("failed to write BOM", err)
		}
	}

	writer := csv.NewWriter(file)

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return errors.NewStorageError("failed to write CSV header row", err)
		}
	}
	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return errors.NewStorageError(fmt.Sprintf("failed to write CSV record %d", i), err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteTable writes the named columns of a table to a CSV file. Columns
// absent from the table export as NaN cells, same as the text rendering.
func (w *CSVWriter) WriteTable(ctx context.Context, name string, t *table.Table, columns []string) error {
	records := make([][]string, t.Len())
	for i := 0; i < t.Len(); i++ {
		row := make([]string, len(columns))
		for j, col := range columns {
			row[j] = formatCell(t.At(i, col))
		}
		records[i] = row
	}
	return w.WriteCSV(ctx, name, WriteOptions{Headers: columns, Records: records})
}
