package pipeline

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"afcli/internal/errors"
	"afcli/internal/table"
)

// Load reads a delimited auction-listing export into a table. The file format
// is chosen by extension: .xlsx files go through excelize, everything else is
// treated as CSV. All cells load as raw strings (empty cells as the undefined
// marker); type coercion is the cleaner's job.
func Load(ctx context.Context, path string) (*table.Table, error) {
	logger := slog.Default()
	logger.InfoContext(ctx, "loading listings", "path", path)

	var (
		t   *table.Table
		err error
	)
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		t, err = loadExcel(path)
	} else {
		t, err = loadCSV(path)
	}
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "listings loaded",
		"rows", t.Len(),
		"columns", len(t.Columns()))
	return t, nil
}

// loadCSV parses a CSV export. Ragged rows are tolerated and padded to the
// header width; structurally malformed input (bad quoting) is a parse error.
func loadCSV(path string) (*table.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewFileAccessError("cannot open listings file", err).
			WithContext("path", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.NewParseError("listings file is empty, header row required", nil).
			WithContext("path", path)
	}
	if err != nil {
		return nil, errors.NewParseError("failed to read header row", err).
			WithContext("path", path)
	}

	t := table.New(trimAll(header))

	for rowNum := 2; ; rowNum++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewParseError("malformed CSV record", err).
				WithContext("path", path).
				WithContext("row", rowNum)
		}
		t.AppendRow(rawCells(record, len(header)))
	}

	return t, nil
}

// loadExcel parses the first sheet of an Excel export with the same header
// and cell semantics as the CSV path.
func loadExcel(path string) (*table.Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.NewFileAccessError("cannot open listings file", err).
			WithContext("path", path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewParseError("failed to open Excel workbook", err).
			WithContext("path", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.NewParseError("workbook has no sheets", nil).
			WithContext("path", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.NewParseError(fmt.Sprintf("failed to read sheet %q", sheets[0]), err).
			WithContext("path", path)
	}
	if len(rows) == 0 {
		return nil, errors.NewParseError("listings sheet is empty, header row required", nil).
			WithContext("path", path)
	}

	header := trimAll(rows[0])
	t := table.New(header)
	for _, row := range rows[1:] {
		t.AppendRow(rawCells(row, len(header)))
	}

	return t, nil
}

// rawCells converts one source record into table cells, padding to width.
// Blank cells become the undefined marker, which the cleaner's presence
// check treats as missing.
func rawCells(record []string, width int) []table.Value {
	cells := make([]table.Value, width)
	for i := 0; i < width; i++ {
		if i >= len(record) || strings.TrimSpace(record[i]) == "" {
			cells[i] = table.Undefined()
			continue
		}
		cells[i] = table.String(strings.TrimSpace(record[i]))
	}
	return cells
}

func trimAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.TrimSpace(s)
	}
	return out
}
