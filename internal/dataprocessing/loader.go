package dataprocessing

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

	"npricli/internal/dataset"
	apperrors "npricli/internal/errors"
)

// Load reads an NPRI release file into a table, dispatching on the file
// extension: .csv goes through the delimited-text parser, .xlsx and .xls
// through the spreadsheet parser. Any other extension fails with an
// UNSUPPORTED_FORMAT error. The first row of the source is the header; every
// data row and column is kept, with no filtering.
func Load(ctx context.Context, path string) (*dataset.Table, error) {
	var (
		table *dataset.Table
		err   error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		table, err = loadCSV(path)
	case ".xlsx", ".xls":
		table, err = loadSpreadsheet(path)
	default:
		return nil, apperrors.NewUnsupportedFormatError(ext)
	}
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "loaded data",
		slog.String("path", path),
		slog.Int("rows", table.NumRows()),
		slog.Int("columns", table.NumColumns()))

	return table, nil
}

// loadCSV parses a delimited text file whose first row is the header.
func loadCSV(path string) (*dataset.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to open data file", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read CSV header row", err)
	}

	table, err := dataset.New(header)
	if err != nil {
		return nil, apperrors.NewParsingError("invalid CSV header row", err)
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.NewParsingError(
				fmt.Sprintf("failed to read CSV row %d", table.NumRows()+2), err)
		}
		table.AppendRow(parseCells(record))
	}

	return table, nil
}

// loadSpreadsheet parses the first sheet of a workbook whose first row is the
// header.
func loadSpreadsheet(path string) (*dataset.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to open workbook", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewParsingError("workbook has no sheets", nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read workbook rows", err)
	}
	if len(rows) == 0 {
		return nil, apperrors.NewParsingError("workbook sheet is empty", nil)
	}

	table, err := dataset.New(rows[0])
	if err != nil {
		return nil, apperrors.NewParsingError("invalid workbook header row", err)
	}

	// excelize truncates trailing empty cells; AppendRow pads short rows.
	for _, row := range rows[1:] {
		table.AppendRow(parseCells(row))
	}

	return table, nil
}

// parseCells classifies each raw cell of a source row.
func parseCells(record []string) []dataset.Value {
	values := make([]dataset.Value, len(record))
	for i, cell := range record {
		values[i] = dataset.ParseValue(cell)
	}
	return values
}
