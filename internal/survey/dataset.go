package survey

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat is returned for input files that are neither
// XLSX nor CSV.
var ErrUnsupportedFormat = errors.New("unsupported input format (expected .xlsx or .csv)")

// Dataset is a decoded spreadsheet: one header row plus data rows.
// Column position is the column's identity throughout the pipeline.
type Dataset struct {
	Path    string
	Headers []string
	Rows    [][]Cell
}

// ReadFile decodes the spreadsheet at path based on its extension.
func ReadFile(path string) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return readXLSX(path)
	case ".csv":
		return readCSV(path)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// readXLSX reads the first sheet of an Excel workbook.
func readXLSX(path string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("%s: workbook has no sheets", path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}

	return fromRecords(path, rows), nil
}

// readCSV reads a comma-separated export.
func readCSV(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	return fromRecords(path, records), nil
}

func fromRecords(path string, records [][]string) *Dataset {
	ds := &Dataset{Path: path}
	if len(records) == 0 {
		return ds
	}
	ds.Headers = make([]string, len(records[0]))
	for i, h := range records[0] {
		ds.Headers[i] = strings.TrimSpace(h)
	}
	for _, rec := range records[1:] {
		row := make([]Cell, len(rec))
		for i, raw := range rec {
			row[i] = ParseCell(raw)
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds
}

// RowHasContent reports whether at least one cell in the row is non-empty.
// Rows that fail this check never become responses.
func RowHasContent(row []Cell) bool {
	for _, c := range row {
		if !c.IsEmpty() {
			return true
		}
	}
	return false
}

// serialEpoch is the spreadsheet day-serial epoch (1900 system with the
// Lotus leap-year quirk already folded in).
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// dateLayouts are tried in order for literal date strings.
var dateLayouts = []string{
	"02/01/2006 15:04:05",
	"2006/01/02 15:04:05",
	"02/01/2006",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC3339,
}

// ParseDate decodes a cell into a timestamp: numeric cells are treated as
// spreadsheet day serials, text cells are matched against known layouts.
// Returns nil when the cell holds nothing date-like.
func ParseDate(c Cell) *time.Time {
	switch c.Kind {
	case CellNumber:
		if c.Number <= 0 {
			return nil
		}
		days := int(c.Number)
		frac := c.Number - float64(days)
		t := serialEpoch.AddDate(0, 0, days).Add(time.Duration(frac * 24 * float64(time.Hour)))
		return &t
	case CellText:
		s := c.String()
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return &t
			}
		}
	}
	return nil
}
