// Package survey decodes survey spreadsheets into headers and rows of
// cells, and loads the optional facility/manager lookup table. It is the
// input boundary: everything downstream works on in-memory data only.
package survey

import (
	"strconv"
	"strings"
)

// CellKind discriminates the three cell shapes a spreadsheet can hand back.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
)

// Cell is one spreadsheet cell: a string, a number, or nothing.
// Numbers matter because date columns export as day serials.
type Cell struct {
	Kind   CellKind `json:"kind"`
	Text   string   `json:"text,omitempty"`
	Number float64  `json:"number,omitempty"`
}

// TextCell builds a text cell; blank strings become empty cells.
func TextCell(s string) Cell {
	if strings.TrimSpace(s) == "" {
		return Cell{Kind: CellEmpty}
	}
	return Cell{Kind: CellText, Text: s}
}

// NumberCell builds a numeric cell.
func NumberCell(f float64) Cell {
	return Cell{Kind: CellNumber, Number: f}
}

// ParseCell converts a raw spreadsheet value into a Cell. Values that parse
// cleanly as numbers become numeric cells so date serials stay decodable.
func ParseCell(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Cell{Kind: CellEmpty}
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Cell{Kind: CellNumber, Number: f, Text: trimmed}
	}
	return Cell{Kind: CellText, Text: raw}
}

// String returns the trimmed text form of the cell.
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return strings.TrimSpace(c.Text)
	case CellNumber:
		if c.Text != "" {
			return strings.TrimSpace(c.Text)
		}
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	default:
		return ""
	}
}

// IsEmpty reports whether the cell holds no usable value.
func (c Cell) IsEmpty() bool {
	return c.String() == ""
}
