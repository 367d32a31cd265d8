package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCell(t *testing.T) {
	cases := []struct {
		raw  string
		kind CellKind
	}{
		{"", CellEmpty},
		{"   ", CellEmpty},
		{"Très satisfait", CellText},
		{"45292", CellNumber},
		{"3.5", CellNumber},
		{"01/03/2024", CellText},
	}
	for _, c := range cases {
		assert.Equal(t, c.kind, ParseCell(c.raw).Kind, "ParseCell(%q)", c.raw)
	}
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "Oui", TextCell("  Oui  ").String())
	assert.Equal(t, "", Cell{}.String())
	// Numeric cells keep their original text when they have one.
	assert.Equal(t, "45292", ParseCell("45292").String())
	assert.Equal(t, "3.5", NumberCell(3.5).String())
}

func TestRowHasContent(t *testing.T) {
	assert.False(t, RowHasContent(nil))
	assert.False(t, RowHasContent([]Cell{{}, TextCell("  ")}))
	assert.True(t, RowHasContent([]Cell{{}, TextCell("x")}))
	assert.True(t, RowHasContent([]Cell{NumberCell(1)}))
}
