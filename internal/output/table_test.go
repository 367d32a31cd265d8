package output

import (
	"strings"
	"testing"
)

func TestTableAlignsAccentedCells(t *testing.T) {
	SetNoColor(true)

	tbl := NewTable("Réponse", "Total")
	tbl.AddRow("Très satisfait", "12")
	tbl.AddRow("Non", "3")

	lines := strings.Split(strings.TrimRight(tbl.Render(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %q", lines)
	}
	// Widths count runes, so accented labels line up with plain ones.
	if !strings.Contains(lines[2], "Très satisfait  12") {
		t.Errorf("row = %q", lines[2])
	}
	if !strings.Contains(lines[3], "Non             3") {
		t.Errorf("row = %q", lines[3])
	}
}

func TestTableShortRow(t *testing.T) {
	SetNoColor(true)

	tbl := NewTable("A", "B")
	tbl.AddRow("x")

	out := tbl.Render()
	if !strings.Contains(out, "x") {
		t.Errorf("render = %q", out)
	}
}

func TestScoreBar(t *testing.T) {
	SetNoColor(true)

	cases := []struct {
		percent, width int
		filled         int
	}{
		{100, 10, 10},
		{0, 10, 0},
		{50, 10, 5},
		{33, 10, 3},
	}
	for _, c := range cases {
		bar := ScoreBar(c.percent, c.width)
		if got := strings.Count(bar, "█"); got != c.filled {
			t.Errorf("ScoreBar(%d, %d): filled = %d, want %d", c.percent, c.width, got, c.filled)
		}
		if !strings.HasSuffix(bar, "%") {
			t.Errorf("ScoreBar(%d, %d) = %q, want %% suffix", c.percent, c.width, bar)
		}
	}
}

func TestScoreBarClamps(t *testing.T) {
	SetNoColor(true)

	if got := strings.Count(ScoreBar(150, 10), "█"); got != 10 {
		t.Errorf("filled = %d, want 10", got)
	}
	if got := strings.Count(ScoreBar(-5, 10), "█"); got != 0 {
		t.Errorf("filled = %d, want 0", got)
	}
}
