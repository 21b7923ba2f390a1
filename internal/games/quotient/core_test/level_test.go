package core_test

import (
	"strings"
	"testing"

	"github.com/vovakirdan/quotient/internal/games/quotient/core"
)

func TestParseRowsValidLayout(t *testing.T) {
	rows := openRows()
	rows[9] = "...##....."

	g, start, end, err := core.ParseRows(rows)
	if err != nil {
		t.Fatalf("ParseRows failed: %v", err)
	}
	if !start.Equal(core.C(0, 0)) {
		t.Errorf("start = %v, expected (0,0)", start)
	}
	if !end.Equal(core.C(9, 19)) {
		t.Errorf("end = %v, expected (9,19)", end)
	}
	if g.Get(start) != core.CellStart {
		t.Errorf("start cell kind = %v, expected Start", g.Get(start))
	}
	if g.Get(end) != core.CellEnd {
		t.Errorf("end cell kind = %v, expected End", g.Get(end))
	}
	if g.Get(core.C(3, 9)) != core.CellWall || g.Get(core.C(4, 9)) != core.CellWall {
		t.Error("wall cells did not parse as walls")
	}
	if g.Get(core.C(5, 5)) != core.CellPath {
		t.Errorf("open cell kind = %v, expected Path", g.Get(core.C(5, 5)))
	}
}

func TestParseRowsRejectsBadLayouts(t *testing.T) {
	short := openRows()[:19]

	narrow := openRows()
	narrow[4] = "........."

	unknown := openRows()
	unknown[4] = "....X....."

	noStart := openRows()
	noStart[0] = ".........."

	twoStarts := openRows()
	twoStarts[1] = "S........."

	noEnd := openRows()
	noEnd[19] = ".........."

	twoEnds := openRows()
	twoEnds[18] = ".........E"

	tests := []struct {
		name string
		rows []string
	}{
		{"too few rows", short},
		{"short row", narrow},
		{"unknown cell", unknown},
		{"missing spawn", noStart},
		{"duplicate spawn", twoStarts},
		{"missing exit", noEnd},
		{"duplicate exit", twoEnds},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, _, err := core.ParseRows(tc.rows); err == nil {
				t.Error("expected a parse error, got nil")
			}
		})
	}
}

func TestRowsFromGridRoundTrip(t *testing.T) {
	rows := openRows()
	rows[7] = "..##......"

	g, _, _, err := core.ParseRows(rows)
	if err != nil {
		t.Fatalf("ParseRows failed: %v", err)
	}

	back := core.RowsFromGrid(g)
	if len(back) != core.Rows {
		t.Fatalf("RowsFromGrid returned %d rows, expected %d", len(back), core.Rows)
	}
	for y, row := range rows {
		if back[y] != row {
			t.Errorf("row %d = %q, expected %q", y, back[y], row)
		}
	}

	// Towers render as solid cells in the serialized layout.
	g.Set(core.C(5, 5), core.CellTower)
	back = core.RowsFromGrid(g)
	if back[5][5] != '#' {
		t.Errorf("tower cell serialized as %q, expected '#'", back[5][5])
	}
}

func TestNewLevelPopulatesFields(t *testing.T) {
	lvl, err := core.NewLevel("first", "First Steps", openRows(), 10, []int{4, 6, 8}, 3, 1.0)
	if err != nil {
		t.Fatalf("NewLevel failed: %v", err)
	}

	if lvl.ID != "first" || lvl.Name != "First Steps" {
		t.Errorf("identity = %q/%q, expected first/First Steps", lvl.ID, lvl.Name)
	}
	if !lvl.Start.Equal(core.C(0, 0)) || !lvl.End.Equal(core.C(9, 19)) {
		t.Errorf("endpoints = %v, %v, expected (0,0) and (9,19)", lvl.Start, lvl.End)
	}
	if lvl.StartingHP != 10 {
		t.Errorf("StartingHP = %d, expected 10", lvl.StartingHP)
	}
	if len(lvl.Sequence) != 3 || lvl.Sequence[0] != 4 {
		t.Errorf("Sequence = %v, expected [4 6 8]", lvl.Sequence)
	}
	if lvl.SpawnEvery != 3 {
		t.Errorf("SpawnEvery = %d, expected 3", lvl.SpawnEvery)
	}
	if lvl.TickSeconds != 1.0 {
		t.Errorf("TickSeconds = %v, expected 1.0", lvl.TickSeconds)
	}
}

// A malformed level must fail loudly at load time, never limp into the
// simulation.
func TestNewLevelRejectsBadDefinitions(t *testing.T) {
	sealed := openRows()
	sealed[0] = "S#........"
	sealed[1] = "#........."

	tests := []struct {
		name     string
		id       string
		rows     []string
		hp       int
		sequence []int
		every    int
		tick     float64
	}{
		{"empty id", "", openRows(), 10, []int{4}, 1, 1.0},
		{"zero hp", "bad", openRows(), 0, []int{4}, 1, 1.0},
		{"negative hp", "bad", openRows(), -3, []int{4}, 1, 1.0},
		{"empty sequence", "bad", openRows(), 10, nil, 1, 1.0},
		{"zero sequence value", "bad", openRows(), 10, []int{4, 0}, 1, 1.0},
		{"negative sequence value", "bad", openRows(), 10, []int{-2}, 1, 1.0},
		{"zero spawn interval", "bad", openRows(), 10, []int{4}, 0, 1.0},
		{"zero tick duration", "bad", openRows(), 10, []int{4}, 1, 0},
		{"negative tick duration", "bad", openRows(), 10, []int{4}, 1, -0.5},
		{"sealed spawn", "bad", sealed, 10, []int{4}, 1, 1.0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.NewLevel(tc.id, "Bad", tc.rows, tc.hp, tc.sequence, tc.every, tc.tick)
			if err == nil {
				t.Error("expected a validation error, got nil")
			}
		})
	}
}

func TestNewLevelErrorNamesTheLevel(t *testing.T) {
	_, err := core.NewLevel("broken", "Broken", openRows(), 0, []int{4}, 1, 1.0)
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("error %q should carry the level id", err)
	}
}
