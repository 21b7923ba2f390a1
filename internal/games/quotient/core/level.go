package core

import "fmt"

// Layout characters for level grids.
const (
	charWall  = '#'
	charPath  = '.'
	charStart = 'S'
	charEnd   = 'E'
)

// Level is a fully validated, playable level definition.
type Level struct {
	ID          string
	Name        string
	Grid        *Grid
	Start       Coord
	End         Coord
	StartingHP  int
	Sequence    []int
	SpawnEvery  int     // Ticks between spawn attempts
	TickSeconds float64 // Wall-clock duration of one tick
}

// ParseRows builds a board from layout rows: '#' wall, '.' path,
// 'S' spawn, 'E' exit. The layout must be exactly Rows lines of Cols
// characters with exactly one spawn and one exit; anything else is an
// error, never a silent correction.
func ParseRows(rows []string) (*Grid, Coord, Coord, error) {
	if len(rows) != Rows {
		return nil, Coord{}, Coord{}, fmt.Errorf("layout has %d rows, want %d", len(rows), Rows)
	}

	g := NewGrid(Cols, Rows)
	var start, end Coord
	starts, ends := 0, 0

	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != Cols {
			return nil, Coord{}, Coord{}, fmt.Errorf("row %d has %d cells, want %d", y, len(runes), Cols)
		}
		for x, r := range runes {
			c := C(x, y)
			switch r {
			case charWall:
				g.Set(c, CellWall)
			case charPath:
				g.Set(c, CellPath)
			case charStart:
				g.Set(c, CellStart)
				start = c
				starts++
			case charEnd:
				g.Set(c, CellEnd)
				end = c
				ends++
			default:
				return nil, Coord{}, Coord{}, fmt.Errorf("unknown cell %q at %s", r, c)
			}
		}
	}

	if starts != 1 {
		return nil, Coord{}, Coord{}, fmt.Errorf("layout has %d spawn cells, want exactly 1", starts)
	}
	if ends != 1 {
		return nil, Coord{}, Coord{}, fmt.Errorf("layout has %d exit cells, want exactly 1", ends)
	}
	return g, start, end, nil
}

// RowsFromGrid serializes a board back to layout rows. Towers count as
// walls: they are equally solid and layouts carry no tower state.
func RowsFromGrid(g *Grid) []string {
	rows := make([]string, g.H)
	for y := 0; y < g.H; y++ {
		runes := make([]rune, g.W)
		for x := 0; x < g.W; x++ {
			switch g.Get(C(x, y)) {
			case CellWall, CellTower:
				runes[x] = charWall
			case CellStart:
				runes[x] = charStart
			case CellEnd:
				runes[x] = charEnd
			default:
				runes[x] = charPath
			}
		}
		rows[y] = string(runes)
	}
	return rows
}

// NewLevel assembles a level from its parts and validates every
// structural rule a playable level must satisfy.
func NewLevel(id, name string, rows []string, hp int, sequence []int, spawnEvery int, tickSeconds float64) (*Level, error) {
	grid, start, end, err := ParseRows(rows)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", id, err)
	}

	seq := make([]int, len(sequence))
	copy(seq, sequence)

	l := &Level{
		ID:          id,
		Name:        name,
		Grid:        grid,
		Start:       start,
		End:         end,
		StartingHP:  hp,
		Sequence:    seq,
		SpawnEvery:  spawnEvery,
		TickSeconds: tickSeconds,
	}
	if err := l.validate(); err != nil {
		return nil, fmt.Errorf("level %s: %w", id, err)
	}
	return l, nil
}

func (l *Level) validate() error {
	if l.ID == "" {
		return fmt.Errorf("level id is empty")
	}
	if l.StartingHP <= 0 {
		return fmt.Errorf("starting hp must be positive, got %d", l.StartingHP)
	}
	if len(l.Sequence) == 0 {
		return fmt.Errorf("spawn sequence is empty")
	}
	for i, v := range l.Sequence {
		if v < 1 {
			return fmt.Errorf("spawn sequence value %d at index %d must be positive", v, i)
		}
	}
	if l.SpawnEvery < 1 {
		return fmt.Errorf("ticks between spawns must be at least 1, got %d", l.SpawnEvery)
	}
	if l.TickSeconds <= 0 {
		return fmt.Errorf("tick duration must be positive, got %g", l.TickSeconds)
	}
	if !Reachable(l.Grid, l.Start, l.End) {
		return fmt.Errorf("no route from spawn %s to exit %s", l.Start, l.End)
	}
	return nil
}
