package core

// TokenView is one token prepared for drawing.
type TokenView struct {
	ID    int
	Value int
	Pos   Coord // Cell the token holds (destination while moving)
	From  Coord // Cell being left while moving
	State TokenState
}

// TowerView is one tower prepared for drawing.
type TowerView struct {
	Pos   Coord
	Value int
}

// Snapshot is a complete render-facing view of one simulation moment.
// Everything in it is copied; callers may hold it across ticks.
type Snapshot struct {
	Cols  int
	Rows  int
	Cells []CellKind // Row-major board cells

	Start Coord
	End   Coord

	Towers []TowerView // Board scan order
	Tokens []TokenView // Spawn order

	HP    int
	MaxHP int
	Stars int
	Tick  int

	Queue        []int // Upcoming spawn values, next first
	QueuePending int
	QueueBlocked bool
	QueueDone    bool

	Paused bool
	Over   bool
	Won    bool

	// MoveFraction is how far the clock is into the current tick, in
	// [0, 1). In-flight moves are that far along.
	MoveFraction float64
}

// At returns the board cell kind at the coordinate, walls out of bounds.
func (v Snapshot) At(c Coord) CellKind {
	if c.X < 0 || c.X >= v.Cols || c.Y < 0 || c.Y >= v.Rows {
		return CellWall
	}
	return v.Cells[c.Y*v.Cols+c.X]
}

// Snapshot captures the current simulation state for rendering.
func (s *Sim) Snapshot() Snapshot {
	cells := make([]CellKind, len(s.grid.Cells))
	copy(cells, s.grid.Cells)

	towers := make([]TowerView, 0, len(s.towers))
	for y := 0; y < s.grid.H; y++ {
		for x := 0; x < s.grid.W; x++ {
			if tw, ok := s.towers[C(x, y)]; ok {
				towers = append(towers, TowerView{Pos: tw.Pos, Value: tw.Value})
			}
		}
	}

	tokens := make([]TokenView, 0, len(s.tokens))
	for _, t := range s.tokens {
		if !t.Active() {
			continue
		}
		tokens = append(tokens, TokenView{
			ID:    t.ID,
			Value: t.Value,
			Pos:   t.Pos,
			From:  t.From,
			State: t.State,
		})
	}

	return Snapshot{
		Cols:         s.grid.W,
		Rows:         s.grid.H,
		Cells:        cells,
		Start:        s.start,
		End:          s.end,
		Towers:       towers,
		Tokens:       tokens,
		HP:           s.health.Current(),
		MaxHP:        s.health.Max(),
		Stars:        s.health.Stars(),
		Tick:         s.tick,
		Queue:        s.queue.Visible(QueueLookahead),
		QueuePending: s.queue.Pending(),
		QueueBlocked: s.queue.Blocked(),
		QueueDone:    s.queue.Finished(),
		Paused:       s.clock.Paused(),
		Over:         s.over,
		Won:          s.won,
		MoveFraction: s.clock.Fraction(),
	}
}
