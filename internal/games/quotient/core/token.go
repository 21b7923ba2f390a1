package core

// Token is a numbered unit walking the route from the spawn cell to the
// exit. Identity is the integer ID; positions are resolved through the
// occupancy index, never through pointer comparison.
type Token struct {
	ID    int
	Value int // Current value; division shrinks it
	Spawn int // Value at spawn time, kept for reporting

	// Pos is the cell the token holds. While moving this is already the
	// destination; From keeps the cell being left behind.
	Pos  Coord
	From Coord

	// Route is the remaining cells to walk, exit last. Empty means the
	// token stands on the exit.
	Route []Coord

	State TokenState

	// PendingAdvance records an advance that arrived while the token was
	// mid-move. It fires once, right after the arrival interaction.
	PendingAdvance bool
}

// Active returns true until the token is removed.
func (t *Token) Active() bool {
	return t.State != TokenRemoved
}

// RemainingSteps returns how many cells are left to walk.
func (t *Token) RemainingSteps() int {
	return len(t.Route)
}
