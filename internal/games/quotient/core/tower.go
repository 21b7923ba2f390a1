package core

// Tower is a divisor turret occupying one board cell. Its value is the
// divisor it applies; dividing wears it down by one point per use until
// it bottoms out at 1 and goes inert.
type Tower struct {
	Pos   Coord
	Value int
}

// Divides reports whether this tower divides a token of the given value.
// Towers worn down to 1 divide nothing.
func (t *Tower) Divides(v int) bool {
	return t.Value >= 2 && v%t.Value == 0
}
