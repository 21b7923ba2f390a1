package core

// Grid represents the board as a rectangular grid of cell kinds.
// Cells are stored in row-major order: index = y*W + x.
type Grid struct {
	W     int        // Width of the grid
	H     int        // Height of the grid
	Cells []CellKind // Flat array of cells, length W*H
}

// NewGrid creates a new grid with every cell open path.
func NewGrid(w, h int) *Grid {
	return &Grid{
		W:     w,
		H:     h,
		Cells: make([]CellKind, w*h),
	}
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Get returns the cell kind at the given coordinate.
// Out-of-bounds reads come back as walls so the border needs no special
// casing anywhere else.
func (g *Grid) Get(c Coord) CellKind {
	if !g.InBounds(c) {
		return CellWall
	}
	return g.Cells[g.index(c)]
}

// Set writes the cell kind at the given coordinate.
// Out-of-bounds writes are silently ignored.
func (g *Grid) Set(c Coord, k CellKind) {
	if g.InBounds(c) {
		g.Cells[g.index(c)] = k
	}
}

// Solid returns true if the cell at the coordinate blocks movement.
func (g *Grid) Solid(c Coord) bool {
	return g.Get(c).Solid()
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]CellKind, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		W:     g.W,
		H:     g.H,
		Cells: cells,
	}
}

// Count returns how many cells hold the given kind.
func (g *Grid) Count(k CellKind) int {
	count := 0
	for _, cell := range g.Cells {
		if cell == k {
			count++
		}
	}
	return count
}

// Find returns the first coordinate holding the given kind, scanning row
// by row. The second result is false when no cell matches.
func (g *Grid) Find(k CellKind) (Coord, bool) {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := C(x, y)
			if g.Get(c) == k {
				return c, true
			}
		}
	}
	return Coord{}, false
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, cell := range g.Cells {
		if cell != other.Cells[i] {
			return false
		}
	}
	return true
}
