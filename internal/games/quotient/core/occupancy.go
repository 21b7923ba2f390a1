package core

// Occupancy is the position-to-token reservation index. A moving token
// holds its destination cell; removal frees the cell in the same step as
// the token's state change so the index never goes stale.
type Occupancy struct {
	cells map[Coord]int
}

// NewOccupancy creates an empty reservation index.
func NewOccupancy() *Occupancy {
	return &Occupancy{cells: make(map[Coord]int)}
}

// Occupied returns true if any token holds the cell.
func (o *Occupancy) Occupied(c Coord) bool {
	_, ok := o.cells[c]
	return ok
}

// Holder returns the ID of the token holding the cell, if any.
func (o *Occupancy) Holder(c Coord) (int, bool) {
	id, ok := o.cells[c]
	return id, ok
}

// Claim reserves the cell for the token. Returns false if another token
// already holds it.
func (o *Occupancy) Claim(c Coord, id int) bool {
	if holder, ok := o.cells[c]; ok && holder != id {
		return false
	}
	o.cells[c] = id
	return true
}

// Release frees the cell if the given token holds it.
func (o *Occupancy) Release(c Coord, id int) {
	if holder, ok := o.cells[c]; ok && holder == id {
		delete(o.cells, c)
	}
}

// Move atomically transfers the token's reservation from one cell to
// another. Returns false and changes nothing if the destination is held
// by someone else.
func (o *Occupancy) Move(from, to Coord, id int) bool {
	if holder, ok := o.cells[to]; ok && holder != id {
		return false
	}
	o.Release(from, id)
	o.cells[to] = id
	return true
}

// Len returns the number of reserved cells.
func (o *Occupancy) Len() int {
	return len(o.cells)
}
