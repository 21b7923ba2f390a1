package core

// ShortestPath returns the shortest route from `from` to `to` over
// non-solid cells as an ordered list that excludes `from` and includes
// `to`. It returns nil when the coordinates are equal or no route exists.
//
// Neighbors expand in the fixed Dirs order (Up, Right, Down, Left) so
// equal-length routes always tie-break the same way. Token occupancy is
// invisible here: occupied cells stay routable. Occupancy blocks
// placement and entry, never route computation.
func ShortestPath(g *Grid, from, to Coord) []Coord {
	if from.Equal(to) {
		return nil
	}
	if !g.InBounds(from) || !g.InBounds(to) || g.Solid(to) {
		return nil
	}

	visited := make([]bool, g.W*g.H)
	prev := make([]Coord, g.W*g.H)
	queue := make([]Coord, 0, g.W*g.H)

	visited[g.index(from)] = true
	queue = append(queue, from)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.Equal(to) {
			break
		}
		for _, d := range Dirs {
			next := cur.Step(d)
			if !g.InBounds(next) || g.Solid(next) {
				continue
			}
			idx := g.index(next)
			if visited[idx] {
				continue
			}
			visited[idx] = true
			prev[idx] = cur
			queue = append(queue, next)
		}
	}

	if !visited[g.index(to)] {
		return nil
	}

	// Walk the parent chain back from the target, then flip.
	route := make([]Coord, 0, 8)
	for cur := to; !cur.Equal(from); cur = prev[g.index(cur)] {
		route = append(route, cur)
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route
}

// Reachable reports whether `to` can be reached from `from` without
// materializing the route. A coordinate trivially reaches itself.
func Reachable(g *Grid, from, to Coord) bool {
	if from.Equal(to) {
		return true
	}
	if !g.InBounds(from) || !g.InBounds(to) || g.Solid(to) {
		return false
	}

	visited := make([]bool, g.W*g.H)
	queue := make([]Coord, 0, g.W*g.H)

	visited[g.index(from)] = true
	queue = append(queue, from)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range Dirs {
			next := cur.Step(d)
			if !g.InBounds(next) || g.Solid(next) {
				continue
			}
			idx := g.index(next)
			if visited[idx] {
				continue
			}
			if next.Equal(to) {
				return true
			}
			visited[idx] = true
			queue = append(queue, next)
		}
	}
	return false
}
