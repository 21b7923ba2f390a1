package core

// SpawnQueue feeds the level's token sequence onto the board at a fixed
// tick interval. A blocked admission (spawn cell occupied) is retried
// every tick without advancing the interval counter, and the blocked
// value stays at the cursor so order is never lost.
type SpawnQueue struct {
	values   []int
	cursor   int
	interval int
	counter  int
	blocked  bool
	finished bool
}

// NewSpawnQueue creates a queue over the given sequence. The counter
// starts at the interval so the very first tick attempts a spawn.
func NewSpawnQueue(values []int, interval int) *SpawnQueue {
	if interval < 1 {
		interval = 1
	}
	vs := make([]int, len(values))
	copy(vs, values)
	return &SpawnQueue{
		values:   vs,
		interval: interval,
		counter:  interval,
	}
}

// Tick gives the queue its once-per-tick admission opportunity.
// startFree reports whether the spawn cell is currently unoccupied.
// Returns the admitted value and true when a token should spawn.
func (q *SpawnQueue) Tick(startFree bool) (int, bool) {
	if q.finished {
		return 0, false
	}
	if q.blocked {
		return q.attempt(startFree)
	}
	q.counter++
	if q.counter >= q.interval {
		q.counter = 0
		return q.attempt(startFree)
	}
	return 0, false
}

// attempt tries one admission at the current cursor.
func (q *SpawnQueue) attempt(startFree bool) (int, bool) {
	if q.cursor >= len(q.values) {
		q.finished = true
		return 0, false
	}
	if !startFree {
		q.blocked = true
		return 0, false
	}
	q.blocked = false
	v := q.values[q.cursor]
	q.cursor++
	return v, true
}

// Finished returns true once the sequence is exhausted.
func (q *SpawnQueue) Finished() bool {
	return q.finished
}

// Blocked returns true while an admission waits for the spawn cell.
func (q *SpawnQueue) Blocked() bool {
	return q.blocked
}

// Pending returns how many values are still waiting to spawn.
func (q *SpawnQueue) Pending() int {
	return len(q.values) - q.cursor
}

// Visible returns up to lookahead upcoming values, next spawn first.
func (q *SpawnQueue) Visible(lookahead int) []int {
	end := q.cursor + lookahead
	if end > len(q.values) {
		end = len(q.values)
	}
	if q.cursor >= end {
		return nil
	}
	out := make([]int, end-q.cursor)
	copy(out, q.values[q.cursor:end])
	return out
}
