package core

import "sort"

// Sim owns one running level: the board, towers, tokens, spawn queue,
// health ledger, and tick clock. Every dependency is constructed here and
// reachable only through the Sim; all mutation goes through its methods
// and each method reports what happened as events.
type Sim struct {
	level     *Level
	grid      *Grid
	start     Coord
	end       Coord
	towers    map[Coord]*Tower
	tokens    []*Token
	occupancy *Occupancy
	queue     *SpawnQueue
	health    *Health
	clock     *Scheduler
	nextID    int
	tick      int
	over      bool
	won       bool
}

// NewSim builds a simulation over a validated level. The level itself is
// never mutated; the board is cloned. The clock starts stopped, call
// Start to begin the run.
func NewSim(level *Level) *Sim {
	return &Sim{
		level:     level,
		grid:      level.Grid.Clone(),
		start:     level.Start,
		end:       level.End,
		towers:    make(map[Coord]*Tower),
		occupancy: NewOccupancy(),
		queue:     NewSpawnQueue(level.Sequence, level.SpawnEvery),
		health:    NewHealth(level.StartingHP),
		clock:     NewScheduler(level.TickSeconds),
		nextID:    1,
	}
}

// Start begins the run's clock.
func (s *Sim) Start() {
	s.clock.Start()
}

// TogglePause flips between running and paused. An in-flight move is
// never interrupted; the clock just stops accepting time.
func (s *Sim) TogglePause() {
	if s.clock.Running() {
		s.clock.Pause()
	} else {
		s.clock.Resume()
	}
}

// Advance feeds a wall-clock frame delta and runs every tick that comes
// due. Returns the events of all ticks run, in order.
func (s *Sim) Advance(dt float64) []Event {
	n := s.clock.Advance(dt)
	var events []Event
	for i := 0; i < n; i++ {
		events = append(events, s.StepTick()...)
		if s.over || s.won {
			break
		}
	}
	return events
}

// StepTick runs one simulation tick.
//
// Tick order:
//  1. Advance every active token, processed in ascending order of
//     remaining route length (stable), so a token vacating a cell frees
//     it for its follower within the same tick.
//  2. Give the spawn queue its single admission opportunity.
//  3. Evaluate terminal conditions: exhausted queue with a clear board
//     completes the level; empty health ends the run.
func (s *Sim) StepTick() []Event {
	if s.over || s.won {
		return nil
	}
	s.tick++
	events := make([]Event, 0, 4)

	order := make([]*Token, 0, len(s.tokens))
	for _, t := range s.tokens {
		if t.Active() {
			order = append(order, t)
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].RemainingSteps() < order[j].RemainingSteps()
	})

	for _, t := range order {
		if t.State == TokenRemoved {
			continue
		}
		s.stepToken(t, &events)
		if s.over {
			return events
		}
	}

	// Drop removed tokens; order of survivors is spawn order.
	alive := make([]*Token, 0, len(s.tokens))
	for _, t := range s.tokens {
		if t.Active() {
			alive = append(alive, t)
		}
	}
	s.tokens = alive

	wasFinished := s.queue.Finished()
	if v, ok := s.queue.Tick(!s.occupancy.Occupied(s.start)); ok {
		s.admitToken(v, &events)
	}
	if s.queue.Finished() && !wasFinished {
		events = append(events, QueueExhausted{})
	}

	if s.queue.Finished() && len(s.tokens) == 0 && !s.health.Dead() {
		s.complete(&events)
	}
	return events
}

// stepToken gives one token its tick. A move begun last tick runs exactly
// one tick, so a moving token lands now; the advance that rode in with
// this tick is parked on the pending flag and fires after the arrival
// interaction, keeping chained motion gapless.
func (s *Sim) stepToken(t *Token, events *[]Event) {
	if t.State == TokenMoving {
		t.PendingAdvance = true
		s.arrive(t, events)
		return
	}
	s.advanceToken(t, events)
}

// arrive completes the current move: the token settles on its
// destination, takes its single tower-interaction check, then consumes
// the pending advance if one was queued mid-move.
func (s *Sim) arrive(t *Token, events *[]Event) {
	t.State = TokenQueued
	t.From = t.Pos
	s.interact(t, events)
	if t.State == TokenRemoved {
		return
	}
	if t.PendingAdvance {
		t.PendingAdvance = false
		s.advanceToken(t, events)
	}
}

// advanceToken implements the advance rules for a settled token:
// an empty route means the token stands on the exit and resolves there;
// an occupied next cell means stay put this tick (skipped, not failed);
// otherwise the token pops the next route cell and starts moving,
// re-homing its reservation to the destination.
func (s *Sim) advanceToken(t *Token, events *[]Event) {
	if t.State != TokenQueued {
		return
	}

	if len(t.Route) == 0 {
		value := t.Value
		s.removeToken(t)
		if value > 1 {
			s.health.Damage(value)
			*events = append(*events, TokenEscaped{ID: t.ID, Value: value})
			*events = append(*events, HealthChanged{Current: s.health.Current(), Max: s.health.Max()})
			if s.health.Dead() {
				s.fail(events)
			}
		} else {
			*events = append(*events, TokenSolved{ID: t.ID, Value: t.Spawn})
		}
		return
	}

	next := t.Route[0]
	if s.occupancy.Occupied(next) {
		return
	}
	t.Route = t.Route[1:]
	s.occupancy.Move(t.Pos, next, t.ID)
	t.From = t.Pos
	t.Pos = next
	t.State = TokenMoving
}

// interact runs the single tower check a token gets on arrival: scan the
// four adjacent cells in Dirs order, and the first tower whose value
// divides the token's applies integer division, wears down by one point,
// and ends the scan. One division per arrival, never more.
func (s *Sim) interact(t *Token, events *[]Event) {
	for _, d := range Dirs {
		tw, ok := s.towers[t.Pos.Step(d)]
		if !ok || !tw.Divides(t.Value) {
			continue
		}
		old := t.Value
		t.Value /= tw.Value
		tw.Value--
		*events = append(*events, TokenDivided{
			ID:         t.ID,
			TowerPos:   tw.Pos,
			OldValue:   old,
			NewValue:   t.Value,
			TowerValue: tw.Value,
		})
		if t.Value <= 1 {
			s.removeToken(t)
			*events = append(*events, TokenSolved{ID: t.ID, Value: t.Spawn})
		}
		return
	}
}

// admitToken spawns a token at the spawn cell with a fresh route.
func (s *Sim) admitToken(value int, events *[]Event) {
	t := &Token{
		ID:    s.nextID,
		Value: value,
		Spawn: value,
		Pos:   s.start,
		From:  s.start,
		Route: ShortestPath(s.grid, s.start, s.end),
		State: TokenQueued,
	}
	s.nextID++
	s.occupancy.Claim(s.start, t.ID)
	s.tokens = append(s.tokens, t)
	*events = append(*events, TokenSpawned{ID: t.ID, Value: value, Pos: s.start})
}

// removeToken retires a token, releasing its reservation atomically with
// the state change.
func (s *Sim) removeToken(t *Token) {
	s.occupancy.Release(t.Pos, t.ID)
	t.State = TokenRemoved
	t.Route = nil
	t.PendingAdvance = false
}

func (s *Sim) fail(events *[]Event) {
	s.over = true
	s.clock.Stop()
	*events = append(*events, GameOver{})
}

func (s *Sim) complete(events *[]Event) {
	s.won = true
	s.clock.Stop()
	*events = append(*events, LevelComplete{Stars: s.health.Stars()})
}

// PlaceTower attempts to commit a new tower to the cell. The checks run
// cheapest first and short-circuit: bounds, cell kind, occupancy, then
// connectivity only for path cells. A path cell is marked provisionally
// and fully reverted if it would strand the exit or any token. Placing
// on a path cell reroutes every active token; wall placements never do.
// Rejections are quiet no-ops; nothing mutates on the false path.
func (s *Sim) PlaceTower(c Coord) ([]Event, bool) {
	if s.over || s.won {
		return nil, false
	}
	if !s.grid.InBounds(c) {
		return nil, false
	}
	kind := s.grid.Get(c)
	if kind != CellPath && kind != CellWall {
		return nil, false
	}
	if s.occupancy.Occupied(c) {
		return nil, false
	}

	s.grid.Set(c, CellTower)
	if kind == CellPath && !s.routesIntact() {
		s.grid.Set(c, kind)
		return nil, false
	}
	if !s.health.Spend(1) {
		s.grid.Set(c, kind)
		return nil, false
	}

	s.towers[c] = &Tower{Pos: c, Value: DefaultTowerValue}
	if kind == CellPath {
		s.rerouteTokens()
	}

	events := []Event{
		TowerPlaced{Pos: c, Value: DefaultTowerValue},
		HealthChanged{Current: s.health.Current(), Max: s.health.Max()},
	}
	if s.health.Dead() {
		s.fail(&events)
	}
	return events, true
}

// UpgradeTower bumps the tower's divisor by one, capped at MaxTowerValue.
// At the cap the upgrade is rejected without charging health.
func (s *Sim) UpgradeTower(c Coord) ([]Event, bool) {
	if s.over || s.won {
		return nil, false
	}
	tw, ok := s.towers[c]
	if !ok {
		return nil, false
	}
	if tw.Value >= MaxTowerValue {
		return nil, false
	}
	if !s.health.Spend(1) {
		return nil, false
	}
	tw.Value++

	events := []Event{
		TowerUpgraded{Pos: c, Value: tw.Value},
		HealthChanged{Current: s.health.Current(), Max: s.health.Max()},
	}
	if s.health.Dead() {
		s.fail(&events)
	}
	return events, true
}

// Tap is the single pointer entry point: an existing tower upgrades,
// anything else attempts a placement.
func (s *Sim) Tap(c Coord) ([]Event, bool) {
	if _, ok := s.towers[c]; ok {
		return s.UpgradeTower(c)
	}
	return s.PlaceTower(c)
}

// routesIntact verifies the exit is reachable from the spawn cell and
// from every active token's position.
func (s *Sim) routesIntact() bool {
	if !Reachable(s.grid, s.start, s.end) {
		return false
	}
	for _, t := range s.tokens {
		if !t.Active() {
			continue
		}
		if !Reachable(s.grid, t.Pos, s.end) {
			return false
		}
	}
	return true
}

// rerouteTokens recomputes every active token's remaining route from its
// current position. Runs only after a former path cell turns solid.
func (s *Sim) rerouteTokens() {
	for _, t := range s.tokens {
		if !t.Active() {
			continue
		}
		t.Route = ShortestPath(s.grid, t.Pos, s.end)
	}
}

// ToggleCell flips a cell between wall and path (editor operation).
// Closing a path cell is refused if a token holds it or if it would
// strand the exit; the provisional change is fully reverted on refusal.
func (s *Sim) ToggleCell(c Coord) bool {
	if !s.grid.InBounds(c) {
		return false
	}
	switch s.grid.Get(c) {
	case CellPath:
		if s.occupancy.Occupied(c) {
			return false
		}
		s.grid.Set(c, CellWall)
		if !s.routesIntact() {
			s.grid.Set(c, CellPath)
			return false
		}
		s.rerouteTokens()
		return true
	case CellWall:
		s.grid.Set(c, CellPath)
		s.rerouteTokens()
		return true
	}
	return false
}

// MoveSpawn relocates the spawn cell onto an open path cell (editor
// operation), reverting if the exit becomes unreachable from there.
func (s *Sim) MoveSpawn(c Coord) bool {
	if s.grid.Get(c) != CellPath || s.occupancy.Occupied(c) {
		return false
	}
	old := s.start
	s.grid.Set(old, CellPath)
	s.grid.Set(c, CellStart)
	s.start = c
	if !s.routesIntact() {
		s.grid.Set(c, CellPath)
		s.grid.Set(old, CellStart)
		s.start = old
		return false
	}
	return true
}

// MoveExit relocates the exit cell onto an open path cell (editor
// operation), reverting if it becomes unreachable from the spawn.
func (s *Sim) MoveExit(c Coord) bool {
	if s.grid.Get(c) != CellPath || s.occupancy.Occupied(c) {
		return false
	}
	old := s.end
	s.grid.Set(old, CellPath)
	s.grid.Set(c, CellEnd)
	s.end = c
	if !s.routesIntact() {
		s.grid.Set(c, CellPath)
		s.grid.Set(old, CellEnd)
		s.end = old
		return false
	}
	s.rerouteTokens()
	return true
}

// Level returns the level definition this run was built from.
func (s *Sim) Level() *Level {
	return s.level
}

// Layout serializes the current board to layout rows (for the editor).
func (s *Sim) Layout() []string {
	return RowsFromGrid(s.grid)
}

// SpawnCell returns the current spawn coordinate.
func (s *Sim) SpawnCell() Coord {
	return s.start
}

// ExitCell returns the current exit coordinate.
func (s *Sim) ExitCell() Coord {
	return s.end
}

// CellAt returns the board cell kind at the coordinate.
func (s *Sim) CellAt(c Coord) CellKind {
	return s.grid.Get(c)
}

// TowerAt returns the tower on the cell, if any.
func (s *Sim) TowerAt(c Coord) (*Tower, bool) {
	tw, ok := s.towers[c]
	return tw, ok
}

// Tick returns how many ticks have run.
func (s *Sim) Tick() int {
	return s.tick
}

// HP returns current health.
func (s *Sim) HP() int {
	return s.health.Current()
}

// MaxHP returns the health the run started with.
func (s *Sim) MaxHP() int {
	return s.health.Max()
}

// Stars returns the star rating for the current health.
func (s *Sim) Stars() int {
	return s.health.Stars()
}

// ActiveTokens returns how many tokens are on the board.
func (s *Sim) ActiveTokens() int {
	n := 0
	for _, t := range s.tokens {
		if t.Active() {
			n++
		}
	}
	return n
}

// QueueVisible returns the HUD lookahead of upcoming spawn values.
func (s *Sim) QueueVisible() []int {
	return s.queue.Visible(QueueLookahead)
}

// QueuePending returns how many spawns remain in the sequence.
func (s *Sim) QueuePending() int {
	return s.queue.Pending()
}

// QueueBlocked returns true while a spawn waits for the spawn cell.
func (s *Sim) QueueBlocked() bool {
	return s.queue.Blocked()
}

// QueueFinished returns true once the spawn sequence is exhausted.
func (s *Sim) QueueFinished() bool {
	return s.queue.Finished()
}

// Paused returns true while the clock is paused.
func (s *Sim) Paused() bool {
	return s.clock.Paused()
}

// Over returns true once health ran out.
func (s *Sim) Over() bool {
	return s.over
}

// Won returns true once the level completed.
func (s *Sim) Won() bool {
	return s.won
}
