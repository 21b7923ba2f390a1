package core

// Event is a fact reported back from a simulation operation. Callers
// receive events as return values; the core never dispatches globally.
type Event interface {
	event()
}

// TowerPlaced reports a new tower committed to the board.
type TowerPlaced struct {
	Pos   Coord
	Value int
}

// TowerUpgraded reports a tower value increment.
type TowerUpgraded struct {
	Pos   Coord
	Value int
}

// TokenSpawned reports a token admitted at the spawn cell.
type TokenSpawned struct {
	ID    int
	Value int
	Pos   Coord
}

// TokenDivided reports a tower dividing a token on arrival.
type TokenDivided struct {
	ID         int
	TowerPos   Coord
	OldValue   int
	NewValue   int
	TowerValue int // Tower's value after wearing down
}

// TokenSolved reports a token removed with its value reduced to 1 or
// below. Value is the token's value at spawn time.
type TokenSolved struct {
	ID    int
	Value int
}

// TokenEscaped reports a token reaching the exit still above 1.
// Value is the value it escaped with, which equals the damage dealt.
type TokenEscaped struct {
	ID    int
	Value int
}

// HealthChanged reports the ledger after a spend or damage.
type HealthChanged struct {
	Current int
	Max     int
}

// QueueExhausted reports the spawn sequence running out.
type QueueExhausted struct{}

// LevelComplete reports a cleared level and its star rating.
type LevelComplete struct {
	Stars int
}

// GameOver reports health reaching zero.
type GameOver struct{}

func (TowerPlaced) event()    {}
func (TowerUpgraded) event()  {}
func (TokenSpawned) event()   {}
func (TokenDivided) event()   {}
func (TokenSolved) event()    {}
func (TokenEscaped) event()   {}
func (HealthChanged) event()  {}
func (QueueExhausted) event() {}
func (LevelComplete) event()  {}
func (GameOver) event()       {}
