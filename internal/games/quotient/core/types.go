// Package core implements the divisor tower-defense simulation for Quotient.
// This package is UI-agnostic and deterministic.
package core

// Board dimensions and gameplay limits.
const (
	// Cols and Rows fix the portrait playfield size. Levels must match.
	Cols = 10
	Rows = 20

	// DefaultTowerValue is the divisor a freshly placed tower starts with.
	DefaultTowerValue = 2

	// MaxTowerValue caps tower upgrades.
	MaxTowerValue = 49

	// QueueLookahead is how many upcoming spawn values the HUD previews.
	QueueLookahead = 13
)

// CellKind classifies a board cell.
type CellKind uint8

const (
	CellPath CellKind = iota
	CellWall
	CellTower
	CellStart
	CellEnd
)

// String returns the string representation of a cell kind.
func (k CellKind) String() string {
	switch k {
	case CellPath:
		return "Path"
	case CellWall:
		return "Wall"
	case CellTower:
		return "Tower"
	case CellStart:
		return "Start"
	case CellEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// Solid reports whether the cell blocks token movement.
func (k CellKind) Solid() bool {
	return k == CellWall || k == CellTower
}

// Dir represents one of the four orthogonal directions.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// Dirs lists the four directions in the fixed scan order used for both
// pathfinding expansion and tower-interaction checks.
var Dirs = [4]Dir{DirUp, DirRight, DirDown, DirLeft}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// TokenState tracks a token through its lifecycle.
type TokenState uint8

const (
	// TokenQueued means the token is settled on a cell awaiting its next step.
	TokenQueued TokenState = iota
	// TokenMoving means the token is in transit and already holds its
	// destination cell.
	TokenMoving
	// TokenRemoved is terminal: solved or escaped.
	TokenRemoved
)

// String returns the string representation of a token state.
func (s TokenState) String() string {
	switch s {
	case TokenQueued:
		return "Queued"
	case TokenMoving:
		return "Moving"
	case TokenRemoved:
		return "Removed"
	default:
		return "Unknown"
	}
}
