package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frame updates per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState reports a game's status to the platform. Besides the flags the
// platform acts on (game over, pause), it carries the outcome fields the
// platform persists when a run ends.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the run has ended (either outcome)
	Paused   bool // Whether the game is paused

	Level string // Identifier of the level being played
	Won   bool   // Whether the run ended in a completed level
	Stars int    // Star rating (0-3), meaningful when Won
	HP    int    // Health remaining
	MaxHP int    // Health the run started with
	Ticks int    // Simulation ticks elapsed
}

// StepResult is returned by Game.Step() after each frame update.
type StepResult struct {
	State GameState
}
