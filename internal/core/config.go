package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Grid width in cells
	ScreenH  int   // Grid height in cells
	TickRate int   // Simulation ticks per second
	Seed     int64 // Initial perturbation for deterministic content
}

// DefaultConfig returns a RuntimeConfig matching a classic 80x25 text screen.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  25,
		TickRate: 10,
		Seed:     0,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // All-time collected items in this session
	Level    int  // Current level index
	GameOver bool // Whether the session is frozen
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// LeveledUp is true when this tick regenerated the grid for a new level.
	LeveledUp bool
	// Ended is true only on the tick that transitioned into game over.
	Ended bool
	// FinalScore and FinalLevel hold the counters reached before the
	// game-over reset zeroed them. Only meaningful when Ended is set.
	FinalScore int
	FinalLevel int
}
