package glimmer

// StateType names the session state.
type StateType string

const (
	StateActive   StateType = "active"
	StatePaused   StateType = "paused"
	StateGameOver StateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Level     int
	Score     int
	Progress  int
	X, Y      int
	DX, DY    int
	RNGOffset uint
	Palette   Palette
	State     StateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StateActive
	switch {
	case !g.active:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:      g.tick,
		Level:     g.level,
		Score:     g.score,
		Progress:  g.progress,
		X:         g.pos.X,
		Y:         g.pos.Y,
		DX:        g.dx,
		DY:        g.dy,
		RNGOffset: g.rngOffset,
		Palette:   g.palette,
		State:     state,
	}
}
