package core

// Frame time bounds applied to wall-clock deltas before they reach the simulation.
const (
	MinFrameDT = 0.001
	MaxFrameDT = 0.06
)

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for seeded simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed; 0 lets the platform pick one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// ClampFrameDT bounds a measured frame delta (seconds) to [MinFrameDT, MaxFrameDT]
// so scheduling jitter or a stalled terminal cannot destabilize integration.
func ClampFrameDT(dt float64) float64 {
	return ClampF(dt, MinFrameDT, MaxFrameDT)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase    string // Human-readable state machine phase
	GameOver bool   // Whether the current race has ended
	Paused   bool   // Whether the game is paused
	Quit     bool   // Whether the player asked to leave
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
