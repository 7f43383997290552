package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for obstacle placement (0 = time-based in platform)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0,
	}
}

// Phase is the orchestrator's state machine state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState is the read-only snapshot of run progression returned after
// each tick, sufficient for the platform HUD and score handling.
type GameState struct {
	Phase Phase   // Playing or GameOver
	Score int     // Current score
	Best  int     // Best score seen this process
	Speed float64 // Current speed multiplier
}

// GameOver reports whether the run has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
