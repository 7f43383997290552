// Package game implements a side-scrolling auto-runner: the player runs at a
// fixed column while a procedurally generated obstacle field scrolls toward
// them, and survival comes down to timing variable-height jumps.
package game

import (
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// configPath stores the custom config path set via CLI.
var configPath string

// modeOverride stores a generator mode override set via CLI.
var modeOverride config.GeneratorMode

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetMode overrides the obstacle placement policy from the config file.
func SetMode(mode string) {
	switch mode {
	case "random":
		modeOverride = config.ModeRandom
	case "pattern":
		modeOverride = config.ModePattern
	default:
		modeOverride = ""
	}
}

// Game is the tick orchestrator. It owns all per-run progression state,
// routes input edges into the player, advances player and level each tick,
// applies the death predicate, and updates score and speed. It is the sole
// mutator; the render side only reads.
type Game struct {
	// Run progression state, reset (not recreated) on restart.
	phase        core.Phase
	tickCount    int
	tickInterval time.Duration
	speedMult    float64
	score        int
	best         int // Survives restarts, process lifetime only

	prevJumpHeld bool // Previous tick's held state, for edge derivation

	player   *Player
	level    *Level
	cfg      config.RunnerConfig
	fixedCfg *config.RunnerConfig // When set, Reset skips the loader
	runtime  core.RuntimeConfig
}

// New creates a new game instance. Call Reset before stepping.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game pinned to the given config, bypassing the
// loader entirely. Restarts reuse the same config, so runs stay hermetic
// regardless of config files on the machine.
func NewWithConfig(cfg config.RunnerConfig) *Game {
	return &Game{fixedCfg: &cfg}
}

// ID returns the identifier used for screenshots and logs.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Sky Runner"
}

// Reset initializes or fully restarts the game for the given runtime.
// Only the best score survives.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	var cfg config.RunnerConfig
	if g.fixedCfg != nil {
		cfg = *g.fixedCfg
	} else {
		loaded, err := config.Load(configPath)
		if err != nil {
			loaded = config.Default()
		}
		cfg = loaded
		if modeOverride != "" {
			cfg.Generator.Mode = modeOverride
		}
	}
	g.cfg = cfg

	groundRow := runtime.ScreenH - 3 // The platform row the player stands on

	if g.player == nil {
		g.player = NewPlayer(cfg.Physics, groundRow)
	} else {
		g.player.cfg = cfg.Physics
		g.player.x = cfg.Physics.PlayerX
		g.player.Reset(groundRow)
	}

	if g.level == nil || g.level.width != runtime.ScreenW || g.level.height != runtime.ScreenH {
		g.level = NewLevel(cfg.Generator, cfg.Decor, runtime.ScreenW, runtime.ScreenH, runtime.Seed)
	} else {
		g.level.cfg = cfg.Generator
		g.level.decor = cfg.Decor
		g.level.buildPool()
		g.level.Reset(runtime.Seed)
	}

	g.phase = core.PhasePlaying
	g.tickCount = 0
	g.tickInterval = g.baseInterval()
	g.speedMult = 1.0
	g.score = 0
	g.prevJumpHeld = false
}

// Resize records new screen dimensions without interrupting the current
// phase. The next reset, including a restart from game over, uses them.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime = runtime
}

// baseInterval returns the configured tick interval at 1.0x speed.
func (g *Game) baseInterval() time.Duration {
	return time.Duration(g.cfg.Speed.BaseTickMS) * time.Millisecond
}

// Step advances the simulation by one tick. Strictly ordered: input edges,
// physics advance, level scroll, collision check, score/speed update.
// While GameOver, no physics or scroll runs; only the restart input is
// serviced.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase == core.PhaseGameOver {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}
	}

	// The jump signal is level-triggered; derive press/release edges here.
	held := in.Has(core.ActionJump)
	if held && !g.prevJumpHeld {
		g.player.PressJump(g.tickCount)
	}
	if !held && g.prevJumpHeld {
		g.player.ReleaseJump()
	}
	g.prevJumpHeld = held

	g.player.Advance(g.tickCount)
	g.level.Scroll()

	if IsDead(g.player.X(), g.player.Row(), g.level) {
		g.phase = core.PhaseGameOver
		g.best = core.Max(g.best, g.score)
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.score = g.tickCount / g.cfg.Score.Divisor

	if g.tickCount%g.cfg.Speed.IncreaseEvery == 0 {
		g.speedMult = core.ClampF(g.speedMult+g.cfg.Speed.IncreaseStep, 1.0, g.cfg.Speed.MaxMultiplier)
		g.tickInterval = time.Duration(float64(g.baseInterval()) / g.speedMult)
	}

	return core.StepResult{State: g.State()}
}

// TickInterval returns the current pacing target for the platform loop.
// Strictly positive; it shrinks as the speed multiplier grows.
func (g *Game) TickInterval() time.Duration {
	return g.tickInterval
}

// State returns the read-only progression snapshot for the HUD.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase: g.phase,
		Score: g.score,
		Best:  g.best,
		Speed: g.speedMult,
	}
}
