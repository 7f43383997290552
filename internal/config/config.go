// Package config provides YAML-based configuration loading for the runner.
package config

import "fmt"

// RunnerConfig contains all tunable constants for the game.
// Everything here is config-time: the core reads no files and no environment.
type RunnerConfig struct {
	Physics   PhysicsConfig   `yaml:"physics"`
	Generator GeneratorConfig `yaml:"generator"`
	Decor     DecorConfig     `yaml:"decor"`
	Speed     SpeedConfig     `yaml:"speed"`
	Score     ScoreConfig     `yaml:"score"`
}

// PhysicsConfig defines the hold-charge jump model.
// Vertical units are rows; smaller y is higher on screen.
type PhysicsConfig struct {
	RiseSpeed     float64 `yaml:"rise_speed"`     // Base upward speed while charging (rows/tick)
	RiseAccel     float64 `yaml:"rise_accel"`     // Extra upward speed per hold tick
	Gravity       float64 `yaml:"gravity"`        // Downward acceleration after release (rows/tick²)
	MaxFallSpeed  float64 `yaml:"max_fall_speed"` // Descent velocity cap
	MaxHoldTicks  int     `yaml:"max_hold_ticks"` // Charge cap
	CooldownTicks int     `yaml:"cooldown_ticks"` // Ticks after landing before next jump
	CeilingRow    int     `yaml:"ceiling_row"`    // Hard ceiling (absolute screen row)
	PlayerX       int     `yaml:"player_x"`       // Fixed horizontal position
}

// GeneratorMode selects the obstacle placement policy.
type GeneratorMode string

const (
	// ModeRandom draws obstacle kinds from a weighted pool and spacing from
	// a bounded uniform range, seeded per run.
	ModeRandom GeneratorMode = "random"
	// ModePattern cycles a fixed ordered sequence of (spacing, kind) pairs,
	// identical across runs regardless of seed.
	ModePattern GeneratorMode = "pattern"
)

// GeneratorConfig defines obstacle placement.
type GeneratorConfig struct {
	Mode             GeneratorMode   `yaml:"mode"`
	MinSpacing       int             `yaml:"min_spacing"`        // Columns between obstacles (lower bound)
	MaxSpacing       int             `yaml:"max_spacing"`        // Columns between obstacles (upper bound)
	SafeStartColumns int             `yaml:"safe_start_columns"` // Obstacle-free zone after reset
	GapMin           int             `yaml:"gap_min"`            // Gap span lower bound
	GapMax           int             `yaml:"gap_max"`            // Gap span upper bound
	Weights          ObstacleWeights `yaml:"weights"`
}

// ObstacleWeights controls how often each obstacle kind appears in random mode.
type ObstacleWeights struct {
	Spike       int `yaml:"spike"`
	DoubleSpike int `yaml:"double_spike"`
	LowBlock    int `yaml:"low_block"`
	MidBlock    int `yaml:"mid_block"`
	HighBlock   int `yaml:"high_block"`
	MidFloater  int `yaml:"mid_floater"`
	HighFloater int `yaml:"high_floater"`
	Gap         int `yaml:"gap"`
}

// Total returns the sum of all weights.
func (w ObstacleWeights) Total() int {
	return w.Spike + w.DoubleSpike + w.LowBlock + w.MidBlock +
		w.HighBlock + w.MidFloater + w.HighFloater + w.Gap
}

// DecorConfig defines the parallax background decoration. Decoration has its
// own seed so the background stays reproducible even when hazard placement
// is randomized.
type DecorConfig struct {
	Seed       int64 `yaml:"seed"`
	StarCount  int   `yaml:"star_count"`
	CloudCount int   `yaml:"cloud_count"`
}

// SpeedConfig defines tick pacing and speed progression.
type SpeedConfig struct {
	BaseTickMS    int     `yaml:"base_tick_ms"`   // Base tick interval in milliseconds
	IncreaseEvery int     `yaml:"increase_every"` // Ticks between speed increases
	IncreaseStep  float64 `yaml:"increase_step"`  // Multiplier added per increase
	MaxMultiplier float64 `yaml:"max_multiplier"` // Speed cap
}

// ScoreConfig defines scoring.
type ScoreConfig struct {
	Divisor int `yaml:"divisor"` // score = ticks / divisor (integer division)
}

// Validate checks the config for values the simulation cannot work with.
func (c RunnerConfig) Validate() error {
	if c.Physics.Gravity <= 0 {
		return fmt.Errorf("config: gravity must be positive, got %v", c.Physics.Gravity)
	}
	if c.Physics.Gravity <= c.Physics.RiseAccel {
		return fmt.Errorf("config: gravity (%v) must exceed rise_accel (%v) for asymmetric arcs",
			c.Physics.Gravity, c.Physics.RiseAccel)
	}
	if c.Physics.MaxHoldTicks < 1 {
		return fmt.Errorf("config: max_hold_ticks must be at least 1, got %d", c.Physics.MaxHoldTicks)
	}
	if c.Generator.MinSpacing < 1 || c.Generator.MaxSpacing < c.Generator.MinSpacing {
		return fmt.Errorf("config: invalid spacing range [%d, %d]",
			c.Generator.MinSpacing, c.Generator.MaxSpacing)
	}
	if c.Generator.GapMin < 1 || c.Generator.GapMax < c.Generator.GapMin {
		return fmt.Errorf("config: invalid gap range [%d, %d]",
			c.Generator.GapMin, c.Generator.GapMax)
	}
	if c.Generator.Mode == ModeRandom && c.Generator.Weights.Total() <= 0 {
		return fmt.Errorf("config: obstacle weights must sum to a positive value")
	}
	if c.Speed.BaseTickMS <= 0 {
		return fmt.Errorf("config: base_tick_ms must be positive, got %d", c.Speed.BaseTickMS)
	}
	if c.Speed.MaxMultiplier < 1.0 || c.Speed.MaxMultiplier > 3.0 {
		return fmt.Errorf("config: max_multiplier must be in [1.0, 3.0], got %v", c.Speed.MaxMultiplier)
	}
	if c.Score.Divisor < 1 {
		return fmt.Errorf("config: score divisor must be at least 1, got %d", c.Score.Divisor)
	}
	return nil
}
