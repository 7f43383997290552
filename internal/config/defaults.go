package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// Default returns the default runner configuration.
func Default() RunnerConfig {
	return RunnerConfig{
		Physics: PhysicsConfig{
			RiseSpeed:     1.2,
			RiseAccel:     0.2,
			Gravity:       0.9,
			MaxFallSpeed:  3.0,
			MaxHoldTicks:  6,
			CooldownTicks: 3,
			CeilingRow:    3,
			PlayerX:       5,
		},
		Generator: GeneratorConfig{
			Mode:             ModeRandom,
			MinSpacing:       14,
			MaxSpacing:       22,
			SafeStartColumns: 20,
			GapMin:           3,
			GapMax:           4,
			Weights: ObstacleWeights{
				Spike:       35,
				DoubleSpike: 12,
				LowBlock:    25,
				MidBlock:    10,
				HighBlock:   5,
				MidFloater:  8,
				HighFloater: 5,
				Gap:         18,
			},
		},
		Decor: DecorConfig{
			Seed:       42,
			StarCount:  15,
			CloudCount: 5,
		},
		Speed: SpeedConfig{
			BaseTickMS:    50,
			IncreaseEvery: 400,
			IncreaseStep:  0.05,
			MaxMultiplier: 1.6,
		},
		Score: ScoreConfig{
			Divisor: 10,
		},
	}
}
