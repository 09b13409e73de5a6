package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default gameplay tuning.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Feel: FeelConfig{
			DASMillis:       170,
			ARRMillis:       30,
			LockDelayMillis: 500,
		},
		Gravity: GravityConfig{
			Multiplier:         1.0,
			SoftDropMultiplier: 1.0,
		},
		Randomizer: RandomizerConfig{
			Seed:          0,
			AvoidSZOFirst: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
