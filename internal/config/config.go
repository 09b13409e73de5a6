// Package config provides YAML-based gameplay tuning loading and
// difficulty presets for the tetris platform.
package config

// TetrisConfig contains all tunable gameplay feel for the game.
type TetrisConfig struct {
	Feel       FeelConfig       `yaml:"feel"`
	Gravity    GravityConfig    `yaml:"gravity"`
	Randomizer RandomizerConfig `yaml:"randomizer"`
}

// FeelConfig defines movement and locking timing.
type FeelConfig struct {
	DASMillis       float64 `yaml:"das_ms"`        // delay before auto-shift kicks in
	ARRMillis       float64 `yaml:"arr_ms"`        // ms per auto-shift step, 0 = instant
	LockDelayMillis float64 `yaml:"lock_delay_ms"` // grace period for a grounded piece
}

// GravityConfig defines fall speed scaling.
type GravityConfig struct {
	Multiplier         float64 `yaml:"multiplier"`           // scales the level gravity curve
	SoftDropMultiplier float64 `yaml:"soft_drop_multiplier"` // down-steps per tick while held
}

// RandomizerConfig defines the piece generator behavior.
type RandomizerConfig struct {
	Seed          int64 `yaml:"seed"`            // 0 = time-derived
	AvoidSZOFirst bool  `yaml:"avoid_szo_first"` // forbid S/Z/O as the opening piece
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyTetrisPreset adjusts the tuning for a difficulty preset.
// "fixed" leaves the loaded config untouched.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gravity.Multiplier = 0.7
		cfg.Feel.LockDelayMillis = 700
	case DifficultyNormal:
		cfg.Gravity.Multiplier = 1.0
		cfg.Feel.LockDelayMillis = 500
	case DifficultyHard:
		cfg.Gravity.Multiplier = 1.5
		cfg.Feel.LockDelayMillis = 350
		cfg.Feel.DASMillis = 130
	}
}
