package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// holdWindowMillis is how long an edge-triggered move action counts as
// "held". Terminals deliver key repeats instead of key-up events, so each
// repeat refreshes the window; a single tap stays well under the DAS
// threshold and yields exactly one step.
const holdWindowMillis = 150.0

// Package-level knobs set by the CLI before the game is created
// (same pattern as the mode selectors: configure, then Reset applies it).
var (
	configPath         string
	difficultyPreset   config.DifficultyPreset
	selectedStartLevel int
)

// SetConfigPath sets the tuning file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset selects the difficulty preset applied on the next Reset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// SetStartLevel sets the starting level (0-9) applied on the next Reset.
func SetStartLevel(level int) {
	selectedStartLevel = core.Clamp(level, 0, 9)
}

// Game adapts the engine to the platform's registry.Game interface. It
// translates edge-triggered input frames into the held intents the engine
// expects and drives one fixed engine step per Step call.
type Game struct {
	engine *Engine
	tickMs float64

	// Remaining hold-window ticks per held intent.
	holdLeft  int
	holdRight int
	holdDown  int

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates an unstarted game; Reset must run before the first Step.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset initializes or restarts the session from the runtime config and the
// loaded tuning file. Everything is rebuilt in one shot; a restart is never
// observable as a partially reset game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	tc, err := config.LoadTetris(configPath)
	if err != nil {
		tc = config.DefaultTetrisConfig()
	}
	if difficultyPreset != "" {
		config.ApplyTetrisPreset(&tc, difficultyPreset)
	}

	tuning := Tuning{
		DASMillis:       tc.Feel.DASMillis,
		ARRMillis:       tc.Feel.ARRMillis,
		LockDelayMillis: tc.Feel.LockDelayMillis,
		GravityMult:     tc.Gravity.Multiplier,
		SoftDropMult:    tc.Gravity.SoftDropMultiplier,
		AvoidFirstSZO:   tc.Randomizer.AvoidSZOFirst,
	}

	seed := cfg.Seed
	if tc.Randomizer.Seed != 0 {
		seed = tc.Randomizer.Seed
	}

	g.tickMs = cfg.TickMillis()
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = cfg.ScreenW < minScreenW || cfg.ScreenH < minScreenH

	g.engine = NewEngine(tuning, uint32(seed))
	if selectedStartLevel > 0 {
		g.engine.SetStartLevel(selectedStartLevel)
		g.engine.Reset(uint32(seed))
	}

	g.holdLeft = 0
	g.holdRight = 0
	g.holdDown = 0
}

// holdTicks converts the hold window into simulation ticks.
func (g *Game) holdTicks() int {
	if g.tickMs <= 0 {
		return 1
	}
	n := int(holdWindowMillis / g.tickMs)
	if n < 1 {
		n = 1
	}
	return n
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil {
		return core.StepResult{}
	}

	// Refresh hold windows from this frame's edge actions.
	if in.Has(core.ActionLeft) {
		g.holdLeft = g.holdTicks()
		g.holdRight = 0
	}
	if in.Has(core.ActionRight) {
		g.holdRight = g.holdTicks()
		g.holdLeft = 0
	}
	if in.Has(core.ActionSoftDrop) {
		g.holdDown = g.holdTicks()
	}

	input := Input{
		LeftHeld:     g.holdLeft > 0,
		RightHeld:    g.holdRight > 0,
		SoftDropHeld: g.holdDown > 0,
		RotateCW:     in.Has(core.ActionRotateCW),
		RotateCCW:    in.Has(core.ActionRotateCCW),
		HardDrop:     in.Has(core.ActionHardDrop),
		PauseToggle:  in.Has(core.ActionPause),
		Restart:      in.Has(core.ActionRestart),
	}

	if g.holdLeft > 0 {
		g.holdLeft--
	}
	if g.holdRight > 0 {
		g.holdRight--
	}
	if g.holdDown > 0 {
		g.holdDown--
	}

	if !g.tooSmall {
		g.engine.Tick(g.tickMs, input)
	}

	return core.StepResult{State: g.State()}
}

// Reconfigure applies new tuning to the running engine between ticks.
func (g *Game) Reconfigure(t Tuning) {
	if g.engine != nil {
		g.engine.Reconfigure(t)
	}
}

// Snapshot exposes the engine snapshot for rendering and tests.
func (g *Game) Snapshot() Snapshot {
	if g.engine == nil {
		return Snapshot{}
	}
	return g.engine.Snapshot()
}

// State returns the platform-level view of the session.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.score,
		Lines:    g.engine.lines,
		Level:    g.engine.level,
		GameOver: g.engine.gameOver,
		Paused:   g.engine.paused,
	}
}
