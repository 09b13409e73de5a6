package tetris

// Scoring and progression constants (NES-style).
const (
	linesPerLevel   = 10
	softDropPerCell = 1
	hardDropPerCell = 2
	baseGravityMs   = 1000.0
	gravityStepMs   = 60.0
	minGravityMs    = 60.0
	minGravityMult  = 0.1
)

// lineScores[n] is the base award for clearing n rows at once, multiplied by
// (level+1) on lock. Multi-line clears pay far more than repeated singles.
var lineScores = [5]int{0, 40, 100, 300, 1200}

// Tuning is the live-adjustable gameplay feel. Values are validated on the
// way in: the gravity multiplier is clamped to a safe floor rather than
// rejected, since tuning changes arrive between ticks.
type Tuning struct {
	DASMillis       float64 // delayed auto-shift threshold
	ARRMillis       float64 // auto-repeat interval; 0 = one step per tick
	LockDelayMillis float64 // grace period for a grounded piece
	GravityMult     float64 // multiplier on the level gravity curve
	SoftDropMult    float64 // extra down-steps per tick while soft-dropping
	AvoidFirstSZO   bool    // forbid S/Z/O as the opening piece
}

// DefaultTuning returns the classic feel.
func DefaultTuning() Tuning {
	return Tuning{
		DASMillis:       170,
		ARRMillis:       30,
		LockDelayMillis: 500,
		GravityMult:     1.0,
		SoftDropMult:    1.0,
		AvoidFirstSZO:   true,
	}
}

func (t Tuning) sanitized() Tuning {
	if t.GravityMult < minGravityMult {
		t.GravityMult = minGravityMult
	}
	if t.SoftDropMult < 1 {
		t.SoftDropMult = 1
	}
	if t.DASMillis < 0 {
		t.DASMillis = 0
	}
	if t.ARRMillis < 0 {
		t.ARRMillis = 0
	}
	if t.LockDelayMillis < 0 {
		t.LockDelayMillis = 0
	}
	return t
}

// gravityInterval returns the milliseconds between gravity drops for a level.
// Clamped to a floor so no level or multiplier produces a zero or negative
// interval.
func gravityInterval(level int, mult float64) float64 {
	if mult < minGravityMult {
		mult = minGravityMult
	}
	interval := (baseGravityMs - float64(level)*gravityStepMs) / mult
	if interval < minGravityMs {
		interval = minGravityMs
	}
	return interval
}

// Input is the intent state for one simulation tick. Held fields reflect
// keys currently down; the rest are edge-triggered commands.
type Input struct {
	LeftHeld     bool
	RightHeld    bool
	SoftDropHeld bool
	RotateCW     bool
	RotateCCW    bool
	HardDrop     bool
	PauseToggle  bool
	Restart      bool
}

// Engine is the authoritative game state machine. It owns the board, the
// active and upcoming pieces, the randomizer and all timers, and advances
// them in fixed steps. Single-writer: exactly one caller ticks the engine;
// snapshots handed out are copies the renderer cannot mutate through.
type Engine struct {
	tuning Tuning

	board   Board
	current Piece
	next    Kind
	rng     *Randomizer
	shift   ShiftRepeat

	score      int
	lines      int
	level      int
	startLevel int

	gravityMs float64
	gravAccum float64
	lockMs    float64

	grounded bool
	paused   bool
	gameOver bool
}

// NewEngine creates an engine with the given tuning and seeds the first game.
func NewEngine(t Tuning, seed uint32) *Engine {
	e := &Engine{tuning: t.sanitized()}
	e.Reset(seed)
	return e
}

// Reset reinitializes the whole session: board, randomizer, pieces, timers
// and counters. No partial state survives; the caller observes either the
// old game or a fresh one.
func (e *Engine) Reset(seed uint32) {
	e.board.Clear()
	e.rng = NewRandomizer(seed, e.tuning.AvoidFirstSZO)
	e.current = Spawn(e.rng.Draw())
	e.next = e.rng.Draw()
	e.shift.Reset()

	e.score = 0
	e.lines = 0
	e.level = e.startLevel
	e.gravityMs = gravityInterval(e.level, e.tuning.GravityMult)
	e.gravAccum = 0
	e.lockMs = 0
	e.grounded = false
	e.paused = false
	e.gameOver = false
}

// SetStartLevel sets the level the next Reset begins at. Gravity starts on
// that level's curve; the level rises again once cleared lines catch up.
func (e *Engine) SetStartLevel(level int) {
	if level < 0 {
		level = 0
	}
	e.startLevel = level
}

// Reconfigure applies new tuning between ticks. Invalid values are clamped,
// and the gravity interval is re-derived from the current level so a changed
// multiplier takes effect immediately.
func (e *Engine) Reconfigure(t Tuning) {
	e.tuning = t.sanitized()
	e.gravityMs = gravityInterval(e.level, e.tuning.GravityMult)
}

// Tuning returns the active tuning.
func (e *Engine) Tuning() Tuning {
	return e.tuning
}

// Tick advances the simulation by one fixed step of dtMs milliseconds.
// While paused or after game over only pause-toggle and restart are honored;
// no gameplay input reaches the state machine.
func (e *Engine) Tick(dtMs float64, in Input) {
	if in.Restart {
		// Reseed from the generator so restarts stay deterministic for a
		// deterministic session.
		e.Reset(e.rng.advance())
		return
	}
	if in.PauseToggle && !e.gameOver {
		e.paused = !e.paused
	}
	if e.paused || e.gameOver {
		return
	}

	// Rotations first: a successful spin on the stack refreshes lock delay.
	if in.RotateCW {
		e.rotate(true)
	}
	if in.RotateCCW {
		e.rotate(false)
	}

	// Horizontal auto-shift.
	step := e.shift.Update(dtMs, in.LeftHeld, in.RightHeld, e.tuning.DASMillis, e.tuning.ARRMillis)
	if step != 0 {
		if trial := e.current.Moved(step, 0); !e.board.Collide(trial) {
			e.current = trial
			if e.grounded {
				e.lockMs = 0
			}
		}
	}

	// Soft drop: one or more cells per tick, one point per cell, stop at
	// the first collision.
	if in.SoftDropHeld {
		steps := int(e.tuning.SoftDropMult)
		if steps < 1 {
			steps = 1
		}
		for i := 0; i < steps; i++ {
			trial := e.current.Moved(0, 1)
			if e.board.Collide(trial) {
				break
			}
			e.current = trial
			e.score += softDropPerCell
		}
	}

	// Grounded means a one-row-down trial collides.
	e.grounded = e.board.Collide(e.current.Moved(0, 1))

	if e.grounded {
		e.lockMs += dtMs
		if e.lockMs >= e.tuning.LockDelayMillis {
			e.lockDown()
		}
	} else {
		e.lockMs = 0
		e.gravAccum += dtMs
		for e.gravAccum >= e.gravityMs && !e.grounded {
			e.gravAccum -= e.gravityMs
			trial := e.current.Moved(0, 1)
			if e.board.Collide(trial) {
				e.grounded = true
				e.lockMs = 0
				break
			}
			e.current = trial
		}
	}

	// Hard drop bypasses lock delay entirely.
	if in.HardDrop && !e.gameOver {
		dropped := 0
		for {
			trial := e.current.Moved(0, 1)
			if e.board.Collide(trial) {
				break
			}
			e.current = trial
			dropped++
		}
		e.score += dropped * hardDropPerCell
		e.lockDown()
	}
}

// rotate delegates to the rotation system and refreshes lock delay when a
// grounded piece finds a valid placement. A rejection leaves everything
// untouched.
func (e *Engine) rotate(cw bool) {
	rotated, ok := TryRotate(&e.board, e.current, cw)
	if !ok {
		return
	}
	e.current = rotated
	if e.grounded {
		e.lockMs = 0
	}
}

// lockDown merges the active piece, sweeps full rows, applies scoring and
// level progression, and spawns the next piece. A spawn into occupied cells
// is the terminal game over.
func (e *Engine) lockDown() {
	e.board.Merge(e.current)

	if n := e.board.Sweep(); n > 0 {
		e.score += lineScores[n] * (e.level + 1)
		e.lines += n
		// Level is recomputed from total lines so a clear crossing several
		// ten-line thresholds advances several levels at once. A selected
		// start level holds until cleared lines catch up.
		level := e.lines / linesPerLevel
		if level < e.startLevel {
			level = e.startLevel
		}
		e.level = level
		e.gravityMs = gravityInterval(e.level, e.tuning.GravityMult)
	}

	e.current = Spawn(e.next)
	e.next = e.rng.Draw()
	e.gravAccum = 0
	e.lockMs = 0
	e.grounded = false

	if e.board.Collide(e.current) {
		e.gameOver = true
	}
}
