package tetris

// ShiftRepeat turns held left/right keys into discrete horizontal steps with
// classic DAS/ARR timing: the first step fires immediately on press, further
// steps wait for the delayed-auto-shift threshold and then repeat every
// auto-repeat interval (0 means one step every tick).
//
// DAS/ARR values are passed on every update so live retuning takes effect
// between ticks.
type ShiftRepeat struct {
	dir        int     // -1 left, +1 right, 0 none
	heldMs     float64 // time the current direction has been held
	repeatMs   float64 // time since the last auto-repeat step
	didInitial bool    // whether the immediate first step fired
}

// Reset clears all timers and the held direction.
func (s *ShiftRepeat) Reset() {
	*s = ShiftRepeat{}
}

// Update advances the controller by dtMs and returns the horizontal step to
// attempt this tick: -1, 0 or +1. Holding both directions cancels to 0.
// The caller is responsible for collision testing the step.
func (s *ShiftRepeat) Update(dtMs float64, leftHeld, rightHeld bool, dasMs, arrMs float64) int {
	dir := 0
	if leftHeld {
		dir--
	}
	if rightHeld {
		dir++
	}

	if dir != s.dir {
		s.dir = dir
		s.heldMs = 0
		s.repeatMs = 0
		s.didInitial = false
	}

	if s.dir == 0 {
		return 0
	}

	s.heldMs += dtMs

	// First step is immediate on press.
	if !s.didInitial {
		s.didInitial = true
		return s.dir
	}

	if s.heldMs < dasMs {
		return 0
	}

	// ARR of zero glides one step every tick.
	if arrMs == 0 {
		return s.dir
	}

	s.repeatMs += dtMs
	if s.repeatMs >= arrMs {
		s.repeatMs = 0
		return s.dir
	}
	return 0
}
