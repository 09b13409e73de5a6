package tetris

import "testing"

const testTick = 1000.0 / 60.0

// newQuietEngine returns an engine whose active piece sits in an emptied
// well with gravity effectively disabled, so tests control every movement.
func newQuietEngine(t *testing.T, kind Kind) *Engine {
	t.Helper()
	tuning := DefaultTuning()
	e := NewEngine(tuning, 1)
	e.board.Clear()
	e.current = Spawn(kind)
	e.gravityMs = 1e9
	e.gravAccum = 0
	return e
}

func TestGravityIntervalCurve(t *testing.T) {
	prev := gravityInterval(0, 1.0)
	if prev != 1000 {
		t.Fatalf("level 0 interval = %v, want 1000", prev)
	}
	for level := 1; level <= 20; level++ {
		cur := gravityInterval(level, 1.0)
		if cur > prev {
			t.Fatalf("interval rose from level %d to %d: %v > %v", level-1, level, cur, prev)
		}
		if cur < minGravityMs {
			t.Fatalf("level %d interval %v below floor", level, cur)
		}
		prev = cur
	}
	if got := gravityInterval(100, 1.0); got != minGravityMs {
		t.Fatalf("extreme level interval = %v, want floor %v", got, minGravityMs)
	}
	// The multiplier divides the interval; a tiny one is clamped.
	if gravityInterval(0, 2.0) != 500 {
		t.Fatal("multiplier 2 did not halve the interval")
	}
	if gravityInterval(0, 0.0001) != gravityInterval(0, minGravityMult) {
		t.Fatal("multiplier below the floor not clamped")
	}
}

func TestGravityMovesPieceDown(t *testing.T) {
	e := NewEngine(DefaultTuning(), 1)
	startY := e.current.Y

	// Level 0: one cell per second.
	for i := 0; i < 59; i++ {
		e.Tick(testTick, Input{})
	}
	if e.current.Y != startY {
		t.Fatalf("piece fell before the gravity interval elapsed")
	}
	for i := 0; i < 3; i++ {
		e.Tick(testTick, Input{})
	}
	if e.current.Y != startY+1 {
		t.Fatalf("piece at %d after one interval, want %d", e.current.Y, startY+1)
	}
}

func TestHardDropScoresAndLocks(t *testing.T) {
	e := newQuietEngine(t, KindO)
	drop := (Rows - 2) - e.current.Y

	e.Tick(testTick, Input{HardDrop: true})

	if e.board.Cell(4, Rows-1) != KindO {
		t.Fatal("hard drop did not lock the piece at the floor")
	}
	if e.score != drop*hardDropPerCell {
		t.Fatalf("score = %d, want %d", e.score, drop*hardDropPerCell)
	}
	if e.gameOver {
		t.Fatal("unexpected game over")
	}
}

func TestSoftDropScoresPerCell(t *testing.T) {
	e := newQuietEngine(t, KindT)
	startY := e.current.Y

	e.Tick(testTick, Input{SoftDropHeld: true})

	if e.current.Y != startY+1 {
		t.Fatalf("soft drop moved to %d, want %d", e.current.Y, startY+1)
	}
	if e.score != softDropPerCell {
		t.Fatalf("score = %d, want %d", e.score, softDropPerCell)
	}
}

func TestLineClearScoring(t *testing.T) {
	e := newQuietEngine(t, KindI)
	// Bottom row complete except where the horizontal I will land.
	for x := 0; x < Cols; x++ {
		e.board[Rows-1][x] = KindJ
	}
	for x := 3; x < 7; x++ {
		e.board[Rows-1][x] = KindNone
	}
	drop := (Rows - 2) - e.current.Y // horizontal I rests with its row at the bottom

	e.Tick(testTick, Input{HardDrop: true})

	if e.lines != 1 {
		t.Fatalf("lines = %d, want 1", e.lines)
	}
	if e.level != 0 {
		t.Fatalf("level = %d, want 0", e.level)
	}
	wantScore := lineScores[1]*(0+1) + drop*hardDropPerCell
	if e.score != wantScore {
		t.Fatalf("score = %d, want %d", e.score, wantScore)
	}
	for x := 0; x < Cols; x++ {
		if e.board.Cell(x, Rows-1) != KindNone {
			t.Fatalf("bottom row not swept at col %d", x)
		}
	}
}

func TestMultiLineClearAndLevelJump(t *testing.T) {
	e := newQuietEngine(t, KindO)
	e.lines = 18 // two more lines cross the level 2 threshold

	// Rows 18 and 19 complete except the two columns the O fills.
	for _, y := range []int{Rows - 2, Rows - 1} {
		for x := 0; x < Cols; x++ {
			if x != 4 && x != 5 {
				e.board[y][x] = KindJ
			}
		}
	}

	e.Tick(testTick, Input{HardDrop: true})

	if e.lines != 20 {
		t.Fatalf("lines = %d, want 20", e.lines)
	}
	if e.level != 2 {
		t.Fatalf("level = %d, want 2", e.level)
	}
	wantScore := lineScores[2]*(0+1) + (Rows-2)*hardDropPerCell
	if e.score != wantScore {
		t.Fatalf("score = %d, want %d", e.score, wantScore)
	}
	if e.gravityMs != gravityInterval(2, 1.0) {
		t.Fatalf("gravity not re-derived: %v", e.gravityMs)
	}
}

func TestStartLevelHolds(t *testing.T) {
	e := NewEngine(DefaultTuning(), 1)
	e.SetStartLevel(5)
	e.Reset(1)

	if e.level != 5 {
		t.Fatalf("level after reset = %d, want 5", e.level)
	}
	if e.gravityMs != gravityInterval(5, 1.0) {
		t.Fatal("gravity does not follow the start level")
	}

	// A single clear leaves lines/10 below the floor.
	e.board.Clear()
	e.current = Spawn(KindI)
	e.gravityMs = 1e9
	for x := 0; x < Cols; x++ {
		if x < 3 || x > 6 {
			e.board[Rows-1][x] = KindJ
		}
	}
	e.Tick(testTick, Input{HardDrop: true})
	if e.level != 5 {
		t.Fatalf("level dropped below start level: %d", e.level)
	}
}

func TestLockDelayResetOnMove(t *testing.T) {
	tuning := DefaultTuning()
	e := newQuietEngine(t, KindT)
	e.current.Y = Rows - 2 // resting on the floor

	// Accumulate most of the lock delay.
	ticks := int(tuning.LockDelayMillis/testTick) - 2
	for i := 0; i < ticks; i++ {
		e.Tick(testTick, Input{})
	}
	if e.board.Cell(4, Rows-1) != KindNone {
		t.Fatal("piece locked early")
	}

	// A successful shift resets the timer.
	e.Tick(testTick, Input{LeftHeld: true})
	if e.lockMs > testTick {
		t.Fatalf("lockMs = %v after grounded move, want reset", e.lockMs)
	}

	// Without further input the full delay must elapse again before locking.
	for i := 0; i < ticks; i++ {
		e.Tick(testTick, Input{})
	}
	if e.gameOver {
		t.Fatal("unexpected game over")
	}
	locked := false
	for y := range e.board {
		for x := range e.board[y] {
			if e.board[y][x] != KindNone {
				locked = true
			}
		}
	}
	if locked {
		t.Fatal("piece locked before the refreshed delay elapsed")
	}

	for i := 0; i < 4; i++ {
		e.Tick(testTick, Input{})
	}
	if e.board.Cell(4, Rows-1) == KindNone {
		t.Fatal("piece never locked after the delay")
	}
}

func TestLockDelayResetOnRotate(t *testing.T) {
	e := newQuietEngine(t, KindT)
	e.current.Y = Rows - 2
	e.Tick(testTick, Input{})
	if !e.grounded || e.lockMs == 0 {
		t.Fatal("setup: piece not accumulating lock delay")
	}

	e.Tick(testTick, Input{RotateCW: true})
	if e.lockMs > testTick {
		t.Fatalf("lockMs = %v after grounded rotation, want reset", e.lockMs)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	e := newQuietEngine(t, KindT)
	startY := e.current.Y
	startScore := e.score

	e.Tick(testTick, Input{PauseToggle: true})
	if !e.paused {
		t.Fatal("pause toggle ignored")
	}

	// Gameplay input must not reach the paused state machine.
	for i := 0; i < 10; i++ {
		e.Tick(testTick, Input{SoftDropHeld: true, HardDrop: true, RotateCW: true})
	}
	if e.current.Y != startY || e.current.State != 0 || e.score != startScore {
		t.Fatal("state changed while paused")
	}

	e.Tick(testTick, Input{PauseToggle: true})
	if e.paused {
		t.Fatal("unpause toggle ignored")
	}
}

func TestGameOverBlocksPlay(t *testing.T) {
	e := newQuietEngine(t, KindO)
	e.gameOver = true
	startScore := e.score

	e.Tick(testTick, Input{HardDrop: true, PauseToggle: true})
	if e.paused {
		t.Fatal("pause toggled after game over")
	}
	if e.score != startScore {
		t.Fatal("score changed after game over")
	}
}

func TestGameOverOnBlockedSpawn(t *testing.T) {
	e := newQuietEngine(t, KindO)
	// Block the spawn columns without completing any row.
	for y := 0; y < 2; y++ {
		for x := 3; x < 7; x++ {
			e.board[y][x] = KindJ
		}
	}
	e.current = Piece{Kind: KindO, X: 4, Y: Rows - 2}

	e.Tick(testTick, Input{HardDrop: true})
	if !e.gameOver {
		t.Fatal("blocked spawn did not end the game")
	}
}

func TestRestartIsAtomic(t *testing.T) {
	e := NewEngine(DefaultTuning(), 1)
	e.score = 9000
	e.lines = 42
	e.level = 4
	e.paused = true
	e.gameOver = true
	e.board[Rows-1][0] = KindZ

	e.Tick(testTick, Input{Restart: true})

	if e.score != 0 || e.lines != 0 || e.level != 0 {
		t.Fatalf("counters survived restart: score=%d lines=%d level=%d", e.score, e.lines, e.level)
	}
	if e.paused || e.gameOver {
		t.Fatal("flags survived restart")
	}
	if e.board.Cell(0, Rows-1) != KindNone {
		t.Fatal("board survived restart")
	}
	if e.current.Kind == KindNone {
		t.Fatal("no active piece after restart")
	}
}

func TestEngineDeterminism(t *testing.T) {
	script := []Input{
		{}, {LeftHeld: true}, {LeftHeld: true}, {RotateCW: true}, {},
		{SoftDropHeld: true}, {SoftDropHeld: true}, {HardDrop: true},
		{RightHeld: true}, {RightHeld: true}, {RotateCCW: true}, {HardDrop: true},
	}

	a := NewEngine(DefaultTuning(), 777)
	b := NewEngine(DefaultTuning(), 777)
	for round := 0; round < 50; round++ {
		for _, in := range script {
			a.Tick(testTick, in)
			b.Tick(testTick, in)
		}
	}

	sa, sb := a.Snapshot(), b.Snapshot()
	if sa.Score != sb.Score || sa.Lines != sb.Lines || sa.Board != sb.Board ||
		sa.Piece != sb.Piece || sa.Next != sb.Next {
		t.Fatal("identical seeds and inputs diverged")
	}
}

func TestReconfigureClamps(t *testing.T) {
	e := NewEngine(DefaultTuning(), 1)
	e.Reconfigure(Tuning{
		DASMillis:       -5,
		ARRMillis:       -5,
		LockDelayMillis: -5,
		GravityMult:     0,
		SoftDropMult:    0,
	})

	got := e.Tuning()
	if got.DASMillis != 0 || got.ARRMillis != 0 || got.LockDelayMillis != 0 {
		t.Fatalf("negative timings not clamped: %+v", got)
	}
	if got.GravityMult != minGravityMult {
		t.Fatalf("GravityMult = %v, want %v", got.GravityMult, minGravityMult)
	}
	if got.SoftDropMult != 1 {
		t.Fatalf("SoftDropMult = %v, want 1", got.SoftDropMult)
	}
	if e.gravityMs != gravityInterval(e.level, minGravityMult) {
		t.Fatal("gravity interval not re-derived on reconfigure")
	}
}

func TestSnapshotFields(t *testing.T) {
	e := NewEngine(DefaultTuning(), 3)
	s := e.Snapshot()

	if s.Piece.Kind == KindNone {
		t.Fatal("snapshot has no active piece")
	}
	if s.Next == KindNone {
		t.Fatal("snapshot has no next piece")
	}
	if s.GhostRow < s.Piece.Y {
		t.Fatalf("ghost row %d above the piece at %d", s.GhostRow, s.Piece.Y)
	}
	if s.Status != "falling" {
		t.Fatalf("status = %q, want falling", s.Status)
	}

	e.Tick(testTick, Input{PauseToggle: true})
	if got := e.Snapshot().Status; got != "paused" {
		t.Fatalf("status = %q, want paused", got)
	}
}
