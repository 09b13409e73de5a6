package tetris

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1234,
	}
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists("tetris") {
		t.Fatal("tetris not registered")
	}
	g, err := registry.Create("tetris")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "tetris" {
		t.Errorf("ID = %q", g.ID())
	}
	if g.Title() != "Tetris" {
		t.Errorf("Title = %q", g.Title())
	}
}

func TestGameDeterministicRuns(t *testing.T) {
	play := func() Snapshot {
		g := New()
		g.Reset(testConfig())
		for i := 0; i < 600; i++ {
			var f core.InputFrame
			switch i % 7 {
			case 0:
				f = frame(core.ActionLeft)
			case 3:
				f = frame(core.ActionRotateCW)
			case 5:
				f = frame(core.ActionHardDrop)
			default:
				f = frame()
			}
			g.Step(f)
		}
		return g.Snapshot()
	}

	a, b := play(), play()
	if a.Score != b.Score || a.Lines != b.Lines || a.Board != b.Board || a.Piece != b.Piece {
		t.Fatal("identical configs produced different runs")
	}
}

func TestGameSingleTapMovesOnce(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	startX := g.Snapshot().Piece.X

	// One tap, then silence. The hold window keeps the direction held for a
	// few ticks, but DAS must swallow everything past the immediate step.
	g.Step(frame(core.ActionLeft))
	for i := 0; i < 30; i++ {
		g.Step(frame())
	}

	if got := g.Snapshot().Piece.X; got != startX-1 {
		t.Fatalf("piece at x=%d after one tap, want %d", got, startX-1)
	}
}

func TestGameOppositeTapCancelsHold(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	startX := g.Snapshot().Piece.X

	g.Step(frame(core.ActionLeft))
	g.Step(frame(core.ActionRight))
	g.Step(frame())

	// Left then right within the hold window: one step each way.
	if got := g.Snapshot().Piece.X; got != startX {
		t.Fatalf("piece at x=%d, want %d", got, startX)
	}
}

func TestGamePauseAndState(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	res := g.Step(frame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("pause action ignored")
	}
	res = g.Step(frame(core.ActionPause))
	if res.State.Paused {
		t.Fatal("unpause action ignored")
	}
}

func TestGameRestartClearsScore(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Earn some points, then restart in-game.
	g.Step(frame(core.ActionHardDrop))
	if g.State().Score == 0 {
		t.Fatal("setup: hard drop scored nothing")
	}
	res := g.Step(frame(core.ActionRestart))
	if res.State.Score != 0 || res.State.Lines != 0 {
		t.Fatalf("restart kept state: %+v", res.State)
	}
}

func TestGameRenderSmoke(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.Step(frame())

	s := core.NewScreen(80, 24)
	g.Render(s)

	if s.String() == core.NewScreen(80, 24).String() {
		t.Fatal("render drew nothing")
	}
}

func TestGameTooSmallScreen(t *testing.T) {
	g := New()
	cfg := testConfig()
	cfg.ScreenW = 20
	cfg.ScreenH = 10
	g.Reset(cfg)

	start := g.Snapshot()
	for i := 0; i < 120; i++ {
		g.Step(frame(core.ActionHardDrop))
	}
	if got := g.Snapshot(); got.Score != start.Score {
		t.Fatal("simulation advanced on a too-small screen")
	}

	s := core.NewScreen(20, 10)
	g.Render(s) // must not panic on a cramped buffer
}
