package tetris

// Status names the phase of the session.
type Status string

const (
	StatusFalling  Status = "falling"
	StatusGrounded Status = "grounded"
	StatusPaused   Status = "paused"
	StatusGameOver Status = "game_over"
)

// Snapshot is the read-only view of one tick, handed to the renderer and to
// determinism tests. The board is copied by value; nothing here aliases
// engine state.
type Snapshot struct {
	Board    Board
	Piece    Piece
	GhostRow int
	Next     Kind

	Score int
	Lines int
	Level int

	GravityMillis float64
	Grounded      bool
	Paused        bool
	GameOver      bool
	Status        Status
}

// Snapshot captures the current engine state.
func (e *Engine) Snapshot() Snapshot {
	status := StatusFalling
	switch {
	case e.gameOver:
		status = StatusGameOver
	case e.paused:
		status = StatusPaused
	case e.grounded:
		status = StatusGrounded
	}

	return Snapshot{
		Board:         e.board,
		Piece:         e.current,
		GhostRow:      e.board.GhostRow(e.current),
		Next:          e.next,
		Score:         e.score,
		Lines:         e.lines,
		Level:         e.level,
		GravityMillis: e.gravityMs,
		Grounded:      e.grounded,
		Paused:        e.paused,
		GameOver:      e.gameOver,
		Status:        status,
	}
}
