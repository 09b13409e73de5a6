package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	cellWidth = 2 // two terminal columns per board cell for square-ish blocks

	wellWidth  = Cols*cellWidth + 2 // playfield plus side walls
	wellHeight = Rows + 2           // playfield plus top/bottom walls
	panelWidth = 16                 // HUD panel right of the well

	minScreenW = wellWidth + panelWidth + 2
	minScreenH = wellHeight
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.engine == nil {
		return
	}

	snap := g.engine.Snapshot()

	wellX := (dst.Width() - (wellWidth + panelWidth)) / 2
	wellY := (dst.Height() - wellHeight) / 2
	if wellX < 0 {
		wellX = 0
	}
	if wellY < 0 {
		wellY = 0
	}

	g.renderWell(dst, snap, wellX, wellY)
	g.renderPanel(dst, snap, wellX+wellWidth+2, wellY)
	g.renderOverlays(dst, snap, wellX, wellY)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	dst.DrawTextCentered(dst.Height()/2, "Window too small")
	dst.DrawTextCentered(dst.Height()/2+1, "Please resize terminal")
}

// renderWell draws the walls, locked stack, ghost projection and the
// active piece.
func (g *Game) renderWell(dst *core.Screen, snap Snapshot, wellX, wellY int) {
	dst.DrawBox(core.NewRect(wellX, wellY, wellWidth, wellHeight))

	innerX := wellX + 1
	innerY := wellY + 1

	// Locked cells.
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if kind := snap.Board.Cell(x, y); kind != KindNone {
				drawCell(dst, innerX+x*cellWidth, innerY+y, '█', kind.Color())
			}
		}
	}

	// Ghost projection under the active piece.
	ghost := snap.Piece
	ghost.Y = snap.GhostRow
	for gy, row := range ghost.Grid() {
		for gx, occupied := range row {
			if !occupied || ghost.Y+gy < 0 {
				continue
			}
			drawCell(dst, innerX+(ghost.X+gx)*cellWidth, innerY+ghost.Y+gy, '░', core.ColorGray)
		}
	}

	// Active piece last so it wins over its own ghost.
	for gy, row := range snap.Piece.Grid() {
		for gx, occupied := range row {
			if !occupied || snap.Piece.Y+gy < 0 {
				continue
			}
			drawCell(dst, innerX+(snap.Piece.X+gx)*cellWidth, innerY+snap.Piece.Y+gy, '█', snap.Piece.Kind.Color())
		}
	}
}

// drawCell paints one board cell (cellWidth terminal columns).
func drawCell(dst *core.Screen, x, y int, r rune, c core.Color) {
	for i := 0; i < cellWidth; i++ {
		dst.SetCell(x+i, y, r, c)
	}
}

// renderPanel draws the score HUD and the next-piece preview.
func (g *Game) renderPanel(dst *core.Screen, snap Snapshot, panelX, panelY int) {
	dst.DrawText(panelX, panelY, "T E T R I S")
	dst.DrawText(panelX, panelY+2, fmt.Sprintf("Score %d", snap.Score))
	dst.DrawText(panelX, panelY+3, fmt.Sprintf("Level %d", snap.Level))
	dst.DrawText(panelX, panelY+4, fmt.Sprintf("Lines %d", snap.Lines))

	dst.DrawText(panelX, panelY+6, "Next")
	previewY := panelY + 7
	for gy, row := range rotations[snap.Next][0] {
		for gx, occupied := range row {
			if occupied {
				drawCell(dst, panelX+gx*cellWidth, previewY+gy, '█', snap.Next.Color())
			}
		}
	}

	dst.DrawText(panelX, panelY+12, "←/→ move")
	dst.DrawText(panelX, panelY+13, "z/x rotate")
	dst.DrawText(panelX, panelY+14, "↓ soft drop")
	dst.DrawText(panelX, panelY+15, "space drop")
	dst.DrawText(panelX, panelY+16, "p pause  r new")
}

// renderOverlays draws pause/game-over boxes on top of the well.
func (g *Game) renderOverlays(dst *core.Screen, snap Snapshot, wellX, wellY int) {
	centerX := wellX + wellWidth/2
	centerY := wellY + wellHeight/2

	switch {
	case snap.GameOver:
		g.drawOverlay(dst, centerX, centerY, "GAME OVER",
			fmt.Sprintf("Score: %d", snap.Score), "Press R to restart")
	case snap.Paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	}
}

// drawOverlay draws a centered boxed message.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Blank the area behind the overlay.
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "←/→: Move | ↓: Soft drop | Z/X: Rotate | Space: Hard drop | P: Pause | R: Restart | Q: Quit"
}
