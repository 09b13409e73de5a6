package tetris

// Board is the well of locked cells, Rows x Cols. A cell holds the kind of
// the piece that locked there, or KindNone when empty. Row 0 is the top.
//
// The board is mutated only by Merge and Sweep; every other operation is a
// pure query.
type Board [Rows][Cols]Kind

// Clear empties every cell.
func (b *Board) Clear() {
	for y := range b {
		for x := range b[y] {
			b[y][x] = KindNone
		}
	}
}

// Cell returns the kind locked at (x, y), or KindNone when the coordinates
// are outside the board.
func (b *Board) Cell(x, y int) Kind {
	if x < 0 || x >= Cols || y < 0 || y >= Rows {
		return KindNone
	}
	return b[y][x]
}

// Collide reports whether the piece overlaps a wall, the floor, or a locked
// cell. Cells above the visible well (negative row) are checked against the
// side walls only, so freshly spawned pieces may float above the board.
func (b *Board) Collide(p Piece) bool {
	g := p.Grid()
	for gy, row := range g {
		for gx, occupied := range row {
			if !occupied {
				continue
			}
			x, y := p.X+gx, p.Y+gy
			if x < 0 || x >= Cols || y >= Rows {
				return true
			}
			if y >= 0 && b[y][x] != KindNone {
				return true
			}
		}
	}
	return false
}

// Merge writes the piece's kind into every occupied, visible cell.
// The caller must have verified the placement with Collide; Merge performs
// no validation.
func (b *Board) Merge(p Piece) {
	g := p.Grid()
	for gy, row := range g {
		for gx, occupied := range row {
			if !occupied {
				continue
			}
			y := p.Y + gy
			if y >= 0 {
				b[y][p.X+gx] = p.Kind
			}
		}
	}
}

// Sweep removes every full row, inserting empty rows at the top and keeping
// the relative order of the remaining rows. Returns the number of rows
// cleared.
func (b *Board) Sweep() int {
	cleared := 0
	y := Rows - 1
	for y >= 0 {
		full := true
		for x := 0; x < Cols; x++ {
			if b[y][x] == KindNone {
				full = false
				break
			}
		}
		if !full {
			y--
			continue
		}
		// Shift everything above down one row and blank the top.
		for yy := y; yy > 0; yy-- {
			b[yy] = b[yy-1]
		}
		b[0] = [Cols]Kind{}
		cleared++
	}
	return cleared
}

// GhostRow returns the row the piece would occupy after falling until it
// rests on the stack or the floor. Pure; neither board nor piece changes.
func (b *Board) GhostRow(p Piece) int {
	for {
		trial := p.Moved(0, 1)
		if b.Collide(trial) {
			return p.Y
		}
		p = trial
	}
}
