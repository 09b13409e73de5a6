package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Board dimensions in cells.
const (
	Cols = 10
	Rows = 20
)

// Kind identifies one of the seven tetromino types. KindNone marks an
// empty board cell.
type Kind int8

const (
	KindNone Kind = iota
	KindI
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// kindOrder is the randomizer's index alphabet: indices 0..6 map to
// I, J, L, O, S, T, Z.
var kindOrder = [7]Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}

// String returns the one-letter code for the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "."
	}
}

// Color returns the display color for the kind.
func (k Kind) Color() core.Color {
	switch k {
	case KindI:
		return core.ColorBrightCyan
	case KindJ:
		return core.ColorBrightBlue
	case KindL:
		return core.ColorOrange
	case KindO:
		return core.ColorBrightYellow
	case KindS:
		return core.ColorBrightGreen
	case KindT:
		return core.ColorBrightMagenta
	case KindZ:
		return core.ColorBrightRed
	default:
		return core.ColorDefault
	}
}

// Grid is a square occupancy mask for one rotation state of a piece.
// Sizes: 4x4 for I, 3x3 for J/L/S/T/Z, 2x2 for O.
type Grid [][]bool

// Size returns the side length of the grid.
func (g Grid) Size() int {
	return len(g)
}

// baseShapes holds the spawn-state (state 0) mask of each kind.
var baseShapes = map[Kind][]string{
	KindI: {
		"....",
		"####",
		"....",
		"....",
	},
	KindJ: {
		"#..",
		"###",
		"...",
	},
	KindL: {
		"..#",
		"###",
		"...",
	},
	KindO: {
		"##",
		"##",
	},
	KindS: {
		".##",
		"##.",
		"...",
	},
	KindT: {
		".#.",
		"###",
		"...",
	},
	KindZ: {
		"##.",
		".##",
		"...",
	},
}

// rotations holds the four rotation states of every kind, derived once at
// startup by repeated clockwise rotation of the base shape. State order:
// 0 = spawn, 1 = CW, 2 = 180, 3 = CCW.
var rotations map[Kind][4]Grid

func init() {
	rotations = make(map[Kind][4]Grid, len(baseShapes))
	for kind, rows := range baseShapes {
		var states [4]Grid
		states[0] = parseGrid(rows)
		for s := 1; s < 4; s++ {
			states[s] = rotateCW(states[s-1])
		}
		rotations[kind] = states
	}
}

func parseGrid(rows []string) Grid {
	g := make(Grid, len(rows))
	for y, row := range rows {
		g[y] = make([]bool, len(row))
		for x, ch := range row {
			g[y][x] = ch == '#'
		}
	}
	return g
}

// rotateCW returns the grid rotated 90 degrees clockwise
// (transpose followed by row reversal).
func rotateCW(g Grid) Grid {
	n := g.Size()
	out := make(Grid, n)
	for y := 0; y < n; y++ {
		out[y] = make([]bool, n)
		for x := 0; x < n; x++ {
			out[y][x] = g[n-1-x][y]
		}
	}
	return out
}

// rotateCCW returns the grid rotated 90 degrees counter-clockwise.
func rotateCCW(g Grid) Grid {
	n := g.Size()
	out := make(Grid, n)
	for y := 0; y < n; y++ {
		out[y] = make([]bool, n)
		for x := 0; x < n; x++ {
			out[y][x] = g[x][n-1-y]
		}
	}
	return out
}

// Piece is an immutable placement of a tetromino on the board.
// Every move or rotation constructs a new value; candidates are validated
// against the board before replacing the current piece.
type Piece struct {
	Kind  Kind
	State int // rotation state 0..3
	X     int // board column of the grid origin
	Y     int // board row of the grid origin; may be negative above the well
}

// Spawn places a new piece of the given kind at the top center of the board.
// Leading empty grid rows are tucked above the visible well (at most two).
func Spawn(k Kind) Piece {
	g := rotations[k][0]
	w := g.Size()

	emptyTop := 0
	for _, row := range g {
		occupied := false
		for _, v := range row {
			if v {
				occupied = true
				break
			}
		}
		if occupied {
			break
		}
		emptyTop++
	}
	if emptyTop > 2 {
		emptyTop = 2
	}

	return Piece{
		Kind: k,
		X:    (Cols - w) / 2,
		Y:    -emptyTop,
	}
}

// Grid returns the occupancy mask of the piece's current rotation state.
func (p Piece) Grid() Grid {
	return rotations[p.Kind][p.State]
}

// Moved returns a copy of the piece shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// rotated returns a copy of the piece in the given rotation state.
func (p Piece) rotated(state int) Piece {
	p.State = state
	return p
}
