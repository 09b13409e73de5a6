package tetris

// Super Rotation System wall kicks. When a rotation's natural placement
// collides, a fixed list of offsets is tried in order; the first offset whose
// trial placement is free wins. J, L, S, T and Z share one table, I has its
// own. Each of the eight valid state transitions lists five candidates with
// the zero "no kick" offset first.

// Offset is a (column, row) displacement applied to a rotation trial.
type Offset struct {
	DX, DY int
}

// kickTable maps [oldState][newState] to an ordered candidate list.
// Only the eight adjacent transitions are populated.
type kickTable [4][4][]Offset

var jlstzKicks = kickTable{
	0: {
		1: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		3: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	},
	1: {
		0: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		2: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	},
	2: {
		1: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		3: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	},
	3: {
		2: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		0: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	},
}

var iKicks = kickTable{
	0: {
		1: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
		3: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	},
	1: {
		0: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
		2: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	},
	2: {
		1: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
		3: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	},
	3: {
		2: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
		0: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	},
}

// noKick is the fallback for transitions missing from the tables. Only
// reachable for malformed states; normal rotation always hits a table entry.
var noKick = []Offset{{0, 0}}

// kicksFor returns the candidate offsets for a kind's state transition.
func kicksFor(kind Kind, oldState, newState int) []Offset {
	table := &jlstzKicks
	if kind == KindI {
		table = &iKicks
	}
	if oldState < 0 || oldState > 3 || newState < 0 || newState > 3 {
		return noKick
	}
	if k := table[oldState][newState]; k != nil {
		return k
	}
	return noKick
}

// TryRotate attempts to rotate the piece a quarter turn, walking the kick
// candidates in order. Returns the rotated piece and true on success, or the
// original piece and false when every candidate collides.
func TryRotate(b *Board, p Piece, cw bool) (Piece, bool) {
	newState := (p.State + 1) % 4
	if !cw {
		newState = (p.State + 3) % 4
	}

	for _, k := range kicksFor(p.Kind, p.State, newState) {
		trial := p.rotated(newState).Moved(k.DX, k.DY)
		if !b.Collide(trial) {
			return trial, true
		}
	}
	return p, false
}
