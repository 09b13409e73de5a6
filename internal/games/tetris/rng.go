package tetris

// Randomizer is an NES-style piece generator. Repeats are possible but
// rejected 50% of the time, and long droughts can happen. An optional first
// piece rule forbids S, Z and O as the opening piece.
//
// The generator is a 32-bit LCG; a draw takes the high 15 bits of the
// advanced state and maps them to a piece index mod 7. It is fully
// deterministic: equal seeds produce equal sequences.
type Randomizer struct {
	state      uint32
	prev       int // previously drawn index, -1 before the first draw
	avoidFirst bool
}

// LCG parameters, the widely used multiplier/increment pair.
const (
	lcgMul = 0x41C64E6D
	lcgInc = 0x3039
)

// Indices of S, Z and O in the draw alphabet (I,J,L,O,S,T,Z).
var firstPieceAvoided = map[int]bool{3: true, 4: true, 6: true}

// NewRandomizer creates a generator from a 32-bit seed.
// When avoidFirst is set, the first draw is never S, Z or O.
func NewRandomizer(seed uint32, avoidFirst bool) *Randomizer {
	return &Randomizer{
		state:      seed,
		prev:       -1,
		avoidFirst: avoidFirst,
	}
}

// advance steps the LCG and returns the new state.
func (r *Randomizer) advance() uint32 {
	r.state = r.state*lcgMul + lcgInc
	return r.state
}

// rand15 returns a pseudo-random 15-bit value (bits 16..30 of a fresh state).
func (r *Randomizer) rand15() uint32 {
	return (r.advance() >> 16) & 0x7FFF
}

// choice7 maps a fresh draw to a piece index 0..6.
func (r *Randomizer) choice7() int {
	return int(r.rand15() % 7)
}

// Draw returns the next piece kind.
//
// Process:
//  1. Roll a candidate index 0..6.
//  2. On the very first draw with the first piece rule on, reroll while the
//     candidate is S, Z or O.
//  3. If the candidate repeats the previous draw, flip a coin (bit 0 of a
//     fresh 15-bit draw); heads rerolls exactly once.
func (r *Randomizer) Draw() Kind {
	cand := r.choice7()

	if r.prev < 0 && r.avoidFirst {
		for firstPieceAvoided[cand] {
			cand = r.choice7()
		}
	}

	if r.prev >= 0 && cand == r.prev {
		if r.rand15()&1 == 1 {
			cand = r.choice7()
		}
	}

	r.prev = cand
	return kindOrder[cand]
}
