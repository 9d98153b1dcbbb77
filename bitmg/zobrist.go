package bitmg

import (
	"math/bits"
	"math/rand"
)

// Zobrist keys per slot and square.
var zobristSlot [NumSlots][64]uint64

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed so hashes are reproducible across runs and in tests.
	rnd := rand.New(rand.NewSource(0xC0DE))
	for slot := 0; slot < NumSlots; slot++ {
		for sq := 0; sq < 64; sq++ {
			zobristSlot[slot][sq] = rnd.Uint64()
		}
	}
}

// Hash returns the Zobrist key of the piece placement.
func (cb ChessBoard) Hash() uint64 {
	var key uint64
	for slot, m := range cb.boards {
		for m != 0 {
			sq := bits.LeadingZeros64(m)
			key ^= zobristSlot[slot][sq]
			m &^= SquareMask(Square(sq))
		}
	}
	return key
}
