package bitmg

import (
	"fmt"
	"math/bits"
)

// BitBoard is an occupancy mask for one piece identity. Bit 63-s holds
// square s, so the mask printed as a zero-padded 64 digit binary string
// reads square 0 first.
type BitBoard struct {
	Mask  uint64
	Piece Piece
}

// File masks in square order: file 0 holds squares 0, 8, ..., 56.
const (
	FileA uint64 = 0x8080808080808080
	FileB uint64 = FileA >> 1
	FileC uint64 = FileA >> 2
	FileD uint64 = FileA >> 3
	FileE uint64 = FileA >> 4
	FileF uint64 = FileA >> 5
	FileG uint64 = FileA >> 6
	FileH uint64 = FileA >> 7

	// Row0 holds squares 0..7, Row7 squares 56..63.
	Row0 uint64 = 0xff00000000000000
	Row7 uint64 = 0x00000000000000ff
)

// SquareMask returns the single-bit mask for s. s must be valid.
func SquareMask(s Square) uint64 { return 1 << uint(63-s) }

// Encode builds a bitboard with the given squares set. Any square outside
// 0..63 fails the whole call. Duplicates are harmless.
func Encode(piece Piece, squares []Square) (BitBoard, error) {
	var mask uint64
	for _, s := range squares {
		if !s.Valid() {
			return BitBoard{}, fmt.Errorf("%w: %d", ErrOutOfRange, int(s))
		}
		mask |= SquareMask(s)
	}
	return BitBoard{Mask: mask, Piece: piece}, nil
}

// Decode returns the piece and the occupied squares in ascending order.
// It is the exact inverse of Encode.
func Decode(bb BitBoard) (Piece, []Square) {
	return bb.Piece, bb.AppendSquares(make([]Square, 0, bits.OnesCount64(bb.Mask)))
}

// AppendSquares appends the occupied squares to dst, most significant bit
// (lowest square) first.
func (bb BitBoard) AppendSquares(dst []Square) []Square {
	m := bb.Mask
	for m != 0 {
		dst = append(dst, popFirst(&m))
	}
	return dst
}

// Count returns the number of occupied squares.
func (bb BitBoard) Count() int { return bits.OnesCount64(bb.Mask) }

// Empty reports whether no square is set.
func (bb BitBoard) Empty() bool { return bb.Mask == 0 }

// Has reports whether square s is set. Invalid squares are never set.
func (bb BitBoard) Has(s Square) bool {
	return s.Valid() && bb.Mask&SquareMask(s) != 0
}

func (bb BitBoard) String() string {
	return fmt.Sprintf("%v BitBoard: %064b", bb.Piece, bb.Mask)
}

// ==========================
// Board algebra
// ==========================

// Union returns the squares set in either board, tagged with both pieces.
func Union(a, b BitBoard) BitBoard {
	return BitBoard{Mask: a.Mask | b.Mask, Piece: Combine(a.Piece, b.Piece)}
}

// Intersect returns the squares set in both boards, tagged with both pieces.
func Intersect(a, b BitBoard) BitBoard {
	return BitBoard{Mask: a.Mask & b.Mask, Piece: Combine(a.Piece, b.Piece)}
}
