package bitmg

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// Slot indexes one of the twelve bitboards of a ChessBoard.
type Slot uint8

const (
	WhitePawnSlot Slot = iota
	WhiteRookSlot
	WhiteKnightSlot
	WhiteBishopSlot
	WhiteQueenSlot
	WhiteKingSlot
	BlackPawnSlot
	BlackRookSlot
	BlackKnightSlot
	BlackBishopSlot
	BlackQueenSlot
	BlackKingSlot

	NumSlots = 12
)

// SlotOf maps a concrete piece to its slot: (side ? 6 : 0) + kind.
// Composite pieces have no slot.
func SlotOf(p Piece) (Slot, error) {
	if !p.kind.Concrete() {
		return 0, fmt.Errorf("%w: %v", ErrNoPieceBoard, p)
	}
	var offset Slot
	if p.side == Black {
		offset = BlackPawnSlot
	}
	return offset + Slot(p.kind), nil
}

// Piece returns the concrete piece stored in the slot.
func (s Slot) Piece() Piece {
	side := White
	if s >= BlackPawnSlot {
		side = Black
	}
	return NewPiece(Kind(s%numKinds), side)
}

// ChessBoard holds one bitboard per (kind, side). It is read-only once built.
type ChessBoard struct {
	boards [NumSlots]uint64
}

// StartFEN is the FEN of the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// standardSetup lists the starting squares of every (kind, side) pair.
var standardSetup = []struct {
	piece   Piece
	squares []Square
}{
	{NewPawn(White), []Square{8, 9, 10, 11, 12, 13, 14, 15}},
	{NewRook(White), []Square{0, 7}},
	{NewKnight(White), []Square{1, 6}},
	{NewBishop(White), []Square{2, 5}},
	{NewQueen(White), []Square{3}},
	{NewKing(White), []Square{4}},

	{NewPawn(Black), []Square{48, 49, 50, 51, 52, 53, 54, 55}},
	{NewRook(Black), []Square{56, 63}},
	{NewKnight(Black), []Square{57, 62}},
	{NewBishop(Black), []Square{58, 61}},
	{NewQueen(Black), []Square{59}},
	{NewKing(Black), []Square{60}},
}

// InitStandard builds the standard starting position. It fails with the
// first encoding error.
func InitStandard() (ChessBoard, error) {
	boards := make([]BitBoard, 0, NumSlots)
	for _, e := range standardSetup {
		bb, err := Encode(e.piece, e.squares)
		if err != nil {
			return ChessBoard{}, fmt.Errorf("init %v: %w", e.piece, err)
		}
		boards = append(boards, bb)
	}
	cb, err := NewChessBoard(boards...)
	if err != nil {
		return ChessBoard{}, err
	}
	if e := log.Debug(); e.Enabled() {
		e.Uint64("hash", cb.Hash()).Msg("standard-board-initialized")
	}
	return cb, nil
}

// NewChessBoard places each bitboard in the slot of its piece. Boards for the
// same slot are merged; a composite board or a square claimed by two slots
// is rejected.
func NewChessBoard(boards ...BitBoard) (ChessBoard, error) {
	var cb ChessBoard
	for _, bb := range boards {
		slot, err := SlotOf(bb.Piece)
		if err != nil {
			return ChessBoard{}, err
		}
		cb.boards[slot] |= bb.Mask
	}
	if err := cb.Validate(); err != nil {
		return ChessBoard{}, err
	}
	return cb, nil
}

// Get returns the bitboard for a concrete piece. Composite identities have
// no slot and yield ErrNoPieceBoard.
func (cb ChessBoard) Get(p Piece) (BitBoard, error) {
	slot, err := SlotOf(p)
	if err != nil {
		return BitBoard{}, err
	}
	return BitBoard{Mask: cb.boards[slot], Piece: p}, nil
}

// Boards returns the twelve bitboards in slot order.
func (cb ChessBoard) Boards() []BitBoard {
	out := make([]BitBoard, NumSlots)
	for i := range cb.boards {
		out[i] = BitBoard{Mask: cb.boards[i], Piece: Slot(i).Piece()}
	}
	return out
}

// SideOccupancy returns the union of the six boards of one side.
func (cb ChessBoard) SideOccupancy(side Side) BitBoard {
	all := cb.Boards()
	first := 0
	if side == Black {
		first = int(BlackPawnSlot)
	}
	acc := all[first]
	for _, bb := range all[first+1 : first+numKinds] {
		acc = Union(acc, bb)
	}
	return acc
}

// Occupancy returns the union of all twelve boards.
func (cb ChessBoard) Occupancy() BitBoard {
	return Union(cb.SideOccupancy(White), cb.SideOccupancy(Black))
}

// PieceAt returns the piece on s, if any.
func (cb ChessBoard) PieceAt(s Square) (Piece, bool) {
	if !s.Valid() {
		return Piece{}, false
	}
	bit := SquareMask(s)
	for i, m := range cb.boards {
		if m&bit != 0 {
			return Slot(i).Piece(), true
		}
	}
	return Piece{}, false
}

// Validate checks that no square is claimed by two slots.
func (cb ChessBoard) Validate() error {
	var seen uint64
	for i, m := range cb.boards {
		if clash := seen & m; clash != 0 {
			sq := BitBoard{Mask: clash}.AppendSquares(nil)
			return fmt.Errorf("%w: %v on %v", ErrOverlap, Slot(i).Piece(), sq)
		}
		seen |= m
	}
	return nil
}

// Equal reports whether two boards hold the same pieces on the same squares.
func (cb ChessBoard) Equal(o ChessBoard) bool { return cb.boards == o.boards }

// String draws the board one row per line, row 0 first, upper case for
// White and lower case for Black.
func (cb ChessBoard) String() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		fmt.Fprintf(&sb, "%d ", 8-row)
		for file := 0; file < 8; file++ {
			ch := byte('.')
			if p, ok := cb.PieceAt(Square(row*8 + file)); ok {
				ch = p.letter()
			}
			sb.WriteByte(ch)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  " + fileLetters)
	return sb.String()
}
