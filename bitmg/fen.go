package bitmg

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// FromFEN builds a ChessBoard from the piece placement of a FEN string.
// Only placement is kept; side to move, castling and en passant are
// outside this model.
//
// FEN square a1 becomes square 0, which this package labels A8, so rank
// labels of a FEN position read flipped: a White pawn on FEN e4 sits on E5
// here and advances to E4.
func FromFEN(fen string) (cb ChessBoard, err error) {
	fen = strings.TrimSpace(fen)
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return ChessBoard{}, fmt.Errorf("%w: %q", ErrBadFEN, fen)
	}
	if err := checkPlacement(fields[0]); err != nil {
		return ChessBoard{}, fmt.Errorf("%w: %q: %v", ErrBadFEN, fen, err)
	}
	// dragontoothmg panics on malformed input.
	defer func() {
		if r := recover(); r != nil {
			cb, err = ChessBoard{}, fmt.Errorf("%w: %q: %v", ErrBadFEN, fen, r)
		}
	}()
	dt := dragontoothmg.ParseFen(fen)
	return FromDragontooth(&dt)
}

// checkPlacement rejects placements dragontoothmg would accept while
// dropping pieces: every rank must describe exactly 8 squares.
func checkPlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%d ranks", len(ranks))
	}
	for i, rank := range ranks {
		width := 0
		for _, ch := range rank {
			switch {
			case ch >= '1' && ch <= '8':
				width += int(ch - '0')
			case strings.ContainsRune("pnbrqkPNBRQK", ch):
				width++
			default:
				return fmt.Errorf("rank %d: bad character %q", 8-i, ch)
			}
		}
		if width != 8 {
			return fmt.Errorf("rank %d: %d squares", 8-i, width)
		}
	}
	return nil
}

// FromDragontooth converts a dragontoothmg board. dragontooth numbers a1 as
// bit 0; its square s is our square s, held at bit 63-s.
func FromDragontooth(b *dragontoothmg.Board) (ChessBoard, error) {
	boards := make([]BitBoard, 0, NumSlots)
	boards = appendSide(boards, White, &b.White)
	boards = appendSide(boards, Black, &b.Black)
	return NewChessBoard(boards...)
}

func appendSide(dst []BitBoard, side Side, bb *dragontoothmg.Bitboards) []BitBoard {
	return append(dst,
		BitBoard{Mask: bits.Reverse64(bb.Pawns), Piece: NewPawn(side)},
		BitBoard{Mask: bits.Reverse64(bb.Rooks), Piece: NewRook(side)},
		BitBoard{Mask: bits.Reverse64(bb.Knights), Piece: NewKnight(side)},
		BitBoard{Mask: bits.Reverse64(bb.Bishops), Piece: NewBishop(side)},
		BitBoard{Mask: bits.Reverse64(bb.Queens), Piece: NewQueen(side)},
		BitBoard{Mask: bits.Reverse64(bb.Kings), Piece: NewKing(side)},
	)
}
