package bitmg_test

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"chess-movegen/bitmg"
)

func TestPieceString(t *testing.T) {
	is := is.New(t)
	cases := []struct {
		p    bitmg.Piece
		want string
	}{
		{bitmg.NewKing(bitmg.White), "White King"},
		{bitmg.NewQueen(bitmg.Black), "Black Queen"},
		{bitmg.NewRook(bitmg.White), "White Rook"},
		{bitmg.NewBishop(bitmg.Black), "Black Bishop"},
		{bitmg.NewKnight(bitmg.White), "White Knight"},
		{bitmg.NewPawn(bitmg.Black), "Black Pawn"},
		{bitmg.Combine(bitmg.NewPawn(bitmg.White), bitmg.NewPawn(bitmg.Black)), "White Pawn, Black Pawn"},
	}
	for _, tc := range cases {
		is.Equal(tc.p.String(), tc.want)
	}
}

func TestPieceEqual(t *testing.T) {
	is := is.New(t)
	is.True(bitmg.NewPawn(bitmg.White).Equal(bitmg.NewPawn(bitmg.White)))
	is.True(!bitmg.NewPawn(bitmg.White).Equal(bitmg.NewPawn(bitmg.Black)))
	is.True(!bitmg.NewPawn(bitmg.White).Equal(bitmg.NewRook(bitmg.White)))

	ab := bitmg.Combine(bitmg.NewPawn(bitmg.White), bitmg.NewRook(bitmg.Black))
	ba := bitmg.Combine(bitmg.NewRook(bitmg.Black), bitmg.NewPawn(bitmg.White))
	is.True(ab.Equal(bitmg.Combine(bitmg.NewPawn(bitmg.White), bitmg.NewRook(bitmg.Black))))
	is.True(!ab.Equal(ba)) // order matters
	is.True(!ab.Equal(bitmg.NewPawn(bitmg.White)))
}

func TestPartsIsACopy(t *testing.T) {
	is := is.New(t)
	c := bitmg.Combine(bitmg.NewPawn(bitmg.White), bitmg.NewRook(bitmg.Black))
	parts := c.Parts()
	parts[0] = bitmg.NewKing(bitmg.Black)
	is.Equal(c.String(), "White Pawn, Black Rook")
	is.Equal(bitmg.NewPawn(bitmg.White).Parts(), nil)
}

func TestParsePiece(t *testing.T) {
	is := is.New(t)
	cases := []struct {
		kind, side string
		want       bitmg.Piece
	}{
		{"pawn", "white", bitmg.NewPawn(bitmg.White)},
		{"P", "W", bitmg.NewPawn(bitmg.White)},
		{"Knight", "Black", bitmg.NewKnight(bitmg.Black)},
		{"n", "b", bitmg.NewKnight(bitmg.Black)},
		{"b", "b", bitmg.NewBishop(bitmg.Black)},
		{" queen ", "white", bitmg.NewQueen(bitmg.White)},
		{"k", "black", bitmg.NewKing(bitmg.Black)},
		{"rook", "w", bitmg.NewRook(bitmg.White)},
	}
	for _, tc := range cases {
		p, err := bitmg.ParsePiece(tc.kind, tc.side)
		is.NoErr(err)
		is.True(p.Equal(tc.want))
	}

	_, err := bitmg.ParsePiece("dragon", "white")
	is.True(errors.Is(err, bitmg.ErrUnknownPiece))
	_, err = bitmg.ParsePiece("pawn", "red")
	is.True(errors.Is(err, bitmg.ErrUnknownPiece))
}

func TestKindAndSide(t *testing.T) {
	is := is.New(t)
	is.Equal(bitmg.Knight.String(), "Knight")
	is.Equal(bitmg.Composite.String(), "Composite")
	is.True(bitmg.King.Concrete())
	is.True(!bitmg.Composite.Concrete())
	is.Equal(bitmg.White.Opponent(), bitmg.Black)
	is.Equal(bitmg.Black.String(), "Black")
}
