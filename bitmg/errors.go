package bitmg

import "errors"

var (
	// ErrOutOfRange is returned when a square index falls outside 0..63.
	ErrOutOfRange = errors.New("square out of range: a chess board only has 64 squares")
	// ErrNoPieceBoard is returned when a piece identity has no board slot.
	ErrNoPieceBoard = errors.New("no bitboard for chess piece")
	// ErrUnsupportedPiece is returned by the generator for kinds it has no rules for.
	ErrUnsupportedPiece = errors.New("unsupported piece kind")
	ErrOverlap          = errors.New("bitboards overlap")
	ErrUnknownPiece     = errors.New("unknown piece")
	ErrBadSquare        = errors.New("invalid algebraic square")
	ErrBadFEN           = errors.New("invalid FEN")
)
