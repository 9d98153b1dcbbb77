package bitmg

import (
	"fmt"
	"strings"
)

// Square is a board cell index in 0..63. Square 0 is labelled A8 and
// square 63 H1; square s sits on file s%8 and row s/8.
type Square int

const NoSquare Square = -1

// Valid reports whether s is on the board.
func (s Square) Valid() bool { return s >= 0 && s < 64 }

// File returns the file index 0..7 (A..H).
func (s Square) File() int { return int(s) % 8 }

// Row returns the row index 0..7, row 0 being rank 8.
func (s Square) Row() int { return int(s) / 8 }

func (s Square) String() string { return SquareToAlgebraic(s) }

const fileLetters = "ABCDEFGH"

// SquareToAlgebraic converts a square to its label, e.g. 0 -> "A8",
// 63 -> "H1". Squares off the board render as "??".
func SquareToAlgebraic(s Square) string {
	if !s.Valid() {
		return "??"
	}
	return fmt.Sprintf("%c%d", fileLetters[s.File()], 8-s.Row())
}

// AlgebraicToSquare is the inverse of SquareToAlgebraic. Letters are
// case-insensitive.
func AlgebraicToSquare(alg string) (Square, error) {
	alg = strings.ToUpper(strings.TrimSpace(alg))
	if len(alg) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrBadSquare, alg)
	}
	file, rank := alg[0], alg[1]
	if file < 'A' || file > 'H' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("%w: %q", ErrBadSquare, alg)
	}
	return Square(int('8'-rank)*8 + int(file-'A')), nil
}

// MoveType categorises a proposed move.
type MoveType uint8

const (
	Normal MoveType = iota
	Capture
	Special
)

func (t MoveType) String() string {
	switch t {
	case Normal:
		return "Normal"
	case Capture:
		return "Capture"
	case Special:
		return "Special"
	}
	return fmt.Sprintf("MoveType(%d)", uint8(t))
}

// Move is a candidate move. It is proposed only, never applied, and To is
// not checked against the board edges unless the generator masks edges.
type Move struct {
	Type MoveType
	From Square
	To   Square
}

// String renders e.g. "Normal Move from A7 => A6".
func (m Move) String() string {
	return fmt.Sprintf("%v Move from %s => %s", m.Type, SquareToAlgebraic(m.From), SquareToAlgebraic(m.To))
}
