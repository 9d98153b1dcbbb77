package bitmg

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Kind is the colorless kind of a piece. The six concrete kinds are numbered
// in board slot order so that a kind doubles as its per-side slot offset.
type Kind uint8

const (
	Pawn   Kind = 0
	Rook   Kind = 1
	Knight Kind = 2
	Bishop Kind = 3
	Queen  Kind = 4
	King   Kind = 5

	// Composite tags a bitboard produced by combining two or more others.
	Composite Kind = 6
)

// numKinds is the number of concrete (storable) kinds.
const numKinds = 6

var kindNames = [...]string{"Pawn", "Rook", "Knight", "Bishop", "Queen", "King", "Composite"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Concrete reports whether the kind has a board slot.
func (k Kind) Concrete() bool { return k < numKinds }

// Side is the owner of a piece: false is White, true is Black.
type Side bool

const (
	White Side = false
	Black Side = true
)

func (s Side) String() string {
	if s {
		return "Black"
	}
	return "White"
}

// Opponent returns the other side.
func (s Side) Opponent() Side { return !s }

// Piece identifies what a bitboard holds. Concrete pieces carry a kind and a
// side; a Composite piece carries the flat list of pieces it was built from.
type Piece struct {
	kind  Kind
	side  Side
	parts []Piece
}

// NewPiece returns the concrete piece of the given kind and side.
// Passing Composite yields an empty composite.
func NewPiece(kind Kind, side Side) Piece {
	if kind == Composite {
		return Piece{kind: Composite}
	}
	return Piece{kind: kind, side: side}
}

// Convenience constructors.
func NewPawn(side Side) Piece   { return NewPiece(Pawn, side) }
func NewRook(side Side) Piece   { return NewPiece(Rook, side) }
func NewKnight(side Side) Piece { return NewPiece(Knight, side) }
func NewBishop(side Side) Piece { return NewPiece(Bishop, side) }
func NewQueen(side Side) Piece  { return NewPiece(Queen, side) }
func NewKing(side Side) Piece   { return NewPiece(King, side) }

// Combine returns the composite of a and b. Composite inputs are flattened,
// so the result never nests a composite inside another.
func Combine(a, b Piece) Piece {
	parts := make([]Piece, 0, a.width()+b.width())
	parts = a.appendTo(parts)
	parts = b.appendTo(parts)
	return Piece{kind: Composite, parts: parts}
}

func (p Piece) width() int {
	if p.kind == Composite {
		return len(p.parts)
	}
	return 1
}

func (p Piece) appendTo(dst []Piece) []Piece {
	if p.kind == Composite {
		return append(dst, p.parts...)
	}
	return append(dst, p)
}

// Kind returns the piece kind.
func (p Piece) Kind() Kind { return p.kind }

// Side returns the owning side. Meaningless for composites.
func (p Piece) Side() Side { return p.side }

// IsComposite reports whether p was produced by combining bitboards.
func (p Piece) IsComposite() bool { return p.kind == Composite }

// Parts returns a copy of the constituents of a composite, or nil for a
// concrete piece.
func (p Piece) Parts() []Piece {
	if p.kind != Composite {
		return nil
	}
	return slices.Clone(p.parts)
}

// Equal reports whether two pieces are the same identity. Composites are
// equal when their constituent lists match element-wise.
func (p Piece) Equal(o Piece) bool {
	if p.kind != o.kind {
		return false
	}
	if p.kind == Composite {
		return slices.EqualFunc(p.parts, o.parts, Piece.Equal)
	}
	return p.side == o.side
}

// String renders "White Pawn", or for composites the constituents joined
// by ", ".
func (p Piece) String() string {
	if p.kind == Composite {
		return strings.Join(lo.Map(p.parts, func(c Piece, _ int) string {
			return c.String()
		}), ", ")
	}
	return p.side.String() + " " + p.kind.String()
}

// letter returns the FEN letter of a concrete piece.
func (p Piece) letter() byte {
	l := "prnbqk"[p.kind]
	if p.side == White {
		l -= 'a' - 'A'
	}
	return l
}

// ParsePiece parses a kind name ("pawn", "n", "Queen", ...) and a side name
// ("white", "b", ...) into a concrete piece.
func ParsePiece(kind, side string) (Piece, error) {
	var k Kind
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "p", "pawn":
		k = Pawn
	case "r", "rook":
		k = Rook
	case "n", "knight":
		k = Knight
	case "b", "bishop":
		k = Bishop
	case "q", "queen":
		k = Queen
	case "k", "king":
		k = King
	default:
		return Piece{}, fmt.Errorf("%w: kind %q", ErrUnknownPiece, kind)
	}
	var s Side
	switch strings.ToLower(strings.TrimSpace(side)) {
	case "w", "white":
		s = White
	case "b", "black":
		s = Black
	default:
		return Piece{}, fmt.Errorf("%w: side %q", ErrUnknownPiece, side)
	}
	return NewPiece(k, s), nil
}
