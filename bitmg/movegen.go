package bitmg

import (
	"fmt"
	"math/bits"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// PieceGenerator appends the candidate moves of every piece on bb to dst.
type PieceGenerator func(dst []Move, bb BitBoard) []Move

// Generator dispatches move generation by piece kind. Kinds without an
// entry are reported as ErrUnsupportedPiece. A Generator is immutable once
// built and safe for concurrent use.
type Generator struct {
	maskEdges bool
	table     map[Kind]PieceGenerator
}

// Option configures a Generator.
type Option func(*Generator)

// WithEdgeMasking drops destinations that leave the board or wrap around
// the A/H files.
func WithEdgeMasking() Option {
	return func(g *Generator) { g.maskEdges = true }
}

// WithGenerator installs fn for kind, replacing any built-in rule.
func WithGenerator(kind Kind, fn PieceGenerator) Option {
	return func(g *Generator) { g.table[kind] = fn }
}

// NewGenerator returns a generator with the built-in pawn rule plus any
// generators supplied through options.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{table: make(map[Kind]PieceGenerator)}
	for _, o := range opts {
		o(g)
	}
	if _, ok := g.table[Pawn]; !ok {
		g.table[Pawn] = pawnGenerator(g.maskEdges)
	}
	return g
}

var defaultGenerator = NewGenerator()

// Generate returns the candidate moves for piece using the default,
// unmasked generator.
func Generate(cb ChessBoard, piece Piece) ([]Move, error) {
	return defaultGenerator.Generate(cb, piece)
}

// Supports reports whether the generator has a rule for kind.
func (g *Generator) Supports(kind Kind) bool {
	_, ok := g.table[kind]
	return ok
}

// SupportedKinds lists the kinds with a rule, in slot order.
func (g *Generator) SupportedKinds() []Kind {
	kinds := maps.Keys(g.table)
	slices.Sort(kinds)
	return kinds
}

// Generate returns the candidate moves for piece on cb.
func (g *Generator) Generate(cb ChessBoard, piece Piece) ([]Move, error) {
	return g.GenerateInto(make([]Move, 0, 48), cb, piece)
}

// GenerateInto appends the candidate moves for piece to dst. dst is returned
// unchanged on error.
func (g *Generator) GenerateInto(dst []Move, cb ChessBoard, piece Piece) ([]Move, error) {
	gen, ok := g.table[piece.Kind()]
	if !ok {
		log.Debug().Stringer("kind", piece.Kind()).Msg("no-generator-for-kind")
		return dst, fmt.Errorf("%w: %v (%v)", ErrUnsupportedPiece, piece.Kind(), piece)
	}
	bb, err := cb.Get(piece)
	if err != nil {
		return dst, err
	}
	return gen(dst, bb), nil
}

// ==========================
// Pawns
// ==========================

// pawnStep is one pawn move relative to its origin. edge holds the origin
// squares from which the step would leave the board or wrap a file.
type pawnStep struct {
	typ   MoveType
	delta Square
	edge  uint64
}

// White pawns advance toward higher squares, Black toward lower ones.
var pawnSteps = [2][3]pawnStep{
	{
		{Normal, 8, Row7},
		{Capture, 9, Row7 | FileH},
		{Capture, 7, Row7 | FileA},
	},
	{
		{Normal, -8, Row0},
		{Capture, -9, Row0 | FileA},
		{Capture, -7, Row0 | FileH},
	},
}

func sideIndex(s Side) int {
	if s == Black {
		return 1
	}
	return 0
}

// pawnGenerator emits a forward move and two diagonal captures per pawn.
// Without masking the offsets are applied unconditioned: edge captures
// wrap to the opposite file and last-row pawns step off the board.
func pawnGenerator(maskEdges bool) PieceGenerator {
	return func(dst []Move, bb BitBoard) []Move {
		steps := &pawnSteps[sideIndex(bb.Piece.Side())]
		m := bb.Mask
		for m != 0 {
			from := popFirst(&m)
			origin := SquareMask(from)
			for _, st := range steps {
				if maskEdges && origin&st.edge != 0 {
					continue
				}
				dst = append(dst, Move{Type: st.typ, From: from, To: from + st.delta})
			}
		}
		return dst
	}
}

// popFirst removes and returns the lowest occupied square of the mask.
func popFirst(mask *uint64) Square {
	s := Square(bits.LeadingZeros64(*mask))
	*mask &^= SquareMask(s)
	return s
}
