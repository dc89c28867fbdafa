package engine

import (
	"fmt"

	"github.com/lgbarn/cmdchess-go/internal/chess"
)

// AttackMap records, for every occupied square, the piece standing there and
// the set of squares it controls. Colour and piece type of an entry are those
// of its owner, so the map is keyed by (colour, piece, square) through the square.
type AttackMap struct {
	owners  [chess.NumSquares]chess.Occupant
	attacks [chess.NumSquares]chess.SquareSet
}

// ComputeAttacks returns the squares controlled by occupant o standing on sq.
// Short-reach pieces take one step along each vector; long-reach pieces walk
// each vector up to and including the first occupied square. Own pieces are
// included: a defended square is still controlled. Pawn advances are not attacks.
func ComputeAttacks(board *chess.Board, sides chess.Sides, sq chess.Square, o chess.Occupant) chess.SquareSet {
	if o == chess.Empty {
		return 0
	}
	piece := o.Piece()
	var set chess.SquareSet
	for _, v := range sides.Vectors(o.Colour(), piece) {
		if piece.Movement().Reach == chess.LongReach {
			set |= walkRay(board, sq, v)
			continue
		}
		if target := sq.Offset(v); target != chess.NoSquare {
			set = set.Add(target)
		}
	}
	return set
}

// Build recomputes every entry from board.
func (m *AttackMap) Build(board *chess.Board, sides chess.Sides) {
	*m = AttackMap{}
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if o := board.Get(sq); o != chess.Empty {
			m.owners[sq] = o
			m.attacks[sq] = ComputeAttacks(board, sides, sq, o)
		}
	}
}

// Owner returns the piece whose entry is stored under sq.
func (m *AttackMap) Owner(sq chess.Square) chess.Occupant {
	return m.owners[sq]
}

// Attacks returns the controlled set of the piece on sq.
func (m *AttackMap) Attacks(sq chess.Square) chess.SquareSet {
	return m.attacks[sq]
}

// IsAttackedBy reports whether any piece of colour controls sq.
func (m *AttackMap) IsAttackedBy(colour chess.Colour, sq chess.Square) bool {
	for from, owner := range m.owners {
		if owner.Is(colour) && m.attacks[from].Has(sq) {
			return true
		}
	}
	return false
}

// Controlled returns the union of all squares controlled by colour.
func (m *AttackMap) Controlled(colour chess.Colour) chess.SquareSet {
	var set chess.SquareSet
	for from, owner := range m.owners {
		if owner.Is(colour) {
			set |= m.attacks[from]
		}
	}
	return set
}

// Entries returns the attack set of every piece of colour and type, keyed by square.
func (m *AttackMap) Entries(colour chess.Colour, piece chess.Piece) map[chess.Square]chess.SquareSet {
	want := chess.MakeOccupant(colour, piece)
	entries := make(map[chess.Square]chess.SquareSet)
	for from, owner := range m.owners {
		if owner == want {
			entries[chess.Square(from)] = m.attacks[from]
		}
	}
	return entries
}

// Diff returns a description of the first entry where m and other disagree, or "".
func (m *AttackMap) Diff(other *AttackMap) string {
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if m.owners[sq] != other.owners[sq] || m.attacks[sq] != other.attacks[sq] {
			return fmt.Sprintf("%v: %v %v, want %v %v", sq,
				m.owners[sq], m.attacks[sq], other.owners[sq], other.attacks[sq])
		}
	}
	return ""
}
