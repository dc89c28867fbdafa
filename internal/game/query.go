package game

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/cmdchess-go/internal/chess"
)

// LegalDestinations returns the squares the piece on sq may legally move to.
// Castles are reported by CastlingDestinations; an empty square, an
// opponent's piece or a finished game give the empty set.
func (g *Game) LegalDestinations(sq chess.Square) chess.SquareSet {
	var set chess.SquareSet
	for _, m := range g.LegalMoves() {
		if m.From == sq && !m.Class.IsCastle() {
			set = set.Add(m.To)
		}
	}
	return set
}

// CastlingDestinations returns the king destinations of the castles the
// side to move may play this turn.
func (g *Game) CastlingDestinations() chess.SquareSet {
	var set chess.SquareSet
	for _, m := range g.LegalMoves() {
		if m.Class.IsCastle() {
			set = set.Add(m.To)
		}
	}
	return set
}

// Movable returns, in board order, the squares of the pieces that have at
// least one legal move.
func (g *Game) Movable() []chess.Square {
	origins := make(map[chess.Square]struct{})
	for _, m := range g.LegalMoves() {
		origins[m.From] = struct{}{}
	}
	squares := maps.Keys(origins)
	slices.Sort(squares)
	return squares
}
