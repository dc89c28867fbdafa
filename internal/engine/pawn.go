package engine

import "github.com/lgbarn/cmdchess-go/internal/chess"

// pawnMoves appends the pseudo-legal moves of the pawn on from: a single
// advance onto an empty square, a double advance from the starting rank when
// both squares ahead are empty, and diagonal captures of opponent pieces or
// en passant.
func (p *Position) pawnMoves(moves []chess.Move, from chess.Square) []chess.Move {
	colour := p.board.Get(from).Colour()
	dir := p.sides.Direction(colour)
	promotionRank := p.sides.PromotionRank(colour)

	class := func(to chess.Square, normal chess.MoveClass) chess.MoveClass {
		if to.Rank() == promotionRank {
			return chess.PawnMoveWithPromotion
		}
		return normal
	}

	single := chess.NewSquare(from.File(), from.Rank()+dir)
	if single != chess.NoSquare && p.board.IsEmpty(single) {
		moves = append(moves, chess.Move{Class: class(single, chess.PawnMove), Piece: chess.Pawn, From: from, To: single})

		double := chess.NewSquare(from.File(), from.Rank()+2*dir)
		if from.Rank() == p.sides.PawnRank(colour) && double != chess.NoSquare && p.board.IsEmpty(double) {
			moves = append(moves, chess.Move{Class: chess.PawnDoubleAdvance, Piece: chess.Pawn, From: from, To: double})
		}
	}

	ep := p.EnPassantTarget(colour)
	for _, to := range p.attacks.Attacks(from).Squares() {
		switch {
		case p.board.Get(to).Is(colour.Opposite()):
			moves = append(moves, chess.Move{Class: class(to, chess.PawnMove), Piece: chess.Pawn, From: from, To: to})
		case to == ep:
			moves = append(moves, chess.Move{Class: chess.EnPassantPawnMove, Piece: chess.Pawn, From: from, To: to})
		}
	}
	return moves
}

// EnPassantTarget returns the square colour's pawns may capture into en
// passant: the square passed over by the opponent's pawn when the immediately
// preceding move was its two-square advance. NoSquare otherwise.
func (p *Position) EnPassantTarget(colour chess.Colour) chess.Square {
	if colour != p.toMove {
		return chess.NoSquare
	}
	if p.history.Plies() == 0 {
		return p.initialEP
	}
	last, ok := p.history.Last(colour.Opposite())
	if !ok || last.Class != chess.PawnDoubleAdvance {
		return chess.NoSquare
	}
	return chess.NewSquare(last.To.File(), (last.From.Rank()+last.To.Rank())/2)
}
