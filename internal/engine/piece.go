package engine

import "github.com/lgbarn/cmdchess-go/internal/chess"

// pieceMoves appends the pseudo-legal moves of the non-pawn piece on from:
// every controlled square not occupied by a friendly piece.
func (p *Position) pieceMoves(moves []chess.Move, from chess.Square) []chess.Move {
	owner := p.board.Get(from)
	colour := owner.Colour()
	for _, to := range p.attacks.Attacks(from).Squares() {
		if p.board.Get(to).Is(colour) {
			continue
		}
		moves = append(moves, chess.Move{Class: chess.PieceMove, Piece: owner.Piece(), From: from, To: to})
	}
	return moves
}
