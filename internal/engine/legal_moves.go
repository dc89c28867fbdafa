package engine

import "github.com/lgbarn/cmdchess-go/internal/chess"

// PseudoLegalMoves returns the moves of colour that follow piece movement
// rules and current occupancy, before king safety is considered. Castles are
// not included; see LegalMoves.
func (p *Position) PseudoLegalMoves(colour chess.Colour) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	for from := chess.Square(0); from < chess.NumSquares; from++ {
		o := p.board.Get(from)
		if !o.Is(colour) {
			continue
		}
		if o.Piece() == chess.Pawn {
			moves = p.pawnMoves(moves, from)
		} else {
			moves = p.pieceMoves(moves, from)
		}
	}
	return moves
}

// LegalMoves returns every legal move of the side to move, castles included.
func (p *Position) LegalMoves() []chess.Move {
	colour := p.toMove
	candidates := p.PseudoLegalMoves(colour)
	legal := make([]chess.Move, 0, len(candidates)+2)

	scratch := p.Clone()
	for _, move := range candidates {
		if scratch.leavesKingSafe(move) {
			legal = append(legal, move)
		}
	}
	return append(legal, p.castlingMoves(colour)...)
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func (p *Position) HasLegalMoves() bool {
	colour := p.toMove
	if len(p.castlingMoves(colour)) > 0 {
		return true
	}
	scratch := p.Clone()
	for _, move := range p.PseudoLegalMoves(colour) {
		if scratch.leavesKingSafe(move) {
			return true
		}
	}
	return false
}

// leavesKingSafe simulates move with the executor's apply semantics, tests
// whether the mover's king is attacked afterwards, and rolls the simulation
// back. p must be a scratch copy owned by the caller.
func (p *Position) leavesKingSafe(move chess.Move) bool {
	colour := p.toMove
	p.begin()
	p.execute(p.newRecord(move, move.Promotion, ""))
	safe := !p.IsInCheck(colour)
	p.rollback()
	return safe
}
