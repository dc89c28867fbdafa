package engine

import "github.com/lgbarn/cmdchess-go/internal/chess"

// updateCastlingRights removes castling rights when a king or rook leaves its
// home square, or when a rook is captured on it. Rights never come back except
// through undo, which restores rec.RightsBefore.
func (p *Position) updateCastlingRights(rec chess.MoveRecord) {
	colour := rec.Colour
	if rec.Piece == chess.King {
		p.rights.Revoke(colour, chess.Kingside)
		p.rights.Revoke(colour, chess.Queenside)
	}
	p.revokeRookHome(colour, rec.From)
	p.revokeRookHome(colour.Opposite(), rec.To)
}

// revokeRookHome removes colour's right on the wing whose rook starts on sq.
func (p *Position) revokeRookHome(colour chess.Colour, sq chess.Square) {
	if sq.Rank() != p.sides.BackRank(colour) {
		return
	}
	for _, wing := range []chess.Wing{chess.Kingside, chess.Queenside} {
		if sq.File() == wing.RookFile() {
			p.rights.Revoke(colour, wing)
		}
	}
}

// CanCastle reports whether colour may castle on wing right now: the right is
// still held, the king is not attacked, every square between king and rook is
// empty, and neither the king's home square nor any square it crosses,
// destination included, is attacked by the opponent.
func (p *Position) CanCastle(colour chess.Colour, wing chess.Wing) bool {
	if !p.rights.Has(colour, wing) {
		return false
	}
	back := p.sides.BackRank(colour)
	kingHome := chess.NewSquare(chess.KingHomeFile, back)
	rookHome := chess.NewSquare(wing.RookFile(), back)
	if p.board.Get(kingHome) != chess.MakeOccupant(colour, chess.King) ||
		p.board.Get(rookHome) != chess.MakeOccupant(colour, chess.Rook) {
		return false
	}

	opponent := colour.Opposite()
	if p.IsSquareAttacked(kingHome, opponent) {
		return false
	}
	// The rook sees the king only when everything in between is empty.
	if !p.attacks.Attacks(rookHome).Has(kingHome) {
		return false
	}
	step := sign(wing.RookFile() - chess.KingHomeFile)
	for i := 1; i <= 2; i++ {
		if p.IsSquareAttacked(chess.NewSquare(chess.KingHomeFile+i*step, back), opponent) {
			return false
		}
	}
	return true
}

// castlingMoves returns the castles available to colour this turn.
// They are keyed by the king's home square as origin.
func (p *Position) castlingMoves(colour chess.Colour) []chess.Move {
	var moves []chess.Move
	back := p.sides.BackRank(colour)
	kingHome := chess.NewSquare(chess.KingHomeFile, back)
	for _, wing := range []chess.Wing{chess.Kingside, chess.Queenside} {
		if !p.CanCastle(colour, wing) {
			continue
		}
		step := sign(wing.RookFile() - chess.KingHomeFile)
		moves = append(moves, chess.Move{
			Class: wing.Class(),
			Piece: chess.King,
			From:  kingHome,
			To:    chess.NewSquare(chess.KingHomeFile+2*step, back),
		})
	}
	return moves
}
