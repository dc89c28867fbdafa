package engine

import "github.com/lgbarn/cmdchess-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked: its square
// is present in some opponent piece's attack set.
func (p *Position) IsInCheck(colour chess.Colour) bool {
	king := p.kings[colour]
	if king == chess.NoSquare {
		return false
	}
	return p.IsSquareAttacked(king, colour.Opposite())
}

// IsSquareAttacked returns true if sq is controlled by byColour.
func (p *Position) IsSquareAttacked(sq chess.Square, byColour chess.Colour) bool {
	return p.attacks.IsAttackedBy(byColour, sq)
}
