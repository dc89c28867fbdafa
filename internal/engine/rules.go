package engine

import (
	"github.com/lgbarn/cmdchess-go/internal/chess"
)

// material counts one side's non-king pieces.
type material struct {
	pieces int
	minors int
}

// countMaterial tallies the non-king pieces of each colour.
func countMaterial(board *chess.Board) [chess.NumColours]material {
	var counts [chess.NumColours]material
	for _, o := range board.Squares {
		if o == chess.Empty || o.Piece() == chess.King {
			continue
		}
		counts[o.Colour()].pieces++
		if o.Piece().IsMinor() {
			counts[o.Colour()].minors++
		}
	}
	return counts
}

// HasInsufficientMaterial returns true if one side has only its king and the
// other has at most its king plus a single bishop or knight. Other drawn
// balances (two knights, same-coloured bishops) are deliberately not recognised.
func HasInsufficientMaterial(board *chess.Board) bool {
	counts := countMaterial(board)
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if counts[colour].pieces != 0 {
			continue
		}
		other := counts[colour.Opposite()]
		if other.pieces == 0 || (other.pieces == 1 && other.minors == 1) {
			return true
		}
	}
	return false
}

// HasInsufficientMaterial applies the rule to the position's board.
func (p *Position) HasInsufficientMaterial() bool {
	return HasInsufficientMaterial(&p.board)
}
