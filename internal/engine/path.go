package engine

import "github.com/lgbarn/cmdchess-go/internal/chess"

// walkRay returns the squares a slider on from controls along v: every square
// up to and including the first occupied one.
func walkRay(board *chess.Board, from chess.Square, v chess.Vector) chess.SquareSet {
	var set chess.SquareSet
	for sq := from.Offset(v); sq != chess.NoSquare; sq = sq.Offset(v) {
		set = set.Add(sq)
		if !board.IsEmpty(sq) {
			break
		}
	}
	return set
}

// rayMask returns every square along v from (excluding) from to the board edge.
func rayMask(from chess.Square, v chess.Vector) chess.SquareSet {
	var set chess.SquareSet
	for sq := from.Offset(v); sq != chess.NoSquare; sq = sq.Offset(v) {
		set = set.Add(sq)
	}
	return set
}

// directionTo returns the unit vector from one square towards another on the
// same file, rank or diagonal. ok is false when they share no line.
func directionTo(from, to chess.Square) (chess.Vector, bool) {
	df := to.File() - from.File()
	dr := to.Rank() - from.Rank()
	if df == 0 && dr == 0 {
		return chess.Vector{}, false
	}
	if df != 0 && dr != 0 && abs(df) != abs(dr) {
		return chess.Vector{}, false
	}
	return chess.Vector{DF: sign(df), DR: sign(dr)}, true
}
