package hashing

import (
	"math/rand"

	"github.com/lgbarn/cmdchess-go/internal/chess"
)

// zobristSeed fixes the key tables so hashes are stable across runs.
const zobristSeed = 0x5eed

var (
	zobristPieces [chess.NumColours][chess.NumPieceValues][chess.NumSquares]uint64
	zobristBlack  uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed)) //nolint:gosec // G404: hash keys, not secrets
	for colour := range zobristPieces {
		for piece := range zobristPieces[colour] {
			for sq := range zobristPieces[colour][piece] {
				zobristPieces[colour][piece][sq] = rng.Uint64()
			}
		}
	}
	zobristBlack = rng.Uint64()
}

// GenerateZobristHash hashes the placement of b and the side to move.
func GenerateZobristHash(b *chess.Board, toMove chess.Colour) uint64 {
	var hash uint64
	for sq, o := range b.Squares {
		if o.IsEmpty() {
			continue
		}
		hash ^= zobristPieces[o.Colour()][o.Piece()][sq]
	}
	if toMove == chess.Black {
		hash ^= zobristBlack
	}
	return hash
}

// HashMoveSequence hashes the notation of every record in order.
func HashMoveSequence(records []chess.MoveRecord) uint64 {
	var hash uint64
	multiplier := uint64(31)

	for _, rec := range records {
		for _, c := range rec.Notation() {
			hash = hash*multiplier + uint64(c)
		}
		// Separator between moves.
		hash = hash*multiplier + ' '
	}
	return hash
}
