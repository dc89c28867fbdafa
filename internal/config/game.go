package config

import (
	"fmt"

	"github.com/lgbarn/cmdchess-go/internal/chess"
	"github.com/lgbarn/cmdchess-go/internal/engine"
	"github.com/lgbarn/cmdchess-go/internal/errors"
)

// GameConfig holds the rules a game is set up with.
type GameConfig struct {
	// Sides is the per-colour back rank and direction table.
	Sides chess.Sides

	// FEN is the start position; empty means the standard arrangement.
	// Restored logs are replayed from it.
	FEN string
}

// NewGameConfig creates a GameConfig for a standard game.
func NewGameConfig() *GameConfig {
	return &GameConfig{Sides: chess.StandardSides()}
}

// Validate checks that the sides face each other and the FEN parses.
func (g *GameConfig) Validate() error {
	white, black := g.Sides.BackRank(chess.White), g.Sides.BackRank(chess.Black)
	if white+black != chess.BoardSize-1 || (white != 0 && black != 0) {
		return fmt.Errorf("back ranks %d and %d are not opposite: %w", white+1, black+1, errors.ErrInvalidConfig)
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		back := g.Sides.BackRank(colour)
		if g.Sides.Direction(colour) != sideDirection(back) {
			return fmt.Errorf("%v pawns must advance away from rank %d: %w", colour, back+1, errors.ErrInvalidConfig)
		}
	}
	if g.FEN == "" {
		return nil
	}
	if g.Sides != chess.StandardSides() {
		return fmt.Errorf("FEN start needs standard sides: %w", errors.ErrInvalidConfig)
	}
	if _, err := engine.NewPositionFromFEN(g.FEN); err != nil {
		return fmt.Errorf("%v: %w", err, errors.ErrInvalidConfig)
	}
	return nil
}

// sideDirection is the pawn direction of a side whose back rank is back.
func sideDirection(back int) int {
	if back == 0 {
		return 1
	}
	return -1
}
