// Package engine provides chess move generation, validation and board manipulation.
package engine

import (
	"fmt"

	"github.com/lgbarn/cmdchess-go/internal/chess"
)

// Position is the canonical Board / AttackMap / History triple of a game,
// together with the castling rights and the side to move. Only the move
// executor (Apply, Undo, Redo) mutates it.
type Position struct {
	sides   chess.Sides
	board   chess.Board
	attacks AttackMap
	rights  chess.CastlingRights
	history History
	toMove  chess.Colour
	kings   [chess.NumColours]chess.Square

	// initialEP is the en passant target of a set-up position, honoured
	// until the first move is made.
	initialEP chess.Square

	journal   *journal
	recording bool
}

// NewPosition returns the standard starting position laid out by sides.
func NewPosition(sides chess.Sides) *Position {
	p := NewEmptyPosition(sides, chess.White)
	p.board.SetupInitialPosition(sides)
	p.rights = chess.AllCastlingRights()
	p.sync()
	return p
}

// NewEmptyPosition returns a position with no pieces, no castling rights and
// toMove to play. Pieces are added with Place before the first move.
func NewEmptyPosition(sides chess.Sides, toMove chess.Colour) *Position {
	return &Position{
		sides:     sides,
		history:   NewHistory(toMove),
		toMove:    toMove,
		kings:     [chess.NumColours]chess.Square{chess.NoSquare, chess.NoSquare},
		initialEP: chess.NoSquare,
	}
}

// Place puts o on sq while setting up a position and rebuilds the attack map.
func (p *Position) Place(sq chess.Square, o chess.Occupant) {
	p.board.Set(sq, o)
	p.sync()
}

// SetCastlingRights replaces the castling rights while setting up a position.
func (p *Position) SetCastlingRights(rights chess.CastlingRights) {
	p.rights = rights
}

// sync rebuilds every derived structure from the board.
func (p *Position) sync() {
	p.attacks.Build(&p.board, p.sides)
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		p.kings[colour] = p.board.FindKing(colour)
	}
}

// Sides returns the colour configuration the position was built with.
func (p *Position) Sides() chess.Sides {
	return p.sides
}

// Board returns a copy of the board.
func (p *Position) Board() chess.Board {
	return p.board
}

// At returns the occupant of sq.
func (p *Position) At(sq chess.Square) chess.Occupant {
	return p.board.Get(sq)
}

// AttackMap returns a copy of the attack map.
func (p *Position) AttackMap() AttackMap {
	return p.attacks
}

// Attacks returns the controlled set of the piece on sq.
func (p *Position) Attacks(sq chess.Square) chess.SquareSet {
	return p.attacks.Attacks(sq)
}

// CastlingRights returns the current castling rights.
func (p *Position) CastlingRights() chess.CastlingRights {
	return p.rights
}

// ToMove returns the side to move.
func (p *Position) ToMove() chess.Colour {
	return p.toMove
}

// History returns the move history.
func (p *Position) History() *History {
	return &p.history
}

// KingSquare returns the square of colour's king, or NoSquare.
func (p *Position) KingSquare(colour chess.Colour) chess.Square {
	return p.kings[colour]
}

// Clone returns an independent copy of the position.
func (p *Position) Clone() *Position {
	c := *p
	c.history = p.history.clone()
	c.journal = nil
	c.recording = false
	return &c
}

// Verify recomputes the attack map from the board and reports the first
// entry that differs from the incrementally maintained one. A non-nil result
// is a defect in the executor, never a runtime condition.
func (p *Position) Verify() error {
	var fresh AttackMap
	fresh.Build(&p.board, p.sides)
	if diff := p.attacks.Diff(&fresh); diff != "" {
		return fmt.Errorf("attack map out of sync at %s", diff)
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if got, want := p.kings[colour], p.board.FindKing(colour); got != want {
			return fmt.Errorf("%v king tracked on %v, found on %v", colour, got, want)
		}
	}
	return nil
}
