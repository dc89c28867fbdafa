package engine

import (
	"fmt"

	"github.com/lgbarn/cmdchess-go/internal/chess"
	"github.com/lgbarn/cmdchess-go/internal/errors"
)

// Apply executes a legal move for the side to move, records it in History and
// clears the redo stack. The caller guarantees legality; there are no error
// conditions. promotion is the piece a promoting pawn becomes.
func (p *Position) Apply(move chess.Move, promotion chess.Piece, specifier string) chess.MoveRecord {
	rec := p.newRecord(move, promotion, specifier)
	p.execute(rec)
	p.history.ClearRedo()
	return rec
}

// Undo reverts the last move of colour, which must be the most recent mover,
// and pushes the undone record onto the redo stack.
func (p *Position) Undo(colour chess.Colour) (chess.MoveRecord, error) {
	if p.history.Len(colour) == 0 {
		return chess.MoveRecord{}, fmt.Errorf("%v has no moves: %w", colour, errors.ErrNoMoveToUndo)
	}
	if colour != p.toMove.Opposite() {
		return chess.MoveRecord{}, fmt.Errorf("%v did not make the last move: %w", colour, errors.ErrNoMoveToUndo)
	}
	rec, _ := p.history.Pop(colour)
	p.revert(rec)
	p.history.PushRedo(rec)
	return rec, nil
}

// Redo re-applies the most recently undone move.
func (p *Position) Redo() (chess.MoveRecord, error) {
	rec, ok := p.history.PopRedo()
	if !ok {
		return chess.MoveRecord{}, errors.ErrNoMoveToRedo
	}
	if rec.Colour != p.toMove {
		p.history.PushRedo(rec)
		return chess.MoveRecord{}, fmt.Errorf("redo belongs to %v: %w", rec.Colour, errors.ErrNoMoveToRedo)
	}
	p.execute(rec)
	return rec, nil
}

// newRecord builds the immutable record of move against the current board.
func (p *Position) newRecord(move chess.Move, promotion chess.Piece, specifier string) chess.MoveRecord {
	colour := p.toMove
	rec := chess.MoveRecord{
		Class:            move.Class,
		Colour:           colour,
		Piece:            move.Piece,
		From:             move.From,
		To:               move.To,
		Captured:         p.board.Get(move.To),
		CastlingRookFile: -1,
		EnPassantCapture: chess.NoSquare,
		Specifier:        specifier,
		RightsBefore:     p.rights,
	}

	switch move.Class {
	case chess.KingsideCastle, chess.QueensideCastle:
		rec.Piece = chess.King
		rec.CastlingRookFile = move.Wing().RookFile()
	case chess.EnPassantPawnMove:
		// The victim stands one rank behind the destination, on the same file.
		rec.EnPassantCapture = chess.NewSquare(move.To.File(), move.To.Rank()-p.sides.Direction(colour))
		rec.Captured = p.board.Get(rec.EnPassantCapture)
	case chess.PawnMoveWithPromotion:
		if promotion == chess.NoPiece {
			promotion = move.Promotion
		}
		if promotion == chess.NoPiece {
			promotion = chess.Queen
		}
		rec.Promotion = promotion
	}
	return rec
}

// castlingRookSquares returns the rook's home and castled squares for rec.
func (p *Position) castlingRookSquares(rec chess.MoveRecord) (home, castled chess.Square) {
	back := p.sides.BackRank(rec.Colour)
	step := sign(rec.CastlingRookFile - chess.KingHomeFile)
	return chess.NewSquare(rec.CastlingRookFile, back), chess.NewSquare(chess.KingHomeFile+step, back)
}

// execute performs rec on the board, updates castling rights, king tracking,
// the side to move and History, then repairs the attack map.
func (p *Position) execute(rec chess.MoveRecord) {
	colour := rec.Colour
	changed := make([]chess.Square, 0, 6)

	if rec.IsCastle() {
		home, castled := p.castlingRookSquares(rec)
		p.setSquare(castled, p.board.Get(home))
		p.setSquare(home, chess.Empty)
		changed = append(changed, home, castled)
	}
	if rec.EnPassantCapture != chess.NoSquare {
		p.setSquare(rec.EnPassantCapture, chess.Empty)
		changed = append(changed, rec.EnPassantCapture)
	}

	placed := chess.MakeOccupant(colour, rec.Piece)
	if rec.Promotion != chess.NoPiece {
		placed = chess.MakeOccupant(colour, rec.Promotion)
	}
	p.setSquare(rec.From, chess.Empty)
	p.setSquare(rec.To, placed)
	changed = append(changed, rec.From, rec.To)

	if rec.Piece == chess.King {
		p.kings[colour] = rec.To
	}
	if rec.Captured.Piece() == chess.King {
		// Only reachable inside legality simulation of a broken position.
		p.kings[colour.Opposite()] = chess.NoSquare
	}
	p.updateCastlingRights(rec)
	p.toMove = colour.Opposite()
	p.history.Push(rec)

	p.refresh(changed)
}

// revert is the exact inverse of execute for rec.
func (p *Position) revert(rec chess.MoveRecord) {
	colour := rec.Colour
	changed := make([]chess.Square, 0, 6)

	if rec.EnPassantCapture != chess.NoSquare {
		p.setSquare(rec.To, chess.Empty)
		p.setSquare(rec.EnPassantCapture, rec.Captured)
		changed = append(changed, rec.EnPassantCapture)
	} else {
		p.setSquare(rec.To, rec.Captured)
	}
	// A promoted piece goes back as the pawn it was.
	p.setSquare(rec.From, chess.MakeOccupant(colour, rec.Piece))
	changed = append(changed, rec.To, rec.From)

	if rec.IsCastle() {
		home, castled := p.castlingRookSquares(rec)
		p.setSquare(home, p.board.Get(castled))
		p.setSquare(castled, chess.Empty)
		changed = append(changed, castled, home)
	}

	if rec.Piece == chess.King {
		p.kings[colour] = rec.From
	}
	if rec.Captured.Piece() == chess.King {
		p.kings[colour.Opposite()] = rec.To
	}
	p.rights = rec.RightsBefore
	p.toMove = colour

	p.refresh(changed)
}

// refresh brings the attack map back in line with the board after the
// occupants of changed squares were altered. Entries on changed squares are
// deleted or recomputed from scratch. Every other sliding piece whose attack
// set contained a changed square has only the ray through that square
// re-walked: squares newly revealed behind a vacated square are added
// (discovery) and squares now hidden behind an occupied one are removed
// (obstruction).
func (p *Position) refresh(changed []chess.Square) {
	changedSet := chess.SquareSetOf(changed...)

	for _, sq := range changedSet.Squares() {
		o := p.board.Get(sq)
		if o == chess.Empty {
			p.setEntry(sq, chess.Empty, 0)
			continue
		}
		p.setEntry(sq, o, ComputeAttacks(&p.board, p.sides, sq, o))
	}

	for from := chess.Square(0); from < chess.NumSquares; from++ {
		owner := p.attacks.owners[from]
		if owner == chess.Empty || changedSet.Has(from) || !owner.Piece().IsSlider() {
			continue
		}
		set := p.attacks.attacks[from]
		hit := set & changedSet
		if hit == 0 {
			continue
		}
		repaired := set
		var done [3][3]bool
		for _, target := range hit.Squares() {
			v, ok := directionTo(from, target)
			if !ok || done[v.DF+1][v.DR+1] {
				continue
			}
			done[v.DF+1][v.DR+1] = true
			repaired = p.repairRay(repaired, from, v)
		}
		if repaired != set {
			p.setEntry(from, owner, repaired)
		}
	}
}

// repairRay re-walks the ray from a slider along v and returns its attack set
// with discovered squares added and obstructed squares removed.
func (p *Position) repairRay(set chess.SquareSet, from chess.Square, v chess.Vector) chess.SquareSet {
	before := set & rayMask(from, v)
	after := walkRay(&p.board, from, v)
	discovered := after &^ before
	obstructed := before &^ after
	return (set | discovered) &^ obstructed
}
