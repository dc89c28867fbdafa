package game

import (
	"fmt"

	"github.com/apex/log"

	"github.com/lgbarn/cmdchess-go/internal/chess"
	"github.com/lgbarn/cmdchess-go/internal/config"
	"github.com/lgbarn/cmdchess-go/internal/engine"
	"github.com/lgbarn/cmdchess-go/internal/errors"
	"github.com/lgbarn/cmdchess-go/internal/parser"
)

// Game is one session's canonical position plus the state machine deciding
// whether play may continue. It is not safe for concurrent use.
type Game struct {
	pos    *engine.Position
	status Status
	// winner is meaningful for Checkmate and Resigned only.
	winner chess.Colour
	logger log.Interface
}

// New creates a game from the configured start position.
func New(cfg *config.Config) (*Game, error) {
	if err := cfg.Game.Validate(); err != nil {
		return nil, err
	}
	pos := engine.NewPosition(cfg.Game.Sides)
	if cfg.Game.FEN != "" {
		var err error
		if pos, err = engine.NewPositionFromFEN(cfg.Game.FEN); err != nil {
			return nil, err
		}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Log
	}
	return FromPosition(pos, logger), nil
}

// FromPosition wraps a set-up position. The game takes ownership of pos.
func FromPosition(pos *engine.Position, logger log.Interface) *Game {
	g := &Game{pos: pos, logger: logger}
	g.Evaluate()
	return g
}

// Evaluate classifies the position for the side to move and stores the
// result. Resignation and agreed draws are kept until a move is taken back.
func (g *Game) Evaluate() Status {
	if g.status == Resigned || g.status == DrawAgreed {
		return g.status
	}
	colour := g.pos.ToMove()
	inCheck := g.pos.IsInCheck(colour)
	hasMoves := g.pos.HasLegalMoves()

	switch {
	case inCheck && !hasMoves:
		g.status = Checkmate
		g.winner = colour.Opposite()
	case !hasMoves:
		g.status = Stalemate
	case inCheck:
		g.status = Check
	case g.pos.HasInsufficientMaterial():
		g.status = DrawInsufficientMaterial
	default:
		g.status = Ongoing
	}

	if g.status.IsTerminal() {
		g.logger.WithFields(log.Fields{
			"status": g.status.String(),
			"ply":    g.Plies(),
			"result": g.Result(),
		}).Info("game over")
	}
	return g.status
}

// Status returns the status computed at the start of the current turn.
func (g *Game) Status() Status {
	return g.status
}

// Winner returns the winning colour of a decided game.
func (g *Game) Winner() (chess.Colour, bool) {
	if g.status == Checkmate || g.status == Resigned {
		return g.winner, true
	}
	return chess.White, false
}

// Result returns the game result in PGN form: "1-0", "0-1", "1/2-1/2" or "*".
func (g *Game) Result() string {
	switch {
	case g.status.IsDraw():
		return "1/2-1/2"
	case g.status == Checkmate || g.status == Resigned:
		if g.winner == chess.White {
			return "1-0"
		}
		return "0-1"
	}
	return "*"
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	return g.pos.ToMove()
}

// Plies returns the number of half-moves played.
func (g *Game) Plies() int {
	return g.pos.History().Plies()
}

// FirstMover returns the colour that made, or will make, the first move.
func (g *Game) FirstMover() chess.Colour {
	return g.pos.History().First()
}

// Moves returns the move records in playing order.
func (g *Game) Moves() []chess.MoveRecord {
	return g.pos.History().Moves()
}

// CanRedo reports whether an undone move is waiting to be replayed.
func (g *Game) CanRedo() bool {
	return g.pos.History().RedoLen() > 0
}

// Board returns a copy of the board.
func (g *Game) Board() chess.Board {
	return g.pos.Board()
}

// Sides returns the colour configuration of the game.
func (g *Game) Sides() chess.Sides {
	return g.pos.Sides()
}

// Controlled returns every square colour's pieces attack.
func (g *Game) Controlled(colour chess.Colour) chess.SquareSet {
	m := g.pos.AttackMap()
	return m.Controlled(colour)
}

// FEN returns the current position in Forsyth-Edwards Notation.
func (g *Game) FEN() string {
	return g.pos.FEN()
}

// Verify checks the incrementally maintained attack map against a full
// recomputation.
func (g *Game) Verify() error {
	return g.pos.Verify()
}

// LegalMoves returns the legal moves of the side to move. A finished game
// has none.
func (g *Game) LegalMoves() []chess.Move {
	if g.status.IsTerminal() {
		return nil
	}
	return g.pos.LegalMoves()
}

// Play decodes move text and submits it.
func (g *Game) Play(text string) (chess.MoveRecord, error) {
	req, err := parser.DecodeMove(text)
	if err != nil {
		return chess.MoveRecord{}, &errors.MoveError{Err: err, Ply: g.Plies() + 1, MoveText: text}
	}
	rec, err := g.Submit(req)
	if err != nil {
		if me, ok := err.(*errors.MoveError); ok {
			me.MoveText = text
			return rec, me
		}
		return rec, &errors.MoveError{Err: err, Ply: g.Plies() + 1, MoveText: text}
	}
	return rec, nil
}

// Submit validates req against the legal move set and applies the move it
// names. Every error is returned before the position is touched.
func (g *Game) Submit(req chess.MoveRequest) (chess.MoveRecord, error) {
	if g.status.IsTerminal() {
		return chess.MoveRecord{}, fmt.Errorf("%s: %w", g.status, errors.ErrGameOver)
	}
	move, specifier, err := g.resolve(req)
	if err != nil {
		return chess.MoveRecord{}, err
	}
	rec := g.pos.Apply(move, req.Promotion, specifier)
	g.logMove("move applied", rec)
	g.Evaluate()
	return rec, nil
}

// Undo takes back the last move, whoever made it. Undoing after a
// resignation or agreed draw also resumes the game.
func (g *Game) Undo() (chess.MoveRecord, error) {
	if g.Plies() == 0 {
		return chess.MoveRecord{}, errors.ErrNoMoveToUndo
	}
	rec, err := g.pos.Undo(g.pos.ToMove().Opposite())
	if err != nil {
		return chess.MoveRecord{}, err
	}
	g.logMove("move undone", rec)
	g.status = Ongoing
	g.Evaluate()
	return rec, nil
}

// Redo replays the most recently undone move.
func (g *Game) Redo() (chess.MoveRecord, error) {
	if g.status.IsTerminal() {
		return chess.MoveRecord{}, fmt.Errorf("%s: %w", g.status, errors.ErrGameOver)
	}
	rec, err := g.pos.Redo()
	if err != nil {
		return chess.MoveRecord{}, err
	}
	g.logMove("move redone", rec)
	g.Evaluate()
	return rec, nil
}

// Resign ends the game in favour of the opponent of the side to move.
func (g *Game) Resign() error {
	if g.status.IsTerminal() {
		return fmt.Errorf("%s: %w", g.status, errors.ErrGameOver)
	}
	g.status = Resigned
	g.winner = g.pos.ToMove().Opposite()
	g.logger.WithFields(log.Fields{
		"colour": g.pos.ToMove().String(),
		"ply":    g.Plies(),
	}).Info("resigned")
	return nil
}

// AgreeDraw ends the game as a draw accepted by both players.
func (g *Game) AgreeDraw() error {
	if g.status.IsTerminal() {
		return fmt.Errorf("%s: %w", g.status, errors.ErrGameOver)
	}
	g.status = DrawAgreed
	g.logger.WithField("ply", g.Plies()).Info("draw agreed")
	return nil
}

func (g *Game) logMove(msg string, rec chess.MoveRecord) {
	g.logger.WithFields(log.Fields{
		"ply":    g.Plies(),
		"colour": rec.Colour.String(),
		"move":   rec.Notation(),
	}).Debug(msg)
}
