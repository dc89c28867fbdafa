package game

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/cmdchess-go/internal/chess"
	"github.com/lgbarn/cmdchess-go/internal/errors"
)

// resolve finds the single legal move req names and the specifier the move
// log needs to identify its piece.
func (g *Game) resolve(req chess.MoveRequest) (chess.Move, string, error) {
	legal := g.pos.LegalMoves()
	moveErr := func(err error, candidates []string) error {
		return &errors.MoveError{Err: err, Ply: g.Plies() + 1, Candidates: candidates}
	}

	if req.Castle != chess.NoWing {
		for _, m := range legal {
			if m.Class == req.Castle.Class() {
				return m, "", g.checkPromotion(m, req)
			}
		}
		return chess.Move{}, "", moveErr(fmt.Errorf("%s not available: %w", req.Castle, errors.ErrIllegalMoveRequest), nil)
	}

	piece, castles := req.Piece, false
	if piece == chess.NoPiece {
		// Coordinate input names the origin square instead of the piece.
		if req.FromFile < 0 || req.FromRank < 0 {
			return chess.Move{}, "", moveErr(fmt.Errorf("no piece or origin given: %w", errors.ErrIllegalMoveRequest), nil)
		}
		from := chess.NewSquare(req.FromFile, req.FromRank)
		o := g.pos.At(from)
		if !o.Is(g.pos.ToMove()) {
			return chess.Move{}, "", moveErr(fmt.Errorf("no %v piece on %v: %w", g.pos.ToMove(), from, errors.ErrIllegalMoveRequest), nil)
		}
		piece, castles = o.Piece(), true
	}

	var matches []chess.Move
	for _, m := range legal {
		if m.Piece != piece || m.To != req.To || !req.Matches(m.From) {
			continue
		}
		if m.Class.IsCastle() && !castles {
			continue
		}
		matches = append(matches, m)
	}

	switch len(matches) {
	case 0:
		return chess.Move{}, "", moveErr(fmt.Errorf("%v cannot reach %v: %w", piece, req.To, errors.ErrIllegalMoveRequest), nil)
	case 1:
	default:
		candidates := make([]string, len(matches))
		for i, m := range matches {
			candidates[i] = m.From.String()
		}
		slices.Sort(candidates)
		return chess.Move{}, "", moveErr(errors.ErrAmbiguousMoveRequest, candidates)
	}

	move := matches[0]
	if err := g.checkPromotion(move, req); err != nil {
		return chess.Move{}, "", moveErr(err, nil)
	}
	return move, Specifier(move, legal), nil
}

// checkPromotion requires a promotion piece exactly when the move promotes.
func (g *Game) checkPromotion(move chess.Move, req chess.MoveRequest) error {
	if move.Class != chess.PawnMoveWithPromotion {
		if req.Promotion != chess.NoPiece {
			return fmt.Errorf("%v does not promote: %w", move.To, errors.ErrInvalidPromotionChoice)
		}
		return nil
	}
	switch {
	case req.Promotion == chess.NoPiece:
		return errors.ErrPromotionRequired
	case !req.Promotion.IsPromotionChoice():
		return fmt.Errorf("cannot promote to %v: %w", req.Promotion, errors.ErrInvalidPromotionChoice)
	}
	return nil
}

// Specifier returns the qualifier that tells move's piece apart from the
// other pieces of its type able to reach the same square: the file when it
// is unique among them, else the rank, else both. Pawn captures always carry
// their file.
func Specifier(move chess.Move, legal []chess.Move) string {
	if move.Class.IsCastle() {
		return ""
	}
	file := string(move.From.FileLetter())
	if move.Piece == chess.Pawn {
		if move.From.File() != move.To.File() {
			return file
		}
		return ""
	}

	rivals, sameFile, sameRank := 0, false, false
	for _, m := range legal {
		if m.Piece != move.Piece || m.To != move.To || m.From == move.From || m.Class.IsCastle() {
			continue
		}
		rivals++
		sameFile = sameFile || m.From.File() == move.From.File()
		sameRank = sameRank || m.From.Rank() == move.From.Rank()
	}
	switch {
	case rivals == 0:
		return ""
	case !sameFile:
		return file
	case !sameRank:
		return string(move.From.RankDigit())
	}
	return move.From.String()
}
