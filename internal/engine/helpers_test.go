package engine

import (
	"strings"
	"testing"

	"github.com/lgbarn/cmdchess-go/internal/chess"
	"github.com/lgbarn/cmdchess-go/internal/testutil"
)

// mustFEN builds a position or aborts the test.
func mustFEN(t testing.TB, fen string) *Position {
	t.Helper()
	p, err := NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q): %v", fen, err)
	}
	return p
}

// findMove returns the legal move from -> to, or fails the test.
func findMove(t testing.TB, p *Position, from, to chess.Square) chess.Move {
	t.Helper()
	for _, m := range p.LegalMoves() {
		if m.From == from && m.To == to {
			return m
		}
	}
	t.Fatalf("no legal move %v%v in %s", from, to, p.FEN())
	return chess.Move{}
}

// play applies coordinate moves one by one and checks the attack map
// against a full recomputation after each of them.
func play(t *testing.T, p *Position, moves string) []chess.MoveRecord {
	t.Helper()
	var records []chess.MoveRecord
	for _, cm := range testutil.ParseCoordMoves(t, moves) {
		m := findMove(t, p, cm.From, cm.To)
		records = append(records, p.Apply(m, cm.Promotion, ""))
		if err := p.Verify(); err != nil {
			t.Fatalf("after %v%v: %v", cm.From, cm.To, err)
		}
	}
	return records
}

// moveString writes a move in coordinate form with an explicit promotion piece.
func moveString(m chess.Move, promotion chess.Piece) string {
	s := m.From.String() + m.To.String()
	if promotion != chess.NoPiece {
		s += strings.ToLower(string(promotion.Letter()))
	}
	return s
}

var promotionChoices = []chess.Piece{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// expand lists the legal moves with every promotion choice spelled out.
func expand(p *Position) []string {
	var out []string
	for _, m := range p.LegalMoves() {
		if m.Class != chess.PawnMoveWithPromotion {
			out = append(out, moveString(m, chess.NoPiece))
			continue
		}
		for _, piece := range promotionChoices {
			out = append(out, moveString(m, piece))
		}
	}
	return out
}

// perft counts the leaf nodes of the legal move tree to depth.
func perft(t testing.TB, p *Position, depth int) int {
	if depth == 0 {
		return 1
	}
	nodes := 0
	for _, m := range p.LegalMoves() {
		choices := []chess.Piece{chess.NoPiece}
		if m.Class == chess.PawnMoveWithPromotion {
			choices = promotionChoices
		}
		for _, piece := range choices {
			p.Apply(m, piece, "")
			nodes += perft(t, p, depth-1)
			if _, err := p.Undo(p.ToMove().Opposite()); err != nil {
				t.Fatalf("undo %s: %v", moveString(m, piece), err)
			}
		}
	}
	return nodes
}
