package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/cmdchess-go/internal/chess"
)

// CoordMove is a move written in coordinate form, such as "e7e8q".
type CoordMove struct {
	From      chess.Square
	To        chess.Square
	Promotion chess.Piece
}

// ParseCoordMoves splits a whitespace separated list of coordinate moves.
// It calls t.Fatal on malformed input.
func ParseCoordMoves(t *testing.T, text string) []CoordMove {
	t.Helper()
	fields := strings.Fields(text)
	moves := make([]CoordMove, 0, len(fields))
	for _, f := range fields {
		if len(f) != 4 && len(f) != 5 {
			t.Fatalf("malformed coordinate move %q", f)
		}
		from, err := chess.ParseSquare(f[0:2])
		if err != nil {
			t.Fatalf("move %q: %v", f, err)
		}
		to, err := chess.ParseSquare(f[2:4])
		if err != nil {
			t.Fatalf("move %q: %v", f, err)
		}
		m := CoordMove{From: from, To: to}
		if len(f) == 5 {
			m.Promotion = chess.PieceFromLetter(strings.ToUpper(f[4:])[0])
		}
		moves = append(moves, m)
	}
	return moves
}

// Squares converts algebraic names into squares. It panics on bad names.
func Squares(names ...string) []chess.Square {
	squares := make([]chess.Square, len(names))
	for i, name := range names {
		squares[i] = chess.MustSquare(name)
	}
	return squares
}

// SquareSet builds a set from algebraic names. It panics on bad names.
func SquareSet(names ...string) chess.SquareSet {
	return chess.SquareSetOf(Squares(names...)...)
}

// BoardString renders a board rank 8 first, one rank per line, for
// readable diffs in failing tests.
func BoardString(b *chess.Board) string {
	var sb strings.Builder
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteString(b.Get(chess.NewSquare(file, rank)).String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
