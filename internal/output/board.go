package output

import (
	"fmt"
	"strings"

	"github.com/lgbarn/cmdchess-go/internal/chess"
	"github.com/lgbarn/cmdchess-go/internal/game"
)

const border = "  +-----------------+\n"

// Board renders b with rank and file labels, rank 8 at the top. With flip
// set the board is drawn from Black's side.
func Board(b *chess.Board, flip bool) string {
	var sb strings.Builder
	sb.WriteString(border)
	for i := 0; i < chess.BoardSize; i++ {
		rank := chess.BoardSize - 1 - i
		if flip {
			rank = i
		}
		fmt.Fprintf(&sb, "%d |", rank+1)
		for j := 0; j < chess.BoardSize; j++ {
			sb.WriteByte(' ')
			sb.WriteString(b.Get(chess.NewSquare(boardFile(j, flip), rank)).String())
		}
		sb.WriteString(" |\n")
	}
	sb.WriteString(border)
	sb.WriteString("   ")
	for j := 0; j < chess.BoardSize; j++ {
		sb.WriteByte(' ')
		sb.WriteByte(byte('a' + boardFile(j, flip)))
	}
	sb.WriteByte('\n')
	return sb.String()
}

func boardFile(column int, flip bool) int {
	if flip {
		return chess.BoardSize - 1 - column
	}
	return column
}

// StatusLine describes whose turn it is, or how the game ended.
func StatusLine(g *game.Game) string {
	toMove := g.ToMove()
	winner, _ := g.Winner()

	switch g.Status() {
	case game.Check:
		return fmt.Sprintf("%v to move, in check", toMove)
	case game.Checkmate:
		return fmt.Sprintf("Checkmate. %v wins %s", winner, g.Result())
	case game.Stalemate:
		return fmt.Sprintf("Stalemate. Draw %s", g.Result())
	case game.DrawInsufficientMaterial:
		return fmt.Sprintf("Insufficient material. Draw %s", g.Result())
	case game.Resigned:
		return fmt.Sprintf("%v resigns. %v wins %s", winner.Opposite(), winner, g.Result())
	case game.DrawAgreed:
		return fmt.Sprintf("Draw agreed %s", g.Result())
	}
	return fmt.Sprintf("%v to move", toMove)
}

// SquareList writes label followed by the squares of set, wrapped at the
// writer's line length.
func SquareList(o *OutputWriter, label string, set chess.SquareSet) {
	o.Write(label)
	if set == 0 {
		o.Write("none")
	}
	for _, sq := range set.Squares() {
		o.Write(sq.String())
	}
	o.NewLine()
}

// Attacks writes the squares each side controls.
func Attacks(o *OutputWriter, g *game.Game) {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		SquareList(o, colour.String()+" controls:", g.Controlled(colour))
	}
}
