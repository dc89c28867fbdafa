package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/cmdchess-go/internal/chess"
	"github.com/lgbarn/cmdchess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToPiece converts a FEN character to a piece type.
func ConvertFENCharToPiece(c byte) chess.Piece {
	return chess.PieceFromLetter(byte(unicode.ToUpper(rune(c))))
}

// NewPositionFromFEN creates a position from a FEN string. FEN ranks are
// absolute, so the standard colour layout is used. The clock fields are accepted
// and ignored: neither the fifty-move rule nor repetition is tracked.
func NewPositionFromFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, err
	}
	p := NewEmptyPosition(chess.StandardSides(), toMove)

	if err := parsePiecePositions(&p.board, parts[0]); err != nil {
		return nil, err
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if p.board.Count(colour, chess.King) != 1 {
			return nil, fmt.Errorf("%v must have exactly one king: %w", colour, errors.ErrInvalidFEN)
		}
	}
	p.sync()

	p.rights = parseCastlingRights(parts)
	if p.initialEP, err = parseEnPassant(parts); err != nil {
		return nil, err
	}
	return p, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	rank := chess.BoardSize - 1
	file := 0

	for _, c := range positions {
		switch {
		case c == '/':
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			piece := ConvertFENCharToPiece(byte(c))
			if piece == chess.NoPiece {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			sq := chess.NewSquare(file, rank)
			if sq == chess.NoSquare {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			board.Set(sq, chess.MakeOccupant(colour, piece))
			file++
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(parts []string) chess.CastlingRights {
	var rights chess.CastlingRights
	if len(parts) < 3 || parts[2] == "-" {
		return rights
	}
	for _, c := range parts[2] {
		switch c {
		case 'K':
			rights.Grant(chess.White, chess.Kingside)
		case 'Q':
			rights.Grant(chess.White, chess.Queenside)
		case 'k':
			rights.Grant(chess.Black, chess.Kingside)
		case 'q':
			rights.Grant(chess.Black, chess.Queenside)
		}
	}
	return rights
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(parts []string) (chess.Square, error) {
	if len(parts) < 4 || parts[3] == "-" {
		return chess.NoSquare, nil
	}
	sq, err := chess.ParseSquare(parts[3])
	if err != nil {
		return chess.NoSquare, fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
	}
	return sq, nil
}

// FEN converts the position to a FEN string.
func (p *Position) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, &p.board)
	sb.WriteByte(' ')
	if p.toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, p.rights)
	sb.WriteByte(' ')
	sb.WriteString(p.EnPassantTarget(p.toMove).String())

	plies := p.history.Plies()
	if p.history.First() == chess.Black {
		plies++
	}
	fmt.Fprintf(&sb, " 0 %d", 1+plies/2)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			o := board.Get(chess.NewSquare(file, rank))
			if o == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteString(o.String())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, rights chess.CastlingRights) {
	letters := []struct {
		colour chess.Colour
		wing   chess.Wing
		letter byte
	}{
		{chess.White, chess.Kingside, 'K'},
		{chess.White, chess.Queenside, 'Q'},
		{chess.Black, chess.Kingside, 'k'},
		{chess.Black, chess.Queenside, 'q'},
	}
	hasCastling := false
	for _, l := range letters {
		if rights.Has(l.colour, l.wing) {
			sb.WriteByte(l.letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}
