package parser

import (
	"strings"

	"github.com/lgbarn/cmdchess-go/internal/chess"
	"github.com/lgbarn/cmdchess-go/internal/errors"
)

// isCol returns true if c is a valid column (file) character.
func isCol(c byte) bool {
	return c >= chess.ColBase && c < chess.ColBase+chess.BoardSize
}

// isRank returns true if c is a valid rank character.
func isRank(c byte) bool {
	return c >= chess.RankBase && c < chess.RankBase+chess.BoardSize
}

// isPiece returns the piece type named by an uppercase piece letter.
// Pawns are never named in move text.
func isPiece(c byte) chess.Piece {
	switch c {
	case 'K', 'Q', 'R', 'B', 'N':
		return chess.PieceFromLetter(c)
	}
	return chess.NoPiece
}

// isCapture returns true if c is a capture or separator character.
func isCapture(c byte) bool {
	return c == 'x' || c == 'X' || c == ':' || c == '-'
}

// isCastlingChar returns true if c is a castling character.
func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0' || c == 'o'
}

// isCheck returns true if c is a check indicator.
func isCheck(c byte) bool {
	return c == '+' || c == '#'
}

// moveDecoder walks a move string one character at a time.
type moveDecoder struct {
	text string
	pos  int
	req  chess.MoveRequest
}

func (d *moveDecoder) current() byte {
	if d.pos >= len(d.text) {
		return 0
	}
	return d.text[d.pos]
}

func (d *moveDecoder) advance() {
	if d.pos < len(d.text) {
		d.pos++
	}
}

func (d *moveDecoder) remaining() string {
	if d.pos >= len(d.text) {
		return ""
	}
	return d.text[d.pos:]
}

// fail reports the character the decoder stopped at.
func (d *moveDecoder) fail(expected string) error {
	got := d.remaining()
	if got == "" {
		got = "end of move"
	}
	return &errors.ParseError{
		Err:      errors.ErrInvalidMoveText,
		Column:   d.pos + 1,
		Expected: expected,
		Got:      got,
	}
}

// square reads a destination square.
func (d *moveDecoder) square() (chess.Square, error) {
	if !isCol(d.current()) {
		return chess.NoSquare, d.fail("file")
	}
	file := int(d.current() - chess.ColBase)
	d.advance()
	if !isRank(d.current()) {
		return chess.NoSquare, d.fail("rank")
	}
	rank := int(d.current() - chess.RankBase)
	d.advance()
	return chess.NewSquare(file, rank), nil
}

// DecodeMove parses move text into a move request. It accepts standard
// algebraic piece moves (Nf3, Nbd2, R1e2, Qh4xe1), pawn moves (e4, exd5,
// e8=Q), castles (O-O, OOO, 0-0) and coordinate moves (g1f3, e7e8q). A
// trailing check or mate sign is ignored. Coordinate moves leave the piece
// as NoPiece; the game takes it from the origin square.
func DecodeMove(text string) (chess.MoveRequest, error) {
	d := &moveDecoder{text: strings.TrimSpace(text)}
	d.req = chess.NewMoveRequest(chess.NoPiece, chess.NoSquare)

	var err error
	switch c := d.current(); {
	case isCol(c):
		err = d.pawnOrCoordinate()
	case isPiece(c) != chess.NoPiece:
		err = d.piece()
	case isCastlingChar(c):
		err = d.castle()
	default:
		err = d.fail("piece, file or castle")
	}
	if err != nil {
		return chess.MoveRequest{}, err
	}

	for isCheck(d.current()) {
		d.advance()
	}
	if rest := d.remaining(); rest != "" {
		if d.req.Piece != chess.Pawn || (rest != "ep" && rest != "e.p.") {
			return chess.MoveRequest{}, d.fail("end of move")
		}
	}
	return d.req, nil
}

// pawnOrCoordinate decodes e4, exd5, e8=Q, e2e4 and e7e8q.
func (d *moveDecoder) pawnOrCoordinate() error {
	file := int(d.current() - chess.ColBase)
	d.advance()

	if isRank(d.current()) {
		rank := int(d.current() - chess.RankBase)
		d.advance()
		if isCapture(d.current()) {
			d.advance()
		}
		if !isCol(d.current()) {
			// e4
			d.req.Piece = chess.Pawn
			d.req.To = chess.NewSquare(file, rank)
			return d.promotion()
		}
		// e2e4: the origin names the piece.
		to, err := d.square()
		if err != nil {
			return err
		}
		d.req.FromFile, d.req.FromRank, d.req.To = file, rank, to
		if p := isPiece(strings.ToUpper(d.remaining()+" ")[0]); p != chess.NoPiece && p != chess.King {
			d.req.Promotion = p
			d.advance()
		}
		return nil
	}

	// exd5
	if isCapture(d.current()) {
		d.advance()
	}
	to, err := d.square()
	if err != nil {
		return err
	}
	if df := to.File() - file; df != 1 && df != -1 {
		return &errors.ParseError{
			Err:      errors.ErrInvalidMoveText,
			Column:   1,
			Expected: "capture onto an adjacent file",
			Got:      d.text,
		}
	}
	d.req.Piece = chess.Pawn
	d.req.FromFile = file
	d.req.To = to
	return d.promotion()
}

// promotion decodes an optional "=Q" or "Q" suffix of a pawn move.
func (d *moveDecoder) promotion() error {
	hasEquals := d.current() == '='
	if hasEquals {
		d.advance()
	}
	c := d.current()
	piece := chess.PieceFromLetter(c)
	switch {
	case piece.IsPromotionChoice():
		d.req.Promotion = piece
		d.advance()
	case piece != chess.NoPiece:
		return &errors.ParseError{
			Err:      errors.ErrInvalidPromotionChoice,
			Column:   d.pos + 1,
			Expected: "Q, R, B or N",
			Got:      string(c),
		}
	case hasEquals:
		return d.fail("promotion piece")
	}
	return nil
}

// piece decodes Nf3, Nbd2, N1d2, Nb1d2 and their capturing forms.
func (d *moveDecoder) piece() error {
	d.req.Piece = isPiece(d.current())
	d.advance()

	if isRank(d.current()) {
		// N1d2
		d.req.FromRank = int(d.current() - chess.RankBase)
		d.advance()
		if isCapture(d.current()) {
			d.advance()
		}
		to, err := d.square()
		d.req.To = to
		return err
	}

	if isCapture(d.current()) {
		d.advance()
		to, err := d.square()
		d.req.To = to
		return err
	}

	if !isCol(d.current()) {
		return d.fail("file or rank")
	}
	file := int(d.current() - chess.ColBase)
	d.advance()

	if isCapture(d.current()) {
		// Nbxd2
		d.advance()
		d.req.FromFile = file
		to, err := d.square()
		d.req.To = to
		return err
	}

	if isRank(d.current()) {
		rank := int(d.current() - chess.RankBase)
		d.advance()
		if isCapture(d.current()) {
			d.advance()
		}
		if !isCol(d.current()) {
			// Nf3
			d.req.To = chess.NewSquare(file, rank)
			return nil
		}
		// Nb1d2
		d.req.FromFile, d.req.FromRank = file, rank
		to, err := d.square()
		d.req.To = to
		return err
	}

	// Nbd2
	d.req.FromFile = file
	to, err := d.square()
	d.req.To = to
	return err
}

// castle decodes O-O and O-O-O with or without separators.
func (d *moveDecoder) castle() error {
	count := 0
	for isCastlingChar(d.current()) {
		count++
		d.advance()
		if d.current() == '-' {
			d.advance()
		}
	}
	switch count {
	case 2:
		d.req = chess.CastleRequest(chess.Kingside)
	case 3:
		d.req = chess.CastleRequest(chess.Queenside)
	default:
		return d.fail("O-O or O-O-O")
	}
	return nil
}
