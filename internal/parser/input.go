package parser

import (
	"strings"

	"github.com/lgbarn/cmdchess-go/internal/chess"
	"github.com/lgbarn/cmdchess-go/internal/errors"
)

// options lists the single-character commands accepted during a turn.
var options = map[byte]Option{
	byte(Instructions): Instructions,
	byte(Quit):         Quit,
	byte(Resign):       Resign,
	byte(OfferDraw):    OfferDraw,
	byte(ShowLog):      ShowLog,
	byte(Save):         Save,
	byte(Undo):         Undo,
	byte(Redo):         Redo,
}

// ParseInput classifies and decodes one line typed by a player. Anything
// shorter than two characters is an option, "?e2" and "?O" are queries and
// everything else must be a move.
func ParseInput(line string) (Input, error) {
	text := strings.TrimSpace(line)
	in := Input{Text: text}

	switch {
	case text == "":
		in.Kind = EmptyInput
		return in, nil
	case len(text) < 2:
		opt, ok := options[text[0]]
		if !ok {
			return in, &errors.ParseError{Err: errors.ErrInvalidMoveText, Column: 1, Expected: "move or option", Got: text}
		}
		in.Kind = OptionInput
		in.Option = opt
		return in, nil
	case text[0] == '?':
		q, err := DecodeQuery(text)
		if err != nil {
			return in, err
		}
		in.Kind = QueryInput
		in.Query = q
		return in, nil
	}

	req, err := DecodeMove(text)
	if err != nil {
		return in, err
	}
	in.Kind = MoveInput
	in.Request = req
	return in, nil
}

// DecodeQuery parses "?sq" or "?O".
func DecodeQuery(text string) (Query, error) {
	body := strings.TrimPrefix(strings.TrimSpace(text), "?")
	if body == "O" || body == "0" {
		return Query{Square: chess.NoSquare, Castle: true}, nil
	}
	sq, err := chess.ParseSquare(body)
	if err != nil {
		return Query{}, &errors.ParseError{
			Err:      errors.ErrInvalidMoveText,
			Column:   2,
			Expected: "square or O",
			Got:      body,
		}
	}
	return Query{Square: sq}, nil
}
