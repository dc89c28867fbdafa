package parser

import (
	"fmt"
	"io"

	"github.com/lgbarn/cmdchess-go/internal/chess"
	"github.com/lgbarn/cmdchess-go/internal/errors"
)

// Placeholder stands for the missing white move of a log whose first move
// was made by Black.
const Placeholder = "..."

// LogMove is one move read from a move log, with its source position.
type LogMove struct {
	Text   string
	Colour chess.Colour
	Number uint
	Line   uint
	Column uint
}

// Parser parses move log input into a flat move sequence.
type Parser struct {
	lexer        *Lexer
	currentToken *Token
	file         string
}

// NewParser creates a new parser for the given reader. file names the
// source in error messages and may be empty.
func NewParser(r io.Reader, file string) *Parser {
	return &Parser{
		lexer: NewLexer(r),
		file:  file,
	}
}

// nextToken gets the next token from the lexer.
func (p *Parser) nextToken() {
	p.currentToken = p.lexer.NextToken()
}

// errorAt builds a ParseError located at the current token.
func (p *Parser) errorAt(expected string) error {
	got := p.currentToken.Text
	if p.currentToken.Type == EOFToken {
		got = "end of log"
	}
	return &errors.ParseError{
		Err:      errors.ErrInvalidLog,
		File:     p.file,
		Line:     int(p.currentToken.Line),
		Column:   int(p.currentToken.Column),
		Expected: expected,
		Got:      got,
	}
}

// ParseLog reads every move of the log in playing order. Each line holds a
// move number followed by White's and Black's moves; only the last line may
// lack Black's move. The moves are checked for shape only; legality is left
// to the replay.
func (p *Parser) ParseLog() ([]LogMove, error) {
	var moves []LogMove
	p.nextToken()

	for number := uint(1); p.currentToken.Type != EOFToken; number++ {
		if p.currentToken.Type != MoveNumber {
			return moves, p.errorAt("move number")
		}
		if p.currentToken.MoveNum != number {
			return moves, p.errorAt(fmt.Sprintf("move number %d", number))
		}
		line := p.currentToken.Line
		p.nextToken()

		for _, colour := range []chess.Colour{chess.White, chess.Black} {
			tok := p.currentToken
			if tok.Type == EOFToken || tok.Line != line {
				if colour == chess.White {
					return moves, p.errorAt(colour.String() + " move")
				}
				break
			}
			if number == 1 && colour == chess.White && tok.Text == Placeholder {
				p.nextToken()
				continue
			}
			if tok.Type != MoveToken {
				return moves, p.errorAt(colour.String() + " move")
			}
			moves = append(moves, LogMove{
				Text:   tok.Text,
				Colour: colour,
				Number: number,
				Line:   tok.Line,
				Column: tok.Column,
			})
			p.nextToken()
		}

		if p.currentToken.Type != EOFToken && p.currentToken.Line == line {
			return moves, p.errorAt("end of line")
		}
		if last := len(moves) - 1; last >= 0 && moves[last].Colour == chess.White && p.currentToken.Type != EOFToken {
			return moves, p.errorAt("end of log after a move without reply")
		}
	}
	return moves, nil
}
