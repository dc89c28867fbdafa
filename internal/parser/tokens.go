// Package parser turns player input and move-log text into structured
// requests for the game layer.
package parser

import "github.com/lgbarn/cmdchess-go/internal/chess"

// TokenType represents the type of a lexical token in a move log.
type TokenType int

const (
	EOFToken TokenType = iota
	MoveNumber
	MoveToken
	ErrorToken
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	EOFToken:   "EOF",
	MoveNumber: "MOVE_NUMBER",
	MoveToken:  "MOVE",
	ErrorToken: "ERROR_TOKEN",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token represents a lexical token with its value.
type Token struct {
	Type TokenType

	// Text is the raw token text.
	Text string

	// MoveNum holds the number of a MoveNumber token.
	MoveNum uint

	// Line and column for error reporting
	Line   uint
	Column uint
}

// InputKind classifies one line of player input.
type InputKind int

const (
	EmptyInput InputKind = iota
	MoveInput
	QueryInput
	OptionInput
)

var inputKindNames = [...]string{
	EmptyInput:  "empty",
	MoveInput:   "move",
	QueryInput:  "query",
	OptionInput: "option",
}

// String returns the string representation of an input kind.
func (k InputKind) String() string {
	if int(k) < len(inputKindNames) {
		return inputKindNames[k]
	}
	return "unknown"
}

// Option is a single-character in-game command.
type Option byte

// In-game options.
const (
	NoOption     Option = 0
	Instructions Option = 'i'
	Quit         Option = 'q'
	Resign       Option = '/'
	OfferDraw    Option = '='
	ShowLog      Option = 'm'
	Save         Option = 's'
	Undo         Option = '<'
	Redo         Option = '>'
)

// Query asks for the legal destinations of the piece on Square, or of the
// castling pseudo-piece when Castle is set.
type Query struct {
	Square chess.Square
	Castle bool
}

// Input is one decoded line of player input.
type Input struct {
	Kind    InputKind
	Text    string
	Request chess.MoveRequest
	Query   Query
	Option  Option
}
