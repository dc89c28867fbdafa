package parser

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Move character classification table
var moveChars [256]bool

func init() {
	initMoveChars()
}

// initMoveChars initializes the move character classification table.
func initMoveChars() {
	// Files (a-h) and ranks (1-8)
	for c := byte('a'); c <= 'h'; c++ {
		moveChars[c] = true
	}
	for c := byte('1'); c <= '8'; c++ {
		moveChars[c] = true
	}

	for _, c := range []byte{'K', 'Q', 'R', 'N', 'B', 'q', 'r', 'n'} {
		moveChars[c] = true
	}

	// Capture/separators, promotion, castling, check
	for _, c := range []byte{'x', 'X', ':', '-', '=', 'O', 'o', '0', '+', '#'} {
		moveChars[c] = true
	}
}

// Lexer tokenizes a move log: lines of a numbered move followed by the
// white and black moves of that turn.
type Lexer struct {
	reader  *bufio.Reader
	line    string
	pos     int
	lineNum uint
	eof     bool
}

// NewLexer creates a new lexer for the given reader.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{reader: bufio.NewReader(r)}
}

// readLine reads the next line from input.
func (l *Lexer) readLine() bool {
	if l.eof {
		return false
	}
	line, err := l.reader.ReadString('\n')
	if err != nil {
		l.eof = true
		if len(line) == 0 {
			return false
		}
	}
	l.line = strings.TrimRight(line, "\r\n")
	l.pos = 0
	l.lineNum++
	return true
}

// currentChar returns the current character or 0 if at end of line.
func (l *Lexer) currentChar() byte {
	if l.pos >= len(l.line) {
		return 0
	}
	return l.line[l.pos]
}

// advance moves to the next character.
func (l *Lexer) advance() {
	if l.pos < len(l.line) {
		l.pos++
	}
}

// skipSpace moves past blanks on the current line.
func (l *Lexer) skipSpace() {
	for c := l.currentChar(); c == ' ' || c == '\t'; c = l.currentChar() {
		l.advance()
	}
}

// NextToken returns the next token from the input. MoveNumber tokens only
// appear as the first word of a line.
func (l *Lexer) NextToken() *Token {
	for {
		l.skipSpace()
		if l.currentChar() != 0 {
			break
		}
		if !l.readLine() {
			return &Token{Type: EOFToken, Line: l.lineNum}
		}
	}

	start := l.pos
	firstOnLine := strings.TrimSpace(l.line[:start]) == ""
	for c := l.currentChar(); c != 0 && c != ' ' && c != '\t'; c = l.currentChar() {
		l.advance()
	}
	text := l.line[start:l.pos]
	token := &Token{Text: text, Line: l.lineNum, Column: uint(start + 1)}

	if firstOnLine && strings.HasSuffix(text, ":") {
		if n, err := strconv.ParseUint(strings.TrimSuffix(text, ":"), 10, 32); err == nil {
			token.Type = MoveNumber
			token.MoveNum = uint(n)
			return token
		}
	}
	if moveSeemsValid(text) {
		token.Type = MoveToken
	} else {
		token.Type = ErrorToken
	}
	return token
}

// moveSeemsValid returns true if every character could appear in move text.
func moveSeemsValid(text string) bool {
	for i := 0; i < len(text); i++ {
		if !moveChars[text[i]] {
			return false
		}
	}
	return len(text) >= 2
}

// LineNumber returns the current line number.
func (l *Lexer) LineNumber() uint {
	return l.lineNum
}
