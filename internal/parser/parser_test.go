package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/cmdchess-go/internal/chess"
	"github.com/lgbarn/cmdchess-go/internal/errors"
	"github.com/lgbarn/cmdchess-go/internal/testutil"
)

func parseLog(t *testing.T, text string) ([]LogMove, error) {
	t.Helper()
	return NewParser(strings.NewReader(text), "").ParseLog()
}

func moveTexts(moves []LogMove) []string {
	texts := make([]string, len(moves))
	for i, m := range moves {
		texts[i] = m.Text
	}
	return texts
}

func TestParseLog(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{}},
		{"one move", "1:   e4\n", []string{"e4"}},
		{
			"full turns",
			"1:   e4        e5\n2:   Nf3       Nc6\n3:   Bb5       a6\n",
			[]string{"e4", "e5", "Nf3", "Nc6", "Bb5", "a6"},
		},
		{
			"white to reply",
			"1:   d4        d5\n2:   c4\n",
			[]string{"d4", "d5", "c4"},
		},
		{
			"crlf and blank lines",
			"1: e4 e5\r\n\r\n2: Qh5 Nc6\r\n",
			[]string{"e4", "e5", "Qh5", "Nc6"},
		},
		{
			"castles and promotions",
			"1: O-O-O exd8=Q+\n",
			[]string{"O-O-O", "exd8=Q+"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moves, err := parseLog(t, tt.text)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, moveTexts(moves), tt.want)
		})
	}
}

func TestParseLog_Positions(t *testing.T) {
	moves, err := parseLog(t, "1:   e4        e5\n2:   Nf3\n")
	testutil.AssertNoError(t, err)
	want := []LogMove{
		{Text: "e4", Colour: chess.White, Number: 1, Line: 1, Column: 6},
		{Text: "e5", Colour: chess.Black, Number: 1, Line: 1, Column: 16},
		{Text: "Nf3", Colour: chess.White, Number: 2, Line: 2, Column: 6},
	}
	testutil.AssertEqual(t, moves, want)
}

func TestParseLog_Placeholder(t *testing.T) {
	moves, err := parseLog(t, "1:   ...       e5\n2:   Nf3       Nc6\n")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, moveTexts(moves), []string{"e5", "Nf3", "Nc6"})
	testutil.AssertEqual(t, moves[0].Colour, chess.Black)

	_, err = parseLog(t, "1: e4 e5\n2: ... Nc6\n")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidLog)
}

func TestParseLog_Errors(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		line     int
		column   int
		expected string
	}{
		{"missing number", "e4 e5\n", 1, 1, "move number"},
		{"out of sequence", "1: e4 e5\n3: d4 d5\n", 2, 1, "move number 2"},
		{"extra move", "1: e4 e5 Nf3\n", 1, 10, "end of line"},
		{"missing reply", "1: e4\n2: d4 d5\n", 2, 1, "end of log after a move without reply"},
		{"number without move", "1: e4 e5\n2:\n", 2, 0, "White move"},
		{"bad characters", "1: e4 e5!\n", 1, 7, "Black move"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseLog(t, tt.text)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidLog)
			parseErr, ok := err.(*errors.ParseError)
			if !ok {
				t.Fatalf("error %v is not a ParseError", err)
			}
			testutil.AssertEqual(t, parseErr.Line, tt.line)
			if tt.column > 0 {
				testutil.AssertEqual(t, parseErr.Column, tt.column)
			}
			testutil.AssertEqual(t, parseErr.Expected, tt.expected)
		})
	}
}

func TestParseLog_ErrorNamesFile(t *testing.T) {
	_, err := NewParser(strings.NewReader("1: e4 e5\n3: d4\n"), "game.txt").ParseLog()
	testutil.AssertContains(t, err.Error(), "game.txt:2:1")
}

func TestLexer_Tokens(t *testing.T) {
	lexer := NewLexer(strings.NewReader("12: Nf3 e4:\n"))
	want := []struct {
		typ  TokenType
		text string
	}{
		{MoveNumber, "12:"},
		{MoveToken, "Nf3"},
		{MoveToken, "e4:"},
		{EOFToken, ""},
	}
	for _, w := range want {
		tok := lexer.NextToken()
		testutil.AssertEqual(t, tok.Type, w.typ, "token %q", w.text)
		testutil.AssertEqual(t, tok.Text, w.text)
	}
	testutil.AssertEqual(t, lexer.LineNumber(), uint(1))
}

func BenchmarkParseLog(b *testing.B) {
	var sb strings.Builder
	for i := 1; i <= 40; i++ {
		fmt.Fprintf(&sb, "%d:   Nf3       Nf6\n", i)
	}
	text := sb.String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = NewParser(strings.NewReader(text), "").ParseLog()
	}
}
