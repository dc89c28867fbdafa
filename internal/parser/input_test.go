package parser

import (
	"testing"

	"github.com/lgbarn/cmdchess-go/internal/chess"
	"github.com/lgbarn/cmdchess-go/internal/errors"
	"github.com/lgbarn/cmdchess-go/internal/testutil"
)

func TestParseInput_Options(t *testing.T) {
	tests := []struct {
		line string
		want Option
	}{
		{"i", Instructions},
		{"q", Quit},
		{"/", Resign},
		{"=", OfferDraw},
		{"m", ShowLog},
		{"s", Save},
		{"<", Undo},
		{" > ", Redo},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			in, err := ParseInput(tt.line)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, in.Kind, OptionInput)
			testutil.AssertEqual(t, in.Option, tt.want)
		})
	}
}

func TestParseInput_Kinds(t *testing.T) {
	tests := []struct {
		name string
		line string
		want InputKind
	}{
		{"empty", "", EmptyInput},
		{"blank", "   ", EmptyInput},
		{"piece move", "Nf3", MoveInput},
		{"pawn move", "e4", MoveInput},
		{"castle", "O-O", MoveInput},
		{"coordinate move", "e2e4", MoveInput},
		{"square query", "?e2", QueryInput},
		{"castle query", "?O", QueryInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := ParseInput(tt.line)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, in.Kind, tt.want)
			testutil.AssertEqual(t, in.Kind.String(), tt.want.String())
		})
	}
}

func TestParseInput_Move(t *testing.T) {
	in, err := ParseInput("Nbd2\n")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, in.Text, "Nbd2")
	testutil.AssertEqual(t, in.Request.Piece, chess.Knight)
	testutil.AssertEqual(t, in.Request.FromFile, 1)
	testutil.AssertEqual(t, in.Request.To, chess.MustSquare("d2"))
}

func TestParseInput_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want error
	}{
		{"unknown option", "x", errors.ErrInvalidMoveText},
		{"bad move", "Zf3", errors.ErrInvalidMoveText},
		{"bad query square", "?z9", errors.ErrInvalidMoveText},
		{"empty query", "?", errors.ErrInvalidMoveText},
		{"king promotion", "e8=K", errors.ErrInvalidPromotionChoice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseInput(tt.line)
			testutil.AssertErrorIs(t, err, tt.want)
		})
	}
}

func TestDecodeQuery(t *testing.T) {
	q, err := DecodeQuery("?g1")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, q, Query{Square: chess.MustSquare("g1")})

	q, err = DecodeQuery("?0")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, q, Query{Square: chess.NoSquare, Castle: true})
}
