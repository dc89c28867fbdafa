package parser

import (
	"testing"

	"github.com/lgbarn/cmdchess-go/internal/chess"
	"github.com/lgbarn/cmdchess-go/internal/errors"
	"github.com/lgbarn/cmdchess-go/internal/testutil"
)

func request(piece chess.Piece, fromFile, fromRank int, to string, promotion chess.Piece) chess.MoveRequest {
	return chess.MoveRequest{
		Piece:     piece,
		FromFile:  fromFile,
		FromRank:  fromRank,
		To:        chess.MustSquare(to),
		Promotion: promotion,
	}
}

func TestDecodeMove(t *testing.T) {
	tests := []struct {
		text string
		want chess.MoveRequest
	}{
		// Pawn moves
		{"e4", request(chess.Pawn, -1, -1, "e4", chess.NoPiece)},
		{"exd5", request(chess.Pawn, 4, -1, "d5", chess.NoPiece)},
		{"ed5", request(chess.Pawn, 4, -1, "d5", chess.NoPiece)},
		{"e8=Q", request(chess.Pawn, -1, -1, "e8", chess.Queen)},
		{"e8N", request(chess.Pawn, -1, -1, "e8", chess.Knight)},
		{"bxa1=R+", request(chess.Pawn, 1, -1, "a1", chess.Rook)},
		{"exd6ep", request(chess.Pawn, 4, -1, "d6", chess.NoPiece)},

		// Piece moves
		{"Nf3", request(chess.Knight, -1, -1, "f3", chess.NoPiece)},
		{"Nxe5", request(chess.Knight, -1, -1, "e5", chess.NoPiece)},
		{"Nbd2", request(chess.Knight, 1, -1, "d2", chess.NoPiece)},
		{"Nbxd2", request(chess.Knight, 1, -1, "d2", chess.NoPiece)},
		{"R1e2", request(chess.Rook, -1, 0, "e2", chess.NoPiece)},
		{"R1xe2", request(chess.Rook, -1, 0, "e2", chess.NoPiece)},
		{"Qh4e1", request(chess.Queen, 7, 3, "e1", chess.NoPiece)},
		{"Qh4xe1#", request(chess.Queen, 7, 3, "e1", chess.NoPiece)},
		{"Bb5+", request(chess.Bishop, -1, -1, "b5", chess.NoPiece)},
		{"Kg1", request(chess.King, -1, -1, "g1", chess.NoPiece)},

		// Coordinate moves
		{"g1f3", request(chess.NoPiece, 6, 0, "f3", chess.NoPiece)},
		{"e7e8q", request(chess.NoPiece, 4, 6, "e8", chess.Queen)},
		{"e7-e8N", request(chess.NoPiece, 4, 6, "e8", chess.Knight)},

		// Castles
		{"O-O", chess.CastleRequest(chess.Kingside)},
		{"OO", chess.CastleRequest(chess.Kingside)},
		{"0-0", chess.CastleRequest(chess.Kingside)},
		{"O-O-O", chess.CastleRequest(chess.Queenside)},
		{"OOO+", chess.CastleRequest(chess.Queenside)},
		{"  Nf3  ", request(chess.Knight, -1, -1, "f3", chess.NoPiece)},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := DecodeMove(tt.text)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestDecodeMove_Errors(t *testing.T) {
	tests := []struct {
		text string
		want error
	}{
		{"", errors.ErrInvalidMoveText},
		{"e9", errors.ErrInvalidMoveText},
		{"i4", errors.ErrInvalidMoveText},
		{"exf", errors.ErrInvalidMoveText},
		{"exg5", errors.ErrInvalidMoveText},
		{"Nf", errors.ErrInvalidMoveText},
		{"N", errors.ErrInvalidMoveText},
		{"Nf3!", errors.ErrInvalidMoveText},
		{"O", errors.ErrInvalidMoveText},
		{"O-O-O-O", errors.ErrInvalidMoveText},
		{"Pe4", errors.ErrInvalidMoveText},
		{"e8=", errors.ErrInvalidMoveText},
		{"e8=K", errors.ErrInvalidPromotionChoice},
		{"e8=P", errors.ErrInvalidPromotionChoice},
		{"Nf3ep", errors.ErrInvalidMoveText},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := DecodeMove(tt.text)
			testutil.AssertErrorIs(t, err, tt.want)
		})
	}
}

func TestDecodeMove_ErrorColumn(t *testing.T) {
	_, err := DecodeMove("Nf3!")
	var parseErr *errors.ParseError
	if !asParseError(err, &parseErr) {
		t.Fatalf("DecodeMove error %v is not a ParseError", err)
	}
	testutil.AssertEqual(t, parseErr.Column, 4)
	testutil.AssertEqual(t, parseErr.Got, "!")
}

// asParseError unwraps err into target.
func asParseError(err error, target **errors.ParseError) bool {
	pe, ok := err.(*errors.ParseError)
	if ok {
		*target = pe
	}
	return ok
}

func BenchmarkDecodeMove(b *testing.B) {
	moves := []string{"e4", "Nf3", "exd5", "O-O-O", "Qh4xe1#", "e8=Q", "Nbd2", "g1f3"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range moves {
			_, _ = DecodeMove(m)
		}
	}
}
