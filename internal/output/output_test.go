package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"

	"github.com/lgbarn/cmdchess-go/internal/chess"
	"github.com/lgbarn/cmdchess-go/internal/config"
	"github.com/lgbarn/cmdchess-go/internal/game"
	"github.com/lgbarn/cmdchess-go/internal/testutil"
	"github.com/lgbarn/cmdchess-go/internal/worker"
)

const initialBoard = `  +-----------------+
8 | r n b q k b n r |
7 | p p p p p p p p |
6 | . . . . . . . . |
5 | . . . . . . . . |
4 | . . . . . . . . |
3 | . . . . . . . . |
2 | P P P P P P P P |
1 | R N B Q K B N R |
  +-----------------+
    a b c d e f g h
`

const flippedBoard = `  +-----------------+
1 | R N B K Q B N R |
2 | P P P P P P P P |
3 | . . . . . . . . |
4 | . . . . . . . . |
5 | . . . . . . . . |
6 | . . . . . . . . |
7 | p p p p p p p p |
8 | r n b k q b n r |
  +-----------------+
    h g f e d c b a
`

// playGame returns a game from fen, or the standard start, after moves.
func playGame(t *testing.T, fen, moves string) *game.Game {
	t.Helper()
	cfg := config.NewConfigBuilder().
		WithFEN(fen).
		WithLogger(&log.Logger{Handler: discard.New(), Level: log.ErrorLevel}).
		Build()
	g, err := game.New(cfg)
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	for _, text := range strings.Fields(moves) {
		if _, err := g.Play(text); err != nil {
			t.Fatalf("Play(%q): %v", text, err)
		}
	}
	return g
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestOutputWriter_Wraps(t *testing.T) {
	var buf bytes.Buffer
	o := NewOutputWriter(&buf, 10)
	o.Write("abcd")
	o.Write("efgh")
	o.Write("ij")
	o.NewLine()
	o.Write("k")

	testutil.AssertNoError(t, o.Err())
	testutil.AssertEqual(t, buf.String(), "abcd efgh\nij\nk")
}

func TestOutputWriter_KeepsFirstError(t *testing.T) {
	o := NewOutputWriter(failingWriter{}, 0)
	o.Write("a")
	o.NewLine()
	testutil.AssertContains(t, o.Err().Error(), "disk full")
}

func TestBoard(t *testing.T) {
	var b chess.Board
	b.SetupInitialPosition(chess.StandardSides())

	testutil.AssertEqual(t, Board(&b, false), initialBoard)
	testutil.AssertEqual(t, Board(&b, true), flippedBoard)
}

func TestStatusLine(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves string
		end   func(g *game.Game) error
		want  string
	}{
		{"start", "", "", nil, "White to move"},
		{"check", "", "e4 f5 Qh5", nil, "Black to move, in check"},
		{"checkmate", "", "f3 e5 g4 Qh4", nil, "Checkmate. Black wins 0-1"},
		{"stalemate", "8/8/8/8/8/3q4/2k5/K7 b - - 0 1", "Qb3", nil, "Stalemate. Draw 1/2-1/2"},
		{"insufficient material", "4k3/8/8/8/8/8/3q4/4K1N1 w - - 0 1", "Kxd2", nil, "Insufficient material. Draw 1/2-1/2"},
		{"resigned", "", "e4", (*game.Game).Resign, "Black resigns. White wins 1-0"},
		{"draw agreed", "", "", (*game.Game).AgreeDraw, "Draw agreed 1/2-1/2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := playGame(t, tt.fen, tt.moves)
			if tt.end != nil {
				testutil.AssertNoError(t, tt.end(g))
			}
			testutil.AssertEqual(t, StatusLine(g), tt.want)
		})
	}
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf, &config.OutputConfig{ShowAttacks: true})
	testutil.AssertNoError(t, w.WriteGame(playGame(t, "", "")))
	testutil.AssertNoError(t, w.Close())

	out := buf.String()
	testutil.AssertContains(t, out, initialBoard)
	testutil.AssertContains(t, out, "White to move\n")
	testutil.AssertContains(t, out, "White controls: b1 c1 d1 e1 f1 g1 a2")
	testutil.AssertContains(t, out, "Black controls: a6 b6 c6")
	testutil.AssertFalse(t, strings.Contains(out, "Last move"), "no last move before play")
}

func TestTextWriter_Flip(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf, &config.OutputConfig{Flip: true})
	testutil.AssertNoError(t, w.WriteGame(playGame(t, "", "e4")))

	out := buf.String()
	testutil.AssertContains(t, out, "1 | R N B K Q B N R |\n2 | P P P . P P P P |")
	testutil.AssertContains(t, out, "Last move: e4\nBlack to move\n")
	testutil.AssertFalse(t, strings.Contains(out, "controls"), "attacks only when enabled")
}

func TestWriteLog(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteLog(&buf, playGame(t, "", "")))
	testutil.AssertEqual(t, buf.String(), "No moves have been made.\n")

	buf.Reset()
	testutil.AssertNoError(t, WriteLog(&buf, playGame(t, "", "e4 e5 Nf3")))
	testutil.AssertEqual(t, buf.String(), "1:   e4        e5\n2:   Nf3       \n")
}

func TestGameToJSON(t *testing.T) {
	jg := GameToJSON(playGame(t, "", "f3 e5 g4 Qh4"))

	testutil.AssertEqual(t, jg.PlyCount, 4)
	testutil.AssertEqual(t, jg.Status, "checkmate")
	testutil.AssertEqual(t, jg.Result, "0-1")
	testutil.AssertEqual(t, jg.Moves[3], JSONMove{
		MoveNumber: 2,
		Color:      "black",
		Notation:   "Qh4",
		UCI:        "d8h4",
		From:       "d8",
		To:         "h4",
		Piece:      "queen",
	})
}

func TestGameToJSON_PromotionCapture(t *testing.T) {
	jg := GameToJSON(playGame(t, "", "e4 d5 exd5 c6 dxc6 Nf6 cxb7 Nbd7 bxa8=Q"))
	last := jg.Moves[len(jg.Moves)-1]

	testutil.AssertEqual(t, last.MoveNumber, 5)
	testutil.AssertEqual(t, last.Notation, "bxa8=Q")
	testutil.AssertEqual(t, last.UCI, "b7a8q")
	testutil.AssertEqual(t, last.Captured, "rook")
	testutil.AssertEqual(t, last.Promotion, "queen")
}

func TestGameToJSON_BlackFirst(t *testing.T) {
	jg := GameToJSON(playGame(t, "4k3/8/8/8/8/3q4/8/K7 b - - 0 1", "Qd2 Kb1"))

	testutil.AssertEqual(t, jg.Moves[0].MoveNumber, 1)
	testutil.AssertEqual(t, jg.Moves[0].Color, "black")
	testutil.AssertEqual(t, jg.Moves[1].MoveNumber, 2)
	testutil.AssertEqual(t, jg.Moves[1].Color, "white")
}

func TestJSONWriter_Batch(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)
	g := playGame(t, "", "e4")
	testutil.AssertNoError(t, w.WriteGame(g))
	_, err := g.Play("e5")
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, w.WriteGame(g))
	testutil.AssertEqual(t, buf.Len(), 0)
	testutil.AssertNoError(t, w.Close())

	var out JSONOutput
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &out))
	testutil.AssertEqual(t, len(out.Games), 2)
	testutil.AssertEqual(t, out.Games[0].PlyCount, 1)
	testutil.AssertEqual(t, out.Games[1].PlyCount, 2)
	testutil.AssertEqual(t, out.Games[1].Result, "*")
}

func TestJSONWriter_Single(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriterSingle(&buf)
	testutil.AssertNoError(t, w.WriteGame(playGame(t, "", "d4")))

	var jg JSONGame
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &jg))
	testutil.AssertEqual(t, jg.Moves[0].UCI, "d2d4")
	testutil.AssertNoError(t, w.Flush())
}

func TestWriteReports(t *testing.T) {
	reports := []worker.Report{
		{Path: "a.txt", Plies: 4, Status: "checkmate", Result: "0-1"},
		{Path: "b.txt", Plies: 2, Err: errors.New("illegal move")},
		{Path: "c.txt", Plies: 4, Status: "checkmate", Result: "0-1", DuplicateOf: "a.txt"},
	}

	var buf bytes.Buffer
	rejected, err := WriteReports(&buf, reports)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rejected, 1)
	testutil.AssertEqual(t, buf.String(),
		"a.txt: 4 plies, checkmate 0-1\n"+
			"b.txt: rejected after 2 plies: illegal move\n"+
			"c.txt: 4 plies, checkmate 0-1, duplicate of a.txt\n"+
			"2 of 3 logs verified\n")

	buf.Reset()
	testutil.AssertNoError(t, WriteReportsJSON(&buf, reports))
	var out []JSONReport
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &out))
	testutil.AssertEqual(t, out[1], JSONReport{File: "b.txt", Plies: 2, Error: "illegal move"})
	testutil.AssertEqual(t, out[2].DuplicateOf, "a.txt")
}

func TestInstructions(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteInstructions(&buf))
	testutil.AssertEqual(t, buf.String(), Instructions())
	for _, option := range []string{"  i ", "  q ", "  / ", "  = ", "  m ", "  s ", "  < ", "  > ", "?e2", "?O"} {
		testutil.AssertContains(t, Instructions(), option)
	}
}
