package output

import (
	"io"
	"strings"

	"github.com/lgbarn/cmdchess-go/internal/chess"
	"github.com/lgbarn/cmdchess-go/internal/game"
	"github.com/lgbarn/cmdchess-go/internal/worker"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Moves    []JSONMove `json:"moves,omitempty"`
	Status   string     `json:"status"`
	Result   string     `json:"result"`
	PlyCount int        `json:"plyCount"`
	FinalFEN string     `json:"finalFEN"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	Notation   string `json:"notation"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// JSONReport is the JSON form of one verified log.
type JSONReport struct {
	File   string `json:"file"`
	Plies  int    `json:"plies"`
	Status string `json:"status,omitempty"`
	Result string `json:"result,omitempty"`
	FEN    string `json:"fen,omitempty"`
	Error  string `json:"error,omitempty"`

	DuplicateOf string `json:"duplicateOf,omitempty"`
}

// GameToJSON converts a game to JSON format.
func GameToJSON(g *game.Game) *JSONGame {
	records := g.Moves()
	jg := &JSONGame{
		Moves:    make([]JSONMove, 0, len(records)),
		Status:   g.Status().String(),
		Result:   g.Result(),
		PlyCount: len(records),
		FinalFEN: g.FEN(),
	}

	// A game Black opened numbers its first move 1 as well.
	offset := 0
	if len(records) > 0 && records[0].Colour == chess.Black {
		offset = 1
	}
	for i, rec := range records {
		jg.Moves = append(jg.Moves, convertMove(rec, 1+(i+offset)/2))
	}
	return jg
}

func convertMove(rec chess.MoveRecord, number int) JSONMove {
	jm := JSONMove{
		MoveNumber: number,
		Color:      strings.ToLower(rec.Colour.String()),
		Notation:   rec.Notation(),
		UCI:        UCI(rec),
		From:       rec.From.String(),
		To:         rec.To.String(),
		Piece:      strings.ToLower(rec.Piece.String()),
	}
	if rec.IsCapture() {
		jm.Captured = strings.ToLower(rec.Captured.Piece().String())
	}
	if rec.Promotion != chess.NoPiece {
		jm.Promotion = strings.ToLower(rec.Promotion.String())
	}
	return jm
}

// UCI returns the move in coordinate form, e.g. "e7e8q". Castles are the
// king's move.
func UCI(rec chess.MoveRecord) string {
	uci := rec.From.String() + rec.To.String()
	if rec.Promotion != chess.NoPiece {
		uci += strings.ToLower(string(rec.Promotion.Letter()))
	}
	return uci
}

// ReportToJSON converts a verification report.
func ReportToJSON(r worker.Report) JSONReport {
	jr := JSONReport{
		File:   r.Path,
		Plies:  r.Plies,
		Status: r.Status,
		Result: r.Result,
		FEN:    r.FEN,

		DuplicateOf: r.DuplicateOf,
	}
	if r.Err != nil {
		jr.Error = r.Err.Error()
	}
	return jr
}

// WriteReportsJSON writes reports as a JSON array.
func WriteReportsJSON(w io.Writer, reports []worker.Report) error {
	out := make([]JSONReport, len(reports))
	for i, r := range reports {
		out[i] = ReportToJSON(r)
	}
	return encode(w, out)
}
