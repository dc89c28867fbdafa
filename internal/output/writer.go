package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/cmdchess-go/internal/chess"
	"github.com/lgbarn/cmdchess-go/internal/config"
	"github.com/lgbarn/cmdchess-go/internal/game"
	"github.com/lgbarn/cmdchess-go/internal/movelog"
)

// GameWriter is the interface for writing games to output.
// Different implementations handle different output formats (text, JSON).
type GameWriter interface {
	// WriteGame writes the current state of a game.
	WriteGame(g *game.Game) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextWriter draws the board and status of a game for a player.
type TextWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteGame writes the board, the last move and the status line, followed
// by the controlled squares when ShowAttacks is set. With Flip set the
// board turns so the side to move plays up the screen.
func (tw *TextWriter) WriteGame(g *game.Game) error {
	board := g.Board()
	flip := tw.cfg.Flip && g.Sides().BackRank(g.ToMove()) == chess.BoardSize-1
	o := NewOutputWriter(tw.w, 0)

	o.NewLine()
	o.WriteNoSpace(Board(&board, flip))
	if last := movelog.LastMove(g.Moves()); last != "" {
		o.WriteNoSpace("Last move: " + last)
		o.NewLine()
	}
	o.WriteNoSpace(StatusLine(g))
	o.NewLine()
	if tw.cfg.ShowAttacks {
		Attacks(o, g)
	}
	return o.Err()
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes game summaries in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	games  []*JSONGame
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches games and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:     w,
		games: make([]*JSONGame, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteGame converts the game now, so later moves do not change the
// buffered summary.
func (jw *JSONWriter) WriteGame(g *game.Game) error {
	jsonGame := GameToJSON(g)
	if jw.single {
		return encode(jw.w, jsonGame)
	}
	jw.games = append(jw.games, jsonGame)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}
	err := encode(jw.w, &JSONOutput{Games: jw.games})
	jw.games = jw.games[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteLog writes the move table of g, or a note when no move was made.
func WriteLog(w io.Writer, g *game.Game) error {
	if g.Plies() == 0 {
		_, err := fmt.Fprintln(w, "No moves have been made.")
		return err
	}
	return movelog.Write(w, g.Moves())
}
