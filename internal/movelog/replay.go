package movelog

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/cmdchess-go/internal/chess"
	"github.com/lgbarn/cmdchess-go/internal/errors"
	"github.com/lgbarn/cmdchess-go/internal/game"
	"github.com/lgbarn/cmdchess-go/internal/parser"
)

// Replay feeds the moves of a restored log to a game one at a time. Every
// move goes through game.Play, so a log is only ever accepted move by move.
type Replay struct {
	game  *game.Game
	moves []parser.LogMove
	next  int
	file  string
}

// NewReplay prepares moves for replay on g. file labels errors.
func NewReplay(g *game.Game, moves []parser.LogMove, file string) *Replay {
	return &Replay{game: g, moves: moves, file: file}
}

// Remaining returns the number of moves not yet replayed.
func (r *Replay) Remaining() int {
	return len(r.moves) - r.next
}

// Done reports whether every move has been replayed or the replay stopped.
func (r *Replay) Done() bool {
	return r.Remaining() == 0
}

// Peek returns the next move without playing it.
func (r *Replay) Peek() (parser.LogMove, bool) {
	if r.Done() {
		return parser.LogMove{}, false
	}
	return r.moves[r.next], true
}

// Stop abandons the moves not yet replayed; play continues from the
// current position.
func (r *Replay) Stop() {
	r.next = len(r.moves)
}

// Step plays the next move. It returns io.EOF when nothing is left. A move
// the game rejects stops the replay and is reported with its position in
// the log.
func (r *Replay) Step() (chess.MoveRecord, error) {
	move, ok := r.Peek()
	if !ok {
		return chess.MoveRecord{}, io.EOF
	}
	if move.Colour != r.game.ToMove() {
		r.Stop()
		return chess.MoveRecord{}, r.errorAt(move, fmt.Sprintf("%v move", r.game.ToMove()), errors.ErrInvalidLog)
	}
	rec, err := r.game.Play(move.Text)
	if err != nil {
		r.Stop()
		return chess.MoveRecord{}, r.errorAt(move, "legal move", fmt.Errorf("%w: %w", errors.ErrInvalidLog, err))
	}
	r.next++
	return rec, nil
}

// Run replays every remaining move and returns how many were played.
func (r *Replay) Run() (int, error) {
	played := 0
	for {
		_, err := r.Step()
		switch {
		case err == io.EOF:
			return played, nil
		case err != nil:
			return played, err
		}
		played++
	}
}

func (r *Replay) errorAt(move parser.LogMove, expected string, err error) error {
	return &errors.ParseError{
		Err:      err,
		File:     r.file,
		Line:     int(move.Line),
		Column:   int(move.Column),
		Expected: expected,
		Got:      move.Text,
	}
}

// Restore reads a move table from src and replays all of it on g.
func Restore(g *game.Game, src io.Reader, name string) (int, error) {
	moves, err := Read(src, name)
	if err != nil {
		return 0, err
	}
	return NewReplay(g, moves, name).Run()
}

// Open reads the log called name under dir and prepares it for replay on g.
func Open(g *game.Game, dir, name string) (*Replay, error) {
	path, err := Path(dir, name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "restoring %s", name)
	}
	defer f.Close()

	moves, err := Read(f, path)
	if err != nil {
		return nil, err
	}
	return NewReplay(g, moves, path), nil
}
