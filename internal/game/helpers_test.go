package game

import (
	"strings"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"

	"github.com/lgbarn/cmdchess-go/internal/config"
)

// newGame starts a game from fen (the standard start when empty) and
// returns it with the handler collecting its log entries.
func newGame(t *testing.T, fen string) (*Game, *memory.Handler) {
	t.Helper()
	handler := memory.New()
	cfg := config.NewConfigBuilder().
		WithFEN(fen).
		WithLogger(&log.Logger{Handler: handler, Level: log.DebugLevel}).
		Build()
	g, err := New(cfg)
	if err != nil {
		t.Fatalf("New(%q): %v", fen, err)
	}
	return g, handler
}

// playAll plays space-separated move text and checks the attack map after
// every move.
func playAll(t *testing.T, g *Game, moves string) {
	t.Helper()
	for _, text := range strings.Fields(moves) {
		if _, err := g.Play(text); err != nil {
			t.Fatalf("Play(%q): %v", text, err)
		}
		if err := g.Verify(); err != nil {
			t.Fatalf("after %s: %v", text, err)
		}
	}
}

// notations lists the log notation of the game's moves.
func notations(g *Game) []string {
	var out []string
	for _, rec := range g.Moves() {
		out = append(out, rec.Notation())
	}
	return out
}
