package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/apex/log"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/cmdchess-go/internal/chess"
	"github.com/lgbarn/cmdchess-go/internal/config"
	"github.com/lgbarn/cmdchess-go/internal/errors"
	"github.com/lgbarn/cmdchess-go/internal/game"
	"github.com/lgbarn/cmdchess-go/internal/movelog"
	"github.com/lgbarn/cmdchess-go/internal/output"
	"github.com/lgbarn/cmdchess-go/internal/parser"
)

const (
	menuPrompt      = "n: new game, r: restore a game, i: instructions, x: exit\n> "
	endOfGamePrompt = "<: take back the last move, m: move log, s: save, q: finish\n> "
)

// session runs games for two players sharing one terminal. Player input
// is read from cfg.Input and everything shown goes to cfg.OutputFile.
type session struct {
	cfg     *config.Config
	in      *bufio.Scanner
	out     io.Writer
	board   output.GameWriter
	summary output.GameWriter
}

// newSession creates a session. With jsonSummary set a JSON summary of
// every finished game is written when the session ends.
func newSession(cfg *config.Config, jsonSummary bool) *session {
	s := &session{
		cfg:   cfg,
		in:    bufio.NewScanner(cfg.Input),
		out:   cfg.OutputFile,
		board: output.NewTextWriter(cfg.OutputFile, cfg.Output),
	}
	if jsonSummary {
		s.summary = output.NewJSONWriter(cfg.OutputFile)
	}
	return s
}

// Run shows the menu until the players exit or input ends. A log named in
// the configuration is restored first.
func (s *session) Run() error {
	err := s.run()
	if err == io.EOF {
		err = nil
	}
	if s.summary != nil {
		if cerr := s.summary.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func (s *session) run() error {
	if name := s.cfg.MoveLog.Restore; name != "" {
		if err := s.restore(name, s.cfg.MoveLog.Silent); err != nil {
			return err
		}
	}

	for {
		choice, err := s.prompt(menuPrompt)
		if err != nil {
			return err
		}
		switch choice {
		case "n":
			g, err := game.New(s.cfg)
			if err != nil {
				return err
			}
			if err := s.play(g); err != nil {
				return err
			}
		case "r":
			name, err := s.prompt("Log name: ")
			if err != nil {
				return err
			}
			mode, err := s.prompt("m to review move by move, Enter to restore at once: ")
			if err != nil {
				return err
			}
			if err := s.restore(name, mode != "m"); err != nil {
				return err
			}
		case "i":
			if err := output.WriteInstructions(s.out); err != nil {
				return err
			}
		case "x":
			return nil
		case "":
		default:
			s.printf("Unknown choice %q\n", choice)
		}
	}
}

// prompt writes text and returns the next input line, trimmed. It returns
// io.EOF when input ends.
func (s *session) prompt(text string) (string, error) {
	s.printf("%s", text)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *session) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}

// play runs g until the players finish it.
func (s *session) play(g *game.Game) error {
	for {
		if err := s.board.WriteGame(g); err != nil {
			return err
		}

		var quit bool
		var err error
		if g.Status().IsTerminal() {
			quit, err = s.endOfGame(g)
		} else {
			quit, err = s.turn(g)
		}
		if err != nil {
			return err
		}
		if quit {
			if s.summary != nil {
				return s.summary.WriteGame(g)
			}
			return nil
		}
	}
}

// turn reads input until the position changes or the players quit.
func (s *session) turn(g *game.Game) (bool, error) {
	for {
		line, err := s.prompt(fmt.Sprintf("%v: ", g.ToMove()))
		if err != nil {
			return true, err
		}
		in, err := parser.ParseInput(line)
		if err != nil {
			s.printf("%v\n", err)
			continue
		}

		switch in.Kind {
		case parser.MoveInput:
			played, err := s.move(g, in.Text)
			if err != nil {
				return true, err
			}
			if played {
				return false, nil
			}
		case parser.QueryInput:
			s.query(g, in.Query)
		case parser.OptionInput:
			changed, quit, err := s.option(g, in.Option)
			if err != nil || quit || changed {
				return quit, err
			}
		}
	}
}

// move plays text. When text leaves the origin square or the promotion
// piece open the player is asked for it, and may answer < to give up the
// move. It reports whether a move was played.
func (s *session) move(g *game.Game, text string) (bool, error) {
	_, err := g.Play(text)
	if !needsChoice(err) {
		return s.report(err), nil
	}
	req, derr := parser.DecodeMove(text)
	if derr != nil {
		return s.report(derr), nil
	}

	for needsChoice(err) {
		var ok bool
		var perr error
		if errors.Is(err, errors.ErrPromotionRequired) {
			req.Promotion, ok, perr = s.choosePromotion()
		} else {
			ok, perr = s.choosePiece(&req, err)
		}
		if perr != nil || !ok {
			return false, perr
		}
		_, err = g.Submit(req)
	}
	return s.report(err), nil
}

func needsChoice(err error) bool {
	return errors.Is(err, errors.ErrAmbiguousMoveRequest) || errors.Is(err, errors.ErrPromotionRequired)
}

// choosePiece asks which of the candidate pieces named by the ambiguity
// error err should move and narrows req to its square.
func (s *session) choosePiece(req *chess.MoveRequest, err error) (bool, error) {
	var me *errors.MoveError
	if !errors.As(err, &me) || len(me.Candidates) == 0 {
		return s.report(err), nil
	}
	squares := strings.Join(me.Candidates, " ")
	s.printf("You can make that move with the %s on %s.\n", strings.ToLower(req.Piece.String()), squares)
	for {
		choice, err := s.prompt("Square of the piece to move, < to re-enter the move: ")
		if err != nil {
			return false, err
		}
		if choice == "<" {
			return false, nil
		}
		if slices.Contains(me.Candidates, choice) {
			from := chess.MustSquare(choice)
			req.FromFile, req.FromRank = from.File(), from.Rank()
			return true, nil
		}
		s.printf("Choose one of %s\n", squares)
	}
}

var promotionChoices = []chess.Piece{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// choosePromotion asks for the piece a pawn promotes to.
func (s *session) choosePromotion() (chess.Piece, bool, error) {
	for {
		choice, err := s.prompt("Promote to (Q, R, B or N), ? for the list, < to re-enter the move: ")
		if err != nil {
			return chess.NoPiece, false, err
		}
		choice = strings.ToUpper(choice)
		switch {
		case choice == "<":
			return chess.NoPiece, false, nil
		case choice == "?":
			for _, p := range promotionChoices {
				s.printf("%c = %v\n", p.Letter(), p)
			}
		case len(choice) == 1 && chess.PieceFromLetter(choice[0]).IsPromotionChoice():
			return chess.PieceFromLetter(choice[0]), true, nil
		default:
			s.printf("Unknown promotion %q\n", choice)
		}
	}
}

// option carries out an in-game option. It reports whether the position
// or status changed and whether the players quit.
func (s *session) option(g *game.Game, opt parser.Option) (changed, quit bool, err error) {
	switch opt {
	case parser.Instructions:
		return false, false, output.WriteInstructions(s.out)
	case parser.Quit:
		return false, true, nil
	case parser.Resign:
		return s.report(g.Resign()), false, nil
	case parser.OfferDraw:
		return s.offerDraw(g)
	case parser.ShowLog:
		return false, false, output.WriteLog(s.out, g)
	case parser.Save:
		return false, false, s.save(g)
	case parser.Undo:
		_, err := g.Undo()
		return s.report(err), false, nil
	case parser.Redo:
		_, err := g.Redo()
		return s.report(err), false, nil
	}
	return false, false, nil
}

// report prints err, if any, and reports whether the action succeeded.
func (s *session) report(err error) bool {
	if err != nil {
		s.printf("%v\n", err)
		return false
	}
	return true
}

func (s *session) offerDraw(g *game.Game) (changed, quit bool, err error) {
	opponent := g.ToMove().Opposite()
	answer, err := s.prompt(fmt.Sprintf("%v offers a draw. %v, type y to accept: ", g.ToMove(), opponent))
	if err != nil {
		return false, true, err
	}
	if answer != "y" {
		s.printf("Draw declined.\n")
		return false, false, nil
	}
	return s.report(g.AgreeDraw()), false, nil
}

// endOfGame offers the options left once a game has ended.
func (s *session) endOfGame(g *game.Game) (bool, error) {
	for {
		choice, err := s.prompt(endOfGamePrompt)
		if err != nil {
			return true, err
		}
		switch choice {
		case "<":
			if _, err := g.Undo(); s.report(err) {
				return false, nil
			}
		case "m":
			if err := output.WriteLog(s.out, g); err != nil {
				return true, err
			}
		case "s":
			if err := s.save(g); err != nil {
				return true, err
			}
		case "q":
			return true, nil
		default:
			s.printf("Unknown choice %q\n", choice)
		}
	}
}

// query lists the legal destinations asked for.
func (s *session) query(g *game.Game, q parser.Query) {
	o := output.NewOutputWriter(s.out, 0)
	if q.Castle {
		output.SquareList(o, "Castling:", g.CastlingDestinations())
	} else {
		output.SquareList(o, q.Square.String()+":", g.LegalDestinations(q.Square))
	}
}

// save asks for a log name and writes the move log. A rejected name is
// reported and the game goes on.
func (s *session) save(g *game.Game) error {
	name, err := s.prompt("Save as: ")
	if err != nil {
		return err
	}
	path, err := movelog.Save(s.cfg.MoveLog.Dir, name, g.Moves())
	if err != nil {
		s.printf("Not saved: %v\n", err)
		return nil
	}
	s.cfg.Logger.WithFields(log.Fields{
		"file":  path,
		"plies": g.Plies(),
	}).Info("game saved")
	s.printf("Saved to %s\n", path)
	return nil
}

// restore replays the log called name on a new game and then plays on from
// where the replay stopped. Unless silent each move is shown first and the
// players may stop the review with x.
func (s *session) restore(name string, silent bool) error {
	g, err := game.New(s.cfg)
	if err != nil {
		return err
	}
	replay, err := movelog.Open(g, s.cfg.MoveLog.Dir, name)
	if err != nil {
		s.printf("Cannot restore %q: %v\n", name, err)
		return nil
	}

	if silent {
		_, err = replay.Run()
	} else {
		err = s.review(g, replay)
	}
	if err == io.EOF {
		return err
	}
	if err != nil {
		s.printf("Restore stopped: %v\n", err)
	}
	s.cfg.Logger.WithFields(log.Fields{
		"file":  name,
		"plies": g.Plies(),
	}).Info("game restored")
	s.printf("Restored %d moves.\n", g.Plies())
	return s.play(g)
}

// review steps through replay one move per line of input.
func (s *session) review(g *game.Game, replay *movelog.Replay) error {
	for !replay.Done() {
		if err := s.board.WriteGame(g); err != nil {
			return err
		}
		next, _ := replay.Peek()
		answer, err := s.prompt(fmt.Sprintf("Next: %s. Enter to play it, x to stop: ", next.Text))
		if err != nil {
			return err
		}
		if answer == "x" {
			replay.Stop()
			return nil
		}
		if _, err := replay.Step(); err != nil {
			return err
		}
	}
	return nil
}
