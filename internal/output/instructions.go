package output

import (
	"io"
	"strings"
)

var instructions = strings.TrimLeft(`
Enter moves in algebraic notation: e4, Nf3, exd5, Nbd2, R1e2, e8=Q,
O-O or O-O-O. Coordinates such as g1f3 or e7e8q work too; castle
with the king's move, e.g. e1g1.

Options during a turn:
  i    show these instructions
  q    quit the game
  /    resign
  =    offer a draw; the opponent answers y to accept
  m    show the move log
  s    save the move log
  <    take back the last move
  >    replay a move taken back
  ?e2  list where the piece on e2 can move
  ?O   list where the king can castle

When the game is over: < takes back the last move, m shows the log,
s saves it and q quits.
`, "\n")

// Instructions returns the help text shown for the i option.
func Instructions() string {
	return instructions
}

// WriteInstructions writes the help text.
func WriteInstructions(w io.Writer) error {
	_, err := io.WriteString(w, instructions)
	return err
}
