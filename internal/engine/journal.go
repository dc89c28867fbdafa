package engine

import "github.com/lgbarn/cmdchess-go/internal/chess"

// journal records the prior value of everything a simulated move touches so
// that the move can be rolled back exactly without copying the position.
type journal struct {
	squares []squareDelta
	entries []entryDelta

	seenSquares chess.SquareSet
	seenEntries chess.SquareSet

	rights  chess.CastlingRights
	toMove  chess.Colour
	kings   [chess.NumColours]chess.Square
	logLens [chess.NumColours]int
}

type squareDelta struct {
	square   chess.Square
	occupant chess.Occupant
}

type entryDelta struct {
	square  chess.Square
	owner   chess.Occupant
	attacks chess.SquareSet
}

// begin starts recording changes to p.
func (p *Position) begin() {
	j := p.journal
	if j == nil {
		j = &journal{
			squares: make([]squareDelta, 0, 8),
			entries: make([]entryDelta, 0, 16),
		}
	}
	j.squares = j.squares[:0]
	j.entries = j.entries[:0]
	j.seenSquares = 0
	j.seenEntries = 0
	j.rights = p.rights
	j.toMove = p.toMove
	j.kings = p.kings
	for colour := range j.logLens {
		j.logLens[colour] = len(p.history.logs[colour])
	}
	p.journal = j
	p.recording = true
}

// rollback restores p to the state captured by begin.
func (p *Position) rollback() {
	j := p.journal
	for i := len(j.entries) - 1; i >= 0; i-- {
		e := j.entries[i]
		p.attacks.owners[e.square] = e.owner
		p.attacks.attacks[e.square] = e.attacks
	}
	for i := len(j.squares) - 1; i >= 0; i-- {
		d := j.squares[i]
		p.board.Squares[d.square] = d.occupant
	}
	p.rights = j.rights
	p.toMove = j.toMove
	p.kings = j.kings
	for colour, n := range j.logLens {
		p.history.logs[colour] = p.history.logs[colour][:n]
	}
	p.recording = false
}

// setSquare writes the board, journaling the prior occupant when recording.
func (p *Position) setSquare(sq chess.Square, o chess.Occupant) {
	if p.recording && !p.journal.seenSquares.Has(sq) {
		p.journal.seenSquares = p.journal.seenSquares.Add(sq)
		p.journal.squares = append(p.journal.squares, squareDelta{square: sq, occupant: p.board.Get(sq)})
	}
	p.board.Set(sq, o)
}

// setEntry writes an attack map entry, journaling the prior entry when recording.
func (p *Position) setEntry(sq chess.Square, owner chess.Occupant, attacks chess.SquareSet) {
	if p.recording && !p.journal.seenEntries.Has(sq) {
		p.journal.seenEntries = p.journal.seenEntries.Add(sq)
		p.journal.entries = append(p.journal.entries, entryDelta{
			square:  sq,
			owner:   p.attacks.owners[sq],
			attacks: p.attacks.attacks[sq],
		})
	}
	p.attacks.owners[sq] = owner
	p.attacks.attacks[sq] = attacks
}
