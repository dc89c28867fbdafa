package engine

import "github.com/lgbarn/cmdchess-go/internal/chess"

// History is the ordered move log: one chronological sequence per colour and
// a redo stack of undone records. Redo is only valid for a contiguous undo chain.
type History struct {
	logs  [chess.NumColours][]chess.MoveRecord
	redo  []chess.MoveRecord
	first chess.Colour
}

// NewHistory creates an empty history whose first move belongs to first.
func NewHistory(first chess.Colour) History {
	return History{first: first}
}

// Push appends rec to its colour's log.
func (h *History) Push(rec chess.MoveRecord) {
	h.logs[rec.Colour] = append(h.logs[rec.Colour], rec)
}

// Pop removes and returns the last record of colour.
func (h *History) Pop(colour chess.Colour) (chess.MoveRecord, bool) {
	log := h.logs[colour]
	if len(log) == 0 {
		return chess.MoveRecord{}, false
	}
	rec := log[len(log)-1]
	h.logs[colour] = log[:len(log)-1]
	return rec, true
}

// Last returns the last record of colour without removing it.
func (h *History) Last(colour chess.Colour) (chess.MoveRecord, bool) {
	log := h.logs[colour]
	if len(log) == 0 {
		return chess.MoveRecord{}, false
	}
	return log[len(log)-1], true
}

// Len returns the number of moves colour has made.
func (h *History) Len(colour chess.Colour) int {
	return len(h.logs[colour])
}

// Plies returns the total number of half-moves.
func (h *History) Plies() int {
	return len(h.logs[chess.White]) + len(h.logs[chess.Black])
}

// First returns the colour that made the first move.
func (h *History) First() chess.Colour {
	return h.first
}

// Log returns a copy of colour's records.
func (h *History) Log(colour chess.Colour) []chess.MoveRecord {
	return append([]chess.MoveRecord(nil), h.logs[colour]...)
}

// Moves returns all records in the order they were played.
func (h *History) Moves() []chess.MoveRecord {
	moves := make([]chess.MoveRecord, 0, h.Plies())
	side := h.first
	idx := [chess.NumColours]int{}
	for len(moves) < cap(moves) {
		if idx[side] >= len(h.logs[side]) {
			break
		}
		moves = append(moves, h.logs[side][idx[side]])
		idx[side]++
		side = side.Opposite()
	}
	return moves
}

// PushRedo saves an undone record for a later redo.
func (h *History) PushRedo(rec chess.MoveRecord) {
	h.redo = append(h.redo, rec)
}

// PopRedo removes and returns the most recently undone record.
func (h *History) PopRedo() (chess.MoveRecord, bool) {
	if len(h.redo) == 0 {
		return chess.MoveRecord{}, false
	}
	rec := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	return rec, true
}

// RedoLen returns the number of records available for redo.
func (h *History) RedoLen() int {
	return len(h.redo)
}

// ClearRedo drops the redo stack; a new line of play has begun.
func (h *History) ClearRedo() {
	h.redo = nil
}

// clone returns a history that shares no storage with h.
func (h *History) clone() History {
	c := History{first: h.first}
	for colour := range h.logs {
		c.logs[colour] = append([]chess.MoveRecord(nil), h.logs[colour]...)
	}
	c.redo = append([]chess.MoveRecord(nil), h.redo...)
	return c
}
