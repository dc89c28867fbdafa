// Package game runs a two-player chess game on top of the engine: it
// classifies each turn, resolves move requests against the legal move set
// and answers legal-move queries.
package game

// Status is the state of the game at the start of a turn.
type Status int

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
	DrawInsufficientMaterial
	Resigned
	DrawAgreed
)

var statusNames = [...]string{
	Ongoing:                  "ongoing",
	Check:                    "check",
	Checkmate:                "checkmate",
	Stalemate:                "stalemate",
	DrawInsufficientMaterial: "draw by insufficient material",
	Resigned:                 "resigned",
	DrawAgreed:               "draw by agreement",
}

// String returns the string representation of a status.
func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// IsTerminal reports whether no further moves may be played.
func (s Status) IsTerminal() bool {
	return s >= Checkmate
}

// IsDraw reports whether the game ended without a winner.
func (s Status) IsDraw() bool {
	return s == Stalemate || s == DrawInsufficientMaterial || s == DrawAgreed
}
