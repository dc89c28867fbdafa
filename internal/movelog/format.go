// Package movelog saves games as numbered move tables and restores them by
// replaying every move through the game's validation.
package movelog

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/cmdchess-go/internal/chess"
	"github.com/lgbarn/cmdchess-go/internal/parser"
)

const (
	numberWidth = 5
	moveWidth   = 10
)

// Format renders records as the move table: one line per move number with
// the number padded to five columns, White's move padded to ten and Black's
// move. When Black moved first White's slot holds the placeholder.
func Format(records []chess.MoveRecord) string {
	var sb strings.Builder
	if len(records) == 0 {
		return ""
	}

	number := 1
	if records[0].Colour == chess.Black {
		writeNumber(&sb, number)
		fmt.Fprintf(&sb, "%-*s", moveWidth, parser.Placeholder)
	}
	for _, rec := range records {
		if rec.Colour == chess.White {
			writeNumber(&sb, number)
			fmt.Fprintf(&sb, "%-*s", moveWidth, rec.Notation())
			continue
		}
		sb.WriteString(rec.Notation())
		sb.WriteByte('\n')
		number++
	}
	if records[len(records)-1].Colour == chess.White {
		sb.WriteByte('\n')
	}
	return sb.String()
}

func writeNumber(sb *strings.Builder, number int) {
	fmt.Fprintf(sb, "%-*s", numberWidth, fmt.Sprintf("%d:", number))
}

// Write writes the move table of records to w.
func Write(w io.Writer, records []chess.MoveRecord) error {
	_, err := io.WriteString(w, Format(records))
	return err
}

// Read parses a move table. name labels errors and may be empty.
func Read(r io.Reader, name string) ([]parser.LogMove, error) {
	return parser.NewParser(r, name).ParseLog()
}

// LastMove returns the notation of the most recent record, or "".
func LastMove(records []chess.MoveRecord) string {
	if len(records) == 0 {
		return ""
	}
	return records[len(records)-1].Notation()
}
