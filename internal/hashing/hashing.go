// Package hashing provides duplicate detection for replayed games.
package hashing

import (
	"github.com/lgbarn/cmdchess-go/internal/chess"
)

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Name identifies the game, usually its log path
	Name string
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// MoveCount is the number of half-moves in the game
	MoveCount int
	// MovesHash hashes the move sequence
	MovesHash uint64
}

// Signature builds the signature of a game that ended on b with toMove to
// play after records.
func Signature(name string, b *chess.Board, toMove chess.Colour, records []chess.MoveRecord) GameSignature {
	return GameSignature{
		Name:      name,
		Hash:      GenerateZobristHash(b, toMove),
		MoveCount: len(records),
		MovesHash: HashMoveSequence(records),
	}
}

// DuplicateDetector tracks seen games. Two games are duplicates when they
// play the same moves to the same final position.
type DuplicateDetector struct {
	// hashTable stores seen signatures by final position hash
	hashTable map[uint64][]GameSignature
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector() *DuplicateDetector {
	return &DuplicateDetector{
		hashTable: make(map[uint64][]GameSignature),
	}
}

// CheckAndAdd checks if a game is a duplicate and adds it to the hash table
// otherwise. For a duplicate it returns the name of the first game seen.
func (d *DuplicateDetector) CheckAndAdd(sig GameSignature) (string, bool) {
	for _, existing := range d.hashTable[sig.Hash] {
		if signaturesMatch(sig, existing) {
			d.duplicateCount++
			return existing.Name, true
		}
	}

	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return "", false
}

// signaturesMatch checks if two game signatures match.
func signaturesMatch(a, b GameSignature) bool {
	return a.Hash == b.Hash && a.MoveCount == b.MoveCount && a.MovesHash == b.MovesHash
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}
