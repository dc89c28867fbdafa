package chess

import "math/bits"

// SquareSet is a set of squares, one bit per square index.
type SquareSet uint64

// SquareSetOf builds a set from the given squares.
func SquareSetOf(squares ...Square) SquareSet {
	var set SquareSet
	for _, sq := range squares {
		set = set.Add(sq)
	}
	return set
}

// Has reports whether sq is in the set.
func (s SquareSet) Has(sq Square) bool {
	return sq.Valid() && s&(1<<uint(sq)) != 0
}

// Add returns the set with sq included.
func (s SquareSet) Add(sq Square) SquareSet {
	if !sq.Valid() {
		return s
	}
	return s | 1<<uint(sq)
}

// Remove returns the set with sq excluded.
func (s SquareSet) Remove(sq Square) SquareSet {
	if !sq.Valid() {
		return s
	}
	return s &^ (1 << uint(sq))
}

// Count returns the number of squares in the set.
func (s SquareSet) Count() int {
	return bits.OnesCount64(uint64(s))
}

// Squares lists the members in ascending square order.
func (s SquareSet) Squares() []Square {
	squares := make([]Square, 0, s.Count())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		squares = append(squares, Square(bits.TrailingZeros64(rest)))
	}
	return squares
}

// String lists the members, e.g. "{e4 d5}".
func (s SquareSet) String() string {
	out := []byte{'{'}
	for i, sq := range s.Squares() {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, sq.String()...)
	}
	return string(append(out, '}'))
}

// Board holds the occupant of each of the 64 squares.
type Board struct {
	Squares [NumSquares]Occupant
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// SetupInitialPosition sets up the standard chess starting position
// on the back and pawn ranks given by sides.
func (b *Board) SetupInitialPosition(sides Sides) {
	b.Squares = [NumSquares]Occupant{}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for _, colour := range []Colour{White, Black} {
		for file := 0; file < BoardSize; file++ {
			b.Set(NewSquare(file, sides.BackRank(colour)), MakeOccupant(colour, backRank[file]))
			b.Set(NewSquare(file, sides.PawnRank(colour)), MakeOccupant(colour, Pawn))
		}
	}
}

// Get returns the occupant of sq.
func (b *Board) Get(sq Square) Occupant {
	if !sq.Valid() {
		return Empty
	}
	return b.Squares[sq]
}

// Set places an occupant on sq.
func (b *Board) Set(sq Square, o Occupant) {
	if sq.Valid() {
		b.Squares[sq] = o
	}
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Get(sq) == Empty
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// FindKing returns the square of colour's king, or NoSquare.
func (b *Board) FindKing(colour Colour) Square {
	king := MakeOccupant(colour, King)
	for sq := Square(0); sq < NumSquares; sq++ {
		if b.Squares[sq] == king {
			return sq
		}
	}
	return NoSquare
}

// Count returns how many pieces of colour and type stand on the board.
func (b *Board) Count(colour Colour, piece Piece) int {
	want := MakeOccupant(colour, piece)
	n := 0
	for _, o := range b.Squares {
		if o == want {
			n++
		}
	}
	return n
}
