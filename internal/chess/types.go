// Package chess provides core chess types and operations.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// NumColours is the number of sides in a game.
const NumColours = 2

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece type.
type Piece int

const (
	NoPiece Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
// Pawns have no letter in move notation but 'P' is returned for completeness.
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceFromLetter converts an uppercase piece letter to a piece type.
func PieceFromLetter(c byte) Piece {
	switch c {
	case 'K':
		return King
	case 'Q':
		return Queen
	case 'R':
		return Rook
	case 'B':
		return Bishop
	case 'N':
		return Knight
	case 'P':
		return Pawn
	}
	return NoPiece
}

// IsSlider reports whether the piece slides until blocked.
func (p Piece) IsSlider() bool {
	return p.Movement().Reach == LongReach
}

// IsMinor reports whether the piece is a bishop or a knight.
func (p Piece) IsMinor() bool {
	return p == Bishop || p == Knight
}

// IsPromotionChoice reports whether a pawn may promote to p.
func (p Piece) IsPromotionChoice() bool {
	switch p {
	case Queen, Rook, Bishop, Knight:
		return true
	}
	return false
}

// Reach describes how far a piece travels along each of its vectors.
type Reach int

const (
	// ShortReach pieces take exactly one step along each vector.
	ShortReach Reach = iota
	// LongReach pieces slide along each vector until blocked.
	LongReach
)

// Vector is a (file, rank) step.
type Vector struct {
	DF, DR int
}

// Movement is the per-type table entry of direction vectors and reach kind.
type Movement struct {
	Vectors []Vector
	Reach   Reach
}

var (
	kingQueenVectors = []Vector{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	rookVectors      = []Vector{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}
	bishopVectors    = []Vector{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	knightVectors    = []Vector{{1, 2}, {1, -2}, {-1, 2}, {-1, -2}, {2, 1}, {2, -1}, {-2, 1}, {-2, -1}}
	// Pawn capture vectors for a side moving up the board; scaled by Side.Direction.
	pawnVectors         = []Vector{{-1, 1}, {1, 1}}
	reversedPawnVectors = []Vector{{1, -1}, {-1, -1}}

	movements = [NumPieceValues]Movement{
		NoPiece: {},
		Pawn:    {Vectors: pawnVectors, Reach: ShortReach},
		Knight:  {Vectors: knightVectors, Reach: ShortReach},
		Bishop:  {Vectors: bishopVectors, Reach: LongReach},
		Rook:    {Vectors: rookVectors, Reach: LongReach},
		Queen:   {Vectors: kingQueenVectors, Reach: LongReach},
		King:    {Vectors: kingQueenVectors, Reach: ShortReach},
	}
)

// Movement returns the direction vectors and reach kind of a piece type.
// Pawn vectors are given for the side moving towards rank 8.
func (p Piece) Movement() Movement {
	if p <= NoPiece || p >= NumPieceValues {
		return Movement{}
	}
	return movements[p]
}

// Occupant is the content of a square: Empty or a coloured piece.
type Occupant uint8

// Empty is the occupant of a vacant square.
const Empty Occupant = 0

// PieceShift is used for encoding coloured pieces.
const PieceShift = 1

// MakeOccupant creates a coloured piece value.
func MakeOccupant(colour Colour, piece Piece) Occupant {
	if piece == NoPiece {
		return Empty
	}
	return Occupant(int(piece)<<PieceShift | int(colour))
}

// W creates a white piece.
func W(piece Piece) Occupant {
	return MakeOccupant(White, piece)
}

// B creates a black piece.
func B(piece Piece) Occupant {
	return MakeOccupant(Black, piece)
}

// Colour extracts the colour from a coloured piece.
func (o Occupant) Colour() Colour {
	return Colour(o & 0x01)
}

// Piece extracts the piece type from a coloured piece.
func (o Occupant) Piece() Piece {
	return Piece(o >> PieceShift)
}

// IsEmpty reports whether the occupant is Empty.
func (o Occupant) IsEmpty() bool {
	return o == Empty
}

// Is reports whether o is a piece of the given colour.
func (o Occupant) Is(colour Colour) bool {
	return o != Empty && o.Colour() == colour
}

// String returns the piece letter, lowercase for Black, or "." for Empty.
func (o Occupant) String() string {
	if o == Empty {
		return "."
	}
	letter := o.Piece().Letter()
	if o.Colour() == Black {
		letter += 'a' - 'A'
	}
	return string(letter)
}

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	RankBase = '1'
	ColBase  = 'a'
)

// Square is an integer-encoded board square: rank*8 + file, a1 = 0, h8 = 63.
type Square int8

// NoSquare marks an absent square.
const NoSquare Square = -1

// NewSquare builds a square from a zero-based file and rank.
// It returns NoSquare when either coordinate is off the board.
func NewSquare(file, rank int) Square {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare
	}
	return Square(rank*BoardSize + file)
}

// ParseSquare parses algebraic coordinates such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	sq := NewSquare(int(s[0])-ColBase, int(s[1])-RankBase)
	if sq == NoSquare {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	return sq, nil
}

// MustSquare parses a square and panics on malformed input. Intended for tables and tests.
func MustSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// File returns the zero-based file (0 = a).
func (s Square) File() int {
	return int(s) % BoardSize
}

// Rank returns the zero-based rank (0 = rank 1).
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// Valid reports whether s lies on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// Offset returns the square reached by one step of v, or NoSquare when it leaves the board.
func (s Square) Offset(v Vector) Square {
	return NewSquare(s.File()+v.DF, s.Rank()+v.DR)
}

// FileLetter returns the file as 'a'..'h'.
func (s Square) FileLetter() byte {
	return byte(ColBase + s.File())
}

// RankDigit returns the rank as '1'..'8'.
func (s Square) RankDigit() byte {
	return byte(RankBase + s.Rank())
}

// String returns the algebraic name of the square.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{s.FileLetter(), s.RankDigit()})
}

// Side carries the per-colour facts used by pawn and castling logic.
type Side struct {
	// BackRank is the zero-based rank the side's pieces start on.
	BackRank int
	// Direction is +1 when the side's pawns advance up the board, -1 otherwise.
	Direction int
}

// Sides is the immutable per-colour configuration handed to every component
// that needs back rank or direction facts.
type Sides [NumColours]Side

// StandardSides returns the orthodox layout: White on rank 1 moving up, Black on rank 8 moving down.
func StandardSides() Sides {
	return Sides{
		White: {BackRank: 0, Direction: 1},
		Black: {BackRank: 7, Direction: -1},
	}
}

// BackRank returns the zero-based back rank of colour.
func (s Sides) BackRank(colour Colour) int {
	return s[colour].BackRank
}

// Direction returns the pawn advance direction of colour.
func (s Sides) Direction(colour Colour) int {
	return s[colour].Direction
}

// PawnRank returns the rank colour's pawns start on.
func (s Sides) PawnRank(colour Colour) int {
	return s[colour].BackRank + s[colour].Direction
}

// PromotionRank returns the rank on which colour's pawns promote.
func (s Sides) PromotionRank(colour Colour) int {
	return s[colour.Opposite()].BackRank
}

// Vectors returns the piece's direction vectors oriented for colour.
func (s Sides) Vectors(colour Colour, piece Piece) []Vector {
	if piece == Pawn && s.Direction(colour) < 0 {
		return reversedPawnVectors
	}
	return piece.Movement().Vectors
}
