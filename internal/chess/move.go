package chess

import "strings"

// MoveClass categorizes different types of chess moves.
type MoveClass int

const (
	PawnMove MoveClass = iota
	PawnDoubleAdvance
	PawnMoveWithPromotion
	EnPassantPawnMove
	PieceMove
	KingsideCastle
	QueensideCastle
)

// IsCastle returns true for either castling class.
func (c MoveClass) IsCastle() bool {
	return c == KingsideCastle || c == QueensideCastle
}

// Wing identifies a castling side.
type Wing int

const (
	NoWing Wing = iota
	Kingside
	Queenside
)

// String returns the castling notation of the wing.
func (w Wing) String() string {
	switch w {
	case Kingside:
		return "O-O"
	case Queenside:
		return "O-O-O"
	}
	return ""
}

// RookFile returns the home file of the wing's rook.
func (w Wing) RookFile() int {
	if w == Queenside {
		return 0
	}
	return BoardSize - 1
}

// Class returns the castling move class of the wing.
func (w Wing) Class() MoveClass {
	if w == Queenside {
		return QueensideCastle
	}
	return KingsideCastle
}

// KingHomeFile is the file both kings start and castle from.
const KingHomeFile = 4

// Move is a generated candidate: a piece, its origin and destination, and the class
// telling the executor which special rules apply. Castles are keyed by the king's home square.
type Move struct {
	Class MoveClass
	Piece Piece
	From  Square
	To    Square
	// Promotion is the piece a promoting pawn becomes. Generated moves leave it
	// as NoPiece; the promotion choice is supplied with the move request.
	Promotion Piece
}

// Wing returns the castling wing of a castle move, or NoWing.
func (m Move) Wing() Wing {
	switch m.Class {
	case KingsideCastle:
		return Kingside
	case QueensideCastle:
		return Queenside
	}
	return NoWing
}

// MoveRecord is the immutable unit of History, undo and redo.
type MoveRecord struct {
	Class  MoveClass
	Colour Colour
	Piece  Piece
	From   Square
	To     Square

	// Captured is the occupant removed by the move (Empty when nothing was taken).
	Captured Occupant
	// Promotion is the piece a pawn was substituted by (NoPiece otherwise).
	Promotion Piece
	// CastlingRookFile is the home file of the rook moved by a castle, or -1.
	CastlingRookFile int
	// EnPassantCapture is the square of the pawn taken en passant, or NoSquare.
	EnPassantCapture Square
	// Specifier is the minimal file/rank/both qualifier needed to identify the piece.
	Specifier string

	// RightsBefore holds the castling rights in force before the move.
	RightsBefore CastlingRights
}

// IsCapture returns true if this move took a piece.
func (r MoveRecord) IsCapture() bool {
	return r.Captured != Empty
}

// IsCastle returns true if this move is a castling move.
func (r MoveRecord) IsCastle() bool {
	return r.Class.IsCastle()
}

// Move returns the generated move the record was created from.
func (r MoveRecord) Move() Move {
	return Move{Class: r.Class, Piece: r.Piece, From: r.From, To: r.To, Promotion: r.Promotion}
}

// Notation returns the move in the log's algebraic form: piece letter (none
// for pawns), specifier, "x" on capture, destination and "=P" on promotion.
// Castles are written O-O and O-O-O.
func (r MoveRecord) Notation() string {
	if r.IsCastle() {
		return r.Move().Wing().String()
	}
	var sb strings.Builder
	if r.Piece != Pawn {
		sb.WriteByte(r.Piece.Letter())
	}
	sb.WriteString(r.Specifier)
	if r.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(r.To.String())
	if r.Promotion != NoPiece {
		sb.WriteByte('=')
		sb.WriteByte(r.Promotion.Letter())
	}
	return sb.String()
}

// MoveRequest is a structured move request produced by the notation parser.
type MoveRequest struct {
	Piece Piece
	// FromFile and FromRank are optional zero-based disambiguators (-1 when absent).
	FromFile int
	FromRank int
	To       Square
	// Promotion is the requested promotion piece, or NoPiece.
	Promotion Piece
	// Castle requests castling on a wing; Piece and To are ignored when set.
	Castle Wing
}

// NewMoveRequest returns a request for piece to sq with no disambiguation.
func NewMoveRequest(piece Piece, to Square) MoveRequest {
	return MoveRequest{Piece: piece, FromFile: -1, FromRank: -1, To: to}
}

// CastleRequest returns a castling request for wing.
func CastleRequest(wing Wing) MoveRequest {
	return MoveRequest{Piece: King, FromFile: -1, FromRank: -1, To: NoSquare, Castle: wing}
}

// Matches reports whether sq satisfies the request's disambiguation.
func (r MoveRequest) Matches(sq Square) bool {
	if r.FromFile >= 0 && sq.File() != r.FromFile {
		return false
	}
	if r.FromRank >= 0 && sq.Rank() != r.FromRank {
		return false
	}
	return true
}

// CastlingRights records per colour and wing whether castling is still potentially available.
type CastlingRights [NumColours][2]bool

// AllCastlingRights returns rights with every flag set.
func AllCastlingRights() CastlingRights {
	return CastlingRights{{true, true}, {true, true}}
}

// Has reports whether colour may still castle on wing.
func (c CastlingRights) Has(colour Colour, wing Wing) bool {
	if wing == NoWing {
		return false
	}
	return c[colour][wing-1]
}

// Revoke clears the right for colour on wing.
func (c *CastlingRights) Revoke(colour Colour, wing Wing) {
	if wing != NoWing {
		c[colour][wing-1] = false
	}
}

// Grant sets the right for colour on wing.
func (c *CastlingRights) Grant(colour Colour, wing Wing) {
	if wing != NoWing {
		c[colour][wing-1] = true
	}
}
