package board

// Color of a side. There are exactly two.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing color.
func (c Color) Other() Color { return 1 - c }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Kind identifies a piece type without color.
type Kind uint8

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// Material values indexed by Kind.
var kindValues = [6]int{100, 320, 330, 500, 900, 20000}

// Value returns the material value of the piece kind.
func (k Kind) Value() int { return kindValues[k] }

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "unknown"
	}
}

// Piece is a single chess piece. A piece is owned by exactly one square at a
// time; moving it transfers the pointer to the destination square.
type Piece struct {
	Kind     Kind
	Color    Color
	HasMoved bool
}

// Square addresses a board cell. Row 0 is Black's back rank; White starts on
// rows 6 and 7.
type Square struct {
	Row, Col int
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < 8 && s.Col >= 0 && s.Col < 8
}

// String renders the square in algebraic coordinates ("e4").
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(s.Col), '8' - byte(s.Row)})
}

// Move is a from/to square pair. Promotion is implicit: a pawn landing on the
// farthest rank always becomes a queen.
type Move struct {
	From, To Square
}

func (m Move) String() string { return m.From.String() + m.To.String() }

// Board holds the position: an 8x8 grid of pieces plus the en passant target
// square, which is set only immediately after a two-square pawn advance and
// cleared by every other move.
type Board struct {
	squares         [8][8]*Piece
	enPassantTarget *Square
}

// NewBoard returns a board with the standard starting position.
func NewBoard() *Board {
	b := &Board{}
	b.setup()
	return b
}

var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func (b *Board) setup() {
	for col := 0; col < 8; col++ {
		b.squares[0][col] = &Piece{Kind: backRank[col], Color: Black}
		b.squares[1][col] = &Piece{Kind: Pawn, Color: Black}
		b.squares[6][col] = &Piece{Kind: Pawn, Color: White}
		b.squares[7][col] = &Piece{Kind: backRank[col], Color: White}
	}
}

// Reset restores the standard starting position.
func (b *Board) Reset() {
	b.squares = [8][8]*Piece{}
	b.enPassantTarget = nil
	b.setup()
}

// PieceAt returns the piece on the given square, or nil if the square is
// empty or off the board.
func (b *Board) PieceAt(sq Square) *Piece {
	if !sq.Valid() {
		return nil
	}
	return b.squares[sq.Row][sq.Col]
}

// EnPassantTarget returns the current en passant target square, or nil.
func (b *Board) EnPassantTarget() *Square { return b.enPassantTarget }

// FindKing locates the king of the given color. The second return is false if
// no such king is on the board.
func (b *Board) FindKing(color Color) (Square, bool) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.squares[row][col]
			if p != nil && p.Kind == King && p.Color == color {
				return Square{row, col}, true
			}
		}
	}
	return Square{}, false
}

// Clone returns a deep copy of the board. Pieces are copied by value so the
// clone shares no state with the original.
func (b *Board) Clone() *Board {
	c := &Board{}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if p := b.squares[row][col]; p != nil {
				cp := *p
				c.squares[row][col] = &cp
			}
		}
	}
	if b.enPassantTarget != nil {
		t := *b.enPassantTarget
		c.enPassantTarget = &t
	}
	return c
}

// Equal reports deep value equality with another board: every square's piece
// (kind, color, HasMoved) and the en passant target.
func (b *Board) Equal(o *Board) bool {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p, q := b.squares[row][col], o.squares[row][col]
			if (p == nil) != (q == nil) {
				return false
			}
			if p != nil && *p != *q {
				return false
			}
		}
	}
	if (b.enPassantTarget == nil) != (o.enPassantTarget == nil) {
		return false
	}
	if b.enPassantTarget != nil && *b.enPassantTarget != *o.enPassantTarget {
		return false
	}
	return true
}
