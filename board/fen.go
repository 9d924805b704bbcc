package board

import (
	"errors"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// pieceFromChar converts a FEN character to a piece, or nil if unrecognized.
func pieceFromChar(ch rune) *Piece {
	color := White
	if ch >= 'a' && ch <= 'z' {
		color = Black
		ch -= 'a' - 'A'
	}
	switch ch {
	case 'P':
		return &Piece{Kind: Pawn, Color: color}
	case 'N':
		return &Piece{Kind: Knight, Color: color}
	case 'B':
		return &Piece{Kind: Bishop, Color: color}
	case 'R':
		return &Piece{Kind: Rook, Color: color}
	case 'Q':
		return &Piece{Kind: Queen, Color: color}
	case 'K':
		return &Piece{Kind: King, Color: color}
	default:
		return nil
	}
}

// charFromPiece converts a piece to its FEN character.
func charFromPiece(p *Piece) byte {
	var ch byte
	switch p.Kind {
	case Pawn:
		ch = 'P'
	case Knight:
		ch = 'N'
	case Bishop:
		ch = 'B'
	case Rook:
		ch = 'R'
	case Queen:
		ch = 'Q'
	case King:
		ch = 'K'
	}
	if p.Color == Black {
		ch += 'a' - 'A'
	}
	return ch
}

// ParseSquare converts algebraic coordinates ("e2") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, errors.New("invalid square length")
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, errors.New("invalid square")
	}
	return Square{Row: int('8' - rank), Col: int(file - 'a')}, nil
}

// ParseFEN parses a FEN string into a board and the side to move. Castling
// availability maps onto the HasMoved flags of the kings and corner rooks;
// the halfmove clock and fullmove number, if present, are ignored since the
// board does not track them. FEN rank 8 is row 0.
func ParseFEN(fen string) (*Board, Color, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, White, errors.New("invalid FEN: not enough fields")
	}

	b := &Board{}

	// 1. Piece placement
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, White, errors.New("invalid FEN: incorrect number of ranks")
	}
	for row, rankStr := range ranks {
		col := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				col += int(ch - '0')
				continue
			}
			p := pieceFromChar(ch)
			if p == nil {
				return nil, White, errors.New("invalid FEN: unrecognized piece character")
			}
			if col >= 8 {
				return nil, White, errors.New("invalid FEN: too many squares in rank")
			}
			b.squares[row][col] = p
			col++
		}
		if col != 8 {
			return nil, White, errors.New("invalid FEN: rank does not have 8 columns")
		}
	}

	// 2. Side to move
	var sideToMove Color
	switch fields[1] {
	case "w":
		sideToMove = White
	case "b":
		sideToMove = Black
	default:
		return nil, White, errors.New("invalid FEN: side to move must be 'w' or 'b'")
	}

	// 3. Castling rights, translated into HasMoved flags. A missing right
	// marks the corresponding rook as moved; a side with neither right has
	// its king marked as moved.
	rights := fields[2]
	if rights != "-" {
		for _, ch := range rights {
			if !strings.ContainsRune("KQkq", ch) {
				return nil, White, errors.New("invalid FEN: invalid castling rights character")
			}
		}
	}
	applyRookFlag(b, Square{7, 7}, White, strings.Contains(rights, "K"))
	applyRookFlag(b, Square{7, 0}, White, strings.Contains(rights, "Q"))
	applyRookFlag(b, Square{0, 7}, Black, strings.Contains(rights, "k"))
	applyRookFlag(b, Square{0, 0}, Black, strings.Contains(rights, "q"))
	applyKingFlag(b, Square{7, 4}, White, strings.ContainsAny(rights, "KQ"))
	applyKingFlag(b, Square{0, 4}, Black, strings.ContainsAny(rights, "kq"))

	// 4. En passant target square
	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, White, errors.New("invalid FEN: invalid en passant square")
		}
		b.enPassantTarget = &sq
	}

	return b, sideToMove, nil
}

func applyRookFlag(b *Board, corner Square, color Color, right bool) {
	p := b.squares[corner.Row][corner.Col]
	if p != nil && p.Kind == Rook && p.Color == color {
		p.HasMoved = !right
	}
}

func applyKingFlag(b *Board, home Square, color Color, right bool) {
	p := b.squares[home.Row][home.Col]
	if p != nil && p.Kind == King && p.Color == color {
		p.HasMoved = !right
	}
}

// ToFEN renders the position as a FEN string. Castling rights are derived
// from the HasMoved flags; the halfmove clock and fullmove number are
// emitted as "0 1" since the board does not track them.
func (b *Board) ToFEN(sideToMove Color) string {
	var sb strings.Builder

	for row := 0; row < 8; row++ {
		empty := 0
		for col := 0; col < 8; col++ {
			p := b.squares[row][col]
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(charFromPiece(p))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	if sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	rights := ""
	if b.castleIntact(Square{7, 4}, Square{7, 7}, White) {
		rights += "K"
	}
	if b.castleIntact(Square{7, 4}, Square{7, 0}, White) {
		rights += "Q"
	}
	if b.castleIntact(Square{0, 4}, Square{0, 7}, Black) {
		rights += "k"
	}
	if b.castleIntact(Square{0, 4}, Square{0, 0}, Black) {
		rights += "q"
	}
	if rights == "" {
		rights = "-"
	}
	sb.WriteString(rights)
	sb.WriteByte(' ')

	if b.enPassantTarget != nil {
		sb.WriteString(b.enPassantTarget.String())
	} else {
		sb.WriteByte('-')
	}

	sb.WriteString(" 0 1")
	return sb.String()
}

// castleIntact reports whether an unmoved king and an unmoved rook of the
// given color still stand on their home squares.
func (b *Board) castleIntact(kingSq, rookSq Square, color Color) bool {
	k := b.squares[kingSq.Row][kingSq.Col]
	r := b.squares[rookSq.Row][rookSq.Col]
	return k != nil && k.Kind == King && k.Color == color && !k.HasMoved &&
		r != nil && r.Kind == Rook && r.Color == color && !r.HasMoved
}
