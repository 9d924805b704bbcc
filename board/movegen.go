package board

// Direction sets for the sliding pieces.
var (
	bishopDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	rookDirs   = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenDirs  = [8][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}, {-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	knightDeltas = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
)

// RawMoves generates the pseudo-legal destination squares for the piece on sq:
// movement geometry and occupancy are respected, but the moving side's king
// may be left attacked. An empty or off-board square yields no moves.
func (b *Board) RawMoves(sq Square) []Square {
	p := b.PieceAt(sq)
	if p == nil {
		return nil
	}
	switch p.Kind {
	case Pawn:
		return b.pawnMoves(sq, p)
	case Knight:
		return b.stepMoves(sq, p, knightDeltas[:])
	case Bishop:
		return b.slidingMoves(sq, p, bishopDirs[:])
	case Rook:
		return b.slidingMoves(sq, p, rookDirs[:])
	case Queen:
		return b.slidingMoves(sq, p, queenDirs[:])
	case King:
		return b.kingMoves(sq, p)
	}
	return nil
}

// pawnDirection is the row delta a pawn of the given color advances by.
func pawnDirection(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

// pawnStartRow is the row a pawn of the given color starts on, which gates
// the two-square advance.
func pawnStartRow(c Color) int {
	if c == White {
		return 6
	}
	return 1
}

// promotionRow is the farthest row for a pawn of the given color.
func promotionRow(c Color) int {
	if c == White {
		return 0
	}
	return 7
}

func (b *Board) pawnMoves(sq Square, p *Piece) []Square {
	var moves []Square
	dir := pawnDirection(p.Color)

	one := Square{sq.Row + dir, sq.Col}
	if one.Valid() && b.squares[one.Row][one.Col] == nil {
		moves = append(moves, one)
		if sq.Row == pawnStartRow(p.Color) {
			two := Square{sq.Row + 2*dir, sq.Col}
			if b.squares[two.Row][two.Col] == nil {
				moves = append(moves, two)
			}
		}
	}

	for _, dc := range [2]int{-1, 1} {
		diag := Square{sq.Row + dir, sq.Col + dc}
		if !diag.Valid() {
			continue
		}
		target := b.squares[diag.Row][diag.Col]
		if target != nil && target.Color != p.Color {
			moves = append(moves, diag)
		} else if b.enPassantTarget != nil && diag == *b.enPassantTarget {
			moves = append(moves, diag)
		}
	}
	return moves
}

// stepMoves handles the fixed-offset movers (knight, king ring): on-board
// targets not occupied by a friendly piece.
func (b *Board) stepMoves(sq Square, p *Piece, deltas [][2]int) []Square {
	var moves []Square
	for _, d := range deltas {
		to := Square{sq.Row + d[0], sq.Col + d[1]}
		if !to.Valid() {
			continue
		}
		target := b.squares[to.Row][to.Col]
		if target == nil || target.Color != p.Color {
			moves = append(moves, to)
		}
	}
	return moves
}

func (b *Board) slidingMoves(sq Square, p *Piece, dirs [][2]int) []Square {
	var moves []Square
	for _, d := range dirs {
		to := Square{sq.Row + d[0], sq.Col + d[1]}
		for to.Valid() {
			target := b.squares[to.Row][to.Col]
			if target == nil {
				moves = append(moves, to)
			} else {
				if target.Color != p.Color {
					moves = append(moves, to)
				}
				break
			}
			to = Square{to.Row + d[0], to.Col + d[1]}
		}
	}
	return moves
}

var kingDeltas = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

func (b *Board) kingMoves(sq Square, p *Piece) []Square {
	moves := b.stepMoves(sq, p, kingDeltas[:])

	// Castling candidates. The generator yields only the king's two-square
	// move; the rook relocation happens in MakeMove.
	if !p.HasMoved && !b.IsSquareAttacked(sq, p.Color) {
		if b.canCastleKingside(sq, p) {
			moves = append(moves, Square{sq.Row, sq.Col + 2})
		}
		if b.canCastleQueenside(sq, p) {
			moves = append(moves, Square{sq.Row, sq.Col - 2})
		}
	}
	return moves
}

func (b *Board) canCastleKingside(sq Square, p *Piece) bool {
	rook := b.squares[sq.Row][7]
	if rook == nil || rook.Kind != Rook || rook.Color != p.Color || rook.HasMoved {
		return false
	}
	for col := sq.Col + 1; col < 7; col++ {
		if b.squares[sq.Row][col] != nil {
			return false
		}
	}
	// The king must not pass through or land on an attacked square.
	for col := sq.Col + 1; col <= sq.Col+2; col++ {
		if b.IsSquareAttacked(Square{sq.Row, col}, p.Color) {
			return false
		}
	}
	return true
}

func (b *Board) canCastleQueenside(sq Square, p *Piece) bool {
	rook := b.squares[sq.Row][0]
	if rook == nil || rook.Kind != Rook || rook.Color != p.Color || rook.HasMoved {
		return false
	}
	for col := 1; col < sq.Col; col++ {
		if b.squares[sq.Row][col] != nil {
			return false
		}
	}
	for col := sq.Col - 2; col < sq.Col; col++ {
		if b.IsSquareAttacked(Square{sq.Row, col}, p.Color) {
			return false
		}
	}
	return true
}
