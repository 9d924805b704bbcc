package board

// AllLegalMoves collects every legal move for the given color, scanning
// squares row-major and keeping each square's move-list order. Search and
// perft both rely on this fixed ordering.
func (b *Board) AllLegalMoves(color Color) []Move {
	var moves []Move
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.squares[row][col]
			if p == nil || p.Color != color {
				continue
			}
			from := Square{row, col}
			for _, to := range b.LegalMoves(from) {
				moves = append(moves, Move{From: from, To: to})
			}
		}
	}
	return moves
}

// Perft counts leaf nodes of the legal move tree to the given depth, with
// the given color to move. Uses the temporary apply/undo pair, so the board
// is unchanged when it returns.
func Perft(b *Board, color Color, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.AllLegalMoves(color)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		st := b.MakeTempMove(m.From, m.To)
		nodes += Perft(b, color.Other(), depth-1)
		b.UnmakeTempMove(st)
	}
	return nodes
}

// PerftDivide returns per-root-move node counts at the given depth.
func PerftDivide(b *Board, color Color, depth int) map[Move]uint64 {
	div := make(map[Move]uint64)
	for _, m := range b.AllLegalMoves(color) {
		st := b.MakeTempMove(m.From, m.To)
		div[m] = Perft(b, color.Other(), depth-1)
		b.UnmakeTempMove(st)
	}
	return div
}
