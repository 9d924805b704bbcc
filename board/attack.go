package board

// IsSquareAttacked reports whether sq is attacked by the side opposing
// defender. Attack here means the square appears among an opposing piece's
// pseudo-legal targets. An opposing king is handled by direct adjacency
// rather than through RawMoves, since castling-aware king generation would
// recurse back into attack detection.
func (b *Board) IsSquareAttacked(sq Square, defender Color) bool {
	attacker := defender.Other()
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.squares[row][col]
			if p == nil || p.Color != attacker {
				continue
			}
			if p.Kind == King {
				dr, dc := row-sq.Row, col-sq.Col
				if dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1 && (dr != 0 || dc != 0) {
					return true
				}
				continue
			}
			for _, to := range b.RawMoves(Square{row, col}) {
				if to == sq {
					return true
				}
			}
		}
	}
	return false
}

// InCheck reports whether the given color's king is attacked. A board with no
// king of that color is never in check.
func (b *Board) InCheck(color Color) bool {
	king, ok := b.FindKing(color)
	if !ok {
		return false
	}
	return b.IsSquareAttacked(king, color)
}

// IsMoveLegal reports whether moving from->to leaves the mover's own king
// unattacked. The move is simulated, including the en passant capture, then
// fully reverted.
func (b *Board) IsMoveLegal(from, to Square) bool {
	p := b.squares[from.Row][from.Col]
	if p == nil {
		return false
	}
	captured := b.squares[to.Row][to.Col]

	var epVictim *Piece
	epRow := from.Row
	if p.Kind == Pawn && b.enPassantTarget != nil && to == *b.enPassantTarget {
		epVictim = b.squares[epRow][to.Col]
		b.squares[epRow][to.Col] = nil
	}

	b.squares[to.Row][to.Col] = p
	b.squares[from.Row][from.Col] = nil

	inCheck := b.InCheck(p.Color)

	b.squares[from.Row][from.Col] = p
	b.squares[to.Row][to.Col] = captured
	if epVictim != nil {
		b.squares[epRow][to.Col] = epVictim
	}

	return !inCheck
}

// LegalMoves returns RawMoves(sq) filtered down to the moves that do not
// leave the mover's own king attacked.
func (b *Board) LegalMoves(sq Square) []Square {
	raw := b.RawMoves(sq)
	if len(raw) == 0 {
		return nil
	}
	legal := raw[:0]
	for _, to := range raw {
		if b.IsMoveLegal(sq, to) {
			legal = append(legal, to)
		}
	}
	return legal
}

// HasLegalMoves reports whether any piece of the given color has at least one
// legal move.
func (b *Board) HasLegalMoves(color Color) bool {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.squares[row][col]
			if p == nil || p.Color != color {
				continue
			}
			if len(b.LegalMoves(Square{row, col})) > 0 {
				return true
			}
		}
	}
	return false
}

// InCheckmate reports whether the given color is checkmated: no legal moves
// while in check.
func (b *Board) InCheckmate(color Color) bool {
	return b.InCheck(color) && !b.HasLegalMoves(color)
}

// InStalemate reports whether the given color is stalemated: no legal moves
// and not in check.
func (b *Board) InStalemate(color Color) bool {
	return !b.InCheck(color) && !b.HasLegalMoves(color)
}
