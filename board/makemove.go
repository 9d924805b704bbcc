package board

// UndoState holds everything needed to invert one temporary move. It is
// created by MakeTempMove and consumed by exactly one UnmakeTempMove.
type UndoState struct {
	moved         *Piece
	captured      *Piece
	from, to      Square
	prevEnPassant *Square
	prevHasMoved  bool

	// En passant capture, when the move was one.
	epVictim *Piece
	epSquare Square

	// Castling rook relocation, when the move was a castle.
	rook         *Piece
	rookFrom     Square
	rookTo       Square
	rookHadMoved bool
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// MakeMove permanently applies from->to. Legality is the caller's
// responsibility: no re-check is performed here. Returns whether any capture
// occurred, direct or en passant.
func (b *Board) MakeMove(from, to Square) bool {
	p := b.squares[from.Row][from.Col]
	isCapture := b.squares[to.Row][to.Col] != nil

	// En passant: the captured pawn stands beside the mover, on the column
	// it lands on.
	if p.Kind == Pawn && b.enPassantTarget != nil && to == *b.enPassantTarget {
		b.squares[from.Row][to.Col] = nil
		isCapture = true
	}

	// Castling: a king moving two columns drags the rook to the square it
	// skipped over.
	if p.Kind == King && abs(to.Col-from.Col) == 2 {
		if to.Col > from.Col {
			rook := b.squares[from.Row][7]
			b.squares[from.Row][7] = nil
			b.squares[from.Row][5] = rook
			rook.HasMoved = true
		} else {
			rook := b.squares[from.Row][0]
			b.squares[from.Row][0] = nil
			b.squares[from.Row][3] = rook
			rook.HasMoved = true
		}
	}

	if p.Kind == Pawn && abs(to.Row-from.Row) == 2 {
		b.enPassantTarget = &Square{(from.Row + to.Row) / 2, from.Col}
	} else {
		b.enPassantTarget = nil
	}

	b.squares[to.Row][to.Col] = p
	b.squares[from.Row][from.Col] = nil
	p.HasMoved = true

	// Promotion is implicit and unconditional: always a queen.
	if p.Kind == Pawn && to.Row == promotionRow(p.Color) {
		b.squares[to.Row][to.Col] = &Piece{Kind: Queen, Color: p.Color, HasMoved: true}
	}

	return isCapture
}

// MakeTempMove applies from->to with the same structural changes as MakeMove
// while recording everything needed to invert it. This is the mutation path
// the search uses; every call must be balanced by one UnmakeTempMove before
// the board is read again.
func (b *Board) MakeTempMove(from, to Square) UndoState {
	p := b.squares[from.Row][from.Col]
	st := UndoState{
		moved:         p,
		captured:      b.squares[to.Row][to.Col],
		from:          from,
		to:            to,
		prevEnPassant: b.enPassantTarget,
		prevHasMoved:  p.HasMoved,
	}

	if p.Kind == Pawn && b.enPassantTarget != nil && to == *b.enPassantTarget {
		st.epSquare = Square{from.Row, to.Col}
		st.epVictim = b.squares[from.Row][to.Col]
		b.squares[from.Row][to.Col] = nil
	}

	if p.Kind == King && abs(to.Col-from.Col) == 2 {
		if to.Col > from.Col {
			rook := b.squares[from.Row][7]
			st.rook = rook
			st.rookFrom = Square{from.Row, 7}
			st.rookTo = Square{from.Row, 5}
			st.rookHadMoved = rook.HasMoved
			b.squares[from.Row][7] = nil
			b.squares[from.Row][5] = rook
			rook.HasMoved = true
		} else {
			rook := b.squares[from.Row][0]
			st.rook = rook
			st.rookFrom = Square{from.Row, 0}
			st.rookTo = Square{from.Row, 3}
			st.rookHadMoved = rook.HasMoved
			b.squares[from.Row][0] = nil
			b.squares[from.Row][3] = rook
			rook.HasMoved = true
		}
	}

	if p.Kind == Pawn && abs(to.Row-from.Row) == 2 {
		b.enPassantTarget = &Square{(from.Row + to.Row) / 2, from.Col}
	} else {
		b.enPassantTarget = nil
	}

	b.squares[to.Row][to.Col] = p
	b.squares[from.Row][from.Col] = nil
	p.HasMoved = true

	if p.Kind == Pawn && to.Row == promotionRow(p.Color) {
		b.squares[to.Row][to.Col] = &Piece{Kind: Queen, Color: p.Color, HasMoved: true}
	}

	return st
}

// UnmakeTempMove restores the board to the exact state before the matching
// MakeTempMove: piece layout, en passant target and every HasMoved flag.
func (b *Board) UnmakeTempMove(st UndoState) {
	b.squares[st.from.Row][st.from.Col] = st.moved
	b.squares[st.to.Row][st.to.Col] = st.captured
	st.moved.HasMoved = st.prevHasMoved
	b.enPassantTarget = st.prevEnPassant

	if st.epVictim != nil {
		b.squares[st.epSquare.Row][st.epSquare.Col] = st.epVictim
	}

	if st.rook != nil {
		b.squares[st.rookTo.Row][st.rookTo.Col] = nil
		b.squares[st.rookFrom.Row][st.rookFrom.Col] = st.rook
		st.rook.HasMoved = st.rookHadMoved
	}
}
