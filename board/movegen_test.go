package board_test

import (
	"testing"

	"chess-game/board"
)

// mustParse is a shared helper for FEN-driven tests.
func mustParse(t *testing.T, fen string) (*board.Board, board.Color) {
	t.Helper()
	b, side, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b, side
}

func sq(t *testing.T, s string) board.Square {
	t.Helper()
	out, err := board.ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", s, err)
	}
	return out
}

func containsSquare(moves []board.Square, target board.Square) bool {
	for _, m := range moves {
		if m == target {
			return true
		}
	}
	return false
}

func TestStartposTwentyMoves(t *testing.T) {
	b := board.NewBoard()
	moves := b.AllLegalMoves(board.White)
	if len(moves) != 20 {
		t.Fatalf("startpos legal moves: got %d want 20", len(moves))
	}
	moves = b.AllLegalMoves(board.Black)
	if len(moves) != 20 {
		t.Fatalf("startpos black legal moves: got %d want 20", len(moves))
	}
}

func TestNewBoardMatchesStartposFEN(t *testing.T) {
	fromFEN, side, err := board.ParseFEN(board.FENStartPos)
	if err != nil {
		t.Fatal(err)
	}
	if side != board.White {
		t.Fatalf("startpos side to move: got %v want white", side)
	}
	if !board.NewBoard().Equal(fromFEN) {
		t.Fatalf("NewBoard differs from parsed FENStartPos")
	}
}

func TestOffBoardSquareYieldsNothing(t *testing.T) {
	b := board.NewBoard()
	if got := b.RawMoves(board.Square{Row: -1, Col: 9}); got != nil {
		t.Fatalf("off-board raw moves: got %v want nil", got)
	}
	if got := b.LegalMoves(board.Square{Row: 8, Col: 0}); got != nil {
		t.Fatalf("off-board legal moves: got %v want nil", got)
	}
	if b.PieceAt(board.Square{Row: 3, Col: -2}) != nil {
		t.Fatalf("off-board PieceAt should be nil")
	}
}

func TestKnightMoveCounts(t *testing.T) {
	cases := []struct {
		fen  string
		from string
		want int
	}{
		{"8/8/8/8/8/8/8/N6K w - - 0 1", "a1", 2},  // corner
		{"8/8/8/3N4/8/8/8/7K w - - 0 1", "d5", 8}, // center
	}
	for _, tc := range cases {
		b, _ := mustParse(t, tc.fen)
		got := len(b.RawMoves(sq(t, tc.from)))
		if got != tc.want {
			t.Errorf("knight on %s: got %d raw moves, want %d", tc.from, got, tc.want)
		}
	}
}

func TestSlidingStopsAtBlockers(t *testing.T) {
	// Rook on d4, friendly pawn on d6 (stop before), enemy pawn on f4
	// (capture square included, nothing beyond).
	b, _ := mustParse(t, "7k/8/3P4/8/3R1p2/8/8/7K w - - 0 1")
	moves := b.RawMoves(sq(t, "d4"))

	if containsSquare(moves, sq(t, "d6")) {
		t.Errorf("rook should stop before friendly pawn on d6")
	}
	if !containsSquare(moves, sq(t, "d5")) {
		t.Errorf("rook should reach d5")
	}
	if !containsSquare(moves, sq(t, "f4")) {
		t.Errorf("rook should capture on f4")
	}
	if containsSquare(moves, sq(t, "g4")) {
		t.Errorf("rook must not slide past the enemy pawn on f4")
	}
}

func TestPawnDoubleStepNeedsClearPath(t *testing.T) {
	// Knight on e3 blocks the white e-pawn's double step but not the single.
	b, _ := mustParse(t, "7k/8/8/8/8/4n3/4P3/7K w - - 0 1")
	moves := b.RawMoves(sq(t, "e2"))
	if len(moves) != 0 {
		t.Fatalf("blocked pawn should have no forward moves, got %v", moves)
	}

	// Blocker on e4 instead: single step only.
	b, _ = mustParse(t, "7k/8/8/8/4n3/8/4P3/7K w - - 0 1")
	moves = b.RawMoves(sq(t, "e2"))
	if len(moves) != 1 || moves[0] != sq(t, "e3") {
		t.Fatalf("pawn should have exactly e3, got %v", moves)
	}
}

func TestEnPassantTargetAndCapture(t *testing.T) {
	b := board.NewBoard()
	// 1. e4 a6 2. e5 d5 gives White the d6 en passant capture.
	steps := [][2]string{{"e2", "e4"}, {"a7", "a6"}, {"e4", "e5"}, {"d7", "d5"}}
	for _, s := range steps {
		b.MakeMove(sq(t, s[0]), sq(t, s[1]))
	}

	target := b.EnPassantTarget()
	if target == nil || *target != sq(t, "d6") {
		t.Fatalf("en passant target: got %v want d6", target)
	}
	if !containsSquare(b.LegalMoves(sq(t, "e5")), sq(t, "d6")) {
		t.Fatalf("e5 pawn should be able to capture en passant on d6")
	}

	if !b.MakeMove(sq(t, "e5"), sq(t, "d6")) {
		t.Fatalf("en passant should report a capture")
	}
	if b.PieceAt(sq(t, "d5")) != nil {
		t.Fatalf("passed pawn on d5 should be removed")
	}
	p := b.PieceAt(sq(t, "d6"))
	if p == nil || p.Kind != board.Pawn || p.Color != board.White {
		t.Fatalf("capturing pawn should stand on d6, got %+v", p)
	}
	if b.EnPassantTarget() != nil {
		t.Fatalf("en passant target should be cleared after the capture")
	}
}

func TestEnPassantWindowCloses(t *testing.T) {
	b := board.NewBoard()
	steps := [][2]string{{"e2", "e4"}, {"a7", "a6"}, {"e4", "e5"}, {"d7", "d5"}}
	for _, s := range steps {
		b.MakeMove(sq(t, s[0]), sq(t, s[1]))
	}
	// Any other move clears the target.
	b.MakeMove(sq(t, "b1"), sq(t, "c3"))
	if b.EnPassantTarget() != nil {
		t.Fatalf("en passant target should be cleared by the next move")
	}
	if containsSquare(b.LegalMoves(sq(t, "e5")), sq(t, "d6")) {
		t.Fatalf("en passant capture must not survive an intervening move")
	}
}

func TestCastlingGeneration(t *testing.T) {
	b, _ := mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	moves := b.LegalMoves(sq(t, "e1"))
	if !containsSquare(moves, sq(t, "g1")) {
		t.Errorf("kingside castle g1 missing from %v", moves)
	}
	if !containsSquare(moves, sq(t, "c1")) {
		t.Errorf("queenside castle c1 missing from %v", moves)
	}

	// Same position for Black.
	moves = b.LegalMoves(sq(t, "e8"))
	if !containsSquare(moves, sq(t, "g8")) || !containsSquare(moves, sq(t, "c8")) {
		t.Errorf("black castles missing from %v", moves)
	}
}

func TestCastlingBlockedByAttackedTransit(t *testing.T) {
	// Black rook on f2 attacks f1: kingside transit is covered, queenside
	// stays available.
	b, _ := mustParse(t, "r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1")
	moves := b.LegalMoves(sq(t, "e1"))
	if containsSquare(moves, sq(t, "g1")) {
		t.Errorf("kingside castle must be blocked by the attacked f1 square")
	}
	if !containsSquare(moves, sq(t, "c1")) {
		t.Errorf("queenside castle should still be available, got %v", moves)
	}
}

func TestCastlingBlockedByOccupiedPath(t *testing.T) {
	// Bishop still on f1 blocks kingside; knight on b1 blocks queenside.
	b, _ := mustParse(t, "r3k2r/8/8/8/8/8/8/RN2KB1R w KQkq - 0 1")
	moves := b.LegalMoves(sq(t, "e1"))
	if containsSquare(moves, sq(t, "g1")) || containsSquare(moves, sq(t, "c1")) {
		t.Errorf("castles through occupied squares generated: %v", moves)
	}
}

func TestCastlingRequiresUnmovedPieces(t *testing.T) {
	// Castling rights stripped from the FEN mark king and rooks as moved.
	b, _ := mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1")
	moves := b.LegalMoves(sq(t, "e1"))
	if containsSquare(moves, sq(t, "g1")) || containsSquare(moves, sq(t, "c1")) {
		t.Errorf("castles generated despite moved king/rooks: %v", moves)
	}
}

func TestCastlingNotWhileInCheck(t *testing.T) {
	b, _ := mustParse(t, "r3k2r/8/8/8/8/8/4r3/R3K2R w KQkq - 0 1")
	if !b.InCheck(board.White) {
		t.Fatalf("expected White in check from the e2 rook")
	}
	moves := b.LegalMoves(sq(t, "e1"))
	if containsSquare(moves, sq(t, "g1")) || containsSquare(moves, sq(t, "c1")) {
		t.Errorf("castles generated while in check: %v", moves)
	}
}

func TestPinnedPieceCannotExposeKing(t *testing.T) {
	// Knight on e4 is pinned against the white king by the e8 rook.
	b, _ := mustParse(t, "4r2k/8/8/8/4N3/8/8/4K3 w - - 0 1")
	if got := b.LegalMoves(sq(t, "e4")); len(got) != 0 {
		t.Fatalf("pinned knight should have no legal moves, got %v", got)
	}
	if raw := b.RawMoves(sq(t, "e4")); len(raw) == 0 {
		t.Fatalf("pinned knight should still have raw moves")
	}
}
