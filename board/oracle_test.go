package board_test

import (
	"strings"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"

	"chess-game/board"
)

// Cross-checks against dragontoothmg as an independent move generator.
// Promotions are collapsed to the queen move, since promotion here is
// implicit and always a queen.

const kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

// oracleMoveStrings returns dragontooth's legal moves as coordinate strings,
// underpromotions dropped and the queen promotion reduced to from/to form.
func oracleMoveStrings(b *dragontoothmg.Board) []string {
	var out []string
	for _, m := range b.GenerateLegalMoves() {
		s := m.String()
		if len(s) == 5 {
			if !strings.HasSuffix(s, "q") {
				continue
			}
			s = s[:4]
		}
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

func ourMoveStrings(b *board.Board, color board.Color) []string {
	var out []string
	for _, m := range b.AllLegalMoves(color) {
		out = append(out, m.String())
	}
	slices.Sort(out)
	return out
}

func TestMoveSetMatchesOracle(t *testing.T) {
	fens := []string{
		board.FENStartPos,
		kiwipeteFEN,
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"7k/8/8/3pP3/8/8/8/7K w - d6 0 1",
		"1n5k/P7/8/8/8/8/7K/8 w - - 0 1",
	}
	for _, fen := range fens {
		mine, side := mustParse(t, fen)
		oracle := dragontoothmg.ParseFen(fen)

		got := ourMoveStrings(mine, side)
		want := oracleMoveStrings(&oracle)
		if !slices.Equal(got, want) {
			t.Errorf("move set mismatch for %q:\n got %v\nwant %v", fen, got, want)
		}
	}
}

// oraclePerft is a plain perft over dragontooth's generator with the same
// queen-only promotion model.
func oraclePerft(b *dragontoothmg.Board, depth int) uint64 {
	moves := b.GenerateLegalMoves()
	kept := moves[:0]
	for _, m := range moves {
		s := m.String()
		if len(s) == 5 && !strings.HasSuffix(s, "q") {
			continue
		}
		kept = append(kept, m)
	}
	if depth == 1 {
		return uint64(len(kept))
	}
	var nodes uint64
	for _, m := range kept {
		undo := b.Apply(m)
		nodes += oraclePerft(b, depth-1)
		undo()
	}
	return nodes
}

func TestPerftStartposKnownCounts(t *testing.T) {
	want := []uint64{20, 400, 8902, 197281}
	b := board.NewBoard()
	for depth := 1; depth <= len(want); depth++ {
		got := board.Perft(b, board.White, depth)
		if got != want[depth-1] {
			t.Fatalf("perft(%d) = %d, want %d", depth, got, want[depth-1])
		}
	}
}

func TestPerftMatchesOracle(t *testing.T) {
	if testing.Short() {
		t.Skip("perft cross-check is slow")
	}
	cases := []struct {
		fen   string
		depth int
	}{
		{board.FENStartPos, 3},
		{kiwipeteFEN, 2},
	}
	for _, tc := range cases {
		mine, side := mustParse(t, tc.fen)
		oracle := dragontoothmg.ParseFen(tc.fen)

		got := board.Perft(mine, side, tc.depth)
		want := oraclePerft(&oracle, tc.depth)
		if got != want {
			t.Errorf("perft(%d) on %q: got %d, oracle says %d", tc.depth, tc.fen, got, want)
		}
	}
}

func TestPerftDivideStartpos(t *testing.T) {
	b := board.NewBoard()
	div := board.PerftDivide(b, board.White, 2)
	if len(div) != 20 {
		t.Fatalf("divide length: got %d want 20", len(div))
	}
	var sum uint64
	for m, n := range div {
		if n != 20 {
			t.Errorf("child count for %s: got %d want 20", m, n)
		}
		sum += n
	}
	if sum != 400 {
		t.Fatalf("divide sum: got %d want 400", sum)
	}
}
