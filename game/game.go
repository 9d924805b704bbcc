// Package game wraps a board with turn order and termination tracking. It is
// the surface collaborators (a UI, the network relay, the terminal loop)
// drive: they query legal moves and check state here, and apply moves either
// validated (TryMove) or trusted (ForceMove).
package game

import (
	"errors"

	"golang.org/x/exp/slices"

	"chess-game/board"
)

// Status classifies a game.
type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
	Resigned
)

func (s Status) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Resigned:
		return "resigned"
	default:
		return "unknown"
	}
}

var (
	ErrGameOver = errors.New("game is over")
	ErrNotTurn  = errors.New("not that side's turn")
	ErrNoPiece  = errors.New("no piece on source square")
	ErrIllegal  = errors.New("move is not legal")
)

// Game is one chess game: a board, the side to move, and the result once the
// game ends.
type Game struct {
	board    *board.Board
	turn     board.Color
	status   Status
	winner   board.Color
	lastMove *board.Move
	history  []board.Move
}

// New starts a game from the standard position, White to move.
func New() *Game {
	return &Game{board: board.NewBoard(), turn: board.White}
}

// Board exposes the underlying position. Callers must not mutate it while a
// search is borrowing it.
func (g *Game) Board() *board.Board { return g.board }

// Turn returns the side to move.
func (g *Game) Turn() board.Color { return g.turn }

// Status returns the current game status.
func (g *Game) Status() Status { return g.status }

// Over reports whether the game has ended.
func (g *Game) Over() bool { return g.status != Ongoing }

// Winner returns the winning side; only meaningful when Status is Checkmate
// or Resigned.
func (g *Game) Winner() board.Color { return g.winner }

// LastMove returns the most recently applied move, or nil at game start.
func (g *Game) LastMove() *board.Move { return g.lastMove }

// History returns all moves applied so far, in order.
func (g *Game) History() []board.Move { return g.history }

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool { return g.board.InCheck(g.turn) }

// LegalMoves returns the legal destination squares for the piece on sq.
func (g *Game) LegalMoves(sq board.Square) []board.Square {
	return g.board.LegalMoves(sq)
}

// TryMove validates that from->to is the turn holder's legal move, then
// applies it. Returns whether the move captured, and an error if the move was
// rejected. This is the path for local input.
func (g *Game) TryMove(from, to board.Square) (bool, error) {
	if g.Over() {
		return false, ErrGameOver
	}
	p := g.board.PieceAt(from)
	if p == nil {
		return false, ErrNoPiece
	}
	if p.Color != g.turn {
		return false, ErrNotTurn
	}
	if !slices.Contains(g.board.LegalMoves(from), to) {
		return false, ErrIllegal
	}
	return g.apply(from, to), nil
}

// ForceMove applies from->to without legality re-validation. Remote moves
// arrive here: the sender is trusted to have validated legality already, so a
// malicious or desynchronized peer can corrupt the local board. That trust
// boundary is accepted, not mitigated, but a vacant source or off-board
// destination is rejected rather than allowed to crash the process.
func (g *Game) ForceMove(from, to board.Square) bool {
	if g.Over() {
		return false
	}
	if g.board.PieceAt(from) == nil || !to.Valid() {
		return false
	}
	return g.apply(from, to)
}

func (g *Game) apply(from, to board.Square) bool {
	captured := g.board.MakeMove(from, to)
	m := board.Move{From: from, To: to}
	g.lastMove = &m
	g.history = append(g.history, m)
	g.turn = g.turn.Other()
	g.classify()
	return captured
}

// classify ends the game when the side to move has no legal moves.
func (g *Game) classify() {
	if g.board.HasLegalMoves(g.turn) {
		return
	}
	if g.board.InCheck(g.turn) {
		g.status = Checkmate
		g.winner = g.turn.Other()
	} else {
		g.status = Stalemate
	}
}

// Resign ends the game in favor of the other side.
func (g *Game) Resign(color board.Color) {
	if g.Over() {
		return
	}
	g.status = Resigned
	g.winner = color.Other()
}

// Reset restores the starting position and clears the result.
func (g *Game) Reset() {
	g.board.Reset()
	g.turn = board.White
	g.status = Ongoing
	g.lastMove = nil
	g.history = nil
}
