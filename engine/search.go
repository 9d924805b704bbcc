package engine

import (
	"math/rand"

	"chess-game/board"
)

// Score bounds. mateScore is returned when the side to move has no legal
// moves and is in check; infinity brackets the alpha-beta window.
const (
	mateScore = 100000
	infinity  = 1 << 30
)

// AI selects moves for one side via depth-limited minimax with alpha-beta
// pruning. It borrows the board exclusively for the duration of one BestMove
// call: moves are applied temporarily and undone, leaving the board exactly
// as it was, but the board must not be read by anyone else mid-search.
type AI struct {
	board *board.Board
	color board.Color
	depth int
}

// NewAI returns an AI playing the given color on the given board. Depth is
// measured in plies; 1-3 is the practical range.
func NewAI(b *board.Board, color board.Color, depth int) *AI {
	return &AI{board: b, color: color, depth: depth}
}

// Color returns the side the AI plays.
func (ai *AI) Color() board.Color { return ai.color }

// BestMove searches for the best move for the AI's color. The second return
// is false only when the AI has no legal moves at all (the game is already
// over). If the search itself yields no move, a uniformly random legal move
// is chosen as a defensive fallback; that path should be unreachable when
// callers stop searching once the game is over.
func (ai *AI) BestMove() (board.Move, bool) {
	_, best := ai.minimax(ai.depth, -infinity, infinity, true)
	if best != nil {
		return *best, true
	}
	moves := ai.board.AllLegalMoves(ai.color)
	if len(moves) == 0 {
		return board.Move{}, false
	}
	return moves[rand.Intn(len(moves))], true
}

// minimax walks the legal move tree to the given depth with alpha-beta
// bounds. Maximizing levels move the AI's color, minimizing levels the
// opponent. Scores are always from the AI's perspective. The first move
// attaining the best score is kept; later equal scores do not replace it.
func (ai *AI) minimax(depth, alpha, beta int, maximizing bool) (int, *board.Move) {
	if depth == 0 {
		return Evaluate(ai.board, ai.color), nil
	}

	color := ai.color
	if !maximizing {
		color = ai.color.Other()
	}
	moves := ai.board.AllLegalMoves(color)

	if len(moves) == 0 {
		if ai.board.InCheck(color) {
			if maximizing {
				return -mateScore, nil
			}
			return mateScore, nil
		}
		return 0, nil // stalemate
	}

	var best *board.Move

	if maximizing {
		maxEval := -infinity
		for i := range moves {
			m := moves[i]
			st := ai.board.MakeTempMove(m.From, m.To)
			score, _ := ai.minimax(depth-1, alpha, beta, false)
			ai.board.UnmakeTempMove(st)

			if score > maxEval {
				maxEval = score
				best = &moves[i]
			}
			if score > alpha {
				alpha = score
			}
			if beta <= alpha {
				break
			}
		}
		return maxEval, best
	}

	minEval := infinity
	for i := range moves {
		m := moves[i]
		st := ai.board.MakeTempMove(m.From, m.To)
		score, _ := ai.minimax(depth-1, alpha, beta, true)
		ai.board.UnmakeTempMove(st)

		if score < minEval {
			minEval = score
			best = &moves[i]
		}
		if score < beta {
			beta = score
		}
		if beta <= alpha {
			break
		}
	}
	return minEval, best
}
