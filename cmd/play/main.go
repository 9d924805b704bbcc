package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"chess-game/board"
	"chess-game/engine"
	"chess-game/game"
)

// cellStyle picks the square's background plus the piece's foreground.
func cellStyle(dark bool, piece *board.Piece) *color.Color {
	bg := color.BgWhite
	if dark {
		bg = color.BgCyan
	}
	if piece == nil {
		return color.New(bg)
	}
	if piece.Color == board.White {
		return color.New(bg, color.FgHiWhite, color.Bold)
	}
	return color.New(bg, color.FgBlack, color.Bold)
}

func glyph(k board.Kind) byte {
	switch k {
	case board.Pawn:
		return 'P'
	case board.Knight:
		return 'N'
	case board.Bishop:
		return 'B'
	case board.Rook:
		return 'R'
	case board.Queen:
		return 'Q'
	case board.King:
		return 'K'
	}
	return '?'
}

func printBoard(b *board.Board) {
	for row := 0; row < 8; row++ {
		fmt.Printf("%d ", 8-row)
		for col := 0; col < 8; col++ {
			p := b.PieceAt(board.Square{Row: row, Col: col})
			style := cellStyle((row+col)%2 == 1, p)
			if p == nil {
				style.Print("   ")
			} else {
				style.Printf(" %c ", glyph(p.Kind))
			}
		}
		fmt.Println()
	}
	fmt.Println("   a  b  c  d  e  f  g  h")
}

func parseMove(s string) (board.Square, board.Square, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if len(s) != 4 {
		return board.Square{}, board.Square{}, fmt.Errorf("moves look like e2e4")
	}
	from, err := board.ParseSquare(s[:2])
	if err != nil {
		return board.Square{}, board.Square{}, err
	}
	to, err := board.ParseSquare(s[2:])
	if err != nil {
		return board.Square{}, board.Square{}, err
	}
	return from, to, nil
}

func main() {
	depth := flag.Int("depth", 3, "search depth in plies (1-3 is the practical range)")
	playBlack := flag.Bool("black", false, "play the black pieces")
	flag.Parse()

	g := game.New()
	humanColor := board.White
	if *playBlack {
		humanColor = board.Black
	}
	ai := engine.NewAI(g.Board(), humanColor.Other(), *depth)

	in := bufio.NewScanner(os.Stdin)
	fmt.Printf("You play %s. Enter moves like e2e4; 'resign' or 'quit' to stop.\n", humanColor)

	for !g.Over() {
		printBoard(g.Board())
		if g.InCheck() {
			fmt.Printf("%s is in check\n", g.Turn())
		}

		if g.Turn() == humanColor {
			fmt.Printf("%s> ", g.Turn())
			if !in.Scan() {
				return
			}
			line := strings.TrimSpace(in.Text())
			switch line {
			case "quit":
				return
			case "resign":
				g.Resign(humanColor)
				continue
			}
			from, to, err := parseMove(line)
			if err != nil {
				fmt.Println(err)
				continue
			}
			if _, err := g.TryMove(from, to); err != nil {
				fmt.Println(err)
			}
			continue
		}

		move, ok := ai.BestMove()
		if !ok {
			break
		}
		g.ForceMove(move.From, move.To)
		fmt.Printf("engine plays %s\n", move)
	}

	printBoard(g.Board())
	switch g.Status() {
	case game.Checkmate:
		fmt.Printf("checkmate - %s wins\n", g.Winner())
	case game.Stalemate:
		fmt.Println("stalemate - draw")
	case game.Resigned:
		fmt.Printf("%s wins by resignation\n", g.Winner())
	}
}
