// Package netplay implements the multiplayer relay: a websocket server that
// pairs two players and forwards their already-decided moves, and the client
// used by a game instance to talk to it. The relay never validates moves;
// the receiving side applies them trusting the sender checked legality.
package netplay

import "chess-game/board"

// Client actions.
const (
	ActionFindMatch      = "find_match"
	ActionMove           = "move"
	ActionResign         = "resign"
	ActionRematchRequest = "rematch_request"
)

// Server message types.
const (
	TypeWaiting              = "waiting"
	TypeGameStart            = "game_start"
	TypeOpponentMove         = "opponent_move"
	TypeOpponentDisconnected = "opponent_disconnected"
	TypeOpponentResigned     = "opponent_resigned"
	TypeRematchRequested     = "rematch_requested"
	TypeRematchStart         = "rematch_start"
)

// Color strings on the wire.
const (
	ColorWhite = "white"
	ColorBlack = "black"
)

// WireMove is the four-integer wire form of a move:
// fromRow, fromCol, toRow, toCol.
type WireMove [4]int

// NewWireMove converts a board move to its wire form.
func NewWireMove(m board.Move) WireMove {
	return WireMove{m.From.Row, m.From.Col, m.To.Row, m.To.Col}
}

// Move converts the wire form back into a board move.
func (w WireMove) Move() board.Move {
	return board.Move{
		From: board.Square{Row: w[0], Col: w[1]},
		To:   board.Square{Row: w[2], Col: w[3]},
	}
}

// ClientMessage is what a player sends to the relay.
type ClientMessage struct {
	Action string    `json:"action"`
	Name   string    `json:"name,omitempty"`
	GameID string    `json:"game_id,omitempty"`
	Move   *WireMove `json:"move,omitempty"`
}

// ServerMessage is what the relay sends to a player.
type ServerMessage struct {
	Type     string    `json:"type"`
	Message  string    `json:"message,omitempty"`
	GameID   string    `json:"game_id,omitempty"`
	Color    string    `json:"color,omitempty"`
	Opponent string    `json:"opponent,omitempty"`
	Move     *WireMove `json:"move,omitempty"`
}
