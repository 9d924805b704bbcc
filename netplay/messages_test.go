package netplay_test

import (
	"encoding/json"
	"testing"

	"chess-game/board"
	"chess-game/netplay"
)

func TestWireMoveRoundTrip(t *testing.T) {
	m := board.Move{
		From: board.Square{Row: 6, Col: 4},
		To:   board.Square{Row: 4, Col: 4},
	}
	w := netplay.NewWireMove(m)
	if w != (netplay.WireMove{6, 4, 4, 4}) {
		t.Fatalf("wire form = %v", w)
	}
	if got := w.Move(); got != m {
		t.Fatalf("round trip = %v, want %v", got, m)
	}
}

func TestClientMessageJSON(t *testing.T) {
	mv := netplay.NewWireMove(board.Move{
		From: board.Square{Row: 6, Col: 4},
		To:   board.Square{Row: 4, Col: 4},
	})
	data, err := json.Marshal(netplay.ClientMessage{
		Action: netplay.ActionMove,
		GameID: "game_0",
		Move:   &mv,
	})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"action":"move","game_id":"game_0","move":[6,4,4,4]}`
	if string(data) != want {
		t.Errorf("marshal = %s, want %s", data, want)
	}

	// Empty optionals stay off the wire.
	data, err = json.Marshal(netplay.ClientMessage{Action: netplay.ActionFindMatch, Name: "Ann"})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"action":"find_match","name":"Ann"}` {
		t.Errorf("marshal = %s", data)
	}
}

func TestServerMessageJSON(t *testing.T) {
	raw := `{"type":"game_start","game_id":"game_0","color":"white","opponent":"Player"}`
	var msg netplay.ServerMessage
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		t.Fatal(err)
	}
	if msg.Type != netplay.TypeGameStart || msg.GameID != "game_0" ||
		msg.Color != netplay.ColorWhite || msg.Opponent != "Player" {
		t.Errorf("unmarshal = %+v", msg)
	}

	raw = `{"type":"opponent_move","move":[1,4,3,4]}`
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		t.Fatal(err)
	}
	if msg.Move == nil {
		t.Fatal("move field not decoded")
	}
	want := board.Move{
		From: board.Square{Row: 1, Col: 4},
		To:   board.Square{Row: 3, Col: 4},
	}
	if got := msg.Move.Move(); got != want {
		t.Errorf("decoded move = %v, want %v", got, want)
	}
}
