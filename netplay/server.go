package netplay

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

// session is one connected player.
type session struct {
	conn    *websocket.Conn
	writeMu sync.Mutex

	name   string
	gameID string
	color  string
}

// send writes a message to the session's socket. Sessions are written to by
// multiple handler goroutines, so writes are serialized.
func (s *session) send(msg ServerMessage) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteJSON(msg)
}

// relayGame is one matched pair of sessions.
type relayGame struct {
	players     map[string]*session // keyed by wire color
	rematchWant map[string]bool
}

// opponentOf returns the session opposite the given wire color.
func (g *relayGame) opponentOf(color string) *session {
	if color == ColorWhite {
		return g.players[ColorBlack]
	}
	return g.players[ColorWhite]
}

// Server pairs players and forwards moves between them. It holds no board:
// moves pass through unvalidated, which is the accepted trust boundary of
// the relay.
type Server struct {
	router   *mux.Router
	upgrader websocket.Upgrader

	mu       sync.Mutex
	waiting  *session
	games    map[string]*relayGame
	nextGame int
}

// NewServer returns a relay server with its routes registered.
func NewServer() *Server {
	s := &Server{
		games: make(map[string]*relayGame),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	s.router = mux.NewRouter()
	s.router.Use(func(next http.Handler) http.Handler {
		return handlers.LoggingHandler(os.Stdout, next)
	})
	s.router.HandleFunc("/", s.indexHandler)
	s.router.HandleFunc("/health", s.healthHandler)
	s.router.HandleFunc("/ws", s.wsHandler)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintln(w, "chess relay server running")
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	status := struct {
		Status        string `json:"status"`
		GamesActive   int    `json:"games_active"`
		PlayerWaiting bool   `json:"player_waiting"`
	}{
		Status:        "ok",
		GamesActive:   len(s.games),
		PlayerWaiting: s.waiting != nil,
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(status); err != nil {
		log.Printf("health encode: %v", err)
	}
}

func (s *Server) wsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("upgrade: %v", err)
		return
	}
	sess := &session{conn: conn}
	defer s.cleanup(sess)
	defer conn.Close()

	for {
		var msg ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		switch msg.Action {
		case ActionFindMatch:
			s.findMatch(sess, msg)
		case ActionMove:
			s.forwardMove(sess, msg)
		case ActionResign:
			s.resign(sess, msg)
		case ActionRematchRequest:
			s.rematchRequest(sess, msg)
		default:
			log.Printf("unknown action %q from %s", msg.Action, conn.RemoteAddr())
		}
	}
}

// findMatch pairs the session with the waiting player, or parks it as the
// waiting player if the seat is empty. The earlier arrival plays white.
func (s *Server) findMatch(sess *session, msg ClientMessage) {
	name := msg.Name
	if name == "" {
		name = "Player"
	}

	s.mu.Lock()
	sess.name = name
	sess.gameID = ""
	sess.color = ""
	if s.waiting == nil || s.waiting == sess {
		s.waiting = sess
		s.mu.Unlock()
		if err := sess.send(ServerMessage{Type: TypeWaiting, Message: "Waiting for opponent..."}); err != nil {
			log.Printf("send waiting to %s: %v", sess.name, err)
		}
		return
	}

	white := s.waiting
	s.waiting = nil
	gameID := fmt.Sprintf("game_%d", s.nextGame)
	s.nextGame++

	white.gameID, white.color = gameID, ColorWhite
	sess.gameID, sess.color = gameID, ColorBlack
	s.games[gameID] = &relayGame{
		players:     map[string]*session{ColorWhite: white, ColorBlack: sess},
		rematchWant: make(map[string]bool),
	}
	s.mu.Unlock()

	if err := white.send(ServerMessage{Type: TypeGameStart, GameID: gameID, Color: ColorWhite, Opponent: sess.name}); err != nil {
		log.Printf("send game_start to %s: %v", white.name, err)
	}
	if err := sess.send(ServerMessage{Type: TypeGameStart, GameID: gameID, Color: ColorBlack, Opponent: white.name}); err != nil {
		log.Printf("send game_start to %s: %v", sess.name, err)
	}
}

// forwardMove relays a move to the opponent without validating it.
func (s *Server) forwardMove(sess *session, msg ClientMessage) {
	if msg.Move == nil {
		return
	}
	opp := s.opponent(sess, msg.GameID)
	if opp == nil {
		return
	}
	if err := opp.send(ServerMessage{Type: TypeOpponentMove, Move: msg.Move}); err != nil {
		log.Printf("forward move to %s: %v", opp.name, err)
	}
}

func (s *Server) resign(sess *session, msg ClientMessage) {
	s.mu.Lock()
	var opp *session
	if g, ok := s.games[msg.GameID]; ok {
		opp = g.opponentOf(sess.color)
		delete(s.games, msg.GameID)
	}
	s.mu.Unlock()
	if opp != nil {
		opp.send(ServerMessage{Type: TypeOpponentResigned})
	}
}

// rematchRequest tells the opponent a rematch is wanted; once both sides ask,
// the game restarts with colors swapped.
func (s *Server) rematchRequest(sess *session, msg ClientMessage) {
	s.mu.Lock()
	g, ok := s.games[msg.GameID]
	if !ok {
		s.mu.Unlock()
		return
	}
	g.rematchWant[sess.color] = true
	both := g.rematchWant[ColorWhite] && g.rematchWant[ColorBlack]
	white, black := g.players[ColorWhite], g.players[ColorBlack]
	opp := g.opponentOf(sess.color)
	if both {
		g.rematchWant = make(map[string]bool)
		white.color, black.color = ColorBlack, ColorWhite
		g.players[ColorWhite], g.players[ColorBlack] = black, white
	}
	// Snapshot under the lock: the opponent's own rematch request may swap
	// the players map and color fields concurrently.
	whiteColor, blackColor := white.color, black.color
	s.mu.Unlock()

	if !both {
		if opp != nil {
			opp.send(ServerMessage{Type: TypeRematchRequested})
		}
		return
	}
	white.send(ServerMessage{Type: TypeRematchStart, GameID: msg.GameID, Color: whiteColor})
	black.send(ServerMessage{Type: TypeRematchStart, GameID: msg.GameID, Color: blackColor})
}

// opponent looks up the session's opponent in the given game.
func (s *Server) opponent(sess *session, gameID string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[gameID]
	if !ok {
		return nil
	}
	return g.opponentOf(sess.color)
}

// cleanup releases the waiting seat or notifies the opponent on disconnect.
func (s *Server) cleanup(sess *session) {
	s.mu.Lock()
	if s.waiting == sess {
		s.waiting = nil
	}
	var opp *session
	if g, ok := s.games[sess.gameID]; ok {
		opp = g.opponentOf(sess.color)
		delete(s.games, sess.gameID)
	}
	s.mu.Unlock()

	if opp != nil {
		opp.send(ServerMessage{Type: TypeOpponentDisconnected})
	}
}
