package netplay

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"
)

const outgoingQueueSize = 16

// Client connects a game instance to the relay. Incoming server messages are
// dispatched to the callback fields from the read pump, so callbacks run on
// the client's goroutine, not the caller's.
type Client struct {
	conn     *websocket.Conn
	outgoing chan ClientMessage

	mu       sync.Mutex
	gameID   string
	color    string
	opponent string

	OnWaiting            func()
	OnMatchFound         func(color, opponent string)
	OnOpponentMove       func(WireMove)
	OnOpponentDisconnect func()
	OnOpponentResign     func()
	OnRematchRequested   func()
	OnRematchStart       func(color string)
}

// Dial connects to a relay server at the given websocket URL.
func Dial(ctx context.Context, url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		conn:     conn,
		outgoing: make(chan ClientMessage, outgoingQueueSize),
	}, nil
}

// Run pumps messages both ways until the context is cancelled or the
// connection drops. Callbacks must be set before calling Run.
func (c *Client) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		// Closing the connection unblocks the reader when the context ends.
		<-ctx.Done()
		c.conn.Close()
		return ctx.Err()
	})

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case msg := <-c.outgoing:
				if err := c.conn.WriteJSON(msg); err != nil {
					return err
				}
			}
		}
	})

	g.Go(func() error {
		for {
			var msg ServerMessage
			if err := c.conn.ReadJSON(&msg); err != nil {
				return err
			}
			c.dispatch(msg)
		}
	})

	return g.Wait()
}

func (c *Client) dispatch(msg ServerMessage) {
	switch msg.Type {
	case TypeWaiting:
		if c.OnWaiting != nil {
			c.OnWaiting()
		}
	case TypeGameStart:
		c.mu.Lock()
		c.gameID = msg.GameID
		c.color = msg.Color
		c.opponent = msg.Opponent
		c.mu.Unlock()
		if c.OnMatchFound != nil {
			c.OnMatchFound(msg.Color, msg.Opponent)
		}
	case TypeOpponentMove:
		if msg.Move != nil && c.OnOpponentMove != nil {
			c.OnOpponentMove(*msg.Move)
		}
	case TypeOpponentDisconnected:
		if c.OnOpponentDisconnect != nil {
			c.OnOpponentDisconnect()
		}
	case TypeOpponentResigned:
		if c.OnOpponentResign != nil {
			c.OnOpponentResign()
		}
	case TypeRematchRequested:
		if c.OnRematchRequested != nil {
			c.OnRematchRequested()
		}
	case TypeRematchStart:
		c.mu.Lock()
		c.gameID = msg.GameID
		c.color = msg.Color
		c.mu.Unlock()
		if c.OnRematchStart != nil {
			c.OnRematchStart(msg.Color)
		}
	}
}

// GameID returns the current game id, empty until matched.
func (c *Client) GameID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gameID
}

// Color returns the wire color assigned at match time.
func (c *Client) Color() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.color
}

// Opponent returns the opponent's name.
func (c *Client) Opponent() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.opponent
}

// FindMatch asks the relay for an opponent.
func (c *Client) FindMatch(name string) {
	c.mu.Lock()
	c.gameID = ""
	c.color = ""
	c.mu.Unlock()
	c.outgoing <- ClientMessage{Action: ActionFindMatch, Name: name}
}

// SendMove forwards a locally validated move to the opponent.
func (c *Client) SendMove(m WireMove) {
	c.outgoing <- ClientMessage{Action: ActionMove, GameID: c.GameID(), Move: &m}
}

// Resign concedes the current game.
func (c *Client) Resign() {
	c.outgoing <- ClientMessage{Action: ActionResign, GameID: c.GameID()}
}

// RequestRematch asks the opponent for a rematch.
func (c *Client) RequestRematch() {
	c.outgoing <- ClientMessage{Action: ActionRematchRequest, GameID: c.GameID()}
}

// Close tears down the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
