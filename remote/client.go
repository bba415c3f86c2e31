package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/fabiovitalba/piston"
	"github.com/fabiovitalba/piston/record"
)

// Client sends events to a Handler. It is safe for concurrent use.
type Client struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	closed bool
}

// Dial connects to a Handler at url (ws:// or wss://).
func Dial(ctx context.Context, url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("remote: dial %s: %w", url, err)
	}
	return &Client{conn: conn}, nil
}

// Send writes v as one frame. The server drops tick kinds.
func (c *Client) Send(v piston.Value) error {
	return c.SendEntry(record.EntryOf(v))
}

// SendEntry writes a prepared entry, as read back from a recording.
func (c *Client) SendEntry(e record.Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("remote: write: %w", err)
	}
	return nil
}

// Close sends a close frame and closes the connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	return c.conn.Close()
}
