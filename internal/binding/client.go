package binding

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/muurk/spinbutton/internal/spinbutton"
)

// Client is a connection to a remote Hub.
type Client struct {
	conn *websocket.Conn
	wmu  sync.Mutex
}

// Dial connects to a hub URL such as ws://127.0.0.1:7070/ws.
func Dial(ctx context.Context, url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", url, err)
	}
	return &Client{conn: conn}, nil
}

// Set assigns the widget value from outside.
func (c *Client) Set(v spinbutton.Value) error {
	return c.write(Message{Type: TypeSet, Value: v})
}

// Increment presses the increment button remotely.
func (c *Client) Increment() error {
	return c.write(Message{Type: TypeIncrement})
}

// Decrement presses the decrement button remotely.
func (c *Client) Decrement() error {
	return c.write(Message{Type: TypeDecrement})
}

// Next blocks until the next value message arrives.
func (c *Client) Next() (Message, error) {
	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			return Message{}, err
		}
		if msg.Type == TypeValue {
			return msg, nil
		}
	}
}

// Close sends a close frame and closes the connection.
func (c *Client) Close() error {
	c.wmu.Lock()
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
	c.wmu.Unlock()
	return c.conn.Close()
}

func (c *Client) write(msg Message) error {
	c.wmu.Lock()
	defer c.wmu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("failed to send %s: %w", msg.Type, err)
	}
	return nil
}
