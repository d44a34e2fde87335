package binding

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/spinbutton/internal/logging"
	"github.com/muurk/spinbutton/internal/spinbutton"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 8192

	// Outbound messages buffered per client before it is dropped
	sendBuffer = 16
)

// Hub fans value changes out to WebSocket clients and feeds their commands
// to a dispatch function.
type Hub struct {
	id       string
	dispatch func(Command)
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
	current spinbutton.Value
	closed  bool
}

type client struct {
	conn   *websocket.Conn
	send   chan []byte
	remote string
}

// NewHub creates a hub for the widget identified by id. dispatch is called
// from connection goroutines and must be safe for concurrent use. The hub
// never publishes a command's effect itself: the owner of the widget calls
// Publish once the command has been applied, including for "set".
func NewHub(id string, initial spinbutton.Value, dispatch func(Command)) *Hub {
	return &Hub{
		id:       id,
		dispatch: dispatch,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		clients: make(map[*client]struct{}),
		current: initial,
	}
}

// Current returns the last value published.
func (h *Hub) Current() spinbutton.Value {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish records v as the current value and sends it to every client.
// Clients whose buffers are full are disconnected.
func (h *Hub) Publish(v spinbutton.Value) {
	data, err := encodeValue(h.id, v)
	if err != nil {
		logging.Error("Failed to encode value message", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.current = v
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			logging.Warn("Dropping slow binding client", zap.String("remote_addr", c.remote))
			h.removeLocked(c)
		}
	}
}

// Close disconnects every client and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		h.removeLocked(c)
	}
}

// ServeHTTP upgrades the request and serves the connection until it closes.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied with an HTTP error
		logging.Warn("WebSocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}

	c := &client{
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		remote: r.RemoteAddr,
	}

	snapshot, err := encodeValue(h.id, h.Current())
	if err != nil {
		_ = conn.Close()
		return
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
			time.Now().Add(writeWait))
		_ = conn.Close()
		return
	}
	h.clients[c] = struct{}{}
	c.send <- snapshot
	h.mu.Unlock()

	logging.LogBindingEvent(c.remote, "connected")

	go h.writePump(c)
	h.readPump(c)
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

func (h *Hub) removeLocked(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}

// readPump decodes client frames into commands.
func (h *Hub) readPump(c *client) {
	defer func() {
		h.remove(c)
		_ = c.conn.Close()
		logging.LogBindingEvent(c.remote, "disconnected")
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		msgType, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.Warn("Binding connection closed unexpectedly",
					zap.String("remote_addr", c.remote),
					zap.Error(err),
				)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}
		logging.LogBindingMessage(c.remote, "received", data)

		cmd, err := DecodeCommand(data)
		if err != nil {
			var perr *ProtocolError
			if errors.As(err, &perr) {
				logging.Warn("Ignoring binding message",
					zap.String("remote_addr", c.remote),
					zap.String("reason", perr.Reason),
				)
			}
			continue
		}
		cmd.Remote = c.remote

		if h.dispatch != nil {
			h.dispatch(cmd)
		}
	}
}

// writePump drains the client's send queue and keeps the connection alive.
func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
			logging.LogBindingMessage(c.remote, "sent", data)

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
