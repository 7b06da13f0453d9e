package web

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// WebSocket settings
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client is one connected spectator.
type Client struct {
	id   string
	hub  *Hub
	conn *websocket.Conn
	send chan Message
}

// NewClient registers a spectator on the hub and wraps its connection.
func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	id := uuid.NewString()
	return &Client{
		id:   id,
		hub:  hub,
		conn: conn,
		send: hub.Register(id),
	}
}

// readPump drains the connection until the client disconnects.
// Spectators have nothing to say; reading only services pings and
// detects the close.
func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister(c.id)
		if err := c.conn.Close(); err != nil {
			log.Debug("web: close failed", "client", c.id, "err", err)
		}
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		log.Warn("web: set read deadline failed", "err", err)
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Debug("web: read error", "client", c.id, "err", err)
			}
			return
		}
	}
}

// writePump forwards hub messages to the connection and keeps it alive
// with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.conn.Close(); err != nil {
			log.Debug("web: close failed in writePump", "client", c.id, "err", err)
		}
	}()

	for {
		select {
		case msg, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				log.Warn("web: set write deadline failed", "err", err)
			}
			if !ok {
				// Hub closed the channel
				if err := c.conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					log.Debug("web: write close failed", "err", err)
				}
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				log.Debug("web: write failed", "client", c.id, "err", err)
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				log.Warn("web: set ping write deadline failed", "err", err)
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
