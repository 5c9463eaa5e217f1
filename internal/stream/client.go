package stream

import (
	"time"

	"github.com/MAGNO9/SchoolTrack/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Client is one streaming connection, driver or observer. Outbound
// delivery is best-effort: a full send buffer drops the message instead of
// blocking the broadcaster.
type Client struct {
	conn     *websocket.Conn
	send     chan []byte
	driverID uuid.UUID  // uuid.Nil for observers
	routeID  *uuid.UUID // set for route-scoped observers
	cfg      config.StreamConfig
}

func newClient(conn *websocket.Conn, cfg config.StreamConfig) *Client {
	return &Client{
		conn: conn,
		send: make(chan []byte, cfg.SendBufferSize),
		cfg:  cfg,
	}
}

// enqueue offers a message to the client without blocking.
func (c *Client) enqueue(msg []byte) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// writePump drains the send buffer onto the socket and keeps the
// connection alive with pings. It owns all writes to the connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(c.cfg.PingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
