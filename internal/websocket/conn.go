// Package websocket provides WebSocket connection utilities.
package websocket

import (
	"encoding/json"
	"sync"

	"github.com/kyiku/hackz-mosaic-back/internal/model"
)

// SyncConn serializes writes to an underlying connection. Gorilla
// connections allow only one concurrent writer, and a scene's
// broadcaster and the pong responder may write from different
// goroutines.
type SyncConn struct {
	mu   sync.Mutex
	conn model.WebSocketConn
}

// NewSyncConn wraps conn with a write lock.
func NewSyncConn(conn model.WebSocketConn) *SyncConn {
	return &SyncConn{conn: conn}
}

// WriteMessage writes a raw message while holding the write lock.
func (c *SyncConn) WriteMessage(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(messageType, data)
}

// WriteJSON writes v as JSON while holding the write lock.
func (c *SyncConn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// Close closes the underlying connection.
func (c *SyncConn) Close() error {
	return c.conn.Close()
}

// IsPingMessage checks if a message is a ping message without
// processing it.
func IsPingMessage(message []byte) bool {
	var msg map[string]interface{}
	if err := json.Unmarshal(message, &msg); err != nil {
		return false
	}

	msgType, ok := msg["type"].(string)
	return ok && msgType == "ping"
}

// Pong sends the pong response for a ping message.
func Pong(conn model.WebSocketConn) error {
	return conn.WriteJSON(map[string]interface{}{
		"type": "pong",
	})
}
