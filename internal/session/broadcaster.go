package session

import (
	"sync"

	"github.com/kyiku/hackz-mosaic-back/internal/model"
	"github.com/kyiku/hackz-mosaic-back/internal/scene"
)

// Broadcaster fans session events out to WebSocket subscribers.
// Connections that fail a write are dropped.
type Broadcaster struct {
	mu    sync.Mutex
	conns map[model.WebSocketConn]struct{}
}

// NewBroadcaster creates an empty Broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		conns: make(map[model.WebSocketConn]struct{}),
	}
}

// Attach subscribes a connection to session events.
func (b *Broadcaster) Attach(conn model.WebSocketConn) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.conns[conn] = struct{}{}
}

// Detach removes a connection.
func (b *Broadcaster) Detach(conn model.WebSocketConn) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.conns, conn)
}

// Len returns the number of attached connections.
func (b *Broadcaster) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.conns)
}

// PlacementAccepted sends a placement event to every subscriber.
func (b *Broadcaster) PlacementAccepted(p scene.Placement) {
	b.broadcast(map[string]interface{}{
		"type":     "placement",
		"anchor_x": p.Anchor.X,
		"anchor_y": p.Anchor.Y,
		"scale":    p.Scale,
		"color":    p.Color,
		"vertices": len(p.Outline),
	})
}

// SessionFinished sends the summary to every subscriber.
func (b *Broadcaster) SessionFinished(s Summary) {
	b.broadcast(map[string]interface{}{
		"type":    "finished",
		"placed":  s.Placed,
		"summary": s.String(),
	})
}

func (b *Broadcaster) broadcast(msg map[string]interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for conn := range b.conns {
		if err := conn.WriteJSON(msg); err != nil {
			delete(b.conns, conn)
			_ = conn.Close()
		}
	}
}
