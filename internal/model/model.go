// Package model provides shared data models for the application.
package model

// Status constants for a fill scene's lifecycle.
const (
	StatusRunning  = "running"
	StatusFinished = "finished"
)

// WebSocketConn defines the interface for WebSocket connections.
type WebSocketConn interface {
	WriteMessage(messageType int, data []byte) error
	WriteJSON(v interface{}) error
	Close() error
}
