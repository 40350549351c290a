package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/kyiku/hackz-mosaic-back/internal/response"
	"github.com/kyiku/hackz-mosaic-back/internal/session"
	wsutil "github.com/kyiku/hackz-mosaic-back/internal/websocket"
)

// WebSocketHandler streams accepted placements of a scene to clients.
type WebSocketHandler struct {
	store    *session.Store
	upgrader websocket.Upgrader
}

// NewWebSocketHandler creates a new WebSocketHandler.
func NewWebSocketHandler(store *session.Store) *WebSocketHandler {
	return &WebSocketHandler{
		store: store,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Connect upgrades the connection and subscribes it to the scene's
// placement events until the client disconnects.
func (h *WebSocketHandler) Connect(c echo.Context) error {
	sess, ok := h.store.Get(c.QueryParam("scene_id"))
	if !ok {
		return response.Error(c, http.StatusNotFound, "シーンが見つかりません")
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already written the error response.
		return nil
	}

	sync := wsutil.NewSyncConn(conn)
	sess.Broadcaster().Attach(sync)

	go h.readLoop(sess, sync, conn)
	return nil
}

// readLoop drains client messages, answering pings, until the
// connection drops.
func (h *WebSocketHandler) readLoop(sess *session.Session, sync *wsutil.SyncConn, conn *websocket.Conn) {
	defer func() {
		sess.Broadcaster().Detach(sync)
		_ = conn.Close()
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if wsutil.IsPingMessage(message) {
			_ = wsutil.Pong(sync)
		}
	}
}
