// Package ws holds the live-connection registry used to push notification
// events to connected clients.
package ws

import (
	"sync"

	"jobtrack/internal/domain/model"
	"jobtrack/internal/platform/logger"

	"github.com/gorilla/websocket"
)

// Hub maps user ids to their active websocket connection. It is held only in
// process memory and rebuilt from scratch on restart; nothing here is
// durable. A single mutex guards the map and serializes writes to the
// connections, which is fine at the expected connection counts.
type Hub struct {
	mu    sync.Mutex
	conns map[string]*websocket.Conn
}

func NewHub() *Hub {
	return &Hub{conns: make(map[string]*websocket.Conn)}
}

// Register records the connection for a user. A reconnect replaces the
// previous entry.
func (h *Hub) Register(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[userID] = conn
	logger.Log.Infow("user connected", "user_id", userID)
}

// Unregister removes whichever entry holds the given connection. The scan is
// O(n); expected concurrent-connection counts are small.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for userID, c := range h.conns {
		if c == conn {
			delete(h.conns, userID)
			logger.Log.Infow("user disconnected", "user_id", userID)
		}
	}
}

// Send pushes an event to the user's live connection. Returns false when the
// user is not connected. A failed write closes and drops the connection.
func (h *Hub) Send(userID string, event model.NotificationEvent) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	conn, ok := h.conns[userID]
	if !ok {
		return false
	}
	if err := conn.WriteJSON(event); err != nil {
		logger.Log.Warnw("websocket write failed, dropping connection", "user_id", userID, "error", err)
		conn.Close()
		delete(h.conns, userID)
		return false
	}
	return true
}

// ConnectedCount reports the number of live connections.
func (h *Hub) ConnectedCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}
