package handler

import (
	"net/http"

	"jobtrack/internal/app/ws"
	"jobtrack/internal/common"
	"jobtrack/internal/common/security"
	"jobtrack/internal/platform/logger"

	"github.com/gorilla/websocket"
)

// WSHandler upgrades authenticated clients to a websocket and registers them
// in the hub. The connection is push-only: inbound frames are discarded.
type WSHandler struct {
	hub           *ws.Hub
	allowedOrigin string
	upgrader      websocket.Upgrader
}

func NewWSHandler(hub *ws.Hub, allowedOrigin string) *WSHandler {
	h := &WSHandler{hub: hub, allowedOrigin: allowedOrigin}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || origin == h.allowedOrigin
		},
	}
	return h
}

// Serve handles GET /ws?token=<jwt>. The token in the query identifies the
// user; browsers cannot set an Authorization header on a websocket handshake.
func (h *WSHandler) Serve(w http.ResponseWriter, r *http.Request) {
	tokenString := r.URL.Query().Get("token")
	if tokenString == "" {
		common.RespondWithError(w, http.StatusUnauthorized, "Authorization token required")
		return
	}

	userID, _, err := security.ParseToken(tokenString)
	if err != nil {
		common.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the error response
		logger.Log.Warnw("websocket upgrade failed", "user_id", userID, "error", err)
		return
	}

	h.hub.Register(userID, conn)

	go func() {
		defer func() {
			h.hub.Unregister(conn)
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
