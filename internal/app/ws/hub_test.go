package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"jobtrack/internal/domain/model"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dialTestConn upgrades a client against a throwaway server and registers the
// server side of the connection in the hub under userID.
func dialTestConn(t *testing.T, hub *Hub, userID string) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{}
	registered := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		hub.Register(userID, conn)
		close(registered)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	select {
	case <-registered:
	case <-time.After(2 * time.Second):
		t.Fatal("server side never registered")
	}
	return client
}

func TestHubSend_Delivers(t *testing.T) {
	hub := NewHub()
	client := dialTestConn(t, hub, "user-1")

	ok := hub.Send("user-1", model.NotificationEvent{Message: "application updated"})
	require.True(t, ok)

	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	var event model.NotificationEvent
	require.NoError(t, client.ReadJSON(&event))
	assert.Equal(t, "application updated", event.Message)
}

func TestHubSend_NotConnected(t *testing.T) {
	hub := NewHub()
	assert.False(t, hub.Send("nobody", model.NotificationEvent{Message: "dropped"}))
}

func TestHubUnregister(t *testing.T) {
	hub := NewHub()
	dialTestConn(t, hub, "user-1")
	require.Equal(t, 1, hub.ConnectedCount())

	// Removing by connection value, the way the ws handler does on close
	hub.mu.Lock()
	conn := hub.conns["user-1"]
	hub.mu.Unlock()

	hub.Unregister(conn)
	assert.Equal(t, 0, hub.ConnectedCount())
	assert.False(t, hub.Send("user-1", model.NotificationEvent{Message: "x"}))
}

func TestHubRegister_ReplacesConnection(t *testing.T) {
	hub := NewHub()
	dialTestConn(t, hub, "user-1")
	second := dialTestConn(t, hub, "user-1")

	require.Equal(t, 1, hub.ConnectedCount())

	ok := hub.Send("user-1", model.NotificationEvent{Message: "to the new connection"})
	require.True(t, ok)

	second.SetReadDeadline(time.Now().Add(2 * time.Second))
	var event model.NotificationEvent
	require.NoError(t, second.ReadJSON(&event))
	assert.Equal(t, "to the new connection", event.Message)
}
