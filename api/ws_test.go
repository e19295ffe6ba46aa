package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	"github.com/tourguard-inc/tourguard-api/dispatch"
)

func wsURL(srv *httptest.Server, path string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + path
}

func waitForSessions(t *testing.T, hub *dispatch.Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.Sessions() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("hub still at %d sessions, want %d", hub.Sessions(), want)
}

func TestStreamAlertsSessionLifecycle(t *testing.T) {
	s, _, _, hub := testServer()
	defer hub.Shutdown()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ws", s.streamAlerts)

	srv := httptest.NewServer(router)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "/ws"), nil)
	assert.Nil(t, err, "dial failed")

	// connect registers the session with the hub
	waitForSessions(t, hub, 1)

	hub.Publish(dispatch.EmergencyRaised{
		Tourist:     "t-1",
		Reason:      "panic button pressed",
		SafetyScore: 70,
		Timestamp:   time.Now().Unix(),
	})

	assert.Nil(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	assert.Nil(t, err, "relay never delivered")

	var decoded struct {
		Type dispatch.EventKind `json:"type"`
		Data json.RawMessage    `json:"data"`
	}
	assert.Nil(t, json.Unmarshal(payload, &decoded), "wrong json unmarshal")
	assert.Equal(t, dispatch.KindEmergencyRaised, decoded.Type, "wrong event kind")

	// closing the client promptly unregisters the session
	assert.Nil(t, conn.Close())
	waitForSessions(t, hub, 0)
}

func TestStreamAlertsTouristScope(t *testing.T) {
	s, _, _, hub := testServer()
	defer hub.Shutdown()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ws", s.streamAlerts)

	srv := httptest.NewServer(router)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "/ws?tourist=t-2"), nil)
	assert.Nil(t, err, "dial failed")
	defer conn.Close()

	waitForSessions(t, hub, 1)

	hub.Publish(dispatch.EmergencyRaised{Tourist: "t-1", Timestamp: time.Now().Unix()})
	hub.Publish(dispatch.EmergencyRaised{Tourist: "t-2", Timestamp: time.Now().Unix()})

	// only the room's own event arrives
	assert.Nil(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	assert.Nil(t, err, "relay never delivered")

	var decoded struct {
		Data dispatch.EmergencyRaised `json:"data"`
	}
	assert.Nil(t, json.Unmarshal(payload, &decoded), "wrong json unmarshal")
	assert.Equal(t, "t-2", decoded.Data.Tourist, "event leaked into another tourist's room")
}

func TestKeepAlivePingsIdleSession(t *testing.T) {
	done := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		keepAlive(conn, done, 20*time.Millisecond)
	}))
	// the handler blocks in keepAlive, so release it before the server is
	// torn down
	defer srv.Close()
	defer close(done)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "/"), nil)
	assert.Nil(t, err, "dial failed")
	defer conn.Close()

	pinged := make(chan struct{}, 1)
	conn.SetPingHandler(func(string) error {
		select {
		case pinged <- struct{}{}:
		default:
		}
		return nil
	})

	// ping frames are only processed while reading
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	select {
	case <-pinged:
	case <-time.After(2 * time.Second):
		t.Fatal("idle session never pinged")
	}
}
