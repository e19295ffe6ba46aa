package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/tourguard-inc/tourguard-api/dispatch"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	// the dashboard is served from another origin
	CheckOrigin: func(r *http.Request) bool { return true },
}

// streamAlerts upgrades an admin session to a websocket and relays dispatcher
// events until the session closes. An optional ?tourist= query narrows the
// subscription to one tourist's room.
func (s *Server) streamAlerts(c *gin.Context) {
	// Upgrade replies to the client itself when the handshake fails
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Error("websocket upgrade")
		c.Error(err)
		c.Abort()
		return
	}

	sessionID := uuid.New().String()
	scope := dispatch.GlobalScope()
	if touristID := c.Query("tourist"); touristID != "" {
		scope = dispatch.TouristScope(touristID)
	}

	// the hub calls this from the session's own goroutine, so the writer
	// side of the connection stays single-threaded
	s.hub.Subscribe(sessionID, scope, func(payload []byte) error {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteMessage(websocket.TextMessage, payload)
	})

	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// browser clients never write on their own, so the server pings and the
	// pong extends the read deadline
	done := make(chan struct{})
	go keepAlive(conn, done, pingPeriod)

	// read until the peer goes away, then promptly unregister; queued
	// events are dropped, not redelivered
	go func() {
		defer func() {
			close(done)
			s.hub.Unsubscribe(sessionID)
			_ = conn.Close()
		}()

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.WithFields(logrus.Fields{
						"session": sessionID,
						"error":   err,
					}).Debug("websocket closed")
				}
				return
			}
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		}
	}()
}

// keepAlive pings the peer until the session ends. WriteControl is safe to
// call concurrently with the hub's event writes.
func keepAlive(conn *websocket.Conn, done <-chan struct{}, period time.Duration) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
