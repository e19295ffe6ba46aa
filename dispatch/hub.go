package dispatch

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "dispatch")
}

// subscriberBuffer is the per-session queue depth. A session that falls this
// far behind starts losing events instead of slowing everyone else down.
const subscriberBuffer = 64

// Scope selects which events a session receives. The zero value subscribes
// to every tourist.
type Scope struct {
	Tourist string
}

// GlobalScope subscribes a session to events of all tourists
func GlobalScope() Scope {
	return Scope{}
}

// TouristScope subscribes a session to a single tourist's room
func TouristScope(touristID string) Scope {
	return Scope{Tourist: touristID}
}

func (s Scope) matches(event Event) bool {
	return s.Tourist == "" || s.Tourist == event.TouristID()
}

// SendFunc delivers one encoded event to a session's transport. It is always
// called from the session's own goroutine, never concurrently.
type SendFunc func(payload []byte) error

type subscriber struct {
	sessionID string
	scope     Scope
	send      SendFunc
	queue     chan []byte
}

// run drains the session queue. Queue order is publish order, which gives
// each subscriber per-source FIFO delivery.
func (s *subscriber) run(wg *sync.WaitGroup) {
	defer wg.Done()
	for payload := range s.queue {
		if err := s.send(payload); err != nil {
			// delivery is best effort; a failing session only hurts itself
			log.WithFields(logrus.Fields{
				"session": s.sessionID,
				"error":   err,
			}).Warn("event delivery failed")
		}
	}
}

// Hub fans published events out to live admin sessions. It replaces the
// ambient socket singleton of earlier iterations with an explicitly
// constructed instance whose lifetime the caller owns.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]*subscriber
	wg          sync.WaitGroup
	closed      bool
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]*subscriber),
	}
}

// Subscribe registers a session. Subscribing an already known session is a
// no-op, keeping the call idempotent for reconnect-happy transports.
func (h *Hub) Subscribe(sessionID string, scope Scope, send SendFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	if _, ok := h.subscribers[sessionID]; ok {
		return
	}

	sub := &subscriber{
		sessionID: sessionID,
		scope:     scope,
		send:      send,
		queue:     make(chan []byte, subscriberBuffer),
	}
	h.subscribers[sessionID] = sub

	h.wg.Add(1)
	go sub.run(&h.wg)

	log.WithFields(logrus.Fields{
		"session": sessionID,
		"tourist": scope.Tourist,
	}).Info("session subscribed")
}

// Sessions reports the number of live subscriber sessions
func (h *Hub) Sessions() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// Unsubscribe removes a session. Unknown sessions are a no-op. Events queued
// for the session are dropped, not redelivered.
func (h *Hub) Unsubscribe(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub, ok := h.subscribers[sessionID]
	if !ok {
		return
	}
	delete(h.subscribers, sessionID)
	close(sub.queue)

	log.WithField("session", sessionID).Info("session unsubscribed")
}

// Publish encodes an event once and queues it for every matching session.
// It never blocks on a slow session: a full queue drops the event for that
// session only.
func (h *Hub) Publish(event Event) {
	payload, err := Encode(event)
	if err != nil {
		log.WithFields(logrus.Fields{
			"kind":  event.Kind(),
			"error": err,
		}).Error("encode event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return
	}

	for _, sub := range h.subscribers {
		if !sub.scope.matches(event) {
			continue
		}
		select {
		case sub.queue <- payload:
		default:
			log.WithFields(logrus.Fields{
				"session": sub.sessionID,
				"kind":    event.Kind(),
			}).Warn("session queue full, event dropped")
		}
	}
}

// Shutdown stops accepting events, closes all session queues and waits for
// in-flight deliveries to finish.
func (h *Hub) Shutdown() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	for id, sub := range h.subscribers {
		delete(h.subscribers, id)
		close(sub.queue)
	}
	h.mu.Unlock()

	h.wg.Wait()
	log.Info("dispatcher stopped")
}
