// Package server exposes a floor plan and its route planner over HTTP:
// JSON endpoints for plans and route queries, a websocket channel that
// announces plan reloads, and an optional file watcher that picks up
// edits to the plan on disk.
package server

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const writeWait = 10 * time.Second

// subscriber is one websocket client. The mutex serializes writes to
// the connection.
type subscriber struct {
	id   string
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *subscriber) send(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

// hub tracks websocket subscribers and fans notifications out to them.
type hub struct {
	mu   sync.Mutex
	subs map[string]*subscriber
	log  *zap.Logger
}

func newHub(log *zap.Logger) *hub {
	return &hub{
		subs: make(map[string]*subscriber),
		log:  log,
	}
}

func (h *hub) add(conn *websocket.Conn) *subscriber {
	sub := &subscriber{id: uuid.NewString()[:8], conn: conn}
	h.mu.Lock()
	h.subs[sub.id] = sub
	h.mu.Unlock()
	h.log.Debug("websocket subscribed", zap.String("client", sub.id))
	return sub
}

func (h *hub) remove(sub *subscriber) {
	h.mu.Lock()
	_, ok := h.subs[sub.id]
	delete(h.subs, sub.id)
	h.mu.Unlock()
	if ok {
		sub.conn.Close()
		h.log.Debug("websocket unsubscribed", zap.String("client", sub.id))
	}
}

// notification is the only message shape the hub sends.
type notification struct {
	Type string `json:"type"`
}

// broadcast sends a typed notification to every subscriber, dropping
// any connection that fails to take the write.
func (h *hub) broadcast(msgType string) {
	data, err := json.Marshal(notification{Type: msgType})
	if err != nil {
		h.log.Error("marshal notification", zap.Error(err))
		return
	}

	h.mu.Lock()
	subs := make([]*subscriber, 0, len(h.subs))
	for _, sub := range h.subs {
		subs = append(subs, sub)
	}
	h.mu.Unlock()

	for _, sub := range subs {
		if err := sub.send(data); err != nil {
			h.log.Debug("dropping subscriber", zap.String("client", sub.id), zap.Error(err))
			h.remove(sub)
		}
	}
}

// count returns the number of connected subscribers.
func (h *hub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
