package realtime

import (
	"log/slog"
	"sync"
)

// Conn is the minimal connection surface the hub needs.
// *websocket.Conn satisfies it.
type Conn interface {
	WriteJSON(v interface{}) error
}

// Event is the wire envelope pushed to subscribed clients.
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub is the live-push membership registry: one room per company name.
// It holds no persistent state — membership is rebuilt on every connection
// and dropped on disconnect. Delivery is best-effort with no retry; the
// persisted notification row is the durable record.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[Conn]struct{}
	conns map[Conn]map[string]struct{}
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[Conn]struct{}),
		conns: make(map[Conn]map[string]struct{}),
	}
}

// Register joins conn to the company's room. A connection normally joins a
// single room for its whole session, but joining more than one is allowed.
func (h *Hub) Register(conn Conn, companyName string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[companyName] == nil {
		h.rooms[companyName] = make(map[Conn]struct{})
	}
	h.rooms[companyName][conn] = struct{}{}
	if h.conns[conn] == nil {
		h.conns[conn] = make(map[string]struct{})
	}
	h.conns[conn][companyName] = struct{}{}
}

// Unregister removes conn from every room it joined. Called on disconnect;
// safe to call for a connection that never joined.
func (h *Hub) Unregister(conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for companyName := range h.conns[conn] {
		delete(h.rooms[companyName], conn)
		if len(h.rooms[companyName]) == 0 {
			delete(h.rooms, companyName)
		}
	}
	delete(h.conns, conn)
}

// HasSubscribers reports whether any connection is currently registered
// under the company's room.
func (h *Hub) HasSubscribers(companyName string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[companyName]) > 0
}

// Publish delivers payload to every connection in the company's room.
// Write failures are logged and skipped; a room with no members drops the
// event silently. The membership is snapshotted first so a slow or dead
// peer never stalls Register/Unregister or other rooms' fan-out.
func (h *Hub) Publish(companyName, event string, payload interface{}) {
	h.mu.RLock()
	members := make([]Conn, 0, len(h.rooms[companyName]))
	for conn := range h.rooms[companyName] {
		members = append(members, conn)
	}
	h.mu.RUnlock()

	for _, conn := range members {
		if err := conn.WriteJSON(Event{Event: event, Data: payload}); err != nil {
			slog.Warn("push delivery failed", "company", companyName, "event", event, "err", err)
		}
	}
}
