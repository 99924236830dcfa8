package handler

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/jhalaktiwarii/dealerspot-backend/internal/realtime"
)

// writeWait bounds a single push write so a dead peer errors out instead of
// blocking a fan-out goroutine on a full TCP buffer.
const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browsers connect from the dashboard origin; access control happens at
	// join time, not upgrade time.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// jsonWriter is the write surface wsConn needs. *websocket.Conn satisfies it.
type jsonWriter interface {
	WriteJSON(v interface{}) error
	SetWriteDeadline(t time.Time) error
}

// wsConn serializes writes to one websocket connection. gorilla/websocket
// permits at most one concurrent writer, and the hub's publish path runs on
// fan-out goroutines while the read loop writes join acks.
type wsConn struct {
	mu sync.Mutex
	ws jsonWriter
}

func (c *wsConn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return c.ws.WriteJSON(v)
}

// WSHandler upgrades dashboard clients and manages their room membership.
type WSHandler struct {
	hub *realtime.Hub
}

func NewWSHandler(hub *realtime.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

type joinMessage struct {
	Action      string `json:"action"`
	CompanyName string `json:"companyName"`
}

// Serve upgrades the connection and reads join messages until the client
// disconnects. The client self-identifies its company; the join is trusted
// as announced.
func (h *WSHandler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	wc := &wsConn{ws: conn}
	defer func() {
		h.hub.Unregister(wc)
		_ = conn.Close()
	}()

	for {
		var msg joinMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("websocket read failed", "remote", r.RemoteAddr, "err", err)
			}
			return
		}
		if msg.Action == "join" && msg.CompanyName != "" {
			h.hub.Register(wc, msg.CompanyName)
			if err := wc.WriteJSON(realtime.Event{Event: "joined", Data: msg.CompanyName}); err != nil {
				return
			}
		}
	}
}
