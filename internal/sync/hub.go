package sync

import (
	"encoding/json"
	"net"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeTimeout = 2 * time.Second

// Hub fans state mutation events out to watch clients. Two transports
// share one subscriber set: raw TCP consumers reading newline-delimited
// JSON and WebSocket consumers receiving one event per text message.
//
// The most recent event is kept and replayed to every new subscriber,
// so a watcher that connects mid-session immediately sees the current
// cart size instead of waiting for the next mutation.
type Hub struct {
	mu   sync.Mutex
	tcp  map[net.Conn]struct{}
	ws   map[*websocket.Conn]struct{}
	last []byte
}

type Stats struct {
	TCPClients int `json:"tcp_clients"`
	WSClients  int `json:"ws_clients"`
}

func NewHub() *Hub {
	return &Hub{
		tcp: make(map[net.Conn]struct{}),
		ws:  make(map[*websocket.Conn]struct{}),
	}
}

func (h *Hub) Add(conn net.Conn) {
	h.mu.Lock()
	h.tcp[conn] = struct{}{}
	last := h.last
	h.mu.Unlock()

	if last != nil {
		_ = writeTCP(conn, last)
	}
}

func (h *Hub) Remove(conn net.Conn) {
	h.mu.Lock()
	delete(h.tcp, conn)
	h.mu.Unlock()
	_ = conn.Close()
}

func (h *Hub) AddWS(ws *websocket.Conn) {
	h.mu.Lock()
	h.ws[ws] = struct{}{}
	last := h.last
	h.mu.Unlock()

	if last != nil {
		_ = ws.WriteMessage(websocket.TextMessage, last)
	}
}

func (h *Hub) RemoveWS(ws *websocket.Conn) {
	h.mu.Lock()
	delete(h.ws, ws)
	h.mu.Unlock()
	_ = ws.Close()
}

// BroadcastJSON sends one event to every subscriber and remembers it
// for replay. Subscribers whose write fails are dropped on the spot.
func (h *Hub) BroadcastJSON(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	b = append(b, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	h.last = b

	for c := range h.tcp {
		if err := writeTCP(c, b); err != nil {
			_ = c.Close()
			delete(h.tcp, c)
		}
	}
	for ws := range h.ws {
		if err := ws.WriteMessage(websocket.TextMessage, b); err != nil {
			_ = ws.Close()
			delete(h.ws, ws)
		}
	}
}

func (h *Hub) Stats() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()
	return Stats{TCPClients: len(h.tcp), WSClients: len(h.ws)}
}

// Welcome greets a fresh TCP subscriber so interactive clients (nc,
// telnet) see the stream is alive before the first mutation lands.
func (h *Hub) Welcome(conn net.Conn) {
	stats := h.Stats()
	msg, err := json.Marshal(map[string]any{
		"type":        "welcome",
		"stream":      "state events",
		"tcp_clients": stats.TCPClients,
	})
	if err != nil {
		return
	}
	_ = writeTCP(conn, append(msg, '\n'))
}

func writeTCP(c net.Conn, b []byte) error {
	_ = c.SetWriteDeadline(time.Now().Add(writeTimeout))
	_, err := c.Write(b)
	return err
}
