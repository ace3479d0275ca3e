package server

import (
	"log/slog"
	"net"
	"net/http"
	"sync"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
)

// Hub tracks WebSocket clients and pushes chart update notifications to them.
type Hub struct {
	mu    sync.Mutex
	conns map[net.Conn]struct{}

	// writeMu serializes broadcasts so frames never interleave.
	writeMu sync.Mutex
}

func NewHub() *Hub {
	return &Hub{conns: make(map[net.Conn]struct{})}
}

// ServeHTTP upgrades the request and keeps the connection until the client
// goes away. Client messages are read and discarded.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, _, _, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		slog.Debug("websocket upgrade failed", "error", err)
		return
	}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()
	slog.Debug("websocket client connected", "remote", conn.RemoteAddr().String())

	go func() {
		defer h.remove(conn)
		for {
			if _, _, err := wsutil.ReadClientData(conn); err != nil {
				return
			}
		}
	}()
}

// Broadcast sends msg to every client. Clients that fail to receive it are dropped.
func (h *Hub) Broadcast(msg string) {
	h.mu.Lock()
	conns := make([]net.Conn, 0, len(h.conns))
	for conn := range h.conns {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	h.writeMu.Lock()
	defer h.writeMu.Unlock()
	for _, conn := range conns {
		if err := wsutil.WriteServerText(conn, []byte(msg)); err != nil {
			slog.Debug("websocket write failed", "remote", conn.RemoteAddr().String(), "error", err)
			h.remove(conn)
		}
	}
}

// Len is the number of connected clients.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	conns := h.conns
	h.conns = make(map[net.Conn]struct{})
	h.mu.Unlock()

	for conn := range conns {
		_ = conn.Close()
	}
}

func (h *Hub) remove(conn net.Conn) {
	h.mu.Lock()
	_, ok := h.conns[conn]
	delete(h.conns, conn)
	h.mu.Unlock()
	if ok {
		_ = conn.Close()
	}
}
