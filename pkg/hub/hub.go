package hub

import (
	"log"
	"sync"

	"catden/pkg/envelope"

	"github.com/gofiber/contrib/websocket"
)

type clientConn struct {
	conn     *websocket.Conn
	username string
	mu       sync.Mutex
}

func (cc *clientConn) send(data []byte) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if err := cc.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Printf("[HUB] send error user=%s: %v", cc.username, err)
	}
}

// Hub fans gallery events out to every connected socket. Anonymous viewers
// are allowed; the feed is read-only.
type Hub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]*clientConn
}

func New() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]*clientConn),
	}
}

// HandleClientConn registers the socket and blocks until it closes.
// Inbound frames are drained and discarded.
func (h *Hub) HandleClientConn(c *websocket.Conn, username string) {
	cc := &clientConn{conn: c, username: username}

	h.mu.Lock()
	h.clients[c] = cc
	h.mu.Unlock()

	log.Printf("[HUB] client connected: username=%q total=%d", username, h.ClientCount())

	defer func() {
		h.mu.Lock()
		delete(h.clients, c)
		h.mu.Unlock()
		c.Close()
		log.Printf("[HUB] client disconnected: username=%q total=%d", username, h.ClientCount())
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}

// Broadcast wraps data in an event envelope and sends it to every client.
func (h *Hub) Broadcast(action string, data interface{}) {
	env, err := envelope.NewEvent(action, data)
	if err != nil {
		log.Printf("[HUB] broadcast marshal error action=%s: %v", action, err)
		return
	}

	raw, err := env.Marshal()
	if err != nil {
		return
	}

	h.mu.RLock()
	conns := make([]*clientConn, 0, len(h.clients))
	for _, cc := range h.clients {
		conns = append(conns, cc)
	}
	h.mu.RUnlock()

	for _, cc := range conns {
		cc.send(raw)
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
