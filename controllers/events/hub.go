// Package eventcontroller pushes store changes to connected admin panels
// over a websocket.
package eventcontroller

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/amandhingra1/charzdev-ev/store"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const writeWait = 5 * time.Second

type Hub struct {
	logger   *zap.Logger
	upgrader websocket.Upgrader

	events <-chan store.Event
	cancel func()

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewHub subscribes to s right away, so changes made before Run starts are
// still delivered (up to the subscription buffer).
func NewHub(s *store.Store, logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	events, cancel := s.Subscribe()
	return &Hub{
		logger:  logger,
		events:  events,
		cancel:  cancel,
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// Run forwards store events to every client until ctx is done, then closes
// all connections and the subscription. A Hub runs once.
func (h *Hub) Run(ctx context.Context) error {
	defer h.cancel()
	defer h.closeAll()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-h.events:
			if !ok {
				return nil
			}
			h.broadcast(ev)
		}
	}
}

func (h *Hub) broadcast(ev store.Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		h.logger.Error("marshal event", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.logger.Debug("drop websocket client", zap.Error(err))
			delete(h.clients, conn)
			conn.Close()
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
	}
}

// Clients reports how many connections are registered.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Handler upgrades the request and keeps the connection registered until
// the client goes away. Incoming messages are read and discarded.
func (h *Hub) Handler(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade", zap.Error(err))
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
	h.logger.Info("websocket connected", zap.String("remote", conn.RemoteAddr().String()))

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
	}
	h.mu.Unlock()
	h.logger.Info("websocket disconnected", zap.String("remote", conn.RemoteAddr().String()))
}
