package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const broadcastBuffer = 64

// Change announces that listings of an entity kind have changed
type Change struct {
	// Entity is the API collection, e.g. "notes" or "mentors"
	Entity string `json:"entity"`

	// Action is "created", "updated" or "downloaded"
	Action string `json:"action"`

	At time.Time `json:"at"`
}

// Hub maintains the set of active clients and broadcasts changes to them
type Hub struct {
	clients map[*Client]bool

	broadcast  chan Change
	register   chan *Client
	unregister chan *Client

	// closed when Run returns
	done chan struct{}

	// guards clients for ClientsCount
	mu sync.RWMutex

	logger zerolog.Logger
	now    func() time.Time
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan Change, broadcastBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
		now:        time.Now,
	}
}

// Run handles registrations and broadcasts until ctx is done, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case change := <-h.broadcast:
			h.broadcastChange(change)

		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			h.logger.Info().Msg("Change feed hub stopped")
			return
		}
	}
}

// Publish queues a change for broadcast. It never blocks the caller;
// changes are dropped when the queue is full.
func (h *Hub) Publish(entity, action string) {
	change := Change{Entity: entity, Action: action, At: h.now().UTC()}
	select {
	case h.broadcast <- change:
	default:
		h.logger.Warn().Str("entity", entity).Str("action", action).Msg("Change feed queue full, dropping change")
	}
}

// attach registers a client unless the hub has stopped
func (h *Hub) attach(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// detach unregisters a client; a stopped hub has already closed it
func (h *Hub) detach(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// ClientsCount returns the number of connected clients
func (h *Hub) ClientsCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	h.clients[client] = true
	h.mu.Unlock()

	h.logger.Debug().Str("addr", client.addr).Msg("Client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
		h.logger.Debug().Str("addr", client.addr).Msg("Client unregistered")
	}
}

// broadcastChange runs on the hub goroutine; slow clients are dropped.
func (h *Hub) broadcastChange(change Change) {
	data, err := json.Marshal(change)
	if err != nil {
		h.logger.Error().Err(err).Str("entity", change.Entity).Msg("Failed to marshal change for broadcast")
		return
	}

	var slow []*Client
	h.mu.RLock()
	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			slow = append(slow, client)
		}
	}
	count := len(h.clients)
	h.mu.RUnlock()

	for _, client := range slow {
		h.unregisterClient(client)
	}

	h.logger.Debug().
		Str("entity", change.Entity).
		Str("action", change.Action).
		Int("clientCount", count).
		Msg("Change broadcasted")
}
