package ws

import (
	"jobboard_backend/internal/logger"
)

// Event is the wire format pushed to subscribed clients.
type Event struct {
	Event   string `json:"event"`
	Payload any    `json:"payload,omitempty"`
}

// Hub fans events out to connected clients. Delivery is best-effort and
// at-most-once: a client with a full send buffer is dropped, a failed send
// is never retried. The hub is never authoritative state.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan Event
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Event, 64),
	}
}

// Run owns the client map; all mutation happens on this goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			logger.Debug("ws client registered", "user_id", client.UserID, "total", len(h.clients))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				close(client.send)
				delete(h.clients, client)
				logger.Debug("ws client unregistered", "user_id", client.UserID, "total", len(h.clients))
			}

		case event := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- event:
				default:
					// Slow consumer: drop the client rather than block.
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// Broadcast queues an event for delivery. Never blocks the caller; when the
// queue is full the event is silently discarded.
func (h *Hub) Broadcast(event string, payload any) {
	select {
	case h.broadcast <- Event{Event: event, Payload: payload}:
	default:
	}
}
