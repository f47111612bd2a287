package main

import (
	"log/slog"
	"sync"
	"time"

	"plane-booking/logger"
)

// HubStats tracks statistics for the hub
type HubStats struct {
	TotalClients      int       `json:"total_clients"`
	TotalMessages     int64     `json:"total_messages"`
	StartedAt         time.Time `json:"started_at"`
	LastBroadcastTime time.Time `json:"last_broadcast_time"`
}

// Hub keeps the set of connected viewers and fans seat updates out to them
type Hub struct {
	clients map[*Client]bool

	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	stats   HubStats
	metrics *viewerMetrics
	log     *slog.Logger

	mu sync.RWMutex
}

func newHub(metrics *viewerMetrics) *Hub {
	return &Hub{
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		clients:    make(map[*Client]bool),
		stats: HubStats{
			StartedAt: time.Now(),
		},
		metrics: metrics,
		log:     logger.WithComponent("hub"),
	}
}

func (h *Hub) run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.stats.TotalClients = len(h.clients)
			h.mu.Unlock()
			h.metrics.connectedClients.Inc()

			h.log.Info("Client registered", "client_id", client.id, "total_clients", h.GetClientCount())

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.stats.TotalClients = len(h.clients)
				h.metrics.connectedClients.Dec()
			}
			h.mu.Unlock()

			h.log.Info("Client unregistered", "client_id", client.id, "total_clients", h.GetClientCount())

		case message := <-h.broadcast:
			h.mu.Lock()
			h.stats.TotalMessages++
			h.stats.LastBroadcastTime = time.Now()
			h.mu.Unlock()
			h.metrics.broadcasts.Inc()

			h.broadcastToClients(message)

		case <-h.done:
			return
		}
	}
}

func (h *Hub) stop() {
	close(h.done)
}

func (h *Hub) broadcastMessage(message []byte) {
	select {
	case h.broadcast <- message:
	default:
		h.log.Warn("Broadcast channel full, dropping message")
	}
}

// broadcastToClients sends a message to all connected clients
func (h *Hub) broadcastToClients(message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.send <- message:
		default:
			// readPump notices the closed connection and unregisters the client itself
			h.log.Warn("Client send buffer full, disconnecting", "client_id", client.id)
			client.conn.Close()
		}
	}
}

// GetStats returns current hub statistics
func (h *Hub) GetStats() HubStats {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.stats
}

// GetClientCount returns the current number of connected clients
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
