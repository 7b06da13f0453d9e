// Package web serves the spectator feed over HTTP: a WebSocket stream
// of live-game updates plus JSON endpoints for the leaderboard and the
// current active set. Spectation is read-only; nothing a client sends
// can touch a running simulation.
package web

import (
	"sync"
)

// Hub fans live-state messages out to connected spectators.
// Each subscriber gets its own buffered channel; a slow consumer drops
// updates instead of stalling the rest.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]chan Message
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]chan Message),
	}
}

// Register creates a personal channel for a spectator.
// Re-registering the same ID closes and replaces the old channel.
func (h *Hub) Register(id string) chan Message {
	h.mu.Lock()
	defer h.mu.Unlock()

	if old, ok := h.subscribers[id]; ok {
		close(old)
	}

	ch := make(chan Message, 16)
	h.subscribers[id] = ch
	return ch
}

// Unregister removes a spectator and closes its channel.
func (h *Hub) Unregister(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subscribers[id]; ok {
		close(ch)
		delete(h.subscribers, id)
	}
}

// Broadcast sends a message to every spectator. Full channels are
// skipped: the next update supersedes anything a laggard missed.
func (h *Hub) Broadcast(msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.subscribers {
		select {
		case ch <- msg:
		default:
		}
	}
}

// SubscriberCount returns the number of connected spectators.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
