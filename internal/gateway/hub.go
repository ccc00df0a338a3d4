package gateway

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/theta-arc/internal/chat"
)

// Hub tracks connected sessions and fans announcements out to them.
// Bridges drop announcements for guilds they do not serve.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{sessions: map[string]*Session{}}
}

// Register adds a session
func (h *Hub) Register(s *Session) {
	h.mu.Lock()
	h.sessions[s.ID()] = s
	count := len(h.sessions)
	h.mu.Unlock()

	slog.Info("Bridge connected", "session_id", s.ID(), "sessions", count)
}

// Unregister removes a session
func (h *Hub) Unregister(id string) {
	h.mu.Lock()
	delete(h.sessions, id)
	count := len(h.sessions)
	h.mu.Unlock()

	slog.Info("Bridge disconnected", "session_id", id, "sessions", count)
}

// Count returns the number of connected sessions
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Announce implements chat.Sink. A full session misses the announcement
// instead of stalling the others.
func (h *Hub) Announce(_ context.Context, a *chat.Announcement) error {
	data, err := EncodeFrame(&Frame{Type: FrameAnnouncement, Announcement: a})
	if err != nil {
		return err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for id, s := range h.sessions {
		if err := s.Send(data); err != nil {
			slog.Warn("Announcement dropped", "session_id", id, "channel_id", a.ChannelID, "error", err)
		}
	}
	return nil
}
