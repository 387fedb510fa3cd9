// Package realtime delivers per-user push events over websockets. Delivery
// is strictly addressed: a payload goes to the sessions of exactly one user,
// never to a broadcast group.
package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

const defaultSendBuffer = 16

// Hub tracks live sessions keyed by user id. A user may hold several
// sessions at once (multiple tabs or devices).
type Hub struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]map[*session]struct{}

	sendBuffer int
	log        *slog.Logger
}

func NewHub(sendBuffer int, log *slog.Logger) *Hub {
	if sendBuffer <= 0 {
		sendBuffer = defaultSendBuffer
	}
	if log == nil {
		log = slog.Default()
	}
	return &Hub{
		sessions:   make(map[uuid.UUID]map[*session]struct{}),
		sendBuffer: sendBuffer,
		log:        log,
	}
}

func (h *Hub) register(s *session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.sessions[s.userID]
	if !ok {
		set = make(map[*session]struct{})
		h.sessions[s.userID] = set
	}
	set[s] = struct{}{}
}

func (h *Hub) unregister(s *session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.sessions[s.userID]
	if !ok {
		return
	}
	if _, ok := set[s]; !ok {
		return
	}
	delete(set, s)
	close(s.send)
	if len(set) == 0 {
		delete(h.sessions, s.userID)
	}
}

// Push marshals payload and queues it on every live session of userID.
// Users with no session lose the event silently; the persisted notification
// is the durable copy. A session whose send queue is full is treated as
// stale and dropped.
func (h *Hub) Push(userID uuid.UUID, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.log.Error("realtime: marshal push payload", "err", err)
		return
	}

	h.mu.RLock()
	var stale []*session
	for s := range h.sessions[userID] {
		select {
		case s.send <- data:
		default:
			stale = append(stale, s)
		}
	}
	h.mu.RUnlock()

	for _, s := range stale {
		h.log.Warn("realtime: dropping stale session", "user_id", userID)
		h.unregister(s)
		s.conn.Close()
	}
}

// SessionCount reports how many sessions userID currently holds.
func (h *Hub) SessionCount(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions[userID])
}

// Close drops every session. Called on shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for userID, set := range h.sessions {
		for s := range set {
			close(s.send)
			s.conn.Close()
		}
		delete(h.sessions, userID)
	}
}
