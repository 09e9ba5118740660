package toast

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Severity classifies a toast for presentation.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// DefaultDuration is the auto-dismiss duration applied to every toast.
const DefaultDuration = 4 * time.Second

// Toast is one transient notification delivered to a user. Duration is in
// whole milliseconds so the wire value matches the field name.
type Toast struct {
	ID       string   `json:"id"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
	Visible  bool     `json:"visible"`
	Duration int64    `json:"duration_ms"`
}

// Notifier is the notification collaborator the views emit into.
type Notifier interface {
	Success(userID, message string)
	Error(userID, message string)
}

// Hub fans toasts out to per-user subscribers. Publishing never blocks: a
// subscriber with a full channel misses the toast.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Toast]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan Toast]struct{}),
	}
}

// Subscribe registers a subscriber for a user and returns the toast channel
// and a cleanup function.
func (h *Hub) Subscribe(userID string) (chan Toast, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Toast, 10)

	if h.subscribers[userID] == nil {
		h.subscribers[userID] = make(map[chan Toast]struct{})
	}
	h.subscribers[userID][ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subscribers[userID], ch)
		close(ch)
		if len(h.subscribers[userID]) == 0 {
			delete(h.subscribers, userID)
		}
	}

	return ch, cleanup
}

// Success publishes a success toast to every subscriber of userID.
func (h *Hub) Success(userID, message string) {
	h.publish(userID, Toast{
		ID:       uuid.NewString(),
		Message:  message,
		Severity: SeveritySuccess,
		Visible:  true,
		Duration: DefaultDuration.Milliseconds(),
	})
}

// Error publishes an error toast to every subscriber of userID.
func (h *Hub) Error(userID, message string) {
	h.publish(userID, Toast{
		ID:       uuid.NewString(),
		Message:  message,
		Severity: SeverityError,
		Visible:  true,
		Duration: DefaultDuration.Milliseconds(),
	})
}

func (h *Hub) publish(userID string, t Toast) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if subs, ok := h.subscribers[userID]; ok {
		for ch := range subs {
			select {
			case ch <- t:
			default:
				// Skip if channel is full (non-blocking to prevent deadlock)
			}
		}
	}
}

// SubscriberCount returns the number of active subscribers for a user.
func (h *Hub) SubscriberCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[userID])
}
