// Package notify provides a fan-out driven.Notifier.
// Driving adapters subscribe to render notifications their own way:
// the CLI prints them, the TUI forwards them to its status bar.
package notify

import (
	"sync"

	"github.com/custodia-labs/cotiza/internal/core/domain"
	"github.com/custodia-labs/cotiza/internal/core/ports/driven"
	"github.com/custodia-labs/cotiza/internal/core/ports/driving"
	"github.com/custodia-labs/cotiza/internal/logger"
)

// Ensure Hub implements the interfaces.
var (
	_ driven.Notifier          = (*Hub)(nil)
	_ driving.NotificationFeed = (*Hub)(nil)
)

// Handler receives notifications.
type Handler = func(domain.Notification)

// Hub delivers each notification to every current subscriber,
// in subscription order.
type Hub struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[int]Handler
	order    []int
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{handlers: make(map[int]Handler)}
}

// Subscribe registers h and returns a function that removes it.
func (h *Hub) Subscribe(handler Handler) (unsubscribe func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	h.handlers[id] = handler
	h.order = append(h.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.handlers, id)
			for i, v := range h.order {
				if v == id {
					h.order = append(h.order[:i], h.order[i+1:]...)
					break
				}
			}
		})
	}
}

// Notify delivers n to all subscribers. Handlers run outside the lock
// so they may subscribe or unsubscribe.
func (h *Hub) Notify(n domain.Notification) {
	h.mu.RLock()
	handlers := make([]Handler, 0, len(h.order))
	for _, id := range h.order {
		handlers = append(handlers, h.handlers[id])
	}
	h.mu.RUnlock()

	logger.Debug("Notification [%s] %s", n.Level, n.Message)
	for _, handler := range handlers {
		handler(n)
	}
}

// Recorder is a Notifier that keeps every notification it receives.
type Recorder struct {
	mu    sync.Mutex
	items []domain.Notification
}

// Ensure Recorder implements the interface.
var _ driven.Notifier = (*Recorder)(nil)

// Notify records n.
func (r *Recorder) Notify(n domain.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

// All returns a copy of the recorded notifications.
func (r *Recorder) All() []domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Notification, len(r.items))
	copy(out, r.items)
	return out
}

// Last returns the most recent notification, if any.
func (r *Recorder) Last() (domain.Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return domain.Notification{}, false
	}
	return r.items[len(r.items)-1], true
}
