// Package realtime fans "collection changed" notifications out to connected
// clients. Events carry no payload; clients re-fetch the named collection.
package realtime

import (
	"sync"

	"nutrimix/internal/metrics"
)

// Event names a collection that changed.
type Event string

const (
	ProductsUpdated Event = "products-updated"
	InvoicesUpdated Event = "invoices-updated"
	CouponsUpdated  Event = "coupons-updated"
)

// Publisher is implemented by anything that can broadcast an Event.
// Publish must not block the caller.
type Publisher interface {
	Publish(event Event)
}

const defaultSubscriberBuffer = 16

// Subscription is one client's view of the hub.
type Subscription struct {
	events chan Event
}

// Events yields published events until the subscription is removed, at which
// point the channel is closed.
func (s *Subscription) Events() <-chan Event {
	return s.events
}

// Hub is a process-wide broadcast channel with explicit subscribe and
// unsubscribe. Delivery is best effort: a subscriber whose buffer is full
// misses the event, and nothing is replayed to late subscribers.
type Hub struct {
	mu     sync.RWMutex
	subs   map[*Subscription]struct{}
	buffer int
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{
		subs:   make(map[*Subscription]struct{}),
		buffer: defaultSubscriberBuffer,
	}
}

// Subscribe registers a new subscriber.
func (h *Hub) Subscribe() *Subscription {
	sub := &Subscription{events: make(chan Event, h.buffer)}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	metrics.RealtimeSubscribers.Inc()
	return sub
}

// Unsubscribe removes sub and closes its channel. Calling it twice is safe.
func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subs[sub]; !ok {
		return
	}
	delete(h.subs, sub)
	close(sub.events)
	metrics.RealtimeSubscribers.Dec()
}

// Publish delivers event to every current subscriber without blocking.
func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs {
		select {
		case sub.events <- event:
		default:
		}
	}
	metrics.EventsPublished.WithLabelValues(string(event)).Inc()
}

// Len reports the number of current subscribers.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close removes every subscriber.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subs {
		delete(h.subs, sub)
		close(sub.events)
		metrics.RealtimeSubscribers.Dec()
	}
}
