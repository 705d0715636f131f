package sse

import (
	"sync"
)

// AllTopics is the wildcard key used by subscribers that want every event.
const AllTopics = "*"

// Event represents an SSE event to be sent to subscribers
type Event struct {
	Topic string
	Event string
	Data  interface{}
}

// Hub manages SSE subscribers and event broadcasting
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
}

// NewHub creates a new SSE Hub instance
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe registers a subscriber for the given topics, or for all topics
// when none are given, and returns the event channel and cleanup function.
func (h *Hub) Subscribe(topics ...string) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(topics) == 0 {
		topics = []string{AllTopics}
	}

	ch := make(chan Event, 16)
	for _, topic := range topics {
		if h.subscribers[topic] == nil {
			h.subscribers[topic] = make(map[chan Event]struct{})
		}
		h.subscribers[topic][ch] = struct{}{}
	}

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			for _, topic := range topics {
				delete(h.subscribers[topic], ch)
				if len(h.subscribers[topic]) == 0 {
					delete(h.subscribers, topic)
				}
			}
			close(ch)
		})
	}

	return ch, cleanup
}

// Publish sends an event to the subscribers of its topic and to wildcard subscribers
func (h *Hub) Publish(event Event) {
	if h == nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	sent := make(map[chan Event]struct{})
	for _, key := range []string{event.Topic, AllTopics} {
		for ch := range h.subscribers[key] {
			if _, ok := sent[ch]; ok {
				continue
			}
			sent[ch] = struct{}{}
			select {
			case ch <- event:
			default:
				// Skip if channel is full (non-blocking to prevent deadlock)
			}
		}
	}
}

// TotalSubscribers returns the number of distinct active subscribers
func (h *Hub) TotalSubscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	seen := make(map[chan Event]struct{})
	for _, subs := range h.subscribers {
		for ch := range subs {
			seen[ch] = struct{}{}
		}
	}
	return len(seen)
}
