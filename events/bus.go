// Package events provides the in-process event bus that decouples the
// use-case layer from cross-cutting reactions (cache invalidation, logging).
package events

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Topics published by services and use-cases.
const (
	TopicPostPublished    = "post.published"
	TopicPostDeleted      = "post.deleted"
	TopicCommentSubmitted = "comment.submitted"
	TopicCommentModerated = "comment.moderated"
	TopicConfigUpdated    = "config.updated"
)

// Event is a published occurrence. Payload is topic-specific.
type Event struct {
	ID      string
	Topic   string
	At      time.Time
	Payload any
}

// Handler receives events for a subscribed topic. Handlers run synchronously
// on the publisher's goroutine and must not block.
type Handler func(Event)

// Bus is a topic-based publish/subscribe bus. Safe for concurrent use.
type Bus struct {
	mu     sync.RWMutex
	subs   map[string]map[string]Handler
	closed bool
	logger *slog.Logger
}

func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		subs:   make(map[string]map[string]Handler),
		logger: logger,
	}
}

// Subscribe registers a handler for topic and returns an unsubscribe func.
func (b *Bus) Subscribe(topic string, handler Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[topic] == nil {
		b.subs[topic] = make(map[string]Handler)
	}
	id := uuid.New().String()
	b.subs[topic][id] = handler

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[topic], id)
	}
}

// Publish dispatches an event to every subscriber of topic, in-process and
// synchronously. Publishing on a closed bus is a no-op.
func (b *Bus) Publish(topic string, payload any) {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return
	}
	handlers := make([]Handler, 0, len(b.subs[topic]))
	for _, h := range b.subs[topic] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	event := Event{
		ID:      uuid.New().String(),
		Topic:   topic,
		At:      time.Now(),
		Payload: payload,
	}

	for _, h := range handlers {
		h(event)
	}

	if b.logger != nil {
		b.logger.Debug("event published", "topic", topic, "event_id", event.ID, "subscribers", len(handlers))
	}
}

// Close drops all subscriptions and stops delivery. Implements io.Closer so
// the container disposes the bus on Clear.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	b.subs = make(map[string]map[string]Handler)
	return nil
}
