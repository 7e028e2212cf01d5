package eventbus

import (
	"runtime/debug"
	"sync"

	"github.com/rs/zerolog"

	"puppetgallery/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventFilterApplied   = domain.EventFilterApplied
	EventSearchApplied   = domain.EventSearchApplied
	EventSequenceChanged = domain.EventSequenceChanged
	EventViewChanged     = domain.EventViewChanged
	EventLightboxOpened  = domain.EventLightboxOpened
	EventLightboxMoved   = domain.EventLightboxMoved
	EventLightboxClosed  = domain.EventLightboxClosed
	EventItemLoaded      = domain.EventItemLoaded
)

// Re-export domain event types
type FilterAppliedEvent = domain.FilterAppliedEvent
type SearchAppliedEvent = domain.SearchAppliedEvent
type SequenceChangedEvent = domain.SequenceChangedEvent
type ViewChangedEvent = domain.ViewChangedEvent
type LightboxOpenedEvent = domain.LightboxOpenedEvent
type LightboxMovedEvent = domain.LightboxMovedEvent
type LightboxClosedEvent = domain.LightboxClosedEvent
type ItemLoadedEvent = domain.ItemLoadedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus.
// Handlers run synchronously on the publisher's goroutine, in subscription order,
// so a publish returns only after every subscriber has reacted.
type bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscription
	nextID   uint64
	log      zerolog.Logger
}

// New creates a new event bus
func New(log zerolog.Logger) EventBus {
	return &bus{
		handlers: make(map[EventType][]subscription),
		log:      log.With().Str("component", "eventbus").Logger(),
	}
}

// Publish delivers an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	b.log.Debug().Str("event", string(event.Type())).Msg("publishing")

	// Copy so handlers may subscribe or unsubscribe while being called
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, sub := range subs {
		b.call(sub.handler, event)
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error().
				Str("event", string(event.Type())).
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("event handler panic")
		}
	}()
	h(event)
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// NullBus is a no-op implementation of EventBus
type NullBus struct{}

func (NullBus) Publish(event DomainEvent) {}
func (NullBus) Subscribe(eventType EventType, handler EventHandler) func() {
	return func() {}
}
