package store

import (
	"sync"

	"github.com/MKhiriev/chest-tracker/internal/logger"
	"github.com/MKhiriev/chest-tracker/internal/utils"
	"github.com/MKhiriev/chest-tracker/models"
)

// EventHandler receives store notifications. Handlers run synchronously on
// the emitting goroutine; a handler that mutates the store re-enters it,
// which is permitted outside an active transaction.
type EventHandler func(event models.Event)

// SubscriptionID identifies one registered handler so it can be removed
// later. Handler functions are not comparable in Go, so each subscription
// is keyed by a generated token instead of the function value.
type SubscriptionID string

// eventBus is the in-process publish/subscribe mechanism backing the store.
// Delivery is synchronous and unordered across handlers.
type eventBus struct {
	mu       sync.RWMutex
	handlers map[models.EventType]map[SubscriptionID]EventHandler

	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

func newEventBus(log *logger.Logger) *eventBus {
	handlers := make(map[models.EventType]map[SubscriptionID]EventHandler, len(models.EventTypes))
	for _, t := range models.EventTypes {
		handlers[t] = make(map[SubscriptionID]EventHandler)
	}

	return &eventBus{
		handlers: handlers,
		ids:      utils.NewUUIDGenerator(),
		logger:   log,
	}
}

func (b *eventBus) subscribe(eventType models.EventType, handler EventHandler) SubscriptionID {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := SubscriptionID(b.ids.Generate())

	set, ok := b.handlers[eventType]
	if !ok {
		set = make(map[SubscriptionID]EventHandler)
		b.handlers[eventType] = set
	}
	set[id] = handler

	b.logger.Debug().
		Str("func", "eventBus.subscribe").
		Stringer("event_type", eventType).
		Str("subscription_id", string(id)).
		Msg("handler subscribed")

	return id
}

func (b *eventBus) unsubscribe(eventType models.EventType, id SubscriptionID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	set, ok := b.handlers[eventType]
	if !ok {
		return false
	}
	if _, ok := set[id]; !ok {
		return false
	}

	delete(set, id)
	return true
}

// emit invokes every handler registered for the event's type. The handler
// set is copied before invocation so handlers may subscribe or unsubscribe
// while the emit is in flight. A panicking handler is recovered and logged
// so one failing subscriber cannot break others or the emitting operation.
func (b *eventBus) emit(event models.Event) {
	b.mu.RLock()
	set := b.handlers[event.Type]
	snapshot := make([]EventHandler, 0, len(set))
	for _, h := range set {
		snapshot = append(snapshot, h)
	}
	b.mu.RUnlock()

	for _, handler := range snapshot {
		b.invoke(handler, event)
	}
}

func (b *eventBus) invoke(handler EventHandler, event models.Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error().
				Str("func", "eventBus.invoke").
				Stringer("event_type", event.Type).
				Any("panic", r).
				Msg("event handler panicked")
		}
	}()

	handler(event)
}
