// pkg/event/event.go
package event

import (
	"sync"

	"github.com/opd-ai/go-hitscan/pkg/physics"
)

// Type represents the type of event
type Type string

// Simulation event types
const (
	GameStarted    Type = "game_started"
	GameEnded      Type = "game_ended"
	ShotFired      Type = "shot_fired"
	EnemyHit       Type = "enemy_hit"
	EnemyDestroyed Type = "enemy_destroyed"
	EnemySpawned   Type = "enemy_spawned"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription is returned by Subscribe. Cancel removes the handler.
type Subscription struct {
	ID     uint64
	Cancel func()
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching. Handlers run
// synchronously on the publisher's goroutine.
type Bus struct {
	handlers map[Type][]subscriber
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscriber),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscriber{id: id, handler: handler})

	return &Subscription{
		ID:     id,
		Cancel: func() { b.unsubscribe(eventType, id) },
	}
}

func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[eventType]
	for i, s := range subs {
		if s.id == id {
			b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subs := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, s := range subs {
		s.handler(event)
	}
}

// ShotEvent is published every time the weapon fires.
type ShotEvent struct {
	BaseEvent
	Origin    physics.Vector2D
	Direction physics.Vector2D
	Hit       bool
}

// NewShotEvent creates a new shot event
func NewShotEvent(source interface{}, origin, direction physics.Vector2D, hit bool) *ShotEvent {
	return &ShotEvent{
		BaseEvent: BaseEvent{
			EventType: ShotFired,
			Source:    source,
		},
		Origin:    origin,
		Direction: direction,
		Hit:       hit,
	}
}

// EnemyEvent carries an enemy id for hit, destroy and spawn events.
type EnemyEvent struct {
	BaseEvent
	EnemyID  uint64
	Distance float64 // along the shot ray, set for EnemyHit only
}

// NewEnemyEvent creates a new enemy event
func NewEnemyEvent(eventType Type, source interface{}, enemyID uint64) *EnemyEvent {
	return &EnemyEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		EnemyID: enemyID,
	}
}
