package game

import (
	"time"

	"github.com/ashxudev/terminal-poker/poker"
)

// EventType labels a table event.
type EventType string

const (
	EventTypeHandStart    EventType = "hand_start"
	EventTypeHandEnd      EventType = "hand_end"
	EventTypeStreetChange EventType = "street_change"
	EventTypePlayerAction EventType = "player_action"
)

// String returns the string representation of the event type.
func (et EventType) String() string {
	return string(et)
}

// GameEvent is implemented by every event the table publishes.
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// HandStartEvent is published when blinds are posted for a new hand.
type HandStartEvent struct {
	HandNumber int
	Button     int
	Stacks     [2]int // stacks before blinds were posted
	timestamp  time.Time
}

func (e HandStartEvent) EventType() EventType { return EventTypeHandStart }
func (e HandStartEvent) Timestamp() time.Time { return e.timestamp }

// NewHandStartEvent creates a new hand start event.
func NewHandStartEvent(handNumber, button int, stacks [2]int) HandStartEvent {
	return HandStartEvent{
		HandNumber: handNumber,
		Button:     button,
		Stacks:     stacks,
		timestamp:  time.Now(),
	}
}

// PlayerActionEvent is published after a seat's action has been applied.
type PlayerActionEvent struct {
	Seat      int
	Action    Action
	Street    Street
	ToCall    int // amount the seat was facing before acting
	PotAfter  int
	timestamp time.Time
}

func (e PlayerActionEvent) EventType() EventType { return EventTypePlayerAction }
func (e PlayerActionEvent) Timestamp() time.Time { return e.timestamp }

// NewPlayerActionEvent creates a new player action event.
func NewPlayerActionEvent(seat int, action Action, street Street, toCall, potAfter int) PlayerActionEvent {
	return PlayerActionEvent{
		Seat:      seat,
		Action:    action,
		Street:    street,
		ToCall:    toCall,
		PotAfter:  potAfter,
		timestamp: time.Now(),
	}
}

// StreetChangeEvent is published when community cards are dealt.
type StreetChangeEvent struct {
	Street    Street
	Board     []poker.Card
	timestamp time.Time
}

func (e StreetChangeEvent) EventType() EventType { return EventTypeStreetChange }
func (e StreetChangeEvent) Timestamp() time.Time { return e.timestamp }

// NewStreetChangeEvent creates a new street change event.
func NewStreetChangeEvent(street Street, board []poker.Card) StreetChangeEvent {
	return StreetChangeEvent{
		Street:    street,
		Board:     board,
		timestamp: time.Now(),
	}
}

// HandEndEvent is published once per hand with the final result.
type HandEndEvent struct {
	HandNumber int
	Result     HandResult
	Stacks     [2]int // stacks after the pot was awarded
	timestamp  time.Time
}

func (e HandEndEvent) EventType() EventType { return EventTypeHandEnd }
func (e HandEndEvent) Timestamp() time.Time { return e.timestamp }

// NewHandEndEvent creates a new hand end event.
func NewHandEndEvent(handNumber int, result HandResult, stacks [2]int) HandEndEvent {
	return HandEndEvent{
		HandNumber: handNumber,
		Result:     result,
		Stacks:     stacks,
		timestamp:  time.Now(),
	}
}

// EventSubscriber can subscribe to table events.
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventBus manages event publishing and subscription.
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic in-memory event bus implementation.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus.
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events.
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events.
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers.
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
