package vegas

import (
	"time"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for game domain events
const (
	EventTypeGameStart  EventType = "game_start"
	EventTypeMovePlayed EventType = "move_played"
	EventTypeBillPaid   EventType = "bill_paid"
	EventTypeRoundEnd   EventType = "round_end"
	EventTypeGameEnd    EventType = "game_end"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event that occurs during a game
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// GameStartEvent is published when a new game begins
type GameStartEvent struct {
	GameID     string
	NumPlayers int
	timestamp  time.Time
}

func (e GameStartEvent) EventType() EventType { return EventTypeGameStart }
func (e GameStartEvent) Timestamp() time.Time { return e.timestamp }

// NewGameStartEvent creates a new game start event
func NewGameStartEvent(gameID string, numPlayers int) GameStartEvent {
	return GameStartEvent{
		GameID:     gameID,
		NumPlayers: numPlayers,
		timestamp:  time.Now(),
	}
}

// MovePlayedEvent is published when a player allocates rolled dice to a casino
type MovePlayedEvent struct {
	GameID    string
	Round     int
	Player    int
	Casino    int
	Dice      int
	Remaining int
	timestamp time.Time
}

func (e MovePlayedEvent) EventType() EventType { return EventTypeMovePlayed }
func (e MovePlayedEvent) Timestamp() time.Time { return e.timestamp }

// NewMovePlayedEvent creates a new move played event
func NewMovePlayedEvent(gameID string, round, player, casino, dice, remaining int) MovePlayedEvent {
	return MovePlayedEvent{
		GameID:    gameID,
		Round:     round,
		Player:    player,
		Casino:    casino,
		Dice:      dice,
		Remaining: remaining,
		timestamp: time.Now(),
	}
}

// BillPaidEvent is published when round resolution awards a bill to a player
type BillPaidEvent struct {
	GameID    string
	Round     int
	Casino    int
	Player    int
	Bill      Bill
	DiceCount int
	timestamp time.Time
}

func (e BillPaidEvent) EventType() EventType { return EventTypeBillPaid }
func (e BillPaidEvent) Timestamp() time.Time { return e.timestamp }

// NewBillPaidEvent creates a new bill paid event
func NewBillPaidEvent(gameID string, round, casino, player int, bill Bill, diceCount int) BillPaidEvent {
	return BillPaidEvent{
		GameID:    gameID,
		Round:     round,
		Casino:    casino,
		Player:    player,
		Bill:      bill,
		DiceCount: diceCount,
		timestamp: time.Now(),
	}
}

// RoundEndEvent is published after a round's payouts, before the next deal
type RoundEndEvent struct {
	GameID        string
	Round         int
	BillsPaid     int
	BillsRecycled int
	timestamp     time.Time
}

func (e RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }
func (e RoundEndEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundEndEvent creates a new round end event
func NewRoundEndEvent(gameID string, round, billsPaid, billsRecycled int) RoundEndEvent {
	return RoundEndEvent{
		GameID:        gameID,
		Round:         round,
		BillsPaid:     billsPaid,
		BillsRecycled: billsRecycled,
		timestamp:     time.Now(),
	}
}

// GameEndEvent is published when the final round has been resolved
type GameEndEvent struct {
	GameID    string
	Rounds    int
	Scores    []int
	Winners   []int
	timestamp time.Time
}

func (e GameEndEvent) EventType() EventType { return EventTypeGameEnd }
func (e GameEndEvent) Timestamp() time.Time { return e.timestamp }

// NewGameEndEvent creates a new game end event
func NewGameEndEvent(gameID string, rounds int, scores []int, winners []int) GameEndEvent {
	return GameEndEvent{
		GameID:    gameID,
		Rounds:    rounds,
		Scores:    scores,
		Winners:   winners,
		timestamp: time.Now(),
	}
}

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic in-memory event bus implementation
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
