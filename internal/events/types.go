package events

import (
	"github.com/KirkDiggler/arm5e-effects/internal/effects"
)

// EventType represents the type of record lifecycle event
type EventType string

// Event is the base interface for all record lifecycle events
type Event interface {
	GetType() EventType
	GetRecord() *effects.Record
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type   EventType
	Record *effects.Record
	// Privileged reports whether a game master made the change
	Privileged bool
	Cancelled  bool
}

func (e *BaseEvent) GetType() EventType         { return e.Type }
func (e *BaseEvent) GetRecord() *effects.Record { return e.Record }
func (e *BaseEvent) IsCancelled() bool          { return e.Cancelled }
func (e *BaseEvent) Cancel()                    { e.Cancelled = true }

// RecordCreatedEvent is emitted after a record is attached to an owner
type RecordCreatedEvent struct {
	BaseEvent
	OwnerID string
}

// NewRecordEvent creates an event for a change to rec
func NewRecordEvent(eventType EventType, rec *effects.Record, privileged bool) *BaseEvent {
	return &BaseEvent{
		Type:       eventType,
		Record:     rec,
		Privileged: privileged,
	}
}
