package events

import (
	"time"

	"events-api/domain/core/valueobjects"
)

// SourceEventsAPI is the EventBridge source for events published by this service
const SourceEventsAPI = "events-api"

// Event type names
const (
	TypeEventAdded   = "event.added"
	TypeEventUpdated = "event.updated"
	TypeEventDeleted = "event.deleted"
)

// DomainEvent is the base interface for all domain events
// Events represent something that has happened in the past
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
	GetVersion() int
}

// BaseEvent provides common event fields
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
	Version     int       `json:"version"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }
func (e BaseEvent) GetVersion() int         { return e.Version }

// EventAdded is raised when a new event record is created
type EventAdded struct {
	BaseEvent
	EventID   valueobjects.EventID `json:"event_id"`
	CreatedBy string               `json:"created_by,omitempty"`
}

// NewEventAdded creates an EventAdded event
func NewEventAdded(eventID valueobjects.EventID, createdBy string, timestamp time.Time) EventAdded {
	return EventAdded{
		BaseEvent: BaseEvent{
			AggregateID: eventID.String(),
			EventType:   TypeEventAdded,
			Timestamp:   timestamp,
			Version:     1,
		},
		EventID:   eventID,
		CreatedBy: createdBy,
	}
}

// EventUpdated is raised when fields of an event record are changed
type EventUpdated struct {
	BaseEvent
	EventID       valueobjects.EventID `json:"event_id"`
	UpdatedFields []string             `json:"updated_fields"`
}

// NewEventUpdated creates an EventUpdated event
func NewEventUpdated(eventID valueobjects.EventID, fields []string, timestamp time.Time) EventUpdated {
	return EventUpdated{
		BaseEvent: BaseEvent{
			AggregateID: eventID.String(),
			EventType:   TypeEventUpdated,
			Timestamp:   timestamp,
			Version:     1,
		},
		EventID:       eventID,
		UpdatedFields: fields,
	}
}

// EventDeleted is raised when an event record is removed
type EventDeleted struct {
	BaseEvent
	EventID valueobjects.EventID `json:"event_id"`
	Existed bool                 `json:"existed"`
}

// NewEventDeleted creates an EventDeleted event
func NewEventDeleted(eventID valueobjects.EventID, existed bool, timestamp time.Time) EventDeleted {
	return EventDeleted{
		BaseEvent: BaseEvent{
			AggregateID: eventID.String(),
			EventType:   TypeEventDeleted,
			Timestamp:   timestamp,
			Version:     1,
		},
		EventID: eventID,
		Existed: existed,
	}
}
