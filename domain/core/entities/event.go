package entities

import (
	"fmt"

	"events-api/domain/core/valueobjects"
)

// Attribute names with meaning to this service. Every other attribute is
// carried through untouched.
const (
	AttrEventID   = "eventId"
	AttrCreatedAt = "createdAt"
	AttrCreatedBy = "createdBy"
	AttrLinks     = "links"
)

// Event is a single event record. The schema is owned by the GraphQL layer,
// so the record is kept as an open attribute map.
type Event map[string]interface{}

// NewEvent creates an event with the given identifier and attributes.
// The attributes map is copied.
func NewEvent(id valueobjects.EventID, attributes map[string]interface{}) Event {
	e := make(Event, len(attributes)+1)
	for k, v := range attributes {
		e[k] = v
	}
	e[AttrEventID] = id.String()
	return e
}

// ID returns the event's identifier
func (e Event) ID() (valueobjects.EventID, error) {
	raw, ok := e[AttrEventID]
	if !ok {
		return valueobjects.EventID{}, fmt.Errorf("event has no %s attribute", AttrEventID)
	}
	s, ok := raw.(string)
	if !ok {
		return valueobjects.EventID{}, fmt.Errorf("event %s must be a string, got %T", AttrEventID, raw)
	}
	return valueobjects.NewEventIDFromString(s)
}

// SetLinks replaces the event's links attribute
func (e Event) SetLinks(links []EventLink) {
	e[AttrLinks] = links
}

// Links returns the event's links, if any were attached in this process
func (e Event) Links() []EventLink {
	links, _ := e[AttrLinks].([]EventLink)
	return links
}

// EventLink maps a link name (leaderboard, overlay, ...) to its URL. It is a
// single-entry map so the GraphQL layer sees {name: url}.
type EventLink map[string]string

// NewEventLink creates a single-entry link
func NewEventLink(name, url string) EventLink {
	return EventLink{name: url}
}

// DeletedEvent is the per-item outcome of a batch delete
type DeletedEvent struct {
	EventID string `json:"eventId"`
	Existed bool   `json:"existed"`
	Error   string `json:"error,omitempty"`
}

// Succeeded reports whether the delete request for this item was accepted
func (d DeletedEvent) Succeeded() bool {
	return d.Error == ""
}
