package valueobjects

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// EventID identifies a single event record. It is the table's hash key.
type EventID struct {
	value string
}

// NewEventID allocates a new random EventID
func NewEventID() EventID {
	return EventID{value: uuid.New().String()}
}

// NewEventIDFromString wraps an existing identifier. Identifiers created
// outside this service are not required to be UUIDs.
func NewEventIDFromString(id string) (EventID, error) {
	if strings.TrimSpace(id) == "" {
		return EventID{}, errors.New("event ID cannot be empty")
	}
	return EventID{value: id}, nil
}

// String returns the string representation of the EventID
func (id EventID) String() string {
	return id.value
}

// Equals checks if two EventIDs are equal
func (id EventID) Equals(other EventID) bool {
	return id.value == other.value
}

// IsZero checks if the EventID is the zero value
func (id EventID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON implements json.Marshaler
func (id EventID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.value)
}

// UnmarshalJSON implements json.Unmarshaler
func (id *EventID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return errors.New("EventID must be a string")
	}
	id.value = value
	return nil
}
