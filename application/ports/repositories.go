package ports

import (
	"context"

	"events-api/domain/core/entities"
	"events-api/domain/core/valueobjects"
	"events-api/domain/events"
)

// EventRepository defines the interface for event persistence
// This is a port in hexagonal architecture - the domain doesn't know about the implementation
type EventRepository interface {
	// List returns every event in the table
	List(ctx context.Context) ([]entities.Event, error)

	// Create stores a new event; it fails with a conflict if the ID is taken
	Create(ctx context.Context, event entities.Event) error

	// Update applies a partial update and returns the post-update record.
	// A missing key yields a not found error.
	Update(ctx context.Context, id valueobjects.EventID, fields *valueobjects.FieldUpdate) (entities.Event, error)

	// Delete removes an event. Deleting a missing key is not an error;
	// existed reports whether a record was removed.
	Delete(ctx context.Context, id valueobjects.EventID) (existed bool, err error)
}

// LinkTemplate is a named base URL from which per-event links are built
type LinkTemplate struct {
	Name    string
	BaseURL string
}

// LinkTemplateSource reads the link templates for the current deployment branch
type LinkTemplateSource interface {
	LinkTemplates(ctx context.Context) ([]LinkTemplate, error)
}

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	// Publish sends a single event
	Publish(ctx context.Context, event events.DomainEvent) error

	// PublishBatch sends multiple events
	PublishBatch(ctx context.Context, events []events.DomainEvent) error
}
