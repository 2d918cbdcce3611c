package handlers

import (
	"context"
	"fmt"
	"time"

	"events-api/application/commands"
	"events-api/application/ports"
	"events-api/domain/config"
	"events-api/domain/core/entities"
	"events-api/domain/core/valueobjects"
	"events-api/domain/events"

	"go.uber.org/zap"
)

// UpdateEventHandler handles partial updates of a single event
type UpdateEventHandler struct {
	eventRepo    ports.EventRepository
	publisher    ports.EventPublisher
	domainConfig *config.DomainConfig
	logger       *zap.Logger
}

// NewUpdateEventHandler creates a new update event handler
func NewUpdateEventHandler(
	eventRepo ports.EventRepository,
	publisher ports.EventPublisher,
	domainConfig *config.DomainConfig,
	logger *zap.Logger,
) *UpdateEventHandler {
	return &UpdateEventHandler{
		eventRepo:    eventRepo,
		publisher:    publisher,
		domainConfig: domainConfig,
		logger:       logger,
	}
}

// Handle executes the update event command and returns the post-update record
func (h *UpdateEventHandler) Handle(ctx context.Context, cmd commands.UpdateEventCommand) (entities.Event, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("invalid command: %w", err)
	}
	if err := cmd.ValidateFields(h.domainConfig); err != nil {
		return nil, fmt.Errorf("invalid command: %w", err)
	}

	eventID, err := valueobjects.NewEventIDFromString(cmd.EventID)
	if err != nil {
		return nil, fmt.Errorf("invalid event ID: %w", err)
	}

	updated, err := h.eventRepo.Update(ctx, eventID, cmd.Fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	if err := h.publisher.Publish(ctx, events.NewEventUpdated(eventID, cmd.Fields.Names(), time.Now())); err != nil {
		h.logger.Warn("Failed to publish event", zap.Error(err))
	}

	h.logger.Info("Event updated",
		zap.String("eventId", eventID.String()),
		zap.Strings("fields", cmd.Fields.Names()),
	)

	return updated, nil
}
