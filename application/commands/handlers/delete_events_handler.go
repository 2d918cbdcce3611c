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

// DeleteEventsHandler deletes events one by one. A failure on one item is
// reported on that item and does not stop the batch. Deleting an ID that is
// not in the table succeeds with Existed=false.
type DeleteEventsHandler struct {
	eventRepo    ports.EventRepository
	publisher    ports.EventPublisher
	domainConfig *config.DomainConfig
	logger       *zap.Logger
}

// NewDeleteEventsHandler creates a new delete events handler
func NewDeleteEventsHandler(
	eventRepo ports.EventRepository,
	publisher ports.EventPublisher,
	domainConfig *config.DomainConfig,
	logger *zap.Logger,
) *DeleteEventsHandler {
	return &DeleteEventsHandler{
		eventRepo:    eventRepo,
		publisher:    publisher,
		domainConfig: domainConfig,
		logger:       logger,
	}
}

// Handle executes the delete events command. Results are in input order.
func (h *DeleteEventsHandler) Handle(ctx context.Context, cmd commands.DeleteEventsCommand) ([]entities.DeletedEvent, error) {
	if err := cmd.Validate(h.domainConfig); err != nil {
		return nil, fmt.Errorf("invalid command: %w", err)
	}

	results := make([]entities.DeletedEvent, 0, len(cmd.EventIDs))
	published := make([]events.DomainEvent, 0, len(cmd.EventIDs))
	failed := 0

	for _, rawID := range cmd.EventIDs {
		result := entities.DeletedEvent{EventID: rawID}

		eventID, err := valueobjects.NewEventIDFromString(rawID)
		if err != nil {
			result.Error = err.Error()
			results = append(results, result)
			failed++
			continue
		}

		existed, err := h.eventRepo.Delete(ctx, eventID)
		if err != nil {
			h.logger.Warn("Failed to delete event",
				zap.String("eventId", rawID),
				zap.Error(err),
			)
			result.Error = err.Error()
			results = append(results, result)
			failed++
			continue
		}

		result.Existed = existed
		results = append(results, result)
		published = append(published, events.NewEventDeleted(eventID, existed, time.Now()))
	}

	if len(published) > 0 {
		if err := h.publisher.PublishBatch(ctx, published); err != nil {
			h.logger.Warn("Failed to publish delete events", zap.Error(err))
		}
	}

	h.logger.Info("Deleted events",
		zap.Int("requested", len(cmd.EventIDs)),
		zap.Int("deleted", len(cmd.EventIDs)-failed),
		zap.Int("failed", failed),
	)

	return results, nil
}
