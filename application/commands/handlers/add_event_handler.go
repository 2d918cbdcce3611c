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
	"events-api/pkg/utils"

	"go.uber.org/zap"
)

// AddEventHandler creates new event records
type AddEventHandler struct {
	eventRepo    ports.EventRepository
	publisher    ports.EventPublisher
	domainConfig *config.DomainConfig
	logger       *zap.Logger
	now          func() time.Time
}

// NewAddEventHandler creates a new add event handler
func NewAddEventHandler(
	eventRepo ports.EventRepository,
	publisher ports.EventPublisher,
	domainConfig *config.DomainConfig,
	logger *zap.Logger,
) *AddEventHandler {
	return &AddEventHandler{
		eventRepo:    eventRepo,
		publisher:    publisher,
		domainConfig: domainConfig,
		logger:       logger,
		now:          time.Now,
	}
}

// Handle allocates an ID, stamps creation metadata and stores the event
func (h *AddEventHandler) Handle(ctx context.Context, cmd commands.AddEventCommand) (entities.Event, error) {
	if err := cmd.Validate(h.domainConfig); err != nil {
		return nil, fmt.Errorf("invalid command: %w", err)
	}

	eventID := valueobjects.NewEventID()
	createdAt := h.now().UTC()

	event := entities.NewEvent(eventID, cmd.Attributes)
	event[entities.AttrCreatedAt] = utils.FormatRFC3339(createdAt)
	if cmd.CreatedBy != "" {
		event[entities.AttrCreatedBy] = cmd.CreatedBy
	}

	if err := h.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	if err := h.publisher.Publish(ctx, events.NewEventAdded(eventID, cmd.CreatedBy, createdAt)); err != nil {
		h.logger.Warn("Failed to publish event", zap.Error(err))
	}

	h.logger.Info("Event added",
		zap.String("eventId", eventID.String()),
		zap.String("createdBy", cmd.CreatedBy),
	)

	return event, nil
}
