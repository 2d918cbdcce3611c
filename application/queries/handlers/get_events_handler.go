package handlers

import (
	"context"
	"fmt"

	"events-api/application/ports"
	"events-api/application/queries"
	"events-api/application/services"
	"events-api/domain/core/entities"

	"go.uber.org/zap"
)

// GetEventsHandler lists events and attaches their links
type GetEventsHandler struct {
	eventRepo ports.EventRepository
	enricher  *services.LinkEnricher
	logger    *zap.Logger
}

// NewGetEventsHandler creates a new get events handler
func NewGetEventsHandler(eventRepo ports.EventRepository, enricher *services.LinkEnricher, logger *zap.Logger) *GetEventsHandler {
	return &GetEventsHandler{
		eventRepo: eventRepo,
		enricher:  enricher,
		logger:    logger,
	}
}

// Handle executes the query
func (h *GetEventsHandler) Handle(ctx context.Context, query queries.GetEventsQuery) ([]entities.Event, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	list, err := h.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	enriched, err := h.enricher.Enrich(ctx, list)
	if err != nil {
		return nil, fmt.Errorf("failed to attach links: %w", err)
	}

	h.logger.Info("Listed events", zap.Int("count", len(enriched)))
	return enriched, nil
}
