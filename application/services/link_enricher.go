package services

import (
	"context"
	"fmt"
	"net/url"

	"events-api/application/ports"
	"events-api/domain/core/entities"
	pkgerrors "events-api/pkg/errors"

	"go.uber.org/zap"
)

// LinkEnricher attaches leaderboard and streaming overlay links to events.
// Templates are read once per call and applied to every event.
type LinkEnricher struct {
	templates ports.LinkTemplateSource
	logger    *zap.Logger
}

// NewLinkEnricher creates a new LinkEnricher
func NewLinkEnricher(templates ports.LinkTemplateSource, logger *zap.Logger) *LinkEnricher {
	return &LinkEnricher{
		templates: templates,
		logger:    logger,
	}
}

// Enrich sets the links attribute on every event. It fails with a
// configuration error when no templates exist for the deployment branch.
func (e *LinkEnricher) Enrich(ctx context.Context, events []entities.Event) ([]entities.Event, error) {
	if len(events) == 0 {
		return events, nil
	}

	templates, err := e.templates.LinkTemplates(ctx)
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		return nil, pkgerrors.NewConfigurationError("no link templates configured for this deployment")
	}

	for _, event := range events {
		id, err := event.ID()
		if err != nil {
			return nil, pkgerrors.NewValidationError(err.Error())
		}

		links := make([]entities.EventLink, 0, len(templates))
		for _, t := range templates {
			links = append(links, entities.NewEventLink(t.Name, EventURL(t.BaseURL, id.String())))
		}
		event.SetLinks(links)
	}

	e.logger.Debug("Enriched events with links",
		zap.Int("events", len(events)),
		zap.Int("templates", len(templates)),
	)
	return events, nil
}

// EventURL builds the per-event link for a template base URL
func EventURL(baseURL, eventID string) string {
	return fmt.Sprintf("%s/?event=%s", baseURL, url.QueryEscape(eventID))
}
