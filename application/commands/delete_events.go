package commands

import (
	"fmt"

	"events-api/domain/config"
	pkgerrors "events-api/pkg/errors"
	"events-api/pkg/utils"
)

// DeleteEventsCommand removes a batch of events by ID
type DeleteEventsCommand struct {
	EventIDs []string `json:"eventIds" validate:"required,min=1,dive,required"`
}

// Validate checks the command shape and batch size
func (c DeleteEventsCommand) Validate(cfg *config.DomainConfig) error {
	if err := utils.ValidateStruct(c); err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	if cfg.MaxEventsPerDelete > 0 && len(c.EventIDs) > cfg.MaxEventsPerDelete {
		return pkgerrors.NewValidationError(
			fmt.Sprintf("cannot delete more than %d events at once", cfg.MaxEventsPerDelete),
		)
	}
	return nil
}
