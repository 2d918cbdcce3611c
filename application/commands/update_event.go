package commands

import (
	"fmt"
	"sort"
	"strings"

	"events-api/domain/config"
	"events-api/domain/core/valueobjects"
	pkgerrors "events-api/pkg/errors"
	"events-api/pkg/utils"
)

// UpdateEventCommand represents a partial update of one event
type UpdateEventCommand struct {
	EventID string                    `json:"eventId" validate:"required"`
	Fields  *valueobjects.FieldUpdate `json:"-" validate:"-"`
}

// NewUpdateEventCommand builds the command from resolver arguments: eventId
// selects the record and every other argument is a field to set.
func NewUpdateEventCommand(arguments map[string]interface{}) UpdateEventCommand {
	fields := make(map[string]interface{}, len(arguments))
	var eventID string
	for name, value := range arguments {
		if name == "eventId" {
			eventID, _ = value.(string)
			continue
		}
		fields[name] = value
	}

	return UpdateEventCommand{
		EventID: eventID,
		Fields:  valueobjects.NewFieldUpdateFromMap(fields),
	}
}

// Validate checks the command shape
func (c UpdateEventCommand) Validate() error {
	if err := utils.ValidateStruct(c); err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	if c.Fields.IsEmpty() {
		return pkgerrors.NewValidationError("update requires at least one field")
	}
	return nil
}

// ValidateFields checks every field against the updatable allow-list
func (c UpdateEventCommand) ValidateFields(cfg *config.DomainConfig) error {
	var rejected []string
	for _, name := range c.Fields.Names() {
		if !cfg.IsUpdatable(name) {
			rejected = append(rejected, name)
		}
	}
	if len(rejected) == 0 {
		return nil
	}

	sort.Strings(rejected)
	return pkgerrors.NewValidationError(
		fmt.Sprintf("fields cannot be updated: %s", strings.Join(rejected, ", ")),
	).WithDetail("fields", rejected)
}
