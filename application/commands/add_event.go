package commands

import (
	"fmt"
	"sort"
	"strings"

	"events-api/domain/config"
	pkgerrors "events-api/pkg/errors"
)

// AddEventCommand creates a new event from resolver arguments
type AddEventCommand struct {
	Attributes map[string]interface{} `json:"attributes"`
	CreatedBy  string                 `json:"createdBy"`
}

// Validate requires an event name and rejects attributes the service owns
func (c AddEventCommand) Validate(cfg *config.DomainConfig) error {
	name, _ := c.Attributes["eventName"].(string)
	if strings.TrimSpace(name) == "" {
		return pkgerrors.NewValidationError("eventName is required")
	}

	var rejected []string
	for attr := range c.Attributes {
		if !cfg.IsUpdatable(attr) {
			rejected = append(rejected, attr)
		}
	}
	if len(rejected) > 0 {
		sort.Strings(rejected)
		return pkgerrors.NewValidationError(
			fmt.Sprintf("fields cannot be set: %s", strings.Join(rejected, ", ")),
		).WithDetail("fields", rejected)
	}
	return nil
}
