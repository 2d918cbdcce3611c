package commands

import (
	"testing"

	"events-api/domain/config"
	pkgerrors "events-api/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateEventCommand(t *testing.T) {
	cmd := NewUpdateEventCommand(map[string]interface{}{
		"eventId":     "e1",
		"tracks":      []interface{}{"t1"},
		"countryCode": "SE",
	})

	assert.Equal(t, "e1", cmd.EventID)
	assert.Equal(t, []string{"countryCode", "tracks"}, cmd.Fields.Names())
	require.NoError(t, cmd.Validate())
	require.NoError(t, cmd.ValidateFields(config.DefaultDomainConfig()))
}

func TestUpdateEventCommand_ValidateFieldsListsEveryRejectedName(t *testing.T) {
	cmd := NewUpdateEventCommand(map[string]interface{}{
		"eventId":   "e1",
		"links":     nil,
		"createdAt": "now",
		"eventName": "ok",
	})

	err := cmd.ValidateFields(config.DefaultDomainConfig())

	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
	assert.Equal(t, []string{"createdAt", "links"}, pkgerrors.GetAppError(err).Details["fields"])
}

func TestUpdateEventCommand_NonStringEventID(t *testing.T) {
	cmd := NewUpdateEventCommand(map[string]interface{}{"eventId": 42, "eventName": "x"})

	err := cmd.Validate()

	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
	assert.Equal(t, 1, cmd.Fields.Len())
}

func TestDeleteEventsCommand_Validate(t *testing.T) {
	cfg := config.DefaultDomainConfig()

	assert.NoError(t, DeleteEventsCommand{EventIDs: []string{"e1", "e2"}}.Validate(cfg))
	assert.Error(t, DeleteEventsCommand{}.Validate(cfg))

	cfg.MaxEventsPerDelete = 1
	err := DeleteEventsCommand{EventIDs: []string{"e1", "e2"}}.Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot delete more than 1 events")
}

func TestAddEventCommand_Validate(t *testing.T) {
	cfg := config.DefaultDomainConfig()

	assert.NoError(t, AddEventCommand{Attributes: map[string]interface{}{"eventName": "Summit", "sponsor": "AWS"}}.Validate(cfg))

	err := AddEventCommand{Attributes: map[string]interface{}{"eventName": "Summit", "createdBy": "me"}}.Validate(cfg)
	require.Error(t, err)
	assert.Equal(t, []string{"createdBy"}, pkgerrors.GetAppError(err).Details["fields"])
}
