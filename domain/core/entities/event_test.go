package entities

import (
	"testing"

	"events-api/domain/core/valueobjects"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent_CopiesAttributes(t *testing.T) {
	id, err := valueobjects.NewEventIDFromString("e1")
	require.NoError(t, err)

	attrs := map[string]interface{}{"eventName": "Summit", AttrEventID: "ignored"}
	event := NewEvent(id, attrs)
	attrs["eventName"] = "changed"

	assert.Equal(t, "Summit", event["eventName"])
	assert.Equal(t, "e1", event[AttrEventID])
}

func TestEvent_ID(t *testing.T) {
	tests := []struct {
		name    string
		event   Event
		want    string
		wantErr bool
	}{
		{name: "string id", event: Event{AttrEventID: "e1"}, want: "e1"},
		{name: "missing id", event: Event{"eventName": "x"}, wantErr: true},
		{name: "numeric id", event: Event{AttrEventID: 7}, wantErr: true},
		{name: "empty id", event: Event{AttrEventID: ""}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := tt.event.ID()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id.String())
		})
	}
}

func TestEvent_Links(t *testing.T) {
	event := Event{AttrEventID: "e1"}
	assert.Nil(t, event.Links())

	links := []EventLink{NewEventLink("leaderboard", "https://lb.example.com/?event=e1")}
	event.SetLinks(links)

	assert.Equal(t, links, event.Links())
	assert.Equal(t, "https://lb.example.com/?event=e1", event.Links()[0]["leaderboard"])
}

func TestDeletedEvent_Succeeded(t *testing.T) {
	assert.True(t, DeletedEvent{EventID: "e1", Existed: false}.Succeeded())
	assert.False(t, DeletedEvent{EventID: "e1", Error: "boom"}.Succeeded())
}
