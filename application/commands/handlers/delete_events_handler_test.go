package handlers

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"events-api/application/commands"
	"events-api/application/ports/mocks"
	"events-api/domain/config"
	"events-api/domain/core/valueobjects"
	"events-api/domain/events"
	pkgerrors "events-api/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func eventID(id string) valueobjects.EventID {
	eid, err := valueobjects.NewEventIDFromString(id)
	if err != nil {
		panic(err)
	}
	return eid
}

func manyIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("e%d", i)
	}
	return ids
}

func TestDeleteEventsHandler_Handle_IdempotentMissingEvent(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := new(mocks.MockEventRepository)
	publisher := new(mocks.MockEventPublisher)

	repo.On("Delete", ctx, eventID("e1")).Return(true, nil).Once()
	repo.On("Delete", ctx, eventID("e2")).Return(false, nil).Once()
	publisher.On("PublishBatch", ctx, mock.MatchedBy(func(evts []events.DomainEvent) bool {
		return len(evts) == 2
	})).Return(nil).Once()

	handler := NewDeleteEventsHandler(repo, publisher, config.DefaultDomainConfig(), zap.NewNop())

	// Act
	results, err := handler.Handle(ctx, commands.DeleteEventsCommand{EventIDs: []string{"e1", "e2"}})

	// Assert
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "e1", results[0].EventID)
	assert.True(t, results[0].Existed)
	assert.Empty(t, results[0].Error)
	assert.Equal(t, "e2", results[1].EventID)
	assert.False(t, results[1].Existed)
	assert.Empty(t, results[1].Error)
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestDeleteEventsHandler_Handle_PerItemFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockEventRepository)
	publisher := new(mocks.MockEventPublisher)

	repo.On("Delete", ctx, eventID("e1")).Return(true, nil).Once()
	repo.On("Delete", ctx, eventID("e2")).Return(false, pkgerrors.NewDatabaseError("DeleteItem", errors.New("throttled"))).Once()
	repo.On("Delete", ctx, eventID("e3")).Return(true, nil).Once()
	publisher.On("PublishBatch", ctx, mock.MatchedBy(func(evts []events.DomainEvent) bool {
		return len(evts) == 2
	})).Return(nil).Once()

	handler := NewDeleteEventsHandler(repo, publisher, config.DefaultDomainConfig(), zap.NewNop())

	results, err := handler.Handle(ctx, commands.DeleteEventsCommand{EventIDs: []string{"e1", "e2", "e3"}})

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.True(t, results[0].Succeeded())
	assert.False(t, results[1].Succeeded())
	assert.Contains(t, results[1].Error, "DeleteItem")
	assert.True(t, results[2].Succeeded())
	assert.Equal(t, []string{"e1", "e2", "e3"}, []string{results[0].EventID, results[1].EventID, results[2].EventID})
	repo.AssertExpectations(t)
}

func TestDeleteEventsHandler_Handle_BlankIDRecordedOnItem(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockEventRepository)
	publisher := new(mocks.MockEventPublisher)

	repo.On("Delete", ctx, eventID("e1")).Return(true, nil).Once()
	publisher.On("PublishBatch", ctx, mock.Anything).Return(nil).Once()

	handler := NewDeleteEventsHandler(repo, publisher, config.DefaultDomainConfig(), zap.NewNop())

	results, err := handler.Handle(ctx, commands.DeleteEventsCommand{EventIDs: []string{"e1", "  "}})

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].Succeeded())
	assert.False(t, results[1].Succeeded())
	repo.AssertNumberOfCalls(t, "Delete", 1)
}

func TestDeleteEventsHandler_Handle_InvalidCommand(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
	}{
		{name: "nil list", ids: nil},
		{name: "empty list", ids: []string{}},
		{name: "empty id", ids: []string{""}},
		{name: "too many ids", ids: manyIDs(101)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockEventRepository)
			publisher := new(mocks.MockEventPublisher)
			handler := NewDeleteEventsHandler(repo, publisher, config.DefaultDomainConfig(), zap.NewNop())

			_, err := handler.Handle(context.Background(), commands.DeleteEventsCommand{EventIDs: tt.ids})

			require.Error(t, err)
			assert.True(t, pkgerrors.IsValidation(err))
			repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		})
	}
}

func TestDeleteEventsHandler_Handle_PublishFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockEventRepository)
	publisher := new(mocks.MockEventPublisher)

	repo.On("Delete", ctx, eventID("e1")).Return(true, nil).Once()
	publisher.On("PublishBatch", ctx, mock.Anything).Return(errors.New("bus unavailable")).Once()

	handler := NewDeleteEventsHandler(repo, publisher, config.DefaultDomainConfig(), zap.NewNop())

	results, err := handler.Handle(ctx, commands.DeleteEventsCommand{EventIDs: []string{"e1"}})

	require.NoError(t, err)
	assert.True(t, results[0].Existed)
}

func TestDeleteEventsHandler_Handle_NothingDeletedPublishesNothing(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockEventRepository)
	publisher := new(mocks.MockEventPublisher)

	repo.On("Delete", ctx, eventID("e1")).Return(false, errors.New("boom")).Once()

	handler := NewDeleteEventsHandler(repo, publisher, config.DefaultDomainConfig(), zap.NewNop())

	results, err := handler.Handle(ctx, commands.DeleteEventsCommand{EventIDs: []string{"e1"}})

	require.NoError(t, err)
	assert.Equal(t, "boom", results[0].Error)
	publisher.AssertNotCalled(t, "PublishBatch", mock.Anything, mock.Anything)
}
