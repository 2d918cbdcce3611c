// Package mocks provides testify mocks for the application ports.
package mocks

import (
	"context"

	"events-api/application/ports"
	"events-api/domain/core/entities"
	"events-api/domain/core/valueobjects"
	"events-api/domain/events"

	"github.com/stretchr/testify/mock"
)

// MockEventRepository is a mock implementation of ports.EventRepository
type MockEventRepository struct {
	mock.Mock
}

var _ ports.EventRepository = (*MockEventRepository)(nil)

func (m *MockEventRepository) List(ctx context.Context) ([]entities.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Event), args.Error(1)
}

func (m *MockEventRepository) Create(ctx context.Context, event entities.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) Update(ctx context.Context, id valueobjects.EventID, fields *valueobjects.FieldUpdate) (entities.Event, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(entities.Event), args.Error(1)
}

func (m *MockEventRepository) Delete(ctx context.Context, id valueobjects.EventID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockLinkTemplateSource is a mock implementation of ports.LinkTemplateSource
type MockLinkTemplateSource struct {
	mock.Mock
}

var _ ports.LinkTemplateSource = (*MockLinkTemplateSource)(nil)

func (m *MockLinkTemplateSource) LinkTemplates(ctx context.Context) ([]ports.LinkTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.LinkTemplate), args.Error(1)
}

// MockEventPublisher is a mock implementation of ports.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

var _ ports.EventPublisher = (*MockEventPublisher)(nil)

func (m *MockEventPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishBatch(ctx context.Context, domainEvents []events.DomainEvent) error {
	args := m.Called(ctx, domainEvents)
	return args.Error(0)
}
