//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"events-api/infrastructure/config"
	"events-api/interfaces/appsync"

	"github.com/google/wire"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideSSMClient,
	ProvideEventBridgeClient,
	ProvideCloudWatchClient,
	ProvideDomainConfig,
	ProvideEventRepository,
	ProvideLinkTemplateSource,
	ProvideEventPublisher,
	ProvideMetrics,
	ProvideTracer,
	ProvideLinkEnricher,
	ProvideDeleteEventsHandler,
	ProvideUpdateEventHandler,
	ProvideAddEventHandler,
	ProvideGetEventsHandler,
	appsync.NewResolvers,
	ProvideDispatcher,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}

