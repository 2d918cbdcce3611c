package di

import (
	"events-api/infrastructure/config"
	"events-api/interfaces/appsync"
	"events-api/pkg/observability"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	Logger     *zap.Logger
	Dispatcher *appsync.Dispatcher
	Metrics    *observability.Metrics
	Tracer     *observability.Tracer
}

// Shutdown flushes buffered log entries
func (c *Container) Shutdown() error {
	if c.Logger == nil {
		return nil
	}
	return c.Logger.Sync()
}
