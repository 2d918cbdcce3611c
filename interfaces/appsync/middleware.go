package appsync

import (
	"context"
	"time"

	pkgerrors "events-api/pkg/errors"
	"events-api/pkg/observability"

	"go.uber.org/zap"
)

// Logging logs every resolver call with its outcome and duration
func Logging(logger *zap.Logger) Middleware {
	return func(field string, next ResolverFunc) ResolverFunc {
		return func(ctx context.Context, event ResolverEvent) (interface{}, error) {
			start := time.Now()
			result, err := next(ctx, event)

			fields := []zap.Field{
				zap.String("field", field),
				zap.String("username", event.Username()),
				zap.Duration("duration", time.Since(start)),
			}
			if err != nil {
				fields = append(fields, zap.Error(err), zap.String("error_type", errorType(err)))
				if appErr := pkgerrors.GetAppError(err); appErr != nil && appErr.HTTPStatus < 500 {
					logger.Warn("Resolver rejected request", fields...)
				} else {
					logger.Error("Resolver failed", fields...)
				}
				return nil, err
			}

			logger.Info("Resolver completed", fields...)
			return result, nil
		}
	}
}

// Metrics records latency, count and error type per field
func Metrics(metrics *observability.Metrics) Middleware {
	return func(field string, next ResolverFunc) ResolverFunc {
		return func(ctx context.Context, event ResolverEvent) (interface{}, error) {
			start := time.Now()
			result, err := next(ctx, event)

			metrics.RecordResolverExecution(ctx, field, time.Since(start), err)
			if err != nil {
				metrics.RecordError(ctx, field, errorType(err))
			}
			return result, err
		}
	}
}

// Tracing runs each resolver in its own X-Ray subsegment
func Tracing(tracer *observability.Tracer) Middleware {
	return func(field string, next ResolverFunc) ResolverFunc {
		return func(ctx context.Context, event ResolverEvent) (interface{}, error) {
			var result interface{}
			err := tracer.TraceFunction(ctx, field, func(ctx context.Context) error {
				tracer.AddAnnotation(ctx, "field", field)
				var err error
				result, err = next(ctx, event)
				return err
			})
			return result, err
		}
	}
}
