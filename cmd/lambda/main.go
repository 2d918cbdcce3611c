package main

import (
	"context"
	"log"
	"time"

	"events-api/infrastructure/config"
	"events-api/infrastructure/di"
	"events-api/interfaces/appsync"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.uber.org/zap"
)

var (
	// container holds the dependency injection container
	container *di.Container

	// coldStart tracks whether this is a cold start invocation
	coldStart = true

	// coldStartTime records when the cold start began
	coldStartTime time.Time
)

// init runs during cold start
func init() {
	coldStartTime = time.Now()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err = di.InitializeContainer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	fields := []zap.Field{
		zap.String("table", cfg.DynamoDBTable),
		zap.String("branch", cfg.BranchName),
		zap.Duration("duration", time.Since(coldStartTime)),
	}
	if cfg.AppSyncURL != "" {
		fields = append(fields, zap.String("appsync_url", cfg.AppSyncURL))
	}
	container.Logger.Info("Lambda cold start completed", fields...)
}

// Handler is the Lambda function handler for AppSync direct resolvers
func Handler(ctx context.Context, event appsync.ResolverEvent) (interface{}, error) {
	logger := container.Logger.With(zap.String("field", event.Key()))
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		logger = logger.With(zap.String("request_id", lc.AwsRequestID))
	}

	if coldStart {
		logger.Debug("First invocation after cold start",
			zap.Duration("since_cold_start", time.Since(coldStartTime)),
		)
		coldStart = false
	}

	result, err := container.Dispatcher.Resolve(ctx, event)
	if err != nil {
		return nil, appsync.InvokeError(err)
	}
	return result, nil
}

// main is the entry point for the Lambda function
func main() {
	lambda.Start(Handler)
}
