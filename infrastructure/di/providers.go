package di

import (
	"context"
	"fmt"

	commandhandlers "events-api/application/commands/handlers"
	"events-api/application/ports"
	queryhandlers "events-api/application/queries/handlers"
	"events-api/application/services"
	domainconfig "events-api/domain/config"
	"events-api/infrastructure/config"
	"events-api/infrastructure/messaging/eventbridge"
	"events-api/infrastructure/parameters/ssm"
	"events-api/infrastructure/persistence/dynamodb"
	"events-api/interfaces/appsync"
	"events-api/pkg/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-xray-sdk-go/instrumentation/awsv2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "events-api"

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	if level, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}

	return logger.With(zap.String("service", serviceName)), nil
}

// ProvideAWSConfig creates AWS configuration. With tracing enabled every SDK
// call is recorded as an X-Ray subsegment.
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}

	if cfg.EnableTracing {
		awsv2.AWSV2Instrumentor(&awsCfg.APIOptions)
	}
	return awsCfg, nil
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideSSMClient creates an SSM client
func ProvideSSMClient(awsCfg aws.Config) *awsssm.Client {
	return awsssm.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideDomainConfig provides the event record rules
func ProvideDomainConfig() *domainconfig.DomainConfig {
	return domainconfig.DefaultDomainConfig()
}

// ProvideEventRepository creates the DynamoDB event repository
func ProvideEventRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.EventRepository {
	return dynamodb.NewEventRepository(client, cfg.DynamoDBTable, logger)
}

// ProvideLinkTemplateSource creates the SSM link template store for the
// deployment branch
func ProvideLinkTemplateSource(client *awsssm.Client, cfg *config.Config, logger *zap.Logger) ports.LinkTemplateSource {
	return ssm.NewLinkTemplateStore(client, cfg.ParameterPrefix, cfg.BranchName, logger)
}

// ProvideEventPublisher creates an event publisher. Without an event bus
// change notifications are dropped.
func ProvideEventPublisher(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventPublisher {
	if cfg.EventBusName == "" {
		logger.Info("EVENT_BUS_NAME not set, change notifications disabled")
		return eventbridge.NoopPublisher{}
	}
	return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
}

// ProvideMetrics creates metrics instance
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config, logger *zap.Logger) *observability.Metrics {
	namespace := fmt.Sprintf("%s/%s", cfg.MetricsNamespace, cfg.Environment)
	if !cfg.EnableMetrics {
		return observability.NewMetrics(namespace, nil, logger)
	}
	return observability.NewMetrics(namespace, client, logger)
}

// ProvideTracer creates the X-Ray tracer
func ProvideTracer(cfg *config.Config) *observability.Tracer {
	return observability.NewTracer(serviceName, cfg.EnableTracing)
}

// ProvideLinkEnricher creates the link enricher
func ProvideLinkEnricher(templates ports.LinkTemplateSource, logger *zap.Logger) *services.LinkEnricher {
	return services.NewLinkEnricher(templates, logger)
}

// ProvideDeleteEventsHandler creates the deleteEvents handler
func ProvideDeleteEventsHandler(
	repo ports.EventRepository,
	publisher ports.EventPublisher,
	domainConfig *domainconfig.DomainConfig,
	logger *zap.Logger,
) *commandhandlers.DeleteEventsHandler {
	return commandhandlers.NewDeleteEventsHandler(repo, publisher, domainConfig, logger)
}

// ProvideUpdateEventHandler creates the updateEvent handler
func ProvideUpdateEventHandler(
	repo ports.EventRepository,
	publisher ports.EventPublisher,
	domainConfig *domainconfig.DomainConfig,
	logger *zap.Logger,
) *commandhandlers.UpdateEventHandler {
	return commandhandlers.NewUpdateEventHandler(repo, publisher, domainConfig, logger)
}

// ProvideAddEventHandler creates the addEvent handler
func ProvideAddEventHandler(
	repo ports.EventRepository,
	publisher ports.EventPublisher,
	domainConfig *domainconfig.DomainConfig,
	logger *zap.Logger,
) *commandhandlers.AddEventHandler {
	return commandhandlers.NewAddEventHandler(repo, publisher, domainConfig, logger)
}

// ProvideGetEventsHandler creates the getEvents handler
func ProvideGetEventsHandler(
	repo ports.EventRepository,
	enricher *services.LinkEnricher,
	logger *zap.Logger,
) *queryhandlers.GetEventsHandler {
	return queryhandlers.NewGetEventsHandler(repo, enricher, logger)
}

// ProvideDispatcher creates the resolver dispatcher with all fields registered
func ProvideDispatcher(
	resolvers *appsync.Resolvers,
	metrics *observability.Metrics,
	tracer *observability.Tracer,
	logger *zap.Logger,
) (*appsync.Dispatcher, error) {
	dispatcher := appsync.NewDispatcher(
		appsync.Tracing(tracer),
		appsync.Logging(logger),
		appsync.Metrics(metrics),
	)

	if err := resolvers.Register(dispatcher); err != nil {
		return nil, fmt.Errorf("failed to register resolvers: %w", err)
	}
	return dispatcher, nil
}
