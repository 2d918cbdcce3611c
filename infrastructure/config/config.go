package config

import (
	"fmt"
	"os"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// AWS configuration
	AWSRegion     string
	DynamoDBTable string
	EventBusName  string

	// Link templates live under /<ParameterPrefix>/<BranchName>/
	ParameterPrefix string
	BranchName      string

	// GraphQL endpoint the resolvers are attached to; informational
	AppSyncURL string

	// Lambda configuration
	LambdaFunctionName string

	// Logging
	LogLevel string

	// Feature flags
	EnableMetrics bool
	EnableTracing bool
	EnableCORS    bool

	MetricsNamespace string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		AWSRegion:     getEnv("AWS_REGION", "eu-west-1"),
		DynamoDBTable: getEnv("DDB_TABLE", ""),
		EventBusName:  getEnv("EVENT_BUS_NAME", ""),

		ParameterPrefix: getEnv("PARAMETER_PREFIX", "drem"),
		BranchName:      getEnv("BRANCH_NAME", ""),
		AppSyncURL:      getEnv("APPSYNC_URL", ""),

		LambdaFunctionName: getEnv("AWS_LAMBDA_FUNCTION_NAME", ""),

		// Logging and features
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		EnableMetrics:    getEnvBool("ENABLE_METRICS", false),
		EnableTracing:    getEnvBool("ENABLE_TRACING", false),
		EnableCORS:       getEnvBool("ENABLE_CORS", true),
		MetricsNamespace: getEnv("METRICS_NAMESPACE", "EventsAPI"),
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.DynamoDBTable == "" {
		return fmt.Errorf("DDB_TABLE is required")
	}
	if c.BranchName == "" {
		return fmt.Errorf("BRANCH_NAME is required")
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// IsLambda reports whether the process runs inside the Lambda runtime
func (c *Config) IsLambda() bool {
	return c.LambdaFunctionName != ""
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}
