package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("DDB_TABLE", "events-main")
	t.Setenv("BRANCH_NAME", "main")
	t.Setenv("APPSYNC_URL", "https://example.appsync-api.eu-west-1.amazonaws.com/graphql")
	t.Setenv("EVENT_BUS_NAME", "drem-bus")
	t.Setenv("ENABLE_TRACING", "true")
	t.Setenv("PARAMETER_PREFIX", "")
	t.Setenv("AWS_REGION", "")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "events-main", cfg.DynamoDBTable)
	assert.Equal(t, "main", cfg.BranchName)
	assert.Equal(t, "drem", cfg.ParameterPrefix)
	assert.Equal(t, "eu-west-1", cfg.AWSRegion)
	assert.Equal(t, "drem-bus", cfg.EventBusName)
	assert.Equal(t, "https://example.appsync-api.eu-west-1.amazonaws.com/graphql", cfg.AppSyncURL)
	assert.True(t, cfg.EnableTracing)
	assert.False(t, cfg.EnableMetrics)
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		table   string
		branch  string
		wantErr string
	}{
		{name: "missing table", branch: "main", wantErr: "DDB_TABLE is required"},
		{name: "missing branch", table: "events", wantErr: "BRANCH_NAME is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DDB_TABLE", tt.table)
			t.Setenv("BRANCH_NAME", tt.branch)

			_, err := LoadConfig()

			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	for _, v := range []string{"true", "1", "yes"} {
		t.Setenv("FLAG", v)
		assert.True(t, getEnvBool("FLAG", false), v)
	}

	t.Setenv("FLAG", "off")
	assert.False(t, getEnvBool("FLAG", true))

	t.Setenv("FLAG", "")
	assert.True(t, getEnvBool("FLAG", true))
}
