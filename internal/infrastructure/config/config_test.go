package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Server config
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)

	// Logging config
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)

	// Tracing config
	assert.Equal(t, "beacon", cfg.Tracing.ServiceName)
	assert.Equal(t, "0.1.0", cfg.Tracing.ServiceVersion)
	assert.Equal(t, "localhost:4317", cfg.Tracing.Endpoint)
	assert.Equal(t, "grpc", cfg.Tracing.Protocol)
	assert.True(t, cfg.Tracing.Insecure)
	assert.Equal(t, 512, cfg.Tracing.BatchSize)
	assert.Equal(t, 5*time.Second, cfg.Tracing.BatchInterval)
	assert.Equal(t, 5*time.Second, cfg.Tracing.ShutdownTimeout)

	// Rate limit config
	assert.Equal(t, 100, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 200, cfg.RateLimit.Burst)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestLoadOrDefault(t *testing.T) {
	// Should return default when no env vars set
	cfg := LoadOrDefault()

	assert.NotNil(t, cfg)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	envVars := map[string]string{
		"PORT":                   "9000",
		"HOST":                   "127.0.0.1",
		"LOG_LEVEL":              "debug",
		"LOG_DEV":                "true",
		"SERVICE_NAME":           "beacon-staging",
		"SERVICE_VERSION":        "1.2.3",
		"OTLP_ENDPOINT":          "collector:4318",
		"OTLP_PROTOCOL":          "http",
		"OTLP_INSECURE":          "false",
		"TRACE_EXPORT_TIMEOUT":   "30s",
		"TRACE_BATCH_INTERVAL":   "1s",
		"TRACE_BATCH_SIZE":       "64",
		"TRACE_SHUTDOWN_TIMEOUT": "2s",
		"RATE_LIMIT_RPS":         "500",
		"RATE_LIMIT_BURST":       "1000",
		"RATE_LIMIT_ENABLED":     "false",
	}

	for key, value := range envVars {
		err := os.Setenv(key, value)
		require.NoError(t, err)
		defer os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	// Verify server config
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)

	// Verify logging config
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)

	// Verify tracing config
	assert.Equal(t, "beacon-staging", cfg.Tracing.ServiceName)
	assert.Equal(t, "1.2.3", cfg.Tracing.ServiceVersion)
	assert.Equal(t, "collector:4318", cfg.Tracing.Endpoint)
	assert.Equal(t, "http", cfg.Tracing.Protocol)
	assert.False(t, cfg.Tracing.Insecure)
	assert.Equal(t, 30*time.Second, cfg.Tracing.ExportTimeout)
	assert.Equal(t, time.Second, cfg.Tracing.BatchInterval)
	assert.Equal(t, 64, cfg.Tracing.BatchSize)
	assert.Equal(t, 2*time.Second, cfg.Tracing.ShutdownTimeout)

	// Verify rate limit config
	assert.Equal(t, 500, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 1000, cfg.RateLimit.Burst)
	assert.False(t, cfg.RateLimit.Enabled)
}
