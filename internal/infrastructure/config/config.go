package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Logging   LogConfig
	Tracing   TracingConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"3000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// TracingConfig holds span export configuration.
type TracingConfig struct {
	ServiceName     string        `envconfig:"SERVICE_NAME" default:"beacon"`
	ServiceVersion  string        `envconfig:"SERVICE_VERSION" default:"0.1.0"`
	Endpoint        string        `envconfig:"OTLP_ENDPOINT" default:"localhost:4317"`
	Protocol        string        `envconfig:"OTLP_PROTOCOL" default:"grpc"`
	Insecure        bool          `envconfig:"OTLP_INSECURE" default:"true"`
	ExportTimeout   time.Duration `envconfig:"TRACE_EXPORT_TIMEOUT" default:"10s"`
	BatchInterval   time.Duration `envconfig:"TRACE_BATCH_INTERVAL" default:"5s"`
	BatchSize       int           `envconfig:"TRACE_BATCH_SIZE" default:"512"`
	ShutdownTimeout time.Duration `envconfig:"TRACE_SHUTDOWN_TIMEOUT" default:"5s"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "3000",
			Host: "0.0.0.0",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Tracing: TracingConfig{
			ServiceName:     "beacon",
			ServiceVersion:  "0.1.0",
			Endpoint:        "localhost:4317",
			Protocol:        "grpc",
			Insecure:        true,
			ExportTimeout:   10 * time.Second,
			BatchInterval:   5 * time.Second,
			BatchSize:       512,
			ShutdownTimeout: 5 * time.Second,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
	}
}
