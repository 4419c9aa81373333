// Package config provides 12-factor configuration management for the beacon service.
//
// Configuration is loaded from environment variables with sensible defaults.
//
// Configuration Sections:
//   - Server: HTTP server settings (port, host)
//   - Logging: Log level and output format
//   - Tracing: Span export settings (OTLP endpoint, protocol, batching)
//   - RateLimit: Per-IP rate limiting configuration
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("Server running on %s:%s\n", cfg.Server.Host, cfg.Server.Port)
//
// Environment Variables:
//   - PORT, HOST
//   - LOG_LEVEL, LOG_DEV
//   - SERVICE_NAME, SERVICE_VERSION, OTLP_ENDPOINT, OTLP_PROTOCOL, OTLP_INSECURE
//   - TRACE_EXPORT_TIMEOUT, TRACE_BATCH_INTERVAL, TRACE_BATCH_SIZE, TRACE_SHUTDOWN_TIMEOUT
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
package config
