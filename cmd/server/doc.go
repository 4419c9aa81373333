// Package main is the entry point for the beacon HTTP service.
//
// The server wires a traced request pipeline: every inbound request is
// instrumented with a server span, trace context is continued from the
// W3C traceparent header when present, and finished spans are batched
// and exported over OTLP.
//
// Configuration:
//   - Environment variables (12-factor)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	PORT=3000 OTLP_ENDPOINT=collector:4317 ./server
//
//	# Development mode (colored logs, debug level)
//	LOG_DEV=true ./server
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown with a bounded trace flush
package main
