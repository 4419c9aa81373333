/*
Package tracing provides distributed tracing for the beacon service.

# Overview

This package instruments the request/response pipeline with OpenTelemetry:
one server span per in-flight request, W3C trace-context propagation across
service boundaries, outcome classification onto the span, and a process-wide
provider that batches and exports finished spans over OTLP.

# Features

- W3C traceparent/tracestate extraction and injection
- Server and client span creation with a shared attribute vocabulary
- Response classification (status code below 300 is ok, everything else
  including redirects is an error)
- Gin middleware for automatic inbound instrumentation
- http.RoundTripper wrapper for traced, context-propagating outbound calls
- Batching OTLP exporter (HTTP or gRPC) with bounded shutdown flush

# Usage

	// Install the provider once at process start
	guard, err := tracing.Init(ctx, tracing.Config{
		ServiceName:    "beacon",
		ServiceVersion: "0.1.0",
		Endpoint:       "localhost:4317",
		Protocol:       tracing.ProtocolGRPC,
	}, logger)
	if err != nil {
		// invalid exporter config; surfaced to the caller, not fatal here
	}
	defer guard.Shutdown(ctx)

	// HTTP middleware
	router.Use(tracing.HTTPMiddleware())

	// Traced outbound client
	client := tracing.NewClient()

# Trace Format

Propagation uses the W3C trace-context headers:
- traceparent: version, trace id, parent span id, and flags
- tracestate: vendor state, passed through opaquely

# Failure Model

Tracing never changes a request's outcome. Malformed propagation headers
start a fresh trace, export failures are logged and dropped, and the
shutdown flush is bounded by a timeout.
*/
package tracing
