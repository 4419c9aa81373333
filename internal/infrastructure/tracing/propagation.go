package tracing

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// Extract reads W3C trace-context headers from h and returns a context
// carrying the remote span context. An absent or malformed traceparent
// header leaves ctx unchanged: the caller starts a fresh trace, it is
// not an error. A tracestate header travels along opaquely.
func Extract(ctx context.Context, h http.Header) context.Context {
	return otel.GetTextMapPropagator().Extract(ctx, propagation.HeaderCarrier(h))
}

// Inject writes the active trace context from ctx into h so the next
// hop can continue the trace. A context without an active span writes
// nothing.
func Inject(ctx context.Context, h http.Header) {
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(h))
}
