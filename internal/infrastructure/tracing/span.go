package tracing

import (
	"context"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// RouteUnknown is the route sentinel for requests that matched no route.
// A fixed sentinel instead of the raw path keeps span-name cardinality
// bounded for unrouted traffic.
const RouteUnknown = "{unknown}"

const scopeName = "github.com/lumenward/beacon/internal/infrastructure/tracing"

// StartServerSpan opens a server-kind span for an inbound request.
//
// The request headers are first checked for a remote trace context;
// when a valid one is present the span continues that trace, otherwise
// it starts a new one. route is the matched route template and appears
// in both the span name and the http.route attribute; the raw path is
// recorded separately as url.path. Pass an empty route when nothing
// matched.
func StartServerSpan(ctx context.Context, r *http.Request, route string) (context.Context, trace.Span) {
	ctx = Extract(ctx, r.Header)

	if route == "" {
		route = RouteUnknown
	}

	return otel.Tracer(scopeName).Start(ctx, r.Method+" "+route,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			semconv.HTTPRequestMethodKey.String(r.Method),
			semconv.HTTPRoute(route),
			semconv.URLPath(r.URL.Path),
			semconv.NetworkProtocolVersion(protocolVersion(r.Proto)),
			semconv.UserAgentOriginal(r.UserAgent()),
		),
	)
}

// StartClientSpan opens a client-kind span for an outbound request.
// Client spans have no route concept: the name is the method alone and
// the full target URL is recorded instead. This side originates the
// request, so no context extraction applies.
func StartClientSpan(ctx context.Context, r *http.Request) (context.Context, trace.Span) {
	return otel.Tracer(scopeName).Start(ctx, r.Method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			semconv.HTTPRequestMethodKey.String(r.Method),
			semconv.URLFull(r.URL.String()),
			semconv.NetworkProtocolVersion(protocolVersion(r.Proto)),
		),
	)
}

func protocolVersion(proto string) string {
	return strings.TrimPrefix(proto, "HTTP/")
}
