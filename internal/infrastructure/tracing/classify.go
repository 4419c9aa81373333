package tracing

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// Classification values recorded under the otel.status_code attribute.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

var classificationKey = attribute.Key("otel.status_code")

// OnResponse classifies a produced response onto a still-open span.
// The policy is strictly statusCode < 300: redirects count as errors.
// Both the raw status code and the classification string are recorded.
func OnResponse(span trace.Span, statusCode int) {
	classification := StatusOK
	if statusCode >= 300 {
		classification = StatusError
	}

	span.SetAttributes(
		classificationKey.String(classification),
		semconv.HTTPResponseStatusCode(statusCode),
	)

	if classification == StatusError {
		span.SetStatus(codes.Error, "")
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

// OnFailure marks a span whose request produced no response at all,
// such as a handler panic or a transport-level failure. The span is
// unconditionally an error and no status code is recorded.
func OnFailure(span trace.Span) {
	span.SetAttributes(classificationKey.String(StatusError))
	span.SetStatus(codes.Error, "")
}
