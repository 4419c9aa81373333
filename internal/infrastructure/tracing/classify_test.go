package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func recordedSpan(t *testing.T, record func(span trace.Span)) sdktrace.ReadOnlySpan {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "test")
	record(span)
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	return spans[0]
}

func TestOnResponseClassification(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		want       string
		wantStatus codes.Code
	}{
		{"ok", 200, StatusOK, codes.Ok},
		{"created", 201, StatusOK, codes.Ok},
		{"no content", 204, StatusOK, codes.Ok},
		{"boundary below", 299, StatusOK, codes.Ok},
		{"multiple choices", 300, StatusError, codes.Error},
		{"redirect", 302, StatusError, codes.Error},
		{"not modified", 304, StatusError, codes.Error},
		{"bad request", 400, StatusError, codes.Error},
		{"not found", 404, StatusError, codes.Error},
		{"server error", 500, StatusError, codes.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span := recordedSpan(t, func(s trace.Span) {
				OnResponse(s, tt.statusCode)
			})

			classification, ok := spanAttr(span, "otel.status_code")
			require.True(t, ok)
			assert.Equal(t, tt.want, classification.AsString())

			status, ok := spanAttr(span, "http.response.status_code")
			require.True(t, ok)
			assert.Equal(t, int64(tt.statusCode), status.AsInt64())

			assert.Equal(t, tt.wantStatus, span.Status().Code)
		})
	}
}

func TestOnFailureRecordsNoStatusCode(t *testing.T) {
	span := recordedSpan(t, func(s trace.Span) {
		OnFailure(s)
	})

	classification, ok := spanAttr(span, "otel.status_code")
	require.True(t, ok)
	assert.Equal(t, StatusError, classification.AsString())

	_, ok = spanAttr(span, "http.response.status_code")
	assert.False(t, ok)

	assert.Equal(t, codes.Error, span.Status().Code)
}
