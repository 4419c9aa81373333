package tracing

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.uber.org/zap"
)

// OTLP transport protocols for span export.
const (
	ProtocolGRPC = "grpc"
	ProtocolHTTP = "http"
)

const defaultShutdownTimeout = 5 * time.Second

// Config holds span export configuration supplied once at Init.
type Config struct {
	// ServiceName and ServiceVersion identify this process on every
	// span it emits. Immutable after Init.
	ServiceName    string
	ServiceVersion string

	// Endpoint is the OTLP sink address (host:port).
	Endpoint string

	// Protocol selects ProtocolGRPC or ProtocolHTTP.
	Protocol string

	// Insecure disables TLS towards the sink.
	Insecure bool

	// ExportTimeout bounds a single flush to the sink.
	ExportTimeout time.Duration

	// BatchInterval and BatchSize control when buffered spans are
	// shipped: on the interval or when the buffer fills.
	BatchInterval time.Duration
	BatchSize     int

	// ShutdownTimeout bounds the final drain in Guard.Shutdown.
	ShutdownTimeout time.Duration
}

// ExporterError reports a span exporter that could not be constructed
// from the supplied configuration.
type ExporterError struct {
	Protocol string
	Err      error
}

func (e *ExporterError) Error() string {
	return fmt.Sprintf("build %q span exporter: %v", e.Protocol, e.Err)
}

func (e *ExporterError) Unwrap() error { return e.Err }

// Guard owns the installed tracer provider. Shutdown must run before
// process exit so spans finished moments earlier are not lost.
type Guard struct {
	provider *sdktrace.TracerProvider
	logger   *zap.Logger
	timeout  time.Duration
}

// Init installs the process-wide tracer provider and the W3C
// trace-context propagator, builds the resource identity from the two
// service fields, and wires a batching OTLP exporter. Every request
// span is sampled; the batch processor drops spans when its queue is
// full rather than blocking the request path.
//
// Init is meant to be called exactly once at process start. A second
// call silently wins the global registration and orphans the prior
// provider; nothing guards against this.
func Init(ctx context.Context, cfg Config, logger *zap.Logger) (*Guard, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("build trace resource: %w", err)
	}

	exporter, err := newExporter(ctx, cfg)
	if err != nil {
		return nil, &ExporterError{Protocol: cfg.Protocol, Err: err}
	}

	var batchOpts []sdktrace.BatchSpanProcessorOption
	if cfg.BatchSize > 0 {
		batchOpts = append(batchOpts, sdktrace.WithMaxExportBatchSize(cfg.BatchSize))
	}
	if cfg.BatchInterval > 0 {
		batchOpts = append(batchOpts, sdktrace.WithBatchTimeout(cfg.BatchInterval))
	}
	if cfg.ExportTimeout > 0 {
		batchOpts = append(batchOpts, sdktrace.WithExportTimeout(cfg.ExportTimeout))
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(exporter, batchOpts...),
	)
	otel.SetTracerProvider(provider)

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	return &Guard{provider: provider, logger: logger, timeout: timeout}, nil
}

func newExporter(ctx context.Context, cfg Config) (*otlptrace.Exporter, error) {
	switch cfg.Protocol {
	case ProtocolGRPC:
		opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.Endpoint)}
		if cfg.Insecure {
			opts = append(opts, otlptracegrpc.WithInsecure())
		}
		return otlptracegrpc.New(ctx, opts...)
	case ProtocolHTTP:
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.Endpoint)}
		if cfg.Insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, opts...)
	default:
		return nil, fmt.Errorf("unknown OTLP protocol %q", cfg.Protocol)
	}
}

// Shutdown synchronously drains and flushes the batching stage,
// bounded by the configured timeout. A flush that cannot complete in
// time is logged and abandoned; it never blocks process exit beyond
// the bound.
func (g *Guard) Shutdown(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	if err := g.provider.Shutdown(ctx); err != nil {
		g.logger.Warn("trace flush incomplete at shutdown", zap.Error(err))
	}
}
