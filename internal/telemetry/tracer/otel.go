package tracer

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Exporter names.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
	ExporterNone   = "none"
)

// Config holds tracing configuration.
type Config struct {
	Enabled     bool
	Exporter    string
	Endpoint    string // host:port, otlp only
	ServiceName string
	Version     string

	// Writer receives stdout spans (defaults to os.Stdout).
	Writer io.Writer
}

// Provider manages the OpenTelemetry tracer provider.
type Provider struct {
	name string
	sdk  *sdktrace.TracerProvider
	tp   trace.TracerProvider
}

// New creates a tracer provider from cfg and installs it as the global
// provider together with the W3C trace-context propagator.
func New(ctx context.Context, cfg Config) (*Provider, error) {
	name := cfg.ServiceName
	if name == "" {
		name = "randapi"
	}

	if !cfg.Enabled {
		return &Provider{name: name, tp: noop.NewTracerProvider()}, nil
	}

	exp, err := newExporter(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create trace exporter: %w", err)
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(name),
		semconv.ServiceVersion(cfg.Version),
	)

	p := NewWithExporter(name, exp, sdktrace.WithResource(res))
	otel.SetTracerProvider(p.tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return p, nil
}

// NewWithExporter creates an enabled provider around an existing exporter.
func NewWithExporter(name string, exp sdktrace.SpanExporter, opts ...sdktrace.TracerProviderOption) *Provider {
	opts = append([]sdktrace.TracerProviderOption{
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(exp),
	}, opts...)

	sdk := sdktrace.NewTracerProvider(opts...)
	return &Provider{name: name, sdk: sdk, tp: sdk}
}

// NewWithSpanProcessor creates an enabled provider around a span processor.
func NewWithSpanProcessor(name string, sp sdktrace.SpanProcessor) *Provider {
	sdk := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithSpanProcessor(sp),
	)
	return &Provider{name: name, sdk: sdk, tp: sdk}
}

func newExporter(ctx context.Context, cfg Config) (sdktrace.SpanExporter, error) {
	switch cfg.Exporter {
	case ExporterStdout:
		w := cfg.Writer
		if w == nil {
			w = os.Stdout
		}
		return stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())

	case ExporterOTLP:
		if cfg.Endpoint == "" {
			return nil, fmt.Errorf("otlp exporter requires an endpoint")
		}
		return otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(cfg.Endpoint),
			otlptracegrpc.WithInsecure(),
		)

	case ExporterNone, "":
		return stdouttrace.New(stdouttrace.WithWriter(io.Discard))

	default:
		return nil, fmt.Errorf("unknown exporter: %q", cfg.Exporter)
	}
}

// Tracer returns a named tracer.
func (p *Provider) Tracer() trace.Tracer {
	return p.tp.Tracer(p.name)
}

// Enabled reports whether spans are recorded.
func (p *Provider) Enabled() bool {
	return p.sdk != nil
}

// ForceFlush exports all ended spans that have not been exported yet.
func (p *Provider) ForceFlush(ctx context.Context) error {
	if p.sdk == nil {
		return nil
	}
	return p.sdk.ForceFlush(ctx)
}

// Shutdown flushes pending spans and stops the provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.sdk == nil {
		return nil
	}
	return p.sdk.Shutdown(ctx)
}

// ValidExporter reports whether name is a supported exporter.
func ValidExporter(name string) bool {
	switch name {
	case ExporterStdout, ExporterOTLP, ExporterNone, "":
		return true
	}
	return false
}
