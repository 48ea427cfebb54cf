// Package telemetry sets up OpenTelemetry tracing for itemstore.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// DefaultServiceName is reported when no service name is configured.
const DefaultServiceName = "itemstore"

const instrumentationName = "itemstore"

// Provider hands out tracers. A provider created without an endpoint is
// disabled and returns no-op tracers.
type Provider struct {
	sdk    *sdktrace.TracerProvider
	tracer oteltrace.Tracer
}

// NewProvider creates a provider exporting to the OTLP/HTTP endpoint
// (host:port). An empty endpoint disables export.
func NewProvider(ctx context.Context, endpoint, serviceName string) (*Provider, error) {
	if endpoint == "" {
		return &Provider{tracer: noop.NewTracerProvider().Tracer(instrumentationName)}, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}
	return newProvider(sdktrace.WithBatcher(exporter), serviceName), nil
}

// NewProviderWithProcessor creates an enabled provider feeding sp. Tests use
// it with an in-memory span recorder.
func NewProviderWithProcessor(sp sdktrace.SpanProcessor, serviceName string) *Provider {
	return newProvider(sdktrace.WithSpanProcessor(sp), serviceName)
}

func newProvider(opt sdktrace.TracerProviderOption, serviceName string) *Provider {
	if serviceName == "" {
		serviceName = DefaultServiceName
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)
	sdk := sdktrace.NewTracerProvider(opt, sdktrace.WithResource(res))
	return &Provider{sdk: sdk, tracer: sdk.Tracer(instrumentationName)}
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool {
	return p != nil && p.sdk != nil
}

// Tracer returns the itemstore tracer. Safe on a nil provider.
func (p *Provider) Tracer() oteltrace.Tracer {
	if p == nil {
		return noop.NewTracerProvider().Tracer(instrumentationName)
	}
	return p.tracer
}

// Shutdown flushes pending spans.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	return p.sdk.Shutdown(ctx)
}
