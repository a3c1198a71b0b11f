package main

import (
	"context"
	"os"

	// Packages
	version "github.com/mutablelogic/go-news/pkg/version"
	attribute "go.opentelemetry.io/otel/attribute"
	otlptracehttp "go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	resource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	trace "go.opentelemetry.io/otel/trace"
	noop "go.opentelemetry.io/otel/trace/noop"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Spans are exported when this is set, for example http://localhost:4318
	otelEndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// newTracerProvider returns an OTLP/HTTP tracer provider when an exporter
// endpoint is set in the environment, or a noop provider otherwise. The
// shutdown function flushes any pending spans.
func newTracerProvider(ctx context.Context, name string) (trace.TracerProvider, func(context.Context) error, error) {
	if os.Getenv(otelEndpointEnv) == "" {
		return noop.NewTracerProvider(), func(context.Context) error { return nil }, nil
	}

	// The exporter reads its endpoint, headers and protocol from the environment
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, nil, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", name),
			attribute.String("service.version", version.Version()),
		)),
	)
	return provider, provider.Shutdown, nil
}
