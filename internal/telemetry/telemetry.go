// Package telemetry provides OpenTelemetry instrumentation for Honeycomb.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	ServiceName    = "minesweeper"
	ServiceVersion = "0.1.0"
)

// Setup initializes OpenTelemetry with an OTLP HTTP exporter configured from
// the standard OTEL_EXPORTER_OTLP_* environment variables. attrs are added to
// the service resource, e.g. the front end and preset the player started with.
//
// Returns a shutdown function that flushes pending spans; call it on exit.
func Setup(ctx context.Context, attrs ...attribute.KeyValue) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	res, err := newResource(ctx, attrs...)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// GameAttributes describes how the game was started.
func GameAttributes(mode, preset string, seeded bool) []attribute.KeyValue {
	if preset == "" {
		preset = "menu"
	}
	return []attribute.KeyValue{
		attribute.String("game.mode", mode),
		attribute.String("game.preset", preset),
		attribute.Bool("game.seeded", seeded),
	}
}

// newResource builds the service resource. It is not merged with
// resource.Default(), whose schema URL can conflict with ours.
func newResource(ctx context.Context, attrs ...attribute.KeyValue) (*resource.Resource, error) {
	base := []attribute.KeyValue{
		attribute.String("service.name", ServiceName),
		attribute.String("service.version", ServiceVersion),
		attribute.String("host.name", hostname()),
		attribute.String("os.type", runtime.GOOS),
		attribute.String("process.runtime.version", runtime.Version()),
	}
	return resource.New(ctx, resource.WithAttributes(append(base, attrs...)...))
}

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(ServiceName + "/" + name)
}

// NoopTracer returns a no-op tracer for use when telemetry is disabled.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer(ServiceName + "/noop")
}

func hostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
