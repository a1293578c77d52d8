// Package telemetry configures OpenTelemetry tracing for the client.
//
// Every query is a client span; its trace context is injected into the
// request headers so a traced backend joins the same trace. Spans are only
// exported when a Zipkin collector URL is configured.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.uber.org/zap"

	"github.com/muurk/agri-advisor/internal/logging"
	"github.com/muurk/agri-advisor/internal/version"
)

// DefaultServiceName is reported when no service name is configured
const DefaultServiceName = "agri-advisor"

// ShutdownFunc flushes and stops the tracer provider
type ShutdownFunc func(ctx context.Context) error

// Setup installs the global propagator and, when zipkinURL is set, a tracer
// provider exporting to Zipkin. The returned function must be called before
// exit to flush pending spans.
func Setup(ctx context.Context, serviceName, zipkinURL string) (ShutdownFunc, error) {
	otel.SetTextMapPropagator(propagation.TraceContext{})

	if zipkinURL == "" {
		logging.Debug("Tracing export disabled")
		return func(context.Context) error { return nil }, nil
	}

	// Startup may already have been interrupted
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("tracing setup cancelled: %w", err)
	}

	if serviceName == "" {
		serviceName = DefaultServiceName
	}

	// Describe this process to the collector
	res, err := resource.New(ctx,
		resource.WithSchemaURL(semconv.SchemaURL),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
			semconv.ServiceVersionKey.String(version.Version),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build trace resource: %w", err)
	}

	exporter, err := zipkin.New(zipkinURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create Zipkin exporter: %w", err)
	}

	// Spans are batched and flushed on shutdown
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	logging.Info("Tracing enabled",
		zap.String("service", serviceName),
		zap.String("zipkin_url", zipkinURL),
	)

	return func(ctx context.Context) error {
		if err := tp.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shut down tracer provider: %w", err)
		}
		return nil
	}, nil
}
