package telemetry

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

func TestSetup_NoCollector(t *testing.T) {
	shutdown, err := Setup(context.Background(), "", "")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown() error = %v", err)
	}

	if _, ok := otel.GetTextMapPropagator().(propagation.TraceContext); !ok {
		t.Errorf("propagator = %T, want propagation.TraceContext", otel.GetTextMapPropagator())
	}
}

func TestSetup_Zipkin(t *testing.T) {
	shutdown, err := Setup(context.Background(), "agri-advisor-test", "http://localhost:9411/api/v2/spans")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	ctx, span := otel.Tracer("test").Start(context.Background(), "ask")
	defer span.End()

	if !span.SpanContext().IsValid() {
		t.Fatal("span should have a valid context once a provider is installed")
	}

	header := http.Header{}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(header))
	if header.Get("traceparent") == "" {
		t.Error("traceparent header should be injected")
	}
}

func TestSetup_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	shutdown, err := Setup(ctx, "agri-advisor-test", "http://localhost:9411/api/v2/spans")
	if err == nil {
		_ = shutdown(context.Background())
		t.Fatal("Setup() should fail when the context is already cancelled")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Setup() error = %v, want context.Canceled", err)
	}
}
