// Package telemetry implements ports.Telemetry on OpenTelemetry. Spans are
// bridged into the progrock recorder by a span processor.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/sdkcompat/internal/core/ports"
)

// cachedKey marks spans whose work was served from the rule cache.
const cachedKey = attribute.Key("sdkcompat.cached")

// shutdowner is implemented by SDK tracer providers.
type shutdowner interface {
	Shutdown(ctx context.Context) error
}

// Tracer implements ports.Telemetry with OpenTelemetry spans.
type Tracer struct {
	tracer   trace.Tracer
	provider trace.TracerProvider
}

// NewTracerWithProvider creates a Tracer on tp. Close shuts tp down when it
// supports it.
func NewTracerWithProvider(tp trace.TracerProvider, name string) *Tracer {
	return &Tracer{tracer: tp.Tracer(name), provider: tp}
}

// Record starts a span.
func (t *Tracer) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	ctx, span := t.tracer.Start(ctx, name)
	return ctx, &Span{span: span}
}

// Close flushes and shuts down the tracer provider.
func (t *Tracer) Close() error {
	if s, ok := t.provider.(shutdowner); ok {
		return s.Shutdown(context.Background())
	}
	return nil
}

// Span implements ports.Vertex on an OpenTelemetry span.
type Span struct {
	span trace.Span
}

// Log adds msg as a span event.
func (s *Span) Log(msg string) {
	s.span.AddEvent(msg)
}

// Cached marks the span as served from cache.
func (s *Span) Cached() {
	s.span.SetAttributes(cachedKey.Bool(true))
}

// Complete ends the span, recording err when set.
func (s *Span) Complete(err error) {
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	} else {
		s.span.SetStatus(codes.Ok, "")
	}
	s.span.End()
}
