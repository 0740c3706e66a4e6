package telemetry

import (
	"context"
	"errors"
	"sync"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/sdkcompat/internal/core/ports"
)

// exceptionEvent is the event name RecordError uses.
const exceptionEvent = "exception"

// Bridge implements sdktrace.SpanProcessor and replays every span as a vertex
// on another telemetry backend, typically the progrock recorder.
type Bridge struct {
	sink ports.Telemetry

	mu       sync.Mutex
	vertices map[trace.SpanID]ports.Vertex
}

// NewBridge returns a Bridge feeding sink.
func NewBridge(sink ports.Telemetry) *Bridge {
	return &Bridge{
		sink:     sink,
		vertices: make(map[trace.SpanID]ports.Vertex),
	}
}

// OnStart opens a vertex for the span.
func (b *Bridge) OnStart(parent context.Context, s sdktrace.ReadWriteSpan) {
	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	_, v := b.sink.Record(parent, s.Name())

	b.mu.Lock()
	b.vertices[sc.SpanID()] = v
	b.mu.Unlock()
}

// OnEnd replays the span events, cache flag and status onto its vertex.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	b.mu.Lock()
	v, ok := b.vertices[s.SpanContext().SpanID()]
	delete(b.vertices, s.SpanContext().SpanID())
	b.mu.Unlock()
	if !ok {
		return
	}

	for _, e := range s.Events() {
		if e.Name == exceptionEvent {
			continue
		}
		v.Log(e.Name)
	}

	for _, kv := range s.Attributes() {
		if kv.Key == cachedKey && kv.Value.AsBool() {
			v.Cached()
		}
	}

	var err error
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "failed"
		}
		err = errors.New(desc)
	}
	v.Complete(err)
}

// Shutdown closes the sink.
func (b *Bridge) Shutdown(context.Context) error {
	return b.sink.Close()
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(context.Context) error {
	return nil
}
