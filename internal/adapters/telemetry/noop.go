package telemetry

import (
	"context"

	"go.trai.ch/sdkcompat/internal/core/ports"
)

// Nop discards all telemetry.
type Nop struct{}

// NewNop creates a Nop.
func NewNop() Nop {
	return Nop{}
}

// Record returns ctx and a vertex that does nothing.
func (Nop) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, nopVertex{}
}

// Close does nothing.
func (Nop) Close() error { return nil }

type nopVertex struct{}

func (nopVertex) Log(string)     {}
func (nopVertex) Cached()        {}
func (nopVertex) Complete(error) {}
