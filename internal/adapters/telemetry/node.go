package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.opentelemetry.io/otel"
	"go.trai.ch/sdkcompat/internal/adapters/telemetry/progrock"
	"go.trai.ch/sdkcompat/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the telemetry node.
	NodeID graft.ID = "adapter.telemetry"
	// TracerNodeID is the unique identifier for the OpenTelemetry tracer node.
	TracerNodeID graft.ID = "adapter.telemetry.otel"
)

func init() {
	graft.Register(graft.Node[*Tracer]{
		ID:        TracerNodeID,
		Cacheable: false,
		DependsOn: []graft.ID{progrock.NodeID},
		Run: func(ctx context.Context) (*Tracer, error) {
			rec, err := graft.Dep[*progrock.Recorder](ctx)
			if err != nil {
				return nil, err
			}
			tp := NewProvider(NewBridge(rec))
			otel.SetTracerProvider(tp)
			return NewTracerWithProvider(tp, "sdkcompat"), nil
		},
	})

	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: false,
		DependsOn: []graft.ID{TracerNodeID},
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			tracer, err := graft.Dep[*Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return tracer, nil
		},
	})
}
