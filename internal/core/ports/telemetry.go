package ports

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records progress of the evaluation.
type Telemetry interface {
	// Record starts a new vertex.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes the recording session.
	Close() error
}

// Vertex is a unit of recorded work.
type Vertex interface {
	// Log attaches a message to the vertex.
	Log(msg string)
	// Cached marks the vertex as served from cache.
	Cached()
	// Complete finishes the vertex, successfully if err is nil.
	Complete(err error)
}
