// Package progrock records evaluation progress with vito/progrock.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/sdkcompat/internal/core/domain"
	"go.trai.ch/sdkcompat/internal/core/ports"
)

// Recorder implements ports.Telemetry on a progrock writer.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

var (
	_ ports.Telemetry   = (*Recorder)(nil)
	_ ports.ProgressLog = (*Recorder)(nil)
)

// New creates a Recorder that summarizes vertices in memory.
func New() *Recorder {
	return NewRecorder(NewSummary())
}

// NewRecorder creates a Recorder on w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts a vertex named name. The digest is derived from the name, so
// recording the same name twice addresses the same vertex.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	return ctx, &Vertex{vertex: v}
}

// Steps returns the vertices collected by the writer. Writers that keep no
// state, such as a tape, yield nil.
func (r *Recorder) Steps() []domain.Step {
	if s, ok := r.w.(ports.ProgressLog); ok {
		return s.Steps()
	}
	return nil
}

// Close closes the underlying writer.
func (r *Recorder) Close() error {
	return r.rec.Close()
}
