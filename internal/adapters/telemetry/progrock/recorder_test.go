package progrock_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vprogrock "github.com/vito/progrock"
	"go.trai.ch/sdkcompat/internal/adapters/telemetry/progrock"
	"go.trai.ch/sdkcompat/internal/core/domain"
)

type captureWriter struct {
	mu       sync.Mutex
	vertexes map[string]*vprogrock.Vertex
	closed   bool
}

func (w *captureWriter) WriteStatus(u *vprogrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, v := range u.Vertexes {
		w.vertexes[v.Name] = v
	}
	return nil
}

func (w *captureWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func TestNew_SummarizesSteps(t *testing.T) {
	recorder := progrock.New()
	require.NotNil(t, recorder)

	_, app := recorder.Record(context.Background(), "apply app")
	app.Log("registered rule")
	app.Complete(nil)

	_, rewrite := recorder.Record(context.Background(), "rewrite androidx.work:work-runtime:2.6.5")
	rewrite.Cached()
	rewrite.Complete(nil)

	_, broken := recorder.Record(context.Background(), "apply broken")
	broken.Complete(errors.New("malformed platform version"))

	_, stopped := recorder.Record(context.Background(), "apply stopped")
	stopped.Complete(context.Canceled)

	recorder.Record(context.Background(), "apply pending")

	require.NoError(t, recorder.Close())

	assert.Equal(t, []domain.Step{
		{Name: "apply app", Done: true},
		{Name: "rewrite androidx.work:work-runtime:2.6.5", Cached: true, Done: true},
		{Name: "apply broken", Done: true, Error: "malformed platform version"},
		{Name: "apply stopped", Done: true, Error: context.Canceled.Error()},
		{Name: "apply pending"},
	}, recorder.Steps())
}

func TestRecorder_StepsWithoutSummary(t *testing.T) {
	recorder := progrock.NewRecorder(vprogrock.NewTape())

	_, vertex := recorder.Record(context.Background(), "apply app")
	vertex.Complete(nil)

	assert.Nil(t, recorder.Steps())
}

func TestRecorder_Statuses(t *testing.T) {
	w := &captureWriter{vertexes: make(map[string]*vprogrock.Vertex)}
	recorder := progrock.NewRecorder(w)

	_, ok := recorder.Record(context.Background(), "apply app")
	ok.Complete(nil)

	_, cached := recorder.Record(context.Background(), "rewrite androidx.work:work-runtime:2.6.5")
	cached.Cached()
	cached.Complete(nil)

	_, failed := recorder.Record(context.Background(), "apply broken")
	failed.Complete(errors.New("malformed platform version"))

	require.NoError(t, recorder.Close())

	w.mu.Lock()
	defer w.mu.Unlock()

	assert.True(t, w.closed)
	require.Contains(t, w.vertexes, "apply app")
	assert.Nil(t, w.vertexes["apply app"].Error)
	assert.True(t, w.vertexes["rewrite androidx.work:work-runtime:2.6.5"].Cached)
	require.NotNil(t, w.vertexes["apply broken"].Error)
	assert.Contains(t, *w.vertexes["apply broken"].Error, "malformed platform version")
}
