package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/sdkcompat/internal/app"
	_ "go.trai.ch/sdkcompat/internal/wiring"
)

// graft.AssertDepsValid infers dependency IDs from the package of Dep[T], so
// every ports.* dependency looks like a node named "ports". Resolving the
// graph end to end covers the same ground.
func TestGraft_ResolvesComponents(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)

	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
	require.NotNil(t, components.Telemetry)
	require.NotNil(t, components.Progress)
	require.NoError(t, components.Telemetry.Close())
}

func TestGraft_TelemetryIsPerRun(t *testing.T) {
	first, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NoError(t, first.Telemetry.Close())

	second, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Telemetry.Close() })

	assert.NotSame(t, first.App, second.App)
	assert.NotSame(t, first.Progress, second.Progress)

	ctx, vertex := second.Telemetry.Record(context.Background(), "apply app")
	assert.True(t, trace.SpanFromContext(ctx).IsRecording())
	vertex.Complete(nil)

	require.NotEmpty(t, second.Progress.Steps())
	assert.Equal(t, "apply app", second.Progress.Steps()[0].Name)
	assert.Empty(t, first.Progress.Steps())
}
