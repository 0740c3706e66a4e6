package plugin_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sdkcompat/internal/core/domain"
	"go.trai.ch/sdkcompat/internal/core/ports/mocks"
	"go.trai.ch/sdkcompat/internal/engine/detector"
	"go.trai.ch/sdkcompat/internal/engine/plugin"
	"go.trai.ch/sdkcompat/internal/engine/registrar"
	"go.trai.ch/sdkcompat/internal/engine/rewrite"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	plugin  *plugin.Plugin
	schema  *domain.AttributesSchema
	handler *rewrite.Handler
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	schema := domain.NewAttributesSchema()
	handler := rewrite.NewHandler()
	p := plugin.New(detector.New(logger), registrar.New(schema), handler, nil, logger)
	return fixture{plugin: p, schema: schema, handler: handler}
}

func androidProject(name, sdk string) *domain.Project {
	return &domain.Project{
		Name:    name,
		Path:    ":" + name,
		Android: &domain.AndroidExtension{Kind: domain.KindApplication, CompileSdkVersion: sdk},
		Configurations: []*domain.Configuration{
			{Name: "releaseRuntimeClasspath"},
		},
	}
}

func TestApply_StampsAndRegisters(t *testing.T) {
	f := newFixture(t)
	p := androidProject("app", "android-30")

	require.NoError(t, f.plugin.Apply(context.Background(), p))

	assert.Equal(t, "30", p.Configurations[0].Attributes[domain.CompileSdkAttribute])
	_, ok := f.schema.Strategy(domain.CompileSdkAttribute)
	assert.True(t, ok)
	assert.Len(t, f.handler.Rules(rewrite.DefaultCoordinate), 1)
}

func TestApply_AbsentIsNoop(t *testing.T) {
	f := newFixture(t)
	p := &domain.Project{Name: "lib", Path: ":lib", Configurations: []*domain.Configuration{{Name: "runtimeClasspath"}}}

	require.NoError(t, f.plugin.Apply(context.Background(), p))

	assert.Empty(t, p.Configurations[0].Attributes)
	assert.Empty(t, f.schema.Keys())
	assert.Equal(t, 0, f.handler.Len())
}

func TestApply_MalformedFails(t *testing.T) {
	f := newFixture(t)

	err := f.plugin.Apply(context.Background(), androidProject("app", "android-S"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrMalformedPlatformVersion.Error())
	assert.Equal(t, 0, f.handler.Len())
}

func TestApply_SharedAcrossProjects(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.plugin.Apply(context.Background(), androidProject("app", "android-31")))
	require.NoError(t, f.plugin.Apply(context.Background(), androidProject("feature", "android-30")))

	assert.Equal(t, 1, f.handler.Len())
	assert.Equal(t, []string{domain.CompileSdkAttribute}, f.schema.Keys())
}

func TestApply_Canceled(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.plugin.Apply(ctx, androidProject("app", "android-31"))
	assert.ErrorIs(t, err, context.Canceled)
}
