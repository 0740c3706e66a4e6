package modulemeta_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.trai.ch/sdkcompat/internal/adapters/modulemeta"
	"go.trai.ch/sdkcompat/internal/core/domain"
	"go.trai.ch/sdkcompat/internal/engine/rewrite"
)

const fixtureRepo = "testdata/repo"

func TestComponents(t *testing.T) {
	store := modulemeta.NewStore()

	metas, err := store.Components(context.Background(), fixtureRepo)
	require.NoError(t, err)
	require.Len(t, metas, 1)

	meta := metas[0]
	assert.Equal(t, "androidx.work:work-runtime:2.6.5", meta.ID.String())
	require.Len(t, meta.Variants, 2)

	api := meta.Variants[0]
	assert.Equal(t, "releaseVariantReleaseApiPublication", api.Name)
	assert.Equal(t, domain.UsageJavaAPI, api.Attributes[domain.UsageAttribute])
	assert.Equal(t, "androidx.lifecycle:lifecycle-livedata:2.1.0", api.Dependencies[0].Coordinate.String())

	runtime := meta.Variants[1]
	assert.Equal(t, "2.1.0", runtime.Dependencies[0].Coordinate.Version)
	assert.Equal(t, "pinned", runtime.Dependencies[0].Reason)
}

func TestComponents_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := modulemeta.NewStore().Components(ctx, fixtureRepo)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "not json", doc: "{"},
		{name: "missing version", doc: `{"component":{"group":"g","module":"m"}}`},
		{name: "dependency without module", doc: `{"component":{"group":"g","module":"m","version":"1"},"variants":[{"name":"v","dependencies":[{"group":"x"}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := modulemeta.Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrInvalidModuleMetadata.Error())
		})
	}
}

func TestWrite_PatchesSource(t *testing.T) {
	store := modulemeta.NewStore()
	metas, err := store.Components(context.Background(), fixtureRepo)
	require.NoError(t, err)

	meta := metas[0]
	_, err = rewrite.NewRule(rewrite.DefaultRuleConfig()).Execute(meta)
	require.NoError(t, err)

	out := t.TempDir()
	require.NoError(t, store.Write(context.Background(), out, meta))

	//nolint:gosec // test output
	data, err := os.ReadFile(filepath.Join(out, modulemeta.LayoutPath(meta.ID)))
	require.NoError(t, err)

	doc := gjson.ParseBytes(data)
	assert.Equal(t, "7.1", doc.Get("createdBy.gradle.version").String())
	assert.Equal(t, int64(1024), doc.Get("variants.0.files.0.size").Int())

	sdkKey := gjson.Escape(domain.CompileSdkAttribute)
	assert.Equal(t, gjson.Number, doc.Get("variants.0.attributes."+sdkKey).Type)
	assert.Equal(t, int64(31), doc.Get("variants.0.attributes."+sdkKey).Int())
	assert.Equal(t, int64(31), doc.Get("variants.1.attributes."+sdkKey).Int())

	fallback := doc.Get("variants.2")
	assert.Equal(t, "compileSdkVersion_below_31", fallback.Get("name").String())
	assert.Equal(t, int64(0), fallback.Get("attributes."+sdkKey).Int())
	assert.Equal(t, domain.UsageJavaRuntime, fallback.Get("attributes."+gjson.Escape(domain.UsageAttribute)).String())
	assert.Equal(t, "2.6.0", fallback.Get("dependencies.0.version.requires").String())
	assert.Equal(t, "Downgrade to support compileSdkVersion 30", fallback.Get("dependencies.0.reason").String())

	// The patched document reads back into the rewritten model.
	again, err := modulemeta.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, meta.Variants, again.Variants)
}

func TestWrite_GeneratesDocument(t *testing.T) {
	meta := &domain.ComponentMetadata{
		ID: domain.ModuleCoordinate{LibraryCoordinate: rewrite.DefaultCoordinate, Version: "2.5.0"},
		Variants: []domain.Variant{
			{Name: "runtime", Attributes: domain.Attributes{domain.UsageAttribute: domain.UsageJavaRuntime}},
		},
	}

	out := t.TempDir()
	require.NoError(t, modulemeta.NewStore().Write(context.Background(), out, meta))

	path := filepath.Join(out, "androidx", "work", "work-runtime", "2.5.0", "work-runtime-2.5.0.module")
	//nolint:gosec // test output
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	got, err := modulemeta.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, meta.ID, got.ID)
	assert.Equal(t, "1.1", gjson.GetBytes(data, "formatVersion").String())
	assert.Equal(t, "runtime", got.Variants[0].Name)
}
