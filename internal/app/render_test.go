package app_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sdkcompat/internal/app"
	"go.trai.ch/sdkcompat/internal/core/domain"
	"gopkg.in/yaml.v3"
)

func sampleReport() *domain.Report {
	return &domain.Report{
		Projects: []domain.ProjectReport{
			{
				Project:    "app",
				Kind:       domain.KindApplication,
				CompileSdk: 30,
				Selections: []domain.Selection{{
					Configuration: "releaseRuntimeClasspath",
					Dependency:    "androidx.work:work-runtime:2.6.5",
					Variant:       "compileSdkVersion_below_31",
					Adds:          []string{"androidx.work:work-runtime:2.6.0"},
				}},
			},
			{
				Project: "tools",
				Skipped: true,
				Selections: []domain.Selection{
					{
						Configuration: "releaseRuntimeClasspath",
						Dependency:    "androidx.work:work-runtime:2.6.5",
						Variant:       "runtime",
					},
					{
						Configuration: "releaseRuntimeClasspath",
						Dependency:    "com.example:missing:1.0",
						Error:         "component not found",
					},
				},
			},
		},
		Rewrites: []domain.RewriteRecord{
			{
				Component: "androidx.work:work-runtime:2.6.5",
				Rule:      "androidx.work:work-runtime",
				Applied:   true,
				Floor:     31,
				Variant:   "compileSdkVersion_below_31",
				Cached:    true,
			},
			{
				Component: "androidx.work:work-runtime:2.7.1",
				Rule:      "androidx.work:work-runtime",
			},
		},
	}
}

func TestRenderReport_Text(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	require.NoError(t, app.RenderReport(&buf, sampleReport(), app.FormatText))

	goldie.New(t).Assert(t, "report_text", buf.Bytes())
}

func TestRenderReport_TextWithoutRewrites(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	report := &domain.Report{Projects: []domain.ProjectReport{{Project: "tools", Skipped: true}}}

	var buf bytes.Buffer
	require.NoError(t, app.RenderReport(&buf, report, app.FormatText))
	assert.Equal(t, "tools skipped\n", buf.String())
}

func TestRenderReport_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, app.RenderReport(&buf, sampleReport(), app.FormatJSON))

	goldie.New(t).Assert(t, "report_json", buf.Bytes())
}

func TestRenderReport_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, app.RenderReport(&buf, sampleReport(), app.FormatYAML))

	var decoded domain.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *sampleReport(), decoded)
	assert.Contains(t, buf.String(), "compileSdk: 30")
}

func TestRenderDetections_Text(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	detections := []app.Detection{
		{Project: "app", Path: ":app", Kind: domain.KindApplication, CompileSdk: 31, Found: true},
		{Project: "tools", Path: ":tools"},
		{Project: "legacy", Path: ":legacy", Kind: domain.KindLibrary, Error: "malformed platform version"},
	}

	var buf bytes.Buffer
	require.NoError(t, app.RenderDetections(&buf, detections, app.FormatText))

	goldie.New(t).Assert(t, "detections_text", buf.Bytes())
}

func TestRenderProgress(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	steps := []domain.Step{
		{Name: "apply app", Done: true},
		{Name: "rewrite androidx.work:work-runtime:2.6.5", Cached: true, Done: true},
		{Name: "apply legacy", Done: true, Error: "malformed platform version"},
		{Name: "apply tools"},
	}

	var buf bytes.Buffer
	require.NoError(t, app.RenderProgress(&buf, steps))

	goldie.New(t).Assert(t, "progress_text", buf.Bytes())
}

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"text", "YAML", "json"} {
		_, err := app.ParseFormat(in)
		require.NoError(t, err, in)
	}

	_, err := app.ParseFormat("toml")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnsupportedOutputFormat.Error())
}
