// Package app implements the application layer for sdkcompat.
package app

import (
	"context"
	"runtime"
	"strconv"

	"go.trai.ch/sdkcompat/internal/core/domain"
	"go.trai.ch/sdkcompat/internal/core/ports"
	"go.trai.ch/sdkcompat/internal/engine/detector"
	"go.trai.ch/sdkcompat/internal/engine/evaluator"
	"go.trai.ch/zerr"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
	Progress  ports.ProgressLog
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	cache        ports.RuleCache
	repo         ports.ComponentRepository
	writer       ports.MetadataWriter
	telemetry    ports.Telemetry
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	logger ports.Logger,
	cache ports.RuleCache,
	repo ports.ComponentRepository,
	writer ports.MetadataWriter,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		logger:       logger,
		cache:        cache,
		repo:         repo,
		writer:       writer,
		telemetry:    telemetry,
	}
}

// ApplyOptions configures an Apply call.
type ApplyOptions struct {
	// ConfigPath is the descriptor file or a directory to search from.
	ConfigPath string
	// OutDir receives the rewritten module metadata. Empty skips writing.
	OutDir string
	// Parallel bounds concurrent project evaluation. Zero uses every CPU.
	Parallel int
	// NoCache bypasses the rule cache.
	NoCache bool
}

// Apply loads the build, runs the plugin over it and returns the report.
func (a *App) Apply(ctx context.Context, opts ApplyOptions) (*domain.Report, error) {
	build, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load build")
	}

	var cache ports.RuleCache
	if !opts.NoCache {
		cache = a.cache
	}

	parallel := opts.Parallel
	if parallel <= 0 {
		parallel = runtime.NumCPU()
	}

	res, err := evaluator.New(a.logger, cache, a.repo, a.telemetry, parallel).Evaluate(ctx, build)
	if err != nil {
		return nil, err
	}

	if opts.OutDir != "" {
		for _, meta := range res.Rewritten {
			if err := a.writer.Write(ctx, opts.OutDir, meta); err != nil {
				err = zerr.Wrap(err, "failed to write component metadata")
				return nil, zerr.With(err, "component", meta.ID.String())
			}
		}
		a.logger.Info("wrote " + strconv.Itoa(len(res.Rewritten)) + " component(s) to " + opts.OutDir)
	}

	return &res.Report, nil
}

// Detection is the compile SDK level found for one project.
type Detection struct {
	Project    string             `yaml:"project" json:"project"`
	Path       string             `yaml:"path" json:"path"`
	Kind       domain.ProjectKind `yaml:"kind,omitempty" json:"kind,omitempty"`
	CompileSdk int                `yaml:"compileSdk,omitempty" json:"compileSdk,omitempty"`
	Found      bool               `yaml:"found" json:"found"`
	Error      string             `yaml:"error,omitempty" json:"error,omitempty"`
}

// Detect loads the build and reports the compile SDK level of every project
// without applying any rule. Malformed values are reported per project.
func (a *App) Detect(ctx context.Context, configPath string) ([]Detection, error) {
	build, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load build")
	}

	det := detector.New(a.logger)
	out := make([]Detection, 0, len(build.Projects))
	for _, p := range build.Projects {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		d := Detection{Project: p.Name, Path: p.Path}
		if p.Android != nil {
			d.Kind = p.Android.Kind
		}
		level, found, err := det.Detect(p)
		switch {
		case err != nil:
			d.Error = err.Error()
		case found:
			d.Found = true
			d.CompileSdk = level.Int()
		}
		out = append(out, d)
	}
	return out, nil
}
