// Package evaluator runs the plugin over every project of a build, applies
// the registered rules to the component metadata and reports which variant
// each configuration ends up with.
package evaluator

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/sdkcompat/internal/core/domain"
	"go.trai.ch/sdkcompat/internal/core/ports"
	"go.trai.ch/sdkcompat/internal/engine/detector"
	"go.trai.ch/sdkcompat/internal/engine/plugin"
	"go.trai.ch/sdkcompat/internal/engine/registrar"
	"go.trai.ch/sdkcompat/internal/engine/rewrite"
	"go.trai.ch/sdkcompat/internal/engine/selection"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one evaluation.
type Result struct {
	Report domain.Report
	// Rewritten holds the components at least one rule changed.
	Rewritten []*domain.ComponentMetadata
}

// Evaluator evaluates builds. It keeps no per-build state between calls.
type Evaluator struct {
	logger    ports.Logger
	cache     ports.RuleCache
	repo      ports.ComponentRepository
	telemetry ports.Telemetry
	parallel  int
}

// New creates an Evaluator. parallel bounds concurrent project evaluation;
// zero or less means no limit. cache and repo may be nil.
func New(
	logger ports.Logger,
	cache ports.RuleCache,
	repo ports.ComponentRepository,
	telemetry ports.Telemetry,
	parallel int,
) *Evaluator {
	return &Evaluator{
		logger:    logger,
		cache:     cache,
		repo:      repo,
		telemetry: telemetry,
		parallel:  parallel,
	}
}

// Evaluate applies the plugin to every project of build, then rewrites and
// selects. Build model objects are stamped in place; component metadata is
// copied before rules run.
func (e *Evaluator) Evaluate(ctx context.Context, build *domain.Build) (*Result, error) {
	rules := make([]*rewrite.Rule, 0, len(build.Rules))
	for _, cfg := range build.Rules {
		rules = append(rules, rewrite.NewRule(cfg))
	}

	schema := domain.NewAttributesSchema()
	domain.RegisterJavaUsage(schema)

	det := detector.New(e.logger)
	handler := rewrite.NewHandler()
	plug := plugin.New(det, registrar.New(schema), handler, rules, e.logger)

	if err := e.applyAll(ctx, plug, build.Projects); err != nil {
		return nil, err
	}

	components, err := e.components(ctx, build)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	executor := rewrite.NewExecutor(handler, e.cache, build.Root)
	for _, meta := range components {
		records, err := e.rewrite(ctx, executor, meta)
		if err != nil {
			return nil, err
		}
		res.Report.Rewrites = append(res.Report.Rewrites, records...)
		if slices.ContainsFunc(records, func(r domain.RewriteRecord) bool { return r.Applied }) {
			res.Rewritten = append(res.Rewritten, meta)
		}
	}

	index := make(map[string]*domain.ComponentMetadata, len(components))
	for _, meta := range components {
		index[meta.ID.String()] = meta
	}

	sel := selection.New(schema)
	for _, p := range build.Projects {
		// Detection is memoized, so this reads back what Apply saw.
		level, found, _ := det.Detect(p)
		pr := domain.ProjectReport{Project: p.Name, Skipped: !found}
		if p.Android != nil {
			pr.Kind = p.Android.Kind
		}
		if found {
			pr.CompileSdk = level.Int()
		}
		pr.Selections = selectAll(sel, p, index)
		res.Report.Projects = append(res.Report.Projects, pr)
	}

	return res, nil
}

func (e *Evaluator) applyAll(ctx context.Context, plug *plugin.Plugin, projects []*domain.Project) error {
	g, gctx := errgroup.WithContext(ctx)
	if e.parallel > 0 {
		g.SetLimit(e.parallel)
	}

	for _, p := range projects {
		g.Go(func() error {
			vctx, vertex := e.telemetry.Record(gctx, "apply "+p.Name)
			err := plug.Apply(vctx, p)
			vertex.Complete(err)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return zerr.Wrap(err, domain.ErrEvaluationFailed.Error())
	}
	return nil
}

func (e *Evaluator) components(ctx context.Context, build *domain.Build) ([]*domain.ComponentMetadata, error) {
	out := make([]*domain.ComponentMetadata, 0, len(build.Components))
	seen := make(map[string]bool)

	add := func(meta *domain.ComponentMetadata) error {
		id := meta.ID.String()
		if seen[id] {
			return zerr.With(domain.ErrDuplicateComponent, "component", id)
		}
		seen[id] = true
		out = append(out, meta.Clone())
		return nil
	}

	for _, meta := range build.Components {
		if err := add(meta); err != nil {
			return nil, err
		}
	}

	if build.Repository != "" && e.repo != nil {
		root := build.Repository
		if !filepath.IsAbs(root) {
			root = filepath.Join(build.Root, root)
		}
		found, err := e.repo.Components(ctx, root)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to read component repository"), "path", root)
		}
		for _, meta := range found {
			if err := add(meta); err != nil {
				return nil, err
			}
		}
	}

	slices.SortFunc(out, func(a, b *domain.ComponentMetadata) int {
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	return out, nil
}

func (e *Evaluator) rewrite(
	ctx context.Context,
	executor *rewrite.Executor,
	meta *domain.ComponentMetadata,
) ([]domain.RewriteRecord, error) {
	_, vertex := e.telemetry.Record(ctx, "rewrite "+meta.ID.String())

	records, err := executor.Execute(meta)
	if err == nil && len(records) > 0 &&
		!slices.ContainsFunc(records, func(r domain.RewriteRecord) bool { return !r.Cached }) {
		vertex.Cached()
	}
	for _, r := range records {
		if r.Applied {
			vertex.Log("added variant " + r.Variant)
		}
	}
	vertex.Complete(err)
	return records, err
}

func selectAll(
	sel *selection.Selector,
	p *domain.Project,
	index map[string]*domain.ComponentMetadata,
) []domain.Selection {
	var out []domain.Selection
	for _, c := range p.Configurations {
		for _, dep := range c.Dependencies {
			s := domain.Selection{Configuration: c.Name, Dependency: dep.String()}

			meta, ok := index[dep.String()]
			if !ok {
				s.Error = zerr.With(domain.ErrComponentNotFound, "component", dep.String()).Error()
				out = append(out, s)
				continue
			}

			v, err := sel.Select(c.Attributes, meta.Variants)
			if err != nil {
				s.Error = err.Error()
				out = append(out, s)
				continue
			}

			s.Variant = v.Name
			for _, d := range v.Dependencies {
				s.Adds = append(s.Adds, d.Coordinate.String())
			}
			out = append(out, s)
		}
	}
	return out
}
