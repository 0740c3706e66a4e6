// Package plugin is the per-project entry point that ties detection, schema
// registration and rule registration together.
package plugin

import (
	"context"
	"strconv"

	"go.trai.ch/sdkcompat/internal/core/domain"
	"go.trai.ch/sdkcompat/internal/core/ports"
	"go.trai.ch/sdkcompat/internal/engine/detector"
	"go.trai.ch/sdkcompat/internal/engine/registrar"
	"go.trai.ch/sdkcompat/internal/engine/rewrite"
)

// Plugin is applied once per project. A single Plugin is shared by every
// project of a build, so the schema and handler it writes to are build wide.
type Plugin struct {
	detector  *detector.Detector
	registrar *registrar.Registrar
	handler   *rewrite.Handler
	rules     []*rewrite.Rule
	logger    ports.Logger
}

// New creates a Plugin. When rules is empty the default work-runtime rule is used.
func New(
	det *detector.Detector,
	reg *registrar.Registrar,
	handler *rewrite.Handler,
	rules []*rewrite.Rule,
	logger ports.Logger,
) *Plugin {
	if len(rules) == 0 {
		rules = []*rewrite.Rule{rewrite.NewRule(rewrite.DefaultRuleConfig())}
	}
	return &Plugin{
		detector:  det,
		registrar: reg,
		handler:   handler,
		rules:     rules,
		logger:    logger,
	}
}

// Apply runs the plugin against project. Projects without a detectable
// compile SDK are left untouched. A malformed compile SDK is returned.
func (p *Plugin) Apply(ctx context.Context, project *domain.Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	level, found, err := p.detector.Detect(project)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	p.registrar.Register()
	p.registrar.Stamp(project, level)

	for _, rule := range p.rules {
		if p.handler.WithModule(rule.Coordinate(), rule) {
			p.logger.Info("registered rule " + rule.ID())
		}
	}

	p.logger.Info("project '" + project.Name + "' compiles against SDK " + strconv.Itoa(level.Int()))
	return nil
}
