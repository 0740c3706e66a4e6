package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sdkcompat/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/sdkcompat/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/sdkcompat/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/sdkcompat/internal/adapters/modulemeta"         //nolint:depguard // Wired in app layer
	"go.trai.ch/sdkcompat/internal/adapters/telemetry"          //nolint:depguard // Wired in app layer
	"go.trai.ch/sdkcompat/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/sdkcompat/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: false,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			cas.NodeID,
			modulemeta.RepositoryNodeID,
			modulemeta.WriterNodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: false,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	cache, err := graft.Dep[ports.RuleCache](ctx)
	if err != nil {
		return nil, err
	}

	repo, err := graft.Dep[ports.ComponentRepository](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.MetadataWriter](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, cache, repo, writer, tel), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	rec, err := graft.Dep[*progrock.Recorder](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       a,
		Logger:    log,
		Telemetry: tel,
		Progress:  rec,
	}, nil
}
