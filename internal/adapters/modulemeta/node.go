package modulemeta

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sdkcompat/internal/core/ports"
)

const (
	// StoreNodeID is the unique identifier for the shared metadata store node.
	StoreNodeID graft.ID = "adapter.modulemeta.store"
	// RepositoryNodeID is the unique identifier for the component repository node.
	RepositoryNodeID graft.ID = "adapter.modulemeta.repository"
	// WriterNodeID is the unique identifier for the metadata writer node.
	WriterNodeID graft.ID = "adapter.modulemeta.writer"
)

func init() {
	graft.Register(graft.Node[*Store]{
		ID:        StoreNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Store, error) {
			return NewStore(), nil
		},
	})

	graft.Register(graft.Node[ports.ComponentRepository]{
		ID:        RepositoryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{StoreNodeID},
		Run: func(ctx context.Context) (ports.ComponentRepository, error) {
			store, err := graft.Dep[*Store](ctx)
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})

	graft.Register(graft.Node[ports.MetadataWriter]{
		ID:        WriterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{StoreNodeID},
		Run: func(ctx context.Context) (ports.MetadataWriter, error) {
			store, err := graft.Dep[*Store](ctx)
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
