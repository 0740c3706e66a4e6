package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sdkcompat/internal/core/ports"
)

// NodeID is the unique identifier for the rule cache Graft node.
const NodeID graft.ID = "adapter.rule_cache"

func init() {
	graft.Register(graft.Node[ports.RuleCache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RuleCache, error) {
			return NewStore(), nil
		},
	})
}
