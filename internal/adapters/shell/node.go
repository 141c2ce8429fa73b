package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tribuild/internal/adapters/logger"
	"go.trai.ch/tribuild/internal/core/ports"
)

// NodeID is the unique identifier for the process adapter Graft node.
const NodeID graft.ID = "adapter.process"

func init() {
	graft.Register(graft.Node[ports.Process]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Process, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(log), nil
		},
	})
}
