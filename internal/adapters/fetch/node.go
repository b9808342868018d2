package fetch

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/btl/internal/adapters/logger"
	"go.trai.ch/btl/internal/core/ports"
)

// NodeID is the unique identifier for the jar fetcher Graft node.
const NodeID graft.ID = "adapter.jar_fetcher"

func init() {
	graft.Register(graft.Node[ports.JarFetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.JarFetcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewJarFetcher(log), nil
		},
	})
}
