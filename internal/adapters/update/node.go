package update

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/btl/internal/core/ports"
)

// NodeID is the unique identifier for the update checker Graft node.
const NodeID graft.ID = "adapter.update_checker"

func init() {
	graft.Register(graft.Node[ports.UpdateChecker]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.UpdateChecker, error) {
			return NewChecker(), nil
		},
	})
}
