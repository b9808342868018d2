package settings

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/btl/internal/core/domain"
)

// NodeID is the unique identifier for the settings manager Graft node.
const NodeID graft.ID = "engine.settings"

func init() {
	graft.Register(graft.Node[*Manager]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Manager, error) {
			return NewManager(domain.DefaultProfile()), nil
		},
	})
}
