package inventory

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/topo/internal/adapters/config"
	"go.trai.ch/topo/internal/adapters/telemetry"
	"go.trai.ch/topo/internal/core/domain"
	"go.trai.ch/topo/internal/core/ports"
)

// NodeID is the unique identifier for the inventory source Graft node.
const NodeID graft.ID = "adapter.inventory"

func init() {
	graft.Register(graft.Node[ports.InventorySource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, telemetry.MetricsNodeID},
		Run: func(ctx context.Context) (ports.InventorySource, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			metrics, err := graft.Dep[ports.Metrics](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(cfg.Inventory, metrics), nil
		},
	})
}
