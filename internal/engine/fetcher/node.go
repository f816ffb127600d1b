package fetcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/topo/internal/adapters/cache"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/topo/internal/adapters/inventory" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/topo/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/topo/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/topo/internal/core/ports"
)

// NodeID is the unique identifier for the fetcher Graft node.
const NodeID graft.ID = "engine.fetcher"

func init() {
	graft.Register(graft.Node[*Fetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			inventory.NodeID,
			cache.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			telemetry.MetricsNodeID,
		},
		Run: func(ctx context.Context) (*Fetcher, error) {
			source, err := graft.Dep[ports.InventorySource](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.CacheStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			metrics, err := graft.Dep[ports.Metrics](ctx)
			if err != nil {
				return nil, err
			}

			return New(source, store, log, tracer, metrics), nil
		},
	})
}
