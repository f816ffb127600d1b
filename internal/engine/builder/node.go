package builder

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/topo/internal/adapters/config" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/topo/internal/core/domain"
)

// BackboneNodeID is the unique identifier for the backbone builder Graft node.
const BackboneNodeID graft.ID = "engine.backbone_builder"

// SiteNodeID is the unique identifier for the site builder Graft node.
const SiteNodeID graft.ID = "engine.site_builder"

func init() {
	graft.Register(graft.Node[*BackboneBuilder]{
		ID:        BackboneNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (*BackboneBuilder, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewBackboneBuilder(cfg.Latency), nil
		},
	})

	graft.Register(graft.Node[*SiteBuilder]{
		ID:        SiteNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (*SiteBuilder, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewSiteBuilder(cfg.Latency), nil
		},
	})
}
