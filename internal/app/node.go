package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/topo/internal/adapters/cache"     //nolint:depguard // Wired in app layer
	"go.trai.ch/topo/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/topo/internal/adapters/export"    //nolint:depguard // Wired in app layer
	"go.trai.ch/topo/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/topo/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/topo/internal/core/domain"
	"go.trai.ch/topo/internal/core/ports"
	"go.trai.ch/topo/internal/engine/builder"
	"go.trai.ch/topo/internal/engine/fetcher"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fetcher.NodeID,
			builder.BackboneNodeID,
			builder.SiteNodeID,
			export.NodeID,
			cache.NodeID,
			logger.NodeID,
			telemetry.MetricsNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	f, err := graft.Dep[*fetcher.Fetcher](ctx)
	if err != nil {
		return nil, err
	}

	backbone, err := graft.Dep[*builder.BackboneBuilder](ctx)
	if err != nil {
		return nil, err
	}

	sites, err := graft.Dep[*builder.SiteBuilder](ctx)
	if err != nil {
		return nil, err
	}

	encoder, err := graft.Dep[ports.GraphEncoder](ctx)
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

	metrics, err := graft.Dep[ports.Metrics](ctx)
	if err != nil {
		return nil, err
	}

	return New(f, backbone, sites, encoder, store, log, metrics), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, cfg), nil
}
