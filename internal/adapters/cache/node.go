package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/topo/internal/adapters/config"
	"go.trai.ch/topo/internal/core/domain"
	"go.trai.ch/topo/internal/core/ports"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the cache store Graft node.
const NodeID graft.ID = "adapter.cache_store"

func init() {
	graft.Register(graft.Node[ports.CacheStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.CacheStore, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return Open(cfg.Cache)
		},
	})
}

// Open returns the store selected by cfg.Backend.
func Open(cfg domain.CacheConfig) (ports.CacheStore, error) {
	switch cfg.Backend {
	case domain.BackendDir, "":
		return NewDirStore(cfg.Dir), nil
	case domain.BackendSQLite:
		store, err := OpenSQLite(domain.DefaultSQLitePath(cfg.Dir))
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "unknown cache backend"), "backend", cfg.Backend)
	}
}
