package ports

import (
	"context"

	"go.trai.ch/topo/internal/core/domain"
)

// InventorySource is the hierarchical resource inventory of the testbed.
//
//go:generate mockgen -source=inventory.go -destination=mocks/mock_inventory.go -package=mocks
type InventorySource interface {
	// Version returns the current version of the inventory data.
	Version(ctx context.Context) (string, error)

	// Sites lists the site uids.
	Sites(ctx context.Context) ([]string, error)

	// Clusters lists the cluster uids of a site.
	Clusters(ctx context.Context, site string) ([]string, error)

	// Backbone returns the inter-site network equipment.
	Backbone(ctx context.Context) ([]domain.Equipment, error)

	// SiteEquipment returns the network equipment of a site.
	SiteEquipment(ctx context.Context, site string) ([]domain.Equipment, error)

	// ClusterHosts returns the hosts of a cluster.
	ClusterHosts(ctx context.Context, site, cluster string) ([]domain.Host, error)
}
