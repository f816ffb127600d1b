package ports

import "go.trai.ch/topo/internal/core/domain"

// Metrics records counters about fetching and graph construction.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// InventoryRequest counts one call to the inventory source for the given resource kind.
	InventoryRequest(resource string)
	// CacheLoad counts one record read back from the cache.
	CacheLoad()
	// StalenessChecked records the outcome of a staleness check.
	StalenessChecked(reason domain.StalenessReason)
	// GraphBuilt records the size of a built graph.
	GraphBuilt(name string, nodes, edges int)
	// AnomalyReported counts one anomaly.
	AnomalyReported(kind domain.AnomalyKind)
	// Flush writes the collected metrics to their sink, if one is configured.
	Flush() error
}
