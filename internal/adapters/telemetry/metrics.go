package telemetry

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.trai.ch/topo/internal/core/domain"
	"go.trai.ch/zerr"
)

// Metrics implements ports.Metrics on a private prometheus registry.
// Flush writes the registry in the node-exporter textfile format.
type Metrics struct {
	registry *prometheus.Registry
	textfile string

	inventoryRequests *prometheus.CounterVec
	cacheLoads        prometheus.Counter
	stalenessChecks   *prometheus.CounterVec
	graphNodes        *prometheus.GaugeVec
	graphEdges        *prometheus.GaugeVec
	anomalies         *prometheus.CounterVec
}

// NewMetrics creates a Metrics writing to textfile on Flush. An empty path disables the export.
func NewMetrics(textfile string) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		textfile: textfile,
		inventoryRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "topo_inventory_requests_total",
			Help: "Requests issued to the inventory source.",
		}, []string{"resource"}),
		cacheLoads: factory.NewCounter(prometheus.CounterOpts{
			Name: "topo_cache_loads_total",
			Help: "Records read back from the cache.",
		}),
		stalenessChecks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "topo_staleness_checks_total",
			Help: "Staleness decisions by reason.",
		}, []string{"reason"}),
		graphNodes: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "topo_graph_nodes",
			Help: "Node count of the last built graph.",
		}, []string{"graph"}),
		graphEdges: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "topo_graph_edges",
			Help: "Edge count of the last built graph.",
		}, []string{"graph"}),
		anomalies: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "topo_anomalies_total",
			Help: "Inventory anomalies found while building graphs.",
		}, []string{"kind"}),
	}
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// InventoryRequest counts one inventory call.
func (m *Metrics) InventoryRequest(resource string) {
	m.inventoryRequests.WithLabelValues(resource).Inc()
}

// CacheLoad counts one cache read.
func (m *Metrics) CacheLoad() {
	m.cacheLoads.Inc()
}

// StalenessChecked counts one staleness decision.
func (m *Metrics) StalenessChecked(reason domain.StalenessReason) {
	m.stalenessChecks.WithLabelValues(reason.String()).Inc()
}

// GraphBuilt records the size of a graph.
func (m *Metrics) GraphBuilt(name string, nodes, edges int) {
	m.graphNodes.WithLabelValues(name).Set(float64(nodes))
	m.graphEdges.WithLabelValues(name).Set(float64(edges))
}

// AnomalyReported counts one anomaly.
func (m *Metrics) AnomalyReported(kind domain.AnomalyKind) {
	m.anomalies.WithLabelValues(string(kind)).Inc()
}

// Flush writes the textfile, if one is configured.
func (m *Metrics) Flush() error {
	if m.textfile == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(m.textfile), domain.DirPerm); err != nil {
		return zerr.With(errors.Join(domain.ErrMetricsWriteFailed, err), "path", m.textfile)
	}
	if err := prometheus.WriteToTextfile(m.textfile, m.registry); err != nil {
		return zerr.With(errors.Join(domain.ErrMetricsWriteFailed, err), "path", m.textfile)
	}
	return nil
}
