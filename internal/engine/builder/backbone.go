// Package builder turns inventory records into topology graphs.
package builder

import "go.trai.ch/topo/internal/core/domain"

// BackboneBuilder builds the inter-site graph from backbone equipment.
type BackboneBuilder struct {
	latency float64
}

// NewBackboneBuilder creates a BackboneBuilder giving every edge the latency.
func NewBackboneBuilder(latency float64) *BackboneBuilder {
	return &BackboneBuilder{latency: latency}
}

// Latency returns the latency assigned to new edges.
func (b *BackboneBuilder) Latency() float64 {
	return b.latency
}

// Build links every backbone equipment to the peers named by its ports.
// Nodes and edges are first-write-wins: a pair declared twice keeps the first bandwidth.
// Links without a rate get bandwidth 0 and are reported as anomalies.
func (b *BackboneBuilder) Build(equipment []domain.Equipment) (*domain.Graph, []domain.Anomaly) {
	g := domain.NewGraph()
	var anomalies []domain.Anomaly

	for _, equip := range equipment {
		src := equip.UID
		g.AddNode(domain.Node{ID: src, Kind: kindOr(equip.Kind, domain.KindRenater)})

		for _, lc := range equip.Linecards {
			for _, port := range lc.Ports {
				if port.UID == "" {
					continue
				}

				dst := port.UID
				if port.SiteUID != "" {
					dst = domain.QualifiedID(port.UID, port.SiteUID)
				}
				g.AddNode(domain.Node{ID: dst, Kind: port.ResolveKind(domain.KindRenater)})

				rate, ok := port.ResolveRate(lc)
				if !ok {
					anomalies = append(anomalies, domain.Anomaly{
						Kind:    domain.AnomalyMissingRate,
						Site:    port.SiteUID,
						Subject: src,
						Detail:  "no rate on port or linecard for link to " + dst,
					})
				}
				// Both endpoints exist at this point.
				_, _ = g.AddEdge(domain.Edge{A: src, B: dst, Bandwidth: rate, Latency: b.latency})
			}
		}
	}

	return g, anomalies
}

func kindOr(kind, fallback string) string {
	if kind == "" {
		return fallback
	}
	return kind
}
