package builder

import (
	"fmt"
	"maps"
	"slices"

	"go.trai.ch/topo/internal/core/domain"
)

// HostEdgeWeight is the weight of every host-to-switch edge.
const HostEdgeWeight = 0.5

// SiteResult is a site graph together with the anomalies found while building it.
type SiteResult struct {
	Site      string
	Graph     *domain.Graph
	Anomalies []domain.Anomaly
}

// SiteBuilder builds the graph of one site from its equipment and hosts.
type SiteBuilder struct {
	latency float64
}

// NewSiteBuilder creates a SiteBuilder giving every edge the latency.
func NewSiteBuilder(latency float64) *SiteBuilder {
	return &SiteBuilder{latency: latency}
}

// Latency returns the latency assigned to new edges.
func (b *SiteBuilder) Latency() float64 {
	return b.latency
}

// Build links site equipment to the switches and routers on its ports, then links every
// host to the switch of each data Ethernet adapter. Clusters are visited in sorted order.
func (b *SiteBuilder) Build(site string, hostsByCluster map[string][]domain.Host, equipment []domain.Equipment) SiteResult {
	res := SiteResult{Site: site, Graph: domain.NewGraph()}

	for _, equip := range equipment {
		b.addEquipment(&res, equip)
	}

	for _, cluster := range slices.Sorted(maps.Keys(hostsByCluster)) {
		for _, host := range hostsByCluster[cluster] {
			b.addHost(&res, host)
		}
	}

	return res
}

func (b *SiteBuilder) addEquipment(res *SiteResult, equip domain.Equipment) {
	g := res.Graph
	src := domain.QualifiedID(equip.UID, res.Site)
	g.AddNode(domain.Node{ID: src, Kind: kindOr(equip.Kind, domain.KindUnknown)})

	for _, lc := range equip.Linecards {
		if len(lc.Ports) == 0 {
			continue
		}
		lcKind := kindOr(lc.Kind, domain.KindUnknown)

		for _, port := range lc.Ports {
			if port.UID == "" {
				continue
			}
			kind := port.ResolveKind(lcKind)
			if kind != domain.KindSwitch && kind != domain.KindRouter {
				continue
			}

			dst := domain.QualifiedID(port.UID, res.Site)
			g.AddNode(domain.Node{ID: dst, Kind: kind})

			rate, ok := port.ResolveRate(lc)
			if !ok {
				res.Anomalies = append(res.Anomalies, domain.Anomaly{
					Kind:    domain.AnomalyMissingRate,
					Site:    res.Site,
					Subject: src,
					Detail:  "no rate on port or linecard for link to " + dst,
				})
			}

			// Parallel declarations in one direction add up. A link also described
			// from its other end keeps the first description.
			if e, ok := g.Edge(src, dst); ok {
				if e.A == src {
					g.AddBandwidth(src, dst, rate)
				}
				continue
			}
			_, _ = g.AddEdge(domain.Edge{A: src, B: dst, Bandwidth: rate, Latency: b.latency})
		}
	}
}

func (b *SiteBuilder) addHost(res *SiteResult, host domain.Host) {
	g := res.Graph
	src := domain.QualifiedID(host.UID, res.Site)
	g.AddNode(domain.Node{
		ID:    src,
		Kind:  domain.KindHost,
		Power: domain.Float(host.Performance.CoreFlops),
		Cores: domain.Int(host.Architecture.SMTSize),
	})

	for i, adapter := range host.NetworkAdapters {
		if !adapter.IsDataEthernet() {
			continue
		}
		if adapter.Switch == "" {
			res.Anomalies = append(res.Anomalies, domain.Anomaly{
				Kind:    domain.AnomalyMissingSwitch,
				Site:    res.Site,
				Subject: src,
				Detail:  fmt.Sprintf("network adapter %d has no switch", i),
			})
			continue
		}

		dst := domain.QualifiedID(adapter.Switch, res.Site)
		g.AddNode(domain.Node{ID: dst, Kind: domain.KindSwitch})
		if g.HasEdge(src, dst) {
			continue
		}
		_, _ = g.AddEdge(domain.Edge{
			A:         src,
			B:         dst,
			Bandwidth: adapter.Rate,
			Latency:   b.latency,
			Weight:    domain.Float(HostEdgeWeight),
		})
	}
}
