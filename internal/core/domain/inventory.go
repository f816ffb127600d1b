package domain

import "slices"

// Equipment is a network device (switch, router, backbone node) described by the inventory.
type Equipment struct {
	UID       string     `json:"uid"`
	Kind      string     `json:"kind,omitempty"`
	Linecards []Linecard `json:"linecards,omitempty"`
}

// Linecard groups ports sharing a default rate and kind.
type Linecard struct {
	Rate  *float64 `json:"rate,omitempty"`
	Kind  string   `json:"kind,omitempty"`
	Ports []Port   `json:"ports,omitempty"`
}

// Port is a connection point on a linecard. Every field is optional.
type Port struct {
	UID     string   `json:"uid,omitempty"`
	SiteUID string   `json:"site_uid,omitempty"`
	Kind    string   `json:"kind,omitempty"`
	Rate    *float64 `json:"rate,omitempty"`
}

// ResolveRate returns the port rate, falling back to the linecard rate.
// ok is false when neither declares one.
func (p Port) ResolveRate(lc Linecard) (rate float64, ok bool) {
	switch {
	case p.Rate != nil:
		return *p.Rate, true
	case lc.Rate != nil:
		return *lc.Rate, true
	default:
		return 0, false
	}
}

// ResolveKind returns the port kind, falling back to fallback.
func (p Port) ResolveKind(fallback string) string {
	if p.Kind != "" {
		return p.Kind
	}
	return fallback
}

// Host is a compute node of a cluster.
type Host struct {
	UID             string           `json:"uid"`
	Performance     Performance      `json:"performance"`
	Architecture    Architecture     `json:"architecture"`
	NetworkAdapters []NetworkAdapter `json:"network_adapters,omitempty"`
}

// Performance holds the measured compute power of a host.
type Performance struct {
	CoreFlops float64 `json:"core_flops"`
}

// Architecture holds the processor layout of a host.
type Architecture struct {
	SMTSize int `json:"smt_size"`
}

// NetworkAdapter is one interface of a host. Switch is empty when the inventory has none.
type NetworkAdapter struct {
	Enabled    bool    `json:"enabled"`
	Management bool    `json:"management"`
	Interface  string  `json:"interface"`
	Switch     string  `json:"switch,omitempty"`
	Rate       float64 `json:"rate"`
}

// EthernetInterface is the adapter interface type linked into site graphs.
const EthernetInterface = "Ethernet"

// IsDataEthernet reports whether the adapter carries experiment traffic over Ethernet.
func (a NetworkAdapter) IsDataEthernet() bool {
	return a.Enabled && !a.Management && a.Interface == EthernetInterface
}

// Topology is the whole inventory needed to build backbone and site graphs.
type Topology struct {
	Backbone  []Equipment
	Equipment map[string][]Equipment
	Hosts     map[string]map[string][]Host
}

// NewTopology creates an empty Topology.
func NewTopology() *Topology {
	return &Topology{
		Equipment: make(map[string][]Equipment),
		Hosts:     make(map[string]map[string][]Host),
	}
}

// Sites returns the site names in lexicographic order.
func (t *Topology) Sites() []string {
	sites := make([]string, 0, len(t.Equipment))
	for site := range t.Equipment {
		sites = append(sites, site)
	}
	for site := range t.Hosts {
		if _, ok := t.Equipment[site]; !ok {
			sites = append(sites, site)
		}
	}
	slices.Sort(sites)
	return sites
}

// HostCount returns the number of hosts across all sites and clusters.
func (t *Topology) HostCount() int {
	n := 0
	for _, clusters := range t.Hosts {
		for _, hosts := range clusters {
			n += len(hosts)
		}
	}
	return n
}

// Manifest lists the clusters of every site, as stored in the cache.
type Manifest struct {
	Sites map[string][]string `json:"sites"`
}

// SortedSites returns the manifest's site names in lexicographic order.
func (m Manifest) SortedSites() []string {
	sites := make([]string, 0, len(m.Sites))
	for site := range m.Sites {
		sites = append(sites, site)
	}
	slices.Sort(sites)
	return sites
}
