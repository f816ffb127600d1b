// Package fetcher retrieves the testbed inventory, from the cache when it is current
// and from the inventory source otherwise.
package fetcher

import (
	"context"
	"errors"
	"slices"

	"go.trai.ch/topo/internal/core/domain"
	"go.trai.ch/topo/internal/core/ports"
	"go.trai.ch/zerr"
)

// Fetcher implements the cache-aside retrieval of the whole testbed inventory.
type Fetcher struct {
	source  ports.InventorySource
	store   ports.CacheStore
	checker *StalenessChecker
	logger  ports.Logger
	tracer  ports.Tracer
	metrics ports.Metrics

	requests int
}

// New creates a new Fetcher.
func New(
	source ports.InventorySource,
	store ports.CacheStore,
	logger ports.Logger,
	tracer ports.Tracer,
	metrics ports.Metrics,
) *Fetcher {
	return &Fetcher{
		source:  source,
		store:   store,
		checker: NewStalenessChecker(source, store, logger, metrics),
		logger:  logger,
		tracer:  tracer,
		metrics: metrics,
	}
}

// Checker returns the staleness checker used by the fetcher.
func (f *Fetcher) Checker() *StalenessChecker {
	return f.checker
}

// Requests returns the number of inventory calls issued by the last refresh.
func (f *Fetcher) Requests() int {
	return f.requests
}

// GetTopology returns the inventory restricted to resources.
// An empty list, or one naming the whole testbed, selects every site.
func (f *Fetcher) GetTopology(ctx context.Context, resources []string) (*domain.Topology, error) {
	ctx, span := f.tracer.Start(ctx, "get_topology")
	defer span.End()

	st := f.checker.Check(ctx)
	span.SetAttribute("stale", st.Stale)
	span.SetAttribute("reason", st.Reason.String())

	var (
		topo *domain.Topology
		err  error
	)
	if st.Stale {
		f.logger.Info("retrieving topology data from inventory", "reason", st.Reason.String())
		topo, err = f.refresh(ctx, st.Remote)
	} else {
		f.logger.Info("reading topology data from cache", "version", st.Local)
		topo, err = f.load(ctx)
	}
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return Select(topo, resources)
}

// Refresh refetches the whole inventory regardless of the version marker.
func (f *Fetcher) Refresh(ctx context.Context) (*domain.Topology, error) {
	ctx, span := f.tracer.Start(ctx, "get_topology")
	defer span.End()

	topo, err := f.refresh(ctx, "")
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return topo, nil
}

// refresh fetches every resource and stores each one as soon as it arrives.
// The version marker is written last so that a failed run stays stale.
func (f *Fetcher) refresh(ctx context.Context, stamp string) (*domain.Topology, error) {
	ctx, span := f.tracer.Start(ctx, "refresh")
	defer span.End()

	f.requests = 0
	topo := domain.NewTopology()
	manifest := domain.Manifest{Sites: make(map[string][]string)}

	f.requests++
	backbone, err := f.source.Backbone(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to fetch backbone")
	}
	if err := f.store.Store(domain.BackboneKey(), stamp, backbone); err != nil {
		return nil, err
	}
	topo.Backbone = backbone

	f.requests++
	sites, err := f.source.Sites(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list sites")
	}

	for _, site := range sorted(sites) {
		f.logger.Info("retrieving site", "site", site)
		if err := f.refreshSite(ctx, site, stamp, topo, &manifest); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to refresh site"), "site", site)
		}
	}

	if err := f.store.Store(domain.ManifestKey(), stamp, manifest); err != nil {
		return nil, err
	}

	f.requests++
	version, err := f.source.Version(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read inventory version")
	}
	if err := f.store.WriteVersion(version); err != nil {
		return nil, err
	}

	span.SetAttribute("sites", len(sites))
	span.SetAttribute("n_requests", f.requests)
	f.logger.Debug("inventory requests", "n_requests", f.requests)

	return topo, nil
}

func (f *Fetcher) refreshSite(
	ctx context.Context,
	site, stamp string,
	topo *domain.Topology,
	manifest *domain.Manifest,
) error {
	f.requests++
	clusters, err := f.source.Clusters(ctx, site)
	if err != nil {
		return zerr.Wrap(err, "failed to list clusters")
	}
	clusters = sorted(clusters)
	manifest.Sites[site] = clusters

	f.requests++
	equipment, err := f.source.SiteEquipment(ctx, site)
	if err != nil {
		return zerr.Wrap(err, "failed to fetch site equipment")
	}
	if err := f.store.Store(domain.SiteEquipmentKey(site), stamp, equipment); err != nil {
		return err
	}
	topo.Equipment[site] = equipment

	topo.Hosts[site] = make(map[string][]domain.Host, len(clusters))
	for _, cluster := range clusters {
		f.logger.Debug("retrieving cluster", "site", site, "cluster", cluster)

		f.requests++
		hosts, err := f.source.ClusterHosts(ctx, site, cluster)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to fetch cluster hosts"), "cluster", cluster)
		}
		if err := f.store.Store(domain.ClusterHostsKey(site, cluster), stamp, hosts); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to store cluster hosts"), "cluster", cluster)
		}
		topo.Hosts[site][cluster] = hosts
	}

	return nil
}

// load rebuilds the inventory from the cache alone, guided by the stored manifest.
func (f *Fetcher) load(ctx context.Context) (*domain.Topology, error) {
	_, span := f.tracer.Start(ctx, "load")
	defer span.End()

	topo := domain.NewTopology()

	var manifest domain.Manifest
	if err := f.loadRecord(domain.ManifestKey(), &manifest); err != nil {
		return nil, err
	}
	if err := f.loadRecord(domain.BackboneKey(), &topo.Backbone); err != nil {
		return nil, err
	}

	for _, site := range manifest.SortedSites() {
		var equipment []domain.Equipment
		if err := f.loadRecord(domain.SiteEquipmentKey(site), &equipment); err != nil {
			return nil, err
		}
		topo.Equipment[site] = equipment

		clusters := sorted(manifest.Sites[site])
		topo.Hosts[site] = make(map[string][]domain.Host, len(clusters))
		for _, cluster := range clusters {
			var hosts []domain.Host
			if err := f.loadRecord(domain.ClusterHostsKey(site, cluster), &hosts); err != nil {
				return nil, err
			}
			topo.Hosts[site][cluster] = hosts
		}
	}

	span.SetAttribute("sites", len(manifest.Sites))
	return topo, nil
}

// loadRecord reads one record. A miss behind a current marker is an inconsistent cache.
func (f *Fetcher) loadRecord(key string, dst any) error {
	if err := f.store.Load(key, dst); err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return zerr.With(errors.Join(domain.ErrInconsistentCache, err), "key", key)
		}
		return err
	}
	f.metrics.CacheLoad()
	return nil
}

// Select restricts topo to the sites named in resources.
// The backbone is always kept whole.
func Select(topo *domain.Topology, resources []string) (*domain.Topology, error) {
	if len(resources) == 0 || slices.Contains(resources, domain.WholeTestbed) {
		return topo, nil
	}

	known := topo.Sites()
	out := domain.NewTopology()
	out.Backbone = topo.Backbone
	for _, site := range resources {
		if !slices.Contains(known, site) {
			return nil, zerr.With(zerr.Wrap(domain.ErrUnknownSite, "cannot select site"), "site", site)
		}
		out.Equipment[site] = topo.Equipment[site]
		out.Hosts[site] = topo.Hosts[site]
	}
	return out, nil
}

func sorted(in []string) []string {
	out := slices.Clone(in)
	slices.Sort(out)
	return out
}
