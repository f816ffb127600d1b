// Package app implements the application layer for topo.
package app

import (
	"context"
	"fmt"
	"io"

	"go.trai.ch/topo/internal/core/domain"
	"go.trai.ch/topo/internal/core/ports"
	"go.trai.ch/topo/internal/engine/builder"
	"go.trai.ch/topo/internal/engine/fetcher"
	"go.trai.ch/zerr"
)

// BackboneGraphName labels the backbone graph in logs and metrics.
const BackboneGraphName = "backbone"

// App represents the main application logic.
type App struct {
	fetcher  *fetcher.Fetcher
	backbone *builder.BackboneBuilder
	sites    *builder.SiteBuilder
	encoder  ports.GraphEncoder
	store    ports.CacheStore
	logger   ports.Logger
	metrics  ports.Metrics
}

// New creates a new App instance.
func New(
	f *fetcher.Fetcher,
	backbone *builder.BackboneBuilder,
	sites *builder.SiteBuilder,
	encoder ports.GraphEncoder,
	store ports.CacheStore,
	log ports.Logger,
	metrics ports.Metrics,
) *App {
	return &App{
		fetcher:  f,
		backbone: backbone,
		sites:    sites,
		encoder:  encoder,
		store:    store,
		logger:   log,
		metrics:  metrics,
	}
}

// SetLatency replaces the latency given to every new edge.
func (a *App) SetLatency(latency float64) {
	a.backbone = builder.NewBackboneBuilder(latency)
	a.sites = builder.NewSiteBuilder(latency)
}

// Latency returns the latency given to every new edge.
func (a *App) Latency() float64 {
	return a.backbone.Latency()
}

// FetchOptions configuration for the Fetch method.
type FetchOptions struct {
	// Force refetches the inventory even when the cache is current.
	Force bool
	// Sites restricts the result. Empty selects the whole testbed.
	Sites []string
}

// Fetch retrieves the inventory, refreshing the cache when it is stale or when forced.
func (a *App) Fetch(ctx context.Context, opts FetchOptions) (*domain.Topology, error) {
	defer a.flushMetrics()

	var (
		topo *domain.Topology
		err  error
	)
	if opts.Force {
		topo, err = a.fetcher.Refresh(ctx)
		if err == nil {
			topo, err = fetcher.Select(topo, opts.Sites)
		}
	} else {
		topo, err = a.fetcher.GetTopology(ctx, opts.Sites)
	}
	if err != nil {
		return nil, zerr.Wrap(err, "failed to fetch topology")
	}

	a.logger.Info(fmt.Sprintf("topology ready: %d sites, %d hosts", len(topo.Sites()), topo.HostCount()))
	return topo, nil
}

// Status reports whether the cache is current, without fetching anything else.
func (a *App) Status(ctx context.Context) domain.Staleness {
	defer a.flushMetrics()
	return a.fetcher.Checker().Check(ctx)
}

// BackboneGraph builds the inter-site graph. Anomalies are logged.
func (a *App) BackboneGraph(ctx context.Context) (*domain.Graph, error) {
	defer a.flushMetrics()

	topo, err := a.fetcher.GetTopology(ctx, nil)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to fetch topology")
	}

	g, anomalies := a.backbone.Build(topo.Backbone)
	a.reportAnomalies(anomalies)
	a.metrics.GraphBuilt(BackboneGraphName, g.NodeCount(), g.EdgeCount())
	a.logger.Debug("built graph", "graph", BackboneGraphName, "nodes", g.NodeCount(), "edges", g.EdgeCount())
	return g, nil
}

// SiteGraph builds the graph of one site. Anomalies are logged and returned with the graph.
func (a *App) SiteGraph(ctx context.Context, site string) (builder.SiteResult, error) {
	defer a.flushMetrics()

	topo, err := a.fetcher.GetTopology(ctx, []string{site})
	if err != nil {
		return builder.SiteResult{}, zerr.With(zerr.Wrap(err, "failed to fetch topology"), "site", site)
	}

	res := a.sites.Build(site, topo.Hosts[site], topo.Equipment[site])
	a.reportAnomalies(res.Anomalies)

	g := res.Graph
	a.metrics.GraphBuilt(site, g.NodeCount(), g.EdgeCount())
	a.logger.Debug("built graph", "graph", site, "nodes", g.NodeCount(), "edges", g.EdgeCount())
	return res, nil
}

// Export writes g to w in format.
func (a *App) Export(w io.Writer, g *domain.Graph, format string) error {
	return a.encoder.Encode(w, g, format)
}

// Clean removes every cached record and the version marker.
func (a *App) Clean() error {
	if err := a.store.Purge(); err != nil {
		return zerr.Wrap(err, "failed to clean cache")
	}
	a.logger.Info("cache cleaned")
	return nil
}

// Close releases the cache store if it holds resources.
func (a *App) Close() error {
	if c, ok := a.store.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// reportAnomalies logs and counts each anomaly. None of them fails the command.
func (a *App) reportAnomalies(anomalies []domain.Anomaly) {
	for _, anomaly := range anomalies {
		a.metrics.AnomalyReported(anomaly.Kind)
		a.logger.Warn(anomaly.Detail,
			"kind", string(anomaly.Kind),
			"site", anomaly.Site,
			subjectKey(anomaly.Kind), anomaly.Subject,
		)
	}
}

func subjectKey(kind domain.AnomalyKind) string {
	if kind == domain.AnomalyMissingSwitch {
		return "host"
	}
	return "equipment"
}

// flushMetrics writes the metrics sink. A failure never fails the command.
func (a *App) flushMetrics() {
	if err := a.metrics.Flush(); err != nil {
		a.logger.Warn("failed to write metrics", "error", err)
	}
}
