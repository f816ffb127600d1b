package fetcher_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/topo/internal/adapters/cache"
	"go.trai.ch/topo/internal/adapters/telemetry"
	"go.trai.ch/topo/internal/core/domain"
	"go.trai.ch/topo/internal/core/ports"
	"go.trai.ch/topo/internal/core/ports/mocks"
	"go.trai.ch/topo/internal/engine/fetcher"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	source  *mocks.MockInventorySource
	logger  *mocks.MockLogger
	metrics *mocks.MockMetrics
}

func newFixture(t *testing.T) (*gomock.Controller, fixture) {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := fixture{
		source:  mocks.NewMockInventorySource(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
		metrics: mocks.NewMockMetrics(ctrl),
	}
	f.logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	f.logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	f.metrics.EXPECT().StalenessChecked(gomock.Any()).AnyTimes()
	f.metrics.EXPECT().CacheLoad().AnyTimes()
	return ctrl, f
}

func (f fixture) fetcher(store ports.CacheStore) *fetcher.Fetcher {
	return fetcher.New(f.source, store, f.logger, telemetry.NewNoOpTracer(), f.metrics)
}

var (
	backbone = []domain.Equipment{{
		UID:       "renater-lyon",
		Linecards: []domain.Linecard{{Rate: domain.Float(1e10), Ports: []domain.Port{{UID: "gw", SiteUID: "lyon"}}}},
	}}
	lyonEquipment = []domain.Equipment{{UID: "gw", Kind: "router"}}
	taurusHosts   = []domain.Host{{UID: "taurus-1"}}
	orionHosts    = []domain.Host{{UID: "orion-1"}, {UID: "orion-2"}}
)

// expectInventory serves a two-site inventory in the order a refresh must request it.
func (f fixture) expectInventory(version string) []any {
	return []any{
		f.source.EXPECT().Backbone(gomock.Any()).Return(backbone, nil),
		f.source.EXPECT().Sites(gomock.Any()).Return([]string{"rennes", "lyon"}, nil),
		f.source.EXPECT().Clusters(gomock.Any(), "lyon").Return([]string{"taurus", "orion"}, nil),
		f.source.EXPECT().SiteEquipment(gomock.Any(), "lyon").Return(lyonEquipment, nil),
		f.source.EXPECT().ClusterHosts(gomock.Any(), "lyon", "orion").Return(orionHosts, nil),
		f.source.EXPECT().ClusterHosts(gomock.Any(), "lyon", "taurus").Return(taurusHosts, nil),
		f.source.EXPECT().Clusters(gomock.Any(), "rennes").Return(nil, nil),
		f.source.EXPECT().SiteEquipment(gomock.Any(), "rennes").Return(nil, nil),
		f.source.EXPECT().Version(gomock.Any()).Return(version, nil),
	}
}

func TestStalenessChecker_Check(t *testing.T) {
	unreachable := errors.New("dial tcp: connection refused")

	tests := []struct {
		name       string
		remote     string
		remoteErr  error
		local      string
		localErr   error
		wantStale  bool
		wantReason domain.StalenessReason
	}{
		{"fresh", "v1", nil, "v1", nil, false, domain.ReasonFresh},
		{"mismatch", "v2", nil, "v1", nil, true, domain.ReasonVersionMismatch},
		{"trailing newline is a mismatch", "v1", nil, "v1\n", nil, true, domain.ReasonVersionMismatch},
		{"no marker", "v1", nil, "", domain.ErrCacheMiss, true, domain.ReasonNoMarker},
		{"source unreachable", "", unreachable, "v1", nil, true, domain.ReasonSourceUnreachable},
		{"both fail", "", unreachable, "", domain.ErrCacheMiss, true, domain.ReasonSourceUnreachable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, f := newFixture(t)
			store := mocks.NewMockCacheStore(ctrl)

			gomock.InOrder(
				f.source.EXPECT().Version(gomock.Any()).Return(tt.remote, tt.remoteErr),
				store.EXPECT().ReadVersion().Return(tt.local, tt.localErr),
			)

			checker := fetcher.NewStalenessChecker(f.source, store, f.logger, f.metrics)
			st := checker.Check(context.Background())

			assert.Equal(t, tt.wantStale, st.Stale)
			assert.Equal(t, tt.wantReason, st.Reason)
			if tt.wantReason == domain.ReasonSourceUnreachable {
				assert.ErrorIs(t, st.Err, unreachable)
			}
		})
	}
}

func TestStalenessChecker_IsStaleRecordsMetric(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockInventorySource(ctrl)
	store := mocks.NewMockCacheStore(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	metrics := mocks.NewMockMetrics(ctrl)

	source.EXPECT().Version(gomock.Any()).Return("v1", nil)
	store.EXPECT().ReadVersion().Return("v1", nil)
	metrics.EXPECT().StalenessChecked(domain.ReasonFresh)
	logger.EXPECT().Debug("checked cache version", gomock.Any())

	checker := fetcher.NewStalenessChecker(source, store, logger, metrics)
	assert.False(t, checker.IsStale(context.Background()))
}

func TestFetcher_RefreshOrder(t *testing.T) {
	ctrl, f := newFixture(t)
	store := mocks.NewMockCacheStore(ctrl)

	calls := []any{
		f.source.EXPECT().Version(gomock.Any()).Return("v2", nil),
		store.EXPECT().ReadVersion().Return("v1", nil),
	}
	inv := f.expectInventory("v3")
	calls = append(calls,
		inv[0],
		store.EXPECT().Store(domain.BackboneKey(), "v2", backbone).Return(nil),
		inv[1], inv[2], inv[3],
		store.EXPECT().Store("lyon.equipment", "v2", lyonEquipment).Return(nil),
		inv[4],
		store.EXPECT().Store("lyon.orion.hosts", "v2", orionHosts).Return(nil),
		inv[5],
		store.EXPECT().Store("lyon.taurus.hosts", "v2", taurusHosts).Return(nil),
		inv[6], inv[7],
		store.EXPECT().Store("rennes.equipment", "v2", gomock.Nil()).Return(nil),
		store.EXPECT().Store(domain.ManifestKey(), "v2", domain.Manifest{Sites: map[string][]string{
			"lyon":   {"orion", "taurus"},
			"rennes": nil,
		}}).Return(nil),
		inv[8],
		store.EXPECT().WriteVersion("v3").Return(nil),
	)
	gomock.InOrder(calls...)

	fx := f.fetcher(store)
	topo, err := fx.GetTopology(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, backbone, topo.Backbone)
	assert.Equal(t, []string{"lyon", "rennes"}, topo.Sites())
	assert.Equal(t, orionHosts, topo.Hosts["lyon"]["orion"])
	assert.Equal(t, 3, topo.HostCount())
	assert.Equal(t, 9, fx.Requests())
}

func TestFetcher_FaultLeavesCacheStale(t *testing.T) {
	boom := errors.New("502 bad gateway")

	tests := []struct {
		name   string
		marker string
	}{
		{"previous marker", "v1"},
		{"no marker", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, f := newFixture(t)
			store := cache.NewDirStore(t.TempDir())
			if tt.marker != "" {
				require.NoError(t, store.WriteVersion(tt.marker))
			}

			gomock.InOrder(
				f.source.EXPECT().Version(gomock.Any()).Return("v2", nil),
				f.source.EXPECT().Backbone(gomock.Any()).Return(backbone, nil),
				f.source.EXPECT().Sites(gomock.Any()).Return([]string{"lyon"}, nil),
				f.source.EXPECT().Clusters(gomock.Any(), "lyon").Return([]string{"taurus"}, nil),
				f.source.EXPECT().SiteEquipment(gomock.Any(), "lyon").Return(lyonEquipment, nil),
				f.source.EXPECT().ClusterHosts(gomock.Any(), "lyon", "taurus").Return(nil, boom),
				f.source.EXPECT().Version(gomock.Any()).Return("v2", nil),
			)

			fx := f.fetcher(store)
			_, err := fx.GetTopology(context.Background(), nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, boom)

			var zErr interface{ Metadata() map[string]any }
			require.ErrorAs(t, err, &zErr)
			assert.Equal(t, "lyon", zErr.Metadata()["site"])

			marker, _ := store.ReadVersion()
			assert.Equal(t, tt.marker, marker)
			assert.True(t, fx.Checker().IsStale(context.Background()))
		})
	}
}

func TestFetcher_StoreFailureAborts(t *testing.T) {
	ctrl, f := newFixture(t)
	store := mocks.NewMockCacheStore(ctrl)
	diskFull := errors.New("no space left on device")

	gomock.InOrder(
		f.source.EXPECT().Version(gomock.Any()).Return("v2", nil),
		store.EXPECT().ReadVersion().Return("", domain.ErrCacheMiss),
		f.source.EXPECT().Backbone(gomock.Any()).Return(backbone, nil),
		store.EXPECT().Store(domain.BackboneKey(), "v2", backbone).Return(diskFull),
	)

	_, err := f.fetcher(store).GetTopology(context.Background(), nil)
	assert.ErrorIs(t, err, diskFull)
}

func TestFetcher_CacheHitIsOffline(t *testing.T) {
	_, f := newFixture(t)
	store := cache.NewDirStore(t.TempDir())

	inv := f.expectInventory("v2")
	gomock.InOrder(append([]any{
		f.source.EXPECT().Version(gomock.Any()).Return("v2", nil),
	}, inv...)...)

	fx := f.fetcher(store)
	first, err := fx.GetTopology(context.Background(), nil)
	require.NoError(t, err)

	// Only the staleness check reaches the source on the second run.
	f.source.EXPECT().Version(gomock.Any()).Return("v2", nil)

	second, err := fx.GetTopology(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, first.Backbone, second.Backbone)
	assert.Equal(t, first.Equipment["lyon"], second.Equipment["lyon"])
	assert.Equal(t, first.Hosts["lyon"], second.Hosts["lyon"])
	assert.Equal(t, first.Sites(), second.Sites())
}

func TestFetcher_InconsistentCache(t *testing.T) {
	_, f := newFixture(t)
	store := cache.NewDirStore(t.TempDir())

	require.NoError(t, store.Store(domain.ManifestKey(), "v1", domain.Manifest{Sites: map[string][]string{"lyon": {"taurus"}}}))
	require.NoError(t, store.Store(domain.BackboneKey(), "v1", backbone))
	require.NoError(t, store.Store(domain.SiteEquipmentKey("lyon"), "v1", lyonEquipment))
	require.NoError(t, store.WriteVersion("v1"))

	f.source.EXPECT().Version(gomock.Any()).Return("v1", nil)

	_, err := f.fetcher(store).GetTopology(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInconsistentCache)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
	assert.Contains(t, err.Error(), "lyon.taurus.hosts")
}

func TestFetcher_ForcedRefresh(t *testing.T) {
	_, f := newFixture(t)
	store := cache.NewDirStore(t.TempDir())
	require.NoError(t, store.WriteVersion("v2"))

	gomock.InOrder(f.expectInventory("v2")...)

	topo, err := f.fetcher(store).Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, topo.HostCount())

	marker, err := store.ReadVersion()
	require.NoError(t, err)
	assert.Equal(t, "v2", marker)
}

func TestFetcher_ResourcesFilter(t *testing.T) {
	_, f := newFixture(t)
	store := cache.NewDirStore(t.TempDir())

	gomock.InOrder(append([]any{
		f.source.EXPECT().Version(gomock.Any()).Return("v2", nil),
	}, f.expectInventory("v2")...)...)

	topo, err := f.fetcher(store).GetTopology(context.Background(), []string{"lyon"})
	require.NoError(t, err)

	assert.Equal(t, []string{"lyon"}, topo.Sites())
	assert.Equal(t, backbone, topo.Backbone)

	var manifest domain.Manifest
	require.NoError(t, store.Load(domain.ManifestKey(), &manifest))
	assert.Equal(t, []string{"lyon", "rennes"}, manifest.SortedSites())
}

func TestSelect(t *testing.T) {
	topo := domain.NewTopology()
	topo.Backbone = backbone
	topo.Equipment["lyon"] = lyonEquipment
	topo.Equipment["rennes"] = nil
	topo.Hosts["lyon"] = map[string][]domain.Host{"taurus": taurusHosts}
	topo.Hosts["rennes"] = map[string][]domain.Host{}

	all, err := fetcher.Select(topo, []string{"lyon", domain.WholeTestbed})
	require.NoError(t, err)
	assert.Same(t, topo, all)

	all, err = fetcher.Select(topo, nil)
	require.NoError(t, err)
	assert.Same(t, topo, all)

	one, err := fetcher.Select(topo, []string{"rennes"})
	require.NoError(t, err)
	assert.Equal(t, []string{"rennes"}, one.Sites())

	_, err = fetcher.Select(topo, []string{"atlantis"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownSite)
}
