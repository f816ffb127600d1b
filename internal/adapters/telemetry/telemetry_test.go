package telemetry_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/topo/internal/adapters/telemetry"
	"go.trai.ch/topo/internal/core/domain"
	"go.trai.ch/topo/internal/core/ports"
	"go.trai.ch/topo/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*telemetry.OTelTracer)(nil)
	var _ ports.Span = (*telemetry.OTelSpan)(nil)
	var _ ports.Tracer = (*telemetry.NoOpTracer)(nil)
	var _ ports.Span = (*telemetry.NoOpSpan)(nil)
	var _ ports.Metrics = (*telemetry.Metrics)(nil)
	var _ ports.Metrics = telemetry.NoOpMetrics{}
	var _ sdktrace.SpanProcessor = (*telemetry.LogBridge)(nil)
}

func TestOTelTracer_LogsFinishedSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	var args []any
	logger.EXPECT().Debug("span finished", gomock.Any()).Do(func(_ string, a ...any) {
		args = a
	})

	tracer := telemetry.NewOTelTracer(telemetry.NewTracerProvider(logger))
	_, span := tracer.Start(context.Background(), "refresh")
	span.SetAttribute("site", "lyon")
	span.SetAttribute("clusters", 3)
	span.End()

	require.NotEmpty(t, args)
	assert.Equal(t, "span", args[0])
	assert.Equal(t, "refresh", args[1])
	assert.Contains(t, args, "site")
	assert.Contains(t, args, "lyon")
	assert.NotContains(t, args, "error")
}

func TestOTelTracer_RecordError(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	var args []any
	logger.EXPECT().Debug("span finished", gomock.Any()).Do(func(_ string, a ...any) {
		args = a
	})

	tracer := telemetry.NewOTelTracer(telemetry.NewTracerProvider(logger))
	_, span := tracer.Start(context.Background(), "fetch")
	span.RecordError(nil)
	span.RecordError(errors.New("boom"))
	span.End()

	assert.Contains(t, args, "error")
	assert.Contains(t, args, "boom")
}

func TestLogBridge_OnEndWithError(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	bridge := telemetry.NewLogBridge(logger)

	logger.EXPECT().Debug("span finished", gomock.Any()).Times(1)

	tp := sdktrace.NewTracerProvider()
	_, span := tp.Tracer("test").Start(context.Background(), "test-span")
	span.SetStatus(codes.Error, "test error")
	span.End()

	if roSpan, ok := span.(sdktrace.ReadOnlySpan); ok {
		bridge.OnEnd(roSpan)
	}
}

func TestLogBridge_NilLogger(t *testing.T) {
	bridge := telemetry.NewLogBridge(nil)

	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("test").Start(context.Background(), "test-span")
	span.End()

	if rwSpan, ok := span.(sdktrace.ReadWriteSpan); ok {
		bridge.OnStart(ctx, rwSpan)
		bridge.OnEnd(rwSpan)
	}
	require.NoError(t, bridge.ForceFlush(ctx))
	require.NoError(t, bridge.Shutdown(ctx))
}

func TestNoOpTracer_Start(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx := context.Background()
	got, span := tracer.Start(ctx, "test-span")
	assert.Equal(t, ctx, got)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	span.End()
}

func TestMetrics_Flush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textfile", "topo.prom")
	m := telemetry.NewMetrics(path)

	m.InventoryRequest("sites")
	m.InventoryRequest("sites")
	m.InventoryRequest("cluster_hosts")
	m.CacheLoad()
	m.StalenessChecked(domain.ReasonVersionMismatch)
	m.GraphBuilt("lyon", 4, 3)
	m.AnomalyReported(domain.AnomalyMissingSwitch)

	require.NoError(t, m.Flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, `topo_inventory_requests_total{resource="sites"} 2`)
	assert.Contains(t, out, `topo_inventory_requests_total{resource="cluster_hosts"} 1`)
	assert.Contains(t, out, `topo_cache_loads_total 1`)
	assert.Contains(t, out, `topo_staleness_checks_total{reason="version_mismatch"} 1`)
	assert.Contains(t, out, `topo_graph_nodes{graph="lyon"} 4`)
	assert.Contains(t, out, `topo_graph_edges{graph="lyon"} 3`)
	assert.Contains(t, out, `topo_anomalies_total{kind="missing_switch"} 1`)
}

func TestMetrics_FlushDisabled(t *testing.T) {
	m := telemetry.NewMetrics("")
	m.CacheLoad()
	require.NoError(t, m.Flush())
	assert.NotNil(t, m.Registry())
}

func TestMetrics_FlushFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	m := telemetry.NewMetrics(filepath.Join(blocker, "topo.prom"))
	err := m.Flush()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMetricsWriteFailed))
}
