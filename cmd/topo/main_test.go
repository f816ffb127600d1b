package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/topo/internal/adapters/export"
	"go.trai.ch/topo/internal/adapters/telemetry"
	"go.trai.ch/topo/internal/app"
	"go.trai.ch/topo/internal/core/domain"
	"go.trai.ch/topo/internal/core/ports/mocks"
	"go.trai.ch/topo/internal/engine/builder"
	"go.trai.ch/topo/internal/engine/fetcher"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	source *mocks.MockInventorySource
	store  *mocks.MockCacheStore
	logger *mocks.MockLogger
}

func newTestComponents(t *testing.T) (*app.Components, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := testDeps{
		source: mocks.NewMockInventorySource(ctrl),
		store:  mocks.NewMockCacheStore(ctrl),
		logger: mocks.NewMockLogger(ctrl),
	}
	metrics := telemetry.NoOpMetrics{}

	f := fetcher.New(deps.source, deps.store, deps.logger, telemetry.NewNoOpTracer(), metrics)
	application := app.New(
		f,
		builder.NewBackboneBuilder(domain.DefaultLatency),
		builder.NewSiteBuilder(domain.DefaultLatency),
		export.NewEncoder(),
		deps.store,
		deps.logger,
		metrics,
	)

	return app.NewComponents(application, deps.logger, domain.DefaultConfig()), deps
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	components, _ := newTestComponents(t)
	cleaned := false

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() { cleaned = true }, nil
	}

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "topo version")
	assert.True(t, cleaned, "cleanup must run after execution")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	components, deps := newTestComponents(t)

	purgeErr := errors.Join(domain.ErrCachePurgeFailed, errors.New("permission denied"))
	deps.store.EXPECT().Purge().Return(purgeErr)
	deps.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrCachePurgeFailed)
	})

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	exitCode := run(context.Background(), []string{"clean"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_Status verifies that a status check runs end to end through the app.
func TestRun_Status(t *testing.T) {
	components, deps := newTestComponents(t)

	deps.source.EXPECT().Version(gomock.Any()).Return("v2", nil)
	deps.store.EXPECT().ReadVersion().Return("v1", nil)
	deps.logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"status"}, stdout, new(bytes.Buffer), provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "cache: stale (version_mismatch)")
}
