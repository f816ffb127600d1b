package fetcher

import (
	"context"

	"go.trai.ch/topo/internal/core/domain"
	"go.trai.ch/topo/internal/core/ports"
)

// StalenessChecker compares the cache version marker with the live inventory version.
type StalenessChecker struct {
	source  ports.InventorySource
	store   ports.CacheStore
	logger  ports.Logger
	metrics ports.Metrics
}

// NewStalenessChecker creates a new StalenessChecker.
func NewStalenessChecker(
	source ports.InventorySource,
	store ports.CacheStore,
	logger ports.Logger,
	metrics ports.Metrics,
) *StalenessChecker {
	return &StalenessChecker{
		source:  source,
		store:   store,
		logger:  logger,
		metrics: metrics,
	}
}

// Check reads the live version, then the local marker, and decides staleness.
// It never fails: an unreachable source or a missing marker both yield a stale result.
func (c *StalenessChecker) Check(ctx context.Context) domain.Staleness {
	remote, remoteErr := c.source.Version(ctx)
	local, localErr := c.store.ReadVersion()

	st := domain.Staleness{Local: local, Remote: remote}
	switch {
	case remoteErr != nil:
		st.Stale, st.Reason, st.Err = true, domain.ReasonSourceUnreachable, remoteErr
	case localErr != nil:
		st.Stale, st.Reason, st.Err = true, domain.ReasonNoMarker, localErr
	case local != remote:
		st.Stale, st.Reason = true, domain.ReasonVersionMismatch
	default:
		st.Reason = domain.ReasonFresh
	}

	c.metrics.StalenessChecked(st.Reason)
	args := []any{"stale", st.Stale, "reason", st.Reason.String(), "local", st.Local, "remote", st.Remote}
	if st.Err != nil {
		args = append(args, "error", st.Err.Error())
	}
	c.logger.Debug("checked cache version", args...)

	return st
}

// IsStale reports whether the cache must be refreshed.
func (c *StalenessChecker) IsStale(ctx context.Context) bool {
	return c.Check(ctx).Stale
}
