package telemetry

import (
	"context"

	"go.trai.ch/topo/internal/core/domain"
	"go.trai.ch/topo/internal/core/ports"
)

// NoOpTracer is a no-op implementation of ports.Tracer.
type NoOpTracer struct{}

// NewNoOpTracer creates a new NoOpTracer.
func NewNoOpTracer() *NoOpTracer {
	return &NoOpTracer{}
}

// Start creates a new no-op span.
func (t *NoOpTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, &NoOpSpan{}
}

// NoOpSpan is a no-op implementation of ports.Span.
type NoOpSpan struct{}

// End does nothing.
func (s *NoOpSpan) End() {}

// SetAttribute does nothing.
func (s *NoOpSpan) SetAttribute(_ string, _ any) {}

// RecordError does nothing.
func (s *NoOpSpan) RecordError(_ error) {}

// NoOpMetrics is a no-op implementation of ports.Metrics.
type NoOpMetrics struct{}

// InventoryRequest does nothing.
func (NoOpMetrics) InventoryRequest(_ string) {}

// CacheLoad does nothing.
func (NoOpMetrics) CacheLoad() {}

// StalenessChecked does nothing.
func (NoOpMetrics) StalenessChecked(_ domain.StalenessReason) {}

// GraphBuilt does nothing.
func (NoOpMetrics) GraphBuilt(_ string, _, _ int) {}

// AnomalyReported does nothing.
func (NoOpMetrics) AnomalyReported(_ domain.AnomalyKind) {}

// Flush does nothing.
func (NoOpMetrics) Flush() error { return nil }
