package scoring

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics counts cache behaviour and computations per scorer. Without a
// configured MeterProvider the global no-op provider makes these free.
type Metrics struct {
	cacheHits    metric.Int64Counter
	cacheMisses  metric.Int64Counter
	computations metric.Int64Counter
}

// NewMetrics registers the scoring counters on the global meter provider.
func NewMetrics() *Metrics {
	meter := otel.Meter("impact/scoring")
	hits, _ := meter.Int64Counter("impact_score_cache_hits_total")
	misses, _ := meter.Int64Counter("impact_score_cache_misses_total")
	computations, _ := meter.Int64Counter("impact_score_computations_total")
	return &Metrics{
		cacheHits:    hits,
		cacheMisses:  misses,
		computations: computations,
	}
}

func (m *Metrics) hit(ctx context.Context, category string) {
	m.cacheHits.Add(ctx, 1, metric.WithAttributes(attribute.String("category", category)))
}

func (m *Metrics) miss(ctx context.Context, category string) {
	m.cacheMisses.Add(ctx, 1, metric.WithAttributes(attribute.String("category", category)))
}

func (m *Metrics) computed(ctx context.Context, source string) {
	m.computations.Add(ctx, 1, metric.WithAttributes(attribute.String("source", source)))
}
