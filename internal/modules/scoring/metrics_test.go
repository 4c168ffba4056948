package scoring

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aristath/impact/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

type countingCounter struct {
	noop.Int64Counter
	total atomic.Int64
}

func (c *countingCounter) Add(_ context.Context, incr int64, _ ...metric.AddOption) {
	c.total.Add(incr)
}

func newCountingMetrics() (*Metrics, *countingCounter, *countingCounter, *countingCounter) {
	hits, misses, computations := &countingCounter{}, &countingCounter{}, &countingCounter{}
	return &Metrics{cacheHits: hits, cacheMisses: misses, computations: computations}, hits, misses, computations
}

func TestMetrics_ConcurrentCallersCountOneMiss(t *testing.T) {
	m, _, misses, computations := newCountingMetrics()
	news := &fakeNews{delay: 50 * time.Millisecond}
	svc := NewService(news, NewScoreCache(DefaultScoreTTL, newFakeClock().Now), zerolog.Nop(),
		[]Scorer{NewHeuristicScorer(nil)}, WithMetrics(m))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.ComputeImpactScores(context.Background(), techProfile, domain.CategoryBroad)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, news.calls())
	assert.Equal(t, int64(1), computations.total.Load())
	assert.Equal(t, computations.total.Load(), misses.total.Load())
}

func TestMetrics_HitsAndMisses(t *testing.T) {
	m, hits, misses, computations := newCountingMetrics()
	clock := newFakeClock()
	svc := NewService(&fakeNews{}, NewScoreCache(DefaultScoreTTL, clock.Now), zerolog.Nop(),
		[]Scorer{NewHeuristicScorer(nil)}, WithMetrics(m))

	svc.ComputeImpactScores(context.Background(), techProfile, domain.CategoryBroad)
	svc.ComputeImpactScores(context.Background(), techProfile, domain.CategoryBroad)
	svc.ComputeImpactScores(context.Background(), techProfile, domain.CategoryBroad)

	assert.Equal(t, int64(1), misses.total.Load())
	assert.Equal(t, int64(2), hits.total.Load())
	assert.Equal(t, int64(1), computations.total.Load())

	clock.Advance(DefaultScoreTTL)
	svc.ComputeImpactScores(context.Background(), techProfile, domain.CategoryBroad)

	assert.Equal(t, int64(2), misses.total.Load())
	assert.Equal(t, int64(2), computations.total.Load())
}
