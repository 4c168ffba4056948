// Package scoring computes impact scores for companies: a sector baseline,
// adjusted by an AI model or by news-sentiment heuristics, aggregated per
// impact category and cached for a short TTL.
package scoring

import (
	"context"
	"time"

	"github.com/aristath/impact/internal/domain"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// newsLimit is the number of articles requested per computation.
const newsLimit = 10

// Service is the scoring orchestrator.
type Service struct {
	baselines SectorBaselines
	news      domain.NewsGateway
	scorers   []Scorer
	cache     *ScoreCache
	flight    singleflight.Group
	metrics   *Metrics
	log       zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithBaselines overrides the sector baseline table.
func WithBaselines(b SectorBaselines) Option {
	return func(s *Service) {
		s.baselines = b
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m *Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// NewService creates the orchestrator. scorers are tried in order and the
// first to succeed wins; the last one should always succeed (HeuristicScorer).
// When every scorer fails the baseline is used unchanged.
func NewService(news domain.NewsGateway, cache *ScoreCache, log zerolog.Logger, scorers []Scorer, opts ...Option) *Service {
	s := &Service{
		baselines: DefaultSectorBaselines(),
		news:      news,
		scorers:   scorers,
		cache:     cache,
		metrics:   NewMetrics(),
		log:       log.With().Str("service", "scoring").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ComputeImpactScores returns the scores for profile viewed through
// category. It never fails: every provider failure degrades to a fallback.
// Concurrent calls for the same symbol and category share one computation.
func (s *Service) ComputeImpactScores(ctx context.Context, profile domain.CompanyProfile, category domain.ImpactCategory) domain.ScoreResult {
	profile = profile.Normalized()

	if cached, ok := s.cache.Get(profile.Symbol, category); ok {
		s.metrics.hit(ctx, string(category))
		s.log.Debug().Str("symbol", profile.Symbol).Str("category", string(category)).Msg("Using cached scores")
		return cached
	}

	// Callers joining an in-flight computation record nothing; each
	// computation counts as exactly one miss.
	key := CacheKey(profile.Symbol, category)
	v, _, _ := s.flight.Do(key, func() (interface{}, error) {
		if cached, ok := s.cache.Get(profile.Symbol, category); ok {
			s.metrics.hit(ctx, string(category))
			return cached, nil
		}
		s.metrics.miss(ctx, string(category))
		// One caller giving up must not abort the computation the others wait on.
		return s.compute(context.WithoutCancel(ctx), profile, category), nil
	})

	return cloneResult(v.(domain.ScoreResult))
}

func (s *Service) compute(ctx context.Context, profile domain.CompanyProfile, category domain.ImpactCategory) domain.ScoreResult {
	start := time.Now()
	log := s.log.With().Str("symbol", profile.Symbol).Str("category", string(category)).Logger()
	log.Info().Str("sector", profile.Sector).Msg("Computing impact scores")

	baseline := s.baselines.Baseline(profile.Sector)

	news := s.news.FetchNews(ctx, profile.Name, profile.Symbol, newsLimit)
	news = s.news.RefineSentiment(ctx, news, profile.Name)

	scores, source := baseline, "baseline"
	for _, scorer := range s.scorers {
		if v, ok := scorer.Score(ctx, profile, baseline, news); ok {
			scores, source = v, scorer.Name()
			break
		}
	}
	s.metrics.computed(ctx, source)

	result := domain.ScoreResult{
		Scores:             scores,
		OverallImpactScore: OverallScore(scores, category),
		News:               news,
	}
	s.cache.Put(profile.Symbol, category, result)

	log.Info().
		Str("source", source).
		Int("overall", result.OverallImpactScore).
		Int("news", len(news)).
		Dur("duration", time.Since(start)).
		Msg("Impact scores computed")

	return result
}

// ClearScoreCache removes cached results for symbol, or everything when
// symbol is empty.
func (s *Service) ClearScoreCache(symbol string) int {
	n := s.cache.Invalidate(symbol)
	if symbol == "" {
		s.log.Info().Int("removed", n).Msg("Cleared entire score cache")
	} else {
		s.log.Info().Str("symbol", domain.NormalizeSymbol(symbol)).Int("removed", n).Msg("Cleared score cache")
	}
	return n
}

// CacheSize returns the number of cached results.
func (s *Service) CacheSize() int {
	return s.cache.Len()
}
