// Package recommendations ranks companies by impact score for a category.
package recommendations

import (
	"context"
	"sort"
	"time"

	"github.com/aristath/impact/internal/domain"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultLimit is the number of recommendations returned when none is requested.
	DefaultLimit = 8

	// liveCandidateSlack is how many extra live candidates are scored so that
	// failures do not leave the list short.
	liveCandidateSlack = 5

	// maxConcurrent bounds the provider calls in flight per request.
	maxConcurrent = 4
)

// MarketData resolves company profiles and quotes.
type MarketData interface {
	GetCompanyInfo(ctx context.Context, symbol string) (*domain.CompanyProfile, error)
	GetQuote(ctx context.Context, symbol string) (*domain.Quote, error)
}

// ImpactScorer computes impact scores for a company.
type ImpactScorer interface {
	ComputeImpactScores(ctx context.Context, profile domain.CompanyProfile, category domain.ImpactCategory) domain.ScoreResult
}

// CompanyScores is one ranked recommendation.
type CompanyScores struct {
	Quote              *domain.Quote      `json:"quote"`
	Company            domain.Company     `json:"company"`
	Scores             domain.ScoreVector `json:"scores"`
	OverallImpactScore int                `json:"overallImpactScore"`
}

// Service builds recommendation lists.
type Service struct {
	market MarketData
	scorer ImpactScorer
	log    zerolog.Logger
}

// NewService creates a recommendations service.
func NewService(market MarketData, scorer ImpactScorer, log zerolog.Logger) *Service {
	return &Service{
		market: market,
		scorer: scorer,
		log:    log.With().Str("service", "recommendations").Logger(),
	}
}

// Recommend scores candidates for category and returns up to limit of them,
// highest overall score first. Curated mode scores the curated companies
// tagged with category (every one for broad); live mode resolves the
// category funds and popular symbols through the market data provider.
// Candidates that fail to resolve are dropped.
func (s *Service) Recommend(ctx context.Context, category domain.ImpactCategory, limit int, live bool) []CompanyScores {
	if limit <= 0 {
		limit = DefaultLimit
	}
	start := time.Now()

	var results []CompanyScores
	if live {
		results = s.recommendLive(ctx, category, limit)
	} else {
		results = s.recommendCurated(ctx, category)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].OverallImpactScore > results[j].OverallImpactScore
	})
	if len(results) > limit {
		results = results[:limit]
	}

	s.log.Debug().
		Str("category", string(category)).
		Bool("live", live).
		Int("count", len(results)).
		Dur("duration", time.Since(start)).
		Msg("Recommendations built")

	return results
}

func (s *Service) recommendCurated(ctx context.Context, category domain.ImpactCategory) []CompanyScores {
	var companies []domain.Company
	for _, c := range CuratedCompanies() {
		if category == domain.CategoryBroad || c.HasCategory(category) {
			companies = append(companies, c)
		}
	}

	return s.collect(ctx, len(companies), func(ctx context.Context, i int) (CompanyScores, bool) {
		company := companies[i]
		quote, err := s.market.GetQuote(ctx, company.Symbol)
		if err != nil {
			s.log.Warn().Err(err).Str("symbol", company.Symbol).Msg("Quote unavailable for curated company")
		}
		scoring := s.scorer.ComputeImpactScores(ctx, company.Profile(), category)
		return CompanyScores{
			Company:            company,
			Quote:              quote,
			Scores:             scoring.Scores,
			OverallImpactScore: scoring.OverallImpactScore,
		}, true
	})
}

func (s *Service) recommendLive(ctx context.Context, category domain.ImpactCategory, limit int) []CompanyScores {
	symbols := LiveCandidates(category, limit)

	return s.collect(ctx, len(symbols), func(ctx context.Context, i int) (CompanyScores, bool) {
		symbol := symbols[i]
		info, err := s.market.GetCompanyInfo(ctx, symbol)
		if err != nil || info == nil {
			s.log.Warn().Err(err).Str("symbol", symbol).Msg("Skipping recommendation candidate")
			return CompanyScores{}, false
		}
		quote, err := s.market.GetQuote(ctx, symbol)
		if err != nil {
			s.log.Warn().Err(err).Str("symbol", symbol).Msg("Skipping recommendation candidate")
			return CompanyScores{}, false
		}
		scoring := s.scorer.ComputeImpactScores(ctx, *info, category)
		return CompanyScores{
			Company:            domain.CompanyFromProfile(*info),
			Quote:              quote,
			Scores:             scoring.Scores,
			OverallImpactScore: scoring.OverallImpactScore,
		}, true
	})
}

// collect runs build for indexes [0, n) with bounded concurrency and returns
// the successful results in index order.
func (s *Service) collect(ctx context.Context, n int, build func(ctx context.Context, i int) (CompanyScores, bool)) []CompanyScores {
	slots := make([]CompanyScores, n)
	ok := make([]bool, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			slots[i], ok[i] = build(gctx, i)
			return nil
		})
	}
	_ = g.Wait()

	results := make([]CompanyScores, 0, n)
	for i := range slots {
		if ok[i] {
			results = append(results, slots[i])
		}
	}
	return results
}

// LiveCandidates returns the symbols scored in live mode: the category funds
// followed by the leading popular symbols, without duplicates, capped at
// limit plus a small margin. Unknown categories use popular symbols only.
func LiveCandidates(category domain.ImpactCategory, limit int) []string {
	if limit <= 0 {
		limit = DefaultLimit
	}
	capacity := limit + liveCandidateSlack

	seen := make(map[string]bool)
	var symbols []string
	add := func(list []string) {
		for _, sym := range list {
			if len(symbols) == capacity {
				return
			}
			if !seen[sym] {
				seen[sym] = true
				symbols = append(symbols, sym)
			}
		}
	}
	add(categorySymbols[category])
	add(popularSymbols[:popularCandidates])
	return symbols
}
