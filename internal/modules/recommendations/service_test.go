package recommendations

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/aristath/impact/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMarket struct {
	failInfo  map[string]bool
	failQuote map[string]bool
}

func (f *fakeMarket) GetCompanyInfo(_ context.Context, symbol string) (*domain.CompanyProfile, error) {
	if f.failInfo[symbol] {
		return nil, errors.New("overview failed")
	}
	return &domain.CompanyProfile{Symbol: symbol, Name: symbol + " Corp", Sector: "Technology"}, nil
}

func (f *fakeMarket) GetQuote(_ context.Context, symbol string) (*domain.Quote, error) {
	if f.failQuote[symbol] {
		return nil, errors.New("quote failed")
	}
	return &domain.Quote{Symbol: symbol, Price: 100, Currency: "USD"}, nil
}

type fakeScorer struct {
	mu      sync.Mutex
	overall map[string]int
	calls   []string
}

func (f *fakeScorer) ComputeImpactScores(_ context.Context, profile domain.CompanyProfile, _ domain.ImpactCategory) domain.ScoreResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, profile.Symbol)
	score, ok := f.overall[profile.Symbol]
	if !ok {
		score = 50
	}
	return domain.ScoreResult{Scores: domain.UniformVector(score), OverallImpactScore: score}
}

func symbolsOf(results []CompanyScores) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Company.Symbol
	}
	return out
}

func TestCategories(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 6)
	for i, c := range cats {
		assert.Equal(t, domain.ImpactCategories[i], c.ID)
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Description)
	}
}

func TestCuratedCompanies_AreBroadWithFullBaseScores(t *testing.T) {
	for _, c := range CuratedCompanies() {
		assert.True(t, c.HasCategory(domain.CategoryBroad), c.Symbol)
		assert.Len(t, c.BaseScores, 8, c.Symbol)
	}
}

func TestRecommend_CuratedFiltersByCategoryAndSorts(t *testing.T) {
	scorer := &fakeScorer{overall: map[string]int{"GOOG": 70, "TSLA": 90, "MSFT": 80, "AAPL": 60, "ESGU": 85}}
	svc := NewService(&fakeMarket{}, scorer, zerolog.Nop())

	results := svc.Recommend(context.Background(), domain.CategoryEnvironmental, 0, false)

	assert.Equal(t, []string{"TSLA", "ESGU", "MSFT", "GOOG", "AAPL"}, symbolsOf(results))
	assert.Equal(t, 90, results[0].OverallImpactScore)
	assert.Equal(t, "tesla", results[0].Company.ID)
	require.NotNil(t, results[0].Quote)
	assert.Equal(t, 100.0, results[0].Quote.Price)
}

func TestRecommend_CuratedBroadIncludesEveryCompany(t *testing.T) {
	scorer := &fakeScorer{}
	svc := NewService(&fakeMarket{}, scorer, zerolog.Nop())

	results := svc.Recommend(context.Background(), domain.CategoryBroad, 3, false)

	assert.Len(t, results, 3)
	assert.Len(t, scorer.calls, len(CuratedCompanies()))
	// Equal scores keep curated order.
	assert.Equal(t, []string{"GOOG", "TSLA", "MSFT"}, symbolsOf(results))
}

func TestRecommend_CuratedUnknownCategoryIsEmpty(t *testing.T) {
	svc := NewService(&fakeMarket{}, &fakeScorer{}, zerolog.Nop())

	results := svc.Recommend(context.Background(), domain.ImpactCategory("crypto"), 8, false)

	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestRecommend_CuratedKeepsCompanyWhenQuoteFails(t *testing.T) {
	svc := NewService(&fakeMarket{failQuote: map[string]bool{"SHE": true}}, &fakeScorer{}, zerolog.Nop())

	results := svc.Recommend(context.Background(), domain.CategoryGenderEquality, 8, false)

	assert.ElementsMatch(t, []string{"MSFT", "SHE"}, symbolsOf(results))
}

func TestRecommend_LiveDropsFailuresAndTruncates(t *testing.T) {
	market := &fakeMarket{
		failInfo:  map[string]bool{"ESGV": true},
		failQuote: map[string]bool{"SUSA": true},
	}
	scorer := &fakeScorer{overall: map[string]int{"USSG": 99, "AAPL": 10}}
	svc := NewService(market, scorer, zerolog.Nop())

	results := svc.Recommend(context.Background(), domain.CategoryBroad, 2, true)

	require.Len(t, results, 2)
	assert.Equal(t, "USSG", results[0].Company.Symbol)
	assert.Equal(t, "ussg", results[0].Company.ID)
	assert.Equal(t, []domain.ImpactCategory{domain.CategoryBroad}, results[0].Company.ImpactCategories)
	assert.NotContains(t, scorer.calls, "ESGV")
	assert.NotContains(t, scorer.calls, "SUSA")
	// 7 candidates, 2 dropped
	assert.Len(t, scorer.calls, 5)
}

func TestLiveCandidates(t *testing.T) {
	tests := []struct {
		name     string
		category domain.ImpactCategory
		limit    int
		expected []string
	}{
		{
			name:     "category funds then popular, deduplicated",
			category: domain.CategoryEnvironmental,
			limit:    8,
			expected: []string{"ICLN", "QCLN", "TAN", "FAN", "PBW", "TSLA", "AAPL", "MSFT", "GOOG", "AMZN", "NVDA", "META", "JPM"},
		},
		{
			name:     "capped at limit plus five",
			category: domain.CategoryBroad,
			limit:    2,
			expected: []string{"ESGU", "ESGV", "SUSA", "SUSL", "USSG", "AAPL", "MSFT"},
		},
		{
			name:     "unknown category uses popular symbols only",
			category: domain.ImpactCategory("crypto"),
			limit:    20,
			expected: []string{"AAPL", "MSFT", "GOOG", "AMZN", "TSLA", "NVDA", "META", "JPM", "V", "JNJ"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LiveCandidates(tt.category, tt.limit))
		})
	}
}
