package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aristath/impact/internal/domain"
	"github.com/aristath/impact/internal/modules/market"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMarketData struct {
	mock.Mock
}

func (m *MockMarketData) GetCompanyInfo(ctx context.Context, symbol string) (*domain.CompanyProfile, error) {
	args := m.Called(ctx, symbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyProfile), args.Error(1)
}

func (m *MockMarketData) GetQuote(ctx context.Context, symbol string) (*domain.Quote, error) {
	args := m.Called(ctx, symbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

func (m *MockMarketData) GetHistoricalData(ctx context.Context, symbol string, period domain.TimePeriod) ([]domain.HistoricalPoint, error) {
	args := m.Called(ctx, symbol, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HistoricalPoint), args.Error(1)
}

func (m *MockMarketData) SearchCompanies(ctx context.Context, query string) []market.SearchResult {
	args := m.Called(ctx, query)
	return args.Get(0).([]market.SearchResult)
}

type MockImpactScorer struct {
	mock.Mock
}

func (m *MockImpactScorer) ComputeImpactScores(ctx context.Context, profile domain.CompanyProfile, category domain.ImpactCategory) domain.ScoreResult {
	args := m.Called(ctx, profile, category)
	return args.Get(0).(domain.ScoreResult)
}

func (m *MockImpactScorer) ClearScoreCache(symbol string) int {
	return m.Called(symbol).Int(0)
}

func setupRouter(md *MockMarketData, scorer *MockImpactScorer) *chi.Mux {
	handler := NewHandler(md, scorer, zerolog.Nop())
	router := chi.NewRouter()
	router.Route("/api", handler.RegisterRoutes)
	return router
}

func serve(router http.Handler, method, url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterRoutes(t *testing.T) {
	handler := NewHandler(&MockMarketData{}, &MockImpactScorer{}, zerolog.Nop())
	router := chi.NewRouter()

	assert.NotPanics(t, func() {
		handler.RegisterRoutes(router)
	})
	assert.NotEmpty(t, router.Routes())
}

func TestHandleGetCompany(t *testing.T) {
	md := &MockMarketData{}
	scorer := &MockImpactScorer{}
	profile := &domain.CompanyProfile{Symbol: "TSLA", Name: "Tesla Inc.", Sector: "Automotive", Logo: "⚡"}
	published := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	history := []domain.HistoricalPoint{
		{Date: "2024-02-28", Open: 100, High: 102, Low: 99, Close: 100},
		{Date: "2024-02-29", Open: 100, High: 111, Low: 100, Close: 110},
	}

	md.On("GetCompanyInfo", mock.Anything, "TSLA").Return(profile, nil)
	md.On("GetQuote", mock.Anything, "TSLA").Return(&domain.Quote{Symbol: "TSLA", Price: 110}, nil)
	md.On("GetHistoricalData", mock.Anything, "TSLA", domain.Period6M).Return(history, nil)
	scorer.On("ComputeImpactScores", mock.Anything, *profile, domain.CategorySocial).Return(domain.ScoreResult{
		Scores:             domain.UniformVector(65),
		OverallImpactScore: 65,
		News: []domain.NewsItem{
			{ID: "n1", Title: "Neutral piece", Sentiment: domain.SentimentNeutral, Source: "Reuters", PublishedAt: published},
			{ID: "n2", Title: "Bad piece", Description: "details", Sentiment: domain.SentimentNegative},
		},
	})

	w := serve(setupRouter(md, scorer), http.MethodGet, "/api/company/tsla?impact=social&period=6M")

	require.Equal(t, http.StatusOK, w.Code)
	var resp CompanyDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "tsla", resp.Company.ID)
	assert.Equal(t, "Tesla Inc.", resp.Info.Name)
	assert.Equal(t, 110.0, resp.Quote.Price)
	assert.Equal(t, 65, resp.OverallImpactScore)
	assert.Equal(t, domain.CategorySocial, resp.ImpactCategoryUsed)
	assert.Equal(t, domain.Period6M, resp.Period)
	assert.Len(t, resp.HistoricalData, 2)
	assert.Equal(t, 10.0, resp.Summary.ChangePercent)

	require.Len(t, resp.Articles, 2)
	assert.Equal(t, domain.SentimentPositive, resp.Articles[0].Sentiment, "neutral shown as positive")
	assert.Equal(t, "tsla", resp.Articles[0].CompanyID)
	assert.True(t, published.Equal(resp.Articles[0].PublishedAt))
	assert.Equal(t, domain.SentimentNegative, resp.Articles[1].Sentiment)
	assert.Equal(t, "details", resp.Articles[1].Summary)
	assert.NotNil(t, resp.Articles[1].ImpactTags)

	md.AssertExpectations(t)
	scorer.AssertExpectations(t)
}

func TestHandleGetCompany_Defaults(t *testing.T) {
	md := &MockMarketData{}
	scorer := &MockImpactScorer{}
	profile := &domain.CompanyProfile{Symbol: "AAPL", Name: "Apple Inc.", Sector: "Technology"}

	md.On("GetCompanyInfo", mock.Anything, "AAPL").Return(profile, nil)
	md.On("GetQuote", mock.Anything, "AAPL").Return(&domain.Quote{Symbol: "AAPL", Price: 180}, nil)
	md.On("GetHistoricalData", mock.Anything, "AAPL", domain.Period1M).Return([]domain.HistoricalPoint{}, nil)
	scorer.On("ComputeImpactScores", mock.Anything, *profile, domain.CategoryBroad).Return(domain.ScoreResult{Scores: domain.UniformVector(80), OverallImpactScore: 80})

	w := serve(setupRouter(md, scorer), http.MethodGet, "/api/company/AAPL?period=10Y")

	require.Equal(t, http.StatusOK, w.Code)
	var resp CompanyDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.CategoryBroad, resp.ImpactCategoryUsed)
	assert.Equal(t, domain.Period1M, resp.Period)
	assert.NotNil(t, resp.Articles)
	assert.Empty(t, resp.Articles)
}

func TestHandleGetCompany_UnknownImpactPassedThrough(t *testing.T) {
	md := &MockMarketData{}
	scorer := &MockImpactScorer{}
	profile := &domain.CompanyProfile{Symbol: "AAPL", Name: "Apple Inc.", Sector: "Technology"}

	md.On("GetCompanyInfo", mock.Anything, "AAPL").Return(profile, nil)
	md.On("GetQuote", mock.Anything, "AAPL").Return(&domain.Quote{Symbol: "AAPL"}, nil)
	md.On("GetHistoricalData", mock.Anything, "AAPL", domain.Period1M).Return([]domain.HistoricalPoint{}, nil)
	scorer.On("ComputeImpactScores", mock.Anything, *profile, domain.ImpactCategory("crypto")).Return(domain.ScoreResult{OverallImpactScore: 80})

	w := serve(setupRouter(md, scorer), http.MethodGet, "/api/company/AAPL?impact=crypto")

	require.Equal(t, http.StatusOK, w.Code)
	scorer.AssertExpectations(t)
}

func TestHandleGetCompany_NotFound(t *testing.T) {
	md := &MockMarketData{}
	md.On("GetCompanyInfo", mock.Anything, "NOPE").Return(nil, errors.New("no overview"))

	w := serve(setupRouter(md, &MockImpactScorer{}), http.MethodGet, "/api/company/NOPE")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Company not found"}`, w.Body.String())
}

func TestHandleGetCompany_ProviderFault(t *testing.T) {
	md := &MockMarketData{}
	scorer := &MockImpactScorer{}
	profile := &domain.CompanyProfile{Symbol: "AAPL", Name: "Apple Inc."}

	md.On("GetCompanyInfo", mock.Anything, "AAPL").Return(profile, nil)
	md.On("GetQuote", mock.Anything, "AAPL").Return(nil, errors.New("boom"))
	md.On("GetHistoricalData", mock.Anything, "AAPL", domain.Period1M).Return([]domain.HistoricalPoint{}, nil)
	scorer.On("ComputeImpactScores", mock.Anything, *profile, domain.CategoryBroad).Return(domain.ScoreResult{})

	w := serve(setupRouter(md, scorer), http.MethodGet, "/api/company/AAPL")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to load company details"}`, w.Body.String())
}

func TestHandleGetHistory(t *testing.T) {
	md := &MockMarketData{}
	points := []domain.HistoricalPoint{{Date: "2024-03-01", Close: 10}}
	md.On("GetHistoricalData", mock.Anything, "MSFT", domain.Period1Y).Return(points, nil)

	w := serve(setupRouter(md, &MockImpactScorer{}), http.MethodGet, "/api/company/msft/history?period=1Y")

	require.Equal(t, http.StatusOK, w.Code)
	var resp HistoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "MSFT", resp.Symbol)
	assert.Equal(t, domain.Period1Y, resp.Period)
	assert.Equal(t, points, resp.Data)
}

func TestHandleGetHistory_Error(t *testing.T) {
	md := &MockMarketData{}
	md.On("GetHistoricalData", mock.Anything, "MSFT", domain.Period1M).Return(nil, errors.New("boom"))

	w := serve(setupRouter(md, &MockImpactScorer{}), http.MethodGet, "/api/company/MSFT/history")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandleSearch(t *testing.T) {
	md := &MockMarketData{}
	md.On("SearchCompanies", mock.Anything, "app").Return([]market.SearchResult{{Symbol: "AAPL", Name: "Apple Inc."}})
	router := setupRouter(md, &MockImpactScorer{})

	w := serve(router, http.MethodGet, "/api/company/search?q=app")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"symbol":"AAPL","name":"Apple Inc."}]`, w.Body.String())

	w = serve(router, http.MethodGet, "/api/company/search")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
	md.AssertNumberOfCalls(t, "SearchCompanies", 1)
}

func TestHandleClearCache(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		symbol  string
		message string
	}{
		{"single symbol", "/api/company/cache?symbol=AAPL", "AAPL", "Cache cleared for AAPL"},
		{"everything", "/api/company/cache", "", "Entire score cache cleared"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scorer := &MockImpactScorer{}
			scorer.On("ClearScoreCache", tt.symbol).Return(2)

			w := serve(setupRouter(&MockMarketData{}, scorer), http.MethodDelete, tt.url)

			require.Equal(t, http.StatusOK, w.Code)
			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, true, resp["success"])
			assert.Equal(t, tt.message, resp["message"])
			assert.Equal(t, 2.0, resp["removed"])
			scorer.AssertExpectations(t)
		})
	}
}
