// Package handlers provides HTTP handlers for company details, search and history.
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aristath/impact/internal/domain"
	"github.com/aristath/impact/internal/modules/market"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// MarketData is the market data provider used by the company routes.
type MarketData interface {
	GetCompanyInfo(ctx context.Context, symbol string) (*domain.CompanyProfile, error)
	GetQuote(ctx context.Context, symbol string) (*domain.Quote, error)
	GetHistoricalData(ctx context.Context, symbol string, period domain.TimePeriod) ([]domain.HistoricalPoint, error)
	SearchCompanies(ctx context.Context, query string) []market.SearchResult
}

// ImpactScorer computes and invalidates impact scores.
type ImpactScorer interface {
	ComputeImpactScores(ctx context.Context, profile domain.CompanyProfile, category domain.ImpactCategory) domain.ScoreResult
	ClearScoreCache(symbol string) int
}

// Handler handles company requests
type Handler struct {
	market MarketData
	scorer ImpactScorer
	log    zerolog.Logger
}

// NewHandler creates a new company handler
func NewHandler(market MarketData, scorer ImpactScorer, log zerolog.Logger) *Handler {
	return &Handler{
		market: market,
		scorer: scorer,
		log:    log.With().Str("handler", "company").Logger(),
	}
}

// ArticleSnippet is a news item shaped for the company page.
type ArticleSnippet struct {
	PublishedAt time.Time        `json:"publishedAt"`
	ID          string           `json:"id"`
	CompanyID   string           `json:"companyId"`
	Title       string           `json:"title"`
	Summary     string           `json:"summary"`
	URL         string           `json:"url"`
	Sentiment   domain.Sentiment `json:"sentiment"`
	Source      string           `json:"source"`
	ImpactTags  []string         `json:"impactTags"`
}

// CompanyDetailsResponse is the body of GET /api/company/{symbol}
type CompanyDetailsResponse struct {
	Info               *domain.CompanyProfile   `json:"info"`
	Quote              *domain.Quote            `json:"quote"`
	Company            domain.Company           `json:"company"`
	ImpactCategoryUsed domain.ImpactCategory    `json:"impactCategoryUsed"`
	Period             domain.TimePeriod        `json:"period"`
	Articles           []ArticleSnippet         `json:"articles"`
	HistoricalData     []domain.HistoricalPoint `json:"historicalData"`
	Summary            market.Summary           `json:"summary"`
	Scores             domain.ScoreVector       `json:"scores"`
	OverallImpactScore int                      `json:"overallImpactScore"`
}

// HistoryResponse is the body of GET /api/company/{symbol}/history
type HistoryResponse struct {
	Symbol string                   `json:"symbol"`
	Period domain.TimePeriod        `json:"period"`
	Data   []domain.HistoricalPoint `json:"data"`
}

// HandleClearCache handles DELETE /api/company/cache?symbol=
func (h *Handler) HandleClearCache(w http.ResponseWriter, r *http.Request) {
	symbol := strings.TrimSpace(r.URL.Query().Get("symbol"))
	removed := h.scorer.ClearScoreCache(symbol)

	message := "Entire score cache cleared"
	if symbol != "" {
		message = fmt.Sprintf("Cache cleared for %s", symbol)
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": message,
		"removed": removed,
	})
}

// HandleSearch handles GET /api/company/search?q=
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		h.writeJSON(w, http.StatusOK, []market.SearchResult{})
		return
	}

	h.writeJSON(w, http.StatusOK, h.market.SearchCompanies(r.Context(), query))
}

// HandleGetCompany handles GET /api/company/{symbol}?impact=&period=
func (h *Handler) HandleGetCompany(w http.ResponseWriter, r *http.Request) {
	symbol := domain.NormalizeSymbol(chi.URLParam(r, "symbol"))
	query := r.URL.Query()

	category := domain.ImpactCategory(query.Get("impact"))
	if category == "" {
		category = domain.CategoryBroad
	}
	period := domain.ParseTimePeriod(query.Get("period"))

	info, err := h.market.GetCompanyInfo(r.Context(), symbol)
	if err != nil || info == nil {
		h.log.Warn().Err(err).Str("symbol", symbol).Msg("Company not found")
		h.writeError(w, http.StatusNotFound, "Company not found")
		return
	}

	var (
		quote   *domain.Quote
		history []domain.HistoricalPoint
		scoring domain.ScoreResult
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		quote, err = h.market.GetQuote(ctx, symbol)
		return err
	})
	g.Go(func() error {
		var err error
		history, err = h.market.GetHistoricalData(ctx, symbol, period)
		return err
	})
	g.Go(func() error {
		scoring = h.scorer.ComputeImpactScores(ctx, *info, category)
		return nil
	})
	if err := g.Wait(); err != nil {
		h.log.Error().Err(err).Str("symbol", symbol).Msg("Failed to load company details")
		h.writeError(w, http.StatusInternalServerError, "Failed to load company details")
		return
	}

	companyID := strings.ToLower(symbol)
	articles := make([]ArticleSnippet, 0, len(scoring.News))
	for _, n := range scoring.News {
		articles = append(articles, articleSnippet(companyID, n))
	}

	h.writeJSON(w, http.StatusOK, CompanyDetailsResponse{
		Company:            domain.CompanyFromProfile(*info),
		Info:               info,
		Quote:              quote,
		Scores:             scoring.Scores,
		OverallImpactScore: scoring.OverallImpactScore,
		ImpactCategoryUsed: category,
		Articles:           articles,
		HistoricalData:     history,
		Summary:            market.Summarize(history),
		Period:             period,
	})
}

// articleSnippet maps a news item for display. The page has no neutral
// styling, so neutral items show as positive.
func articleSnippet(companyID string, n domain.NewsItem) ArticleSnippet {
	sentiment := n.Sentiment
	if sentiment == domain.SentimentNeutral {
		sentiment = domain.SentimentPositive
	}
	return ArticleSnippet{
		ID:          n.ID,
		CompanyID:   companyID,
		Title:       n.Title,
		Summary:     n.Description,
		URL:         n.URL,
		Sentiment:   sentiment,
		ImpactTags:  []string{},
		Source:      n.Source,
		PublishedAt: n.PublishedAt,
	}
}

// HandleGetHistory handles GET /api/company/{symbol}/history?period=
func (h *Handler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	symbol := domain.NormalizeSymbol(chi.URLParam(r, "symbol"))
	period := domain.ParseTimePeriod(r.URL.Query().Get("period"))

	data, err := h.market.GetHistoricalData(r.Context(), symbol, period)
	if err != nil {
		h.log.Error().Err(err).Str("symbol", symbol).Msg("Failed to load historical data")
		h.writeError(w, http.StatusInternalServerError, "Failed to load historical data")
		return
	}

	h.writeJSON(w, http.StatusOK, HistoryResponse{Symbol: symbol, Period: period, Data: data})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
