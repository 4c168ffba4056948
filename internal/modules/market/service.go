// Package market provides company profiles, quotes and price history backed
// by Alpha Vantage, with TTL caching and deterministic mock fallbacks.
package market

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/aristath/impact/internal/clientdata"
	"github.com/aristath/impact/internal/clients/alphavantage"
	"github.com/aristath/impact/internal/domain"
	"github.com/rs/zerolog"
)

// DataClient is the subset of the Alpha Vantage client the service uses.
type DataClient interface {
	Enabled() bool
	GetGlobalQuote(ctx context.Context, symbol string) (*alphavantage.GlobalQuote, error)
	GetDailyTimeSeries(ctx context.Context, symbol string, full bool) ([]alphavantage.DailyPrice, error)
	GetWeeklyTimeSeries(ctx context.Context, symbol string, full bool) ([]alphavantage.DailyPrice, error)
	GetCompanyOverview(ctx context.Context, symbol string) (*alphavantage.CompanyOverview, error)
	SearchSymbols(ctx context.Context, keywords string) ([]alphavantage.SymbolMatch, error)
}

// SearchResult is one company search hit.
type SearchResult struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// TTLs configures cache lifetimes per data type.
type TTLs struct {
	Quote       time.Duration
	History     time.Duration
	CompanyInfo time.Duration
}

// DefaultTTLs returns the standard cache lifetimes.
func DefaultTTLs() TTLs {
	return TTLs{
		Quote:       clientdata.TTLQuote,
		History:     clientdata.TTLHistory,
		CompanyInfo: clientdata.TTLCompanyInfo,
	}
}

// Service implements domain.MarketDataProvider. None of its methods fail for
// a non-empty symbol: provider errors degrade to mock data.
type Service struct {
	client DataClient
	cache  *clientdata.Repository
	ttls   TTLs
	log    zerolog.Logger
	now    func() time.Time
}

var _ domain.MarketDataProvider = (*Service)(nil)

// Option configures a Service.
type Option func(*Service)

// WithTTLs overrides cache lifetimes. Zero values keep the defaults.
func WithTTLs(ttls TTLs) Option {
	return func(s *Service) {
		if ttls.Quote > 0 {
			s.ttls.Quote = ttls.Quote
		}
		if ttls.History > 0 {
			s.ttls.History = ttls.History
		}
		if ttls.CompanyInfo > 0 {
			s.ttls.CompanyInfo = ttls.CompanyInfo
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a market data service. client may be nil, in which case
// all data is mocked.
func NewService(client DataClient, cache *clientdata.Repository, log zerolog.Logger, opts ...Option) *Service {
	s := &Service{
		client: client,
		cache:  cache,
		ttls:   DefaultTTLs(),
		log:    log.With().Str("service", "market").Logger(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) live() bool {
	return s.client != nil && s.client.Enabled()
}

func (s *Service) store(table, key string, value any, ttl time.Duration) {
	if err := s.cache.Store(table, key, value, ttl); err != nil {
		s.log.Warn().Err(err).Str("table", table).Msg("Failed to cache market data")
	}
}

// GetCompanyInfo returns the profile for symbol.
func (s *Service) GetCompanyInfo(ctx context.Context, symbol string) (*domain.CompanyProfile, error) {
	symbol = domain.NormalizeSymbol(symbol)

	if p, ok := clientdata.GetFreshAs[domain.CompanyProfile](s.cache, clientdata.TableCompanyInfo, symbol); ok {
		return &p, nil
	}

	if !s.live() {
		p := mockProfile(symbol)
		return &p, nil
	}

	overview, err := s.client.GetCompanyOverview(ctx, symbol)
	if err != nil {
		if p, ok := clientdata.GetStaleAs[domain.CompanyProfile](s.cache, clientdata.TableCompanyInfo, symbol); ok {
			s.log.Warn().Err(err).Str("symbol", symbol).Msg("Overview failed, using stale profile")
			return &p, nil
		}
		s.log.Info().Err(err).Str("symbol", symbol).Msg("No company info, using mock")
		p := mockProfile(symbol)
		return &p, nil
	}

	p := profileFromOverview(symbol, overview)
	s.store(clientdata.TableCompanyInfo, symbol, p, s.ttls.CompanyInfo)
	return &p, nil
}

func profileFromOverview(symbol string, o *alphavantage.CompanyOverview) domain.CompanyProfile {
	p := domain.CompanyProfile{
		Symbol:        domain.NormalizeSymbol(o.Symbol),
		Name:          o.Name,
		Description:   o.Description,
		Sector:        o.Sector,
		Industry:      o.Industry,
		PERatio:       o.PERatio,
		DividendYield: o.DividendYield,
	}
	if p.Name == "" {
		p.Name = symbol
	}
	if p.Sector == "" {
		p.Sector = "Unknown"
	}
	if p.Industry == "" {
		p.Industry = "Unknown"
	}
	if o.MarketCapitalization > 0 {
		p.MarketCap = floatPtr(float64(o.MarketCapitalization))
	}
	if mock, ok := mockProfiles[symbol]; ok {
		p.Logo = mock.Logo
	}
	return p
}

// GetQuote returns the latest quote for symbol.
func (s *Service) GetQuote(ctx context.Context, symbol string) (*domain.Quote, error) {
	symbol = domain.NormalizeSymbol(symbol)

	if q, ok := clientdata.GetFreshAs[domain.Quote](s.cache, clientdata.TableQuotes, symbol); ok {
		return &q, nil
	}

	if !s.live() {
		return mockQuote(symbol, mockPrice(symbol), s.now()), nil
	}

	raw, err := s.client.GetGlobalQuote(ctx, symbol)
	if err != nil || raw.Price <= 0 {
		if q, ok := clientdata.GetStaleAs[domain.Quote](s.cache, clientdata.TableQuotes, symbol); ok {
			return &q, nil
		}
		s.log.Info().Err(err).Str("symbol", symbol).Msg("No quote data, using mock")
		return mockQuote(symbol, mockPrice(symbol), s.now()), nil
	}

	q := domain.Quote{
		Symbol:        symbol,
		Price:         raw.Price,
		Currency:      "USD",
		ChangePercent: raw.ChangePercent,
		LastUpdated:   s.now(),
	}
	s.store(clientdata.TableQuotes, symbol, q, s.ttls.Quote)
	return &q, nil
}

// GetHistoricalData returns bars covering period, oldest first.
func (s *Service) GetHistoricalData(ctx context.Context, symbol string, period domain.TimePeriod) ([]domain.HistoricalPoint, error) {
	symbol = domain.NormalizeSymbol(symbol)
	period = domain.ParseTimePeriod(string(period))
	cacheKey := symbol + "-" + string(period)

	if points, ok := clientdata.GetFreshAs[[]domain.HistoricalPoint](s.cache, clientdata.TableHistory, cacheKey); ok {
		return clonePoints(points), nil
	}

	mock := func() []domain.HistoricalPoint {
		price := mockPrice(symbol)
		if q, err := s.GetQuote(ctx, symbol); err == nil && q.Price > 0 {
			price = q.Price
		}
		return mockHistory(symbol, price, period, s.now())
	}

	if !s.live() {
		return mock(), nil
	}

	var (
		bars []alphavantage.DailyPrice
		err  error
	)
	if period.IsLongTerm() {
		bars, err = s.client.GetWeeklyTimeSeries(ctx, symbol, period == domain.Period5Y)
	} else {
		bars, err = s.client.GetDailyTimeSeries(ctx, symbol, false)
	}
	if err != nil {
		if points, ok := clientdata.GetStaleAs[[]domain.HistoricalPoint](s.cache, clientdata.TableHistory, cacheKey); ok {
			return clonePoints(points), nil
		}
		s.log.Info().Err(err).Str("symbol", symbol).Msg("No historical data, using mock")
		return mock(), nil
	}

	points := filterBars(bars, s.now().AddDate(0, 0, -period.Days()))
	if len(points) == 0 {
		return mock(), nil
	}

	s.store(clientdata.TableHistory, cacheKey, clonePoints(points), s.ttls.History)
	return points, nil
}

// filterBars keeps bars on or after cutoff's date, sorted oldest first.
func filterBars(bars []alphavantage.DailyPrice, cutoff time.Time) []domain.HistoricalPoint {
	cutoffDay := time.Date(cutoff.Year(), cutoff.Month(), cutoff.Day(), 0, 0, 0, 0, time.UTC)

	points := make([]domain.HistoricalPoint, 0, len(bars))
	for _, b := range bars {
		if b.Date.Before(cutoffDay) {
			continue
		}
		points = append(points, domain.HistoricalPoint{
			Date:   b.Date.Format("2006-01-02"),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}

// SearchCompanies returns companies whose symbol or name matches query.
func (s *Service) SearchCompanies(ctx context.Context, query string) []SearchResult {
	query = strings.TrimSpace(query)
	if query == "" {
		return []SearchResult{}
	}

	if !s.live() {
		q := strings.ToLower(query)
		results := []SearchResult{}
		for _, symbol := range mockProfileOrder {
			p := mockProfiles[symbol]
			if strings.Contains(strings.ToLower(p.Symbol), q) || strings.Contains(strings.ToLower(p.Name), q) {
				results = append(results, SearchResult{Symbol: p.Symbol, Name: p.Name})
			}
		}
		return results
	}

	matches, err := s.client.SearchSymbols(ctx, query)
	if err != nil {
		s.log.Warn().Err(err).Str("query", query).Msg("Symbol search failed")
		return []SearchResult{}
	}

	results := make([]SearchResult, 0, len(matches))
	for _, m := range matches {
		results = append(results, SearchResult{Symbol: m.Symbol, Name: m.Name})
	}
	return results
}

func clonePoints(points []domain.HistoricalPoint) []domain.HistoricalPoint {
	out := make([]domain.HistoricalPoint, len(points))
	copy(out, points)
	return out
}
