package domain

import "context"

// NewsGateway fetches recent company news.
// Implementations absorb provider failures: FetchNews always returns a
// non-empty list (live, cached or a deterministic fallback set) and
// RefineSentiment returns its input unchanged when refinement is unavailable.
type NewsGateway interface {
	FetchNews(ctx context.Context, companyName, symbol string, limit int) []NewsItem
	RefineSentiment(ctx context.Context, items []NewsItem, companyName string) []NewsItem
}

// MarketDataProvider supplies company profiles, quotes and price history.
// Unknown symbols yield a degenerate profile rather than an error.
type MarketDataProvider interface {
	GetCompanyInfo(ctx context.Context, symbol string) (*CompanyProfile, error)
	GetQuote(ctx context.Context, symbol string) (*Quote, error)
	GetHistoricalData(ctx context.Context, symbol string, period TimePeriod) ([]HistoricalPoint, error)
}

// GenerateOptions tunes a single text generation request.
type GenerateOptions struct {
	Temperature     float32
	MaxOutputTokens int32
}

// TextGenerator is a generative text service.
// Enabled reports whether a credential is configured; Generate must not be
// called when it returns false.
type TextGenerator interface {
	Enabled() bool
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}
