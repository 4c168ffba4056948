// Package domain provides core domain models and types.
package domain

import (
	"strings"
	"time"
)

// ImpactDimension is one of the eight fixed ESG-style axes scored 0-100.
type ImpactDimension string

const (
	DimensionEnvironmental          ImpactDimension = "environmental"
	DimensionLaborPractices         ImpactDimension = "laborPractices"
	DimensionSocialImpact           ImpactDimension = "socialImpact"
	DimensionGenderEquality         ImpactDimension = "genderEquality"
	DimensionPayEquality            ImpactDimension = "payEquality"
	DimensionCorporateImpact        ImpactDimension = "corporateImpact"
	DimensionShortTermProfitability ImpactDimension = "shortTermProfitability"
	DimensionLongTermProfitability  ImpactDimension = "longTermProfitability"
)

// ImpactDimensions lists every dimension in canonical order.
var ImpactDimensions = []ImpactDimension{
	DimensionEnvironmental,
	DimensionLaborPractices,
	DimensionSocialImpact,
	DimensionGenderEquality,
	DimensionPayEquality,
	DimensionCorporateImpact,
	DimensionShortTermProfitability,
	DimensionLongTermProfitability,
}

// ImpactCategory is a named view that aggregates a subset of dimensions.
// Values outside the known set are carried through and aggregated as broad.
type ImpactCategory string

const (
	CategoryBroad             ImpactCategory = "broad"
	CategoryEnvironmental     ImpactCategory = "environmental"
	CategorySocial            ImpactCategory = "social"
	CategoryRacialJustice     ImpactCategory = "racialJustice"
	CategoryWorkplaceEquality ImpactCategory = "workplaceEquality"
	CategoryGenderEquality    ImpactCategory = "genderEquality"
)

// ImpactCategories lists the known categories.
var ImpactCategories = []ImpactCategory{
	CategoryBroad,
	CategoryEnvironmental,
	CategorySocial,
	CategoryRacialJustice,
	CategoryWorkplaceEquality,
	CategoryGenderEquality,
}

// IsKnown reports whether c is one of the six defined categories.
func (c ImpactCategory) IsKnown() bool {
	for _, known := range ImpactCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Sentiment is the label attached to a news item.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// ParseSentiment accepts the three labels case-insensitively.
func ParseSentiment(s string) (Sentiment, bool) {
	switch Sentiment(strings.ToLower(strings.TrimSpace(s))) {
	case SentimentPositive:
		return SentimentPositive, true
	case SentimentNegative:
		return SentimentNegative, true
	case SentimentNeutral:
		return SentimentNeutral, true
	}
	return "", false
}

// CompanyProfile identifies the company being scored.
type CompanyProfile struct {
	MarketCap     *float64 `json:"marketCap,omitempty"`
	PERatio       *float64 `json:"peRatio,omitempty"`
	DividendYield *float64 `json:"dividendYield,omitempty"`
	Symbol        string   `json:"symbol"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Sector        string   `json:"sector"`
	Industry      string   `json:"industry"`
	Logo          string   `json:"logo,omitempty"`
}

// NormalizeSymbol canonicalizes a ticker symbol.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// Normalized returns a copy of the profile with a canonical symbol.
func (p CompanyProfile) Normalized() CompanyProfile {
	p.Symbol = NormalizeSymbol(p.Symbol)
	return p
}

// DegenerateProfile is returned for symbols no provider knows about.
func DegenerateProfile(symbol string) CompanyProfile {
	symbol = NormalizeSymbol(symbol)
	return CompanyProfile{
		Symbol:      symbol,
		Name:        symbol,
		Description: "Stock symbol " + symbol,
		Sector:      "Unknown",
		Industry:    "Unknown",
	}
}

// NewsItem is a single article about a company.
type NewsItem struct {
	PublishedAt time.Time `json:"publishedAt"`
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	Sentiment   Sentiment `json:"sentiment"`
}

// Quote is the latest price for a symbol.
type Quote struct {
	LastUpdated   time.Time `json:"lastUpdated"`
	Symbol        string    `json:"symbol"`
	Currency      string    `json:"currency"`
	Price         float64   `json:"price"`
	ChangePercent float64   `json:"changePercent"`
}

// HistoricalPoint is one OHLCV bar. Date is formatted YYYY-MM-DD.
type HistoricalPoint struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// TimePeriod selects the length of a historical series.
type TimePeriod string

const (
	Period1D TimePeriod = "1D"
	Period1W TimePeriod = "1W"
	Period1M TimePeriod = "1M"
	Period6M TimePeriod = "6M"
	Period1Y TimePeriod = "1Y"
	Period5Y TimePeriod = "5Y"
)

var periodDays = map[TimePeriod]int{
	Period1D: 1,
	Period1W: 7,
	Period1M: 30,
	Period6M: 180,
	Period1Y: 365,
	Period5Y: 1825,
}

// ParseTimePeriod returns the period for s, or 1M when s is not a known period.
func ParseTimePeriod(s string) TimePeriod {
	if _, ok := periodDays[TimePeriod(s)]; ok {
		return TimePeriod(s)
	}
	return Period1M
}

// Days returns the number of calendar days the period covers.
func (p TimePeriod) Days() int {
	if d, ok := periodDays[p]; ok {
		return d
	}
	return periodDays[Period1M]
}

// IsLongTerm reports whether the period uses weekly bars.
func (p TimePeriod) IsLongTerm() bool {
	return p == Period1Y || p == Period5Y
}

// ScoreResult is what the scoring pipeline returns to its callers.
type ScoreResult struct {
	Scores             ScoreVector `json:"scores"`
	OverallImpactScore int         `json:"overallImpactScore"`
	News               []NewsItem  `json:"news"`
}

// Company is the display record for a company or fund in listings.
type Company struct {
	BaseScores       map[ImpactDimension]int `json:"baseScores"`
	ID               string                  `json:"id"`
	Symbol           string                  `json:"symbol"`
	Name             string                  `json:"name"`
	Description      string                  `json:"description"`
	Sector           string                  `json:"sector"`
	Logo             string                  `json:"logo,omitempty"`
	ImpactCategories []ImpactCategory        `json:"impactCategories"`
}

// Profile returns the scoring profile for c. Curated records carry no
// industry, so the sector stands in for it.
func (c Company) Profile() CompanyProfile {
	return CompanyProfile{
		Symbol:      c.Symbol,
		Name:        c.Name,
		Description: c.Description,
		Sector:      c.Sector,
		Industry:    c.Sector,
		Logo:        c.Logo,
	}
}

// CompanyFromProfile builds a listing record for a company resolved at
// request time. Such companies are only tagged broad.
func CompanyFromProfile(p CompanyProfile) Company {
	return Company{
		ID:               strings.ToLower(p.Symbol),
		Symbol:           p.Symbol,
		Name:             p.Name,
		Description:      p.Description,
		Sector:           p.Sector,
		Logo:             p.Logo,
		ImpactCategories: []ImpactCategory{CategoryBroad},
		BaseScores:       map[ImpactDimension]int{},
	}
}

// HasCategory reports whether c is tagged with category.
func (c Company) HasCategory(category ImpactCategory) bool {
	for _, tagged := range c.ImpactCategories {
		if tagged == category {
			return true
		}
	}
	return false
}
