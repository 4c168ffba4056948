package market

import (
	"math"
	"time"

	"github.com/aristath/impact/internal/domain"
)

func floatPtr(v float64) *float64 { return &v }

// mockProfiles are served when the market data API is unavailable.
var mockProfiles = map[string]domain.CompanyProfile{
	"GOOG": {
		Symbol:      "GOOG",
		Name:        "Alphabet Inc.",
		Description: "Parent company of Google, specializing in Internet-related services and products.",
		Sector:      "Technology",
		Industry:    "Internet Content & Information",
		Logo:        "🔍",
		MarketCap:   floatPtr(2100000000000),
		PERatio:     floatPtr(25.4),
	},
	"TSLA": {
		Symbol:      "TSLA",
		Name:        "Tesla Inc.",
		Description: "Electric vehicle and clean energy company.",
		Sector:      "Automotive",
		Industry:    "Auto Manufacturers",
		Logo:        "⚡",
		MarketCap:   floatPtr(700000000000),
		PERatio:     floatPtr(62.8),
	},
	"MSFT": {
		Symbol:      "MSFT",
		Name:        "Microsoft Corporation",
		Description: "Technology corporation that develops and supports software, services, devices, and solutions.",
		Sector:      "Technology",
		Industry:    "Software—Infrastructure",
		Logo:        "🪟",
		MarketCap:   floatPtr(3000000000000),
		PERatio:     floatPtr(35.2),
	},
	"AAPL": {
		Symbol:      "AAPL",
		Name:        "Apple Inc.",
		Description: "Consumer electronics, software and services company.",
		Sector:      "Technology",
		Industry:    "Consumer Electronics",
		Logo:        "🍎",
		MarketCap:   floatPtr(2800000000000),
		PERatio:     floatPtr(28.9),
	},
	"NVDA": {
		Symbol:      "NVDA",
		Name:        "NVIDIA Corporation",
		Description: "Technology company that designs graphics processing units and system-on-chip units.",
		Sector:      "Technology",
		Industry:    "Semiconductors",
		Logo:        "💚",
		MarketCap:   floatPtr(3200000000000),
		PERatio:     floatPtr(65.3),
	},
}

// mockProfileOrder fixes the iteration order for mock search results.
var mockProfileOrder = []string{"GOOG", "TSLA", "MSFT", "AAPL", "NVDA"}

var mockPrices = map[string]float64{
	"GOOG": 178.35,
	"TSLA": 248.50,
	"MSFT": 425.22,
	"AAPL": 195.89,
	"NVDA": 140.14,
	"SHE":  85.14,
	"NACP": 32.85,
	"ESGU": 112.47,
	"ICLN": 14.23,
	"SUSA": 89.45,
	"ESGV": 82.33,
}

// seededRandom is a deterministic [0,1) sequence derived from a symbol, so
// the same symbol always produces the same mock data.
type seededRandom struct {
	seed int32
}

func newSeededRandom(symbol string) *seededRandom {
	var seed int32
	for _, c := range symbol {
		seed = (seed << 5) - seed + int32(c)
	}
	return &seededRandom{seed: seed}
}

// next returns the value for offset n and advances the sequence.
func (r *seededRandom) next(n int) float64 {
	x := math.Sin(float64(r.seed)+float64(n)) * 10000
	r.seed++
	return x - math.Floor(x)
}

func mockProfile(symbol string) domain.CompanyProfile {
	if p, ok := mockProfiles[symbol]; ok {
		return p
	}
	return domain.DegenerateProfile(symbol)
}

// mockPrice returns the listed price for known symbols and a stable price in
// [50, 250) otherwise.
func mockPrice(symbol string) float64 {
	if p, ok := mockPrices[symbol]; ok {
		return p
	}
	return round2(50 + newSeededRandom(symbol).next(0)*200)
}

func mockQuote(symbol string, price float64, now time.Time) *domain.Quote {
	return &domain.Quote{
		Symbol:        symbol,
		Price:         price,
		Currency:      "USD",
		ChangePercent: round2((newSeededRandom(symbol).next(1) - 0.5) * 4),
		LastUpdated:   now,
	}
}

// mockHistory generates one bar per day for the period, drifting from a
// seeded starting point toward currentPrice.
func mockHistory(symbol string, currentPrice float64, period domain.TimePeriod, now time.Time) []domain.HistoricalPoint {
	days := period.Days()
	rnd := newSeededRandom(symbol)

	price := currentPrice * (0.7 + rnd.next(0)*0.4)
	trend := (currentPrice - price) / float64(days)

	points := make([]domain.HistoricalPoint, 0, days+1)
	for i := days; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)

		volatility := 0.02 + rnd.next(i*3)*0.03
		change := price * volatility * (rnd.next(i*2) - 0.5)
		price = math.Max(price+trend+change, 1)

		open := price * (1 + (rnd.next(i*4)-0.5)*0.01)
		high := math.Max(open, price) * (1 + rnd.next(i*5)*0.02)
		low := math.Min(open, price) * (1 - rnd.next(i*6)*0.02)

		points = append(points, domain.HistoricalPoint{
			Date:   date.Format("2006-01-02"),
			Open:   round2(open),
			High:   round2(high),
			Low:    round2(low),
			Close:  round2(price),
			Volume: int64(1000000 + rnd.next(i*7)*10000000),
		})
	}
	return points
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
