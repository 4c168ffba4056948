package alphavantage

import "time"

// GlobalQuote is the GLOBAL_QUOTE payload.
type GlobalQuote struct {
	LatestTradingDay time.Time
	Symbol           string
	Open             float64
	High             float64
	Low              float64
	Price            float64
	PreviousClose    float64
	Change           float64
	ChangePercent    float64
	Volume           int64
}

// DailyPrice is one bar of a daily or weekly time series.
type DailyPrice struct {
	Date          time.Time
	Open          float64
	High          float64
	Low           float64
	Close         float64
	AdjustedClose float64
	Volume        int64
}

// CompanyOverview is the OVERVIEW payload.
// Nullable ratios are nil when the API reports "None".
type CompanyOverview struct {
	PERatio              *float64
	EPS                  *float64
	DividendYield        *float64
	Beta                 *float64
	FiftyTwoWeekHigh     *float64
	FiftyTwoWeekLow      *float64
	Symbol               string
	AssetType            string
	Name                 string
	Description          string
	Exchange             string
	Currency             string
	Country              string
	Sector               string
	Industry             string
	MarketCapitalization int64
}

// SymbolMatch is one SYMBOL_SEARCH result.
type SymbolMatch struct {
	Symbol     string
	Name       string
	Type       string
	Region     string
	Currency   string
	MatchScore float64
}
