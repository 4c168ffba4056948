package alphavantage

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	seriesKeyDaily  = "Time Series (Daily)"
	seriesKeyWeekly = "Weekly Adjusted Time Series"
)

func isNullValue(s string) bool {
	switch strings.TrimSpace(s) {
	case "", "None", "null", "-", ".":
		return true
	}
	return false
}

// parseFloat64 parses an API number. Null markers and garbage parse as 0.
func parseFloat64(s string) float64 {
	if isNullValue(s) {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
	if err != nil {
		return 0
	}
	return v
}

// parseFloat64Ptr is parseFloat64 that keeps null markers as nil.
func parseFloat64Ptr(s string) *float64 {
	if isNullValue(s) {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseInt64 parses integers, accepting float and exponent notation.
func parseInt64(s string) int64 {
	if isNullValue(s) {
		return 0
	}
	if v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
		return v
	}
	return int64(math.Trunc(parseFloat64(s)))
}

func parseDate(s string) time.Time {
	t, _ := time.Parse("2006-01-02", strings.TrimSpace(s))
	return t
}

func parseGlobalQuote(body []byte) (*GlobalQuote, error) {
	var raw struct {
		Quote map[string]string `json:"Global Quote"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode global quote: %w", err)
	}
	if len(raw.Quote) == 0 {
		return nil, fmt.Errorf("empty global quote")
	}

	q := raw.Quote
	return &GlobalQuote{
		Symbol:           q["01. symbol"],
		Open:             parseFloat64(q["02. open"]),
		High:             parseFloat64(q["03. high"]),
		Low:              parseFloat64(q["04. low"]),
		Price:            parseFloat64(q["05. price"]),
		Volume:           parseInt64(q["06. volume"]),
		LatestTradingDay: parseDate(q["07. latest trading day"]),
		PreviousClose:    parseFloat64(q["08. previous close"]),
		Change:           parseFloat64(q["09. change"]),
		ChangePercent:    parseFloat64(q["10. change percent"]),
	}, nil
}

// parseTimeSeries parses the series stored under key, newest first.
func parseTimeSeries(body []byte, key string) ([]DailyPrice, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode time series: %w", err)
	}

	seriesRaw, ok := raw[key]
	if !ok {
		return nil, fmt.Errorf("time series %q missing from response", key)
	}

	var series map[string]map[string]string
	if err := json.Unmarshal(seriesRaw, &series); err != nil {
		return nil, fmt.Errorf("failed to decode %q: %w", key, err)
	}

	prices := make([]DailyPrice, 0, len(series))
	for date, bar := range series {
		d := parseDate(date)
		if d.IsZero() {
			continue
		}
		volume, ok := bar["6. volume"]
		if !ok {
			volume = bar["5. volume"]
		}
		closePrice := parseFloat64(bar["4. close"])
		adjusted := closePrice
		if v, ok := bar["5. adjusted close"]; ok {
			adjusted = parseFloat64(v)
		}
		prices = append(prices, DailyPrice{
			Date:          d,
			Open:          parseFloat64(bar["1. open"]),
			High:          parseFloat64(bar["2. high"]),
			Low:           parseFloat64(bar["3. low"]),
			Close:         closePrice,
			AdjustedClose: adjusted,
			Volume:        parseInt64(volume),
		})
	}

	sort.Slice(prices, func(i, j int) bool {
		return prices[i].Date.After(prices[j].Date)
	})
	return prices, nil
}

func parseDailyTimeSeries(body []byte) ([]DailyPrice, error) {
	return parseTimeSeries(body, seriesKeyDaily)
}

func parseWeeklyTimeSeries(body []byte) ([]DailyPrice, error) {
	return parseTimeSeries(body, seriesKeyWeekly)
}

func parseCompanyOverview(body []byte) (*CompanyOverview, error) {
	var raw map[string]string
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode company overview: %w", err)
	}

	return &CompanyOverview{
		Symbol:               raw["Symbol"],
		AssetType:            raw["AssetType"],
		Name:                 raw["Name"],
		Description:          raw["Description"],
		Exchange:             raw["Exchange"],
		Currency:             raw["Currency"],
		Country:              raw["Country"],
		Sector:               raw["Sector"],
		Industry:             raw["Industry"],
		MarketCapitalization: parseInt64(raw["MarketCapitalization"]),
		PERatio:              parseFloat64Ptr(raw["PERatio"]),
		EPS:                  parseFloat64Ptr(raw["EPS"]),
		DividendYield:        parseFloat64Ptr(raw["DividendYield"]),
		Beta:                 parseFloat64Ptr(raw["Beta"]),
		FiftyTwoWeekHigh:     parseFloat64Ptr(raw["52WeekHigh"]),
		FiftyTwoWeekLow:      parseFloat64Ptr(raw["52WeekLow"]),
	}, nil
}

func parseSymbolSearch(body []byte) ([]SymbolMatch, error) {
	var raw struct {
		BestMatches []map[string]string `json:"bestMatches"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode symbol search: %w", err)
	}

	matches := make([]SymbolMatch, 0, len(raw.BestMatches))
	for _, m := range raw.BestMatches {
		matches = append(matches, SymbolMatch{
			Symbol:     m["1. symbol"],
			Name:       m["2. name"],
			Type:       m["3. type"],
			Region:     m["4. region"],
			Currency:   m["8. currency"],
			MatchScore: parseFloat64(m["9. matchScore"]),
		})
	}
	return matches, nil
}
