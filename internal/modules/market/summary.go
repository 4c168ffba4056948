package market

import (
	"math"

	"github.com/aristath/impact/internal/domain"
	"github.com/markcheno/go-talib"
	"gonum.org/v1/gonum/stat"
)

// smaPeriod is the moving average window used in summaries.
const smaPeriod = 20

// Summary condenses a price series for display.
type Summary struct {
	SMA20         *float64 `json:"sma20,omitempty"`
	Volatility    *float64 `json:"volatility,omitempty"`
	FirstClose    float64  `json:"firstClose"`
	LastClose     float64  `json:"lastClose"`
	ChangePercent float64  `json:"changePercent"`
	High          float64  `json:"high"`
	Low           float64  `json:"low"`
	Points        int      `json:"points"`
}

// Summarize computes period statistics for points ordered oldest first.
// SMA20 is nil with fewer than 20 points; Volatility (standard deviation of
// bar-to-bar returns, in percent) is nil with fewer than 3 points.
func Summarize(points []domain.HistoricalPoint) Summary {
	if len(points) == 0 {
		return Summary{}
	}

	closes := make([]float64, len(points))
	high, low := math.Inf(-1), math.Inf(1)
	for i, p := range points {
		closes[i] = p.Close
		high = math.Max(high, p.High)
		low = math.Min(low, p.Low)
	}

	first, last := closes[0], closes[len(closes)-1]
	s := Summary{
		FirstClose: first,
		LastClose:  last,
		High:       high,
		Low:        low,
		Points:     len(points),
	}
	if first != 0 {
		s.ChangePercent = round2((last - first) / first * 100)
	}

	if len(closes) >= smaPeriod {
		sma := talib.Sma(closes, smaPeriod)
		if v := sma[len(sma)-1]; !math.IsNaN(v) {
			v = round2(v)
			s.SMA20 = &v
		}
	}

	if len(closes) >= 3 {
		returns := make([]float64, 0, len(closes)-1)
		for i := 1; i < len(closes); i++ {
			if closes[i-1] != 0 {
				returns = append(returns, (closes[i]-closes[i-1])/closes[i-1])
			}
		}
		if len(returns) >= 2 {
			v := round2(stat.StdDev(returns, nil) * 100)
			s.Volatility = &v
		}
	}

	return s
}
