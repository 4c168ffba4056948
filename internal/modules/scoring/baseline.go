package scoring

import "github.com/aristath/impact/internal/domain"

// DefaultDimensionScore is used for any sector or dimension without an entry.
const DefaultDimensionScore = 70

// SectorBaselines maps a sector name to its partial baseline scores.
type SectorBaselines map[string]map[domain.ImpactDimension]int

// DefaultSectorBaselines returns the built-in sector table.
func DefaultSectorBaselines() SectorBaselines {
	return SectorBaselines{
		"Technology":         row(75, 80, 82, 70, 75, 85, 85, 88),
		"Automotive":         row(60, 70, 65, 60, 65, 70, 70, 75),
		"Financial Services": row(65, 75, 70, 68, 72, 80, 82, 80),
		"Healthcare":         row(70, 78, 85, 72, 70, 75, 78, 82),
		"Energy":             row(45, 72, 55, 58, 65, 65, 75, 65),
		"ETF":                row(75, 75, 75, 75, 75, 75, 75, 80),
	}
}

// row builds a full sector entry from scores in canonical dimension order.
func row(scores ...int) map[domain.ImpactDimension]int {
	m := make(map[domain.ImpactDimension]int, len(scores))
	for i, s := range scores {
		m[domain.ImpactDimensions[i]] = s
	}
	return m
}

// Baseline returns the complete starting vector for sector. Sector names are
// matched exactly.
func (b SectorBaselines) Baseline(sector string) domain.ScoreVector {
	entry := b[sector]
	v := domain.UniformVector(DefaultDimensionScore)
	for _, d := range domain.ImpactDimensions {
		if score, ok := entry[d]; ok {
			v = v.With(d, domain.ClampScore(float64(score)))
		}
	}
	return v
}
