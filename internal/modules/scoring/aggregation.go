package scoring

import (
	"github.com/aristath/impact/internal/domain"
	"gonum.org/v1/gonum/stat"
)

// categoryDimensions lists the dimensions averaged for each category.
// Categories not listed, including broad, average all eight.
var categoryDimensions = map[domain.ImpactCategory][]domain.ImpactDimension{
	domain.CategoryEnvironmental: {
		domain.DimensionEnvironmental, domain.DimensionCorporateImpact, domain.DimensionLongTermProfitability,
	},
	domain.CategorySocial: {
		domain.DimensionSocialImpact, domain.DimensionLaborPractices, domain.DimensionPayEquality,
	},
	domain.CategoryGenderEquality: {
		domain.DimensionGenderEquality, domain.DimensionPayEquality, domain.DimensionLaborPractices,
	},
	domain.CategoryRacialJustice: {
		domain.DimensionSocialImpact, domain.DimensionLaborPractices, domain.DimensionPayEquality,
	},
	domain.CategoryWorkplaceEquality: {
		domain.DimensionLaborPractices, domain.DimensionGenderEquality, domain.DimensionPayEquality,
	},
}

// DimensionsFor returns the dimensions aggregated for category.
func DimensionsFor(category domain.ImpactCategory) []domain.ImpactDimension {
	if dims, ok := categoryDimensions[category]; ok {
		return dims
	}
	return domain.ImpactDimensions
}

// OverallScore is the rounded, clamped equal-weight mean of the category's
// dimensions.
func OverallScore(v domain.ScoreVector, category domain.ImpactCategory) int {
	return domain.ClampScore(stat.Mean(v.Values(DimensionsFor(category)...), nil))
}
