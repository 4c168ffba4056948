package scoring

import "github.com/aristath/impact/internal/domain"

// KeywordTable lists, per dimension, the lower-case substrings that make an
// article relevant to that dimension.
type KeywordTable map[domain.ImpactDimension][]string

// DefaultKeywords returns the built-in keyword table.
func DefaultKeywords() KeywordTable {
	return KeywordTable{
		domain.DimensionEnvironmental: {
			"climate", "carbon", "emissions", "renewable", "sustainable", "green",
			"pollution", "environmental", "energy", "solar", "wind", "electric",
		},
		domain.DimensionLaborPractices: {
			"worker", "employee", "labor", "safety", "workplace", "union",
			"working conditions", "benefits", "layoff", "hiring",
		},
		domain.DimensionSocialImpact: {
			"community", "social", "privacy", "data", "security", "philanthropy",
			"donation", "charity", "society", "public",
		},
		domain.DimensionGenderEquality: {
			"gender", "women", "female", "diversity", "inclusion", "representation",
			"equality", "discrimination",
		},
		domain.DimensionPayEquality: {
			"pay gap", "wage", "salary", "compensation", "equal pay", "bonus",
		},
		domain.DimensionCorporateImpact: {
			"governance", "board", "executive", "transparency", "ethics",
			"compliance", "regulation", "scandal", "investigation",
		},
		domain.DimensionShortTermProfitability: {
			"earnings", "revenue", "profit", "quarter", "sales", "growth",
			"beat expectations", "miss", "guidance",
		},
		domain.DimensionLongTermProfitability: {
			"innovation", "r&d", "patent", "expansion", "market share",
			"competitive", "strategic", "long-term", "investment",
		},
	}
}
