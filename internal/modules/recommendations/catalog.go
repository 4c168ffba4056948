package recommendations

import "github.com/aristath/impact/internal/domain"

// Category describes an impact category for display.
type Category struct {
	ID          domain.ImpactCategory `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
}

// Categories returns the impact category catalog in display order.
func Categories() []Category {
	return []Category{
		{
			ID:          domain.CategoryBroad,
			Name:        "Broad ESG",
			Description: "Balanced exposure to companies and ETFs that meet broad Environmental, Social, and Governance (ESG) requirements.",
		},
		{
			ID:          domain.CategoryEnvironmental,
			Name:        "Environmental",
			Description: "Focus on climate impact, emissions reductions, clean energy, and resource efficiency.",
		},
		{
			ID:          domain.CategorySocial,
			Name:        "Social Impact",
			Description: "Emphasis on community impact, customer privacy, data protection, and broader social outcomes.",
		},
		{
			ID:          domain.CategoryRacialJustice,
			Name:        "Racial Justice",
			Description: "Prioritizes companies with strong racial justice commitments, inclusive policies, and transparent reporting.",
		},
		{
			ID:          domain.CategoryWorkplaceEquality,
			Name:        "Workplace Equality",
			Description: "Targets companies improving gender and ethnic diversity throughout their workforce and leadership.",
		},
		{
			ID:          domain.CategoryGenderEquality,
			Name:        "Gender Equality",
			Description: "Focus on companies performing well across gender pay, leadership representation, and anti-discrimination policies.",
		},
	}
}

// popularSymbols seed live recommendations after the category funds.
var popularSymbols = []string{
	"AAPL", "MSFT", "GOOG", "AMZN", "TSLA", "NVDA", "META", "JPM",
	"V", "JNJ", "WMT", "PG", "UNH", "HD", "DIS", "NFLX", "PYPL",
	"ADBE", "CRM", "INTC", "AMD", "CSCO", "PEP", "KO",
}

// popularCandidates is how many popular symbols join a live candidate list.
const popularCandidates = 10

// categorySymbols are ESG-focused funds and companies per category.
var categorySymbols = map[domain.ImpactCategory][]string{
	domain.CategoryBroad:             {"ESGU", "ESGV", "SUSA", "SUSL", "USSG"},
	domain.CategoryEnvironmental:     {"ICLN", "QCLN", "TAN", "FAN", "PBW", "TSLA"},
	domain.CategorySocial:            {"NACP", "WOMN", "SDGA", "KRMA", "EQLT"},
	domain.CategoryGenderEquality:    {"SHE", "WOMN", "EQUL"},
	domain.CategoryRacialJustice:     {"NACP", "EQLT", "SDGA"},
	domain.CategoryWorkplaceEquality: {"SHE", "EQUL", "WOMN", "JUST"},
}

func scores(env, social, labor, corporate, gender, pay, shortTerm, longTerm int) map[domain.ImpactDimension]int {
	return map[domain.ImpactDimension]int{
		domain.DimensionEnvironmental:          env,
		domain.DimensionSocialImpact:           social,
		domain.DimensionLaborPractices:         labor,
		domain.DimensionCorporateImpact:        corporate,
		domain.DimensionGenderEquality:         gender,
		domain.DimensionPayEquality:            pay,
		domain.DimensionShortTermProfitability: shortTerm,
		domain.DimensionLongTermProfitability:  longTerm,
	}
}

// CuratedCompanies returns the illustrative company and fund list. It is
// not investment advice.
func CuratedCompanies() []domain.Company {
	return []domain.Company{
		{
			ID:          "goog",
			Symbol:      "GOOG",
			Name:        "Alphabet Inc.",
			Logo:        "🔍",
			Sector:      "Technology",
			Description: "Parent company of Google, investing in clean energy, AI research, and digital infrastructure.",
			ImpactCategories: []domain.ImpactCategory{
				domain.CategoryBroad, domain.CategoryEnvironmental, domain.CategorySocial, domain.CategoryWorkplaceEquality,
			},
			BaseScores: scores(85, 88, 82, 90, 78, 76, 92, 95),
		},
		{
			ID:               "tesla",
			Symbol:           "TSLA",
			Name:             "Tesla Inc.",
			Logo:             "⚡",
			Sector:           "Automotive",
			Description:      "Electric vehicle and clean energy company focused on accelerating the world's transition to sustainable energy.",
			ImpactCategories: []domain.ImpactCategory{domain.CategoryBroad, domain.CategoryEnvironmental},
			BaseScores:       scores(95, 80, 68, 92, 70, 68, 75, 88),
		},
		{
			ID:          "microsoft",
			Symbol:      "MSFT",
			Name:        "Microsoft Corp.",
			Logo:        "🪟",
			Sector:      "Technology",
			Description: "Cloud, productivity, and software leader with strong climate commitments and workplace programs.",
			ImpactCategories: []domain.ImpactCategory{
				domain.CategoryBroad, domain.CategoryEnvironmental, domain.CategorySocial,
				domain.CategoryWorkplaceEquality, domain.CategoryGenderEquality,
			},
			BaseScores: scores(90, 86, 88, 92, 84, 82, 93, 96),
		},
		{
			ID:               "apple",
			Symbol:           "AAPL",
			Name:             "Apple Inc.",
			Logo:             "🍎",
			Sector:           "Technology",
			Description:      "Consumer electronics and services company with growing renewable energy and supply chain initiatives.",
			ImpactCategories: []domain.ImpactCategory{domain.CategoryBroad, domain.CategoryEnvironmental, domain.CategorySocial},
			BaseScores:       scores(88, 85, 80, 90, 78, 80, 95, 94),
		},
		{
			ID:               "nvidia",
			Symbol:           "NVDA",
			Name:             "NVIDIA Corp.",
			Logo:             "💚",
			Sector:           "Semiconductors",
			Description:      "Graphics and AI computing company powering data centers, gaming, and autonomous systems.",
			ImpactCategories: []domain.ImpactCategory{domain.CategoryBroad, domain.CategorySocial, domain.CategoryWorkplaceEquality},
			BaseScores:       scores(80, 87, 82, 88, 76, 74, 96, 93),
		},
		{
			ID:               "she",
			Symbol:           "SHE",
			Name:             "SPDR SSGA Gender Diversity Index ETF",
			Logo:             "♀️",
			Sector:           "ETF",
			Description:      "ETF tracking U.S. large-cap companies with higher levels of gender diversity in senior leadership.",
			ImpactCategories: []domain.ImpactCategory{domain.CategoryBroad, domain.CategoryGenderEquality, domain.CategoryWorkplaceEquality},
			BaseScores:       scores(78, 88, 90, 86, 96, 92, 78, 84),
		},
		{
			ID:               "nacp",
			Symbol:           "NACP",
			Name:             "Impact Shares NAACP Minority Empowerment ETF",
			Logo:             "✊",
			Sector:           "ETF",
			Description:      "ETF focused on racial justice, investing in companies with strong diversity, equity, and inclusion metrics.",
			ImpactCategories: []domain.ImpactCategory{domain.CategoryBroad, domain.CategoryRacialJustice, domain.CategoryWorkplaceEquality},
			BaseScores:       scores(75, 94, 92, 88, 90, 90, 70, 82),
		},
		{
			ID:               "esgu",
			Symbol:           "ESGU",
			Name:             "iShares ESG Aware MSCI USA ETF",
			Logo:             "🌍",
			Sector:           "ETF",
			Description:      "Broad U.S. equity ETF with a tilt toward companies with positive ESG characteristics.",
			ImpactCategories: []domain.ImpactCategory{domain.CategoryBroad, domain.CategoryEnvironmental, domain.CategorySocial},
			BaseScores:       scores(88, 86, 84, 86, 82, 80, 80, 88),
		},
	}
}
