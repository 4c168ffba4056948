package scoring

import (
	"math"
	"math/rand"
	"testing"

	"github.com/aristath/impact/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestOverallScore_Categories(t *testing.T) {
	v := domain.ScoreVector{
		Environmental:          90,
		LaborPractices:         60,
		SocialImpact:           75,
		GenderEquality:         50,
		PayEquality:            45,
		CorporateImpact:        80,
		ShortTermProfitability: 70,
		LongTermProfitability:  85,
	}

	tests := []struct {
		category domain.ImpactCategory
		expected int
	}{
		{domain.CategoryEnvironmental, 85},     // (90+80+85)/3
		{domain.CategorySocial, 60},            // (75+60+45)/3
		{domain.CategoryGenderEquality, 52},    // (50+45+60)/3 = 51.67
		{domain.CategoryRacialJustice, 60},     // same subset as social
		{domain.CategoryWorkplaceEquality, 52}, // (60+50+45)/3
		{domain.CategoryBroad, 69},             // 555/8 = 69.375
		{domain.ImpactCategory("crypto"), 69},  // unknown aggregates as broad
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.expected, OverallScore(v, tt.category))
		})
	}
}

func TestOverallScore_BroadIsRoundedMeanAndInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		var v domain.ScoreVector
		sum := 0
		for _, d := range domain.ImpactDimensions {
			score := rng.Intn(101)
			sum += score
			v = v.With(d, score)
		}

		assert.Equal(t, int(math.Round(float64(sum)/8)), OverallScore(v, domain.CategoryBroad))
		for _, c := range domain.ImpactCategories {
			score := OverallScore(v, c)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		}
	}
}

func TestDimensionsFor(t *testing.T) {
	assert.Len(t, DimensionsFor(domain.CategoryBroad), 8)
	assert.Len(t, DimensionsFor(domain.CategorySocial), 3)
	assert.Equal(t, domain.ImpactDimensions, DimensionsFor(domain.ImpactCategory("")))
}
