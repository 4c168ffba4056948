package domain

import "math"

// ScoreVector holds a 0-100 score for every impact dimension.
// It is a value type: copies never share state, so a vector handed out by a
// cache cannot be mutated behind the cache's back.
type ScoreVector struct {
	Environmental          int `json:"environmental"`
	LaborPractices         int `json:"laborPractices"`
	SocialImpact           int `json:"socialImpact"`
	GenderEquality         int `json:"genderEquality"`
	PayEquality            int `json:"payEquality"`
	CorporateImpact        int `json:"corporateImpact"`
	ShortTermProfitability int `json:"shortTermProfitability"`
	LongTermProfitability  int `json:"longTermProfitability"`
}

// UniformVector returns a vector with every dimension set to v.
func UniformVector(v int) ScoreVector {
	var s ScoreVector
	for _, d := range ImpactDimensions {
		s = s.With(d, v)
	}
	return s
}

// Get returns the score for d. Unknown dimensions return 0.
func (s ScoreVector) Get(d ImpactDimension) int {
	switch d {
	case DimensionEnvironmental:
		return s.Environmental
	case DimensionLaborPractices:
		return s.LaborPractices
	case DimensionSocialImpact:
		return s.SocialImpact
	case DimensionGenderEquality:
		return s.GenderEquality
	case DimensionPayEquality:
		return s.PayEquality
	case DimensionCorporateImpact:
		return s.CorporateImpact
	case DimensionShortTermProfitability:
		return s.ShortTermProfitability
	case DimensionLongTermProfitability:
		return s.LongTermProfitability
	}
	return 0
}

// With returns a copy of s with d set to v. Unknown dimensions leave s unchanged.
func (s ScoreVector) With(d ImpactDimension, v int) ScoreVector {
	switch d {
	case DimensionEnvironmental:
		s.Environmental = v
	case DimensionLaborPractices:
		s.LaborPractices = v
	case DimensionSocialImpact:
		s.SocialImpact = v
	case DimensionGenderEquality:
		s.GenderEquality = v
	case DimensionPayEquality:
		s.PayEquality = v
	case DimensionCorporateImpact:
		s.CorporateImpact = v
	case DimensionShortTermProfitability:
		s.ShortTermProfitability = v
	case DimensionLongTermProfitability:
		s.LongTermProfitability = v
	}
	return s
}

// Map returns the vector keyed by dimension name.
func (s ScoreVector) Map() map[ImpactDimension]int {
	m := make(map[ImpactDimension]int, len(ImpactDimensions))
	for _, d := range ImpactDimensions {
		m[d] = s.Get(d)
	}
	return m
}

// Values returns the scores of dims in order as float64s.
func (s ScoreVector) Values(dims ...ImpactDimension) []float64 {
	values := make([]float64, len(dims))
	for i, d := range dims {
		values[i] = float64(s.Get(d))
	}
	return values
}

// ClampScore rounds v to the nearest integer and clamps it to [0, 100].
// NaN clamps to 0.
func ClampScore(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 100 {
		return 100
	}
	return int(r)
}
