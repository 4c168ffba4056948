package scoring

import (
	"context"
	"strings"

	"github.com/aristath/impact/internal/domain"
)

// sentimentDelta is the score change applied per matching article.
const sentimentDelta = 3

// HeuristicScorer adjusts the baseline by keyword matching news sentiment.
// It always succeeds.
type HeuristicScorer struct {
	keywords KeywordTable
}

// NewHeuristicScorer creates a heuristic scorer. A nil table uses DefaultKeywords.
func NewHeuristicScorer(keywords KeywordTable) *HeuristicScorer {
	if keywords == nil {
		keywords = DefaultKeywords()
	}
	return &HeuristicScorer{keywords: keywords}
}

// Name implements Scorer.
func (h *HeuristicScorer) Name() string { return "heuristic" }

// Score implements Scorer.
func (h *HeuristicScorer) Score(_ context.Context, _ domain.CompanyProfile, baseline domain.ScoreVector, news []domain.NewsItem) (domain.ScoreVector, bool) {
	return h.Adjust(baseline, news), true
}

// Adjust applies every article to base in order. Each dimension whose
// keywords occur in the article moves by +3 (positive), -3 (negative) or 0
// (neutral or unlabelled), clamped to [0, 100] after every step.
func (h *HeuristicScorer) Adjust(base domain.ScoreVector, news []domain.NewsItem) domain.ScoreVector {
	scores := base
	for _, item := range news {
		delta := deltaFor(item.Sentiment)
		text := strings.ToLower(item.Title + " " + item.Description)

		for _, d := range domain.ImpactDimensions {
			if !containsAny(text, h.keywords[d]) {
				continue
			}
			scores = scores.With(d, domain.ClampScore(float64(scores.Get(d)+delta)))
		}
	}
	return scores
}

func deltaFor(s domain.Sentiment) int {
	switch s {
	case domain.SentimentPositive:
		return sentimentDelta
	case domain.SentimentNegative:
		return -sentimentDelta
	}
	return 0
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
