package scoring

import (
	"context"

	"github.com/aristath/impact/internal/domain"
)

// Scorer produces a full score vector for a company.
// ok is false when the scorer could not produce a result and the next
// scorer in the chain should be tried.
type Scorer interface {
	Name() string
	Score(ctx context.Context, profile domain.CompanyProfile, baseline domain.ScoreVector, news []domain.NewsItem) (scores domain.ScoreVector, ok bool)
}
