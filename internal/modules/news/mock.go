package news

import (
	"time"

	"github.com/aristath/impact/internal/domain"
)

// mockNews returns the fallback article set served when no live news is
// available. Content is fixed; publication times are relative to now.
func mockNews(now time.Time) []domain.NewsItem {
	return []domain.NewsItem{
		{
			ID:          "mock-1",
			Title:       "Company announces new sustainability initiative",
			Description: "The company has committed to reducing carbon emissions by 50% by 2030 through renewable energy investments.",
			URL:         "https://example.com/sustainability",
			Source:      "Business Wire",
			PublishedAt: now,
			Sentiment:   domain.SentimentPositive,
		},
		{
			ID:          "mock-2",
			Title:       "Quarterly earnings exceed expectations",
			Description: "Strong revenue growth driven by new product launches and market expansion.",
			URL:         "https://example.com/earnings",
			Source:      "Reuters",
			PublishedAt: now.Add(-24 * time.Hour),
			Sentiment:   domain.SentimentPositive,
		},
		{
			ID:          "mock-3",
			Title:       "Workplace diversity report shows improvement",
			Description: "Annual diversity report reveals increased representation across all levels of the organization.",
			URL:         "https://example.com/diversity",
			Source:      "PR Newswire",
			PublishedAt: now.Add(-48 * time.Hour),
			Sentiment:   domain.SentimentPositive,
		},
	}
}
