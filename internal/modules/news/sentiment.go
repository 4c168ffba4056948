package news

import (
	"strings"

	"github.com/aristath/impact/internal/domain"
)

var positiveWords = []string{
	"growth", "profit", "success", "innovation", "sustainability", "diversity",
	"award", "record", "exceeds", "strong", "partnership", "expansion",
	"breakthrough", "renewable", "clean", "green", "inclusive", "equity",
}

var negativeWords = []string{
	"lawsuit", "fine", "scandal", "layoff", "decline", "loss", "controversy",
	"investigation", "pollution", "violation", "discrimination", "unsafe",
	"breach", "fraud", "recall", "strike",
}

// ClassifySentiment labels an article by counting which positive and negative
// words occur in its title and description. Each word counts once.
func ClassifySentiment(title, description string) domain.Sentiment {
	text := strings.ToLower(title + " " + description)

	positive := countMatches(text, positiveWords)
	negative := countMatches(text, negativeWords)

	switch {
	case positive > negative:
		return domain.SentimentPositive
	case negative > positive:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}

func countMatches(text string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			n++
		}
	}
	return n
}
