package news

import (
	"testing"

	"github.com/aristath/impact/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassifySentiment(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		expected    domain.Sentiment
	}{
		{"positive", "Record profit", "Strong growth in renewable energy", domain.SentimentPositive},
		{"negative", "Regulators open investigation", "Fraud lawsuit follows data breach", domain.SentimentNegative},
		{"tie is neutral", "Growth slows", "Quarterly loss reported", domain.SentimentNeutral},
		{"no keywords", "CEO speaks at conference", "", domain.SentimentNeutral},
		{"case insensitive", "SCANDAL", "", domain.SentimentNegative},
		{"each word counts once", "growth growth growth", "loss, recall", domain.SentimentNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifySentiment(tt.title, tt.description))
		})
	}
}
