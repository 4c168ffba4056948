package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/aristath/impact/internal/domain"
	"github.com/aristath/impact/pkg/llmjson"
	"github.com/rs/zerolog"
)

const (
	// maxPromptNews caps the number of articles included in the prompt.
	maxPromptNews = 10

	aiTemperature     = 0.7
	aiMaxOutputTokens = 500
)

// AIScorer asks a generative text model to rescore the company.
type AIScorer struct {
	generator domain.TextGenerator
	log       zerolog.Logger
}

// NewAIScorer creates an AI scorer. A nil or disabled generator makes every
// Score call report failure.
func NewAIScorer(generator domain.TextGenerator, log zerolog.Logger) *AIScorer {
	return &AIScorer{
		generator: generator,
		log:       log.With().Str("component", "ai_scorer").Logger(),
	}
}

// Name implements Scorer.
func (a *AIScorer) Name() string { return "ai" }

// Enabled reports whether the underlying generator is configured.
func (a *AIScorer) Enabled() bool {
	return a.generator != nil && a.generator.Enabled()
}

// Score implements Scorer. Recognized keys with finite numeric values
// overwrite the baseline after clamping; every other dimension keeps its
// baseline value.
func (a *AIScorer) Score(ctx context.Context, profile domain.CompanyProfile, baseline domain.ScoreVector, news []domain.NewsItem) (domain.ScoreVector, bool) {
	if !a.Enabled() {
		return baseline, false
	}

	text, err := a.generator.Generate(ctx, BuildPrompt(profile, baseline, news), domain.GenerateOptions{
		Temperature:     aiTemperature,
		MaxOutputTokens: aiMaxOutputTokens,
	})
	if err != nil {
		a.log.Warn().Err(err).Str("symbol", profile.Symbol).Msg("AI scoring failed")
		return baseline, false
	}

	scores, ok := ParseScores(text, baseline)
	if !ok {
		a.log.Warn().Str("symbol", profile.Symbol).Msg("Could not parse AI scoring response")
		return baseline, false
	}
	return scores, true
}

// ParseScores reads the first JSON object in text and merges it onto baseline.
// It returns false when text contains no parseable object.
func ParseScores(text string, baseline domain.ScoreVector) (domain.ScoreVector, bool) {
	var raw map[string]any
	if err := llmjson.DecodeObject(text, &raw); err != nil {
		return baseline, false
	}

	scores := baseline
	for _, d := range domain.ImpactDimensions {
		v, ok := raw[string(d)].(float64)
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		scores = scores.With(d, domain.ClampScore(v))
	}
	return scores, true
}

// BuildPrompt renders the scoring request for profile.
func BuildPrompt(profile domain.CompanyProfile, baseline domain.ScoreVector, news []domain.NewsItem) string {
	name := profile.Name

	var b strings.Builder
	b.WriteString("You are an ESG (Environmental, Social, Governance) analyst helping retail investors understand the real-world impact of companies.\n\n")
	b.WriteString("IMPORTANT: Analyze THIS SPECIFIC COMPANY based on its unique characteristics and reputation.\n\n")
	fmt.Fprintf(&b, "Company: %s (%s)\n", name, profile.Symbol)
	fmt.Fprintf(&b, "Sector: %s\n", profile.Sector)
	fmt.Fprintf(&b, "Industry: %s\n", profile.Industry)
	fmt.Fprintf(&b, "Description: %s\n\n", profile.Description)

	if len(news) > 0 {
		if len(news) > maxPromptNews {
			news = news[:maxPromptNews]
		}
		b.WriteString("Recent news articles about this company:\n\n")
		for i, item := range news {
			if i > 0 {
				b.WriteString("\n\n")
			}
			fmt.Fprintf(&b, "%d. \"%s\" (%s, %s)\n   %s", i+1, item.Title, item.Source, item.PublishedAt.Format("1/2/2006"), item.Description)
		}
		b.WriteString("\n\nBased on these news articles AND your knowledge about the company, provide impact scores.\n\n")
	} else {
		fmt.Fprintf(&b, "No recent news available. Based on your knowledge about %s and companies in the %s sector, provide impact scores.\n\n", name, profile.Sector)
	}

	fmt.Fprintf(&b, "Provide SPECIFIC impact scores on a 0-100 scale for THIS COMPANY (%s).\n", name)
	fmt.Fprintf(&b, "DO NOT give generic sector scores - evaluate %s's actual track record.\n\n", name)
	fmt.Fprintf(&b, "Consider %s's specific:\n", name)
	b.WriteString("- Environmental initiatives, carbon footprint, and climate commitments\n")
	b.WriteString("- Labor practices, workplace safety, and employee treatment\n")
	b.WriteString("- Social impact, community involvement, and data privacy\n")
	b.WriteString("- Gender diversity in leadership and workforce\n")
	b.WriteString("- Pay equity and compensation fairness\n")
	b.WriteString("- Corporate governance, board independence, and transparency\n")
	b.WriteString("- Financial performance and profitability trends\n\n")

	seed, _ := json.MarshalIndent(baseline, "", "  ")
	fmt.Fprintf(&b, "Starting baseline (sector averages - ADJUST for %s's reality):\n%s\n\n", name, seed)

	fmt.Fprintf(&b, "Think about %s's ACTUAL reputation:\n", name)
	b.WriteString("- What is this company known for?\n")
	b.WriteString("- What controversies or achievements has it had?\n")
	b.WriteString("- How does it compare to peers?\n\n")

	b.WriteString("Return ONLY a valid JSON object (no explanation, no markdown, no code blocks):\n{\n")
	for i, d := range domain.ImpactDimensions {
		sep := ","
		if i == len(domain.ImpactDimensions)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, "  %q: <score 0-100>%s\n", string(d), sep)
	}
	b.WriteString("}")
	return b.String()
}
