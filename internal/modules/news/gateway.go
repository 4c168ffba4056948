// Package news fetches company news and labels its sentiment.
package news

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aristath/impact/internal/clientdata"
	"github.com/aristath/impact/internal/clients/newsapi"
	"github.com/aristath/impact/internal/domain"
	"github.com/aristath/impact/pkg/llmjson"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ArticleSource is the live news provider.
type ArticleSource interface {
	Enabled() bool
	SearchCompany(ctx context.Context, companyName, symbol string, pageSize int) ([]newsapi.Article, error)
}

// Gateway implements domain.NewsGateway on top of NewsAPI with a TTL cache
// and a deterministic fallback set. It never returns an error.
type Gateway struct {
	source    ArticleSource
	generator domain.TextGenerator
	cache     *clientdata.Repository
	ttl       time.Duration
	log       zerolog.Logger
	now       func() time.Time
}

var _ domain.NewsGateway = (*Gateway)(nil)

// Option configures a Gateway.
type Option func(*Gateway)

// WithTTL overrides the news cache TTL.
func WithTTL(ttl time.Duration) Option {
	return func(g *Gateway) {
		if ttl > 0 {
			g.ttl = ttl
		}
	}
}

// WithClock overrides the time source used for mock publication dates.
func WithClock(now func() time.Time) Option {
	return func(g *Gateway) {
		g.now = now
	}
}

// NewGateway creates a news gateway. generator may be nil, which disables
// sentiment refinement.
func NewGateway(source ArticleSource, generator domain.TextGenerator, cache *clientdata.Repository, log zerolog.Logger, opts ...Option) *Gateway {
	g := &Gateway{
		source:    source,
		generator: generator,
		cache:     cache,
		ttl:       clientdata.TTLNews,
		log:       log.With().Str("service", "news").Logger(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// FetchNews returns recent articles about a company, newest first.
// The result is never empty: provider failures and empty results yield the
// mock set, which is not cached.
func (g *Gateway) FetchNews(ctx context.Context, companyName, symbol string, limit int) []domain.NewsItem {
	symbol = domain.NormalizeSymbol(symbol)
	cacheKey := fmt.Sprintf("%s:%d", symbol, limit)

	if items, ok := clientdata.GetFreshAs[[]domain.NewsItem](g.cache, clientdata.TableNews, cacheKey); ok {
		g.log.Debug().Str("symbol", symbol).Msg("News cache hit")
		return cloneItems(items)
	}

	if g.source == nil || !g.source.Enabled() {
		g.log.Debug().Str("symbol", symbol).Msg("No news API key, using mock news")
		return mockNews(g.now())
	}

	articles, err := g.source.SearchCompany(ctx, companyName, symbol, limit)
	if err != nil {
		if items, ok := clientdata.GetStaleAs[[]domain.NewsItem](g.cache, clientdata.TableNews, cacheKey); ok {
			g.log.Warn().Err(err).Str("symbol", symbol).Msg("News API failed, using stale cached news")
			return cloneItems(items)
		}
		g.log.Warn().Err(err).Str("symbol", symbol).Msg("News API failed, using mock news")
		return mockNews(g.now())
	}

	items := g.toNewsItems(symbol, articles)
	if len(items) == 0 {
		return mockNews(g.now())
	}

	if err := g.cache.Store(clientdata.TableNews, cacheKey, cloneItems(items), g.ttl); err != nil {
		g.log.Warn().Err(err).Msg("Failed to cache news")
	}
	return items
}

func (g *Gateway) toNewsItems(symbol string, articles []newsapi.Article) []domain.NewsItem {
	items := make([]domain.NewsItem, 0, len(articles))
	for i, a := range articles {
		title := a.Title
		if title == "" {
			title = "Untitled"
		}
		source := a.Source.Name
		if source == "" {
			source = "Unknown"
		}
		published := a.PublishedAt
		if published.IsZero() {
			published = g.now()
		}

		id := fmt.Sprintf("%s-news-%d", symbol, i)
		if a.URL != "" {
			id = uuid.NewSHA1(uuid.NameSpaceURL, []byte(a.URL)).String()
		}

		items = append(items, domain.NewsItem{
			ID:          id,
			Title:       title,
			Description: a.Description,
			URL:         a.URL,
			Source:      source,
			PublishedAt: published,
			Sentiment:   ClassifySentiment(a.Title, a.Description),
		})
	}
	return items
}

// RefineSentiment asks the text generator to relabel items. Labels it cannot
// parse leave the corresponding item unchanged. The input slice is not modified.
func (g *Gateway) RefineSentiment(ctx context.Context, items []domain.NewsItem, companyName string) []domain.NewsItem {
	if len(items) == 0 || g.generator == nil || !g.generator.Enabled() {
		return items
	}

	text, err := g.generator.Generate(ctx, buildSentimentPrompt(items, companyName), domain.GenerateOptions{
		Temperature:     0.2,
		MaxOutputTokens: 200,
	})
	if err != nil {
		g.log.Warn().Err(err).Msg("Sentiment refinement failed")
		return items
	}

	var labels []any
	if err := llmjson.DecodeArray(text, &labels); err != nil {
		g.log.Warn().Err(err).Msg("Could not parse sentiment labels")
		return items
	}

	refined := cloneItems(items)
	for i := range refined {
		if i >= len(labels) {
			break
		}
		label, ok := labels[i].(string)
		if !ok {
			continue
		}
		if s, ok := domain.ParseSentiment(label); ok {
			refined[i].Sentiment = s
		}
	}
	return refined
}

func buildSentimentPrompt(items []domain.NewsItem, companyName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze the sentiment of these news articles about %s.\n", companyName)
	b.WriteString(`For each article, determine if the sentiment is "positive", "negative", or "neutral"` + "\n")
	b.WriteString("based on the impact on the company's reputation, ESG factors, and financial outlook.\n\n")
	b.WriteString("Articles:\n")
	for i, item := range items {
		fmt.Fprintf(&b, "%d. \"%s\": %s\n", i+1, item.Title, item.Description)
	}
	b.WriteString("\nReturn ONLY a JSON array with the sentiment for each article in order:\n")
	b.WriteString(`["positive", "negative", "neutral", ...]`)
	return b.String()
}

func cloneItems(items []domain.NewsItem) []domain.NewsItem {
	out := make([]domain.NewsItem, len(items))
	copy(out, items)
	return out
}
