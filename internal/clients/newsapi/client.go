// Package newsapi provides a client for the NewsAPI.org article search API.
package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the NewsAPI v2 endpoint.
	DefaultBaseURL = "https://newsapi.org/v2"

	// DefaultDailyLimit is the developer plan daily quota.
	DefaultDailyLimit = 100

	// DefaultTimeout is the default HTTP timeout.
	DefaultTimeout = 15 * time.Second
)

var (
	// ErrNoAPIKey is returned when the client has no API key.
	ErrNoAPIKey = errors.New("newsapi: no API key configured")

	// ErrRateLimited is returned when the local daily quota is exhausted.
	ErrRateLimited = errors.New("newsapi: daily request quota exhausted")
)

// APIError is an error reported by NewsAPI.
type APIError struct {
	Code       string
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("newsapi: HTTP %d %s: %s", e.StatusCode, e.Code, e.Message)
}

// Source identifies the publisher of an article.
type Source struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Article is one search result.
type Article struct {
	PublishedAt time.Time `json:"publishedAt"`
	Source      Source    `json:"source"`
	Author      string    `json:"author"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	URLToImage  string    `json:"urlToImage"`
}

type response struct {
	Status       string    `json:"status"`
	Code         string    `json:"code"`
	Message      string    `json:"message"`
	Articles     []Article `json:"articles"`
	TotalResults int       `json:"totalResults"`
}

// Client is a NewsAPI client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	quota      *rate.Limiter
	log        zerolog.Logger
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithDailyLimit sets the daily request quota. The quota refills evenly over
// the day.
func WithDailyLimit(limit int) ClientOption {
	return func(c *Client) {
		if limit > 0 {
			c.quota = rate.NewLimiter(rate.Every(24*time.Hour/time.Duration(limit)), limit)
		}
	}
}

// NewClient creates a new NewsAPI client.
func NewClient(apiKey string, log zerolog.Logger, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		quota: rate.NewLimiter(rate.Every(24*time.Hour/DefaultDailyLimit), DefaultDailyLimit),
		log:   log.With().Str("client", "newsapi").Logger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// SearchCompany returns the most recent English articles mentioning the
// company name or its ticker symbol.
func (c *Client) SearchCompany(ctx context.Context, companyName, symbol string, pageSize int) ([]Article, error) {
	query := fmt.Sprintf("%q OR %q", companyName, symbol)
	return c.Everything(ctx, query, pageSize)
}

// Everything queries the /everything endpoint sorted by publication date.
func (c *Client) Everything(ctx context.Context, query string, pageSize int) ([]Article, error) {
	if !c.Enabled() {
		return nil, ErrNoAPIKey
	}
	if !c.quota.Allow() {
		return nil, ErrRateLimited
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("sortBy", "publishedAt")
	params.Set("language", "en")
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/everything?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.log.Debug().Str("query", query).Int("page_size", pageSize).Msg("NewsAPI request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var result response
	if err := json.Unmarshal(body, &result); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: string(body)}
		}
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || result.Status != "ok" {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Code:       result.Code,
			Message:    result.Message,
		}
	}

	return result.Articles, nil
}
