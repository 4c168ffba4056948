// Package alphavantage provides a client for the Alpha Vantage market data API.
package alphavantage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the Alpha Vantage query endpoint.
	DefaultBaseURL = "https://www.alphavantage.co/query"

	// DefaultDailyLimit is the free tier daily quota.
	DefaultDailyLimit = 25

	// DefaultTimeout is the default HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRateLimit is the free tier burst limit (requests per minute).
	DefaultRateLimit = 5

	maxSearchResults = 10
)

// Client is an Alpha Vantage API client.
// It enforces both the per-minute burst limit and the daily quota locally so
// quota exhaustion is detected without spending a request.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        zerolog.Logger
	now        func() time.Time

	mu           sync.Mutex
	dailyLimit   int
	dailyCount   int
	dailyResetAt time.Time
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

// WithDailyLimit sets the daily request quota.
func WithDailyLimit(limit int) ClientOption {
	return func(c *Client) {
		if limit > 0 {
			c.dailyLimit = limit
		}
	}
}

// WithRateLimit sets the burst limit in requests per minute.
func WithRateLimit(requestsPerMinute int) ClientOption {
	return func(c *Client) {
		if requestsPerMinute <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), requestsPerMinute)
	}
}

// WithClock overrides the time source used for the daily quota.
func WithClock(now func() time.Time) ClientOption {
	return func(c *Client) {
		c.now = now
	}
}

// NewClient creates a new Alpha Vantage client. An empty apiKey yields a
// client whose calls all fail with ErrNoAPIKey.
func NewClient(apiKey string, log zerolog.Logger, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter:    rate.NewLimiter(rate.Every(time.Minute/DefaultRateLimit), DefaultRateLimit),
		log:        log.With().Str("client", "alphavantage").Logger(),
		now:        time.Now,
		dailyLimit: DefaultDailyLimit,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.dailyResetAt = nextMidnightUTC(c.now())
	return c
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// GetRemainingRequests returns how many requests are left today.
func (c *Client) GetRemainingRequests() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.maybeResetLocked()
	return c.dailyLimit - c.dailyCount
}

// ResetDailyCounter restores the full daily quota.
func (c *Client) ResetDailyCounter() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dailyCount = 0
	c.dailyResetAt = nextMidnightUTC(c.now())
}

func (c *Client) maybeResetLocked() {
	if !c.now().Before(c.dailyResetAt) {
		c.dailyCount = 0
		c.dailyResetAt = nextMidnightUTC(c.now())
	}
}

// checkRateLimit consumes one request from the daily quota.
func (c *Client) checkRateLimit() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.maybeResetLocked()
	if c.dailyCount >= c.dailyLimit {
		return ErrRateLimitExceeded{}
	}
	c.dailyCount++
	return nil
}

// nextMidnightUTC returns the first UTC midnight strictly after now.
func nextMidnightUTC(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.UTC)
}

// buildCacheKey renders a stable key for a request; the API key is excluded.
func buildCacheKey(function string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		if k == "apikey" || k == "function" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(function)
	for _, k := range keys {
		b.WriteString(":")
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(params[k])
	}
	return b.String()
}

// checkAPIError detects errors reported inside a 200 response body.
func (c *Client) checkAPIError(body []byte) error {
	trimmed := bytes.TrimSpace(body)
	if bytes.Contains(trimmed, []byte("Thank you for using Alpha Vantage")) && !bytes.HasPrefix(trimmed, []byte("{")) {
		return ErrRateLimitExceeded{}
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil
	}

	if msg := rawString(envelope["Error Message"]); msg != "" {
		return &APIError{Message: msg}
	}
	for _, field := range []string{"Note", "Information"} {
		msg := rawString(envelope[field])
		if msg == "" {
			continue
		}
		lower := strings.ToLower(msg)
		if strings.Contains(lower, "apikey") && strings.Contains(lower, "invalid") {
			return ErrInvalidAPIKey{}
		}
		if strings.Contains(lower, "frequency") || strings.Contains(lower, "rate limit") || strings.Contains(lower, "premium") {
			return ErrRateLimitExceeded{}
		}
		if field == "Note" {
			return &APIError{Message: msg}
		}
	}
	return nil
}

func rawString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// get performs a query and returns the raw body after error detection.
func (c *Client) get(ctx context.Context, function string, params map[string]string) ([]byte, error) {
	if !c.Enabled() {
		return nil, ErrNoAPIKey
	}
	if err := c.checkRateLimit(); err != nil {
		c.log.Warn().Str("function", function).Msg("Daily request quota exhausted")
		return nil, err
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	q := url.Values{}
	q.Set("function", function)
	for k, v := range params {
		q.Set(k, v)
	}
	q.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.log.Debug().Str("request", buildCacheKey(function, params)).Msg("Alpha Vantage request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	if err := c.checkAPIError(body); err != nil {
		return nil, err
	}
	return body, nil
}

// GetGlobalQuote returns the latest quote for symbol.
func (c *Client) GetGlobalQuote(ctx context.Context, symbol string) (*GlobalQuote, error) {
	body, err := c.get(ctx, "GLOBAL_QUOTE", map[string]string{"symbol": symbol})
	if err != nil {
		return nil, err
	}
	quote, err := parseGlobalQuote(body)
	if err != nil {
		return nil, ErrSymbolNotFound{Symbol: symbol}
	}
	return quote, nil
}

// GetDailyTimeSeries returns daily adjusted bars, newest first.
// full requests the complete history instead of the last 100 bars.
func (c *Client) GetDailyTimeSeries(ctx context.Context, symbol string, full bool) ([]DailyPrice, error) {
	body, err := c.get(ctx, "TIME_SERIES_DAILY_ADJUSTED", map[string]string{
		"symbol":     symbol,
		"outputsize": outputSize(full),
	})
	if err != nil {
		return nil, err
	}
	return parseDailyTimeSeries(body)
}

// GetWeeklyTimeSeries returns weekly adjusted bars, newest first.
func (c *Client) GetWeeklyTimeSeries(ctx context.Context, symbol string, full bool) ([]DailyPrice, error) {
	body, err := c.get(ctx, "TIME_SERIES_WEEKLY_ADJUSTED", map[string]string{
		"symbol":     symbol,
		"outputsize": outputSize(full),
	})
	if err != nil {
		return nil, err
	}
	return parseWeeklyTimeSeries(body)
}

// GetCompanyOverview returns fundamentals for symbol.
func (c *Client) GetCompanyOverview(ctx context.Context, symbol string) (*CompanyOverview, error) {
	body, err := c.get(ctx, "OVERVIEW", map[string]string{"symbol": symbol})
	if err != nil {
		return nil, err
	}
	overview, err := parseCompanyOverview(body)
	if err != nil {
		return nil, err
	}
	if overview.Symbol == "" {
		return nil, ErrSymbolNotFound{Symbol: symbol}
	}
	return overview, nil
}

// SearchSymbols returns up to ten symbols matching keywords.
func (c *Client) SearchSymbols(ctx context.Context, keywords string) ([]SymbolMatch, error) {
	body, err := c.get(ctx, "SYMBOL_SEARCH", map[string]string{"keywords": keywords})
	if err != nil {
		return nil, err
	}
	matches, err := parseSymbolSearch(body)
	if err != nil {
		return nil, err
	}
	if len(matches) > maxSearchResults {
		matches = matches[:maxSearchResults]
	}
	return matches, nil
}

func outputSize(full bool) string {
	if full {
		return "full"
	}
	return "compact"
}
