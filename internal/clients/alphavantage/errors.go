package alphavantage

import (
	"errors"
	"fmt"
)

// ErrNoAPIKey is returned by every call when the client has no API key.
// Callers treat it as "provider unavailable" and fall back to mock data.
var ErrNoAPIKey = errors.New("alphavantage: no API key configured")

// ErrRateLimitExceeded is returned when the daily quota is used up or the
// API answers with a throttling note.
type ErrRateLimitExceeded struct{}

func (e ErrRateLimitExceeded) Error() string {
	return "alphavantage: rate limit exceeded"
}

// ErrInvalidAPIKey is returned when the API rejects the key.
type ErrInvalidAPIKey struct{}

func (e ErrInvalidAPIKey) Error() string {
	return "alphavantage: invalid API key"
}

// ErrSymbolNotFound is returned when the API knows nothing about a symbol.
type ErrSymbolNotFound struct {
	Symbol string
}

func (e ErrSymbolNotFound) Error() string {
	return fmt.Sprintf("alphavantage: symbol not found: %s", e.Symbol)
}

// APIError represents a non-success response from the API.
type APIError struct {
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("alphavantage: HTTP %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("alphavantage: %s", e.Message)
}
