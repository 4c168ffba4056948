package newsapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCompany(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/everything", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, `"Tesla Inc." OR "TSLA"`, q.Get("q"))
		assert.Equal(t, "publishedAt", q.Get("sortBy"))
		assert.Equal(t, "en", q.Get("language"))
		assert.Equal(t, "10", q.Get("pageSize"))
		assert.Equal(t, "key", q.Get("apiKey"))

		_, _ = w.Write([]byte(`{
			"status": "ok",
			"totalResults": 1,
			"articles": [{
				"source": {"id": null, "name": "Reuters"},
				"title": "Tesla recalls vehicles",
				"description": "A safety recall",
				"url": "https://example.com/recall",
				"publishedAt": "2024-03-01T10:00:00Z"
			}]
		}`))
	}))
	defer server.Close()

	client := NewClient("key", zerolog.Nop(), WithBaseURL(server.URL))
	articles, err := client.SearchCompany(context.Background(), "Tesla Inc.", "TSLA", 10)
	require.NoError(t, err)
	require.Len(t, articles, 1)

	assert.Equal(t, "Reuters", articles[0].Source.Name)
	assert.Equal(t, "Tesla recalls vehicles", articles[0].Title)
	assert.Equal(t, 2024, articles[0].PublishedAt.Year())
}

func TestEverything_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status": "error", "code": "apiKeyInvalid", "message": "Your API key is invalid"}`))
	}))
	defer server.Close()

	client := NewClient("bad", zerolog.Nop(), WithBaseURL(server.URL))
	_, err := client.Everything(context.Background(), "x", 5)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "apiKeyInvalid", apiErr.Code)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestEverything_NoAPIKey(t *testing.T) {
	client := NewClient("", zerolog.Nop())
	assert.False(t, client.Enabled())

	_, err := client.Everything(context.Background(), "x", 5)
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestEverything_DailyQuota(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"status": "ok", "articles": []}`))
	}))
	defer server.Close()

	client := NewClient("key", zerolog.Nop(), WithBaseURL(server.URL), WithDailyLimit(2))

	for i := 0; i < 2; i++ {
		_, err := client.Everything(context.Background(), "x", 5)
		require.NoError(t, err)
	}

	_, err := client.Everything(context.Background(), "x", 5)
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, 2, calls)
}
