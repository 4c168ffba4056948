// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Env        string
	Port       int
	LogLevel   string
	LogPretty  bool
	CORSOrigin string

	// Alpha Vantage (free tier: 25 requests/day)
	StockAPIKey     string
	StockAPIBaseURL string
	StockDailyLimit int

	// NewsAPI (free tier: 100 requests/day)
	NewsAPIKey     string
	NewsAPIBaseURL string
	NewsDailyLimit int

	// Gemini; an empty key disables AI scoring and sentiment refinement
	GeminiAPIKey string
	GeminiModel  string

	Cache CacheConfig

	PruneSchedule string
}

// CacheConfig holds TTLs for the in-memory caches.
type CacheConfig struct {
	ScoreTTL   time.Duration
	NewsTTL    time.Duration
	QuoteTTL   time.Duration
	HistoryTTL time.Duration
	InfoTTL    time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Env:             getEnv("APP_ENV", "development"),
		Port:            getEnvAsInt("PORT", 4000),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogPretty:       getEnvAsBool("LOG_PRETTY", true),
		CORSOrigin:      getEnv("CORS_ORIGIN", "*"),
		StockAPIKey:     getEnv("STOCK_API_KEY", ""),
		StockAPIBaseURL: getEnv("STOCK_API_BASE_URL", "https://www.alphavantage.co/query"),
		StockDailyLimit: getEnvAsInt("STOCK_DAILY_LIMIT", 25),
		NewsAPIKey:      getEnv("NEWS_API_KEY", ""),
		NewsAPIBaseURL:  getEnv("NEWS_API_BASE_URL", "https://newsapi.org/v2"),
		NewsDailyLimit:  getEnvAsInt("NEWS_DAILY_LIMIT", 100),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-1.5-flash-latest"),
		Cache: CacheConfig{
			ScoreTTL:   getEnvAsDuration("SCORE_CACHE_TTL", 2*time.Minute),
			NewsTTL:    getEnvAsDuration("NEWS_CACHE_TTL", 15*time.Minute),
			QuoteTTL:   getEnvAsDuration("QUOTE_CACHE_TTL", time.Minute),
			HistoryTTL: getEnvAsDuration("HISTORY_CACHE_TTL", 5*time.Minute),
			InfoTTL:    getEnvAsDuration("INFO_CACHE_TTL", time.Hour),
		},
		PruneSchedule: getEnv("PRUNE_SCHEDULE", "@every 10m"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
// API keys are optional: a missing key selects the offline fallback data.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.StockDailyLimit <= 0 {
		return fmt.Errorf("STOCK_DAILY_LIMIT must be positive, got %d", c.StockDailyLimit)
	}
	if c.NewsDailyLimit <= 0 {
		return fmt.Errorf("NEWS_DAILY_LIMIT must be positive, got %d", c.NewsDailyLimit)
	}

	ttls := map[string]time.Duration{
		"SCORE_CACHE_TTL":   c.Cache.ScoreTTL,
		"NEWS_CACHE_TTL":    c.Cache.NewsTTL,
		"QUOTE_CACHE_TTL":   c.Cache.QuoteTTL,
		"HISTORY_CACHE_TTL": c.Cache.HistoryTTL,
		"INFO_CACHE_TTL":    c.Cache.InfoTTL,
	}
	for name, ttl := range ttls {
		if ttl <= 0 {
			return fmt.Errorf("%s must be positive, got %s", name, ttl)
		}
	}

	return nil
}

// AIEnabled reports whether a Gemini key is configured.
func (c *Config) AIEnabled() bool {
	return strings.TrimSpace(c.GeminiAPIKey) != ""
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
