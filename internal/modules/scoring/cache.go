package scoring

import (
	"sync"
	"time"

	"github.com/aristath/impact/internal/domain"
)

// DefaultScoreTTL is how long a computed result stays fresh.
const DefaultScoreTTL = 2 * time.Minute

type cacheEntry struct {
	symbol     string
	computedAt time.Time
	result     domain.ScoreResult
}

// ScoreCache holds computed results keyed by symbol and category.
// Expiry is checked on read; nothing sweeps the map in the background.
// Entries are replaced wholesale and callers only ever receive copies.
type ScoreCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewScoreCache creates a cache. A nil clock uses time.Now; a non-positive
// ttl uses DefaultScoreTTL.
func NewScoreCache(ttl time.Duration, now func() time.Time) *ScoreCache {
	if ttl <= 0 {
		ttl = DefaultScoreTTL
	}
	if now == nil {
		now = time.Now
	}
	return &ScoreCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     now,
	}
}

// CacheKey is the key for symbol and category: "SYMBOL-category".
func CacheKey(symbol string, category domain.ImpactCategory) string {
	return domain.NormalizeSymbol(symbol) + "-" + string(category)
}

// Get returns the cached result if it is younger than the TTL.
// An expired entry is removed and reported as a miss.
func (c *ScoreCache) Get(symbol string, category domain.ImpactCategory) (domain.ScoreResult, bool) {
	key := CacheKey(symbol, category)

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return domain.ScoreResult{}, false
	}

	if c.now().Sub(entry.computedAt) >= c.ttl {
		c.mu.Lock()
		if current, ok := c.entries[key]; ok && current.computedAt.Equal(entry.computedAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return domain.ScoreResult{}, false
	}

	return cloneResult(entry.result), true
}

// Put stores result as computed now, replacing any previous entry.
func (c *ScoreCache) Put(symbol string, category domain.ImpactCategory, result domain.ScoreResult) {
	key := CacheKey(symbol, category)
	entry := cacheEntry{
		symbol:     domain.NormalizeSymbol(symbol),
		computedAt: c.now(),
		result:     cloneResult(result),
	}

	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()
}

// Invalidate removes every entry for symbol, or all entries when symbol is
// empty. It returns the number of entries removed.
func (c *ScoreCache) Invalidate(symbol string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	symbol = domain.NormalizeSymbol(symbol)
	if symbol == "" {
		n := len(c.entries)
		c.entries = make(map[string]cacheEntry)
		return n
	}

	n := 0
	for key, entry := range c.entries {
		if entry.symbol == symbol {
			delete(c.entries, key)
			n++
		}
	}
	return n
}

// Len returns the number of stored entries, including expired ones not yet read.
func (c *ScoreCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func cloneResult(r domain.ScoreResult) domain.ScoreResult {
	if r.News != nil {
		news := make([]domain.NewsItem, len(r.News))
		copy(news, r.News)
		r.News = news
	}
	return r
}
